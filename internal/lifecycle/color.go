package lifecycle

// Style is the colour pair a case badge or calendar block renders with.
type Style struct {
	Background string `json:"backgroundColor"`
	Border     string `json:"borderColor"`
}

var (
	styleHigh      = Style{Background: "#f56565", Border: "#c53030"}
	styleMedium    = Style{Background: "#ed8936", Border: "#c05621"}
	styleLow       = Style{Background: "#48bb78", Border: "#38a169"}
	styleDefault   = Style{Background: "#4299e1", Border: "#3182ce"}
	styleCompleted = Style{Background: "#a0aec0", Border: "#718096"}
)

var priorityStyles = map[Priority]Style{
	High:   styleHigh,
	Medium: styleMedium,
	Low:    styleLow,
}

// PriorityStyle returns the colour for a priority, or the neutral blue for
// anything outside the vocabulary.
func PriorityStyle(p Priority) Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return styleDefault
}

// StyleFor applies the priority colour and then the completed override.
// A completed record is always grey whatever its priority.
func StyleFor(p Priority, completed bool) Style {
	s := PriorityStyle(p)
	if completed {
		s = styleCompleted
	}
	return s
}

func CaseStyle(p Priority, status CaseStatus) Style {
	return StyleFor(p, status.Terminal())
}

func HearingStyle(p Priority, status HearingStatus) Style {
	return StyleFor(p, status.Terminal())
}
