package registry

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/JustJay7/court-registry/internal/apperr"
	"github.com/JustJay7/court-registry/internal/lifecycle"
)

// CaseInput carries the fields a caller may supply when registering a case.
// The case number, id and filed date are always assigned by the store.
type CaseInput struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	Plaintiff   string  `json:"plaintiff"`
	Defendant   string  `json:"defendant"`
	NextHearing *string `json:"nextHearing"`
}

func (in *CaseInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Priority = strings.TrimSpace(in.Priority)
	in.Status = strings.TrimSpace(in.Status)
	in.Plaintiff = strings.TrimSpace(in.Plaintiff)
	in.Defendant = strings.TrimSpace(in.Defendant)
	if in.Priority == "" {
		in.Priority = string(lifecycle.DefaultCasePriority)
	}
	if in.Status == "" {
		in.Status = string(lifecycle.DefaultCaseStatus)
	}
}

func (in CaseInput) validate() error {
	required := []struct{ field, value string }{
		{"title", in.Title},
		{"category", in.Category},
		{"plaintiff", in.Plaintiff},
		{"defendant", in.Defendant},
	}
	for _, r := range required {
		if r.value == "" {
			return apperr.Required(r.field)
		}
	}
	return validateCaseVocab(&in.Priority, &in.Status)
}

// CaseUpdate is a partial update. Nil fields are left untouched. The case
// number, id and filed date have no field here and cannot be changed.
type CaseUpdate struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Plaintiff   *string `json:"plaintiff"`
	Defendant   *string `json:"defendant"`
	NextHearing *string `json:"nextHearing"`
}

func (u CaseUpdate) validate() error {
	required := []struct {
		field string
		value *string
	}{
		{"title", u.Title},
		{"category", u.Category},
		{"plaintiff", u.Plaintiff},
		{"defendant", u.Defendant},
	}
	for _, r := range required {
		if r.value != nil && strings.TrimSpace(*r.value) == "" {
			return apperr.Invalid(r.field, "cannot be empty")
		}
	}
	return validateCaseVocab(u.Priority, u.Status)
}

func validateCaseVocab(priority, status *string) error {
	if priority != nil && !lifecycle.Priority(*priority).Valid() {
		return apperr.Invalid("priority", lifecycle.OneOf(lifecycle.Priorities))
	}
	if status != nil && !lifecycle.CaseStatus(*status).Valid() {
		return apperr.Invalid("status", lifecycle.OneOf(lifecycle.CaseStatuses))
	}
	return nil
}

// Parties decodes from either a JSON array of names or a single
// comma-separated string.
type Parties []string

func (p *Parties) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, name := range list {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
		*p = out
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parties must be a list or a comma-separated string")
	}
	*p = lifecycle.ParseParties(raw)
	return nil
}

type HearingInput struct {
	Title       string    `json:"title"`
	CaseID      string    `json:"caseId"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Judge       string    `json:"judge"`
	Parties     Parties   `json:"parties"`
	CaseType    string    `json:"caseType"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Courtroom   string    `json:"courtroom"`
	Description string    `json:"description"`
}

func (in *HearingInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.CaseID = strings.TrimSpace(in.CaseID)
	in.Judge = strings.TrimSpace(in.Judge)
	in.CaseType = strings.TrimSpace(in.CaseType)
	in.Courtroom = strings.TrimSpace(in.Courtroom)
	if in.Priority = strings.TrimSpace(in.Priority); in.Priority == "" {
		in.Priority = string(lifecycle.DefaultHearingPriority)
	}
	if in.Status = strings.TrimSpace(in.Status); in.Status == "" {
		in.Status = string(lifecycle.DefaultHearingStatus)
	}
	if in.Parties == nil {
		in.Parties = Parties{}
	}
	// Stored as UTC so sqlite's text ordering matches the instant.
	in.Start = in.Start.UTC()
	in.End = in.End.UTC()
}

func (in HearingInput) validate() error {
	switch {
	case in.Title == "":
		return apperr.Required("title")
	case in.CaseID == "":
		return apperr.Required("caseId")
	case in.Start.IsZero():
		return apperr.Required("start")
	case in.End.IsZero():
		return apperr.Required("end")
	}
	return validateHearingVocab(&in.Priority, &in.Status)
}

// HearingUpdate is a partial update. The id and the case reference are
// immutable and have no field here.
type HearingUpdate struct {
	Title       *string    `json:"title"`
	Start       *time.Time `json:"start"`
	End         *time.Time `json:"end"`
	Judge       *string    `json:"judge"`
	Parties     *Parties   `json:"parties"`
	CaseType    *string    `json:"caseType"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	Courtroom   *string    `json:"courtroom"`
	Description *string    `json:"description"`
}

func (u HearingUpdate) validate() error {
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return apperr.Invalid("title", "cannot be empty")
	}
	if u.Start != nil && u.Start.IsZero() {
		return apperr.Required("start")
	}
	if u.End != nil && u.End.IsZero() {
		return apperr.Required("end")
	}
	return validateHearingVocab(u.Priority, u.Status)
}

func validateHearingVocab(priority, status *string) error {
	if priority != nil && !lifecycle.Priority(*priority).Valid() {
		return apperr.Invalid("priority", lifecycle.OneOf(lifecycle.Priorities))
	}
	if status != nil && !lifecycle.HearingStatus(*status).Valid() {
		return apperr.Invalid("status", lifecycle.OneOf(lifecycle.HearingStatuses))
	}
	return nil
}
