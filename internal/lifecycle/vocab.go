// Package lifecycle holds the declarative rules for case and hearing state:
// the category, priority and status vocabularies, their defaults, and the
// colour each record renders with.
//
// Status changes are permissive. Any valid status may follow any other; only
// membership in the vocabulary is checked.
package lifecycle

import "strings"

type Category string

const (
	Civil      Category = "Civil"
	Criminal   Category = "Criminal"
	Family     Category = "Family"
	Commercial Category = "Commercial"
	CMI        Category = "CMI"
)

var Categories = []Category{Civil, Criminal, Family, Commercial, CMI}

// Known reports whether c is one of the registry's fixed categories. Unknown
// categories are still accepted; they mint under the fallback prefix.
func (c Category) Known() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	High   Priority = "High"
	Medium Priority = "Medium"
	Low    Priority = "Low"
)

var Priorities = []Priority{High, Medium, Low}

func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// CaseStatus is the status vocabulary of a Case. It is deliberately a
// different type from HearingStatus.
type CaseStatus string

const (
	CasePending    CaseStatus = "Pending"
	CaseScheduled  CaseStatus = "Scheduled"
	CaseInProgress CaseStatus = "In Progress"
	CaseAdjourned  CaseStatus = "Adjourned"
	CaseCompleted  CaseStatus = "Completed"
)

var CaseStatuses = []CaseStatus{CasePending, CaseScheduled, CaseInProgress, CaseAdjourned, CaseCompleted}

func (s CaseStatus) Valid() bool {
	for _, v := range CaseStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s CaseStatus) Terminal() bool { return s == CaseCompleted }

type HearingStatus string

const (
	HearingScheduled HearingStatus = "Scheduled"
	HearingInSession HearingStatus = "Hearing"
	HearingArguments HearingStatus = "Arguments"
	HearingMediation HearingStatus = "Mediation"
	HearingCompleted HearingStatus = "Completed"
	HearingAdjourned HearingStatus = "Adjourned"
)

var HearingStatuses = []HearingStatus{
	HearingScheduled, HearingInSession, HearingArguments,
	HearingMediation, HearingCompleted, HearingAdjourned,
}

func (s HearingStatus) Valid() bool {
	for _, v := range HearingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s HearingStatus) Terminal() bool { return s == HearingCompleted }

const (
	DefaultCasePriority    = Medium
	DefaultCaseStatus      = CasePending
	DefaultHearingPriority = Medium
	DefaultHearingStatus   = HearingScheduled
)

// OneOf renders a vocabulary for validation messages.
func OneOf[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "must be one of " + strings.Join(parts, ", ")
}

// ParseParties splits a comma-separated party list, trimming whitespace and
// dropping empty names. Order is preserved.
func ParseParties(raw string) []string {
	parties := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parties = append(parties, p)
		}
	}
	return parties
}
