// Package filter is the single query engine behind every list surface: the
// case table, the sidebar counts and the schedule filters.
package filter

import "strings"

// Fields is the filterable projection of a record.
type Fields struct {
	Category string
	Priority string
	Status   string
	Judge    string
	Title    string
	// Number is the record's human identifier: a case number, or the case
	// reference held by a hearing.
	Number string
}

type Record interface {
	FilterFields() Fields
}

// Criteria is a set of field constraints. Empty fields are wildcards; the rest
// are exact matches, except SearchText which is a case-insensitive substring
// test against Title or Number.
type Criteria struct {
	Category   string `form:"category" json:"category,omitempty"`
	Priority   string `form:"priority" json:"priority,omitempty"`
	Status     string `form:"status" json:"status,omitempty"`
	Judge      string `form:"judge" json:"judge,omitempty"`
	SearchText string `form:"q" json:"searchText,omitempty"`
}

func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

func (c Criteria) Match(f Fields) bool {
	if c.Category != "" && f.Category != c.Category {
		return false
	}
	if c.Priority != "" && f.Priority != c.Priority {
		return false
	}
	if c.Status != "" && f.Status != c.Status {
		return false
	}
	if c.Judge != "" && f.Judge != c.Judge {
		return false
	}
	if c.SearchText != "" {
		needle := strings.ToLower(c.SearchText)
		if !strings.Contains(strings.ToLower(f.Title), needle) &&
			!strings.Contains(strings.ToLower(f.Number), needle) {
			return false
		}
	}
	return true
}

// Apply returns the records that satisfy every criteria set, in their input
// order. The input slice is never modified.
func Apply[T Record](records []T, sets ...Criteria) []T {
	active := compact(sets)
	out := make([]T, 0, len(records))
	for _, r := range records {
		if matchAll(r.FilterFields(), active) {
			out = append(out, r)
		}
	}
	return out
}

func Count[T Record](records []T, sets ...Criteria) int {
	active := compact(sets)
	n := 0
	for _, r := range records {
		if matchAll(r.FilterFields(), active) {
			n++
		}
	}
	return n
}

func matchAll(f Fields, sets []Criteria) bool {
	for _, c := range sets {
		if !c.Match(f) {
			return false
		}
	}
	return true
}

func compact(sets []Criteria) []Criteria {
	active := make([]Criteria, 0, len(sets))
	for _, c := range sets {
		if !c.IsZero() {
			active = append(active, c)
		}
	}
	return active
}
