package filter

import (
	"fmt"

	"github.com/JustJay7/court-registry/internal/lifecycle"
)

// View is a named sidebar bucket of the case table.
type View string

const (
	ViewAll      View = "all"
	ViewHigh     View = "high"
	ViewMedium   View = "medium"
	ViewLow      View = "low"
	ViewWorkable View = "workable"
	ViewArchived View = "archived"
)

var Views = []View{ViewAll, ViewHigh, ViewMedium, ViewLow, ViewWorkable, ViewArchived}

var viewCriteria = map[View]Criteria{
	ViewAll:      {},
	ViewHigh:     {Priority: string(lifecycle.High)},
	ViewMedium:   {Priority: string(lifecycle.Medium)},
	ViewLow:      {Priority: string(lifecycle.Low)},
	ViewWorkable: {Status: string(lifecycle.CaseInProgress)},
	ViewArchived: {Status: string(lifecycle.CaseAdjourned)},
}

// ForView returns the criteria behind a sidebar view. An empty view is "all".
func ForView(v View) (Criteria, error) {
	if v == "" {
		return Criteria{}, nil
	}
	c, ok := viewCriteria[v]
	if !ok {
		return Criteria{}, fmt.Errorf("unknown view %q", v)
	}
	return c, nil
}
