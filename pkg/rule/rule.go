// Package rule defines recurring-series definitions. A rule seeds one note
// per matching weekday from its anchor date forward; materialized notes are
// independent copies and outlive the rule.
package rule

import (
	"time"

	"github.com/google/uuid"
)

// Scope controls how much of the rule is copied into each occurrence.
type Scope string

const (
	// ScopeAll copies the rule body into every occurrence.
	ScopeAll Scope = "all"

	// ScopeOccurrence leaves each occurrence's body blank; the title is
	// always copied.
	ScopeOccurrence Scope = "occurrence"
)

// Rule is a weekday-recurrence definition. Days holds weekday numbers with
// Sunday as 0. StartDate is the anchor day key; occurrences exist only on or
// after it. An empty Days set matches nothing and is inert, not an error.
type Rule struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Body      string         `json:"body,omitempty"`
	Scope     Scope          `json:"scope,omitempty"`
	Days      []time.Weekday `json:"days"`
	StartDate string         `json:"startDate"`
}

// New returns a rule with a fresh id anchored at startDate.
func New(title, startDate string, days []time.Weekday) Rule {
	return Rule{
		ID:        uuid.NewString(),
		Title:     title,
		Days:      days,
		StartDate: startDate,
	}
}

// Matches reports whether the rule is due on the given day. Day keys sort
// lexically, so the anchor comparison is a plain string compare.
func (r Rule) Matches(dateKey string, weekday time.Weekday) bool {
	if dateKey < r.StartDate {
		return false
	}
	for _, d := range r.Days {
		if d == weekday {
			return true
		}
	}
	return false
}

// OccurrenceBody returns the body an occurrence starts with.
func (r Rule) OccurrenceBody() string {
	if r.Scope == ScopeAll {
		return r.Body
	}
	return ""
}
