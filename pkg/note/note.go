// Package note defines the planner's in-memory model: a Note is one block in
// a day column, optionally split into ordered Card sub-items. The model is
// the source of truth; rendering is a projection of it, never the reverse.
package note

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultTitle is the placeholder a freshly created note carries until
	// the user commits a real title.
	DefaultTitle = "Title"

	// DefaultCardTitle is the placeholder for a freshly created card.
	DefaultCardTitle = "Task"
)

// Card is a sub-item owned by exactly one note. Its position in the parent's
// card list is its display order.
type Card struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Note is one block in a day bucket. SeriesID is a weak back-reference to the
// recurring rule that synthesized it; it may dangle after the rule is deleted
// and then only means "no associated rule".
type Note struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	SeriesID string `json:"seriesId,omitempty"`
	Done     bool   `json:"isDone,omitempty"`
	Cards    []Card `json:"cards"`
}

// New returns a note with a fresh id and an empty card list.
func New(title string) Note {
	return Note{
		ID:    uuid.NewString(),
		Title: title,
		Cards: []Card{},
	}
}

// NewCard returns a card with a fresh id.
func NewCard(title string) Card {
	return Card{ID: uuid.NewString(), Title: title}
}

// Blank reports whether a committed title should discard the entity: empty or
// still equal to its placeholder.
func Blank(title, placeholder string) bool {
	t := strings.TrimSpace(title)
	return t == "" || t == placeholder
}

// Clone deep-copies the note so callers can mutate buckets without aliasing.
func (n Note) Clone() Note {
	out := n
	out.Cards = make([]Card, len(n.Cards))
	copy(out.Cards, n.Cards)
	return out
}

// CloneList deep-copies an ordered note list.
func CloneList(notes []Note) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Clone())
	}
	return out
}

// FindIndex returns the position of id in notes, or -1.
func FindIndex(notes []Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// FindCardIndex returns the position of id in cards, or -1.
func FindCardIndex(cards []Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
