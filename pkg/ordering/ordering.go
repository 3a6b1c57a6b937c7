// Package ordering computes insertion positions during a reorder gesture and
// applies the resulting moves to day buckets. The same midpoint algorithm
// serves two kinds of gesture: notes moving within or across day columns, and
// cards moving within or across a note's card list (reparenting included).
//
// Drag state lives in an explicit Session scoped to one gesture; there are no
// process-wide globals. A drop for a session that never computed an insertion
// point is a total no-op and performs no persistence write.
package ordering

import (
	"math"

	"tableflip.dev/tweek/pkg/note"
)

// Box is the rendered geometry of one sibling element, in the same vertical
// coordinate space as the pointer.
type Box struct {
	Top    float64
	Height float64
}

func (b Box) midpoint() float64 { return b.Top + b.Height/2 }

func (b Box) contains(y float64) bool { return y >= b.Top && y <= b.Top+b.Height }

// InsertIndex picks the insertion position for pointer height y among the
// candidate siblings, given in list order with the dragged element excluded.
// The winner is the candidate whose midpoint sits below the pointer by the
// smallest margin; iteration order breaks ties, so the first such candidate
// wins. With no midpoint below the pointer the position is append-at-end.
func InsertIndex(y float64, boxes []Box) int {
	best := len(boxes)
	bestOffset := math.Inf(-1)
	for i, b := range boxes {
		offset := y - b.midpoint()
		if offset < 0 && offset > bestOffset {
			best = i
			bestOffset = offset
		}
	}
	return best
}

// Target is a computed insertion point. NoteID is set only for card gestures
// and names the destination note.
type Target struct {
	DateKey string
	NoteID  string
	Index   int
}

// Session tracks one reorder gesture from pick-up to drop.
type Session struct {
	sourceDate   string
	noteID       string
	cardID       string
	sourceNoteID string

	target    Target
	hasTarget bool
}

// BeginNoteDrag starts a gesture moving a whole note out of its day bucket.
func BeginNoteDrag(sourceDate, noteID string) *Session {
	return &Session{sourceDate: sourceDate, noteID: noteID}
}

// BeginCardDrag starts a gesture moving a card out of its parent note.
func BeginCardDrag(sourceDate, noteID, cardID string) *Session {
	return &Session{sourceDate: sourceDate, sourceNoteID: noteID, cardID: cardID}
}

// IsCard reports whether the gesture moves a card rather than a note.
func (s *Session) IsCard() bool { return s.cardID != "" }

// Hover records the insertion point for the container currently under the
// pointer. boxes are the container's siblings in list order with the dragged
// element excluded; dragged, when non-nil, is the dragged element's own
// geometry. Hovering over the dragged element itself clears the placement so
// the drop becomes a no-op unless a later hover lands somewhere valid.
func (s *Session) Hover(dateKey, noteID string, y float64, boxes []Box, dragged *Box) {
	if dragged != nil && dragged.contains(y) {
		s.hasTarget = false
		return
	}
	s.target = Target{DateKey: dateKey, NoteID: noteID, Index: InsertIndex(y, boxes)}
	s.hasTarget = true
}

// Target returns the current insertion point, if any hover computed one.
func (s *Session) Target() (Target, bool) {
	return s.target, s.hasTarget
}

// BucketStore is the slice of the bucket store the engine needs.
type BucketStore interface {
	Get(dateKey string) ([]note.Note, error)
	Set(dateKey string, notes []note.Note) error
}

// Engine applies completed gestures to day buckets.
type Engine struct {
	Buckets BucketStore
}

func New(b BucketStore) *Engine {
	return &Engine{Buckets: b}
}

// Drop finishes the gesture. It reports whether anything moved; a session
// with no computed insertion point, or whose dragged element has vanished,
// leaves every bucket untouched. Destination and source (when different) are
// persisted as full-list overwrites.
func (e *Engine) Drop(s *Session) (bool, error) {
	t, ok := s.Target()
	if !ok {
		return false, nil
	}
	if s.IsCard() {
		return e.dropCard(s, t)
	}
	return e.dropNote(s, t)
}

func (e *Engine) dropNote(s *Session, t Target) (bool, error) {
	source, err := e.Buckets.Get(s.sourceDate)
	if err != nil {
		return false, err
	}
	idx := note.FindIndex(source, s.noteID)
	if idx < 0 {
		return false, nil
	}
	moved := source[idx]
	source = append(source[:idx], source[idx+1:]...)

	if t.DateKey == s.sourceDate {
		source = insertNote(source, moved, t.Index)
		return true, e.Buckets.Set(s.sourceDate, source)
	}

	dest, err := e.Buckets.Get(t.DateKey)
	if err != nil {
		return false, err
	}
	dest = insertNote(dest, moved, t.Index)
	if err := e.Buckets.Set(t.DateKey, dest); err != nil {
		return false, err
	}
	return true, e.Buckets.Set(s.sourceDate, source)
}

func (e *Engine) dropCard(s *Session, t Target) (bool, error) {
	source, err := e.Buckets.Get(s.sourceDate)
	if err != nil {
		return false, err
	}
	srcNote := note.FindIndex(source, s.sourceNoteID)
	if srcNote < 0 {
		return false, nil
	}
	cardIdx := note.FindCardIndex(source[srcNote].Cards, s.cardID)
	if cardIdx < 0 {
		return false, nil
	}
	moved := source[srcNote].Cards[cardIdx]
	source[srcNote].Cards = append(source[srcNote].Cards[:cardIdx], source[srcNote].Cards[cardIdx+1:]...)

	if t.DateKey == s.sourceDate {
		dstNote := note.FindIndex(source, t.NoteID)
		if dstNote < 0 {
			return false, nil
		}
		source[dstNote].Cards = insertCard(source[dstNote].Cards, moved, t.Index)
		return true, e.Buckets.Set(s.sourceDate, source)
	}

	dest, err := e.Buckets.Get(t.DateKey)
	if err != nil {
		return false, err
	}
	dstNote := note.FindIndex(dest, t.NoteID)
	if dstNote < 0 {
		return false, nil
	}
	dest[dstNote].Cards = insertCard(dest[dstNote].Cards, moved, t.Index)
	if err := e.Buckets.Set(t.DateKey, dest); err != nil {
		return false, err
	}
	return true, e.Buckets.Set(s.sourceDate, source)
}

// insertNote places n at index i, clamped to the list bounds. The index was
// computed against the list with the dragged element excluded, so after the
// removal above it maps directly onto the destination list.
func insertNote(notes []note.Note, n note.Note, i int) []note.Note {
	if i < 0 {
		i = 0
	}
	if i > len(notes) {
		i = len(notes)
	}
	notes = append(notes, note.Note{})
	copy(notes[i+1:], notes[i:])
	notes[i] = n
	return notes
}

func insertCard(cards []note.Card, c note.Card, i int) []note.Card {
	if i < 0 {
		i = 0
	}
	if i > len(cards) {
		i = len(cards)
	}
	cards = append(cards, note.Card{})
	copy(cards[i+1:], cards[i:])
	cards[i] = c
	return cards
}
