// Package app provides the high-level planner operations shared by the CLI
// and the TUI: rendering a day (materialize, then read), note and card edits
// with the commit-time auto-discard rule, series lifecycle, reordering, and
// backup export/import.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/tweek/pkg/bucket"
	"tableflip.dev/tweek/pkg/history"
	"tableflip.dev/tweek/pkg/materialize"
	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/ordering"
	"tableflip.dev/tweek/pkg/rule"
	"tableflip.dev/tweek/pkg/rules"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/timeutil"
	"tableflip.dev/tweek/pkg/view"
)

var (
	ErrNoteNotFound = errors.New("app: note not found")
	ErrCardNotFound = errors.New("app: card not found")
	ErrSameDate     = errors.New("app: select a different date to move")
)

// Service wires the planner's stores and engines over one persistence.
type Service struct {
	Persistence store.Persistence
	Rules       *rules.Store
	Ledger      *history.Ledger
	Buckets     *bucket.Store
	View        *view.Store
	Engine      *materialize.Engine
	Ordering    *ordering.Engine
}

// New builds a service over the given persistence.
func New(p store.Persistence) *Service {
	r := rules.NewStore(p)
	l := history.NewLedger(p)
	b := bucket.NewStore(p)
	return &Service{
		Persistence: p,
		Rules:       r,
		Ledger:      l,
		Buckets:     b,
		View:        view.NewStore(p),
		Engine:      materialize.New(r, l, b),
		Ordering:    ordering.New(b),
	}
}

// Day is one rendered column.
type Day struct {
	timeutil.Day
	Notes []note.Note
}

// RenderDay ensures due occurrences exist for the date and returns the
// resulting bucket. Safe to call repeatedly.
func (s *Service) RenderDay(dateKey string) ([]note.Note, error) {
	weekday, err := timeutil.WeekdayOf(dateKey)
	if err != nil {
		return nil, err
	}
	if err := s.Engine.Ensure(dateKey, weekday); err != nil {
		return nil, err
	}
	return s.Buckets.Get(dateKey)
}

// RenderWindow renders every column of the visible window.
func (s *Service) RenderWindow(now time.Time) ([]Day, error) {
	window, err := s.View.Window(now)
	if err != nil {
		return nil, err
	}
	days := make([]Day, 0, len(window))
	for _, d := range window {
		notes, err := s.RenderDay(d.Key)
		if err != nil {
			return nil, err
		}
		days = append(days, Day{Day: d, Notes: notes})
	}
	return days, nil
}

// AddNote appends a new note to the day and persists the bucket.
func (s *Service) AddNote(dateKey, title, body string) (note.Note, error) {
	n := note.New(title)
	n.Body = body
	err := s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		return append(notes, n), true
	})
	return n, err
}

// AddCard appends a new card to the note's card list.
func (s *Service) AddCard(dateKey, noteID, title string) (note.Card, error) {
	c := note.NewCard(title)
	found := false
	err := s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		found = true
		notes[i].Cards = append(notes[i].Cards, c)
		return notes, true
	})
	if err != nil {
		return note.Card{}, err
	}
	if !found {
		return note.Card{}, ErrNoteNotFound
	}
	return c, nil
}

// CommitNoteTitle applies an edit commit to a note title. A blank or
// still-placeholder title discards the note; kept reports whether the note
// survived.
func (s *Service) CommitNoteTitle(dateKey, noteID, title string) (kept bool, err error) {
	found := false
	err = s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		found = true
		if note.Blank(title, note.DefaultTitle) {
			return append(notes[:i], notes[i+1:]...), true
		}
		kept = true
		notes[i].Title = title
		return notes, true
	})
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrNoteNotFound
	}
	return kept, nil
}

// CommitCardTitle applies an edit commit to a card title, discarding blank or
// placeholder cards the same way notes are discarded.
func (s *Service) CommitCardTitle(dateKey, noteID, cardID, title string) (kept bool, err error) {
	found := false
	err = s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		j := note.FindCardIndex(notes[i].Cards, cardID)
		if j < 0 {
			return notes, false
		}
		found = true
		if note.Blank(title, note.DefaultCardTitle) {
			notes[i].Cards = append(notes[i].Cards[:j], notes[i].Cards[j+1:]...)
			return notes, true
		}
		kept = true
		notes[i].Cards[j].Title = title
		return notes, true
	})
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrCardNotFound
	}
	return kept, nil
}

// SetNoteBody updates a note's body text.
func (s *Service) SetNoteBody(dateKey, noteID, body string) error {
	found := false
	err := s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		found = true
		notes[i].Body = body
		return notes, true
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNoteNotFound
	}
	return nil
}

// DeleteNote removes a note. The materialization ledger is untouched, so a
// deleted recurring occurrence never comes back.
func (s *Service) DeleteNote(dateKey, noteID string) error {
	found := false
	err := s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		found = true
		return append(notes[:i], notes[i+1:]...), true
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrNoteNotFound
	}
	return nil
}

// DeleteCard removes a card from its parent note.
func (s *Service) DeleteCard(dateKey, noteID, cardID string) error {
	found := false
	err := s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		j := note.FindCardIndex(notes[i].Cards, cardID)
		if j < 0 {
			return notes, false
		}
		found = true
		notes[i].Cards = append(notes[i].Cards[:j], notes[i].Cards[j+1:]...)
		return notes, true
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrCardNotFound
	}
	return nil
}

// ToggleDone flips a note's completion flag.
func (s *Service) ToggleDone(dateKey, noteID string) (done bool, err error) {
	found := false
	err = s.Buckets.Mutate(dateKey, func(notes []note.Note) ([]note.Note, bool) {
		i := note.FindIndex(notes, noteID)
		if i < 0 {
			return notes, false
		}
		found = true
		notes[i].Done = !notes[i].Done
		done = notes[i].Done
		return notes, true
	})
	if err != nil {
		return false, err
	}
	if !found {
		return false, ErrNoteNotFound
	}
	return done, nil
}

// MoveNote appends the note to the target day's bucket and removes it from
// the source, persisting both. The move is purely positional; nothing on the
// note records where it came from.
func (s *Service) MoveNote(dateKey, noteID, targetDate string) error {
	if targetDate == dateKey {
		return ErrSameDate
	}
	if _, err := timeutil.ParseDayKey(targetDate); err != nil {
		return err
	}

	source, err := s.Buckets.Get(dateKey)
	if err != nil {
		return err
	}
	i := note.FindIndex(source, noteID)
	if i < 0 {
		return ErrNoteNotFound
	}
	moved := source[i]
	source = append(source[:i], source[i+1:]...)

	err = s.Buckets.Mutate(targetDate, func(notes []note.Note) ([]note.Note, bool) {
		return append(notes, moved), true
	})
	if err != nil {
		return err
	}
	return s.Buckets.Set(dateKey, source)
}

// ConfigureSeries applies the note's series settings. For a plain note with a
// non-empty weekday set it creates a rule anchored at the note's date, seeds
// the ledger for that anchor day so the next render doesn't duplicate the
// note, and links the note. For an existing series it updates the rule's
// days and title; an empty weekday set deletes the series instead.
func (s *Service) ConfigureSeries(dateKey, noteID string, days []time.Weekday) (rule.Rule, error) {
	notes, err := s.Buckets.Get(dateKey)
	if err != nil {
		return rule.Rule{}, err
	}
	i := note.FindIndex(notes, noteID)
	if i < 0 {
		return rule.Rule{}, ErrNoteNotFound
	}
	n := notes[i]

	if n.SeriesID != "" {
		if len(days) == 0 {
			return rule.Rule{}, s.ClearSeries(dateKey, noteID)
		}
		return s.Rules.Update(n.SeriesID, rules.Patch{Title: &n.Title, Days: days})
	}

	if len(days) == 0 {
		return rule.Rule{}, nil
	}

	r := rule.New(n.Title, dateKey, days)
	if err := s.Rules.Add(r); err != nil {
		return rule.Rule{}, err
	}
	// Eagerly decide the anchor date so materialization never synthesizes a
	// duplicate next to the original note.
	if err := s.Ledger.Add(history.Key(r.ID, dateKey)); err != nil {
		return rule.Rule{}, err
	}
	notes[i].SeriesID = r.ID
	if err := s.Buckets.Set(dateKey, notes); err != nil {
		return rule.Rule{}, err
	}
	return r, nil
}

// ClearSeries deletes the note's rule and clears the back-reference. A
// missing rule is a silent no-op for the removal; the back-reference is
// cleared either way. Previously materialized occurrences keep existing and
// the ledger keeps every past decision.
func (s *Service) ClearSeries(dateKey, noteID string) error {
	notes, err := s.Buckets.Get(dateKey)
	if err != nil {
		return err
	}
	i := note.FindIndex(notes, noteID)
	if i < 0 {
		return ErrNoteNotFound
	}
	if notes[i].SeriesID != "" {
		if err := s.Rules.Remove(notes[i].SeriesID); err != nil {
			return err
		}
	}
	notes[i].SeriesID = ""
	return s.Buckets.Set(dateKey, notes)
}

// ExportFilename names a backup file for the given moment.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("planner-backup-%s.json", timeutil.DayKey(now))
}

// Export serializes the full namespace snapshot for backup.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	snap, err := s.Persistence.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("app: encode export: %w", err)
	}
	return data, nil
}

// Import replaces the namespace with the payload. The payload is parsed
// before anything is cleared, so a malformed file leaves the store untouched.
// Callers must rebuild all in-memory state afterwards.
func (s *Service) Import(ctx context.Context, payload []byte) error {
	var data map[string]string
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("app: import payload is not valid JSON: %w", err)
	}
	return s.Persistence.Replace(ctx, data)
}
