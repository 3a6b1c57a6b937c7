// Package edit mutates existing notes: completion, deletion, retitling, and
// moving across days.
package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/store"
)

type Done struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
}

func (d *Done) Do(ctx context.Context) error {
	if d.Persistence == nil {
		return errors.New("edit: no persistence")
	}
	svc := app.New(d.Persistence)
	done, err := svc.ToggleDone(d.Date, d.NoteID)
	if err != nil {
		return err
	}
	state := "open"
	if done {
		state = "done"
	}
	_, _ = fmt.Fprintf(color.Output, "%s is now %s\n", d.NoteID, state)
	return nil
}

type Remove struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
	CardID      string // when set, remove the card instead of the note
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("edit: no persistence")
	}
	svc := app.New(r.Persistence)
	if r.CardID != "" {
		return svc.DeleteCard(r.Date, r.NoteID, r.CardID)
	}
	return svc.DeleteNote(r.Date, r.NoteID)
}

type Retitle struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
	Title       string
}

// Do commits the new title. The commit-time discard rule applies: a blank or
// placeholder title deletes the note.
func (r *Retitle) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("edit: no persistence")
	}
	svc := app.New(r.Persistence)
	kept, err := svc.CommitNoteTitle(r.Date, r.NoteID, r.Title)
	if err != nil {
		return err
	}
	if !kept {
		_, _ = fmt.Fprintf(color.Output, "discarded %s (empty title)\n", r.NoteID)
	}
	return nil
}

type Move struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
	Target      string
}

func (m *Move) Do(ctx context.Context) error {
	if m.Persistence == nil {
		return errors.New("edit: no persistence")
	}
	svc := app.New(m.Persistence)
	if err := svc.MoveNote(m.Date, m.NoteID, m.Target); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "moved %s to %s\n", m.NoteID, m.Target)
	return nil
}
