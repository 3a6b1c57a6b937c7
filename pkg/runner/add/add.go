// Package add creates notes and cards from the command line.
package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/timeutil"
)

type Add struct {
	Persistence store.Persistence
	Date        string
	Title       string
	Body        string
}

func (a *Add) Do(ctx context.Context) error {
	if a.Persistence == nil {
		return errors.New("add: no persistence")
	}
	if _, err := timeutil.ParseDayKey(a.Date); err != nil {
		return err
	}
	// The CLI has no blur event; an empty or placeholder title would be
	// discarded on its first commit, so refuse it up front.
	if note.Blank(a.Title, note.DefaultTitle) {
		return errors.New("add: a note needs a real title")
	}

	svc := app.New(a.Persistence)
	n, err := svc.AddNote(a.Date, a.Title, a.Body)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "added %s to %s\n", n.ID, a.Date)
	return nil
}

type Card struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
	Title       string
}

func (c *Card) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("add: no persistence")
	}
	if note.Blank(c.Title, note.DefaultCardTitle) {
		return errors.New("add: a card needs a real title")
	}

	svc := app.New(c.Persistence)
	card, err := svc.AddCard(c.Date, c.NoteID, c.Title)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "added card %s\n", card.ID)
	return nil
}
