// Package settings reads and updates the persisted view settings.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/view"
)

type Settings struct {
	Persistence store.Persistence

	// Negative values leave the stored value alone.
	Total      int
	Past       int
	ToggleDark bool
}

func (s *Settings) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("settings: no persistence")
	}
	vs := view.NewStore(s.Persistence)

	if s.ToggleDark {
		if _, err := vs.ToggleDarkMode(); err != nil {
			return err
		}
	}

	current, err := vs.Get()
	if err != nil {
		return err
	}

	if s.Total >= 0 || s.Past >= 0 {
		next := current
		if s.Total >= 0 {
			next.Total = s.Total
		}
		if s.Past >= 0 {
			next.Past = s.Past
		}
		if err := vs.Save(next); err != nil {
			return err
		}
		current = next
	}

	theme := "light"
	if current.DarkMode {
		theme = "dark"
	}
	_, _ = fmt.Fprintf(color.Output, "showing %d days, %d in the past, %s theme\n",
		current.Total, current.Past, theme)
	return nil
}
