// Package show renders the visible planner window to the terminal.
package show

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/printers"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/timeutil"
)

type Show struct {
	Persistence store.Persistence
	ShowID      bool

	// Zero values defer to the saved view settings.
	Days   int
	Past   int
	Offset int
}

func (s *Show) Do(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("show: no persistence")
	}
	svc := app.New(s.Persistence)

	settings, err := svc.View.Get()
	if err != nil {
		return err
	}
	total := settings.Total
	if s.Days > 0 {
		total = s.Days
	}
	past := settings.Past
	if s.Past >= 0 {
		past = s.Past
	}

	window := timeutil.Window(time.Now(), total, past, s.Offset)
	days := make([]app.Day, 0, len(window))
	for _, d := range window {
		notes, err := svc.RenderDay(d.Key)
		if err != nil {
			return err
		}
		days = append(days, app.Day{Day: d, Notes: notes})
	}

	pp := printers.PrettyPrint{ShowID: s.ShowID}
	pp.NewLine()
	pp.Window(days)
	return nil
}
