// Package series manages recurrence from the command line: listing rules,
// attaching a series to a note, and clearing one.
package series

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/printers"
	"tableflip.dev/tweek/pkg/store"
)

type List struct {
	Persistence store.Persistence
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("series: no persistence")
	}
	svc := app.New(l.Persistence)
	all, err := svc.Rules.List()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, "no recurring series")
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Rules(all)
	return nil
}

type Configure struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
	Days        []time.Weekday
}

// Do applies the weekday set to the note. An empty set on an existing series
// deletes the series, matching the settings dialog semantics.
func (c *Configure) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("series: no persistence")
	}
	svc := app.New(c.Persistence)
	r, err := svc.ConfigureSeries(c.Date, c.NoteID, c.Days)
	if err != nil {
		return err
	}
	if r.ID == "" {
		_, _ = fmt.Fprintln(color.Output, "series cleared")
		return nil
	}
	_, _ = fmt.Fprintf(color.Output, "repeats on %s (rule %s)\n", printers.WeekdaySet(r.Days), r.ID)
	return nil
}

type Clear struct {
	Persistence store.Persistence
	Date        string
	NoteID      string
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Persistence == nil {
		return errors.New("series: no persistence")
	}
	svc := app.New(c.Persistence)
	return svc.ClearSeries(c.Date, c.NoteID)
}
