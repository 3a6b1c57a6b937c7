package tui

import (
	"time"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/timeutil"
)

// DemoData builds an in-memory persistence seeded with a few days of sample
// notes and one recurring series, for poking at the board without touching
// the real database.
func DemoData() store.Persistence {
	p := store.NewMemory()
	svc := app.New(p)

	now := time.Now()
	today := timeutil.DayKey(now)
	tomorrow := timeutil.DayKey(now.AddDate(0, 0, 1))

	if n, err := svc.AddNote(today, "Plan the week", ""); err == nil {
		if c, err := svc.AddCard(today, n.ID, note.DefaultCardTitle); err == nil {
			svc.CommitCardTitle(today, n.ID, c.ID, "Pick three priorities")
		}
		svc.SetNoteBody(today, n.ID, "Keep it short.")
	}
	if n, err := svc.AddNote(today, "Water the plants", ""); err == nil {
		svc.ToggleDone(today, n.ID)
	}
	if n, err := svc.AddNote(tomorrow, "Standup notes", ""); err == nil {
		svc.ConfigureSeries(tomorrow, n.ID, []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		})
	}

	return p
}
