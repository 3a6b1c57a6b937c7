package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/tui/theme"
)

// Run opens the planner board over the given persistence and blocks until the
// user quits.
func Run(p store.Persistence) error {
	svc := app.New(p)

	// When the user has never saved settings, seed the theme from the
	// terminal background instead of the stored darkMode default.
	if _, stored, _ := p.Read(store.ViewSettingsKey); !stored && termenv.HasDarkBackground() {
		if _, err := svc.View.ToggleDarkMode(); err != nil {
			return err
		}
	}

	settings, err := svc.View.Get()
	if err != nil {
		return err
	}
	th := theme.Light()
	if settings.DarkMode {
		th = theme.Dark()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events, err := p.Watch(ctx)
	if err != nil {
		// The board still works without live reloads.
		events = nil
	}

	program := tea.NewProgram(newModel(svc, th, events), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
