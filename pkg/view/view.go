// Package view holds the column-window settings: how many days are shown,
// how far the window reaches into the past, and the theme flag. A transient
// navigation offset shifts the window without touching the stored default.
package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/timeutil"
)

const (
	DefaultTotalDays = 7
	DefaultPastDays  = 1
)

// ErrInvalid rejects settings with a non-positive day count or negative
// lookback; nothing is mutated and no re-render should happen.
var ErrInvalid = errors.New("view: total days must be > 0 and past days >= 0")

// Settings is the persisted view configuration.
type Settings struct {
	Total    int  `json:"total"`
	Past     int  `json:"past"`
	DarkMode bool `json:"darkMode"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{Total: DefaultTotalDays, Past: DefaultPastDays}
}

// Validate checks the window bounds.
func (s Settings) Validate() error {
	if s.Total <= 0 || s.Past < 0 {
		return ErrInvalid
	}
	return nil
}

// Store persists settings and tracks the session-scoped navigation offset.
type Store struct {
	mu     sync.Mutex
	p      store.Persistence
	offset int
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// Get returns the stored settings, falling back to defaults when nothing was
// saved yet. Older payloads without a darkMode field decode to false.
func (s *Store) Get() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok, err := s.p.Read(store.ViewSettingsKey)
	if err != nil {
		return Settings{}, err
	}
	if !ok {
		return Default(), nil
	}
	var settings Settings
	if err := json.Unmarshal([]byte(val), &settings); err != nil {
		return Settings{}, fmt.Errorf("view: decode settings: %w", err)
	}
	return settings, nil
}

// Save validates and persists settings, and resets the navigation offset so
// the next render starts from the stored default window.
func (s *Store) Save(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("view: encode settings: %w", err)
	}
	if err := s.p.Write(store.ViewSettingsKey, string(data)); err != nil {
		return err
	}
	s.offset = 0
	return nil
}

// ToggleDarkMode flips and persists the theme flag without disturbing the
// navigation offset or the window bounds.
func (s *Store) ToggleDarkMode() (Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return Settings{}, err
	}
	settings.DarkMode = !settings.DarkMode

	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.Marshal(settings)
	if err != nil {
		return Settings{}, fmt.Errorf("view: encode settings: %w", err)
	}
	if err := s.p.Write(store.ViewSettingsKey, string(data)); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Navigate shifts the visible window by delta days.
func (s *Store) Navigate(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset += delta
}

// Offset returns the current navigation offset.
func (s *Store) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// Window derives the visible columns for now from the stored settings plus
// the navigation offset.
func (s *Store) Window(now time.Time) ([]timeutil.Day, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}
	return timeutil.Window(now, settings.Total, settings.Past, s.Offset()), nil
}
