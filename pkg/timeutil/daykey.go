// Package timeutil provides local-calendar day keys and window math for the
// planner. Keys are always derived from local date components; a UTC-derived
// key can disagree with the displayed column near midnight.
package timeutil

import (
	"fmt"
	"time"
)

const LayoutISO = "2006-01-02"

// DayKey formats t as YYYY-MM-DD using the local calendar day.
func DayKey(t time.Time) string {
	y, m, d := t.Local().Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

// ParseDayKey returns local midnight for a YYYY-MM-DD key.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: bad day key %q: %w", key, err)
	}
	return t, nil
}

// WeekdayOf returns the weekday for a day key. Sunday is 0.
func WeekdayOf(key string) (time.Weekday, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// AddDays steps a day key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseDayKey(key)
	if err != nil {
		return "", err
	}
	return DayKey(t.AddDate(0, 0, n)), nil
}

// Day is one column of the visible window.
type Day struct {
	Key     string
	Date    time.Time
	Weekday time.Weekday
	Today   bool
}

// Window derives the visible columns: total days starting at
// now - past + offset. The zero offset is the stored default view.
func Window(now time.Time, total, past, offset int) []Day {
	today := DayKey(now)
	start := now.AddDate(0, 0, -past+offset)
	days := make([]Day, 0, total)
	for i := 0; i < total; i++ {
		d := start.AddDate(0, 0, i)
		key := DayKey(d)
		days = append(days, Day{
			Key:     key,
			Date:    d,
			Weekday: d.Weekday(),
			Today:   key == today,
		})
	}
	return days
}
