// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/timeutil"
)

// DateOptions selects the day a command operates on.
type DateOptions struct {
	Date string
}

// AddDateArgs wires the --date flag, defaulting to today.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", timeutil.DayKey(time.Now()),
		"Day to operate on (YYYY-MM-DD).")
}

// WindowOptions override the stored view settings for one render.
type WindowOptions struct {
	Days   int
	Past   int
	Offset int
	Span   string
}

// AddWindowArgs wires the window override flags.
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().IntVar(&o.Days, "days", 0,
		"Number of day columns (default: saved view settings).")
	cmd.Flags().IntVar(&o.Past, "past", -1,
		"Days of lookback before today (default: saved view settings).")
	cmd.Flags().IntVar(&o.Offset, "offset", 0,
		"Shift the window by this many days without saving.")
	cmd.Flags().StringVar(&o.Span, "span", "",
		"Column count as a span, e.g. 10d or 2w (overrides --days).")
}

// IDOptions toggles id output.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the --show-ids flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-ids", false,
		"Print note and card ids.")
}

// DaysOptions captures a weekday set for series commands.
type DaysOptions struct {
	Days string
}

// AddDaysArgs wires the --on flag.
func AddDaysArgs(cmd *cobra.Command, o *DaysOptions) {
	cmd.Flags().StringVar(&o.Days, "on", "",
		"Weekdays for the series, e.g. mon,wed or 1,3. Empty clears the series.")
}

var weekdayAliases = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday, "0": time.Sunday,
	"mon": time.Monday, "monday": time.Monday, "1": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday, "2": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday, "3": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday, "4": time.Thursday,
	"fri": time.Friday, "friday": time.Friday, "5": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday, "6": time.Saturday,
}

// Weekdays parses the --on value into a weekday set, preserving input order
// and dropping duplicates. An empty value parses to an empty set.
func (o *DaysOptions) Weekdays() ([]time.Weekday, error) {
	trimmed := strings.TrimSpace(o.Days)
	if trimmed == "" {
		return nil, nil
	}
	seen := make(map[time.Weekday]bool, 7)
	out := make([]time.Weekday, 0, 7)
	for _, part := range strings.Split(trimmed, ",") {
		wd, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", strings.TrimSpace(part))
		}
		if !seen[wd] {
			seen[wd] = true
			out = append(out, wd)
		}
	}
	return out, nil
}
