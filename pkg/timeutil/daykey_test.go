package timeutil

import (
	"testing"
	"time"
)

func TestDayKeyUsesLocalComponents(t *testing.T) {
	// 23:30 local on Jan 3 must key as Jan 3 even though the UTC date may
	// already be Jan 4.
	local := time.Date(2024, time.January, 3, 23, 30, 0, 0, time.Local)
	if got := DayKey(local); got != "2024-01-03" {
		t.Fatalf("expected 2024-01-03, got %s", got)
	}
}

func TestParseDayKeyRoundTrip(t *testing.T) {
	on, err := ParseDayKey("2024-01-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := DayKey(on); got != "2024-01-03" {
		t.Fatalf("round trip mismatch: %s", got)
	}
	if on.Weekday() != time.Wednesday {
		t.Fatalf("expected Wednesday, got %v", on.Weekday())
	}
}

func TestParseDayKeyInvalid(t *testing.T) {
	if _, err := ParseDayKey("01/03/2024"); err == nil {
		t.Fatalf("expected error for invalid key")
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	got, err := AddDays("2024-01-31", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-02-01" {
		t.Fatalf("expected 2024-02-01, got %s", got)
	}
}

func TestWindow(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)

	days := Window(now, 3, 1, 0)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Key != "2024-01-09" {
		t.Fatalf("expected lookback start 2024-01-09, got %s", days[0].Key)
	}
	if !days[1].Today {
		t.Fatalf("expected second column to be today")
	}
	if days[2].Key != "2024-01-11" {
		t.Fatalf("expected 2024-01-11, got %s", days[2].Key)
	}
}

func TestWindowOffsetShifts(t *testing.T) {
	now := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.Local)
	days := Window(now, 2, 0, 7)
	if days[0].Key != "2024-01-17" {
		t.Fatalf("expected 2024-01-17, got %s", days[0].Key)
	}
	for _, d := range days {
		if d.Today {
			t.Fatalf("shifted window should not contain today")
		}
	}
}

func TestParseSpan(t *testing.T) {
	cases := []struct {
		in   string
		want int
		err  bool
	}{
		{"10d", 10, false},
		{"2w", 14, false},
		{"1w3d", 10, false},
		{"", 0, true},
		{"5h", 0, true},
		{"noop", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseSpan(tc.in)
		if tc.err {
			if err == nil {
				t.Fatalf("%q: expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
