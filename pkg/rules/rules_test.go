package rules

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/tweek/pkg/rule"
	"tableflip.dev/tweek/pkg/store"
)

func TestAddListRoundTrip(t *testing.T) {
	s := NewStore(store.NewMemory())

	r := rule.New("Standup", "2024-01-01", []time.Weekday{time.Monday, time.Wednesday})
	if err := s.Add(r); err != nil {
		t.Fatalf("add: %v", err)
	}

	all, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(all))
	}
	if all[0].ID != r.ID || all[0].Title != "Standup" || all[0].StartDate != "2024-01-01" {
		t.Fatalf("stored rule mismatch: %+v", all[0])
	}
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	s := NewStore(store.NewMemory())
	r := rule.New("Standup", "2024-01-01", []time.Weekday{time.Monday})
	r.Body = "agenda"
	if err := s.Add(r); err != nil {
		t.Fatalf("add: %v", err)
	}

	title := "Sync"
	got, err := s.Update(r.ID, Patch{Title: &title, Days: []time.Weekday{time.Friday}})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "Sync" {
		t.Fatalf("expected patched title, got %s", got.Title)
	}
	if got.Body != "agenda" {
		t.Fatalf("expected body untouched, got %q", got.Body)
	}
	if len(got.Days) != 1 || got.Days[0] != time.Friday {
		t.Fatalf("expected days replaced, got %v", got.Days)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	s := NewStore(store.NewMemory())
	if _, err := s.Update("nope", Patch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	s := NewStore(store.NewMemory())
	r := rule.New("Standup", "2024-01-01", []time.Weekday{time.Monday})
	if err := s.Add(r); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Remove(r.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	all, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list, got %d", len(all))
	}
	// Removing a rule that no longer exists is a silent no-op.
	if err := s.Remove(r.ID); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestRuleMatches(t *testing.T) {
	r := rule.Rule{ID: "r1", Days: []time.Weekday{time.Monday, time.Wednesday}, StartDate: "2024-01-01"}

	if !r.Matches("2024-01-03", time.Wednesday) {
		t.Fatalf("expected match on a listed weekday after the anchor")
	}
	if r.Matches("2024-01-02", time.Tuesday) {
		t.Fatalf("expected no match on an unlisted weekday")
	}
	if r.Matches("2023-12-27", time.Wednesday) {
		t.Fatalf("expected no match before the anchor date")
	}
	// A rule with no selected days never matches; it is inert, not an error.
	inert := rule.Rule{ID: "r2", StartDate: "2024-01-01"}
	if inert.Matches("2024-01-03", time.Wednesday) {
		t.Fatalf("expected empty-days rule to be inert")
	}
}
