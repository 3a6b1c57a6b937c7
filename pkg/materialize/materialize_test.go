package materialize

import (
	"testing"
	"time"

	"tableflip.dev/tweek/pkg/bucket"
	"tableflip.dev/tweek/pkg/history"
	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/rule"
	"tableflip.dev/tweek/pkg/rules"
	"tableflip.dev/tweek/pkg/store"
)

func newEngine(t *testing.T) (*Engine, *rules.Store, *history.Ledger, *bucket.Store) {
	t.Helper()
	p := store.NewMemory()
	r := rules.NewStore(p)
	l := history.NewLedger(p)
	b := bucket.NewStore(p)
	return New(r, l, b), r, l, b
}

func standup() rule.Rule {
	return rule.Rule{
		ID:        "r1",
		Title:     "Standup",
		Days:      []time.Weekday{time.Monday, time.Wednesday},
		StartDate: "2024-01-01",
	}
}

func TestEnsureMaterializesDueRule(t *testing.T) {
	e, r, l, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	// 2024-01-03 is a Wednesday.
	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	notes, err := b.Get("2024-01-03")
	if err != nil {
		t.Fatalf("get bucket: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	n := notes[0]
	if n.SeriesID != "r1" || n.Title != "Standup" {
		t.Fatalf("unexpected occurrence: %+v", n)
	}
	if n.ID == "" {
		t.Fatalf("occurrence must get a fresh id")
	}
	if len(n.Cards) != 0 {
		t.Fatalf("occurrence must start with no cards")
	}

	decided, err := l.Has("r1_2024-01-03")
	if err != nil {
		t.Fatalf("has: %v", err)
	}
	if !decided {
		t.Fatalf("expected ledger entry r1_2024-01-03")
	}
}

func TestEnsureSkipsNonMatchingWeekday(t *testing.T) {
	e, r, _, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	// 2024-01-02 is a Tuesday; the rule covers Monday and Wednesday.
	if err := e.Ensure("2024-01-02", time.Tuesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	notes, err := b.Get("2024-01-02")
	if err != nil {
		t.Fatalf("get bucket: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected no notes, got %d", len(notes))
	}
}

func TestEnsureSkipsBeforeAnchor(t *testing.T) {
	e, r, _, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	// 2023-12-27 is a Wednesday but precedes the anchor date.
	if err := e.Ensure("2023-12-27", time.Wednesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	notes, _ := b.Get("2023-12-27")
	if len(notes) != 0 {
		t.Fatalf("expected no notes before the anchor, got %d", len(notes))
	}
}

func TestEnsureIsIdempotent(t *testing.T) {
	e, r, _, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	first, _ := b.Get("2024-01-03")

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	second, _ := b.Get("2024-01-03")

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected exactly one occurrence, got %d then %d", len(first), len(second))
	}
	if first[0].ID != second[0].ID {
		t.Fatalf("second call must not replace the occurrence")
	}
}

func TestDeletedOccurrenceStaysDeleted(t *testing.T) {
	e, r, _, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	// User deletes the materialized note.
	if err := b.Set("2024-01-03", []note.Note{}); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("re-ensure: %v", err)
	}
	notes, _ := b.Get("2024-01-03")
	for _, n := range notes {
		if n.SeriesID == "r1" {
			t.Fatalf("deleted occurrence was resurrected: %+v", n)
		}
	}
	if len(notes) != 0 {
		t.Fatalf("expected bucket to stay empty, got %d notes", len(notes))
	}
}

func TestDefensiveBucketCheckSkipsWithoutLedgerWrite(t *testing.T) {
	e, r, l, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}

	// An occurrence exists in the bucket without a ledger entry.
	orphan := note.New("Standup")
	orphan.SeriesID = "r1"
	if err := b.Set("2024-01-03", []note.Note{orphan}); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	notes, _ := b.Get("2024-01-03")
	if len(notes) != 1 || notes[0].ID != orphan.ID {
		t.Fatalf("expected existing occurrence untouched, got %+v", notes)
	}
	decided, _ := l.Has("r1_2024-01-03")
	if decided {
		t.Fatalf("defensive skip must not write a ledger entry")
	}
}

func TestScopeControlsBodyCopy(t *testing.T) {
	e, r, _, b := newEngine(t)

	all := rule.Rule{ID: "ra", Title: "Review", Body: "checklist", Scope: rule.ScopeAll,
		Days: []time.Weekday{time.Wednesday}, StartDate: "2024-01-01"}
	occ := rule.Rule{ID: "rb", Title: "Journal", Body: "private", Scope: rule.ScopeOccurrence,
		Days: []time.Weekday{time.Wednesday}, StartDate: "2024-01-01"}
	if err := r.Add(all); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := r.Add(occ); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	notes, _ := b.Get("2024-01-03")
	if len(notes) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(notes))
	}
	byRule := map[string]string{}
	for _, n := range notes {
		byRule[n.SeriesID] = n.Body
	}
	if byRule["ra"] != "checklist" {
		t.Fatalf("scope all must copy the body, got %q", byRule["ra"])
	}
	if byRule["rb"] != "" {
		t.Fatalf("per-occurrence scope must leave the body blank, got %q", byRule["rb"])
	}
}

func TestEmptyDaysRuleIsInert(t *testing.T) {
	e, r, _, b := newEngine(t)
	if err := r.Add(rule.Rule{ID: "r1", Title: "Never", StartDate: "2024-01-01"}); err != nil {
		t.Fatalf("add: %v", err)
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if err := e.Ensure("2024-01-07", wd); err != nil {
			t.Fatalf("ensure: %v", err)
		}
	}
	notes, _ := b.Get("2024-01-07")
	if len(notes) != 0 {
		t.Fatalf("empty-days rule must never materialize, got %d notes", len(notes))
	}
}

func TestEnsureAppendsAfterExistingNotes(t *testing.T) {
	e, r, _, b := newEngine(t)
	if err := r.Add(standup()); err != nil {
		t.Fatalf("add rule: %v", err)
	}
	manual := note.New("Groceries")
	if err := b.Set("2024-01-03", []note.Note{manual}); err != nil {
		t.Fatalf("set: %v", err)
	}

	if err := e.Ensure("2024-01-03", time.Wednesday); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	notes, _ := b.Get("2024-01-03")
	if len(notes) != 2 || notes[0].ID != manual.ID || notes[1].SeriesID != "r1" {
		t.Fatalf("occurrence must append to the end: %+v", notes)
	}
}
