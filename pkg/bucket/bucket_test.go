package bucket

import (
	"testing"

	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/store"
)

func TestGetAbsentIsEmpty(t *testing.T) {
	s := NewStore(store.NewMemory())
	notes, err := s.Get("2024-01-03")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("expected empty bucket, got %d notes", len(notes))
	}
}

func TestSetGetPreservesOrder(t *testing.T) {
	s := NewStore(store.NewMemory())

	a := note.New("A")
	b := note.New("B")
	b.Cards = []note.Card{note.NewCard("task one"), note.NewCard("task two")}

	if err := s.Set("2024-01-03", []note.Note{a, b}); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get("2024-01-03")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("order not preserved: %+v", got)
	}
	if len(got[1].Cards) != 2 || got[1].Cards[0].Title != "task one" {
		t.Fatalf("cards not preserved: %+v", got[1].Cards)
	}
}

func TestSetOverwritesWholeBucket(t *testing.T) {
	s := NewStore(store.NewMemory())
	if err := s.Set("2024-01-03", []note.Note{note.New("A"), note.New("B")}); err != nil {
		t.Fatalf("set: %v", err)
	}
	only := note.New("C")
	if err := s.Set("2024-01-03", []note.Note{only}); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get("2024-01-03")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].ID != only.ID {
		t.Fatalf("expected full overwrite, got %+v", got)
	}
}

func TestMutateSkipWriteLeavesStoreUntouched(t *testing.T) {
	p := store.NewMemory()
	s := NewStore(p)

	err := s.Mutate("2024-01-03", func(notes []note.Note) ([]note.Note, bool) {
		return append(notes, note.New("ghost")), false
	})
	if err != nil {
		t.Fatalf("mutate: %v", err)
	}
	if _, ok, _ := p.Read(store.BucketKey("2024-01-03")); ok {
		t.Fatalf("expected no write when fn declines the change")
	}
}

func TestNilCardsNormalizedOnLoad(t *testing.T) {
	p := store.NewMemory()
	if err := p.Write(store.BucketKey("2024-01-03"), `[{"id":"n1","title":"A"}]`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s := NewStore(p)
	got, err := s.Get("2024-01-03")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got[0].Cards == nil {
		t.Fatalf("expected cards normalized to an empty list")
	}
}
