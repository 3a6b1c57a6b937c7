// Package bucket persists the ordered note list for each calendar day. Array
// position is the only ordering signal, and the unit of persistence is the
// whole day — Set always overwrites the full list, never a delta.
package bucket

import (
	"encoding/json"
	"fmt"
	"sync"

	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/store"
)

// Store reads and writes day buckets. One mutex serializes all bucket writes;
// each date key is still a distinct persisted key.
type Store struct {
	mu sync.Mutex
	p  store.Persistence
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// Get returns the ordered note list for a day, empty if absent.
func (s *Store) Get(dateKey string) ([]note.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(dateKey)
}

// Set overwrites the stored bucket with a full snapshot of notes.
func (s *Store) Set(dateKey string, notes []note.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(dateKey, notes)
}

// Mutate applies fn to the bucket under the store lock and persists the
// result as a full snapshot. fn receives a deep copy it may reorder or edit
// in place; returning false skips the write.
func (s *Store) Mutate(dateKey string, fn func(notes []note.Note) ([]note.Note, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	notes, err := s.load(dateKey)
	if err != nil {
		return err
	}
	out, changed := fn(notes)
	if !changed {
		return nil
	}
	return s.save(dateKey, out)
}

func (s *Store) load(dateKey string) ([]note.Note, error) {
	val, ok, err := s.p.Read(store.BucketKey(dateKey))
	if err != nil {
		return nil, err
	}
	if !ok {
		return []note.Note{}, nil
	}
	var notes []note.Note
	if err := json.Unmarshal([]byte(val), &notes); err != nil {
		return nil, fmt.Errorf("bucket: decode %s: %w", dateKey, err)
	}
	for i := range notes {
		if notes[i].Cards == nil {
			notes[i].Cards = []note.Card{}
		}
	}
	return notes, nil
}

func (s *Store) save(dateKey string, notes []note.Note) error {
	if notes == nil {
		notes = []note.Note{}
	}
	for i := range notes {
		if notes[i].Cards == nil {
			notes[i].Cards = []note.Card{}
		}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("bucket: encode %s: %w", dateKey, err)
	}
	return s.p.Write(store.BucketKey(dateKey), string(data))
}
