// Package rules stores recurring-series definitions. The unit of persistence
// is the whole rule list; every mutation rewrites it.
package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/tweek/pkg/rule"
	"tableflip.dev/tweek/pkg/store"
)

// ErrNotFound is returned when a rule id does not exist.
var ErrNotFound = errors.New("rules: rule not found")

// Patch carries the mutable fields of a rule; nil pointers leave the field
// untouched. A nil Days slice leaves the weekday set alone.
type Patch struct {
	Title *string
	Body  *string
	Scope *rule.Scope
	Days  []time.Weekday
}

// Store is the rule list backed by a single persisted key. Writes to that key
// are serialized by the store's own mutex.
type Store struct {
	mu sync.Mutex
	p  store.Persistence
}

func NewStore(p store.Persistence) *Store {
	return &Store{p: p}
}

// List returns every rule in stored order.
func (s *Store) List() ([]rule.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends a rule and persists the full list.
func (s *Store) Add(r rule.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	return s.save(append(all, r))
}

// Update applies a patch to the rule with the given id. Already-materialized
// notes are independent copies and are not touched.
func (s *Store) Update(id string, patch Patch) (rule.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return rule.Rule{}, err
	}
	for i := range all {
		if all[i].ID != id {
			continue
		}
		if patch.Title != nil {
			all[i].Title = *patch.Title
		}
		if patch.Body != nil {
			all[i].Body = *patch.Body
		}
		if patch.Scope != nil {
			all[i].Scope = *patch.Scope
		}
		if patch.Days != nil {
			all[i].Days = patch.Days
		}
		if err := s.save(all); err != nil {
			return rule.Rule{}, err
		}
		return all[i], nil
	}
	return rule.Rule{}, ErrNotFound
}

// Remove deletes the rule with the given id. Removing an unknown id is a
// silent no-op so callers can clear dangling series references freely.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, r := range all {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return s.save(kept)
}

// Get returns the rule with the given id.
func (s *Store) Get(id string) (rule.Rule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.load()
	if err != nil {
		return rule.Rule{}, err
	}
	for _, r := range all {
		if r.ID == id {
			return r, nil
		}
	}
	return rule.Rule{}, ErrNotFound
}

func (s *Store) load() ([]rule.Rule, error) {
	val, ok, err := s.p.Read(store.RulesKey())
	if err != nil {
		return nil, err
	}
	if !ok {
		return []rule.Rule{}, nil
	}
	var all []rule.Rule
	if err := json.Unmarshal([]byte(val), &all); err != nil {
		return nil, fmt.Errorf("rules: decode rule list: %w", err)
	}
	return all, nil
}

func (s *Store) save(all []rule.Rule) error {
	if all == nil {
		all = []rule.Rule{}
	}
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("rules: encode rule list: %w", err)
	}
	return s.p.Write(store.RulesKey(), string(data))
}
