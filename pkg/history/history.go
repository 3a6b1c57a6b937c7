// Package history is the materialization ledger: the permanent set of
// (rule, date) pairs already decided. It only grows — entries survive the
// deletion of both the rule and the materialized note, which is what keeps a
// deleted occurrence from being resurrected on the next render.
package history

import (
	"encoding/json"
	"fmt"
	"sync"

	"tableflip.dev/tweek/pkg/store"
)

// Key builds the composite ledger key for a rule occurrence.
func Key(ruleID, dateKey string) string {
	return ruleID + "_" + dateKey
}

// Ledger is the append-only dedup set backed by a single persisted key.
type Ledger struct {
	mu sync.Mutex
	p  store.Persistence
}

func NewLedger(p store.Persistence) *Ledger {
	return &Ledger{p: p}
}

// Has reports whether the key was already decided.
func (l *Ledger) Has(key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	all, err := l.load()
	if err != nil {
		return false, err
	}
	for _, k := range all {
		if k == key {
			return true, nil
		}
	}
	return false, nil
}

// Add records a decided key. Adding a present key is a no-op: the ledger is a
// set, not a multiset.
func (l *Ledger) Add(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	all, err := l.load()
	if err != nil {
		return err
	}
	for _, k := range all {
		if k == key {
			return nil
		}
	}
	return l.save(append(all, key))
}

func (l *Ledger) load() ([]string, error) {
	val, ok, err := l.p.Read(store.HistoryKey())
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	var all []string
	if err := json.Unmarshal([]byte(val), &all); err != nil {
		return nil, fmt.Errorf("history: decode ledger: %w", err)
	}
	return all, nil
}

func (l *Ledger) save(all []string) error {
	data, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("history: encode ledger: %w", err)
	}
	return l.p.Write(store.HistoryKey(), string(data))
}
