// Package materialize derives missing recurring occurrences into a day
// bucket. A decision, once recorded in the ledger, is permanent: deleting the
// materialized note never causes it to be synthesized again.
package materialize

import (
	"time"

	"tableflip.dev/tweek/pkg/history"
	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/rules"
)

// BucketStore is the slice of the bucket store the engine needs.
type BucketStore interface {
	Get(dateKey string) ([]note.Note, error)
	Set(dateKey string, notes []note.Note) error
}

// Engine materializes rule occurrences for a single day. It never looks
// beyond the date it is given; days outside the visible window are never
// pre-materialized.
type Engine struct {
	Rules  *rules.Store
	Ledger *history.Ledger
	Notes  BucketStore
}

// New wires an engine over the shared persistence.
func New(r *rules.Store, l *history.Ledger, b BucketStore) *Engine {
	return &Engine{Rules: r, Ledger: l, Notes: b}
}

// Ensure appends an occurrence for every rule due on dateKey that has not
// been decided yet. It is idempotent: a second call finds every creation key
// in the ledger and changes nothing.
func (e *Engine) Ensure(dateKey string, weekday time.Weekday) error {
	all, err := e.Rules.List()
	if err != nil {
		return err
	}

	var bucket []note.Note
	loaded := false
	changed := false

	for _, r := range all {
		if !r.Matches(dateKey, weekday) {
			continue
		}

		creationKey := history.Key(r.ID, dateKey)
		decided, err := e.Ledger.Has(creationKey)
		if err != nil {
			return err
		}
		if decided {
			continue
		}

		if !loaded {
			bucket, err = e.Notes.Get(dateKey)
			if err != nil {
				return err
			}
			loaded = true
		}

		// Unreachable under correct sequencing, but if an occurrence already
		// sits in the bucket without a ledger entry, leave both alone.
		if hasOccurrence(bucket, r.ID) {
			continue
		}

		occ := note.New(r.Title)
		occ.Body = r.OccurrenceBody()
		occ.SeriesID = r.ID
		bucket = append(bucket, occ)

		if err := e.Ledger.Add(creationKey); err != nil {
			return err
		}
		changed = true
	}

	if changed {
		return e.Notes.Set(dateKey, bucket)
	}
	return nil
}

func hasOccurrence(notes []note.Note, ruleID string) bool {
	for _, n := range notes {
		if n.SeriesID == ruleID {
			return true
		}
	}
	return false
}
