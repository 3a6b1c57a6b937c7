// Package find fuzzy-searches note and card titles across every day bucket.
package find

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/sahilm/fuzzy"

	"tableflip.dev/tweek/pkg/bucket"
	"tableflip.dev/tweek/pkg/store"
)

type Find struct {
	Persistence store.Persistence
	Query       string
	Limit       int
}

type hit struct {
	DateKey string
	ID      string
	Title   string
	Card    bool
}

type corpus []hit

func (c corpus) String(i int) string { return c[i].Title }
func (c corpus) Len() int            { return len(c) }

func (f *Find) Do(ctx context.Context) error {
	if f.Persistence == nil {
		return errors.New("find: no persistence")
	}
	if f.Query == "" {
		return errors.New("find: empty query")
	}

	keys, err := f.Persistence.Keys(ctx)
	if err != nil {
		return err
	}
	dateKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		if dk, ok := store.DateKeyOf(key); ok {
			dateKeys = append(dateKeys, dk)
		}
	}
	sort.Strings(dateKeys)

	buckets := bucket.NewStore(f.Persistence)
	var all corpus
	for _, dk := range dateKeys {
		notes, err := buckets.Get(dk)
		if err != nil {
			return err
		}
		for _, n := range notes {
			all = append(all, hit{DateKey: dk, ID: n.ID, Title: n.Title})
			for _, c := range n.Cards {
				all = append(all, hit{DateKey: dk, ID: c.ID, Title: c.Title, Card: true})
			}
		}
	}

	matches := fuzzy.FindFrom(f.Query, all)
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	if len(matches) == 0 {
		faint := color.New(color.Faint, color.Italic)
		_, _ = faint.Fprintln(color.Output, "no matches")
		return nil
	}

	date := color.New(color.FgHiCyan)
	id := color.New(color.FgHiYellow, color.Faint)
	for _, m := range matches {
		h := all[m.Index]
		kind := "note"
		if h.Card {
			kind = "card"
		}
		_, _ = date.Fprintf(color.Output, "%s  ", h.DateKey)
		_, _ = fmt.Fprintf(color.Output, "%-50s ", h.Title)
		_, _ = id.Fprintf(color.Output, "%s %s\n", kind, h.ID)
	}
	return nil
}
