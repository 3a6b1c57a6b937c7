package store

import (
	"context"
	"testing"
)

func TestKeyHelpers(t *testing.T) {
	if got := RulesKey(); got != "tweek-rules-v11" {
		t.Fatalf("unexpected rules key: %s", got)
	}
	if got := HistoryKey(); got != "tweek-history-v11" {
		t.Fatalf("unexpected history key: %s", got)
	}
	if got := BucketKey("2024-01-03"); got != "tweek-final-v11-2024-01-03" {
		t.Fatalf("unexpected bucket key: %s", got)
	}
	if ViewSettingsKey != "tweek-view-settings" {
		t.Fatalf("unexpected view settings key: %s", ViewSettingsKey)
	}
}

func TestDateKeyOf(t *testing.T) {
	if dk, ok := DateKeyOf("tweek-final-v11-2024-01-03"); !ok || dk != "2024-01-03" {
		t.Fatalf("expected 2024-01-03, got %q ok=%v", dk, ok)
	}
	if _, ok := DateKeyOf("tweek-rules-v11"); ok {
		t.Fatalf("rules key must not classify as a bucket")
	}
	if _, ok := DateKeyOf("unrelated"); ok {
		t.Fatalf("foreign key must not classify as a bucket")
	}
}

func TestMemoryReadWriteErase(t *testing.T) {
	p := NewMemory()

	if _, ok, err := p.Read("tweek-rules-v11"); err != nil || ok {
		t.Fatalf("expected absent key, ok=%v err=%v", ok, err)
	}
	if err := p.Write("tweek-rules-v11", `[]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	val, ok, err := p.Read("tweek-rules-v11")
	if err != nil || !ok || val != `[]` {
		t.Fatalf("read back mismatch: %q ok=%v err=%v", val, ok, err)
	}
	if err := p.Erase("tweek-rules-v11"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok, _ := p.Read("tweek-rules-v11"); ok {
		t.Fatalf("expected key erased")
	}
}

func TestSnapshotReplaceRoundTrip(t *testing.T) {
	ctx := context.Background()
	p := NewMemory()

	seed := map[string]string{
		"tweek-rules-v11":            `[{"id":"r1"}]`,
		"tweek-history-v11":          `["r1_2024-01-03"]`,
		"tweek-final-v11-2024-01-03": `[{"id":"n1","title":"Standup","cards":[]}]`,
		"tweek-view-settings":        `{"total":7,"past":1,"darkMode":false}`,
	}
	for key, val := range seed {
		if err := p.Write(key, val); err != nil {
			t.Fatalf("seed %s: %v", key, err)
		}
	}

	snap, err := p.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(snap) != len(seed) {
		t.Fatalf("expected %d keys, got %d", len(seed), len(snap))
	}

	other := NewMemory()
	if err := other.Write("tweek-final-v11-2020-05-05", `[]`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := other.Replace(ctx, snap); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := other.Snapshot(ctx)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(got) != len(seed) {
		t.Fatalf("expected stale keys cleared, got %d keys", len(got))
	}
	for key, want := range seed {
		if got[key] != want {
			t.Fatalf("%s: expected %q, got %q", key, want, got[key])
		}
	}
}

func TestDiskvRoundTrip(t *testing.T) {
	p, err := Load(&fileConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	key := BucketKey("2024-01-03")
	if err := p.Write(key, `[{"id":"n1","title":"Standup","cards":[]}]`); err != nil {
		t.Fatalf("write: %v", err)
	}
	val, ok, err := p.Read(key)
	if err != nil || !ok {
		t.Fatalf("read: ok=%v err=%v", ok, err)
	}
	if val != `[{"id":"n1","title":"Standup","cards":[]}]` {
		t.Fatalf("value mismatch: %q", val)
	}

	keys, err := p.Keys(context.Background())
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != key {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := p.Erase(key); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if _, ok, _ := p.Read(key); ok {
		t.Fatalf("expected key erased")
	}
	// Erasing an absent key is not an error.
	if err := p.Erase(key); err != nil {
		t.Fatalf("erase absent: %v", err)
	}
}
