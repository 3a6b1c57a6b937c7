// Package store persists the planner's state as a flat string-key/JSON-value
// namespace. Every key carries the "tweek-" prefix; the rule list, the
// materialization ledger, each day bucket, and the view settings own disjoint
// keys and are always written as whole values.
package store

import (
	"context"
	"strings"
)

const (
	// Namespace prefixes every key the planner owns.
	Namespace = "tweek-"

	// dataVersion tags the versioned payload keys.
	dataVersion = "v11"

	bucketPrefix = Namespace + "final-" + dataVersion + "-"

	// ViewSettingsKey holds the persisted view settings (unversioned).
	ViewSettingsKey = Namespace + "view-settings"
)

// RulesKey returns the key holding the full rule list.
func RulesKey() string { return Namespace + "rules-" + dataVersion }

// HistoryKey returns the key holding the materialization ledger.
func HistoryKey() string { return Namespace + "history-" + dataVersion }

// BucketKey returns the key holding the note list for a day.
func BucketKey(dateKey string) string { return bucketPrefix + dateKey }

// DateKeyOf extracts the day key from a bucket key; ok is false for any other
// kind of key.
func DateKeyOf(key string) (string, bool) {
	if !strings.HasPrefix(key, bucketPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, bucketPrefix), true
}

// Persistence is the raw storage contract. Values are opaque strings (JSON
// documents at every call site). Read reports ok=false for an absent key.
type Persistence interface {
	Read(key string) (string, bool, error)
	Write(key, value string) error
	Erase(key string) error
	Keys(ctx context.Context) ([]string, error)

	// Snapshot returns every namespaced key mapped to its raw stored value,
	// suitable for backup export.
	Snapshot(ctx context.Context) (map[string]string, error)

	// Replace atomically swaps the namespace for the given payload: clear
	// every namespaced key, then write every pair. Callers must reload all
	// in-memory state afterwards.
	Replace(ctx context.Context, data map[string]string) error

	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
