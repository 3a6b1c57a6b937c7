package store

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// NewMemory returns an in-memory Persistence. It backs tests and the demo
// data source for the UI; semantics match the diskv implementation.
func NewMemory() Persistence {
	return &memory{data: make(map[string]string)}
}

type memory struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memory) Read(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *memory) Write(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memory) Erase(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memory) Keys(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		if strings.HasPrefix(key, Namespace) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *memory) Snapshot(_ context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.data))
	for key, val := range m.data {
		if strings.HasPrefix(key, Namespace) {
			out[key] = val
		}
	}
	return out, nil
}

func (m *memory) Replace(_ context.Context, data map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.data {
		if strings.HasPrefix(key, Namespace) {
			delete(m.data, key)
		}
	}
	for key, val := range data {
		m.data[key] = val
	}
	return nil
}

func (m *memory) Watch(ctx context.Context) (<-chan Event, error) {
	// Memory stores are single-process; nothing external can change them.
	events := make(chan Event)
	go func() {
		<-ctx.Done()
		close(events)
	}()
	return events, nil
}
