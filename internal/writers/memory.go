package writers

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryDirectory is an in-memory Directory used when no Mongo connection is
// configured, and in unit tests.
type MemoryDirectory struct {
	mu      sync.RWMutex
	writers map[string]Writer
}

func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{writers: make(map[string]Writer)}
}

func (m *MemoryDirectory) Get(ctx context.Context, id string) (*Writer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if w, ok := m.writers[id]; ok {
		return &w, nil
	}
	return nil, nil
}

func (m *MemoryDirectory) List(ctx context.Context) ([]Writer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Writer, 0, len(m.writers))
	for _, w := range m.writers {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryDirectory) Upsert(ctx context.Context, w *Writer) (*Writer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	stored, ok := m.writers[w.ID]
	if !ok {
		stored = Writer{ID: w.ID, CreatedAt: now}
	}
	stored.Name = w.Name
	stored.Email = w.Email
	stored.UpdatedAt = now
	m.writers[w.ID] = stored
	return &stored, nil
}
