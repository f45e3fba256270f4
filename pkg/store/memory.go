package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryArchive keeps records in process memory. It backs `tetrado serve`
// when no MongoDB URI is configured, so runs can still be fetched by ID for
// the lifetime of the server.
type MemoryArchive struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Record
	limit   int
	order   []uuid.UUID
}

// NewMemoryArchive returns an archive holding at most limit records. Older
// records are evicted first. A limit of zero is unbounded.
func NewMemoryArchive(limit int) *MemoryArchive {
	return &MemoryArchive{records: make(map[uuid.UUID]*Record), limit: limit}
}

func (a *MemoryArchive) Save(_ context.Context, rec *Record) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.records[rec.RunID]; !ok {
		a.order = append(a.order, rec.RunID)
	}
	a.records[rec.RunID] = rec
	for a.limit > 0 && len(a.order) > a.limit {
		delete(a.records, a.order[0])
		a.order = a.order[1:]
	}
	return nil
}

func (a *MemoryArchive) Get(_ context.Context, id uuid.UUID) (*Record, bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	rec, ok := a.records[id]
	return rec, ok, nil
}

// Len returns the number of stored records.
func (a *MemoryArchive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.records)
}

func (a *MemoryArchive) Close() error { return nil }
