package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/attestia/docregistry/internal/registry"
)

var (
	ErrNotFound = errors.New("document not found")
)

// MemoryRepo is an ordered in-memory store used for unit tests and as a
// fallback when MongoDB is not configured or unreachable. Iteration follows
// ascending key order, matching the Mongo-backed repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	docs map[string]registry.Document
	keys []string // kept sorted
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{docs: make(map[string]registry.Document)}
}

func (m *MemoryRepo) Insert(ctx context.Context, doc *registry.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[doc.ID]; !ok {
		i := sort.SearchStrings(m.keys, doc.ID)
		m.keys = append(m.keys, "")
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = doc.ID
	}
	m.docs[doc.ID] = *doc
	return nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*registry.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (m *MemoryRepo) Replace(ctx context.Context, doc *registry.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[doc.ID]; !ok {
		return ErrNotFound
	}
	m.docs[doc.ID] = *doc
	return nil
}

// Delete removes the record and returns it as it existed before removal.
func (m *MemoryRepo) Delete(ctx context.Context, id string) (*registry.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.docs, id)
	i := sort.SearchStrings(m.keys, id)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	return &d, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*registry.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*registry.Document, 0, len(m.keys))
	for _, k := range m.keys {
		d := m.docs[k]
		out = append(out, &d)
	}
	return out, nil
}
