package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rmalloy/folio/internal/content"
)

// MemoryStore keeps the document in memory. Data is lost on restart.
// Safe for concurrent use; used in tests and throwaway environments.
type MemoryStore struct {
	mu  sync.RWMutex
	doc content.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{doc: content.Document{}}
}

// deepCopy round-trips a value through JSON so callers and the store never
// share mutable structures.
func deepCopy(src any) any {
	if src == nil {
		return nil
	}
	b, _ := json.Marshal(src)
	var dst any
	_ = json.Unmarshal(b, &dst)
	return dst
}

func (m *MemoryStore) Load(ctx context.Context) (content.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := content.Document{}
	for name, value := range m.doc {
		out[name] = deepCopy(value)
	}
	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, doc content.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := content.Document{}
	for name, value := range doc {
		out[name] = deepCopy(value)
	}
	m.doc = out
	return nil
}

func (m *MemoryStore) LoadSection(ctx context.Context, name string) (any, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.doc[name]
	if !ok {
		return nil, false, nil
	}
	return deepCopy(value), true, nil
}

func (m *MemoryStore) SaveSection(ctx context.Context, name string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc[name] = deepCopy(value)
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
