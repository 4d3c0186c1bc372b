package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ohler55/ojg/oj"

	"github.com/rmalloy/folio/internal/content"
)

// JSONFileStore keeps the whole site document in a single pretty-printed
// JSON file. Every operation is a read-modify-write of the file under a
// process-local lock; the editing model is single-admin, so that is the
// only locking needed.
type JSONFileStore struct {
	mu   sync.RWMutex
	path string
}

func NewJSONFileStore(path string) (*JSONFileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &JSONFileStore{path: path}, nil
}

// Path returns the backing file's location, for change watchers.
func (s *JSONFileStore) Path() string {
	return s.path
}

func (s *JSONFileStore) load() (content.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return content.Document{}, nil
		}
		return nil, err
	}
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		// A corrupt root is treated as empty rather than bricking the
		// editor; the next save rewrites the file.
		return content.Document{}, nil
	}
	return content.Document(doc), nil
}

func (s *JSONFileStore) save(doc content.Document) error {
	data, err := oj.Marshal(map[string]any(doc), 2)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *JSONFileStore) Load(ctx context.Context) (content.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *JSONFileStore) Save(ctx context.Context, doc content.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

func (s *JSONFileStore) LoadSection(ctx context.Context, name string) (any, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, err := s.load()
	if err != nil {
		return nil, false, err
	}
	value, ok := doc[name]
	return value, ok, nil
}

func (s *JSONFileStore) SaveSection(ctx context.Context, name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.load()
	if err != nil {
		return err
	}
	doc[name] = value
	return s.save(doc)
}

func (s *JSONFileStore) Close() error {
	return nil
}
