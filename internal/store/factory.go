package store

import (
	"fmt"
	"path/filepath"
)

// New creates a Store based on the backend name.
//
// Supported backends:
//
//	"json"   - single content.json in dataDir (default)
//	"sqlite" - SQLite database at dataDir/content.db
//	"memory" - In-memory (ephemeral, for testing)
func New(backend, dataDir string) (Store, error) {
	switch backend {
	case "json", "":
		return NewJSONFileStore(filepath.Join(dataDir, "content.json"))
	case "sqlite":
		return NewSqliteStore(filepath.Join(dataDir, "content.db"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: json, sqlite, memory)", backend)
	}
}
