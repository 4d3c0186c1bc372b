// Package store defines the document store interface and implementations.
package store

import (
	"context"

	"github.com/rmalloy/folio/internal/content"
)

// Store persists the single site document, wholesale or per section. A
// missing document is not an error: Load returns an empty Document so the
// editor works on first run.
type Store interface {
	// Load returns the whole document, or an empty one if nothing has
	// been saved yet.
	Load(ctx context.Context) (content.Document, error)

	// Save replaces the whole document.
	Save(ctx context.Context, doc content.Document) error

	// LoadSection returns one section's raw value. ok is false if the
	// section has never been saved.
	LoadSection(ctx context.Context, name string) (any, bool, error)

	// SaveSection replaces one section's value, leaving the rest of the
	// document untouched.
	SaveSection(ctx context.Context, name string, value any) error

	// Close releases any underlying resources.
	Close() error
}
