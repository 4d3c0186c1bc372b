package content

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Persister is the slice of the document store the save coordinator needs.
type Persister interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
	SaveSection(ctx context.Context, name string, value any) error
}

// Saver validates edits and hands them to the store. Validation runs before
// any write: a rejected save leaves the persisted document untouched, and a
// failed write leaves the caller's in-memory value intact for retry.
type Saver struct {
	store Persister
	log   *zap.Logger
}

func NewSaver(store Persister, log *zap.Logger) *Saver {
	return &Saver{store: store, log: log}
}

// SaveSection persists a single section's new value. identity is the
// verified admin identity; an empty identity is rejected before the store
// is touched.
func (s *Saver) SaveSection(ctx context.Context, identity, name string, value any) error {
	if identity == "" {
		return ErrUnauthorized
	}
	if !Known(name) {
		return unknownSection(name)
	}
	if !ValidValue(name, value) {
		shape, _ := ShapeOf(name)
		return fmt.Errorf("%w: section %q expects %s", ErrShapeMismatch, name, shape)
	}
	if err := s.store.SaveSection(ctx, name, value); err != nil {
		s.log.Error("section save failed", zap.String("section", name), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	s.log.Info("section saved", zap.String("section", name), zap.String("by", identity))
	return nil
}

// SaveDocument replaces the whole document. Every present section must pass
// shape validation before anything is written; unknown keys are rejected so
// a typo cannot create an orphan section.
func (s *Saver) SaveDocument(ctx context.Context, identity string, doc Document) error {
	if identity == "" {
		return ErrUnauthorized
	}
	for name, value := range doc {
		if !Known(name) {
			return unknownSection(name)
		}
		if !ValidValue(name, value) {
			shape, _ := ShapeOf(name)
			return fmt.Errorf("%w: section %q expects %s", ErrShapeMismatch, name, shape)
		}
	}
	if err := s.store.Save(ctx, doc); err != nil {
		s.log.Error("document save failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}
	s.log.Info("document saved", zap.Int("sections", len(doc)), zap.String("by", identity))
	return nil
}
