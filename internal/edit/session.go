package edit

import (
	"fmt"

	"github.com/rmalloy/folio/internal/content"
	"github.com/rmalloy/folio/internal/seed"
)

// Session is one admin editing session's working copy of the document.
// Every mutation returns a new Session; the old one (and the document it
// was built from) is never modified, which keeps unsaved-edit retry and
// undo extensions straightforward.
type Session struct {
	Doc content.Document
}

func NewSession(doc content.Document) Session {
	if doc == nil {
		doc = content.Document{}
	}
	return Session{Doc: doc}
}

func (s Session) withSection(name string, value any) Session {
	doc := make(content.Document, len(s.Doc)+1)
	for k, v := range s.Doc {
		doc[k] = v
	}
	doc[name] = value
	return Session{Doc: doc}
}

// UpdateField sets a scalar or dotted-path field on an object section's
// top-level record. Array sections have no top-level fields.
func (s Session) UpdateField(section, path string, value any) (Session, error) {
	shape, current, err := content.Resolve(section, s.Doc)
	if err != nil {
		return s, err
	}
	if shape != content.ShapeObject {
		return s, fmt.Errorf("section %q has no top-level fields", section)
	}
	fp, err := ParsePath(path)
	if err != nil {
		return s, err
	}
	return s.withSection(section, UpdateField(current.(map[string]any), fp, value)), nil
}

// AddItem appends an item to the section's item list.
func (s Session) AddItem(section string, item map[string]any) (Session, error) {
	shape, current, err := content.Resolve(section, s.Doc)
	if err != nil {
		return s, err
	}
	return s.withSection(section, AddItem(shape, current, content.ArrayField(section), item)), nil
}

// UpdateItem sets a field, possibly dotted, on the item at index.
func (s Session) UpdateItem(section string, index int, path string, value any) (Session, error) {
	shape, current, err := content.Resolve(section, s.Doc)
	if err != nil {
		return s, err
	}
	fp, err := ParsePath(path)
	if err != nil {
		return s, err
	}
	return s.withSection(section, UpdateItem(shape, current, content.ArrayField(section), index, fp, value)), nil
}

// RemoveItem deletes the item at index; out of range is a no-op.
func (s Session) RemoveItem(section string, index int) (Session, error) {
	shape, current, err := content.Resolve(section, s.Doc)
	if err != nil {
		return s, err
	}
	return s.withSection(section, RemoveItem(shape, current, content.ArrayField(section), index)), nil
}

// ChangeCategory switches the category discriminant on the item at index,
// cloning the matching showcase template into the slot when the item is
// still empty. Items the admin has already named keep all their data.
func (s Session) ChangeCategory(section string, index int, category string) (Session, error) {
	shape, current, err := content.Resolve(section, s.Doc)
	if err != nil {
		return s, err
	}
	field := content.ArrayField(section)
	items := itemsOf(current)
	if shape == content.ShapeObject {
		items = itemsOf(objectOf(current)[field])
	}
	var existing map[string]any
	if index >= 0 && index < len(items) {
		existing = objectOf(items[index])
	} else {
		existing = map[string]any{}
	}
	item := seed.CloneForCategory(existing, seed.Category(category))
	return s.withSection(section, ReplaceItem(shape, current, field, index, item)), nil
}
