// Package content defines the site document model: the fixed set of named
// sections, their shapes, and the save coordinator that validates edits
// before they reach the store.
package content

import "sort"

// Document is the whole site's content, keyed by section name. Array
// sections hold a []any of items; object sections hold a map[string]any
// with scalar fields plus optional item arrays.
type Document map[string]any

// Shape tags how a section's value is structured.
type Shape int

const (
	// ShapeArray sections are a bare ordered list of items.
	ShapeArray Shape = iota
	// ShapeObject sections are a record of scalar fields, possibly
	// containing a named array of items.
	ShapeObject
)

func (s Shape) String() string {
	if s == ShapeArray {
		return "array"
	}
	return "object"
}

// sectionSpec describes one recognized section. arrayField names the field
// holding the section's items for object sections ("" if it has none); it is
// ignored for array sections.
type sectionSpec struct {
	shape      Shape
	arrayField string
}

var sections = map[string]sectionSpec{
	"hero":              {ShapeObject, ""},
	"about":             {ShapeObject, ""},
	"experience":        {ShapeObject, "items"},
	"projects":          {ShapeObject, "items"},
	"subdomainProjects": {ShapeArray, ""},
	"blog":              {ShapeObject, "posts"},
	"contact":           {ShapeObject, ""},
	"social":            {ShapeArray, ""},
	"skills":            {ShapeObject, "items"},
	"statistics":        {ShapeObject, "items"},
	"services":          {ShapeObject, "items"},
	"faq":               {ShapeObject, "items"},
}

// Sections returns the recognized section names, sorted.
func Sections() []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a recognized section.
func Known(name string) bool {
	_, ok := sections[name]
	return ok
}

// ShapeOf returns the fixed shape of a section.
func ShapeOf(name string) (Shape, bool) {
	spec, ok := sections[name]
	return spec.shape, ok
}

// ArrayField returns the name of the item array inside an object section
// ("items", "posts"), or "" for sections without one. Array sections are the
// item list themselves and also return "".
func ArrayField(name string) string {
	return sections[name].arrayField
}

// Resolve looks up a section in the document and returns its shape and
// current value. Missing or malformed values are coerced to a safe empty
// default so the editor stays usable on a fresh install; only an
// unrecognized name is an error.
func Resolve(name string, doc Document) (Shape, any, error) {
	spec, ok := sections[name]
	if !ok {
		return 0, nil, unknownSection(name)
	}
	raw := doc[name]
	switch spec.shape {
	case ShapeArray:
		if arr, ok := raw.([]any); ok {
			return ShapeArray, arr, nil
		}
		return ShapeArray, []any{}, nil
	default:
		if obj, ok := raw.(map[string]any); ok {
			return ShapeObject, obj, nil
		}
		return ShapeObject, map[string]any{}, nil
	}
}

// ValidValue reports whether v matches the section's shape. Used by the
// save coordinator before anything is persisted.
func ValidValue(name string, v any) bool {
	spec, ok := sections[name]
	if !ok {
		return false
	}
	switch spec.shape {
	case ShapeArray:
		_, ok := v.([]any)
		return ok
	default:
		_, ok := v.(map[string]any)
		return ok
	}
}
