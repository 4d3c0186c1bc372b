package edit

import "github.com/rmalloy/folio/internal/content"

// The four mutation primitives. All of them are pure: the input value is
// never modified, untouched items keep their identity in the result, and
// only the touched item (plus the objects along a dotted path) are fresh
// copies. Malformed state is coerced to a safe empty value rather than
// rejected, so the editor keeps working on a half-seeded document.

// UpdateField sets a field, possibly nested, on an object section's record.
func UpdateField(obj map[string]any, path FieldPath, value any) map[string]any {
	return setPath(obj, path, value)
}

// AddItem appends an item to a section's item list. For array sections the
// section itself is the list and arrayField is ignored; for object sections
// arrayField names the list ("items", "posts").
func AddItem(shape content.Shape, section any, arrayField string, item map[string]any) any {
	if shape == content.ShapeArray {
		items := itemsOf(section)
		out := make([]any, len(items), len(items)+1)
		copy(out, items)
		return append(out, item)
	}
	obj := objectOf(section)
	items := itemsOf(obj[arrayField])
	list := make([]any, len(items), len(items)+1)
	copy(list, items)
	out := copyObject(obj)
	out[arrayField] = append(list, item)
	return out
}

// UpdateItem sets a field, possibly nested, on the item at index. An index
// past the end synthesizes empty items up to it first (category-change flows
// write before the item exists); a negative index is a no-op.
func UpdateItem(shape content.Shape, section any, arrayField string, index int, path FieldPath, value any) any {
	if index < 0 {
		return section
	}
	apply := func(items []any) []any {
		n := len(items)
		if index >= n {
			n = index + 1
		}
		out := make([]any, n)
		copy(out, items)
		for i := len(items); i < n; i++ {
			out[i] = map[string]any{}
		}
		out[index] = setPath(objectOf(out[index]), path, value)
		return out
	}
	if shape == content.ShapeArray {
		return apply(itemsOf(section))
	}
	obj := objectOf(section)
	out := copyObject(obj)
	out[arrayField] = apply(itemsOf(obj[arrayField]))
	return out
}

// ReplaceItem swaps the whole item at index, synthesizing up to it like
// UpdateItem. Used by the category-change flow to install a cloned template.
func ReplaceItem(shape content.Shape, section any, arrayField string, index int, item map[string]any) any {
	if index < 0 {
		return section
	}
	apply := func(items []any) []any {
		n := len(items)
		if index >= n {
			n = index + 1
		}
		out := make([]any, n)
		copy(out, items)
		for i := len(items); i < n; i++ {
			out[i] = map[string]any{}
		}
		out[index] = item
		return out
	}
	if shape == content.ShapeArray {
		return apply(itemsOf(section))
	}
	obj := objectOf(section)
	out := copyObject(obj)
	out[arrayField] = apply(itemsOf(obj[arrayField]))
	return out
}

// RemoveItem deletes the item at index, preserving the order of the rest.
// Out-of-range indexes return the value unchanged; deletion never fails.
func RemoveItem(shape content.Shape, section any, arrayField string, index int) any {
	apply := func(items []any) ([]any, bool) {
		if index < 0 || index >= len(items) {
			return items, false
		}
		out := make([]any, 0, len(items)-1)
		out = append(out, items[:index]...)
		out = append(out, items[index+1:]...)
		return out, true
	}
	if shape == content.ShapeArray {
		out, _ := apply(itemsOf(section))
		return out
	}
	obj := objectOf(section)
	items, changed := apply(itemsOf(obj[arrayField]))
	if !changed && obj[arrayField] != nil {
		return section
	}
	out := copyObject(obj)
	out[arrayField] = items
	return out
}

// setPath writes value at path, shallow-copying each object along the way
// so nothing outside the path is shared with a mutated container. A missing
// or non-object intermediate becomes a fresh object.
func setPath(obj map[string]any, path FieldPath, value any) map[string]any {
	out := copyObject(obj)
	if len(path) == 1 {
		out[path[0]] = value
		return out
	}
	child, _ := out[path[0]].(map[string]any)
	out[path[0]] = setPath(child, path[1:], value)
	return out
}

// itemsOf coerces a value to an item list, treating anything else as empty.
func itemsOf(v any) []any {
	if items, ok := v.([]any); ok {
		return items
	}
	return []any{}
}

// objectOf coerces a value to a record, treating anything else as empty.
func objectOf(v any) map[string]any {
	if obj, ok := v.(map[string]any); ok {
		return obj
	}
	return map[string]any{}
}

func copyObject(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj)+1)
	for k, v := range obj {
		out[k] = v
	}
	return out
}
