// Package edit implements the admin content editor's state transitions:
// dotted-path field updates and item-level add/update/remove over section
// values, all copy-on-write so sibling data is never disturbed.
package edit

import (
	"fmt"
	"strings"
)

// FieldPath is a parsed dotted field path such as "metadata.metaTitle".
// Parsing up front makes a malformed path a construction-time error instead
// of a silent no-op at mutation time.
type FieldPath []string

// ParsePath splits a dotted path into segments. The path must be non-empty
// and contain no empty segments.
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return nil, fmt.Errorf("empty field path")
	}
	segments := strings.Split(path, ".")
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("invalid field path %q: empty segment", path)
		}
	}
	return FieldPath(segments), nil
}

func (p FieldPath) String() string {
	return strings.Join(p, ".")
}
