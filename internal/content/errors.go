package content

import (
	"errors"
	"fmt"
)

// Error taxonomy for edit and save operations. Handlers match these with
// errors.Is to pick a status code; the wrapped message is what the admin UI
// shows.
var (
	// ErrShapeMismatch means the supplied value does not match the
	// section's fixed shape (array payload for an object section or vice
	// versa).
	ErrShapeMismatch = errors.New("section shape mismatch")

	// ErrUnknownSection means the section name is not part of the site
	// schema.
	ErrUnknownSection = errors.New("unknown section")

	// ErrUnauthorized means no valid admin credential accompanied a
	// mutating request.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrPersistenceFailed wraps a storage write failure. The in-memory
	// edit survives it so the save can be retried.
	ErrPersistenceFailed = errors.New("persistence failed")
)

func unknownSection(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownSection, name)
}
