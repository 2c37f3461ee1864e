package pomresolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal class of Project initialization failures.
// These abort construction; the Project is never registered in a
// ProjectContainer.
var (
	// ErrMissingGroupID indicates a project has no groupId and no parent to
	// inherit one from.
	ErrMissingGroupID = errors.New("missing groupId with no parent to inherit from")

	// ErrMissingVersion indicates a project has no version and no parent to
	// inherit one from.
	ErrMissingVersion = errors.New("missing version with no parent to inherit from")

	// ErrUnresolvedGAV indicates the project's own coordinate still carries
	// an unresolved "${...}" expression after initialization.
	ErrUnresolvedGAV = errors.New("project coordinate did not fully resolve")

	// ErrUnresolvedParentGAV indicates the declared <parent> coordinate
	// carries an unresolved expression.
	ErrUnresolvedParentGAV = errors.New("parent coordinate did not fully resolve")

	// ErrPOMUnreadable indicates the backing POM file or model could not be
	// loaded at all (I/O failure, nil model).
	ErrPOMUnreadable = errors.New("pom model unreadable")
)

// InitializationError wraps one of the sentinel errors above with the path
// and coordinate of the project that failed to initialize.
type InitializationError struct {
	Path string
	Gav  string
	Err  error
}

func (e *InitializationError) Error() string {
	if e.Gav != "" {
		return fmt.Sprintf("initializing project %s at %s: %v", e.Gav, e.Path, e.Err)
	}
	return fmt.Sprintf("initializing project at %s: %v", e.Path, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}
