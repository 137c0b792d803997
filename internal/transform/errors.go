package transform

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidConfiguration is returned when a frame name is malformed or
	// when a frame that was never declared is referenced.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrArgument is returned for malformed calls: wrong geometry arguments,
	// transforms from a frame to itself, or lookups on unknown frames.
	ErrArgument = errors.New("invalid argument")

	// ErrTransformationNotFound is returned when no chain of transformations
	// connects two frames.
	ErrTransformationNotFound = errors.New("transformation not found")
)

// TransformationNotFoundError carries the endpoints of a failed resolution.
type TransformationNotFoundError struct {
	From   string
	To     string
	Reason string
}

// NewTransformationNotFoundError creates a TransformationNotFoundError.
func NewTransformationNotFoundError(from, to, reason string) *TransformationNotFoundError {
	return &TransformationNotFoundError{From: from, To: to, Reason: reason}
}

func (e *TransformationNotFoundError) Error() string {
	msg := fmt.Sprintf("no transformation from %q to %q", e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

// Is makes errors.Is(err, ErrTransformationNotFound) hold.
func (e *TransformationNotFoundError) Is(target error) bool {
	return target == ErrTransformationNotFound
}
