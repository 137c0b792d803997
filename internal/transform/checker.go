package transform

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Checker is the validation policy applied by a Configuration before any
// registration is committed.
type Checker interface {
	// CheckFrame validates the syntax of name and, when known is non-nil,
	// that name is a member of known.
	CheckFrame(name string, known FrameSet) error
	// CheckTransformation validates both endpoints of tr against frames and
	// reports every violation at once.
	CheckTransformation(frames FrameSet, tr Transform) error
	// CheckProducer validates the producer of a dynamic transform.
	CheckProducer(producer any) error
}

// ProducerCheck validates a producer value. Its error is returned to the
// caller of DynamicTransform as-is.
type ProducerCheck func(producer any) error

// DefaultChecker enforces frame name syntax and membership and delegates
// producer validation to an optional ProducerCheck.
type DefaultChecker struct {
	producerCheck ProducerCheck
}

// NewChecker creates a DefaultChecker. A nil producerCheck accepts anything.
func NewChecker(producerCheck ProducerCheck) *DefaultChecker {
	return &DefaultChecker{producerCheck: producerCheck}
}

// CheckFrame implements Checker.
func (c *DefaultChecker) CheckFrame(name string, known FrameSet) error {
	if name == "" {
		return fmt.Errorf("%w: frame names must not be empty", ErrInvalidConfiguration)
	}

	if !frameNamePattern.MatchString(name) {
		return fmt.Errorf("%w: frame name %q does not match %s",
			ErrInvalidConfiguration, name, frameNamePattern)
	}

	if known != nil && !known.Has(name) {
		return fmt.Errorf("%w: frame %q is not declared, known frames: %s",
			ErrInvalidConfiguration, name, strings.Join(known.Sorted(), ", "))
	}

	return nil
}

// CheckTransformation implements Checker.
func (c *DefaultChecker) CheckTransformation(frames FrameSet, tr Transform) error {
	var result *multierror.Error

	for _, f := range []string{tr.From(), tr.To()} {
		if !frames.Has(f) {
			result = multierror.Append(result, fmt.Errorf(
				"%w: transformation from %s to %s uses unknown frame %s",
				ErrInvalidConfiguration, tr.From(), tr.To(), f))
		}
	}

	return result.ErrorOrNil()
}

// CheckProducer implements Checker.
func (c *DefaultChecker) CheckProducer(producer any) error {
	if c.producerCheck == nil {
		return nil
	}

	return c.producerCheck(producer)
}
