package transform

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"

	"frame-transformer/internal/geometry"
)

// Configuration is the registry of frames and the transformations between
// them. It is not safe for concurrent mutation; concurrent read-only use is
// fine.
type Configuration struct {
	frames     FrameSet
	transforms *store[Transform]
	examples   *store[*ExampleTransform]
	checker    Checker
	logger     logrus.FieldLogger
}

// Option configures a Configuration.
type Option func(*Configuration)

// WithChecker installs the validation policy.
func WithChecker(checker Checker) Option {
	return func(c *Configuration) {
		if checker != nil {
			c.checker = checker
		}
	}
}

// WithLogger sets the logger used for registration events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Configuration) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConfiguration creates an empty Configuration. Without options it uses
// a DefaultChecker that accepts any producer and discards log output.
func NewConfiguration(opts ...Option) *Configuration {
	c := &Configuration{
		frames:     make(FrameSet),
		transforms: newStore[Transform](),
		examples:   newStore[*ExampleTransform](),
		checker:    NewChecker(nil),
		logger:     discardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Checker returns the validation policy.
func (c *Configuration) Checker() Checker {
	return c.checker
}

// SetChecker replaces the validation policy for later registrations.
func (c *Configuration) SetChecker(checker Checker) {
	if checker == nil {
		checker = NewChecker(nil)
	}

	c.checker = checker
}

// Logger returns the logger used by the configuration.
func (c *Configuration) Logger() logrus.FieldLogger {
	return c.logger
}

// AddFrames declares frames. Declaring a frame twice is a no-op. Either all
// names are added or, if one is invalid, none is.
func (c *Configuration) AddFrames(names ...string) error {
	for _, name := range names {
		if err := c.checker.CheckFrame(name, nil); err != nil {
			return err
		}
	}

	for _, name := range names {
		c.frames[name] = struct{}{}
	}

	return nil
}

// HasFrame returns true if name is a declared frame.
func (c *Configuration) HasFrame(name string) bool {
	return c.frames.Has(name)
}

// CheckFrame validates name with the checker and requires it to be declared.
func (c *Configuration) CheckFrame(name string) error {
	return c.checker.CheckFrame(name, c.frames)
}

// Frames returns the declared frames in lexical order.
func (c *Configuration) Frames() []string {
	return c.frames.Sorted()
}

// StaticTransform registers a fixed transform from -> to. geom holds a
// geometry.Vector3 translation, a geometry.Quaternion rotation, or both in
// any order; the missing one defaults to zero or identity. Undeclared
// endpoints are declared. Any previous transform between the two frames is
// replaced.
func (c *Configuration) StaticTransform(from, to string, geom ...any) (*StaticTransform, error) {
	translation, rotation, err := parseGeometry(geom)
	if err != nil {
		return nil, err
	}

	tr := NewStaticTransform(from, to, translation, rotation)
	if err := c.add(tr); err != nil {
		return nil, err
	}

	return tr, nil
}

// DynamicTransform registers a transform from -> to whose value is produced
// at runtime by producer. The producer is validated by the checker first
// and its error, if any, is returned unchanged.
func (c *Configuration) DynamicTransform(from, to string, producer any) (*DynamicTransform, error) {
	if err := c.checker.CheckProducer(producer); err != nil {
		return nil, err
	}

	tr := NewDynamicTransform(from, to, producer)
	if err := c.add(tr); err != nil {
		return nil, err
	}

	return tr, nil
}

// ExampleTransform registers a placeholder value for from -> to, with the
// same arguments as StaticTransform. Example transforms are stored apart
// from static and dynamic ones.
func (c *Configuration) ExampleTransform(from, to string, geom ...any) (*ExampleTransform, error) {
	translation, rotation, err := parseGeometry(geom)
	if err != nil {
		return nil, err
	}

	tr := NewExampleTransform(from, to, translation, rotation)
	if err := c.validate(tr); err != nil {
		return nil, err
	}

	c.declare(from, to)
	c.examples.put(tr)
	c.logger.WithFields(logrus.Fields{"from": from, "to": to}).Debug("registered example transform")

	return tr, nil
}

// validate runs every check a registration needs without touching the store.
func (c *Configuration) validate(tr Transform) error {
	if tr.From() == tr.To() {
		return fmt.Errorf("%w: cannot register a transformation from frame %q to itself",
			ErrArgument, tr.From())
	}

	for _, f := range []string{tr.From(), tr.To()} {
		if err := c.checker.CheckFrame(f, nil); err != nil {
			return err
		}
	}

	// Endpoints are declared on commit, so check against that frame set.
	return c.checker.CheckTransformation(c.frames.with(tr.From(), tr.To()), tr)
}

func (c *Configuration) declare(names ...string) {
	for _, n := range names {
		c.frames[n] = struct{}{}
	}
}

func (c *Configuration) add(tr Transform) error {
	if err := c.validate(tr); err != nil {
		return err
	}

	c.declare(tr.From(), tr.To())

	prev, replaced := c.transforms.put(tr)

	entry := c.logger.WithFields(logrus.Fields{"from": tr.From(), "to": tr.To(), "kind": tr.Kind()})
	if replaced {
		entry.WithField("previous", prev.String()).Debug("replaced transform")
	} else {
		entry.Debug("registered transform")
	}

	return nil
}

// HasTransformation reports whether a static or dynamic transform links
// from and to, in either direction. It fails with ErrArgument when no such
// transform exists and one of the frames is not declared.
func (c *Configuration) HasTransformation(from, to string) (bool, error) {
	if _, ok := c.transforms.get(PairOf(from, to)); ok {
		return true, nil
	}

	if err := c.requireFrames(from, to); err != nil {
		return false, err
	}

	return false, nil
}

// TransformationFor returns the transform linking from and to, as it was
// registered. The returned transform may point in the opposite direction.
func (c *Configuration) TransformationFor(from, to string) (Transform, error) {
	if tr, ok := c.transforms.get(PairOf(from, to)); ok {
		return tr, nil
	}

	if err := c.requireFrames(from, to); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: no transformation registered between %q and %q", ErrArgument, from, to)
}

// ExampleTransformationFor returns the example transform registered between
// from and to. When there is none and both frames are declared, an identity
// transform is returned.
func (c *Configuration) ExampleTransformationFor(from, to string) (*ExampleTransform, error) {
	if tr, ok := c.examples.get(PairOf(from, to)); ok {
		return tr, nil
	}

	if err := c.requireFrames(from, to); err != nil {
		return nil, err
	}

	return NewExampleTransform(from, to, geometry.ZeroVector(), geometry.IdentityQuaternion()), nil
}

func (c *Configuration) requireFrames(names ...string) error {
	for _, n := range names {
		if !c.frames.Has(n) {
			return fmt.Errorf("%w: %q is not a declared frame", ErrArgument, n)
		}
	}

	return nil
}

// Len returns the number of static and dynamic transforms.
func (c *Configuration) Len() int {
	return c.transforms.len()
}

// Transforms returns the static and dynamic transforms in registration order.
func (c *Configuration) Transforms() []Transform {
	return c.transforms.values()
}

// ExampleTransforms returns the example transforms in registration order.
func (c *Configuration) ExampleTransforms() []*ExampleTransform {
	return c.examples.values()
}

// EachStaticTransform iterates over static transforms in registration order.
func (c *Configuration) EachStaticTransform() iter.Seq[*StaticTransform] {
	return func(yield func(*StaticTransform) bool) {
		for _, tr := range c.transforms.values() {
			if st, ok := tr.(*StaticTransform); ok && !yield(st) {
				return
			}
		}
	}
}

// EachDynamicTransform iterates over dynamic transforms in registration order.
func (c *Configuration) EachDynamicTransform() iter.Seq[*DynamicTransform] {
	return func(yield func(*DynamicTransform) bool) {
		for _, tr := range c.transforms.values() {
			if dt, ok := tr.(*DynamicTransform); ok && !yield(dt) {
				return
			}
		}
	}
}

// Clear removes every frame and transform.
func (c *Configuration) Clear() {
	c.frames = make(FrameSet)
	c.transforms = newStore[Transform]()
	c.examples = newStore[*ExampleTransform]()
}

func (c *Configuration) String() string {
	var sb strings.Builder

	sb.WriteString("frames:\n")

	for _, f := range c.Frames() {
		sb.WriteString("  " + f + "\n")
	}

	sb.WriteString("transforms:\n")

	for _, tr := range c.Transforms() {
		sb.WriteString("  " + tr.String() + "\n")
	}

	if c.examples.len() > 0 {
		sb.WriteString("examples:\n")

		for _, tr := range c.ExampleTransforms() {
			sb.WriteString("  " + tr.String() + "\n")
		}
	}

	return sb.String()
}
