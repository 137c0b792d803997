package transform

import (
	"fmt"
	"reflect"

	"frame-transformer/internal/geometry"
)

// Transform is a link between two frames. The set of implementations is
// closed: *StaticTransform, *DynamicTransform and *ExampleTransform.
type Transform interface {
	From() string
	To() string
	Kind() Kind
	// Pair returns the unordered frame pair the transform connects.
	Pair() Pair
	// Equal reports whether other has the same variant, direction and payload.
	Equal(other Transform) bool
	String() string

	clone() Transform
}

type endpoints struct {
	from string
	to   string
}

// From returns the source frame.
func (e endpoints) From() string { return e.from }

// To returns the target frame.
func (e endpoints) To() string { return e.to }

// Pair returns the unordered frame pair.
func (e endpoints) Pair() Pair { return PairOf(e.from, e.to) }

// StaticTransform is a transform with a fixed, known value.
type StaticTransform struct {
	endpoints

	Translation geometry.Vector3
	Rotation    geometry.Quaternion
}

// NewStaticTransform creates a StaticTransform.
func NewStaticTransform(from, to string, translation geometry.Vector3, rotation geometry.Quaternion) *StaticTransform {
	return &StaticTransform{
		endpoints:   endpoints{from: from, to: to},
		Translation: translation,
		Rotation:    rotation,
	}
}

// Kind implements Transform.
func (t *StaticTransform) Kind() Kind { return KindStatic }

// Equal implements Transform.
func (t *StaticTransform) Equal(other Transform) bool {
	o, ok := other.(*StaticTransform)
	if !ok {
		return false
	}

	return t.endpoints == o.endpoints &&
		t.Translation == o.Translation &&
		t.Rotation == o.Rotation
}

func (t *StaticTransform) String() string {
	return fmt.Sprintf("static %s->%s t=%s r=%s", t.from, t.to, t.Translation, t.Rotation)
}

func (t *StaticTransform) clone() Transform {
	c := *t
	return &c
}

// DynamicTransform is a transform whose value is supplied at runtime by
// Producer. The producer is opaque to this package.
type DynamicTransform struct {
	endpoints

	Producer any
}

// NewDynamicTransform creates a DynamicTransform.
func NewDynamicTransform(from, to string, producer any) *DynamicTransform {
	return &DynamicTransform{
		endpoints: endpoints{from: from, to: to},
		Producer:  producer,
	}
}

// Kind implements Transform.
func (t *DynamicTransform) Kind() Kind { return KindDynamic }

// Equal implements Transform.
func (t *DynamicTransform) Equal(other Transform) bool {
	o, ok := other.(*DynamicTransform)
	if !ok {
		return false
	}

	return t.endpoints == o.endpoints && reflect.DeepEqual(t.Producer, o.Producer)
}

func (t *DynamicTransform) String() string {
	return fmt.Sprintf("dynamic %s->%s producer=%v", t.from, t.to, t.Producer)
}

func (t *DynamicTransform) clone() Transform {
	c := *t
	return &c
}

// ExampleTransform is a placeholder value used for planning and estimation.
type ExampleTransform struct {
	endpoints

	Translation geometry.Vector3
	Rotation    geometry.Quaternion
}

// NewExampleTransform creates an ExampleTransform.
func NewExampleTransform(from, to string, translation geometry.Vector3, rotation geometry.Quaternion) *ExampleTransform {
	return &ExampleTransform{
		endpoints:   endpoints{from: from, to: to},
		Translation: translation,
		Rotation:    rotation,
	}
}

// Kind implements Transform.
func (t *ExampleTransform) Kind() Kind { return KindExample }

// Equal implements Transform.
func (t *ExampleTransform) Equal(other Transform) bool {
	o, ok := other.(*ExampleTransform)
	if !ok {
		return false
	}

	return t.endpoints == o.endpoints &&
		t.Translation == o.Translation &&
		t.Rotation == o.Rotation
}

func (t *ExampleTransform) String() string {
	return fmt.Sprintf("example %s->%s t=%s r=%s", t.from, t.to, t.Translation, t.Rotation)
}

func (t *ExampleTransform) clone() Transform {
	c := *t
	return &c
}

// parseGeometry sorts up to two geometry arguments into a translation and a
// rotation, defaulting whichever is missing.
func parseGeometry(args []any) (geometry.Vector3, geometry.Quaternion, error) {
	translation := geometry.ZeroVector()
	rotation := geometry.IdentityQuaternion()

	switch {
	case len(args) == 0:
		return translation, rotation, fmt.Errorf("%w: no translation or rotation given", ErrArgument)
	case len(args) > 2:
		return translation, rotation, fmt.Errorf(
			"%w: %d geometry arguments given, expected at most a translation and a rotation",
			ErrArgument, len(args))
	}

	var hasTranslation, hasRotation bool

	for _, arg := range args {
		switch v := arg.(type) {
		case geometry.Vector3:
			if hasTranslation {
				return translation, rotation, fmt.Errorf("%w: translation given twice", ErrArgument)
			}

			translation, hasTranslation = v, true
		case geometry.Quaternion:
			if hasRotation {
				return translation, rotation, fmt.Errorf("%w: rotation given twice", ErrArgument)
			}

			rotation, hasRotation = v, true
		default:
			return translation, rotation, fmt.Errorf(
				"%w: %v (%T) is neither a translation vector nor a rotation quaternion",
				ErrArgument, arg, arg)
		}
	}

	return translation, rotation, nil
}
