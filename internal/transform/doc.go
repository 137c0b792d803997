// Package transform holds the frame registry and the transformation store
// that together describe which coordinate frames exist and how they relate.
//
// # Model
//
// A frame is a bare name matching ^\w+$. A transform links two frames and
// carries one of three payloads:
//
//   - StaticTransform: a fixed translation and rotation
//   - DynamicTransform: an opaque producer that supplies the value at runtime
//   - ExampleTransform: a placeholder value used for estimation only
//
// The main store holds at most one static or dynamic transform per
// unordered frame pair. Registering a second transform for the same pair
// replaces the first. Example transforms live in a separate store and never
// take part in chain resolution.
//
// # Validation
//
// Every registration is validated before the store is touched, so a failed
// call leaves the Configuration unchanged. Validation policy is pluggable
// through the Checker interface; the default accepts any producer.
//
// # Errors
//
// Callers distinguish failures with errors.Is:
//
//   - ErrInvalidConfiguration: bad frame name or undeclared frame
//   - ErrArgument: malformed call (geometry arguments, self loops, lookups)
//   - ErrTransformationNotFound: no chain between two frames
//
// Errors returned by a producer check are passed through untouched.
package transform
