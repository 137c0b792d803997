// Package geometry holds the translation and rotation values carried by
// static and example transforms.
//
// Values are stored opaquely: the package offers construction, comparison
// and formatting only. Composing or inverting transforms is left to the
// runtime that consumes a resolved chain.
package geometry
