package transform

import (
	"regexp"
	"sort"
)

var frameNamePattern = regexp.MustCompile(`^\w+$`)

// ValidFrameName reports whether name is usable as a frame name.
func ValidFrameName(name string) bool {
	return name != "" && frameNamePattern.MatchString(name)
}

// FrameSet is a set of frame names.
type FrameSet map[string]struct{}

// NewFrameSet creates a set holding names.
func NewFrameSet(names ...string) FrameSet {
	s := make(FrameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Has returns true if name is in the set.
func (s FrameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the frame names in lexical order.
func (s FrameSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// with returns a copy of s extended with names.
func (s FrameSet) with(names ...string) FrameSet {
	out := make(FrameSet, len(s)+len(names))
	for n := range s {
		out[n] = struct{}{}
	}

	for _, n := range names {
		out[n] = struct{}{}
	}

	return out
}

// Pair is an unordered pair of frames. A is always the lexically smaller
// name so that PairOf(a, b) == PairOf(b, a).
type Pair struct {
	A, B string
}

// PairOf returns the unordered pair {a, b}.
func PairOf(a, b string) Pair {
	if b < a {
		a, b = b, a
	}

	return Pair{A: a, B: b}
}

func (p Pair) String() string {
	return "{" + p.A + ", " + p.B + "}"
}
