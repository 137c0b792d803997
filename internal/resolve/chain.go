package resolve

import (
	"fmt"
	"strings"

	"frame-transformer/internal/transform"
)

// Chain is a resolved sequence of transforms leading from From to To.
// Links are in application order; Inversions[i] is true when Links[i] must
// be walked against its declared direction.
type Chain struct {
	From       string
	To         string
	Links      []transform.Transform
	Inversions []bool
}

// Step is one link of a chain together with its direction.
type Step struct {
	Link     transform.Transform
	Inverted bool
}

func identityChain(frame string) *Chain {
	return &Chain{
		From:       frame,
		To:         frame,
		Links:      []transform.Transform{},
		Inversions: []bool{},
	}
}

// Len returns the number of links.
func (c *Chain) Len() int {
	return len(c.Links)
}

// IsIdentity returns true for the empty chain between a frame and itself.
func (c *Chain) IsIdentity() bool {
	return len(c.Links) == 0
}

// Steps pairs every link with its inversion flag.
func (c *Chain) Steps() []Step {
	steps := make([]Step, len(c.Links))
	for i, l := range c.Links {
		steps[i] = Step{Link: l, Inverted: c.Inversions[i]}
	}

	return steps
}

// Partition splits the links into static and producer-backed ones, keeping
// the chain order within each group. Inversion flags are not carried over;
// use Steps or the Inversions slice for those.
func (c *Chain) Partition() (static []*transform.StaticTransform, dynamic []*transform.DynamicTransform) {
	for _, l := range c.Links {
		switch tr := l.(type) {
		case *transform.StaticTransform:
			static = append(static, tr)
		case *transform.DynamicTransform:
			dynamic = append(dynamic, tr)
		}
	}

	return static, dynamic
}

func (c *Chain) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "chain %s -> %s (%d links)", c.From, c.To, len(c.Links))

	for i, l := range c.Links {
		sb.WriteString("\n  " + l.String())

		if c.Inversions[i] {
			sb.WriteString(" (inverted)")
		}
	}

	return sb.String()
}
