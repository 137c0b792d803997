package transform

import "github.com/sirupsen/logrus"

// Dup returns an independent copy of c. Frames and transforms are copied,
// so changes to the copy, including to a transform's translation, never
// reach c. The checker and logger are shared.
func (c *Configuration) Dup() *Configuration {
	return &Configuration{
		frames:     c.frames.with(),
		transforms: c.transforms.clone(),
		examples:   c.examples.clone(),
		checker:    c.checker,
		logger:     c.logger,
	}
}

// Merge folds other into c. The frame sets are united and, for every frame
// pair known to both, the transform from other wins. Transforms taken from
// other are copied.
func (c *Configuration) Merge(other *Configuration) {
	if other == nil {
		return
	}

	for f := range other.frames {
		c.frames[f] = struct{}{}
	}

	replaced := 0

	for _, tr := range other.transforms.values() {
		if _, existed := c.transforms.put(tr.clone()); existed {
			replaced++
		}
	}

	for _, tr := range other.examples.values() {
		c.examples.put(tr.clone().(*ExampleTransform))
	}

	c.logger.WithFields(logrus.Fields{
		"frames":     len(c.frames),
		"transforms": c.transforms.len(),
		"replaced":   replaced,
	}).Info("merged configuration")
}

// CompatibleWith reports whether c and other agree on every frame pair for
// which both hold a static or dynamic transform. Two compatible
// configurations can be merged in either order without losing information.
func (c *Configuration) CompatibleWith(other *Configuration) bool {
	if other == nil {
		return true
	}

	for _, tr := range c.transforms.values() {
		if theirs, ok := other.transforms.get(tr.Pair()); ok && !tr.Equal(theirs) {
			return false
		}
	}

	return true
}
