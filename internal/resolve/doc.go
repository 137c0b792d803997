// Package resolve finds chains of transformations between frames.
//
// A Manager searches the transformation graph of a transform.Configuration
// breadth-first. Every transform can be walked in both directions; walking
// it against its declared direction marks the link as inverted in the
// resulting Chain. Within one path the same frame pair is never crossed
// twice, but a frame may be reached again through another link, which lets
// the search pick the shorter of two routes around a loop.
//
// Callers can add ad-hoc producers for a single query. They take precedence
// over whatever the configuration holds for the same frame pair.
//
// Typical use:
//
//	conf := transform.NewConfiguration()
//	conf.StaticTransform("body", "laser", geometry.Vector3{Z: 0.3})
//	conf.DynamicTransform("world", "body", "odometry")
//
//	m := resolve.NewManager(conf)
//	chain, err := m.TransformationChain("world", "laser", nil)
//
// The search is bounded by the smaller of the configured maximum seek depth
// and twice the number of transforms plus one, so it terminates on any
// graph.
package resolve
