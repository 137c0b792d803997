package resolve

import (
	"cmp"
	"fmt"
	"slices"

	"frame-transformer/internal/transform"
)

// Edge names a directed frame pair for an ad-hoc producer.
type Edge struct {
	From string
	To   string
}

// Producers maps frame pairs to producers that should be used for a single
// resolution, in preference to the configuration's own transforms.
type Producers map[Edge]any

// linkIndex is the working set of transforms for one search. Every link is
// indexed under both of its frames.
type linkIndex struct {
	links   []transform.Transform
	byFrame map[string][]int
}

func (idx *linkIndex) add(tr transform.Transform) {
	i := len(idx.links)
	idx.links = append(idx.links, tr)
	idx.byFrame[tr.From()] = append(idx.byFrame[tr.From()], i)
	idx.byFrame[tr.To()] = append(idx.byFrame[tr.To()], i)
}

// buildIndex puts the ad-hoc producers first, ordered by frame names, then
// the configuration's transforms in registration order. A configured
// transform is dropped when a producer covers the same frame pair.
func buildIndex(conf *transform.Configuration, producers Producers) (*linkIndex, error) {
	idx := &linkIndex{byFrame: make(map[string][]int)}

	edges := make([]Edge, 0, len(producers))
	for e := range producers {
		edges = append(edges, e)
	}

	slices.SortFunc(edges, func(a, b Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}

		return cmp.Compare(a.To, b.To)
	})

	shadowed := make(map[transform.Pair]struct{}, len(edges))

	for _, e := range edges {
		switch {
		case e.From == "":
			return nil, fmt.Errorf("%w: producer %v has no source frame", transform.ErrArgument, producers[e])
		case e.To == "":
			return nil, fmt.Errorf("%w: producer %v has no target frame", transform.ErrArgument, producers[e])
		case e.From == e.To:
			return nil, fmt.Errorf("%w: producer %v links frame %q to itself",
				transform.ErrArgument, producers[e], e.From)
		}

		p := transform.PairOf(e.From, e.To)
		if _, dup := shadowed[p]; dup {
			return nil, fmt.Errorf("%w: more than one producer given for frames %s",
				transform.ErrArgument, p)
		}

		shadowed[p] = struct{}{}
		idx.add(transform.NewDynamicTransform(e.From, e.To, producers[e]))
	}

	for _, tr := range conf.Transforms() {
		if _, ok := shadowed[tr.Pair()]; !ok {
			idx.add(tr)
		}
	}

	return idx, nil
}

// reachable reports whether any sequence of links joins from and to,
// ignoring direction. It visits each frame once, so it bounds the cost of
// queries between disconnected frames.
func (idx *linkIndex) reachable(from, to string) bool {
	seen := map[string]struct{}{from: {}}
	queue := []string{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, li := range idx.byFrame[cur] {
			link := idx.links[li]

			next := link.To()
			if next == cur {
				next = link.From()
			}

			if next == to {
				return true
			}

			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}

	return false
}

// node is one entry of the search arena. The root has parent and link set
// to -1.
type node struct {
	frame    string
	parent   int
	link     int
	inverted bool
}

type search struct {
	idx   *linkIndex
	nodes []node
}

// traversed reports whether the path from the root to nodes[i] already
// crosses the frame pair p.
func (s *search) traversed(i int, p transform.Pair) bool {
	for n := s.nodes[i]; n.link >= 0; n = s.nodes[n.parent] {
		if s.idx.links[n.link].Pair() == p {
			return true
		}
	}

	return false
}

// expand appends the children of nodes[i] to the arena. It returns the
// index of the first child that reaches target, or -1 with the indices of
// all new children.
func (s *search) expand(i int, target string) (found int, children []int) {
	cur := s.nodes[i]

	for _, li := range s.idx.byFrame[cur.frame] {
		link := s.idx.links[li]
		if s.traversed(i, link.Pair()) {
			continue
		}

		next, inverted := link.To(), false
		if cur.frame == link.To() {
			next, inverted = link.From(), true
		}

		s.nodes = append(s.nodes, node{frame: next, parent: i, link: li, inverted: inverted})
		child := len(s.nodes) - 1

		if next == target {
			return child, nil
		}

		children = append(children, child)
	}

	return -1, children
}

// chain unwinds the arena from nodes[i] back to the root.
func (s *search) chain(i int) *Chain {
	var (
		links      []transform.Transform
		inversions []bool
	)

	to := s.nodes[i].frame

	for n := s.nodes[i]; n.link >= 0; n = s.nodes[n.parent] {
		links = append(links, s.idx.links[n.link])
		inversions = append(inversions, n.inverted)
	}

	slices.Reverse(links)
	slices.Reverse(inversions)

	return &Chain{
		From:       s.nodes[0].frame,
		To:         to,
		Links:      links,
		Inversions: inversions,
	}
}
