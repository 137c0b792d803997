package transform

// store keeps at most one transform per unordered frame pair and remembers
// the order in which pairs were first registered. Replacing the transform of
// an existing pair keeps the pair's position.
type store[T Transform] struct {
	byPair map[Pair]T
	order  []Pair
}

func newStore[T Transform]() *store[T] {
	return &store[T]{byPair: make(map[Pair]T)}
}

func (s *store[T]) get(p Pair) (T, bool) {
	tr, ok := s.byPair[p]
	return tr, ok
}

// put stores tr and returns the transform it replaced, if any.
func (s *store[T]) put(tr T) (T, bool) {
	p := tr.Pair()

	prev, existed := s.byPair[p]
	if !existed {
		s.order = append(s.order, p)
	}

	s.byPair[p] = tr

	return prev, existed
}

func (s *store[T]) len() int {
	return len(s.order)
}

func (s *store[T]) values() []T {
	out := make([]T, 0, len(s.order))
	for _, p := range s.order {
		out = append(out, s.byPair[p])
	}

	return out
}

// clone copies the store and every transform in it.
func (s *store[T]) clone() *store[T] {
	out := &store[T]{
		byPair: make(map[Pair]T, len(s.byPair)),
		order:  append([]Pair(nil), s.order...),
	}

	for p, tr := range s.byPair {
		out.byPair[p] = tr.clone().(T)
	}

	return out
}
