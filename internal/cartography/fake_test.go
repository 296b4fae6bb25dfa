package cartography

import "github.com/lawnchairsociety/cartograph/internal/direction"

type fakeNode[K comparable] struct {
	key    K
	label  string
	zone   string
	locale string
	coord  Coordinate
	placed bool
}

func (n *fakeNode[K]) Key() K        { return n.key }
func (n *fakeNode[K]) Label() string { return n.label }

func (n *fakeNode[K]) BelongsTo(region string) bool {
	return region == n.zone || region == n.zone+"/"+n.locale
}

func (n *fakeNode[K]) SetCoordinate(c Coordinate) {
	n.coord = c
	n.placed = true
}

// fakeStore is an in-memory resolver usable with any key type.
type fakeStore[K comparable] struct {
	nodes map[K]*fakeNode[K]
	paths map[K][]Pathway[K]
}

func newFakeStore[K comparable]() *fakeStore[K] {
	return &fakeStore[K]{nodes: make(map[K]*fakeNode[K]), paths: make(map[K][]Pathway[K])}
}

func (s *fakeStore[K]) add(key K, label string) *fakeNode[K] {
	n := &fakeNode[K]{key: key, label: label, zone: "z", locale: "l"}
	s.nodes[key] = n
	return n
}

func (s *fakeStore[K]) edge(from K, d direction.Direction, to K, kind TargetKind) {
	s.paths[from] = append(s.paths[from], Pathway[K]{Direction: d, Origin: from, Destination: to, Target: kind})
}

func (s *fakeStore[K]) link(from K, d direction.Direction, to K) {
	s.edge(from, d, to, TargetRoom)
}

func (s *fakeStore[K]) linkBoth(from K, d direction.Direction, to K) {
	s.link(from, d, to)
	s.link(to, d.Reverse(), from)
}

func (s *fakeStore[K]) Lookup(key K) (Node[K], bool) {
	n, ok := s.nodes[key]
	if !ok {
		return nil, false
	}
	return n, true
}

func (s *fakeStore[K]) Pathways(node Node[K], includeNonRoom bool) []Pathway[K] {
	return FilterPathways(s.paths[node.Key()], includeNonRoom)
}
