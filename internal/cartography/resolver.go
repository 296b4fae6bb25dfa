package cartography

import "github.com/lawnchairsociety/cartograph/internal/direction"

// Node is a location as seen by the cartographer. The only thing the
// cartographer ever writes to a node is its coordinate.
type Node[K comparable] interface {
	Key() K
	Label() string
	// BelongsTo reports whether the node lies inside the named zone or locale.
	BelongsTo(region string) bool
	SetCoordinate(c Coordinate)
}

// Pathway is a directed, direction-typed edge between two locations.
type Pathway[K comparable] struct {
	Name        string
	Direction   direction.Direction
	Origin      K
	Destination K
	Target      TargetKind
}

// Resolver is the cartographer's read view of a location store.
type Resolver[K comparable] interface {
	Lookup(key K) (Node[K], bool)
	// Pathways lists the outbound pathways of node. Zone and locale edges are
	// only included when includeNonRoom is set.
	Pathways(node Node[K], includeNonRoom bool) []Pathway[K]
}

// FilterPathways returns the pathways a resolver should report for includeNonRoom.
func FilterPathways[K comparable](all []Pathway[K], includeNonRoom bool) []Pathway[K] {
	out := make([]Pathway[K], 0, len(all))
	for _, p := range all {
		if includeNonRoom || p.Target == TargetRoom {
			out = append(out, p)
		}
	}
	return out
}
