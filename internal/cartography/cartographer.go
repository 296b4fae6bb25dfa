// Package cartography lays locations out on a 3D grid by walking their
// pathway graph, reshapes those grids and renders them as ascii or markup
// maps. One generic implementation serves every key space; callers inject
// a Resolver for the store they map.
package cartography

const (
	// MapSide is the edge length of the cube filled by BuildRadiusMap.
	MapSide = 51
	// MapCenter is the index of the origin cell on every axis (the 26th cell).
	MapCenter = MapSide / 2
)

// Empty sentinels for the two key spaces.
const (
	LiveEmpty           = ""
	TemplateEmpty int64 = -1
)

// Cartographer builds and renders maps over one key space.
type Cartographer[K comparable] struct {
	resolver Resolver[K]
	empty    K
}

// New returns a cartographer for keys of type K. Cells equal to empty are
// unoccupied, so empty must never be a real location key.
func New[K comparable](resolver Resolver[K], empty K) *Cartographer[K] {
	return &Cartographer[K]{resolver: resolver, empty: empty}
}

// NewLive returns a cartographer for live locations keyed by birthmark.
func NewLive(resolver Resolver[string]) *Cartographer[string] {
	return New(resolver, LiveEmpty)
}

// NewTemplate returns a cartographer for template rooms keyed by numeric id.
func NewTemplate(resolver Resolver[int64]) *Cartographer[int64] {
	return New(resolver, TemplateEmpty)
}

// Empty returns the key-space sentinel.
func (c *Cartographer[K]) Empty() K {
	return c.empty
}

// Resolver returns the injected resolver.
func (c *Cartographer[K]) Resolver() Resolver[K] {
	return c.resolver
}

func (c *Cartographer[K]) lookup(key K) (Node[K], bool) {
	if key == c.empty || c.resolver == nil {
		return nil, false
	}
	node, ok := c.resolver.Lookup(key)
	if !ok || node == nil {
		return nil, false
	}
	return node, true
}
