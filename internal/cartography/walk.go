package cartography

import "github.com/lawnchairsociety/cartograph/internal/direction"

// Pool is a set of candidate keys. BuildRadiusMap removes every key it places.
type Pool[K comparable] map[K]struct{}

// NewPool returns a pool holding keys.
func NewPool[K comparable](keys ...K) Pool[K] {
	p := make(Pool[K], len(keys))
	for _, k := range keys {
		p[k] = struct{}{}
	}
	return p
}

// Has reports whether key is still in the pool.
func (p Pool[K]) Has(key K) bool {
	_, ok := p[key]
	return ok
}

// walkFrame is one suspended step of the depth-first walk.
type walkFrame[K comparable] struct {
	at    Coordinate
	exits map[direction.Direction]Node[K]
	next  int
}

// BuildRadiusMap lays out the neighbourhood of origin on a MapSide cube with
// origin at the centre cell. From each placed node the walk tries every
// direction in enumeration order and places the destination in the stepped
// cell when that cell is inside the cube, still empty, and a room pathway
// leads that way. The grid itself is the visited set: a cell, once written,
// is never written again, so the walk ends after at most MapSide³ placements.
//
// An unknown or empty origin yields a zero-size grid. Pathways whose
// destination cannot be resolved are skipped. pool may be nil.
func (c *Cartographer[K]) BuildRadiusMap(origin K, pool Pool[K]) *Grid[K] {
	root, ok := c.lookup(origin)
	if !ok {
		return NewGrid(0, 0, 0, c.empty)
	}

	grid := NewGrid(MapSide, MapSide, MapSide, c.empty)
	dirs := direction.All()

	center := Coordinate{X: MapCenter, Y: MapCenter, Z: MapCenter}
	grid.Set(center, root.Key())
	delete(pool, root.Key())

	stack := []walkFrame[K]{{at: center, exits: c.roomExits(root)}}
	for len(stack) > 0 {
		top := len(stack) - 1
		if stack[top].next >= len(dirs) {
			stack = stack[:top]
			continue
		}

		d := dirs[stack[top].next]
		stack[top].next++

		target := stack[top].at.Step(d)
		if !grid.InBounds(target) || grid.Occupied(target) {
			continue
		}
		dest, ok := stack[top].exits[d]
		if !ok {
			continue
		}

		grid.Set(target, dest.Key())
		delete(pool, dest.Key())
		stack = append(stack, walkFrame[K]{at: target, exits: c.roomExits(dest)})
	}

	return grid
}

// roomExits resolves the first same-scope pathway in each direction.
func (c *Cartographer[K]) roomExits(node Node[K]) map[direction.Direction]Node[K] {
	exits := make(map[direction.Direction]Node[K])
	for _, p := range c.resolver.Pathways(node, false) {
		if p.Target != TargetRoom || p.Direction == direction.None {
			continue
		}
		if _, taken := exits[p.Direction]; taken {
			continue
		}
		dest, ok := c.lookup(p.Destination)
		if !ok {
			continue
		}
		exits[p.Direction] = dest
	}
	return exits
}
