package cartography

// Grid is a dense 3D array of location keys. Cells holding the empty
// sentinel are unoccupied. Grids are built per request and thrown away;
// the resolver's pathway graph stays authoritative.
type Grid[K comparable] struct {
	sizeX, sizeY, sizeZ int
	empty               K
	cells               []K
}

// NewGrid allocates a grid of the given dimensions with every cell empty.
// Negative dimensions are treated as zero.
func NewGrid[K comparable](x, y, z int, empty K) *Grid[K] {
	x, y, z = max(x, 0), max(y, 0), max(z, 0)
	cells := make([]K, x*y*z)
	for i := range cells {
		cells[i] = empty
	}
	return &Grid[K]{sizeX: x, sizeY: y, sizeZ: z, empty: empty, cells: cells}
}

// Dims returns the grid's extent along X, Y and Z.
func (g *Grid[K]) Dims() (x, y, z int) {
	return g.sizeX, g.sizeY, g.sizeZ
}

// Empty returns the sentinel stored in unoccupied cells.
func (g *Grid[K]) Empty() K {
	return g.empty
}

// IsZero reports whether the grid has no cells at all.
func (g *Grid[K]) IsZero() bool {
	return len(g.cells) == 0
}

// InBounds reports whether c addresses a cell of this grid.
func (g *Grid[K]) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.sizeX &&
		c.Y >= 0 && c.Y < g.sizeY &&
		c.Z >= 0 && c.Z < g.sizeZ
}

func (g *Grid[K]) index(c Coordinate) int {
	return (c.Z*g.sizeY+c.Y)*g.sizeX + c.X
}

// Get returns the key at c, or the empty sentinel when c is out of bounds.
func (g *Grid[K]) Get(c Coordinate) K {
	if !g.InBounds(c) {
		return g.empty
	}
	return g.cells[g.index(c)]
}

// Set writes key at c. It returns false when c is out of bounds.
func (g *Grid[K]) Set(c Coordinate, key K) bool {
	if !g.InBounds(c) {
		return false
	}
	g.cells[g.index(c)] = key
	return true
}

// Occupied reports whether c is in bounds and holds a non-empty key.
func (g *Grid[K]) Occupied(c Coordinate) bool {
	return g.InBounds(c) && g.cells[g.index(c)] != g.empty
}

// Each calls fn for every occupied cell, X fastest then Y then Z.
func (g *Grid[K]) Each(fn func(at Coordinate, key K)) {
	for z := 0; z < g.sizeZ; z++ {
		for y := 0; y < g.sizeY; y++ {
			for x := 0; x < g.sizeX; x++ {
				c := Coordinate{X: x, Y: y, Z: z}
				if key := g.cells[g.index(c)]; key != g.empty {
					fn(c, key)
				}
			}
		}
	}
}

// Count returns the number of occupied cells.
func (g *Grid[K]) Count() int {
	n := 0
	for _, key := range g.cells {
		if key != g.empty {
			n++
		}
	}
	return n
}

// Keys returns the occupied keys in Each order.
func (g *Grid[K]) Keys() []K {
	keys := make([]K, 0)
	g.Each(func(_ Coordinate, key K) {
		keys = append(keys, key)
	})
	return keys
}

// Find returns the first cell holding key.
func (g *Grid[K]) Find(key K) (Coordinate, bool) {
	if key == g.empty {
		return Coordinate{}, false
	}
	for z := 0; z < g.sizeZ; z++ {
		for y := 0; y < g.sizeY; y++ {
			for x := 0; x < g.sizeX; x++ {
				c := Coordinate{X: x, Y: y, Z: z}
				if g.cells[g.index(c)] == key {
					return c, true
				}
			}
		}
	}
	return Coordinate{}, false
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid[K]) Equal(other *Grid[K]) bool {
	if other == nil || g.sizeX != other.sizeX || g.sizeY != other.sizeY || g.sizeZ != other.sizeZ {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Plane is a single Z layer of a grid.
type Plane[K comparable] struct {
	sizeX, sizeY int
	empty        K
	cells        []K
}

// Dims returns the plane's extent along X and Y.
func (p *Plane[K]) Dims() (x, y int) {
	return p.sizeX, p.sizeY
}

// Empty returns the sentinel stored in unoccupied cells.
func (p *Plane[K]) Empty() K {
	return p.empty
}

// Get returns the key at (x, y), or the empty sentinel when out of bounds.
func (p *Plane[K]) Get(x, y int) K {
	if x < 0 || x >= p.sizeX || y < 0 || y >= p.sizeY {
		return p.empty
	}
	return p.cells[y*p.sizeX+x]
}

// Occupied reports whether (x, y) is in bounds and holds a non-empty key.
func (p *Plane[K]) Occupied(x, y int) bool {
	return p.Get(x, y) != p.empty
}
