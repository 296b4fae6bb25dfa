package cartography

import (
	"errors"
	"fmt"
)

// ErrPlaneOutOfRange is returned by GetPlane for a Z index the grid does not have.
var ErrPlaneOutOfRange = errors.New("plane out of range")

// SliceMap keeps the cells whose coordinates fall inside all three ranges and
// blanks the rest. With shrink set, the result is cut down to the bounding
// box of the kept occupied cells and translated so that box starts at index
// zero on every axis; a slice that keeps nothing shrinks to a zero-size grid.
func SliceMap[K comparable](g *Grid[K], xr, yr, zr Range, shrink bool) *Grid[K] {
	return sliceWhere(g, func(at Coordinate, _ K) bool {
		return xr.Contains(at.X) && yr.Contains(at.Y) && zr.Contains(at.Z)
	}, shrink)
}

// ShrinkMap returns the minimal grid holding every occupied cell of g.
// ShrinkMap is idempotent.
func ShrinkMap[K comparable](g *Grid[K]) *Grid[K] {
	x, y, z := g.Dims()
	return SliceMap(g, Span(x), Span(y), Span(z), true)
}

// CropMap cuts the window xr × yr × zr out of g, translated so the window
// starts at index zero. Window cells outside g are empty. Unlike a shrinking
// slice the result always has the window's dimensions.
func CropMap[K comparable](g *Grid[K], xr, yr, zr Range) *Grid[K] {
	out := NewGrid(xr.Len(), yr.Len(), zr.Len(), g.Empty())
	g.Each(func(at Coordinate, key K) {
		if xr.Contains(at.X) && yr.Contains(at.Y) && zr.Contains(at.Z) {
			out.Set(at.Offset(-xr.Min, -yr.Min, -zr.Min), key)
		}
	})
	return out
}

// IsolateRegion keeps only the cells whose location belongs to region.
// Cells the resolver cannot resolve are dropped.
func (c *Cartographer[K]) IsolateRegion(g *Grid[K], region string) *Grid[K] {
	return sliceWhere(g, func(_ Coordinate, key K) bool {
		node, ok := c.lookup(key)
		return ok && node.BelongsTo(region)
	}, false)
}

// GetPlane flattens layer z of g. An out-of-range z is a caller bug and is
// reported as ErrPlaneOutOfRange.
func GetPlane[K comparable](g *Grid[K], z int) (*Plane[K], error) {
	x, y, depth := g.Dims()
	if z < 0 || z >= depth {
		return nil, fmt.Errorf("z=%d with %d planes: %w", z, depth, ErrPlaneOutOfRange)
	}

	p := &Plane[K]{sizeX: x, sizeY: y, empty: g.Empty(), cells: make([]K, x*y)}
	for j := 0; j < y; j++ {
		for i := 0; i < x; i++ {
			p.cells[j*x+i] = g.Get(Coordinate{X: i, Y: j, Z: z})
		}
	}
	return p, nil
}

func sliceWhere[K comparable](g *Grid[K], keep func(Coordinate, K) bool, shrink bool) *Grid[K] {
	sx, sy, sz := g.Dims()
	out := NewGrid(sx, sy, sz, g.Empty())

	kept := false
	var lo, hi Coordinate
	g.Each(func(at Coordinate, key K) {
		if !keep(at, key) {
			return
		}
		out.Set(at, key)
		if !kept {
			lo, hi, kept = at, at, true
			return
		}
		lo = Coordinate{X: min(lo.X, at.X), Y: min(lo.Y, at.Y), Z: min(lo.Z, at.Z)}
		hi = Coordinate{X: max(hi.X, at.X), Y: max(hi.Y, at.Y), Z: max(hi.Z, at.Z)}
	})

	if !shrink {
		return out
	}
	if !kept {
		return NewGrid(0, 0, 0, g.Empty())
	}
	if lo == (Coordinate{}) && hi == (Coordinate{X: sx - 1, Y: sy - 1, Z: sz - 1}) {
		return out
	}
	return CropMap(out, Range{lo.X, hi.X}, Range{lo.Y, hi.Y}, Range{lo.Z, hi.Z})
}
