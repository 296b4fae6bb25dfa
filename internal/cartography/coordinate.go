package cartography

import (
	"fmt"

	"github.com/lawnchairsociety/cartograph/internal/direction"
)

// Coordinate is an index into a grid. It is a derived annotation, never identity.
type Coordinate struct {
	X, Y, Z int
}

// Step returns the coordinate one unit away in direction d.
func (c Coordinate) Step(d direction.Direction) Coordinate {
	v := d.Step()
	return Coordinate{X: c.X + v.X, Y: c.Y + v.Y, Z: c.Z + v.Z}
}

// Offset translates c by (dx, dy, dz).
func (c Coordinate) Offset(dx, dy, dz int) Coordinate {
	return Coordinate{X: c.X + dx, Y: c.Y + dy, Z: c.Z + dz}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Range is a closed integer interval.
type Range struct {
	Min, Max int
}

// Around returns the range center-radius..center+radius.
func Around(center, radius int) Range {
	return Range{Min: center - radius, Max: center + radius}
}

// Span returns the full index range of an axis of the given length.
func Span(length int) Range {
	return Range{Min: 0, Max: length - 1}
}

// Contains reports whether v lies within the range, bounds included.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Len returns the number of integers in the range, zero for an inverted range.
func (r Range) Len() int {
	if r.Max < r.Min {
		return 0
	}
	return r.Max - r.Min + 1
}
