package cartography

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindCenterOccupiedMidpoint(t *testing.T) {
	g := NewGrid(5, 5, 1, "")
	g.Set(Coordinate{2, 2, 0}, "mid")
	g.Set(Coordinate{1, 2, 0}, "west")

	key, ok := FindCenter(g)
	assert.True(t, ok)
	assert.Equal(t, "mid", key)
}

func TestFindCenterRingPriority(t *testing.T) {
	g := NewGrid(5, 5, 1, "")
	g.Set(Coordinate{3, 2, 0}, "east")
	g.Set(Coordinate{1, 2, 0}, "west")
	g.Set(Coordinate{2, 3, 0}, "north")

	key, _ := FindCenter(g)
	assert.Equal(t, "west", key)

	g.Set(Coordinate{1, 2, 0}, "")
	key, _ = FindCenter(g)
	assert.Equal(t, "east", key)

	g.Set(Coordinate{3, 2, 0}, "")
	g.Set(Coordinate{1, 1, 0}, "southwest")
	key, _ = FindCenter(g)
	assert.Equal(t, "north", key)
}

func TestFindCenterSingleCellAnywhere(t *testing.T) {
	positions := []Coordinate{
		{0, 0, 0}, {6, 6, 0}, {0, 6, 3}, {5, 1, 6}, {2, 6, 2}, {1, 4, 4},
	}
	for _, at := range positions {
		g := NewGrid(7, 7, 7, "")
		g.Set(at, "only")
		key, ok := FindCenter(g)
		assert.True(t, ok, "cell at %v", at)
		assert.Equal(t, "only", key, "cell at %v", at)
	}
}

func TestFindCenterPrefersNearerPlane(t *testing.T) {
	g := NewGrid(3, 3, 5, int64(-1))
	g.Set(Coordinate{1, 1, 0}, 10)
	g.Set(Coordinate{0, 0, 3}, 20)

	key, ok := FindCenter(g)
	assert.True(t, ok)
	assert.Equal(t, int64(20), key)
}

func TestFindCenterOnPlaneDoesNotWander(t *testing.T) {
	g := NewGrid(3, 3, 3, "")
	g.Set(Coordinate{1, 1, 2}, "up")

	_, ok := FindCenterOnPlane(g, 1)
	assert.False(t, ok)
	_, ok = FindCenterOnPlane(g, 9)
	assert.False(t, ok)

	key, ok := FindCenterOnPlane(g, 2)
	assert.True(t, ok)
	assert.Equal(t, "up", key)
}

func TestFindCenterEmpty(t *testing.T) {
	key, ok := FindCenter(NewGrid(4, 4, 4, ""))
	assert.False(t, ok)
	assert.Equal(t, "", key)

	_, ok = FindCenter(NewGrid(0, 0, 0, ""))
	assert.False(t, ok)
}
