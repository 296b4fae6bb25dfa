package template

import (
	"errors"
	"testing"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func harbor(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog()
	require.NoError(t, c.AddRoom(NewRoom(1, "Pier", "harbor", "docks")))
	require.NoError(t, c.AddRoom(NewRoom(2, "Boardwalk", "harbor", "docks")))
	require.NoError(t, c.AddRoom(NewRoom(3, "Fish Market", "harbor", "market")))
	require.NoError(t, c.AddRoom(NewRoom(4, "Coast Road", "coast", "")))
	require.NoError(t, c.ConnectBoth(1, direction.North, 2, ""))
	require.NoError(t, c.ConnectBoth(2, direction.East, 3, "market arch"))
	require.NoError(t, c.ConnectBoth(2, direction.West, 4, ""))
	return c
}

func TestAddRoomRejectsBadIDs(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.AddRoom(NewRoom(7, "a", "z", "")))

	err := c.AddRoom(NewRoom(7, "b", "z", ""))
	assert.True(t, errors.Is(err, ErrDuplicateRoom))

	for _, id := range []int64{0, cartography.TemplateEmpty} {
		err = c.AddRoom(NewRoom(id, "c", "z", ""))
		assert.True(t, errors.Is(err, ErrInvalidID), "id %d", id)
	}
	assert.Equal(t, 1, c.Len())
}

func TestConnectTagsTargets(t *testing.T) {
	c := harbor(t)

	p, ok := c.Room(1).GetPathway(direction.North)
	require.True(t, ok)
	assert.Equal(t, cartography.TargetRoom, p.Target)

	p, ok = c.Room(2).GetPathway(direction.East)
	require.True(t, ok)
	assert.Equal(t, cartography.TargetLocaleEdge, p.Target)
	assert.Equal(t, "market arch", p.Name)

	p, ok = c.Room(4).GetPathway(direction.East)
	require.True(t, ok)
	assert.Equal(t, cartography.TargetZoneEdge, p.Target)
	assert.Equal(t, int64(2), p.Destination)
}

func TestConnectErrors(t *testing.T) {
	c := harbor(t)

	_, err := c.Connect(1, direction.South, 99, "")
	assert.True(t, errors.Is(err, ErrUnknownRoom))
	_, err = c.Connect(99, direction.South, 1, "")
	assert.True(t, errors.Is(err, ErrUnknownRoom))
	_, err = c.Connect(1, direction.None, 2, "")
	assert.True(t, errors.Is(err, ErrNoDirection))
}

func TestAddPathwayWithoutDestination(t *testing.T) {
	c := harbor(t)
	require.NoError(t, c.AddPathway(cartography.Pathway[int64]{Direction: direction.Down, Origin: 1, Destination: 50}))

	p, ok := c.Room(1).GetPathway(direction.Down)
	require.True(t, ok)
	assert.Equal(t, int64(50), p.Destination)
	assert.Nil(t, c.Room(50))
}

func TestResolverFiltersEdges(t *testing.T) {
	c := harbor(t)
	node, ok := c.Lookup(2)
	require.True(t, ok)

	assert.Len(t, c.Pathways(node, false), 1)
	assert.Len(t, c.Pathways(node, true), 3)

	_, ok = c.Lookup(cartography.TemplateEmpty)
	assert.False(t, ok)
}

func TestRegions(t *testing.T) {
	c := harbor(t)
	assert.Equal(t, []string{"coast", "harbor"}, c.Zones())
	assert.Equal(t, []int64{1, 2, 3}, c.RegionIDs("harbor"))
	assert.Equal(t, []int64{1, 2}, c.RegionIDs("harbor/docks"))
	assert.Empty(t, c.RegionIDs("coast/"))
}

func TestTemplateMapStaysInsideZone(t *testing.T) {
	c := harbor(t)
	carto := c.Cartographer()

	g := carto.BuildRadiusMap(1, nil)
	assert.Equal(t, 2, g.Count(), "edges to other locales and zones are not walked")

	written := carto.AssignCoordinates(g)
	assert.Equal(t, 2, written)
	assert.Equal(t, cartography.Coordinate{X: cartography.MapCenter, Y: cartography.MapCenter + 1, Z: cartography.MapCenter}, c.Room(2).Coordinate())

	shrunk := cartography.ShrinkMap(g)
	plane, err := cartography.GetPlane(shrunk, 0)
	require.NoError(t, err)
	assert.Equal(t, "&\nO", carto.Render(plane, cartography.Options[int64]{Mode: cartography.Admin}))
}
