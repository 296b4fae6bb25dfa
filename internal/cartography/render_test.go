package cartography

import (
	"strings"
	"testing"

	"github.com/lawnchairsociety/cartograph/internal/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planeOf(t *testing.T, g *Grid[string], z int) *Plane[string] {
	t.Helper()
	p, err := GetPlane(g, z)
	require.NoError(t, err)
	return p
}

func TestRenderSparsePlaneWithoutPathways(t *testing.T) {
	s := newFakeStore[string]()
	s.add("A", "A")
	s.add("B", "B")
	g := NewGrid(2, 2, 1, "")
	g.Set(Coordinate{0, 0, 0}, "A")
	g.Set(Coordinate{1, 1, 0}, "B")

	out := NewLive(s).Render(planeOf(t, g, 0), Options[string]{Mode: Admin})

	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	assert.Equal(t, " O", rows[0])
	assert.Equal(t, "O ", rows[1])
}

func TestRenderDropsEmptyRows(t *testing.T) {
	s := newFakeStore[string]()
	s.add("A", "A")
	g := NewGrid(3, 4, 1, "")
	g.Set(Coordinate{1, 2, 0}, "A")

	out := NewLive(s).Render(planeOf(t, g, 0), Options[string]{Mode: Player})
	assert.Equal(t, " O ", out)

	assert.Equal(t, "", NewLive(s).Render(planeOf(t, NewGrid(3, 3, 1, ""), 0), Options[string]{}))
}

func TestRenderSingleNorthExit(t *testing.T) {
	s := newFakeStore[string]()
	s.add("X", "X")
	s.add("Y", "Y")
	s.link("X", direction.North, "Y")
	g := NewGrid(1, 1, 1, "")
	g.Set(Coordinate{0, 0, 0}, "X")

	for _, mode := range []Mode{Admin, Player} {
		out := NewLive(s).Render(planeOf(t, g, 0), Options[string]{Mode: mode, IncludePathways: true})
		assert.Equal(t, " | \n O ", out, "mode %s", mode)
	}
}

func endToEndStore() *fakeStore[string] {
	s := newFakeStore[string]()
	s.add("R", "Square")
	s.add("S", "Gate")
	s.add("T", "Market")
	s.linkBoth("R", direction.North, "S")
	s.linkBoth("R", direction.East, "T")
	return s
}

func TestRenderEndToEndAdmin(t *testing.T) {
	s := endToEndStore()
	c := NewLive(s)
	g := ShrinkMap(c.BuildRadiusMap("R", nil))

	out := c.Render(planeOf(t, g, 0), Options[string]{Mode: Admin, IncludePathways: true})

	want := strings.Join([]string{
		" O    ",
		" |+   ",
		" | +  ",
		" O--O ",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderEndToEndPlayer(t *testing.T) {
	s := endToEndStore()
	c := NewLive(s)
	g := ShrinkMap(c.BuildRadiusMap("R", nil))
	here := "R"

	out := c.Render(planeOf(t, g, 0), Options[string]{Mode: Player, IncludePathways: true, Current: &here})

	want := strings.Join([]string{
		" O    ",
		" |    ",
		" |    ",
		" @--O ",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRenderAdminLocationGlyphs(t *testing.T) {
	s := newFakeStore[string]()
	for _, k := range []string{"plain", "zone", "locale", "both", "far"} {
		s.add(k, k)
	}
	s.edge("zone", direction.North, "far", TargetZoneEdge)
	s.edge("locale", direction.North, "far", TargetLocaleEdge)
	s.edge("both", direction.North, "far", TargetZoneEdge)
	s.edge("both", direction.South, "far", TargetLocaleEdge)

	g := NewGrid(4, 1, 1, "")
	for i, k := range []string{"plain", "zone", "locale", "both"} {
		g.Set(Coordinate{i, 0, 0}, k)
	}

	out := NewLive(s).Render(planeOf(t, g, 0), Options[string]{Mode: Admin})
	assert.Equal(t, "OZL&", out)
}

func TestRenderPlayerLocationGlyphs(t *testing.T) {
	s := newFakeStore[string]()
	for _, k := range []string{"plain", "up", "down", "both", "me", "x"} {
		s.add(k, k)
	}
	s.link("up", direction.Up, "x")
	s.link("down", direction.DownEast, "x")
	s.link("both", direction.UpWest, "x")
	s.link("both", direction.Down, "x")
	s.link("me", direction.Up, "x")

	g := NewGrid(5, 1, 1, "")
	for i, k := range []string{"plain", "up", "down", "both", "me"} {
		g.Set(Coordinate{i, 0, 0}, k)
	}
	me := "me"

	out := NewLive(s).Render(planeOf(t, g, 0), Options[string]{Mode: Player, Current: &me})
	assert.Equal(t, "O^v%@", out)
}

func TestRenderInclinedPasses(t *testing.T) {
	s := newFakeStore[string]()
	s.add("A", "A")
	s.add("B", "B")
	s.link("A", direction.UpEast, "B")
	s.link("A", direction.DownSouthWest, "B")
	g := NewGrid(1, 1, 1, "")
	g.Set(Coordinate{0, 0, 0}, "A")
	p := planeOf(t, g, 0)
	c := NewLive(s)

	here := c.Render(p, Options[string]{Mode: Player, IncludePathways: true, Pass: PassHere})
	above := c.Render(p, Options[string]{Mode: Player, IncludePathways: true, Pass: PassAbove})
	below := c.Render(p, Options[string]{Mode: Player, IncludePathways: true, Pass: PassBelow})

	assert.Equal(t, " % ", here)
	assert.Equal(t, " %-", above)
	assert.Equal(t, " % \n/  ", below)
}

func TestRenderAdminAffordances(t *testing.T) {
	s := newFakeStore[string]()
	s.add("A", "Hall")
	s.link("A", direction.North, "unbuilt")
	g := NewGrid(1, 1, 1, "")
	g.Set(Coordinate{0, 0, 0}, "A")
	p := planeOf(t, g, 0)
	c := NewLive(s)

	plain := c.Render(p, Options[string]{Mode: Admin, IncludePathways: true})
	assert.Equal(t, " + \n O ", plain)

	markup := c.Render(p, Options[string]{Mode: Admin, IncludePathways: true, Markup: true})
	assert.Contains(t, markup, `<a class="addPathway" data-origin="A" data-degrees="0" data-incline="0" data-destination="unbuilt" title="Add room North">+</a>`)
	assert.Contains(t, markup, `<a class="editLocation" data-key="A" title="Hall">O</a>`)
	assert.Contains(t, markup, "&nbsp;")

	player := c.Render(p, Options[string]{Mode: Player, IncludePathways: true})
	assert.Equal(t, " | \n O ", player)
}

func TestRenderAffordanceWithoutDestinationKey(t *testing.T) {
	s := newFakeStore[string]()
	s.add("A", "Hall")
	s.link("A", direction.East, LiveEmpty)
	g := NewGrid(1, 1, 1, LiveEmpty)
	g.Set(Coordinate{0, 0, 0}, "A")

	markup := NewLive(s).Render(planeOf(t, g, 0), Options[string]{Mode: Admin, IncludePathways: true, Markup: true})
	assert.Contains(t, markup, `<a class="addPathway" data-origin="A" data-degrees="90" data-incline="0" title="Add room East">+</a>`)
	assert.NotContains(t, markup, "data-destination")
}

func TestRenderMarkupPathways(t *testing.T) {
	s := endToEndStore()
	s.paths["R"][0].Name = "iron gate"
	c := NewLive(s)
	g := ShrinkMap(c.BuildRadiusMap("R", nil))
	p := planeOf(t, g, 0)

	admin := c.Render(p, Options[string]{Mode: Admin, IncludePathways: true, Markup: true})
	assert.Contains(t, admin, `<a class="editPathway" data-pathway="iron gate" data-origin="R" data-destination="S" title="North to Gate (iron gate)">|</a>`)
	assert.Contains(t, admin, `data-origin="S" data-degrees="135" data-incline="0" data-destination="T" title="Add pathway South East"`)

	player := c.Render(p, Options[string]{Mode: Player, IncludePathways: true, Markup: true})
	assert.Contains(t, player, `<span title="East to Market">-</span>`)
	assert.Contains(t, player, `<span title="Square">O</span>`)
	assert.NotContains(t, player, "addPathway")
}

func TestRenderRadius(t *testing.T) {
	s := newFakeStore[string]()
	s.add("A", "A")
	s.add("B", "B")
	s.add("C", "C")
	s.add("far", "far")
	s.linkBoth("A", direction.Up, "B")
	s.linkBoth("A", direction.East, "C")
	s.linkBoth("C", direction.East, "far")

	levels, err := NewLive(s).RenderRadius("A", 1, Options[string]{Mode: Admin})
	require.NoError(t, err)
	assert.Equal(t, " O ", levels.Above)
	assert.Equal(t, " OO", levels.Here)
	assert.Equal(t, "", levels.Below)
}

func TestRenderRadiusUnknownOrigin(t *testing.T) {
	levels, err := NewLive(newFakeStore[string]()).RenderRadius("nobody", 3, Options[string]{})
	require.NoError(t, err)
	assert.Equal(t, RadiusMap{}, levels)
}

func TestRenderPoint(t *testing.T) {
	s := newFakeStore[int64]()
	s.add(1, "one")
	s.add(2, "two")
	s.linkBoth(1, direction.Up, 2)
	s.linkBoth(1, direction.West, 2)
	current := int64(1)
	c := NewTemplate(s)

	out, err := c.RenderPoint(1, 0, Options[int64]{Mode: Player, Current: &current})
	require.NoError(t, err)
	assert.Equal(t, "@", out)

	out, err = c.RenderPoint(1, 1, Options[int64]{Mode: Player})
	require.NoError(t, err)
	assert.Equal(t, "v^ ", out)

	out, err = c.RenderPoint(99, 1, Options[int64]{})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("player")
	require.NoError(t, err)
	assert.Equal(t, Player, m)
	assert.Equal(t, "player", m.String())

	_, err = ParseMode("wizard")
	assert.Error(t, err)
}
