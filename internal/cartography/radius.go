package cartography

// RadiusMap holds the three rendered levels around an origin. A point query
// fills only Here.
type RadiusMap struct {
	Above string
	Here  string
	Below string
}

// clampRadius keeps the view inside the walked cube. The walk always covers
// the full MapSide window; radius only narrows what is rendered.
func clampRadius(radius int) int {
	return min(max(radius, 0), MapCenter)
}

// RadiusWindow builds the map around origin and crops it to origin ± radius
// on X and Y and to the given number of levels above and below. The origin
// ends up at (radius, radius, levels) in the returned grid.
func (c *Cartographer[K]) RadiusWindow(origin K, radius, levels int) *Grid[K] {
	grid := c.BuildRadiusMap(origin, nil)
	if grid.IsZero() {
		return grid
	}
	r := clampRadius(radius)
	l := clampRadius(levels)
	return CropMap(grid, Around(MapCenter, r), Around(MapCenter, r), Around(MapCenter, l))
}

// RenderRadius renders the planes above, at and below origin, each cropped to
// origin ± radius. The above and below levels draw their up- and
// down-inclined pathways. An unknown origin renders as three empty blocks.
func (c *Cartographer[K]) RenderRadius(origin K, radius int, opts Options[K]) (RadiusMap, error) {
	window := c.RadiusWindow(origin, radius, 1)
	if window.IsZero() {
		return RadiusMap{}, nil
	}

	var out RadiusMap
	levels := []struct {
		z    int
		pass Pass
		dst  *string
	}{
		{2, PassAbove, &out.Above},
		{1, PassHere, &out.Here},
		{0, PassBelow, &out.Below},
	}
	for _, lvl := range levels {
		plane, err := GetPlane(window, lvl.z)
		if err != nil {
			return RadiusMap{}, err
		}
		o := opts
		o.Pass = lvl.pass
		*lvl.dst = c.Render(plane, o)
	}
	return out, nil
}

// RenderPoint renders only origin's own plane, cropped to origin ± radius.
func (c *Cartographer[K]) RenderPoint(origin K, radius int, opts Options[K]) (string, error) {
	window := c.RadiusWindow(origin, radius, 0)
	if window.IsZero() {
		return "", nil
	}
	plane, err := GetPlane(window, 0)
	if err != nil {
		return "", err
	}
	opts.Pass = PassHere
	return c.Render(plane, opts), nil
}
