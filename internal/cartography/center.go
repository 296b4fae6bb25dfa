package cartography

// ringPriority lists the eight cells tried first on each ring, scaled by the
// ring radius: W, E, S, N, SW, SE, NW, NE.
var ringPriority = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// FindCenter returns the occupied cell closest to the middle of g.
// The middle Z plane is searched first, then Z+1, Z-1, Z+2, Z-2 and so on.
// It reports false only when g has no occupied cell.
func FindCenter[K comparable](g *Grid[K]) (K, bool) {
	_, _, sz := g.Dims()
	cz := sz / 2
	if key, ok := FindCenterOnPlane(g, cz); ok {
		return key, true
	}
	for off := 1; cz-off >= 0 || cz+off < sz; off++ {
		for _, z := range [2]int{cz + off, cz - off} {
			if z < 0 || z >= sz {
				continue
			}
			if key, ok := FindCenterOnPlane(g, z); ok {
				return key, true
			}
		}
	}
	return g.Empty(), false
}

// FindCenterOnPlane searches only plane z. Starting at the midpoint it spirals
// outward ring by ring; on each ring the eight compass cells are tried in
// ringPriority order before the rest of the ring, bottom row first.
func FindCenterOnPlane[K comparable](g *Grid[K], z int) (K, bool) {
	sx, sy, sz := g.Dims()
	if z < 0 || z >= sz || sx == 0 || sy == 0 {
		return g.Empty(), false
	}

	cx, cy := sx/2, sy/2
	at := func(dx, dy int) (K, bool) {
		c := Coordinate{X: cx + dx, Y: cy + dy, Z: z}
		if g.Occupied(c) {
			return g.Get(c), true
		}
		return g.Empty(), false
	}

	if key, ok := at(0, 0); ok {
		return key, true
	}

	reach := max(cx, sx-1-cx, cy, sy-1-cy)
	for r := 1; r <= reach; r++ {
		for _, p := range ringPriority {
			if key, ok := at(p[0]*r, p[1]*r); ok {
				return key, true
			}
		}
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r || isPriority(dx, dy, r) {
					continue
				}
				if key, ok := at(dx, dy); ok {
					return key, true
				}
			}
		}
	}
	return g.Empty(), false
}

func isPriority(dx, dy, r int) bool {
	return (dx == 0 || abs(dx) == r) && (dy == 0 || abs(dy) == r)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
