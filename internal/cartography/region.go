package cartography

// AssignCoordinates writes each occupied cell's coordinate onto the node it
// holds. This is the builder's only write to the location store; concurrent
// callers race on it and the last writer wins.
func (c *Cartographer[K]) AssignCoordinates(g *Grid[K]) int {
	written := 0
	g.Each(func(at Coordinate, key K) {
		if node, ok := c.lookup(key); ok {
			node.SetCoordinate(at)
			written++
		}
	})
	return written
}

// BuildRegionMaps maps every location of region reachable from keys. Keys
// outside the region are ignored. Seeds are taken from keys in order; each
// seed's radius map is isolated to the region and shrunk, and everything it
// placed leaves the pool. A region split into disconnected parts therefore
// yields one map per part. Seeds the resolver cannot find are returned as
// unplaced.
func (c *Cartographer[K]) BuildRegionMaps(region string, keys []K) (maps []*Grid[K], unplaced []K) {
	pool := make(Pool[K])
	for _, k := range keys {
		if node, ok := c.lookup(k); ok && node.BelongsTo(region) {
			pool[k] = struct{}{}
		} else if !ok && k != c.empty {
			unplaced = append(unplaced, k)
		}
	}

	for _, seed := range keys {
		if !pool.Has(seed) {
			continue
		}
		delete(pool, seed)

		grid := c.BuildRadiusMap(seed, pool)
		shrunk := ShrinkMap(c.IsolateRegion(grid, region))
		if shrunk.Count() == 0 {
			unplaced = append(unplaced, seed)
			continue
		}
		maps = append(maps, shrunk)
	}

	return maps, unplaced
}
