// Package template holds design-time room definitions keyed by numeric id.
package template

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
)

var (
	ErrDuplicateRoom = errors.New("duplicate room id")
	ErrUnknownRoom   = errors.New("unknown room")
	ErrInvalidID     = errors.New("room ids must be positive")
	ErrNoDirection   = errors.New("pathway needs a direction")
)

// Catalog is the set of template rooms. It is the resolver for template maps.
type Catalog struct {
	rooms map[int64]*Room
	mu    sync.RWMutex
}

func NewCatalog() *Catalog {
	return &Catalog{rooms: make(map[int64]*Room)}
}

// AddRoom registers r. Ids must be positive and unique.
func (c *Catalog) AddRoom(r *Room) error {
	if r.ID <= 0 {
		return fmt.Errorf("room %d: %w", r.ID, ErrInvalidID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.rooms[r.ID]; exists {
		return fmt.Errorf("room %d: %w", r.ID, ErrDuplicateRoom)
	}
	c.rooms[r.ID] = r
	return nil
}

func (c *Catalog) Room(id int64) *Room {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rooms[id]
}

// Rooms returns every room ordered by id.
func (c *Catalog) Rooms() []*Room {
	c.mu.RLock()
	rooms := make([]*Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		rooms = append(rooms, r)
	}
	c.mu.RUnlock()

	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}

// Zones returns the distinct zone names, sorted.
func (c *Catalog) Zones() []string {
	seen := make(map[string]bool)
	zones := make([]string, 0)
	for _, r := range c.Rooms() {
		if !seen[r.Zone] {
			seen[r.Zone] = true
			zones = append(zones, r.Zone)
		}
	}
	sort.Strings(zones)
	return zones
}

// RegionIDs returns the ids of the rooms in region, ascending.
func (c *Catalog) RegionIDs(region string) []int64 {
	ids := make([]int64, 0)
	for _, r := range c.Rooms() {
		if r.BelongsTo(region) {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Connect creates a pathway between two existing rooms. Its target kind is
// decided here, from the rooms' zones and locales.
func (c *Catalog) Connect(origin int64, d direction.Direction, destination int64, name string) (cartography.Pathway[int64], error) {
	to := c.Room(destination)
	if to == nil {
		return cartography.Pathway[int64]{}, fmt.Errorf("destination %d: %w", destination, ErrUnknownRoom)
	}
	from := c.Room(origin)
	if from == nil {
		return cartography.Pathway[int64]{}, fmt.Errorf("origin %d: %w", origin, ErrUnknownRoom)
	}
	p := cartography.Pathway[int64]{
		Name:        name,
		Direction:   d,
		Origin:      origin,
		Destination: destination,
		Target:      cartography.ClassifyTarget(from.Zone, from.Locale, to.Zone, to.Locale),
	}
	if err := c.AddPathway(p); err != nil {
		return cartography.Pathway[int64]{}, err
	}
	return p, nil
}

// ConnectBoth creates a pathway and its reverse.
func (c *Catalog) ConnectBoth(a int64, d direction.Direction, b int64, name string) error {
	if _, err := c.Connect(a, d, b, name); err != nil {
		return err
	}
	_, err := c.Connect(b, d.Reverse(), a, name)
	return err
}

// AddPathway stores p as given. The destination need not exist yet; such a
// pathway is drawn as an "add room" affordance on author maps.
func (c *Catalog) AddPathway(p cartography.Pathway[int64]) error {
	if p.Direction == direction.None || !p.Direction.Valid() {
		return ErrNoDirection
	}
	from := c.Room(p.Origin)
	if from == nil {
		return fmt.Errorf("origin %d: %w", p.Origin, ErrUnknownRoom)
	}
	from.setPathway(p)
	return nil
}

// Lookup implements cartography.Resolver.
func (c *Catalog) Lookup(id int64) (cartography.Node[int64], bool) {
	r := c.Room(id)
	if r == nil {
		return nil, false
	}
	return r, true
}

// Pathways implements cartography.Resolver.
func (c *Catalog) Pathways(node cartography.Node[int64], includeNonRoom bool) []cartography.Pathway[int64] {
	r := c.Room(node.Key())
	if r == nil {
		return nil
	}
	return r.Pathways(includeNonRoom)
}

// Cartographer returns a map builder over this catalog.
func (c *Catalog) Cartographer() *cartography.Cartographer[int64] {
	return cartography.NewTemplate(c)
}
