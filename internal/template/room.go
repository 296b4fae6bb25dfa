package template

import (
	"sync"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
)

// Room is a persisted, design-time room definition. Live locations are
// spawned from rooms.
type Room struct {
	ID          int64
	Name        string
	Description string
	Zone        string
	Locale      string

	coordinate cartography.Coordinate
	pathways   []cartography.Pathway[int64]
	mu         sync.RWMutex
}

func NewRoom(id int64, name, zone, locale string) *Room {
	return &Room{
		ID:       id,
		Name:     name,
		Zone:     zone,
		Locale:   locale,
		pathways: make([]cartography.Pathway[int64], 0),
	}
}

func (r *Room) Key() int64 { return r.ID }

func (r *Room) Label() string { return r.Name }

// BelongsTo matches the zone name or "zone/locale".
func (r *Room) BelongsTo(region string) bool {
	return region == r.Zone || (r.Locale != "" && region == r.Zone+"/"+r.Locale)
}

func (r *Room) SetCoordinate(c cartography.Coordinate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coordinate = c
}

func (r *Room) Coordinate() cartography.Coordinate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.coordinate
}

// Pathways returns a copy of the outbound pathways.
func (r *Room) Pathways(includeNonRoom bool) []cartography.Pathway[int64] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cartography.FilterPathways(r.pathways, includeNonRoom)
}

// GetPathway returns the outbound pathway in direction d.
func (r *Room) GetPathway(d direction.Direction) (cartography.Pathway[int64], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pathways {
		if p.Direction == d {
			return p, true
		}
	}
	return cartography.Pathway[int64]{}, false
}

func (r *Room) setPathway(p cartography.Pathway[int64]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.pathways {
		if existing.Direction == p.Direction {
			r.pathways[i] = p
			return
		}
	}
	r.pathways = append(r.pathways, p)
}
