package world

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
)

// Location is a live, instantiated place in the world. Its birthmark is
// its identity for as long as the instance exists.
type Location struct {
	Birthmark  string
	Name       string
	Zone       string
	Locale     string
	TemplateID int64 // Template room this location was spawned from, 0 if none

	coordinate cartography.Coordinate
	pathways   []cartography.Pathway[string]
	mu         sync.RWMutex
}

// NewBirthmark returns a fresh identity string for a live location.
func NewBirthmark() string {
	return uuid.NewString()
}

func NewLocation(birthmark, name, zone, locale string) *Location {
	if birthmark == "" {
		birthmark = NewBirthmark()
	}
	return &Location{
		Birthmark: birthmark,
		Name:      name,
		Zone:      zone,
		Locale:    locale,
		pathways:  make([]cartography.Pathway[string], 0),
	}
}

// Key returns the birthmark
func (l *Location) Key() string {
	return l.Birthmark
}

// Label returns the display name
func (l *Location) Label() string {
	return l.Name
}

// BelongsTo matches the zone name or "zone/locale"
func (l *Location) BelongsTo(region string) bool {
	return region == l.Zone || (l.Locale != "" && region == l.Zone+"/"+l.Locale)
}

// SetCoordinate records where the location was last placed on a map
func (l *Location) SetCoordinate(c cartography.Coordinate) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.coordinate = c
}

// Coordinate returns the last coordinate assigned by a map build
func (l *Location) Coordinate() cartography.Coordinate {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.coordinate
}

// AddPathway adds an outbound pathway, replacing any existing one in the same direction
func (l *Location) AddPathway(p cartography.Pathway[string]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p.Origin = l.Birthmark
	for i, existing := range l.pathways {
		if existing.Direction == p.Direction {
			l.pathways[i] = p
			return
		}
	}
	l.pathways = append(l.pathways, p)
}

// RemovePathway removes the outbound pathway in direction d
func (l *Location) RemovePathway(d direction.Direction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, p := range l.pathways {
		if p.Direction == d {
			l.pathways = append(l.pathways[:i], l.pathways[i+1:]...)
			return true
		}
	}
	return false
}

// GetPathway returns the outbound pathway in direction d
func (l *Location) GetPathway(d direction.Direction) (cartography.Pathway[string], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, p := range l.pathways {
		if p.Direction == d {
			return p, true
		}
	}
	return cartography.Pathway[string]{}, false
}

// Pathways returns a copy of the outbound pathways. Zone and locale edges
// are left out unless includeNonRoom is set.
func (l *Location) Pathways(includeNonRoom bool) []cartography.Pathway[string] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cartography.FilterPathways(l.pathways, includeNonRoom)
}

// GetExits returns a map of direction name -> destination birthmark
func (l *Location) GetExits() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	exits := make(map[string]string, len(l.pathways))
	for _, p := range l.pathways {
		exits[p.Direction.String()] = p.Destination
	}
	return exits
}

// ExitNames returns the sorted direction names of all outbound pathways
func (l *Location) ExitNames() []string {
	exits := l.GetExits()
	names := make([]string, 0, len(exits))
	for name := range exits {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
