// Package world holds live locations: the mutable runtime copies players
// walk through, keyed by birthmark.
package world

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
)

var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrNoDirection     = errors.New("pathway needs a direction")
)

// World is the store of live locations. It is the resolver for live maps.
type World struct {
	locations map[string]*Location
	mu        sync.RWMutex
}

func NewWorld() *World {
	return &World{
		locations: make(map[string]*Location),
	}
}

func (w *World) AddLocation(l *Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.locations[l.Birthmark] = l
}

func (w *World) GetLocation(birthmark string) *Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.locations[birthmark]
}

// RemoveLocation drops a location. Pathways pointing at it are left in
// place and simply stop resolving.
func (w *World) RemoveLocation(birthmark string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.locations, birthmark)
}

// Link creates a pathway from origin to destination, tagging it as a zone or
// locale edge when the two ends sit in different regions.
func (w *World) Link(origin string, d direction.Direction, destination, name string) (cartography.Pathway[string], error) {
	if d == direction.None || !d.Valid() {
		return cartography.Pathway[string]{}, ErrNoDirection
	}
	from := w.GetLocation(origin)
	if from == nil {
		return cartography.Pathway[string]{}, fmt.Errorf("origin %s: %w", origin, ErrUnknownLocation)
	}
	to := w.GetLocation(destination)
	if to == nil {
		return cartography.Pathway[string]{}, fmt.Errorf("destination %s: %w", destination, ErrUnknownLocation)
	}

	p := cartography.Pathway[string]{
		Name:        name,
		Direction:   d,
		Origin:      origin,
		Destination: destination,
		Target:      cartography.ClassifyTarget(from.Zone, from.Locale, to.Zone, to.Locale),
	}
	from.AddPathway(p)
	return p, nil
}

// LinkBoth creates a pathway and its reverse.
func (w *World) LinkBoth(a string, d direction.Direction, b, name string) error {
	if _, err := w.Link(a, d, b, name); err != nil {
		return err
	}
	_, err := w.Link(b, d.Reverse(), a, name)
	return err
}

// Lookup implements cartography.Resolver.
func (w *World) Lookup(birthmark string) (cartography.Node[string], bool) {
	l := w.GetLocation(birthmark)
	if l == nil {
		return nil, false
	}
	return l, true
}

// Pathways implements cartography.Resolver.
func (w *World) Pathways(node cartography.Node[string], includeNonRoom bool) []cartography.Pathway[string] {
	l := w.GetLocation(node.Key())
	if l == nil {
		return nil
	}
	return l.Pathways(includeNonRoom)
}

// Cartographer returns a map builder over this world.
func (w *World) Cartographer() *cartography.Cartographer[string] {
	return cartography.NewLive(w)
}

// GetAllLocations returns every location ordered by name, then birthmark.
func (w *World) GetAllLocations() []*Location {
	w.mu.RLock()
	locations := make([]*Location, 0, len(w.locations))
	for _, l := range w.locations {
		locations = append(locations, l)
	}
	w.mu.RUnlock()

	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Name != locations[j].Name {
			return locations[i].Name < locations[j].Name
		}
		return locations[i].Birthmark < locations[j].Birthmark
	})
	return locations
}

// RegionKeys returns the birthmarks of every location in region, in GetAllLocations order.
func (w *World) RegionKeys(region string) []string {
	keys := make([]string, 0)
	for _, l := range w.GetAllLocations() {
		if l.BelongsTo(region) {
			keys = append(keys, l.Birthmark)
		}
	}
	return keys
}

// FindByName returns the first location with the given name.
func (w *World) FindByName(name string) *Location {
	for _, l := range w.GetAllLocations() {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// GetLocationCount returns the total number of locations in the world
func (w *World) GetLocationCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.locations)
}
