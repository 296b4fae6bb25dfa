// Package worldfile reads and writes template catalogs as YAML.
//
//	zones:
//	  harbor:
//	    rooms:
//	      - id: 1
//	        name: Pier
//	        locale: docks
//	        exits:
//	          - direction: north
//	            to: 2
//	          - direction: down
//	            to: 40
//	            name: rope ladder
//	            kind: zone
//
// An exit's kind is derived from the two rooms' regions when omitted. Exits
// to ids missing from the file are kept; author maps draw them as places a
// room can be added. Files ending in .zst are zstd-compressed.
package worldfile

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
	"github.com/lawnchairsociety/cartograph/internal/template"
)

var (
	ErrInvalidWorld     = errors.New("invalid world document")
	ErrUnknownDirection = errors.New("unknown direction")
	ErrUnknownKind      = errors.New("unknown pathway kind")
)

// WorldYAML is the top-level document.
type WorldYAML struct {
	Zones map[string]*ZoneYAML `yaml:"zones"`
}

// ZoneYAML lists the rooms of one zone.
type ZoneYAML struct {
	Rooms []*RoomYAML `yaml:"rooms"`
}

// RoomYAML is a single template room.
type RoomYAML struct {
	ID          int64       `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Locale      string      `yaml:"locale,omitempty"`
	Exits       []*ExitYAML `yaml:"exits,omitempty"`
}

// ExitYAML is one outbound pathway.
type ExitYAML struct {
	Direction string `yaml:"direction"`
	To        int64  `yaml:"to"`
	Name      string `yaml:"name,omitempty"`
	Kind      string `yaml:"kind,omitempty"`
}

// ToCatalog builds the catalog in two passes: rooms first, then exits, so
// exits can point forward.
func (w *WorldYAML) ToCatalog() (*template.Catalog, error) {
	c := template.NewCatalog()

	for _, zone := range sortedZones(w.Zones) {
		for _, ry := range w.Zones[zone].Rooms {
			room := template.NewRoom(ry.ID, ry.Name, zone, ry.Locale)
			room.Description = ry.Description
			if err := c.AddRoom(room); err != nil {
				return nil, fmt.Errorf("zone %s: %w", zone, err)
			}
		}
	}

	for _, zone := range sortedZones(w.Zones) {
		for _, ry := range w.Zones[zone].Rooms {
			for _, ey := range ry.Exits {
				if err := addExit(c, ry.ID, ey); err != nil {
					return nil, fmt.Errorf("room %d: %w", ry.ID, err)
				}
			}
		}
	}

	return c, nil
}

func addExit(c *template.Catalog, origin int64, ey *ExitYAML) error {
	d, ok := direction.Parse(ey.Direction)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownDirection, ey.Direction)
	}

	if ey.Kind == "" && c.Room(ey.To) != nil {
		_, err := c.Connect(origin, d, ey.To, ey.Name)
		return err
	}

	kind, ok := cartography.ParseTargetKind(ey.Kind)
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownKind, ey.Kind)
	}
	return c.AddPathway(cartography.Pathway[int64]{
		Name:        ey.Name,
		Direction:   d,
		Origin:      origin,
		Destination: ey.To,
		Target:      kind,
	})
}

// FromCatalog converts a catalog back into its YAML document.
func FromCatalog(c *template.Catalog) *WorldYAML {
	doc := &WorldYAML{Zones: make(map[string]*ZoneYAML)}
	for _, r := range c.Rooms() {
		zone, ok := doc.Zones[r.Zone]
		if !ok {
			zone = &ZoneYAML{}
			doc.Zones[r.Zone] = zone
		}
		ry := &RoomYAML{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Locale:      r.Locale,
		}
		pathways := r.Pathways(true)
		sort.Slice(pathways, func(i, j int) bool { return pathways[i].Direction < pathways[j].Direction })
		for _, p := range pathways {
			ry.Exits = append(ry.Exits, &ExitYAML{
				Direction: p.Direction.String(),
				To:        p.Destination,
				Name:      p.Name,
				Kind:      p.Target.String(),
			})
		}
		zone.Rooms = append(zone.Rooms, ry)
	}
	return doc
}

func sortedZones(zones map[string]*ZoneYAML) []string {
	names := make([]string, 0, len(zones))
	for name, z := range zones {
		if z != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
