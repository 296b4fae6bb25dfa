package world

import (
	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/logger"
	"github.com/lawnchairsociety/cartograph/internal/template"
)

// Instantiate spawns one live location per template room, each under a fresh
// birthmark, and re-keys the template pathways onto them. Target kinds are
// copied from the template. Pathways whose template destination does not
// exist keep an unresolvable destination so they still show up on author maps.
// The returned map takes template ids to birthmarks.
func Instantiate(catalog *template.Catalog) (*World, map[int64]string) {
	w := NewWorld()
	birthmarks := make(map[int64]string, catalog.Len())

	rooms := catalog.Rooms()
	for _, r := range rooms {
		l := NewLocation(NewBirthmark(), r.Name, r.Zone, r.Locale)
		l.TemplateID = r.ID
		w.AddLocation(l)
		birthmarks[r.ID] = l.Birthmark
	}

	dangling := 0
	for _, r := range rooms {
		origin := w.GetLocation(birthmarks[r.ID])
		for _, p := range r.Pathways(true) {
			dest, ok := birthmarks[p.Destination]
			if !ok {
				dest = NewBirthmark()
				dangling++
			}
			origin.AddPathway(cartography.Pathway[string]{
				Name:        p.Name,
				Direction:   p.Direction,
				Origin:      origin.Birthmark,
				Destination: dest,
				Target:      p.Target,
			})
		}
	}

	logger.Info("Instantiated live world", "locations", w.GetLocationCount(), "dangling_pathways", dangling)
	return w, birthmarks
}
