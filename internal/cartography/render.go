package cartography

import (
	"fmt"
	"html"
	"strings"

	"github.com/lawnchairsociety/cartograph/internal/direction"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Options control a single Render call.
type Options[K comparable] struct {
	Mode            Mode
	IncludePathways bool
	Pass            Pass
	// Markup wraps glyphs in tags carrying keys and labels for a view layer.
	// Without it the output is plain ascii.
	Markup bool
	// Current is the viewer's position, highlighted in Player mode.
	Current *K
}

// title upper-cases each word. Casers carry state, so each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Render draws plane top row first (highest Y). Rows without any glyph are
// dropped. Without pathways each cell is one character; with pathways each
// cell becomes a 3×3 block with the location in the middle and the pass's
// eight directions around it. Render never writes to the resolver.
func (c *Cartographer[K]) Render(p *Plane[K], opts Options[K]) string {
	sx, sy := p.Dims()
	rows := make([]string, 0, sy)

	for y := sy - 1; y >= 0; y-- {
		if !opts.IncludePathways {
			var b strings.Builder
			content := false
			for x := 0; x < sx; x++ {
				if !p.Occupied(x, y) {
					b.WriteString(c.blank(opts))
					continue
				}
				b.WriteString(c.locationCell(p.Get(x, y), opts))
				content = true
			}
			if content {
				rows = append(rows, b.String())
			}
			continue
		}

		var lines [3]strings.Builder
		var content [3]bool
		for x := 0; x < sx; x++ {
			if !p.Occupied(x, y) {
				for i := range lines {
					lines[i].WriteString(strings.Repeat(c.blank(opts), 3))
				}
				continue
			}
			block := c.inflate(p, x, y, opts)
			for i := range block {
				for _, cell := range block[i] {
					if cell.content {
						content[i] = true
					}
					lines[i].WriteString(cell.text)
				}
			}
		}
		for i := range lines {
			if content[i] {
				rows = append(rows, lines[i].String())
			}
		}
	}

	return strings.Join(rows, "\n")
}

type renderedCell struct {
	text    string
	content bool
}

// blockLayout places a pass's eight directions (clockwise from north) around
// the centre of a 3×3 block. -1 marks the centre.
var blockLayout = [3][3]int{
	{7, 0, 1},
	{6, -1, 2},
	{5, 4, 3},
}

func passDirections(pass Pass) [8]direction.Direction {
	switch pass {
	case PassAbove:
		return direction.Upward()
	case PassBelow:
		return direction.Downward()
	default:
		return direction.Compass()
	}
}

func (c *Cartographer[K]) inflate(p *Plane[K], x, y int, opts Options[K]) [3][3]renderedCell {
	key := p.Get(x, y)
	set := passDirections(opts.Pass)

	exits := make(map[direction.Direction]Pathway[K])
	if node, ok := c.lookup(key); ok {
		for _, pw := range c.resolver.Pathways(node, true) {
			if _, taken := exits[pw.Direction]; !taken {
				exits[pw.Direction] = pw
			}
		}
	}

	var block [3][3]renderedCell
	for r, row := range blockLayout {
		for col, slot := range row {
			if slot < 0 {
				block[r][col] = renderedCell{text: c.locationCell(key, opts), content: true}
				continue
			}
			d := set[slot]
			block[r][col] = c.pathwayCell(p, x, y, key, d, exits, opts)
		}
	}
	return block
}

func (c *Cartographer[K]) pathwayCell(p *Plane[K], x, y int, origin K, d direction.Direction, exits map[direction.Direction]Pathway[K], opts Options[K]) renderedCell {
	pw, present := exits[d]
	if present {
		dest, resolved := c.lookup(pw.Destination)
		switch {
		case opts.Mode == Admin && !resolved:
			var target *K
			if pw.Destination != c.empty {
				target = &pw.Destination
			}
			return renderedCell{text: c.affordance(origin, d, target, true, opts), content: true}
		case !opts.Markup:
			return renderedCell{text: d.Glyph(), content: true}
		case opts.Mode == Admin:
			return renderedCell{text: fmt.Sprintf(
				`<a class="editPathway" data-pathway="%s" data-origin="%s" data-destination="%s" title="%s">%s</a>`,
				esc(pw.Name), esc(fmt.Sprint(origin)), esc(fmt.Sprint(pw.Destination)),
				esc(pathwayLabel(pw, d, dest)), html.EscapeString(d.Glyph())), content: true}
		default:
			return renderedCell{text: fmt.Sprintf(`<span title="%s">%s</span>`,
				esc(pathwayLabel(pw, d, dest)), html.EscapeString(d.Glyph())), content: true}
		}
	}

	if opts.Mode == Admin && opts.Pass == PassHere {
		step := d.Step()
		if p.Occupied(x+step.X, y+step.Y) {
			neighbour := p.Get(x+step.X, y+step.Y)
			return renderedCell{text: c.affordance(origin, d, &neighbour, false, opts), content: true}
		}
	}
	return renderedCell{text: c.blank(opts)}
}

// affordance offers to add a room in direction d (addRoom) or a pathway to an
// existing neighbour. dest, when known, is the key the new pathway would reach;
// a dangling pathway still carries its stored destination.
func (c *Cartographer[K]) affordance(origin K, d direction.Direction, dest *K, addRoom bool, opts Options[K]) string {
	if !opts.Markup {
		return GlyphAffordance
	}
	degrees, incline := d.Degrees()
	action := "Add pathway"
	if addRoom {
		action = "Add room"
	}
	destination := ""
	if dest != nil {
		destination = fmt.Sprintf(` data-destination="%s"`, esc(fmt.Sprint(*dest)))
	}
	return fmt.Sprintf(
		`<a class="addPathway" data-origin="%s" data-degrees="%d" data-incline="%d"%s title="%s %s">%s</a>`,
		esc(fmt.Sprint(origin)), degrees, incline, destination, action, esc(title(d.Label())), GlyphAffordance)
}

func (c *Cartographer[K]) locationCell(key K, opts Options[K]) string {
	node, ok := c.lookup(key)
	glyph := c.locationGlyph(node, ok, opts)
	if !opts.Markup {
		return glyph
	}

	label := ""
	if ok {
		label = node.Label()
	}
	if opts.Mode == Admin {
		return fmt.Sprintf(`<a class="editLocation" data-key="%s" title="%s">%s</a>`,
			esc(fmt.Sprint(key)), esc(label), html.EscapeString(glyph))
	}
	return fmt.Sprintf(`<span title="%s">%s</span>`, esc(label), html.EscapeString(glyph))
}

func (c *Cartographer[K]) locationGlyph(node Node[K], ok bool, opts Options[K]) string {
	if opts.Mode == Player && ok && opts.Current != nil && node.Key() == *opts.Current {
		return GlyphPlayerCurrent
	}
	if !ok {
		if opts.Mode == Admin {
			return GlyphAdminPlain
		}
		return GlyphPlayerPlain
	}

	var zone, locale, up, down bool
	for _, pw := range c.resolver.Pathways(node, true) {
		switch pw.Target {
		case TargetZoneEdge:
			zone = true
		case TargetLocaleEdge:
			locale = true
		}
		up = up || pw.Direction.IsUpward()
		down = down || pw.Direction.IsDownward()
	}

	if opts.Mode == Admin {
		switch {
		case zone && locale:
			return GlyphAdminBoth
		case zone:
			return GlyphAdminZone
		case locale:
			return GlyphAdminLocale
		default:
			return GlyphAdminPlain
		}
	}

	switch {
	case up && down:
		return GlyphPlayerUpDown
	case up:
		return GlyphPlayerUp
	case down:
		return GlyphPlayerDown
	default:
		return GlyphPlayerPlain
	}
}

func (c *Cartographer[K]) blank(opts Options[K]) string {
	if opts.Markup {
		return markupBlank
	}
	return GlyphBlank
}

func pathwayLabel[K comparable](pw Pathway[K], d direction.Direction, dest Node[K]) string {
	label := title(d.Label())
	if dest != nil {
		label += " to " + dest.Label()
	}
	if pw.Name != "" {
		label += " (" + pw.Name + ")"
	}
	return label
}

func esc(s string) string {
	return html.EscapeString(s)
}
