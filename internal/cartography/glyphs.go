package cartography

import "fmt"

// Mode selects who a map is drawn for.
type Mode int

const (
	Admin  Mode = iota // Authors: region-edge glyphs and edit affordances
	Player             // Players: current position and vertical exits
)

func (m Mode) String() string {
	switch m {
	case Admin:
		return "admin"
	case Player:
		return "player"
	default:
		return "unknown"
	}
}

// ParseMode converts "admin" or "player" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "admin":
		return Admin, nil
	case "player":
		return Player, nil
	default:
		return Admin, fmt.Errorf("unknown render mode %q", s)
	}
}

// Pass selects which ring of pathway directions surrounds each location
// when pathways are drawn.
type Pass int

const (
	PassHere  Pass = iota // Plain compass points
	PassAbove             // Up-inclined compass points
	PassBelow             // Down-inclined compass points
)

// Location glyphs.
const (
	GlyphAdminPlain  = "O"
	GlyphAdminZone   = "Z"
	GlyphAdminLocale = "L"
	GlyphAdminBoth   = "&"

	GlyphPlayerCurrent = "@"
	GlyphPlayerUpDown  = "%"
	GlyphPlayerUp      = "^"
	GlyphPlayerDown    = "v"
	GlyphPlayerPlain   = "O"

	GlyphAffordance = "+"
	GlyphBlank      = " "
	markupBlank     = "&nbsp;"
)

// Legend describes every glyph the renderer can emit.
func Legend() string {
	return `Legend:
  Admin:  [O] room  [Z] zone exit  [L] locale exit  [&] zone and locale exits
  Player: [@] you are here  [^] way up  [v] way down  [%] ways up and down  [O] room
  Paths:  | north/south  - east/west  / northeast/southwest  \ northwest/southeast
  Admin:  [+] add a room or pathway here
`
}
