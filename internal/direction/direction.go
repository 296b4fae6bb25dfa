// Package direction holds the compass-and-incline enumeration used to connect
// locations and the lookup tables that go with it.
package direction

import "strings"

// Direction is one of eight compass points, their up- and down-inclined
// variants, pure Up and Down, or None.
type Direction int

const (
	None Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	UpNorth
	UpNorthEast
	UpEast
	UpSouthEast
	UpSouth
	UpSouthWest
	UpWest
	UpNorthWest
	DownNorth
	DownNorthEast
	DownEast
	DownSouthEast
	DownSouth
	DownSouthWest
	DownWest
	DownNorthWest
	Up
	Down

	count
)

// Vector is a unit step in {-1,0,1} on each axis. Y grows northward and Z grows upward.
type Vector struct {
	X, Y, Z int
}

// Neg returns the componentwise negation of v.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Incline grades attached to the canonical (degrees, incline) pair.
const (
	SlopeGrade    = 25
	VerticalGrade = 90
)

type entry struct {
	name    string
	short   string
	reverse Direction
	step    Vector
	degrees int
	incline int
	glyph   string
}

// The compass rows are ordered clockwise from North; the inclined rows repeat that order.
var table = [count]entry{
	None: {"none", "", None, Vector{}, -1, 0, " "},

	North:     {"north", "n", South, Vector{0, 1, 0}, 0, 0, "|"},
	NorthEast: {"northeast", "ne", SouthWest, Vector{1, 1, 0}, 45, 0, "/"},
	East:      {"east", "e", West, Vector{1, 0, 0}, 90, 0, "-"},
	SouthEast: {"southeast", "se", NorthWest, Vector{1, -1, 0}, 135, 0, "\\"},
	South:     {"south", "s", North, Vector{0, -1, 0}, 180, 0, "|"},
	SouthWest: {"southwest", "sw", NorthEast, Vector{-1, -1, 0}, 225, 0, "/"},
	West:      {"west", "w", East, Vector{-1, 0, 0}, 270, 0, "-"},
	NorthWest: {"northwest", "nw", SouthEast, Vector{-1, 1, 0}, 315, 0, "\\"},

	UpNorth:     {"up-north", "un", DownSouth, Vector{0, 1, 1}, 0, SlopeGrade, "|"},
	UpNorthEast: {"up-northeast", "une", DownSouthWest, Vector{1, 1, 1}, 45, SlopeGrade, "/"},
	UpEast:      {"up-east", "ue", DownWest, Vector{1, 0, 1}, 90, SlopeGrade, "-"},
	UpSouthEast: {"up-southeast", "use", DownNorthWest, Vector{1, -1, 1}, 135, SlopeGrade, "\\"},
	UpSouth:     {"up-south", "us", DownNorth, Vector{0, -1, 1}, 180, SlopeGrade, "|"},
	UpSouthWest: {"up-southwest", "usw", DownNorthEast, Vector{-1, -1, 1}, 225, SlopeGrade, "/"},
	UpWest:      {"up-west", "uw", DownEast, Vector{-1, 0, 1}, 270, SlopeGrade, "-"},
	UpNorthWest: {"up-northwest", "unw", DownSouthEast, Vector{-1, 1, 1}, 315, SlopeGrade, "\\"},

	DownNorth:     {"down-north", "dn", UpSouth, Vector{0, 1, -1}, 0, -SlopeGrade, "|"},
	DownNorthEast: {"down-northeast", "dne", UpSouthWest, Vector{1, 1, -1}, 45, -SlopeGrade, "/"},
	DownEast:      {"down-east", "de", UpWest, Vector{1, 0, -1}, 90, -SlopeGrade, "-"},
	DownSouthEast: {"down-southeast", "dse", UpNorthWest, Vector{1, -1, -1}, 135, -SlopeGrade, "\\"},
	DownSouth:     {"down-south", "ds", UpNorth, Vector{0, -1, -1}, 180, -SlopeGrade, "|"},
	DownSouthWest: {"down-southwest", "dsw", UpNorthEast, Vector{-1, -1, -1}, 225, -SlopeGrade, "/"},
	DownWest:      {"down-west", "dw", UpEast, Vector{-1, 0, -1}, 270, -SlopeGrade, "-"},
	DownNorthWest: {"down-northwest", "dnw", UpSouthEast, Vector{-1, 1, -1}, 315, -SlopeGrade, "\\"},

	Up:   {"up", "u", Down, Vector{0, 0, 1}, -1, VerticalGrade, "^"},
	Down: {"down", "d", Up, Vector{0, 0, -1}, -1, -VerticalGrade, "v"},
}

var (
	compass  = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
	upward   = [8]Direction{UpNorth, UpNorthEast, UpEast, UpSouthEast, UpSouth, UpSouthWest, UpWest, UpNorthWest}
	downward = [8]Direction{DownNorth, DownNorthEast, DownEast, DownSouthEast, DownSouth, DownSouthWest, DownWest, DownNorthWest}
)

// All returns the 24 non-None directions in enumeration order.
func All() []Direction {
	all := make([]Direction, 0, count-1)
	for d := North; d < count; d++ {
		all = append(all, d)
	}
	return all
}

// Compass returns the eight plain compass points clockwise from North.
func Compass() [8]Direction { return compass }

// Upward returns the eight up-inclined compass points clockwise from up-north.
func Upward() [8]Direction { return upward }

// Downward returns the eight down-inclined compass points clockwise from down-north.
func Downward() [8]Direction { return downward }

// Valid reports whether d is a member of the enumeration (None included).
func (d Direction) Valid() bool {
	return d >= None && d < count
}

func (d Direction) row() entry {
	if !d.Valid() {
		return table[None]
	}
	return table[d]
}

// Reverse returns the opposite direction. Reverse is an involution and None is its own reverse.
func (d Direction) Reverse() Direction { return d.row().reverse }

// Step returns the unit grid step taken when moving in d.
func (d Direction) Step() Vector { return d.row().step }

// Degrees returns the canonical (degreesFromNorth, inclineGrade) pair.
// Pure Up, Down and None report -1 degrees.
func (d Direction) Degrees() (degrees, incline int) {
	r := d.row()
	return r.degrees, r.incline
}

// Glyph returns the single-character ascii glyph drawn for a pathway in d.
func (d Direction) Glyph() string { return d.row().glyph }

// String returns the canonical lower-case name.
func (d Direction) String() string { return d.row().name }

// Abbreviation returns the short command form, e.g. "ne" or "dsw".
func (d Direction) Abbreviation() string { return d.row().short }

// Label returns the name split into words, e.g. "up north east".
func (d Direction) Label() string {
	name := strings.ReplaceAll(d.String(), "-", " ")
	for _, part := range []string{"east", "west"} {
		if strings.HasSuffix(name, "north"+part) || strings.HasSuffix(name, "south"+part) {
			name = strings.TrimSuffix(name, part) + " " + part
		}
	}
	return name
}

// Planar returns the compass component of d, dropping any incline.
// Up, Down and None have no compass component and return None.
func (d Direction) Planar() Direction {
	switch {
	case d >= UpNorth && d <= UpNorthWest:
		return d - UpNorth + North
	case d >= DownNorth && d <= DownNorthWest:
		return d - DownNorth + North
	case d >= North && d <= NorthWest:
		return d
	default:
		return None
	}
}

// IsUpward reports whether moving in d climbs.
func (d Direction) IsUpward() bool { return d.Step().Z > 0 }

// IsDownward reports whether moving in d descends.
func (d Direction) IsDownward() bool { return d.Step().Z < 0 }

// Classify maps a (degreesFromNorth, inclineGrade) pair to a direction.
// Negative degrees mean "no heading": only the sign of incline matters.
// Otherwise degrees fall into one of eight 45° sectors centred on 0, 45, ... 315.
func Classify(degrees, incline int) Direction {
	if degrees < 0 {
		switch {
		case incline > 0:
			return Up
		case incline < 0:
			return Down
		default:
			return None
		}
	}

	sector := ((degrees%360)*2 + 45) / 90 % 8
	switch {
	case incline > 0:
		return upward[sector]
	case incline < 0:
		return downward[sector]
	default:
		return compass[sector]
	}
}

// Parse resolves a direction from its name or abbreviation, ignoring case,
// spaces, hyphens and underscores. Unknown input returns None and false.
func Parse(s string) (Direction, bool) {
	key := normalize(s)
	if key == "" {
		return None, false
	}
	for d := North; d < count; d++ {
		if key == normalize(table[d].name) || key == table[d].short {
			return d, true
		}
	}
	return None, false
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
