package main

import (
	"fmt"
	"math/rand"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
	"github.com/lawnchairsociety/cartograph/internal/template"
)

// MazeGenerator carves a stack of mazes with a recursive backtracker and
// joins the levels with stairs. Each cell becomes one template room; the
// plane is split into four quadrant zones.
type MazeGenerator struct {
	Width, Height, Levels int
	Zone                  string
	Rand                  *rand.Rand

	open    map[cartography.Coordinate][]direction.Direction
	visited map[cartography.Coordinate]bool
	Stairs  int
}

// NewMazeGenerator sizes the maze. Callers keep Width and Height at or below
// cartography.MapCenter+1 so a whole zone fits one radius map.
func NewMazeGenerator(width, height, levels int, zone string, seed int64) *MazeGenerator {
	return &MazeGenerator{
		Width:   width,
		Height:  height,
		Levels:  levels,
		Zone:    zone,
		Rand:    rand.New(rand.NewSource(seed)),
		open:    make(map[cartography.Coordinate][]direction.Direction),
		visited: make(map[cartography.Coordinate]bool),
	}
}

// Generate carves every level from its centre, then adds one to three
// stairways between each pair of adjacent levels.
func (mg *MazeGenerator) Generate() {
	for z := 0; z < mg.Levels; z++ {
		mg.carveFrom(cartography.Coordinate{X: mg.Width / 2, Y: mg.Height / 2, Z: z})
	}
	for z := 0; z+1 < mg.Levels; z++ {
		n := 1 + mg.Rand.Intn(3)
		for i := 0; i < n; i++ {
			at := cartography.Coordinate{X: mg.Rand.Intn(mg.Width), Y: mg.Rand.Intn(mg.Height), Z: z}
			if mg.connect(at, direction.Up) {
				mg.Stairs++
			}
		}
	}
}

func (mg *MazeGenerator) carveFrom(at cartography.Coordinate) {
	mg.visited[at] = true

	dirs := direction.Compass()
	order := []direction.Direction{dirs[0], dirs[2], dirs[4], dirs[6]}
	mg.Rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	for _, d := range order {
		next := at.Step(d)
		if mg.inBounds(next) && !mg.visited[next] {
			mg.connect(at, d)
			mg.carveFrom(next)
		}
	}
}

// connect opens a passage both ways. It reports false if one was already open.
func (mg *MazeGenerator) connect(at cartography.Coordinate, d direction.Direction) bool {
	for _, existing := range mg.open[at] {
		if existing == d {
			return false
		}
	}
	next := at.Step(d)
	mg.open[at] = append(mg.open[at], d)
	mg.open[next] = append(mg.open[next], d.Reverse())
	return true
}

func (mg *MazeGenerator) inBounds(c cartography.Coordinate) bool {
	return c.X >= 0 && c.X < mg.Width && c.Y >= 0 && c.Y < mg.Height && c.Z >= 0 && c.Z < mg.Levels
}

// RoomID numbers cells level by level, row by row, starting at 1.
func (mg *MazeGenerator) RoomID(c cartography.Coordinate) int64 {
	return 1 + int64((c.Z*mg.Height+c.Y)*mg.Width+c.X)
}

// quadrant names the zone a cell belongs to.
func (mg *MazeGenerator) quadrant(c cartography.Coordinate) string {
	ns := "south"
	if c.Y >= mg.Height/2 {
		ns = "north"
	}
	ew := "west"
	if c.X >= mg.Width/2 {
		ew = "east"
	}
	return fmt.Sprintf("%s-%s%s", mg.Zone, ns, ew)
}

// Catalog converts the carved maze into template rooms. Pathway kinds follow
// from the quadrant zones; levels become locales.
func (mg *MazeGenerator) Catalog() (*template.Catalog, error) {
	c := template.NewCatalog()
	for z := 0; z < mg.Levels; z++ {
		for y := 0; y < mg.Height; y++ {
			for x := 0; x < mg.Width; x++ {
				at := cartography.Coordinate{X: x, Y: y, Z: z}
				room := template.NewRoom(mg.RoomID(at), fmt.Sprintf("Passage %d,%d", x, y), mg.quadrant(at), fmt.Sprintf("level-%d", z))
				room.Description = fmt.Sprintf("A twisting passage on level %d.", z)
				if err := c.AddRoom(room); err != nil {
					return nil, err
				}
			}
		}
	}

	for at, dirs := range mg.open {
		for _, d := range dirs {
			if _, err := c.Connect(mg.RoomID(at), d, mg.RoomID(at.Step(d)), ""); err != nil {
				return nil, fmt.Errorf("connect %v %s: %w", at, d, err)
			}
		}
	}
	return c, nil
}

// RoomCount returns the number of cells.
func (mg *MazeGenerator) RoomCount() int {
	return mg.Width * mg.Height * mg.Levels
}
