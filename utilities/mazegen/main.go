package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/worldfile"
)

func main() {
	size := flag.Int("size", 20, "Maze width and height (max 26)")
	levels := flag.Int("levels", 2, "Number of stacked levels")
	zone := flag.String("zone", "maze", "Zone name prefix")
	seed := flag.Int64("seed", 42, "Seed for random generation")
	out := flag.String("out", "data/maze.yaml", "Output world file")
	flag.Parse()

	if *size < 2 || *size > cartography.MapCenter+1 {
		fmt.Fprintf(os.Stderr, "Error: size must be between 2 and %d\n", cartography.MapCenter+1)
		os.Exit(2)
	}
	if *levels < 1 {
		fmt.Fprintln(os.Stderr, "Error: levels must be at least 1")
		os.Exit(2)
	}

	gen := NewMazeGenerator(*size, *size, *levels, *zone, *seed)
	fmt.Printf("Generating %dx%dx%d maze (seed: %d)\n", *size, *size, *levels, *seed)
	gen.Generate()

	catalog, err := gen.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
		os.Exit(1)
	}
	if err := worldfile.Write(*out, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", *out)
	fmt.Printf("  - Rooms: %d\n", gen.RoomCount())
	fmt.Printf("  - Zones: %d\n", len(catalog.Zones()))
	fmt.Printf("  - Stairways: %d\n", gen.Stairs)
}
