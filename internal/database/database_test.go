package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/direction"
	"github.com/lawnchairsociety/cartograph/internal/template"
)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleCatalog(t *testing.T) *template.Catalog {
	t.Helper()
	c := template.NewCatalog()
	rooms := []*template.Room{
		template.NewRoom(1, "Pier", "harbor", "docks"),
		template.NewRoom(2, "Boardwalk", "harbor", "docks"),
		template.NewRoom(3, "Fish Market", "harbor", "market"),
		template.NewRoom(4, "Coast Road", "coast", ""),
	}
	rooms[0].Description = "Salt-stained planks."
	rooms[1].SetCoordinate(cartography.Coordinate{X: 25, Y: 26, Z: 25})
	for _, r := range rooms {
		if err := c.AddRoom(r); err != nil {
			t.Fatal(err)
		}
	}
	for _, link := range []struct {
		a    int64
		d    direction.Direction
		b    int64
		name string
	}{
		{1, direction.North, 2, ""},
		{2, direction.East, 3, "market arch"},
		{2, direction.UpWest, 4, ""},
	} {
		if err := c.ConnectBoth(link.a, link.d, link.b, link.name); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.AddPathway(cartography.Pathway[int64]{Origin: 1, Direction: direction.Down, Destination: 99}); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "catalog.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	for _, table := range []string{"template_rooms", "template_pathways"} {
		var n int
		if err := db.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Errorf("Failed to query %s: %v", table, err)
		}
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	for i := 0; i < 2; i++ {
		db, err := Open(path)
		if err != nil {
			t.Fatalf("Open #%d: %v", i+1, err)
		}
		db.Close()
	}
}

func TestOpenWithConfigRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenWithConfig(Config{Driver: "oracle"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestSaveAndLoadCatalog(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	want := sampleCatalog(t)

	if err := db.SaveCatalog(ctx, want); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}
	got, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if got.Len() != want.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), want.Len())
	}
	for _, w := range want.Rooms() {
		g := got.Room(w.ID)
		if g == nil {
			t.Fatalf("room %d missing", w.ID)
		}
		if g.Name != w.Name || g.Zone != w.Zone || g.Locale != w.Locale || g.Description != w.Description {
			t.Errorf("room %d = %+v, want %+v", w.ID, g, w)
		}
		if g.Coordinate() != w.Coordinate() {
			t.Errorf("room %d coordinate = %v, want %v", w.ID, g.Coordinate(), w.Coordinate())
		}
		wp, gp := w.Pathways(true), g.Pathways(true)
		if len(wp) != len(gp) {
			t.Errorf("room %d has %d pathways, want %d", w.ID, len(gp), len(wp))
			continue
		}
		for _, p := range wp {
			loaded, ok := g.GetPathway(p.Direction)
			if !ok {
				t.Errorf("room %d lost pathway %s", w.ID, p.Direction)
				continue
			}
			if loaded != p {
				t.Errorf("room %d pathway %s = %+v, want %+v", w.ID, p.Direction, loaded, p)
			}
		}
	}

	p, _ := got.Room(2).GetPathway(direction.UpWest)
	if p.Target != cartography.TargetZoneEdge {
		t.Errorf("UpWest target = %v, want zone edge", p.Target)
	}
}

func TestSaveCatalogReplacesContents(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	if err := db.SaveCatalog(ctx, sampleCatalog(t)); err != nil {
		t.Fatal(err)
	}

	small := template.NewCatalog()
	if err := small.AddRoom(template.NewRoom(7, "Lone Hut", "moor", "")); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveCatalog(ctx, small); err != nil {
		t.Fatalf("second SaveCatalog: %v", err)
	}

	n, err := db.RoomCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("RoomCount = %d, want 1", n)
	}
}

func TestSaveRoomUpserts(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	c := sampleCatalog(t)
	if err := db.SaveCatalog(ctx, c); err != nil {
		t.Fatal(err)
	}

	r := c.Room(3)
	r.Name = "Fish Market (closed)"
	if err := db.SaveRoom(ctx, r); err != nil {
		t.Fatalf("SaveRoom: %v", err)
	}

	got, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Room(3).Name != "Fish Market (closed)" {
		t.Errorf("name = %q", got.Room(3).Name)
	}
	if _, ok := got.Room(3).GetPathway(direction.West); !ok {
		t.Error("SaveRoom dropped the room's pathway")
	}
}

func TestDeleteRoom(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	if err := db.SaveCatalog(ctx, sampleCatalog(t)); err != nil {
		t.Fatal(err)
	}

	if err := db.DeleteRoom(ctx, 3); err != nil {
		t.Fatalf("DeleteRoom: %v", err)
	}
	if err := db.DeleteRoom(ctx, 3); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("second DeleteRoom err = %v, want ErrRoomNotFound", err)
	}

	got, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Room(3) != nil {
		t.Error("room 3 still present")
	}
	// The inbound pathway survives and now leads nowhere.
	if _, ok := got.Room(2).GetPathway(direction.East); !ok {
		t.Error("inbound pathway was removed with the room")
	}
	if _, ok := got.Lookup(3); ok {
		t.Error("deleted room still resolves")
	}
}

func TestLoadedCatalogRenders(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	if err := db.SaveCatalog(ctx, sampleCatalog(t)); err != nil {
		t.Fatal(err)
	}
	c, err := db.LoadCatalog(ctx)
	if err != nil {
		t.Fatal(err)
	}

	carto := c.Cartographer()
	grid := carto.BuildRadiusMap(1, nil)
	if grid.Count() != 2 {
		t.Errorf("placed %d rooms, want 2", grid.Count())
	}
}
