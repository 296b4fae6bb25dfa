// Command cartograph draws ASCII maps of a room graph.
//
//	cartograph -world data/world.yaml -room 1 -radius 4 -levels
//	cartograph -db data/cartograph.db -zone harbor/docks -mode admin
//	cartograph -db data/cartograph.db -import data/world.yaml
//	cartograph -room 1 -metrics /var/lib/node_exporter/cartograph.prom
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/config"
	"github.com/lawnchairsociety/cartograph/internal/database"
	"github.com/lawnchairsociety/cartograph/internal/logger"
	"github.com/lawnchairsociety/cartograph/internal/metrics"
	"github.com/lawnchairsociety/cartograph/internal/template"
	"github.com/lawnchairsociety/cartograph/internal/world"
	"github.com/lawnchairsociety/cartograph/internal/worldfile"
)

var errUsage = errors.New("one of -room, -zone or -import is required")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "cartograph: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	loggingPath string
	worldPath   string
	dbPath      string
	importPath  string
	outputPath  string
	metricsPath string
	room        int64
	zone        string
	radius      int
	mode        string
	pathways    bool
	levels      bool
	live        bool
	markup      bool
	legend      bool
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("cartograph", flag.ContinueOnError)
	var o options
	fs.StringVar(&o.configPath, "config", "data/cartograph.yaml", "Path to cartograph config YAML file")
	fs.StringVar(&o.loggingPath, "logging", "data/logging.yaml", "Path to logging config YAML file")
	fs.StringVar(&o.worldPath, "world", "", "Path to world YAML file (overrides config)")
	fs.StringVar(&o.dbPath, "db", "", "Path to SQLite catalog (overrides config database section)")
	fs.StringVar(&o.importPath, "import", "", "Import this world YAML file into the database and exit")
	fs.StringVar(&o.outputPath, "output", "", "Output file (empty for stdout)")
	fs.StringVar(&o.metricsPath, "metrics", "", "Write Prometheus textfile metrics here")
	fs.Int64Var(&o.room, "room", 0, "Template room id to center the map on")
	fs.StringVar(&o.zone, "zone", "", "Map a whole region: zone or zone/locale")
	fs.IntVar(&o.radius, "radius", 0, "Cells shown on each side of the room (0-25)")
	fs.StringVar(&o.mode, "mode", "", "Render mode: admin or player")
	fs.BoolVar(&o.pathways, "pathways", false, "Draw pathways around each location")
	fs.BoolVar(&o.levels, "levels", false, "Also draw the levels above and below")
	fs.BoolVar(&o.live, "live", false, "Instantiate the catalog and map the live world")
	fs.BoolVar(&o.markup, "markup", false, "Emit markup instead of plain text")
	fs.BoolVar(&o.legend, "legend", false, "Print the glyph legend")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logConfig, err := logger.LoadConfig(o.loggingPath)
	if err != nil {
		return err
	}
	if err := logger.Initialize(logConfig); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	cfg, err := config.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	applyFlags(fs, &o, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if o.importPath != "" {
		return importWorld(o.importPath, cfg.Database)
	}
	if o.room == 0 && o.zone == "" {
		return errUsage
	}

	catalog, db, err := loadCatalog(o, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	var rec *metrics.Recorder
	if o.metricsPath != "" {
		rec = metrics.New()
	}

	mode, _ := cfg.Map.RenderMode()
	var out strings.Builder
	if cfg.World.Live {
		err = drawLive(&out, catalog, o, cfg.Map, mode, rec)
	} else {
		err = drawTemplate(&out, catalog, db, o, cfg.Map, mode, rec)
	}
	if err != nil {
		return err
	}
	if err := rec.WriteTextfile(o.metricsPath); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	if cfg.Map.Legend {
		out.WriteString("\n")
		out.WriteString(cartography.Legend())
	}

	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, []byte(out.String()), 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logger.Info("Map written", "path", o.outputPath)
		return nil
	}
	_, err = io.WriteString(stdout, out.String())
	return err
}

// applyFlags copies explicitly set flags over the loaded config.
func applyFlags(fs *flag.FlagSet, o *options, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "world":
			cfg.World.Path = o.worldPath
		case "db":
			cfg.Database = database.DefaultConfig(o.dbPath)
		case "live":
			cfg.World.Live = o.live
		case "radius":
			cfg.Map.Radius = o.radius
		case "mode":
			cfg.Map.Mode = o.mode
		case "pathways":
			cfg.Map.Pathways = o.pathways
		case "levels":
			cfg.Map.Levels = o.levels
		case "markup":
			cfg.Map.Markup = o.markup
		case "legend":
			cfg.Map.Legend = o.legend
		}
	})
}

func importWorld(path string, dbConfig database.Config) error {
	catalog, err := worldfile.Load(path)
	if err != nil {
		return err
	}
	db, err := database.OpenWithConfig(dbConfig)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.SaveCatalog(context.Background(), catalog); err != nil {
		return fmt.Errorf("import %s: %w", path, err)
	}
	logger.Info("Imported world", "path", path, "rooms", catalog.Len(), "zones", len(catalog.Zones()))
	return nil
}

// loadCatalog reads the world file unless -db was given or no world file is
// configured, in which case the configured database is used. The database
// handle is returned open so coordinates can be written back.
func loadCatalog(o options, cfg *config.Config) (*template.Catalog, *database.Database, error) {
	if o.dbPath == "" && cfg.World.Path != "" {
		catalog, err := worldfile.Load(cfg.World.Path)
		return catalog, nil, err
	}

	db, err := database.OpenWithConfig(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	catalog, err := db.LoadCatalog(context.Background())
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return catalog, db, nil
}

func drawTemplate(w io.Writer, catalog *template.Catalog, db *database.Database, o options, m config.MapConfig, mode cartography.Mode, rec *metrics.Recorder) error {
	carto := catalog.Cartographer()
	opts := cartography.Options[int64]{Mode: mode, IncludePathways: m.Pathways, Markup: m.Markup}
	v := view{keyspace: "template", rec: rec}

	if o.zone != "" {
		maps, err := drawRegion(w, carto, o.zone, catalog.RegionIDs(o.zone), opts, v)
		if err != nil {
			return err
		}
		if db == nil {
			return nil
		}
		for _, g := range maps {
			for _, id := range g.Keys() {
				if err := db.SaveRoom(context.Background(), catalog.Room(id)); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if catalog.Room(o.room) == nil {
		return fmt.Errorf("%w: %d", template.ErrUnknownRoom, o.room)
	}
	if mode == cartography.Player {
		opts.Current = &o.room
	}
	return drawAround(w, carto, o.room, m, opts, v)
}

func drawLive(w io.Writer, catalog *template.Catalog, o options, m config.MapConfig, mode cartography.Mode, rec *metrics.Recorder) error {
	live, birthmarks := world.Instantiate(catalog)
	carto := live.Cartographer()
	opts := cartography.Options[string]{Mode: mode, IncludePathways: m.Pathways, Markup: m.Markup}
	v := view{keyspace: "live", rec: rec}

	if o.zone != "" {
		_, err := drawRegion(w, carto, o.zone, live.RegionKeys(o.zone), opts, v)
		return err
	}

	origin, ok := birthmarks[o.room]
	if !ok {
		return fmt.Errorf("%w: %d", template.ErrUnknownRoom, o.room)
	}
	if mode == cartography.Player {
		opts.Current = &origin
	}
	return drawAround(w, carto, origin, m, opts, v)
}

// view labels the metrics of one draw.
type view struct {
	keyspace string
	rec      *metrics.Recorder
}

// observeWindow counts the cells of a radius window. Building the window
// costs a full walk, so it only happens when metrics are recorded.
func observeWindow[K comparable](v view, carto *cartography.Cartographer[K], origin K, radius, levels int) {
	if v.rec == nil {
		return
	}
	v.rec.ObserveBuild(v.keyspace, carto.RadiusWindow(origin, radius, levels).Count())
}

func drawAround[K comparable](w io.Writer, carto *cartography.Cartographer[K], origin K, m config.MapConfig, opts cartography.Options[K], v view) error {
	start := time.Now()
	if !m.Levels {
		here, err := carto.RenderPoint(origin, m.Radius, opts)
		if err != nil {
			return err
		}
		observeWindow(v, carto, origin, m.Radius, 0)
		v.rec.ObserveRender(opts.Mode.String(), opts.IncludePathways, time.Since(start))
		fmt.Fprintln(w, here)
		return nil
	}

	rm, err := carto.RenderRadius(origin, m.Radius, opts)
	if err != nil {
		return err
	}
	observeWindow(v, carto, origin, m.Radius, 1)
	v.rec.ObserveRender(opts.Mode.String(), opts.IncludePathways, time.Since(start))
	for _, level := range []struct{ name, text string }{
		{"Above", rm.Above},
		{"Here", rm.Here},
		{"Below", rm.Below},
	} {
		if level.text == "" {
			continue
		}
		fmt.Fprintf(w, "%s\n%s\n%s\n\n", level.name, strings.Repeat("-", 40), level.text)
	}
	return nil
}

// drawRegion renders every map of region, top level first, and records the
// placed coordinates on the nodes.
func drawRegion[K comparable](w io.Writer, carto *cartography.Cartographer[K], region string, keys []K, opts cartography.Options[K], v view) ([]*cartography.Grid[K], error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("region %q has no rooms", region)
	}

	maps, unplaced := carto.BuildRegionMaps(region, keys)
	v.rec.ObserveUnplaced(len(unplaced))
	for i, g := range maps {
		start := time.Now()
		v.rec.ObserveBuild(v.keyspace, g.Count())
		carto.AssignCoordinates(g)
		center, _ := cartography.FindCenter(g)
		x, y, z := g.Dims()
		fmt.Fprintf(w, "%s map %d of %d (%dx%dx%d, %d rooms, center %v)\n%s\n",
			region, i+1, len(maps), x, y, z, g.Count(), center, strings.Repeat("=", 40))

		for level := z - 1; level >= 0; level-- {
			plane, err := cartography.GetPlane(g, level)
			if err != nil {
				return nil, err
			}
			text := carto.Render(plane, opts)
			if text == "" {
				continue
			}
			fmt.Fprintf(w, "Level %d\n%s\n\n", level, text)
		}
		v.rec.ObserveRender(opts.Mode.String(), opts.IncludePathways, time.Since(start))
	}
	if len(unplaced) > 0 {
		logger.Warning("Some rooms could not be placed", "region", region, "count", len(unplaced))
	}
	return maps, nil
}
