package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/lawnchairsociety/cartograph/internal/cartography"
	"github.com/lawnchairsociety/cartograph/internal/database"
	"gopkg.in/yaml.v3"
)

// Config holds cartograph-wide settings.
type Config struct {
	World    WorldConfig     `yaml:"world"`
	Map      MapConfig       `yaml:"map"`
	Database database.Config `yaml:"database"`
}

// WorldConfig says where template rooms come from.
type WorldConfig struct {
	// Path is a YAML world file. Ignored when the catalog is loaded from the database.
	Path string `yaml:"path"`

	// Live instantiates the catalog into a live world before mapping.
	Live bool `yaml:"live"`
}

// MapConfig holds the default rendering settings. Command-line flags win.
type MapConfig struct {
	// Radius is how many cells to show on each side of the origin (0-25).
	Radius int `yaml:"radius"`

	// Levels draws the planes above and below the origin too.
	Levels bool `yaml:"levels"`

	// Mode is "admin" or "player".
	Mode string `yaml:"mode"`

	// Pathways draws each location as a 3×3 block with its exits.
	Pathways bool `yaml:"pathways"`

	// Markup emits anchors and spans instead of plain text.
	Markup bool `yaml:"markup"`

	// Legend prints the glyph legend after the map.
	Legend bool `yaml:"legend"`
}

// DefaultConfig returns a Config that renders a 5-cell admin radius from a
// local SQLite catalog.
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Path: "data/world.yaml",
		},
		Map: MapConfig{
			Radius:   5,
			Mode:     cartography.Admin.String(),
			Pathways: true,
			Legend:   true,
		},
		Database: database.DefaultConfig("data/cartograph.db"),
	}
}

// LoadConfig reads a YAML file over DefaultConfig. A missing file yields the
// defaults; a file that parses but fails Validate is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that YAML cannot constrain.
func (c *Config) Validate() error {
	if _, err := c.Map.RenderMode(); err != nil {
		return err
	}
	if c.Map.Radius < 0 || c.Map.Radius > cartography.MapCenter {
		return fmt.Errorf("map radius %d outside 0-%d", c.Map.Radius, cartography.MapCenter)
	}
	switch database.DialectType(c.Database.Driver) {
	case database.DialectSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("database.sqlite_path is required for the sqlite driver")
		}
	case database.DialectPostgres:
		if c.Database.Postgres.Database == "" {
			return errors.New("database.postgres.database is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	return nil
}

// RenderMode parses Mode.
func (m MapConfig) RenderMode() (cartography.Mode, error) {
	return cartography.ParseMode(m.Mode)
}
