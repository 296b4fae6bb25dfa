package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
	FileCompress   bool   `yaml:"file_compress"`
}

type document struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig logs INFO and above as text to stderr, leaving stdout for maps.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FilePath:       "logs/cartograph.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig reads the logging section of a YAML file over DefaultConfig and
// then applies CARTOGRAPH_LOG_* environment overrides. A missing file is not
// an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read logging config: %w", err)
		default:
			doc := document{Logging: cfg}
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return cfg, fmt.Errorf("parse logging config %s: %w", path, err)
			}
			cfg = doc.Logging
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("CARTOGRAPH_LOG_LEVEL"); v != "" {
		cfg.Level = v
	}
	if v := os.Getenv("CARTOGRAPH_LOG_FORMAT"); v != "" {
		cfg.ConsoleFormat = v
	}
	if v := os.Getenv("CARTOGRAPH_LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.FileEnabled = enabled
		}
	}
	if v := os.Getenv("CARTOGRAPH_LOG_FILE_PATH"); v != "" {
		cfg.FilePath = v
	}
}
