// Package config loads sheetdash settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up when no path is given.
const FileName = "sheetdash.toml"

// Config holds all tunable settings.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Ingest Ingest `toml:"ingest"`
	Output Output `toml:"output"`
}

// Canvas configures new items and resize limits, in pixels.
type Canvas struct {
	DefaultWidth  float64 `toml:"default_width"`
	DefaultHeight float64 `toml:"default_height"`
	MinWidth      float64 `toml:"min_width"`
	MinHeight     float64 `toml:"min_height"`
}

// Ingest configures header row selection.
type Ingest struct {
	// PreviewRows is the number of leading rows offered as header rows.
	PreviewRows int `toml:"preview_rows"`
	// PreviewColumns is the number of columns shown per preview row.
	PreviewColumns int `toml:"preview_columns"`
}

// Output configures CLI output encoding.
type Output struct {
	// Format is "json" or "yaml".
	Format string `toml:"format"`
	Pretty bool   `toml:"pretty"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: Canvas{
			DefaultWidth:  600,
			DefaultHeight: 400,
			MinWidth:      300,
			MinHeight:     200,
		},
		Ingest: Ingest{
			PreviewRows:    10,
			PreviewColumns: 10,
		},
		Output: Output{
			Format: "json",
		},
	}
}

// Load reads path over the defaults. A missing file at the default FileName is
// not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that sizes are positive and the output format is known.
func (c Config) Validate() error {
	switch {
	case c.Canvas.DefaultWidth <= 0 || c.Canvas.DefaultHeight <= 0:
		return errors.New("canvas default size must be positive")
	case c.Canvas.MinWidth <= 0 || c.Canvas.MinHeight <= 0:
		return errors.New("canvas minimum size must be positive")
	case c.Ingest.PreviewRows <= 0 || c.Ingest.PreviewColumns <= 0:
		return errors.New("ingest preview limits must be positive")
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (must be json or yaml)", c.Output.Format)
	}
	return nil
}
