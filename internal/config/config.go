// Package config loads and watches the TOML configuration file that
// supplies theme colors, font metrics, and logging settings.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gridwing/gridwing/internal/ui/core"
)

// Config is the full application configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Font    FontConfig    `toml:"font"`
	Theme   ThemeConfig   `toml:"theme"`
	UI      UIConfig      `toml:"ui"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// FontConfig carries the glyph cell geometry in device pixels.
type FontConfig struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
	Ascent     float64 `toml:"ascent"`
}

// ThemeConfig carries the default colors as hex strings.
type ThemeConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Special    string `toml:"special"`
}

// UIConfig carries grid model switches.
type UIConfig struct {
	// Multigrid enables per-window grids.
	Multigrid bool `toml:"multigrid"`

	// Mouse enables pointer handling at startup.
	Mouse bool `toml:"mouse"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Font: FontConfig{
			CellWidth:  8,
			CellHeight: 16,
			Ascent:     12,
		},
		Theme: ThemeConfig{
			Foreground: "#d4d4d4",
			Background: "#1e1e1e",
			Special:    "#ff5555",
		},
		UI: UIConfig{
			Multigrid: true,
			Mouse:     true,
		},
	}
}

// Load reads configuration from path, layered over the defaults.
// A missing file is not an error; the defaults are returned.
// The GRIDWING_LOG_LEVEL environment variable overrides the file.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through to env overrides.
	case err != nil:
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if level := os.Getenv("GRIDWING_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}

	return cfg, nil
}

// Metrics converts the font section to core metrics.
func (c Config) Metrics() core.FontMetrics {
	return core.FontMetrics{
		CellWidth:  c.Font.CellWidth,
		CellHeight: c.Font.CellHeight,
		Ascent:     c.Font.Ascent,
	}
}

// DefaultColors parses the theme section. Unparseable entries fall
// back to the built-in defaults.
func (c Config) DefaultColors() (fg, bg, special core.Color) {
	def := Default().Theme
	fg = parseColorOr(c.Theme.Foreground, def.Foreground)
	bg = parseColorOr(c.Theme.Background, def.Background)
	special = parseColorOr(c.Theme.Special, def.Special)
	return fg, bg, special
}

func parseColorOr(hex, fallback string) core.Color {
	if c, err := core.ColorFromHex(hex); err == nil {
		return c
	}
	c, _ := core.ColorFromHex(fallback)
	return c
}
