package app

import (
	"encoding/json"
	"flag"
	"os"

	"conway-life/internal/core"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	FPS      int     `json:"fps"`
	HUDWidth int     `json:"hud_width"`
	Seed     int64   `json:"seed"`
	Density  float64 `json:"density"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with the classic 50x50 board in a
// 600x600 window at ten frames per second.
func NewConfig() *Config {
	return &Config{Cols: 50, Rows: 50, Width: 600, Height: 600, FPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows")
	fs.IntVar(&c.Width, "width", c.Width, "grid surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "grid surface height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "simulation frames per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random start")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive at start (0 starts empty)")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON config file; flags override its values")
}

// LoadFile overlays the values of a JSON config file onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Validate reports the first setting the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Cols <= 0 || c.Rows <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	case c.Width < c.Cols || c.Height < c.Rows:
		return errors.Errorf("[Validate] surface %dx%d is smaller than one pixel per cell", c.Width, c.Height)
	case c.FPS <= 0:
		return errors.Errorf("[Validate] fps must be positive, got %d", c.FPS)
	case c.HUDWidth < 0:
		return errors.Errorf("[Validate] hud width must not be negative, got %d", c.HUDWidth)
	case c.Density < 0 || c.Density > 1:
		return errors.Errorf("[Validate] density must be within [0,1], got %v", c.Density)
	}
	return nil
}

// Layout returns the grid-to-pixel geometry described by c.
func (c *Config) Layout() core.Layout {
	return core.Layout{
		Grid:   core.Size{W: c.Cols, H: c.Rows},
		Screen: core.Size{W: c.Width, H: c.Height},
	}
}

// Parse binds a fresh Config to fs and parses args. When -config names a
// file its values are loaded first and the flags are parsed again so that
// explicit flags win.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Parse] invalid flags")
	}
	if cfg.ConfigPath != "" {
		if err := cfg.LoadFile(cfg.ConfigPath); err != nil {
			return nil, err
		}
		if err := fs.Parse(args); err != nil {
			return nil, errors.Wrap(err, "[Parse] invalid flags")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
