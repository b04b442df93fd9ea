package app

import (
	"flag"
	"fmt"
	"image/color"
)

// Config represents the command-line parameters for the application.
// All validation happens up front in Validate; nothing downstream
// checks these again.
type Config struct {
	Width      int
	Height     int
	CellSize   int
	FPS        int
	SimFPS     int
	Color      string
	Seed       int64
	Fill       string
	Density    float64
	NoiseScale float64

	cellColor color.RGBA
}

// NewConfig returns a Config populated with the standard defaults:
// a 640x480 window of 8-pixel cells rendered at 240 FPS with the
// simulation ticking at 20 generations per second.
func NewConfig() *Config {
	return &Config{
		Width:      640,
		Height:     480,
		CellSize:   8,
		FPS:        240,
		SimFPS:     20,
		Color:      "#ffffff",
		Seed:       42,
		Fill:       "random",
		Density:    0.5,
		NoiseScale: 12,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell edge length in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "rendered frames per second")
	fs.IntVar(&c.SimFPS, "simfps", c.SimFPS, "simulation generations per second")
	fs.StringVar(&c.Color, "color", c.Color, "living cell color as #RRGGBB")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for procedural fills")
	fs.StringVar(&c.Fill, "fill", c.Fill, "initial fill when no pattern file is given (random or noise)")
	fs.Float64Var(&c.Density, "density", c.Density, "target live-cell density for the noise fill")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "feature size of the noise fill")
}

// Validate checks the configuration and resolves derived values. It
// must pass before any window or grid is created.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("window dimensions %dx%d must be multiples of cell size %d", c.Width, c.Height, c.CellSize)
	}
	if c.SimFPS <= 0 || c.FPS <= 0 {
		return fmt.Errorf("frame rates must be positive, got fps=%d simfps=%d", c.FPS, c.SimFPS)
	}
	if c.SimFPS > c.FPS {
		return fmt.Errorf("simulation rate %d cannot exceed frame rate %d", c.SimFPS, c.FPS)
	}
	switch c.Fill {
	case "random", "noise":
	default:
		return fmt.Errorf("unknown fill mode %q", c.Fill)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be within [0, 1], got %g", c.Density)
	}
	col, err := parseHexColor(c.Color)
	if err != nil {
		return err
	}
	c.cellColor = col
	return nil
}

// Cols returns the grid width in cells.
func (c *Config) Cols() int { return c.Width / c.CellSize }

// Rows returns the grid height in cells.
func (c *Config) Rows() int { return c.Height / c.CellSize }

// FramesPerTick returns how many rendered frames elapse per
// simulation step. Validate guarantees it is at least 1.
func (c *Config) FramesPerTick() int { return c.FPS / c.SimFPS }

// CellColor returns the parsed living-cell color. Only valid after
// Validate has succeeded.
func (c *Config) CellColor() color.RGBA { return c.cellColor }

func parseHexColor(s string) (color.RGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("cell color must be #RRGGBB, got %q", s)
	}
	var v uint32
	for i := 0; i < 6; i++ {
		v <<= 4
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9':
			v |= uint32(ch - '0')
		case ch >= 'a' && ch <= 'f':
			v |= uint32(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			v |= uint32(ch-'A') + 10
		default:
			return color.RGBA{}, fmt.Errorf("cell color must be #RRGGBB, got %q", s)
		}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
