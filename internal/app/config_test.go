package app

import (
	"flag"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	require.Equal(t, 80, cfg.Cols())
	require.Equal(t, 60, cfg.Rows())
	require.Equal(t, 12, cfg.FramesPerTick())
	require.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, cfg.CellColor())
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"width not divisible", func(c *Config) { c.Width = 641 }, "multiples of cell size"},
		{"height not divisible", func(c *Config) { c.Height = 481 }, "multiples of cell size"},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }, "cell size"},
		{"negative width", func(c *Config) { c.Width = -640 }, "dimensions"},
		{"sim rate above frame rate", func(c *Config) { c.SimFPS = 500 }, "cannot exceed frame rate"},
		{"zero frame rate", func(c *Config) { c.FPS = 0 }, "frame rates"},
		{"unknown fill", func(c *Config) { c.Fill = "stripes" }, "unknown fill mode"},
		{"density above one", func(c *Config) { c.Density = 1.5 }, "density"},
		{"short color", func(c *Config) { c.Color = "#fff" }, "#RRGGBB"},
		{"non-hex color", func(c *Config) { c.Color = "#gggggg" }, "#RRGGBB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewConfig()
			tc.mutate(cfg)
			require.ErrorContains(t, cfg.Validate(), tc.want)
		})
	}
}

func TestValidateParsesColor(t *testing.T) {
	cfg := NewConfig()
	cfg.Color = "00FF7f"
	require.NoError(t, cfg.Validate())
	require.Equal(t, color.RGBA{G: 0xff, B: 0x7f, A: 0xff}, cfg.CellColor())
}

func TestBindOverridesDefaults(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-width", "320", "-cell", "4", "-simfps", "10", "-fill", "noise"}))

	require.NoError(t, cfg.Validate())
	require.Equal(t, 80, cfg.Cols())
	require.Equal(t, 120, cfg.Rows())
	require.Equal(t, 24, cfg.FramesPerTick())
	require.Equal(t, "noise", cfg.Fill)
}
