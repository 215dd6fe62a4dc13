package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	CanvasWidth  = 1080
	CanvasHeight = 1080

	WindowWidth  = 720
	WindowHeight = 720

	// Layout parameters
	RingCount   = 30
	RingGap     = 1
	DotGap      = 1
	DotRadius   = 11
	StartRadius = 0.1
	MinRadius   = 1
	MaxRadius   = 12

	// Physics parameters
	ScaleDistance = 200
	MinScale      = 1
	MaxScale      = 5

	// Rendering
	ViewScale     = 0.68
	TPS           = 60
	PaletteShades = 20

	// CursorSentinel is far enough from any canvas point to disable repulsion.
	CursorSentinel = 9999

	SampleRate      = 44100
	SmoothingFactor = 0.6
)

// Range is a closed interval that per-particle constants are sampled from.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) valid() bool { return r.Min <= r.Max }

type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Layout struct {
	Rings       int     `yaml:"rings"`
	RingGap     float64 `yaml:"ring_gap"`
	DotGap      float64 `yaml:"dot_gap"`
	DotRadius   float64 `yaml:"dot_radius"`
	StartRadius float64 `yaml:"start_radius"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
}

type Physics struct {
	MinDistance   Range   `yaml:"min_distance"`
	PushFactor    Range   `yaml:"push_factor"`
	PullFactor    Range   `yaml:"pull_factor"`
	DampingFactor Range   `yaml:"damping_factor"`
	ScaleDistance float64 `yaml:"scale_distance"`
	MinScale      float64 `yaml:"min_scale"`
	MaxScale      float64 `yaml:"max_scale"`
	ClampScale    bool    `yaml:"clamp_scale"`
	Seed          uint64  `yaml:"seed"`
}

type Render struct {
	ViewScale        float64 `yaml:"view_scale"`
	ReferenceOpacity float64 `yaml:"reference_opacity"`
	Background       string  `yaml:"background"`
	Antialias        bool    `yaml:"antialias"`
	TPS              int     `yaml:"tps"`
}

type Palette struct {
	Shades int `yaml:"shades"`
}

type Audio struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config is the full set of settings for one run of the sketch.
type Config struct {
	Canvas  Size    `yaml:"canvas"`
	Window  Window  `yaml:"window"`
	Image   string  `yaml:"image"`
	Dialog  bool    `yaml:"dialog"`
	Layout  Layout  `yaml:"layout"`
	Physics Physics `yaml:"physics"`
	Render  Render  `yaml:"render"`
	Palette Palette `yaml:"palette"`
	Audio   Audio   `yaml:"audio"`
	Log     Log     `yaml:"log"`
}

// Default returns the settings the sketch was designed around.
func Default() Config {
	return Config{
		Canvas: Size{Width: CanvasWidth, Height: CanvasHeight},
		Window: Window{Width: WindowWidth, Height: WindowHeight, Title: "Particle Rings"},
		Dialog: true,
		Layout: Layout{
			Rings:       RingCount,
			RingGap:     RingGap,
			DotGap:      DotGap,
			DotRadius:   DotRadius,
			StartRadius: StartRadius,
			MinRadius:   MinRadius,
			MaxRadius:   MaxRadius,
		},
		Physics: Physics{
			MinDistance:   Range{Min: 100, Max: 200},
			PushFactor:    Range{Min: 0.02, Max: 0.02},
			PullFactor:    Range{Min: 0.002, Max: 0.006},
			DampingFactor: Range{Min: 0.90, Max: 0.95},
			ScaleDistance: ScaleDistance,
			MinScale:      MinScale,
			MaxScale:      MaxScale,
		},
		Render: Render{
			ViewScale:        ViewScale,
			ReferenceOpacity: 1,
			Background:       "#000000",
			Antialias:        true,
			TPS:              TPS,
		},
		Palette: Palette{Shades: PaletteShades},
		Audio:   Audio{SampleRate: SampleRate, Volume: -2},
		Log:     Log{Level: "info"},
	}
}

// Load reads a YAML file on top of Default. A missing file is reported via
// os.ErrNotExist so callers can fall back to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOptional behaves like Load but returns defaults when path is empty or
// the file does not exist.
func LoadOptional(path string) (Config, bool, error) {
	if path == "" {
		return Default(), false, nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	return cfg, err == nil, err
}

var logLevels = map[string]struct{}{
	"trace": {}, "debug": {}, "info": {}, "warn": {}, "error": {}, "none": {},
}

// Validate checks that the configuration can produce a sketch.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Layout.Rings < 1 {
		return fmt.Errorf("layout.rings must be at least 1, got %d", c.Layout.Rings)
	}
	if c.Layout.DotRadius <= 0 {
		return fmt.Errorf("layout.dot_radius must be positive, got %.2f", c.Layout.DotRadius)
	}
	if c.Layout.StartRadius <= 0 {
		return fmt.Errorf("layout.start_radius must be positive, got %.2f", c.Layout.StartRadius)
	}
	if 2*c.Layout.DotRadius+c.Layout.DotGap <= 0 {
		return fmt.Errorf("layout.dot_gap too small: %.2f", c.Layout.DotGap)
	}
	if c.Layout.MinRadius <= 0 || c.Layout.MinRadius > c.Layout.MaxRadius {
		return fmt.Errorf("layout radius range invalid: min(%.2f) max(%.2f)", c.Layout.MinRadius, c.Layout.MaxRadius)
	}

	ranges := []struct {
		name string
		r    Range
	}{
		{"min_distance", c.Physics.MinDistance},
		{"push_factor", c.Physics.PushFactor},
		{"pull_factor", c.Physics.PullFactor},
		{"damping_factor", c.Physics.DampingFactor},
	}
	for _, rr := range ranges {
		if !rr.r.valid() {
			return fmt.Errorf("physics.%s range invalid: min(%.4f) > max(%.4f)", rr.name, rr.r.Min, rr.r.Max)
		}
	}
	if c.Physics.MinDistance.Min < 0 {
		return fmt.Errorf("physics.min_distance must not be negative")
	}
	if c.Physics.PullFactor.Min <= 0 {
		return fmt.Errorf("physics.pull_factor must be positive, got min(%.4f)", c.Physics.PullFactor.Min)
	}
	if c.Physics.PushFactor.Min < 0 {
		return fmt.Errorf("physics.push_factor must not be negative, got min(%.4f)", c.Physics.PushFactor.Min)
	}
	if c.Physics.DampingFactor.Min <= 0 || c.Physics.DampingFactor.Max >= 1 {
		return fmt.Errorf("physics.damping_factor must lie in (0,1), got [%.3f,%.3f]",
			c.Physics.DampingFactor.Min, c.Physics.DampingFactor.Max)
	}
	if c.Physics.ScaleDistance <= 0 {
		return fmt.Errorf("physics.scale_distance must be positive")
	}
	if c.Physics.MinScale > c.Physics.MaxScale {
		return fmt.Errorf("physics scale range invalid: min(%.2f) > max(%.2f)", c.Physics.MinScale, c.Physics.MaxScale)
	}

	if c.Render.ViewScale <= 0 {
		return fmt.Errorf("render.view_scale must be positive")
	}
	if c.Render.ReferenceOpacity < 0 || c.Render.ReferenceOpacity > 1 {
		return fmt.Errorf("render.reference_opacity must lie in [0,1], got %.2f", c.Render.ReferenceOpacity)
	}
	if c.Render.TPS <= 0 {
		return fmt.Errorf("render.tps must be positive")
	}
	if c.Palette.Shades < 2 {
		return fmt.Errorf("palette.shades must be at least 2, got %d", c.Palette.Shades)
	}
	if c.Audio.Enabled && c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be positive")
	}
	if _, ok := logLevels[strings.ToLower(c.Log.Level)]; !ok {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
