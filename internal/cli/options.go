package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-rings/internal/config"
)

// Options are command-line overrides applied on top of the config file.
type Options struct {
	configFile string
	image      string
	rings      int
	width      int
	height     int
	seed       uint64
	clampScale bool
	logLevel   string
	logFile    string
}

// DefineFlags registers the config overrides shared by every command.
func DefineFlags(cmd *cobra.Command, o *Options) {
	cmd.Flags().StringVarP(&o.configFile, "config", "c", "sketch.yaml", "path to config file")
	cmd.Flags().StringVarP(&o.image, "image", "i", "", "source image path")
	cmd.Flags().IntVarP(&o.rings, "rings", "r", config.RingCount, "number of concentric rings")
	cmd.Flags().IntVar(&o.width, "width", config.CanvasWidth, "canvas width")
	cmd.Flags().IntVar(&o.height, "height", config.CanvasHeight, "canvas height")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "random seed for particle constants, 0 uses the clock")
	cmd.Flags().BoolVar(&o.clampScale, "clamp-scale", false, "clamp particle scale to its configured range")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "info", "log level: trace, debug, info, warn, error, none")
	cmd.Flags().StringVar(&o.logFile, "log-file", "", "optional log file")
}

// LoadConfig reads the config file, applies changed flags and validates.
func LoadConfig(cmd *cobra.Command, o *Options) (config.Config, error) {
	cfg, _, err := config.LoadOptional(o.configFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("image") {
		cfg.Image = o.image
	}
	if flags.Changed("rings") {
		cfg.Layout.Rings = o.rings
	}
	if flags.Changed("width") {
		cfg.Canvas.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Canvas.Height = o.height
	}
	if flags.Changed("seed") {
		cfg.Physics.Seed = o.seed
	}
	if flags.Changed("clamp-scale") {
		cfg.Physics.ClampScale = o.clampScale
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = o.logFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
