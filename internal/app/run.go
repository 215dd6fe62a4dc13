package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/particle-rings/internal/asset"
	"github.com/iburimskiy/particle-rings/internal/config"
	"github.com/iburimskiy/particle-rings/internal/game"
	"github.com/iburimskiy/particle-rings/internal/layout"
	"github.com/iburimskiy/particle-rings/internal/logging"
	"github.com/iburimskiy/particle-rings/internal/palette"
	"github.com/iburimskiy/particle-rings/internal/sim"
	"github.com/iburimskiy/particle-rings/internal/sound"
)

// resolveImage returns the configured image path or asks the user for one.
func resolveImage(cfg config.Config) (string, error) {
	if cfg.Image != "" {
		return cfg.Image, nil
	}
	if !cfg.Dialog {
		return "", errors.New("no image given: pass --image or set image in the config")
	}
	return asset.Pick()
}

// prepare decodes the image and builds the palette concurrently.
func prepare(ctx context.Context, cfg config.Config, path string) (*asset.Image, palette.Palette, error) {
	var (
		img *asset.Image
		pal palette.Palette
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		img, err = asset.Load(path)
		return err
	})
	g.Go(func() error {
		var err error
		pal, err = palette.Viridis(cfg.Palette.Shades)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return img, pal, nil
}

func run(ctx context.Context, cfg config.Config) error {
	closeLog, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	path, err := resolveImage(cfg)
	if err != nil {
		return err
	}
	img, pal, err := prepare(ctx, cfg, path)
	if err != nil {
		return err
	}
	log.Info().Str("image", path).Int("width", img.Width).Int("height", img.Height).Msg("image loaded")

	l, err := layout.Generate(img, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), cfg.Layout)
	if err != nil {
		return err
	}
	log.Info().Int("rings", len(l.Rings)).Int("particles", l.Count()).Msg("layout generated")

	sys := sim.New(l.Seeds, cfg.Physics, sim.NewRand(cfg.Physics.Seed))

	var player *sound.Player
	if cfg.Audio.Enabled {
		player, err = sound.Start(cfg.Audio.SampleRate, cfg.Audio.Volume)
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer player.Close()
		}
	}

	g, err := game.New(game.Options{
		Config:    cfg,
		System:    sys,
		Reference: img,
		Palette:   pal,
		Audio:     player,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return game.Run(g)
}
