package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/particle-rings/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Root().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("particle-rings failed")
		stop()
		os.Exit(1)
	}
}
