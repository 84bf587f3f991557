package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/bloodstream/bloodstream-go/internal/buildinfo"
	"github.com/bloodstream/bloodstream-go/internal/cli"
	"github.com/bloodstream/bloodstream-go/internal/config"
	"github.com/bloodstream/bloodstream-go/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	log := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "starting client", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
