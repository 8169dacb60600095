package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/adapters/storage/badger"
	"training-reels/internal/cli"
	"training-reels/internal/config"
	"training-reels/internal/core/service/auth"
	"training-reels/internal/core/service/processing"
	"training-reels/internal/core/service/search"
	"training-reels/internal/core/service/upload"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "reelctl:", err)
		return 2
	}

	// library logs stay quiet unless debugging
	level := max(cfg.Log.SlogLevel(), slog.LevelWarn)
	if cfg.Log.SlogLevel() == slog.LevelDebug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	storePath := cfg.Search.StorePath
	if storePath == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			storePath = filepath.Join(dir, "reelctl")
		}
	}
	store, err := badger.Open(ctx, storePath, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reelctl: could not open local store:", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close local store", "error", err)
		}
	}()

	session := auth.NewSession(store, logger)
	session.Restore(ctx)

	client, err := restapi.NewClient(cfg.API, session, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "reelctl:", err)
		return 2
	}
	if cfg.API.Token != "" {
		client.SetTokenProvider(restapi.StaticToken(cfg.API.Token))
	}

	app := cli.NewApp(cli.Services{
		Auth:       auth.NewAuthService(client, session, logger),
		Uploads:    upload.NewUploadService(client, cfg.Upload, logger),
		Processing: processing.NewProcessingService(client, cfg.Poll, logger),
		Search:     search.NewSearchService(client, search.NewRecentStore(store, logger), logger),
	}, os.Stdin, os.Stdout, logger)

	err = app.Run(ctx, os.Args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintln(os.Stderr, "reelctl:", err)
		return 2
	default:
		fmt.Fprintln(os.Stderr, "reelctl:", err)
		return 1
	}
}
