package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	"training-reels/internal/adapters/eventbroker/nats"
	"training-reels/internal/adapters/repository/postgres"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/adapters/storage/minio"
	"training-reels/internal/config"
	"training-reels/internal/core/service/ingest"
	"training-reels/internal/core/service/processing"
	"training-reels/internal/core/service/upload"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	// Initialize database
	db, err := postgres.Open(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close NATS publisher", "error", err)
		}
	}()

	apiClient, err := restapi.NewClient(cfg.API, restapi.StaticToken(cfg.API.Token), logger)
	if err != nil {
		logger.Error("failed to init api client", "error", err)
		os.Exit(1)
	}

	// Initialize services
	uploadService := upload.NewUploadService(apiClient, cfg.Upload, logger)
	processingService := processing.NewProcessingService(apiClient, cfg.Poll, logger)
	ingestService := ingest.NewIngestService(
		minioAdapter,
		postgres.NewSqlIngestRepository(db),
		uploadService,
		processingService,
		publisher,
		cfg.Upload,
		logger,
	)

	// Pick up the processing jobs a previous run stopped following
	if n, err := ingestService.ResumeProcessing(ctx, time.Now()); err != nil {
		logger.Error("failed to resume processing follow ups", "error", err)
	} else if n > 0 {
		logger.Info("resumed processing follow ups", "records", n)
	}

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, ingestService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		_ = natsConsumer.Close()
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down ingest daemon")

	// Stop taking new events before cancelling the transfers in flight
	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}
	if err := ingestService.Close(); err != nil {
		logger.Error("failed to stop ingest tasks", "error", err)
	}

	logger.Info("ingest daemon shutdown complete")
}
