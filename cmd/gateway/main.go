package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"training-reels/internal/adapters/eventbroker/nats"
	"training-reels/internal/adapters/handlers/http/chi"
	ingest2 "training-reels/internal/adapters/handlers/http/chi/v1/ingest"
	search2 "training-reels/internal/adapters/handlers/http/chi/v1/search"
	"training-reels/internal/adapters/repository/postgres"
	"training-reels/internal/adapters/restapi"
	"training-reels/internal/adapters/storage/badger"
	"training-reels/internal/adapters/storage/minio"
	"training-reels/internal/config"
	"training-reels/internal/core/port"
	"training-reels/internal/core/service/ingest"
	"training-reels/internal/core/service/processing"
	"training-reels/internal/core/service/search"
	"training-reels/internal/core/service/upload"

	"golang.org/x/sync/errgroup"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))

	if cfg.API.Token == "" {
		logger.Warn("API_TOKEN is empty, platform calls will be anonymous")
	}

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

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	recentStore, err := badger.Open(ctx, cfg.Search.StorePath, logger)
	if err != nil {
		logger.Error("failed to open recent searches store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := recentStore.Close(); err != nil {
			logger.Error("failed to close recent searches store", "error", err)
		}
	}()

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

	//platform api
	apiClient, err := restapi.NewClient(cfg.API, restapi.StaticToken(cfg.API.Token), logger)
	if err != nil {
		logger.Error("failed to init api client", "error", err)
		os.Exit(1)
	}

	//services
	uploadService := upload.NewUploadService(apiClient, cfg.Upload, logger)
	processingService := processing.NewProcessingService(apiClient, cfg.Poll, logger)
	searchService := search.NewSearchService(apiClient, search.NewRecentStore(recentStore, logger), logger)
	ingestService := ingest.NewIngestService(
		minioAdapter,
		postgres.NewSqlIngestRepository(db),
		uploadService,
		processingService,
		publisher,
		cfg.Upload,
		logger,
	)

	//http
	ingestHandler := ingest2.NewIngestHandlerV1(ingestService, logger)
	searchHandler := search2.NewSearchHandlerV1(searchService, logger)

	router := chi.NewRouter(logger, ingestHandler, searchHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	// init reconcile task
	g.Go(func() error {
		initReconcileTask(gctx, ingestService, cfg.Upload, logger)
		return nil
	})

	g.Go(func() error {
		//wait for context cancel
		<-gctx.Done()
		logger.Info("gracefully shutting down gateway")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server", "error", err)
		} else {
			logger.Info("server gracefully shutdown complete")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("gateway stopped", "error", err)
	}

	if err := ingestService.Close(); err != nil {
		logger.Error("failed to stop ingest tasks", "error", err)
	}
	logger.Info("gateway shutdown complete")
}

// initReconcileTask fails ledger records whose upload session outlived its TTL and follows
// again the processing records nobody updated for as long
func initReconcileTask(ctx context.Context, service port.IngestService, cfg config.UploadConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.ReconcileEvery)
	defer ticker.Stop()

	logger.Info("reconcile task initialized", "interval", cfg.ReconcileEvery, "session_ttl", cfg.SessionTTL)

	for {
		select {
		case <-ticker.C:
			before := time.Now().Add(-cfg.SessionTTL)
			n, err := service.ReconcileStale(ctx, before)
			if err != nil {
				logger.Error("failed to reconcile stale uploads", "error", err)
			} else {
				logger.Info("reconcile task completed", "failed_records", n)
			}
			resumed, err := service.ResumeProcessing(ctx, before)
			if err != nil {
				logger.Error("failed to resume processing follow ups", "error", err)
			} else if resumed > 0 {
				logger.Info("resumed processing follow ups", "records", resumed)
			}
		case <-ctx.Done():
			logger.Info("reconcile task stopped")
			return
		}
	}
}
