package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/archive"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/dequeuer"
	"github.com/mlevchenko/tenderbatch/internal/extractor"
	"github.com/mlevchenko/tenderbatch/internal/orchestrator"
	"github.com/mlevchenko/tenderbatch/internal/poller"
	"github.com/mlevchenko/tenderbatch/internal/queue"
	"github.com/mlevchenko/tenderbatch/internal/repository"
	"github.com/mlevchenko/tenderbatch/internal/storage"
	"github.com/mlevchenko/tenderbatch/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("opening database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	qc := queue.NewClient(queue.ClientConfig{
		Addr:        cfg.Queue.Addr,
		Password:    cfg.Queue.Password,
		DB:          cfg.Queue.DB,
		DialTimeout: cfg.Queue.DialTimeout,
	}, logger)
	if err := qc.Connect(ctx); err != nil {
		logger.Error("connecting to queue", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := qc.Close(); err != nil {
			logger.Error("closing queue client", "error", err)
		}
	}()

	var store storage.Storage
	switch cfg.Storage.Backend {
	case "memory":
		store = storage.NewMemory()
	default:
		store, err = storage.NewLocal(cfg.Storage.BasePath, logger)
		if err != nil {
			logger.Error("initializing storage", "error", err)
			os.Exit(1)
		}
	}

	batches := repository.NewBatchRepository(entc, logger)
	files := repository.NewFileExtractionRepository(entc, logger)
	wq := queue.NewWorkQueue(qc, cfg.Queue.Namespace, logger,
		queue.WithMaxAttempts(cfg.Dispatch.MaxAttempts),
		queue.WithRetryDelay(cfg.Dispatch.RetryDelay),
	)
	ex := extractor.New(batches, files, store, archive.NewZipReader(), extractor.Config{
		WorkDir:      cfg.Extraction.WorkDir,
		ExtractedDir: cfg.Extraction.ExtractedDir,
		MaxDepth:     cfg.Extraction.MaxDepth,
		Extensions:   cfg.Extraction.Extensions,
	}, logger)
	orch := orchestrator.New(batches, files, ex, wq, orchestrator.Config{
		Concurrency: cfg.Dispatch.Concurrency,
		MaxAttempts: cfg.Dispatch.MaxAttempts,
	}, logger)

	wc := worker.NewClient(cfg.Worker.BaseURL, cfg.Worker.Timeout, logger)
	if err := wc.Health(ctx); err != nil {
		logger.Warn("extraction worker not ready at startup", "error", err)
	}

	consumers := dequeuer.NewPool(wq, wc, logger,
		dequeuer.WithSize(cfg.Dispatch.Concurrency),
		dequeuer.WithJobTimeout(cfg.Worker.Timeout),
	)
	statusPoller := poller.New(batches, orch, cfg.Poller.Interval, logger)

	go statusPoller.Run(ctx)

	// Pick up uploaded batches and drive them through extraction + dispatch.
	go func() {
		ticker := time.NewTicker(cfg.Poller.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				queued, err := batches.ListByStatus(ctx, constants.BatchStatusQueued)
				if err != nil {
					if ctx.Err() == nil {
						logger.Error("listing queued batches", "error", err)
					}
					continue
				}
				for _, b := range queued {
					if _, err := orch.ProcessBatch(ctx, b.ID, 0); err != nil && ctx.Err() == nil {
						logger.Error("processing batch", "batch_id", b.ID, "error", err)
					}
				}
			}
		}
	}()

	logger.Info("batchd started",
		"storage", cfg.Storage.Backend,
		"concurrency", cfg.Dispatch.Concurrency,
		"max_attempts", cfg.Dispatch.MaxAttempts,
	)
	if err := consumers.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("consumer pool stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("batchd stopped")
}
