package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/internal/archive"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/extractor"
	"github.com/mlevchenko/tenderbatch/internal/orchestrator"
	"github.com/mlevchenko/tenderbatch/internal/queue"
	"github.com/mlevchenko/tenderbatch/internal/repository"
	"github.com/mlevchenko/tenderbatch/internal/storage"
)

// processbatch runs one batch through extraction and dispatch, then prints
// the enqueue counts. Useful for replaying a batch by hand.
func main() {
	var (
		batchArg    = flag.String("batch", "", "batch id to process (required)")
		concurrency = flag.Int("concurrency", 0, "dispatch concurrency (0 = configured default)")
		showMetrics = flag.Bool("metrics", false, "print queue metrics after dispatch")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *batchArg == "" {
		fmt.Fprintln(os.Stderr, "Error: -batch is required")
		os.Exit(1)
	}
	batchID, err := uuid.Parse(*batchArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid batch id: %v\n", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening DB: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	qc := queue.NewClient(queue.ClientConfig{
		Addr:        cfg.Queue.Addr,
		Password:    cfg.Queue.Password,
		DB:          cfg.Queue.DB,
		DialTimeout: cfg.Queue.DialTimeout,
	}, logger)
	if err := qc.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: connecting to queue: %v\n", err)
		os.Exit(1)
	}
	defer qc.Close()

	var store storage.Storage
	if cfg.Storage.Backend == "memory" {
		store = storage.NewMemory()
	} else {
		if store, err = storage.NewLocal(cfg.Storage.BasePath, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: initializing storage: %v\n", err)
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

	res, err := orch.ProcessBatch(ctx, batchID, *concurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: processing batch: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("batch %s: enqueued=%d failed=%d\n", res.BatchID, res.Enqueued, res.Failed)

	if *showMetrics {
		m, err := wq.Metrics(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading queue metrics: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("queue: pending=%d processing=%d delayed=%d dead=%d\n",
			m.QueueLength, m.ProcessingCount, m.DelayedCount, m.DeadCount)
	}
}
