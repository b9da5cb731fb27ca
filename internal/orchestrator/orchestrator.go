package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/extractor"
	"github.com/mlevchenko/tenderbatch/internal/queue"
	"github.com/mlevchenko/tenderbatch/internal/repository"
)

// ErrBatchFinalized is returned when a terminal batch would be mutated.
var ErrBatchFinalized = errors.New("batch is already finalized")

// NoFilesMessage is recorded when a batch has zero actionable files.
const NoFilesMessage = "No files to process"

// Enqueuer is the slice of the work queue the orchestrator needs.
type Enqueuer interface {
	Enqueue(ctx context.Context, jobType constants.JobType, payload queue.Payload) (*queue.Job, error)
}

// ArchiveExtractor is the extraction contract the orchestrator drives.
type ArchiveExtractor interface {
	Extract(ctx context.Context, batchID uuid.UUID) (*extractor.Result, error)
}

// Config holds the dispatch knobs.
type Config struct {
	// Concurrency is the default dispatch pool size.
	Concurrency int
	// MaxAttempts bounds per-file retries; it also parameterizes the
	// eligibility query.
	MaxAttempts int
}

// Result reports a ProcessBatch call: counts are explicit even under partial
// failure.
type Result struct {
	BatchID  uuid.UUID `json:"batch_id"`
	Enqueued int       `json:"enqueued"`
	Failed   int       `json:"failed"`
}

// Orchestrator drives a batch from upload through extraction and dispatch.
// It is the only component that transitions batch-level status.
type Orchestrator struct {
	batches   repository.BatchRepository
	files     repository.FileExtractionRepository
	extractor ArchiveExtractor
	q         Enqueuer
	logger    *slog.Logger
	cfg       Config
}

func New(
	batches repository.BatchRepository,
	files repository.FileExtractionRepository,
	ex ArchiveExtractor,
	q Enqueuer,
	cfg Config,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 3
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Orchestrator{
		batches:   batches,
		files:     files,
		extractor: ex,
		q:         q,
		logger:    logger,
		cfg:       cfg,
	}
}

// ProcessBatch runs extraction if the batch has not been extracted yet, then
// dispatches one process_file job per eligible file with a bounded pool of
// concurrent dispatchers. It does not wait for downstream processing.
//
// Extraction errors propagate verbatim. A single enqueue failure is counted
// and logged, never fatal to the remaining dispatches.
func (o *Orchestrator) ProcessBatch(ctx context.Context, batchID uuid.UUID, concurrency int) (*Result, error) {
	if concurrency <= 0 {
		concurrency = o.cfg.Concurrency
	}

	batch, err := o.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	// Terminal batches are immutable; RetryFailed is the only legal reset.
	if batch.Status.IsTerminal() {
		return nil, ErrBatchFinalized
	}

	// "queued" with no run assigned means the archive has not been walked.
	if batch.Status == constants.BatchStatusQueued && batch.RunID == nil {
		if _, err := o.extractor.Extract(ctx, batchID); err != nil {
			return nil, err
		}
		if batch, err = o.batches.GetByID(ctx, batchID); err != nil {
			return nil, err
		}
	}

	if err := o.batches.UpdateStatus(ctx, batchID, constants.BatchStatusProcessing, nil); err != nil {
		return nil, err
	}

	runID := batch.Run()
	eligible, err := o.files.ListEligible(ctx, runID, o.cfg.MaxAttempts)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		msg := NoFilesMessage
		if uerr := o.batches.UpdateStatus(ctx, batchID, constants.BatchStatusFailed, &msg); uerr != nil {
			o.logger.Error("failed to record empty batch", "batch_id", batchID, "error", uerr)
		}
		o.logger.Warn("batch has no actionable files", "batch_id", batchID, "run_id", runID)
		return &Result{BatchID: batchID}, nil
	}

	o.logger.Info("dispatching batch", "batch_id", batchID, "run_id", runID,
		"eligible", len(eligible), "concurrency", concurrency)

	// Pool of dispatchers over a shared cursor; the file list is immutable
	// for the duration of the call.
	var (
		cursor   atomic.Int64
		enqueued atomic.Int64
		failed   atomic.Int64
		wg       sync.WaitGroup
	)
	if concurrency > len(eligible) {
		concurrency = len(eligible)
	}
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(dispatcherID int) {
			defer wg.Done()
			for {
				idx := int(cursor.Add(1)) - 1
				if idx >= len(eligible) {
					return
				}
				f := eligible[idx]
				fileID := f.ID
				_, err := o.q.Enqueue(ctx, constants.JobTypeProcessFile, queue.Payload{
					FileID:  &fileID,
					BatchID: batchID,
				})
				if err != nil {
					failed.Add(1)
					o.logger.Error("dispatch failed", "batch_id", batchID,
						"file_id", f.ID, "dispatcher", dispatcherID, "error", err)
					continue
				}
				enqueued.Add(1)
				if uerr := o.files.UpdateStatus(ctx, f.ID, constants.FileStatusProcessing); uerr != nil {
					o.logger.Error("failed to mark file processing", "file_id", f.ID, "error", uerr)
				}
			}
		}(i + 1)
	}
	wg.Wait()

	res := &Result{
		BatchID:  batchID,
		Enqueued: int(enqueued.Load()),
		Failed:   int(failed.Load()),
	}
	o.logger.Info("batch dispatched", "batch_id", batchID,
		"enqueued", res.Enqueued, "failed", res.Failed)
	return res, nil
}

// Finalize rolls aggregate file status up into a terminal batch status:
// completed when every file succeeded, failed when none did,
// completed_with_errors otherwise. Finalizing an already-terminal batch
// returns ErrBatchFinalized.
func (o *Orchestrator) Finalize(ctx context.Context, batchID uuid.UUID) (constants.BatchStatus, error) {
	batch, err := o.batches.GetByID(ctx, batchID)
	if err != nil {
		return "", err
	}
	if batch.Status.IsTerminal() {
		return "", ErrBatchFinalized
	}

	counts, err := o.files.CountByStatus(ctx, batch.Run())
	if err != nil {
		return "", err
	}
	pending := counts[constants.FileStatusPending] + counts[constants.FileStatusProcessing]
	if pending > 0 {
		return "", common.NewAppError("BATCH_IN_FLIGHT",
			"batch "+batchID.String()+" still has files in flight", common.ErrConflict)
	}
	succeeded := counts[constants.FileStatusSuccess]
	failed := counts[constants.FileStatusFailed]

	status := constants.BatchStatusCompleted
	var msg *string
	switch {
	case succeeded == 0:
		status = constants.BatchStatusFailed
		m := "All files failed"
		msg = &m
	case failed > 0:
		status = constants.BatchStatusCompletedWithErrors
	}

	if err := o.batches.Finalize(ctx, batchID, status, msg); err != nil {
		if errors.Is(err, common.ErrConflict) {
			return "", ErrBatchFinalized
		}
		return "", err
	}
	return status, nil
}

// RetryFailed resets this batch's failed files to pending and the batch to
// processing. It is the only legal mutation of a terminal batch.
func (o *Orchestrator) RetryFailed(ctx context.Context, batchID uuid.UUID) (int, error) {
	batch, err := o.batches.GetByID(ctx, batchID)
	if err != nil {
		return 0, err
	}
	n, err := o.files.ResetFailed(ctx, batch.Run())
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	if err := o.batches.UpdateStatus(ctx, batchID, constants.BatchStatusProcessing, nil); err != nil {
		return n, err
	}
	o.logger.Info("failed files reset for retry", "batch_id", batchID, "count", n)
	return n, nil
}
