package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/orchestrator"
	"github.com/mlevchenko/tenderbatch/internal/repository"
)

// Finalizer is the rollup operation the poller invokes once a batch's files
// are all terminal.
type Finalizer interface {
	Finalize(ctx context.Context, batchID uuid.UUID) (constants.BatchStatus, error)
}

// Poller periodically scans batches stuck in "processing" and finalizes the
// ones whose files have all reached a terminal outcome. It never writes batch
// status itself; the orchestrator owns that.
type Poller struct {
	batches   repository.BatchRepository
	finalizer Finalizer
	logger    *slog.Logger
	interval  time.Duration
}

func New(batches repository.BatchRepository, finalizer Finalizer, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Poller{
		batches:   batches,
		finalizer: finalizer,
		logger:    logger,
		interval:  interval,
	}
}

// Run blocks until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Sweep(ctx); err != nil && ctx.Err() == nil {
				p.logger.Error("poll sweep failed", "error", err)
			}
		}
	}
}

// Sweep runs one rollup pass.
func (p *Poller) Sweep(ctx context.Context) error {
	batches, err := p.batches.ListByStatus(ctx, constants.BatchStatusProcessing)
	if err != nil {
		return err
	}
	for _, b := range batches {
		status, err := p.finalizer.Finalize(ctx, b.ID)
		if err != nil {
			// Files still in flight or a concurrent finalize; both resolve on
			// a later sweep.
			if errors.Is(err, common.ErrConflict) || errors.Is(err, orchestrator.ErrBatchFinalized) {
				continue
			}
			p.logger.Error("finalize failed", "batch_id", b.ID, "error", err)
			continue
		}
		p.logger.Info("batch finalized", "batch_id", b.ID, "status", status)
	}
	return nil
}
