package dequeuer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/queue"
	"github.com/mlevchenko/tenderbatch/internal/worker"
)

// Queue is the consumer-side slice of the work queue.
type Queue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (*queue.Delivery, error)
	Ack(ctx context.Context, d *queue.Delivery) error
	Fail(ctx context.Context, d *queue.Delivery) error
	PromoteDelayed(ctx context.Context) (int, error)
	ReclaimProcessing(ctx context.Context) (int, error)
}

// Worker is the downstream contract jobs are driven to.
type Worker interface {
	ProcessFile(ctx context.Context, docID uuid.UUID) (*worker.ProcessResult, error)
	AggregateBatch(ctx context.Context, batchID uuid.UUID) (*worker.ProcessResult, error)
}

// Pool runs a fixed number of consumers over the work queue and drives each
// dequeued job to the external worker. Delivery is at-least-once; the worker
// keys its processing on the stable document identifier.
type Pool struct {
	q       Queue
	w       Worker
	logger  *slog.Logger
	size    int
	wait    time.Duration
	sweep   time.Duration
	timeout time.Duration
}

type Option func(*Pool)

// WithSize sets the number of concurrent consumers.
func WithSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.size = n
		}
	}
}

// WithDequeueWait sets how long a consumer blocks on an empty queue before
// re-checking for shutdown.
func WithDequeueWait(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.wait = d
		}
	}
}

// WithSweepInterval sets how often elapsed delayed jobs are promoted.
func WithSweepInterval(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.sweep = d
		}
	}
}

// WithJobTimeout bounds a single downstream call.
func WithJobTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(q Queue, w Worker, logger *slog.Logger, opts ...Option) *Pool {
	p := &Pool{
		q:       q,
		w:       w,
		logger:  logger,
		size:    3,
		wait:    5 * time.Second,
		sweep:   5 * time.Second,
		timeout: 5 * time.Minute,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run blocks until ctx is cancelled. On start it reclaims jobs stranded in
// the processing list by a previous crash, then runs the consumers and the
// delayed-promotion sweep.
func (p *Pool) Run(ctx context.Context) error {
	reclaimed, err := p.q.ReclaimProcessing(ctx)
	if err != nil {
		return fmt.Errorf("reclaim processing: %w", err)
	}
	if reclaimed > 0 {
		p.logger.Info("reclaimed stranded jobs", "count", reclaimed)
	}

	var wg sync.WaitGroup
	for i := 0; i < p.size; i++ {
		wg.Add(1)
		go func(consumerID int) {
			defer wg.Done()
			p.logger.Info("consumer started", "consumer_id", consumerID)
			p.consume(ctx, consumerID)
			p.logger.Info("consumer stopped", "consumer_id", consumerID)
		}(i + 1)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(p.sweep)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := p.q.PromoteDelayed(ctx)
				if err != nil {
					if ctx.Err() == nil {
						p.logger.Error("delayed-promotion sweep failed", "error", err)
					}
					continue
				}
				if n > 0 {
					p.logger.Info("promoted delayed jobs", "count", n)
				}
			}
		}
	}()

	wg.Wait()
	return nil
}

func (p *Pool) consume(ctx context.Context, consumerID int) {
	for {
		if ctx.Err() != nil {
			return
		}
		d, err := p.q.Dequeue(ctx, p.wait)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("dequeue failed", "consumer_id", consumerID, "error", err)
			continue
		}
		if d == nil {
			continue
		}
		p.handle(ctx, consumerID, d)
	}
}

func (p *Pool) handle(ctx context.Context, consumerID int, d *queue.Delivery) {
	jobCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	job := d.Job
	start := time.Now()
	err := p.dispatch(jobCtx, job)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		p.logger.Error("job failed", "consumer_id", consumerID, "job_id", job.ID,
			"type", job.Type, "attempt", job.Attempt, "elapsed_ms", elapsed, "error", err)
		if ferr := p.q.Fail(ctx, d); ferr != nil {
			p.logger.Error("failed to record job failure", "job_id", job.ID, "error", ferr)
		}
		return
	}
	p.logger.Info("job processed", "consumer_id", consumerID, "job_id", job.ID,
		"type", job.Type, "elapsed_ms", elapsed)
	if aerr := p.q.Ack(ctx, d); aerr != nil {
		p.logger.Error("failed to ack job", "job_id", job.ID, "error", aerr)
	}
}

func (p *Pool) dispatch(ctx context.Context, job *queue.Job) error {
	switch job.Type {
	case constants.JobTypeProcessFile:
		if job.Payload.FileID == nil {
			return fmt.Errorf("process_file job %s has no file_id", job.ID)
		}
		_, err := p.w.ProcessFile(ctx, *job.Payload.FileID)
		return err
	case constants.JobTypeAggregateBatch:
		_, err := p.w.AggregateBatch(ctx, job.Payload.BatchID)
		return err
	default:
		return fmt.Errorf("unknown job type %q", job.Type)
	}
}
