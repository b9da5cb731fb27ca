package queue

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
)

// WorkQueue is a durable FIFO with three auxiliary structures layered on
// Redis primitives. A job is visible in exactly one of {pending, processing,
// delayed, dead} at any time:
//
//	pending    list        LPUSH on enqueue, consumed from the tail
//	processing list        in-flight jobs, reclaimable after a consumer crash
//	delayed    sorted set  scored by the time the job becomes ready again
//	dead       list        jobs that exhausted max_attempts, kept for inspection
type WorkQueue struct {
	client      *Client
	logger      *slog.Logger
	ns          string
	maxAttempts int
	retryDelay  time.Duration
}

// pollInterval is how long Dequeue sleeps between checks of an empty queue.
const pollInterval = 100 * time.Millisecond

// Metrics is a point-in-time snapshot of the four structures. The counts are
// read one after another and are not transactionally consistent.
type Metrics struct {
	QueueLength     int64 `json:"queue_length"`
	ProcessingCount int64 `json:"processing_count"`
	DelayedCount    int64 `json:"delayed_count"`
	DeadCount       int64 `json:"dead_count"`
}

// Delivery is a dequeued job together with its wire form, which Ack and Fail
// need to remove it from the processing list.
type Delivery struct {
	Job *Job
	raw string
}

type Option func(*WorkQueue)

func WithMaxAttempts(n int) Option {
	return func(q *WorkQueue) {
		if n > 0 {
			q.maxAttempts = n
		}
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(q *WorkQueue) {
		if d > 0 {
			q.retryDelay = d
		}
	}
}

func NewWorkQueue(client *Client, namespace string, logger *slog.Logger, opts ...Option) *WorkQueue {
	q := &WorkQueue{
		client:      client,
		logger:      logger,
		ns:          namespace,
		maxAttempts: 3,
		retryDelay:  30 * time.Second,
	}
	for _, o := range opts {
		o(q)
	}
	return q
}

func (q *WorkQueue) pendingKey() string    { return q.ns + ":queue:pending" }
func (q *WorkQueue) processingKey() string { return q.ns + ":queue:processing" }
func (q *WorkQueue) delayedKey() string    { return q.ns + ":queue:delayed" }
func (q *WorkQueue) deadKey() string       { return q.ns + ":queue:dead" }

// Enqueue appends a job with a fresh identifier and zeroed attempt counter to
// the head of the FIFO. It fails only on transport unavailability.
func (q *WorkQueue) Enqueue(ctx context.Context, jobType constants.JobType, payload Payload) (*Job, error) {
	rdb, err := q.client.redis()
	if err != nil {
		return nil, err
	}
	job := &Job{
		ID:          uuid.New(),
		Type:        jobType,
		Payload:     payload,
		Attempt:     0,
		MaxAttempts: q.maxAttempts,
		RetryDelay:  q.retryDelay,
		EnqueuedAt:  time.Now().UTC(),
	}
	raw, err := marshalJob(job)
	if err != nil {
		return nil, err
	}
	if err := rdb.LPush(ctx, q.pendingKey(), raw).Err(); err != nil {
		q.logger.Error("enqueue failed", "job_id", job.ID, "type", jobType, "error", err)
		return nil, common.NewAppError("ENQUEUE_FAILED", "cannot push job onto queue", err)
	}
	q.logger.Info("job enqueued", "job_id", job.ID, "type", jobType, "batch_id", payload.BatchID)
	return job, nil
}

// Dequeue atomically moves the oldest pending job to the processing list and
// returns it. It polls up to timeout and returns (nil, nil) when the queue
// stays empty.
func (q *WorkQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Delivery, error) {
	rdb, err := q.client.redis()
	if err != nil {
		return nil, err
	}
	deadline := time.Now().Add(timeout)
	var raw string
	for {
		raw, err = rdb.LMove(ctx, q.pendingKey(), q.processingKey(), "RIGHT", "LEFT").Result()
		if err == nil {
			break
		}
		if err != redis.Nil {
			return nil, err
		}
		if !time.Now().Before(deadline) {
			return nil, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	job, err := unmarshalJob(raw)
	if err != nil {
		// Unparseable payloads are quarantined, not retried forever.
		q.logger.Error("dropping malformed job to dead letter", "error", err)
		pipe := rdb.TxPipeline()
		pipe.LRem(ctx, q.processingKey(), 1, raw)
		pipe.LPush(ctx, q.deadKey(), raw)
		if _, perr := pipe.Exec(ctx); perr != nil {
			return nil, perr
		}
		return nil, err
	}
	return &Delivery{Job: job, raw: raw}, nil
}

// Ack discards a processed job from the processing list.
func (q *WorkQueue) Ack(ctx context.Context, d *Delivery) error {
	rdb, err := q.client.redis()
	if err != nil {
		return err
	}
	if err := rdb.LRem(ctx, q.processingKey(), 1, d.raw).Err(); err != nil {
		q.logger.Error("ack failed", "job_id", d.Job.ID, "error", err)
		return err
	}
	return nil
}

// Fail moves a job out of the processing list: to the delayed set with an
// incremented attempt counter while attempts remain, to the dead letter once
// attempt reaches max_attempts.
func (q *WorkQueue) Fail(ctx context.Context, d *Delivery) error {
	rdb, err := q.client.redis()
	if err != nil {
		return err
	}
	next := *d.Job
	next.Attempt = d.Job.Attempt + 1
	raw, err := marshalJob(&next)
	if err != nil {
		return err
	}

	pipe := rdb.TxPipeline()
	pipe.LRem(ctx, q.processingKey(), 1, d.raw)
	if next.Attempt >= next.MaxAttempts {
		pipe.LPush(ctx, q.deadKey(), raw)
		q.logger.Warn("job dead-lettered", "job_id", next.ID, "type", next.Type, "attempt", next.Attempt)
	} else {
		readyAt := time.Now().UTC().Add(next.RetryDelay)
		pipe.ZAdd(ctx, q.delayedKey(), redis.Z{Score: float64(readyAt.UnixMilli()), Member: raw})
		q.logger.Info("job delayed for retry", "job_id", next.ID, "attempt", next.Attempt, "ready_at", readyAt)
	}
	_, err = pipe.Exec(ctx)
	if err != nil {
		q.logger.Error("fail transition failed", "job_id", next.ID, "error", err)
	}
	return err
}

// PromoteDelayed moves every delayed job whose retry delay has elapsed back
// to the pending list. Returns the number of promoted jobs.
func (q *WorkQueue) PromoteDelayed(ctx context.Context) (int, error) {
	rdb, err := q.client.redis()
	if err != nil {
		return 0, err
	}
	now := time.Now().UTC().UnixMilli()
	members, err := rdb.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now, 10),
	}).Result()
	if err != nil {
		return 0, err
	}
	promoted := 0
	for _, raw := range members {
		// ZRem arbitrates between concurrent sweepers: only the remover
		// re-queues the member.
		removed, err := rdb.ZRem(ctx, q.delayedKey(), raw).Result()
		if err != nil {
			return promoted, err
		}
		if removed == 0 {
			continue
		}
		if err := rdb.LPush(ctx, q.pendingKey(), raw).Err(); err != nil {
			return promoted, err
		}
		promoted++
	}
	return promoted, nil
}

// ReclaimProcessing drains the processing list back into pending. Run it at
// consumer start so jobs stranded by a crashed consumer become visible again;
// delivery is at-least-once and downstream processing is idempotent.
func (q *WorkQueue) ReclaimProcessing(ctx context.Context) (int, error) {
	rdb, err := q.client.redis()
	if err != nil {
		return 0, err
	}
	reclaimed := 0
	for {
		_, err := rdb.LMove(ctx, q.processingKey(), q.pendingKey(), "RIGHT", "LEFT").Result()
		if err == redis.Nil {
			return reclaimed, nil
		}
		if err != nil {
			return reclaimed, err
		}
		reclaimed++
	}
}

// Metrics reports a snapshot of the four structures.
func (q *WorkQueue) Metrics(ctx context.Context) (*Metrics, error) {
	rdb, err := q.client.redis()
	if err != nil {
		return nil, err
	}
	m := &Metrics{}
	if m.QueueLength, err = rdb.LLen(ctx, q.pendingKey()).Result(); err != nil {
		return nil, err
	}
	if m.ProcessingCount, err = rdb.LLen(ctx, q.processingKey()).Result(); err != nil {
		return nil, err
	}
	if m.DelayedCount, err = rdb.ZCard(ctx, q.delayedKey()).Result(); err != nil {
		return nil, err
	}
	if m.DeadCount, err = rdb.LLen(ctx, q.deadKey()).Result(); err != nil {
		return nil, err
	}
	return m, nil
}
