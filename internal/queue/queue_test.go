package queue

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
)

func newTestQueue(t *testing.T, opts ...Option) (*WorkQueue, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewClient(ClientConfig{Addr: mr.Addr(), DialTimeout: time.Second}, slog.Default())
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return NewWorkQueue(client, "test", slog.Default(), opts...), mr
}

func TestConnectSurfacesDialError(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	client := NewClient(ClientConfig{Addr: addr, DialTimeout: 100 * time.Millisecond}, slog.Default())
	err := client.Connect(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrUnavailable)

	// The underlying dial failure stays inspectable, not just logged.
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "QUEUE_UNAVAILABLE", appErr.Code)
	require.NotNil(t, appErr.Cause)
	require.NotEqual(t, common.ErrUnavailable.Error(), appErr.Cause.Error())
}

func TestEnqueueAssignsFreshJob(t *testing.T) {
	q, _ := newTestQueue(t, WithMaxAttempts(5), WithRetryDelay(time.Minute))
	ctx := context.Background()

	batchID := uuid.New()
	fileID := uuid.New()
	job, err := q.Enqueue(ctx, constants.JobTypeProcessFile, Payload{FileID: &fileID, BatchID: batchID})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, job.ID)
	require.NotEqual(t, fileID, job.ID, "job identifier must be distinct from the file identifier")
	require.Equal(t, 0, job.Attempt)
	require.Equal(t, 5, job.MaxAttempts)
	require.Equal(t, time.Minute, job.RetryDelay)
	require.False(t, job.EnqueuedAt.IsZero())

	m, err := q.Metrics(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), m.QueueLength)
	require.Zero(t, m.ProcessingCount)
	require.Zero(t, m.DelayedCount)
	require.Zero(t, m.DeadCount)
}

func TestDequeueMovesJobToProcessing(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, constants.JobTypeAggregateBatch, Payload{BatchID: uuid.New()})
	require.NoError(t, err)

	d, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, constants.JobTypeAggregateBatch, d.Job.Type)

	m, err := q.Metrics(ctx)
	require.NoError(t, err)
	require.Zero(t, m.QueueLength)
	require.Equal(t, int64(1), m.ProcessingCount)
}

func TestDequeueFIFOOrder(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	first, err := q.Enqueue(ctx, constants.JobTypeAggregateBatch, Payload{BatchID: uuid.New()})
	require.NoError(t, err)
	second, err := q.Enqueue(ctx, constants.JobTypeAggregateBatch, Payload{BatchID: uuid.New()})
	require.NoError(t, err)

	d1, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	d2, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, first.ID, d1.Job.ID)
	require.Equal(t, second.ID, d2.Job.ID)
}

func TestAckDiscardsJob(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, constants.JobTypeAggregateBatch, Payload{BatchID: uuid.New()})
	require.NoError(t, err)
	d, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, q.Ack(ctx, d))

	m, err := q.Metrics(ctx)
	require.NoError(t, err)
	require.Zero(t, m.QueueLength)
	require.Zero(t, m.ProcessingCount)
	require.Zero(t, m.DelayedCount)
	require.Zero(t, m.DeadCount)
}

func TestFailDelaysJobUntilAttemptsExhausted(t *testing.T) {
	q, _ := newTestQueue(t, WithMaxAttempts(2), WithRetryDelay(50*time.Millisecond))
	ctx := context.Background()

	_, err := q.Enqueue(ctx, constants.JobTypeAggregateBatch, Payload{BatchID: uuid.New()})
	require.NoError(t, err)

	// First failure: attempt 1 of 2, job parks in the delayed set.
	d, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, q.Fail(ctx, d))

	m, err := q.Metrics(ctx)
	require.NoError(t, err)
	require.Zero(t, m.ProcessingCount)
	require.Equal(t, int64(1), m.DelayedCount)
	require.Zero(t, m.DeadCount)

	// Not ready yet: the retry delay has not elapsed.
	n, err := q.PromoteDelayed(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	time.Sleep(60 * time.Millisecond)
	n, err = q.PromoteDelayed(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Second failure: attempt 2 of 2, job is dead-lettered.
	d, err = q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, 1, d.Job.Attempt)
	require.NoError(t, q.Fail(ctx, d))

	m, err = q.Metrics(ctx)
	require.NoError(t, err)
	require.Zero(t, m.QueueLength)
	require.Zero(t, m.ProcessingCount)
	require.Zero(t, m.DelayedCount)
	require.Equal(t, int64(1), m.DeadCount)
}

func TestReclaimProcessing(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := q.Enqueue(ctx, constants.JobTypeAggregateBatch, Payload{BatchID: uuid.New()})
		require.NoError(t, err)
	}
	// Simulate a consumer crash: dequeue without ever acking.
	for i := 0; i < 3; i++ {
		_, err := q.Dequeue(ctx, 100*time.Millisecond)
		require.NoError(t, err)
	}

	n, err := q.ReclaimProcessing(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	m, err := q.Metrics(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), m.QueueLength)
	require.Zero(t, m.ProcessingCount)
}

func TestJobRoundTrip(t *testing.T) {
	fileID := uuid.New()
	in := &Job{
		ID:          uuid.New(),
		Type:        constants.JobTypeProcessFile,
		Payload:     Payload{FileID: &fileID, BatchID: uuid.New()},
		Attempt:     2,
		MaxAttempts: 3,
		RetryDelay:  30 * time.Second,
		EnqueuedAt:  time.Now().UTC().Truncate(time.Millisecond),
	}
	raw, err := marshalJob(in)
	require.NoError(t, err)
	out, err := unmarshalJob(raw)
	require.NoError(t, err)
	require.Equal(t, in, out)
}
