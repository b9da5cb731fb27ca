package dequeuer

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/queue"
	"github.com/mlevchenko/tenderbatch/internal/worker"
)

// fakeWorker records downstream calls and fails on demand.
type fakeWorker struct {
	mu         sync.Mutex
	processed  []uuid.UUID
	aggregated []uuid.UUID
	err        error
}

func (w *fakeWorker) ProcessFile(_ context.Context, docID uuid.UUID) (*worker.ProcessResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return nil, w.err
	}
	w.processed = append(w.processed, docID)
	return &worker.ProcessResult{Status: "success"}, nil
}

func (w *fakeWorker) AggregateBatch(_ context.Context, batchID uuid.UUID) (*worker.ProcessResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return nil, w.err
	}
	w.aggregated = append(w.aggregated, batchID)
	return &worker.ProcessResult{Status: "success"}, nil
}

func (w *fakeWorker) processedIDs() []uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]uuid.UUID, len(w.processed))
	copy(out, w.processed)
	return out
}

func newTestQueue(t *testing.T, opts ...queue.Option) *queue.WorkQueue {
	t.Helper()
	mr := miniredis.RunT(t)
	client := queue.NewClient(queue.ClientConfig{Addr: mr.Addr(), DialTimeout: time.Second}, slog.Default())
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return queue.NewWorkQueue(client, "test", slog.Default(), opts...)
}

func runPool(t *testing.T, p *Pool) context.CancelFunc {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return cancel
}

func TestPoolProcessesAndAcks(t *testing.T) {
	q := newTestQueue(t)
	w := &fakeWorker{}
	ctx := context.Background()

	fileID := uuid.New()
	batchID := uuid.New()
	_, err := q.Enqueue(ctx, constants.JobTypeProcessFile, queue.Payload{FileID: &fileID, BatchID: batchID})
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, constants.JobTypeAggregateBatch, queue.Payload{BatchID: batchID})
	require.NoError(t, err)

	runPool(t, NewPool(q, w, slog.Default(), WithSize(2), WithDequeueWait(50*time.Millisecond)))

	require.Eventually(t, func() bool {
		m, err := q.Metrics(ctx)
		return err == nil && m.QueueLength == 0 && m.ProcessingCount == 0
	}, 2*time.Second, 20*time.Millisecond, "jobs drain and get acked")

	require.Eventually(t, func() bool {
		w.mu.Lock()
		defer w.mu.Unlock()
		return len(w.processed) == 1 && len(w.aggregated) == 1
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, []uuid.UUID{fileID}, w.processedIDs())
}

func TestPoolRetriesThenDeadLetters(t *testing.T) {
	q := newTestQueue(t, queue.WithMaxAttempts(2), queue.WithRetryDelay(20*time.Millisecond))
	w := &fakeWorker{err: errors.New("parse exploded")}
	ctx := context.Background()

	batchID := uuid.New()
	fileID := uuid.New()
	_, err := q.Enqueue(ctx, constants.JobTypeProcessFile, queue.Payload{FileID: &fileID, BatchID: batchID})
	require.NoError(t, err)

	runPool(t, NewPool(q, w, slog.Default(),
		WithSize(1),
		WithDequeueWait(50*time.Millisecond),
		WithSweepInterval(30*time.Millisecond)))

	// Attempt 1 fails and parks the job; the sweeper promotes it; attempt 2
	// exhausts the budget and the job lands in the dead letter.
	require.Eventually(t, func() bool {
		m, err := q.Metrics(ctx)
		return err == nil && m.DeadCount == 1 &&
			m.QueueLength == 0 && m.ProcessingCount == 0 && m.DelayedCount == 0
	}, 3*time.Second, 20*time.Millisecond)
}

func TestPoolReclaimsStrandedJobsOnStart(t *testing.T) {
	q := newTestQueue(t)
	w := &fakeWorker{}
	ctx := context.Background()

	fileID := uuid.New()
	_, err := q.Enqueue(ctx, constants.JobTypeProcessFile, queue.Payload{FileID: &fileID, BatchID: uuid.New()})
	require.NoError(t, err)

	// Simulate a crashed consumer: the job sits in processing, unacked.
	d, err := q.Dequeue(ctx, 100*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, d)

	runPool(t, NewPool(q, w, slog.Default(), WithSize(1), WithDequeueWait(50*time.Millisecond)))

	require.Eventually(t, func() bool {
		return len(w.processedIDs()) == 1
	}, 2*time.Second, 20*time.Millisecond, "stranded job is reclaimed and processed")
	require.Equal(t, []uuid.UUID{fileID}, w.processedIDs())
}

func TestPoolDeadLettersJobWithoutFileID(t *testing.T) {
	q := newTestQueue(t, queue.WithMaxAttempts(1))
	w := &fakeWorker{}
	ctx := context.Background()

	// process_file with no document identifier can never succeed.
	_, err := q.Enqueue(ctx, constants.JobTypeProcessFile, queue.Payload{BatchID: uuid.New()})
	require.NoError(t, err)

	runPool(t, NewPool(q, w, slog.Default(), WithSize(1), WithDequeueWait(50*time.Millisecond)))

	require.Eventually(t, func() bool {
		m, err := q.Metrics(ctx)
		return err == nil && m.DeadCount == 1
	}, 2*time.Second, 20*time.Millisecond)
	require.Empty(t, w.processedIDs())
}

func TestPoolStopsOnContextCancel(t *testing.T) {
	q := newTestQueue(t)
	w := &fakeWorker{}

	p := NewPool(q, w, slog.Default(), WithSize(2), WithDequeueWait(20*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not stop after cancellation")
	}
}
