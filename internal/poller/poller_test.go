package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
	"github.com/mlevchenko/tenderbatch/internal/orchestrator"
	"github.com/mlevchenko/tenderbatch/internal/repository/repotest"
)

type fakeFinalizer struct {
	mu      sync.Mutex
	results map[uuid.UUID]error
	batches *repotest.BatchRepo
	calls   []uuid.UUID
}

func (f *fakeFinalizer) Finalize(ctx context.Context, batchID uuid.UUID) (constants.BatchStatus, error) {
	f.mu.Lock()
	f.calls = append(f.calls, batchID)
	err := f.results[batchID]
	f.mu.Unlock()
	if err != nil {
		return "", err
	}
	if uerr := f.batches.Finalize(ctx, batchID, constants.BatchStatusCompleted, nil); uerr != nil {
		return "", uerr
	}
	return constants.BatchStatusCompleted, nil
}

func (f *fakeFinalizer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func seedProcessing(batches *repotest.BatchRepo) *entity.Batch {
	id := uuid.New()
	b := &entity.Batch{ID: id, Status: constants.BatchStatusProcessing, RunID: &id}
	batches.Add(b)
	return b
}

func TestSweepFinalizesProcessingBatches(t *testing.T) {
	batches := repotest.NewBatchRepo()
	b1 := seedProcessing(batches)
	b2 := seedProcessing(batches)
	batches.Add(&entity.Batch{ID: uuid.New(), Status: constants.BatchStatusCompleted})

	fin := &fakeFinalizer{batches: batches, results: map[uuid.UUID]error{}}
	p := New(batches, fin, time.Second, slog.Default())
	require.NoError(t, p.Sweep(context.Background()))

	require.Equal(t, 2, fin.callCount())
	for _, id := range []uuid.UUID{b1.ID, b2.ID} {
		got, err := batches.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, constants.BatchStatusCompleted, got.Status)
	}
}

func TestSweepSkipsInFlightBatches(t *testing.T) {
	batches := repotest.NewBatchRepo()
	inFlight := seedProcessing(batches)
	ready := seedProcessing(batches)

	fin := &fakeFinalizer{batches: batches, results: map[uuid.UUID]error{
		inFlight.ID: common.NewAppError("BATCH_IN_FLIGHT", "files in flight", common.ErrConflict),
	}}
	p := New(batches, fin, time.Second, slog.Default())
	require.NoError(t, p.Sweep(context.Background()))

	got, err := batches.GetByID(context.Background(), inFlight.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusProcessing, got.Status)

	got, err = batches.GetByID(context.Background(), ready.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusCompleted, got.Status)
}

func TestSweepToleratesFinalizedRace(t *testing.T) {
	batches := repotest.NewBatchRepo()
	raced := seedProcessing(batches)
	fin := &fakeFinalizer{batches: batches, results: map[uuid.UUID]error{
		raced.ID: orchestrator.ErrBatchFinalized,
	}}
	p := New(batches, fin, time.Second, slog.Default())
	require.NoError(t, p.Sweep(context.Background()))
	require.Equal(t, 1, fin.callCount())
}

func TestSweepContinuesPastFinalizeErrors(t *testing.T) {
	batches := repotest.NewBatchRepo()
	broken := seedProcessing(batches)
	ok := seedProcessing(batches)

	fin := &fakeFinalizer{batches: batches, results: map[uuid.UUID]error{
		broken.ID: errors.New("storage hiccup"),
	}}
	p := New(batches, fin, time.Second, slog.Default())
	require.NoError(t, p.Sweep(context.Background()))

	got, err := batches.GetByID(context.Background(), ok.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusCompleted, got.Status)
}

func TestRunSweepsUntilCancelled(t *testing.T) {
	batches := repotest.NewBatchRepo()
	seedProcessing(batches)

	fin := &fakeFinalizer{batches: batches, results: map[uuid.UUID]error{}}
	p := New(batches, fin, 20*time.Millisecond, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	require.Eventually(t, func() bool { return fin.callCount() >= 1 }, time.Second, 10*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}
