package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
	"github.com/mlevchenko/tenderbatch/internal/extractor"
	"github.com/mlevchenko/tenderbatch/internal/queue"
	"github.com/mlevchenko/tenderbatch/internal/repository/repotest"
)

// fakeEnqueuer records enqueued jobs and can fail selected file identifiers.
type fakeEnqueuer struct {
	mu       sync.Mutex
	jobs     []queue.Payload
	failFor  map[uuid.UUID]bool
	maxSeen  int
	inFlight int
}

func newFakeEnqueuer() *fakeEnqueuer {
	return &fakeEnqueuer{failFor: make(map[uuid.UUID]bool)}
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, jobType constants.JobType, payload queue.Payload) (*queue.Job, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if payload.FileID != nil {
		f.mu.Lock()
		shouldFail := f.failFor[*payload.FileID]
		f.mu.Unlock()
		if shouldFail {
			return nil, errors.New("transport unavailable")
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs = append(f.jobs, payload)
	return &queue.Job{ID: uuid.New(), Type: jobType, Payload: payload}, nil
}

func (f *fakeEnqueuer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jobs)
}

// fakeExtractor satisfies ArchiveExtractor without touching archives.
type fakeExtractor struct {
	fn    func(ctx context.Context, batchID uuid.UUID) (*extractor.Result, error)
	calls int
}

func (f *fakeExtractor) Extract(ctx context.Context, batchID uuid.UUID) (*extractor.Result, error) {
	f.calls++
	if f.fn != nil {
		return f.fn(ctx, batchID)
	}
	return &extractor.Result{BatchID: batchID}, nil
}

func seedBatch(batches *repotest.BatchRepo, files *repotest.FileRepo, n int) *entity.Batch {
	id := uuid.New()
	runID := id
	b := &entity.Batch{
		ID:         id,
		Status:     constants.BatchStatusQueued,
		RunID:      &runID,
		TotalFiles: n,
		ArchiveKey: "uploads/" + id.String() + ".zip",
	}
	batches.Add(b)
	for i := 0; i < n; i++ {
		files.Add(&entity.FileExtraction{
			ID:       uuid.New(),
			RunID:    runID,
			Filename: fmt.Sprintf("doc-%02d.pdf", i),
			FilePath: fmt.Sprintf("batches/%s/extracted/doc-%02d.pdf", id, i),
			FileType: "pdf",
			Status:   constants.FileStatusPending,
		})
	}
	return b
}

func newOrchestrator(batches *repotest.BatchRepo, files *repotest.FileRepo, ex ArchiveExtractor, q Enqueuer) *Orchestrator {
	return New(batches, files, ex, q, Config{Concurrency: 3, MaxAttempts: 3}, slog.Default())
}

func TestProcessBatchEnqueuesAllFiles(t *testing.T) {
	for _, concurrency := range []int{1, 3, 10} {
		t.Run(fmt.Sprintf("concurrency_%d", concurrency), func(t *testing.T) {
			batches := repotest.NewBatchRepo()
			files := repotest.NewFileRepo()
			q := newFakeEnqueuer()
			b := seedBatch(batches, files, 7)

			orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
			res, err := orch.ProcessBatch(context.Background(), b.ID, concurrency)
			require.NoError(t, err)
			require.Equal(t, 7, res.Enqueued)
			require.Zero(t, res.Failed)
			require.Equal(t, 7, q.count())

			got, err := batches.GetByID(context.Background(), b.ID)
			require.NoError(t, err)
			require.Equal(t, constants.BatchStatusProcessing, got.Status)

			require.LessOrEqual(t, q.maxSeen, concurrency,
				"no more than `concurrency` dispatches in flight")
		})
	}
}

func TestProcessBatchCountsDispatchFailures(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b := seedBatch(batches, files, 5)

	// Force one dispatch to fail; the remaining four must still go out.
	victim := files.All()[0]
	q.failFor[victim.ID] = true

	orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
	res, err := orch.ProcessBatch(context.Background(), b.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 4, res.Enqueued)
	require.Equal(t, 1, res.Failed)
	require.Equal(t, 4, q.count())
}

func TestProcessBatchMarksFilesProcessing(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b := seedBatch(batches, files, 3)

	orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
	_, err := orch.ProcessBatch(context.Background(), b.ID, 2)
	require.NoError(t, err)

	for _, f := range files.All() {
		require.Equal(t, constants.FileStatusProcessing, f.Status)
	}
}

func TestProcessBatchScenario(t *testing.T) {
	// Batch B1 with 3 pending files, concurrency 2: exactly 3 jobs, no
	// failures, batch ends in "processing".
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b := seedBatch(batches, files, 3)

	orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
	res, err := orch.ProcessBatch(context.Background(), b.ID, 2)
	require.NoError(t, err)
	require.Equal(t, &Result{BatchID: b.ID, Enqueued: 3, Failed: 0}, res)

	got, err := batches.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusProcessing, got.Status)
}

func TestProcessBatchRunsExtractionWhenNotExtracted(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()

	// Batch fresh from upload: no run assigned yet.
	b, err := batches.Create(context.Background(), "uploads/b.zip")
	require.NoError(t, err)

	fx := &fakeExtractor{fn: func(ctx context.Context, batchID uuid.UUID) (*extractor.Result, error) {
		runID := batchID
		require.NoError(t, batches.MarkExtracted(ctx, batchID, runID, 2))
		for i := 0; i < 2; i++ {
			files.Add(&entity.FileExtraction{
				ID:     uuid.New(),
				RunID:  runID,
				Status: constants.FileStatusPending,
			})
		}
		return &extractor.Result{BatchID: batchID, TotalFiles: 2}, nil
	}}

	orch := newOrchestrator(batches, files, fx, q)
	res, err := orch.ProcessBatch(context.Background(), b.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 1, fx.calls)
	require.Equal(t, 2, res.Enqueued)
}

func TestProcessBatchSkipsExtractionWhenRunAssigned(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b := seedBatch(batches, files, 1)

	fx := &fakeExtractor{}
	orch := newOrchestrator(batches, files, fx, q)
	_, err := orch.ProcessBatch(context.Background(), b.ID, 1)
	require.NoError(t, err)
	require.Zero(t, fx.calls)
}

func TestProcessBatchPropagatesExtractionError(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b, err := batches.Create(context.Background(), "uploads/b.zip")
	require.NoError(t, err)

	boom := errors.New("archive unreadable")
	fx := &fakeExtractor{fn: func(context.Context, uuid.UUID) (*extractor.Result, error) {
		return nil, boom
	}}

	orch := newOrchestrator(batches, files, fx, q)
	_, err = orch.ProcessBatch(context.Background(), b.ID, 1)
	require.ErrorIs(t, err, boom)
	require.Zero(t, q.count())
}

func TestProcessBatchRejectsTerminalBatch(t *testing.T) {
	for _, terminal := range []constants.BatchStatus{
		constants.BatchStatusCompleted,
		constants.BatchStatusCompletedWithErrors,
		constants.BatchStatusFailed,
	} {
		t.Run(string(terminal), func(t *testing.T) {
			batches := repotest.NewBatchRepo()
			files := repotest.NewFileRepo()
			q := newFakeEnqueuer()
			b := seedBatch(batches, files, 0)
			files.Add(&entity.FileExtraction{ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusSuccess})
			require.NoError(t, batches.UpdateStatus(context.Background(), b.ID, terminal, nil))

			orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
			_, err := orch.ProcessBatch(context.Background(), b.ID, 1)
			require.ErrorIs(t, err, ErrBatchFinalized)
			require.Zero(t, q.count())

			got, err := batches.GetByID(context.Background(), b.ID)
			require.NoError(t, err)
			require.Equal(t, terminal, got.Status, "terminal status must survive a replayed dispatch")
		})
	}
}

func TestProcessBatchUnknownBatch(t *testing.T) {
	orch := newOrchestrator(repotest.NewBatchRepo(), repotest.NewFileRepo(), &fakeExtractor{}, newFakeEnqueuer())
	_, err := orch.ProcessBatch(context.Background(), uuid.New(), 1)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestProcessBatchNoEligibleFilesFailsBatch(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b := seedBatch(batches, files, 0)

	orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
	res, err := orch.ProcessBatch(context.Background(), b.ID, 3)
	require.NoError(t, err)
	require.Zero(t, res.Enqueued)
	require.Zero(t, q.count())

	got, err := batches.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	require.Equal(t, NoFilesMessage, *got.ErrorMessage)
}

func TestEligibilityRespectsRetryBudget(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	q := newFakeEnqueuer()
	b := seedBatch(batches, files, 0)

	// retry_count 2 of 3 is still eligible; 3 of 3 is not.
	eligible := &entity.FileExtraction{
		ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusFailed, RetryCount: 2,
	}
	exhausted := &entity.FileExtraction{
		ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusFailed, RetryCount: 3,
	}
	files.Add(eligible)
	files.Add(exhausted)

	orch := newOrchestrator(batches, files, &fakeExtractor{}, q)
	res, err := orch.ProcessBatch(context.Background(), b.ID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, res.Enqueued)
	require.Len(t, q.jobs, 1)
	require.Equal(t, eligible.ID, *q.jobs[0].FileID)
}

func TestFinalizeRollsUpFileOutcomes(t *testing.T) {
	cases := []struct {
		name     string
		statuses []constants.FileStatus
		want     constants.BatchStatus
	}{
		{"all_success", []constants.FileStatus{constants.FileStatusSuccess, constants.FileStatusSuccess}, constants.BatchStatusCompleted},
		{"mixed", []constants.FileStatus{constants.FileStatusSuccess, constants.FileStatusFailed}, constants.BatchStatusCompletedWithErrors},
		{"all_failed", []constants.FileStatus{constants.FileStatusFailed, constants.FileStatusFailed}, constants.BatchStatusFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			batches := repotest.NewBatchRepo()
			files := repotest.NewFileRepo()
			b := seedBatch(batches, files, 0)
			require.NoError(t, batches.UpdateStatus(context.Background(), b.ID, constants.BatchStatusProcessing, nil))
			for _, s := range tc.statuses {
				files.Add(&entity.FileExtraction{ID: uuid.New(), RunID: b.Run(), Status: s})
			}

			orch := newOrchestrator(batches, files, &fakeExtractor{}, newFakeEnqueuer())
			status, err := orch.Finalize(context.Background(), b.ID)
			require.NoError(t, err)
			require.Equal(t, tc.want, status)

			got, err := batches.GetByID(context.Background(), b.ID)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Status)
		})
	}
}

func TestFinalizeRejectsInFlightBatch(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	b := seedBatch(batches, files, 0)
	require.NoError(t, batches.UpdateStatus(context.Background(), b.ID, constants.BatchStatusProcessing, nil))
	files.Add(&entity.FileExtraction{ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusProcessing})

	orch := newOrchestrator(batches, files, &fakeExtractor{}, newFakeEnqueuer())
	_, err := orch.Finalize(context.Background(), b.ID)
	require.ErrorIs(t, err, common.ErrConflict)
}

func TestFinalizeRejectsTerminalBatch(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	b := seedBatch(batches, files, 0)
	files.Add(&entity.FileExtraction{ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusSuccess})
	require.NoError(t, batches.UpdateStatus(context.Background(), b.ID, constants.BatchStatusCompleted, nil))

	orch := newOrchestrator(batches, files, &fakeExtractor{}, newFakeEnqueuer())
	_, err := orch.Finalize(context.Background(), b.ID)
	require.ErrorIs(t, err, ErrBatchFinalized)
}

func TestRetryFailedResetsFilesAndBatch(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	b := seedBatch(batches, files, 0)
	require.NoError(t, batches.UpdateStatus(context.Background(), b.ID, constants.BatchStatusCompletedWithErrors, nil))
	files.Add(&entity.FileExtraction{ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusFailed, RetryCount: 3})
	files.Add(&entity.FileExtraction{ID: uuid.New(), RunID: b.Run(), Status: constants.FileStatusSuccess})

	orch := newOrchestrator(batches, files, &fakeExtractor{}, newFakeEnqueuer())
	n, err := orch.RetryFailed(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err := batches.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusProcessing, got.Status)

	pendingSeen := false
	for _, f := range files.All() {
		if f.Status == constants.FileStatusPending {
			pendingSeen = true
			require.Zero(t, f.RetryCount)
		}
	}
	require.True(t, pendingSeen)
}

func TestRetryFailedNoFailedFiles(t *testing.T) {
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	b := seedBatch(batches, files, 0)
	require.NoError(t, batches.UpdateStatus(context.Background(), b.ID, constants.BatchStatusCompleted, nil))

	orch := newOrchestrator(batches, files, &fakeExtractor{}, newFakeEnqueuer())
	n, err := orch.RetryFailed(context.Background(), b.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	// No reset happened, so the batch keeps its terminal status.
	got, err := batches.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusCompleted, got.Status)
}
