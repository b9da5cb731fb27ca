// Package repotest provides in-memory implementations of the repository
// interfaces for tests.
package repotest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
)

// BatchRepo keeps batch rows in memory with the semantics of the real
// repository.
type BatchRepo struct {
	mu      sync.Mutex
	batches map[uuid.UUID]*entity.Batch
}

func NewBatchRepo() *BatchRepo {
	return &BatchRepo{batches: make(map[uuid.UUID]*entity.Batch)}
}

// Add seeds a batch row.
func (r *BatchRepo) Add(b *entity.Batch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *b
	r.batches[b.ID] = &cp
}

func (r *BatchRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return nil, common.NewAppError("BATCH_NOT_FOUND", "batch "+id.String()+" not found", common.ErrNotFound)
	}
	cp := *b
	return &cp, nil
}

func (r *BatchRepo) Create(_ context.Context, archiveKey string) (*entity.Batch, error) {
	b := &entity.Batch{
		ID:         uuid.New(),
		Status:     constants.BatchStatusQueued,
		ArchiveKey: archiveKey,
		CreatedAt:  time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches[b.ID] = b
	cp := *b
	return &cp, nil
}

func (r *BatchRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.BatchStatus, errorMessage *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return common.NewAppError("BATCH_NOT_FOUND", "batch "+id.String()+" not found", common.ErrNotFound)
	}
	b.Status = status
	if errorMessage != nil {
		b.ErrorMessage = errorMessage
	}
	return nil
}

func (r *BatchRepo) MarkExtracted(_ context.Context, id, runID uuid.UUID, totalFiles int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return common.NewAppError("BATCH_NOT_FOUND", "batch "+id.String()+" not found", common.ErrNotFound)
	}
	if b.RunID == nil {
		b.RunID = &runID
	}
	b.TotalFiles = totalFiles
	b.Status = constants.BatchStatusQueued
	return nil
}

func (r *BatchRepo) Finalize(_ context.Context, id uuid.UUID, status constants.BatchStatus, errorMessage *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.batches[id]
	if !ok {
		return common.NewAppError("BATCH_NOT_FOUND", "batch "+id.String()+" not found", common.ErrNotFound)
	}
	if b.Status.IsTerminal() {
		return common.NewAppError("BATCH_FINALIZED", "batch is already terminal", common.ErrConflict)
	}
	b.Status = status
	if errorMessage != nil {
		b.ErrorMessage = errorMessage
	}
	now := time.Now().UTC()
	b.CompletedAt = &now
	return nil
}

func (r *BatchRepo) ListByStatus(_ context.Context, status constants.BatchStatus) ([]*entity.Batch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Batch
	for _, b := range r.batches {
		if b.Status == status {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// FileRepo keeps file rows in memory, implementing the idempotent insert and
// the eligibility query.
type FileRepo struct {
	mu    sync.Mutex
	rows  map[uuid.UUID]*entity.FileExtraction
	clock time.Time
}

func NewFileRepo() *FileRepo {
	return &FileRepo{rows: make(map[uuid.UUID]*entity.FileExtraction), clock: time.Now().UTC()}
}

// Add seeds a file row with a monotonically increasing creation time.
func (r *FileRepo) Add(f *entity.FileExtraction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *f
	if cp.CreatedAt.IsZero() {
		r.clock = r.clock.Add(time.Millisecond)
		cp.CreatedAt = r.clock
	}
	r.rows[cp.ID] = &cp
}

func (r *FileRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.FileExtraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, common.NewAppError("FILE_NOT_FOUND", "file "+id.String()+" not found", common.ErrNotFound)
	}
	cp := *f
	return &cp, nil
}

func (r *FileRepo) Insert(_ context.Context, f *entity.FileExtraction) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.rows[f.ID]; exists {
		return false, nil
	}
	cp := *f
	if cp.Status == "" {
		cp.Status = constants.FileStatusPending
	}
	if cp.SourceTag == "" {
		cp.SourceTag = constants.SourceTagUpload
	}
	r.clock = r.clock.Add(time.Millisecond)
	cp.CreatedAt = r.clock
	r.rows[cp.ID] = &cp
	return true, nil
}

func (r *FileRepo) ListEligible(_ context.Context, runID uuid.UUID, maxAttempts int) ([]*entity.FileExtraction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.FileExtraction
	for _, f := range r.rows {
		if f.RunID != runID {
			continue
		}
		if f.Status == constants.FileStatusPending ||
			(f.Status == constants.FileStatusFailed && f.RetryCount < maxAttempts) {
			cp := *f
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *FileRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.FileStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return common.NewAppError("FILE_NOT_FOUND", "file "+id.String()+" not found", common.ErrNotFound)
	}
	f.Status = status
	return nil
}

func (r *FileRepo) CountByStatus(_ context.Context, runID uuid.UUID) (map[constants.FileStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[constants.FileStatus]int)
	for _, f := range r.rows {
		if f.RunID == runID {
			out[f.Status]++
		}
	}
	return out, nil
}

func (r *FileRepo) ResetFailed(_ context.Context, runID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, f := range r.rows {
		if f.RunID == runID && f.Status == constants.FileStatusFailed {
			f.Status = constants.FileStatusPending
			f.RetryCount = 0
			n++
		}
	}
	return n, nil
}

// Len reports the number of stored rows.
func (r *FileRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// All returns a copy of every stored row.
func (r *FileRepo) All() []*entity.FileExtraction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.FileExtraction, 0, len(r.rows))
	for _, f := range r.rows {
		cp := *f
		out = append(out, &cp)
	}
	return out
}
