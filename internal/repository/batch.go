package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/gen/ent"
	entbatch "github.com/mlevchenko/tenderbatch/gen/ent/batch"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
)

// BatchRepository is the persisted-state contract for batch rows. Only the
// orchestrator and extractor mutate batch-level state through it.
type BatchRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error)
	Create(ctx context.Context, archiveKey string) (*entity.Batch, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.BatchStatus, errorMessage *string) error
	// MarkExtracted persists total_files and fixes run_id (first write wins),
	// moving the batch back to "queued".
	MarkExtracted(ctx context.Context, id, runID uuid.UUID, totalFiles int) error
	// Finalize writes a terminal status. It returns common.ErrConflict if the
	// batch is already terminal; terminal rows are never overwritten.
	Finalize(ctx context.Context, id uuid.UUID, status constants.BatchStatus, errorMessage *string) error
	ListByStatus(ctx context.Context, status constants.BatchStatus) ([]*entity.Batch, error)
}

type batchRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewBatchRepository(entc *ent.Client, logger *slog.Logger) BatchRepository {
	return &batchRepo{ent: entc, logger: logger}
}

func (r *batchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Batch, error) {
	row, err := r.ent.Batch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("BATCH_NOT_FOUND", "batch "+id.String()+" not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get batch", "batch_id", id, "error", err)
		return nil, err
	}
	return toBatchEntity(row), nil
}

func (r *batchRepo) Create(ctx context.Context, archiveKey string) (*entity.Batch, error) {
	row, err := r.ent.Batch.Create().
		SetStatus(string(constants.BatchStatusQueued)).
		SetArchiveKey(archiveKey).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create batch", "archive_key", archiveKey, "error", err)
		return nil, err
	}
	r.logger.Info("batch created", "batch_id", row.ID, "archive_key", archiveKey)
	return toBatchEntity(row), nil
}

func (r *batchRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.BatchStatus, errorMessage *string) error {
	upd := r.ent.Batch.UpdateOneID(id).
		SetStatus(string(status)).
		SetUpdatedAt(time.Now().UTC())
	if errorMessage != nil {
		upd.SetErrorMessage(*errorMessage)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("BATCH_NOT_FOUND", "batch "+id.String()+" not found", common.ErrNotFound)
		}
		r.logger.Error("failed to update batch status", "batch_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (r *batchRepo) MarkExtracted(ctx context.Context, id, runID uuid.UUID, totalFiles int) error {
	// run_id is assigned exactly once: the predicate only matches rows where
	// it is still unset.
	n, err := r.ent.Batch.Update().
		Where(entbatch.ID(id), entbatch.RunIDIsNil()).
		SetRunID(runID).
		SetTotalFiles(totalFiles).
		SetStatus(string(constants.BatchStatusQueued)).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark batch extracted", "batch_id", id, "error", err)
		return err
	}
	if n == 0 {
		// run_id already fixed by an earlier extraction; refresh counters only.
		_, err = r.ent.Batch.Update().
			Where(entbatch.ID(id)).
			SetTotalFiles(totalFiles).
			SetStatus(string(constants.BatchStatusQueued)).
			SetUpdatedAt(time.Now().UTC()).
			Save(ctx)
		if err != nil {
			r.logger.Error("failed to refresh extracted batch", "batch_id", id, "error", err)
			return err
		}
	}
	r.logger.Info("batch extracted", "batch_id", id, "run_id", runID, "total_files", totalFiles)
	return nil
}

func (r *batchRepo) Finalize(ctx context.Context, id uuid.UUID, status constants.BatchStatus, errorMessage *string) error {
	now := time.Now().UTC()
	upd := r.ent.Batch.Update().
		Where(
			entbatch.ID(id),
			entbatch.StatusNotIn(
				string(constants.BatchStatusCompleted),
				string(constants.BatchStatusCompletedWithErrors),
				string(constants.BatchStatusFailed),
			),
		).
		SetStatus(string(status)).
		SetCompletedAt(now).
		SetUpdatedAt(now)
	if errorMessage != nil {
		upd.SetErrorMessage(*errorMessage)
	}
	n, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to finalize batch", "batch_id", id, "status", status, "error", err)
		return err
	}
	if n == 0 {
		return common.NewAppError("BATCH_FINALIZED", "batch "+id.String()+" is already terminal", common.ErrConflict)
	}
	r.logger.Info("batch finalized", "batch_id", id, "status", status)
	return nil
}

func (r *batchRepo) ListByStatus(ctx context.Context, status constants.BatchStatus) ([]*entity.Batch, error) {
	rows, err := r.ent.Batch.Query().
		Where(entbatch.Status(string(status))).
		Order(ent.Asc(entbatch.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list batches by status", "status", status, "error", err)
		return nil, err
	}
	out := make([]*entity.Batch, len(rows))
	for i, row := range rows {
		out[i] = toBatchEntity(row)
	}
	return out, nil
}

func toBatchEntity(row *ent.Batch) *entity.Batch {
	return &entity.Batch{
		ID:           row.ID,
		Status:       constants.BatchStatus(row.Status),
		RunID:        row.RunID,
		TotalFiles:   row.TotalFiles,
		ErrorMessage: row.ErrorMessage,
		ArchiveKey:   row.ArchiveKey,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		CompletedAt:  row.CompletedAt,
	}
}
