package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/gen/ent"
	entfile "github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
)

// FileExtractionRepository is the persisted-state contract for per-file rows.
// The external worker also mutates file status through its own connection;
// this side only performs the transitions the orchestrator and extractor own.
type FileExtractionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FileExtraction, error)
	// Insert records a discovered file with status "pending". It is
	// idempotent: an identifier conflict is silently skipped and reported
	// through the created flag.
	Insert(ctx context.Context, f *entity.FileExtraction) (created bool, err error)
	// ListEligible returns files legal for (re-)dispatch: pending, or failed
	// with retry_count below maxAttempts, in creation order.
	ListEligible(ctx context.Context, runID uuid.UUID, maxAttempts int) ([]*entity.FileExtraction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.FileStatus) error
	CountByStatus(ctx context.Context, runID uuid.UUID) (map[constants.FileStatus]int, error)
	// ResetFailed returns failed files to "pending" with a cleared retry
	// count, making them eligible again. Used by the retry-failed operation.
	ResetFailed(ctx context.Context, runID uuid.UUID) (int, error)
}

type fileExtractionRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFileExtractionRepository(entc *ent.Client, logger *slog.Logger) FileExtractionRepository {
	return &fileExtractionRepo{ent: entc, logger: logger}
}

func (r *fileExtractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FileExtraction, error) {
	row, err := r.ent.FileExtraction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("FILE_NOT_FOUND", "file "+id.String()+" not found", common.ErrNotFound)
		}
		r.logger.Error("failed to get file extraction", "file_id", id, "error", err)
		return nil, err
	}
	return toFileEntity(row), nil
}

func (r *fileExtractionRepo) Insert(ctx context.Context, f *entity.FileExtraction) (bool, error) {
	status := f.Status
	if status == "" {
		status = constants.FileStatusPending
	}
	sourceTag := f.SourceTag
	if sourceTag == "" {
		sourceTag = constants.SourceTagUpload
	}
	_, err := r.ent.FileExtraction.Create().
		SetID(f.ID).
		SetRunID(f.RunID).
		SetFilename(f.Filename).
		SetFilePath(f.FilePath).
		SetFileType(f.FileType).
		SetStatus(string(status)).
		SetSourceTag(sourceTag).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Re-extraction after a crash replays the same identifiers;
			// the existing row wins.
			r.logger.Debug("file extraction already recorded", "file_id", f.ID, "run_id", f.RunID)
			return false, nil
		}
		r.logger.Error("failed to insert file extraction", "file_id", f.ID, "run_id", f.RunID, "error", err)
		return false, err
	}
	return true, nil
}

func (r *fileExtractionRepo) ListEligible(ctx context.Context, runID uuid.UUID, maxAttempts int) ([]*entity.FileExtraction, error) {
	rows, err := r.ent.FileExtraction.Query().
		Where(
			entfile.RunID(runID),
			entfile.Or(
				entfile.Status(string(constants.FileStatusPending)),
				entfile.And(
					entfile.Status(string(constants.FileStatusFailed)),
					entfile.RetryCountLT(maxAttempts),
				),
			),
		).
		Order(ent.Asc(entfile.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list eligible files", "run_id", runID, "error", err)
		return nil, err
	}
	out := make([]*entity.FileExtraction, len(rows))
	for i, row := range rows {
		out[i] = toFileEntity(row)
	}
	return out, nil
}

func (r *fileExtractionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.FileStatus) error {
	_, err := r.ent.FileExtraction.UpdateOneID(id).
		SetStatus(string(status)).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.NewAppError("FILE_NOT_FOUND", "file "+id.String()+" not found", common.ErrNotFound)
		}
		r.logger.Error("failed to update file status", "file_id", id, "status", status, "error", err)
		return err
	}
	return nil
}

func (r *fileExtractionRepo) CountByStatus(ctx context.Context, runID uuid.UUID) (map[constants.FileStatus]int, error) {
	var buckets []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.ent.FileExtraction.Query().
		Where(entfile.RunID(runID)).
		GroupBy(entfile.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &buckets)
	if err != nil {
		r.logger.Error("failed to count files by status", "run_id", runID, "error", err)
		return nil, err
	}
	out := make(map[constants.FileStatus]int, len(buckets))
	for _, b := range buckets {
		out[constants.FileStatus(b.Status)] = b.Count
	}
	return out, nil
}

func (r *fileExtractionRepo) ResetFailed(ctx context.Context, runID uuid.UUID) (int, error) {
	n, err := r.ent.FileExtraction.Update().
		Where(
			entfile.RunID(runID),
			entfile.Status(string(constants.FileStatusFailed)),
		).
		SetStatus(string(constants.FileStatusPending)).
		SetRetryCount(0).
		SetUpdatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reset failed files", "run_id", runID, "error", err)
		return 0, err
	}
	r.logger.Info("failed files reset to pending", "run_id", runID, "count", n)
	return n, nil
}

func toFileEntity(row *ent.FileExtraction) *entity.FileExtraction {
	return &entity.FileExtraction{
		ID:         row.ID,
		RunID:      row.RunID,
		Filename:   row.Filename,
		FilePath:   row.FilePath,
		FileType:   row.FileType,
		Status:     constants.FileStatus(row.Status),
		RetryCount: row.RetryCount,
		SourceTag:  row.SourceTag,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
