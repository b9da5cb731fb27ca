package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/archive"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
	"github.com/mlevchenko/tenderbatch/internal/repository"
	"github.com/mlevchenko/tenderbatch/internal/storage"
)

// NoSupportedFilesMessage is recorded on the batch when an archive yields
// nothing the pipeline can process.
const NoSupportedFilesMessage = "No supported files found in ZIP"

// Result is the extraction outcome for one batch.
type Result struct {
	BatchID    uuid.UUID
	TotalFiles int
}

// Config holds the extraction knobs.
type Config struct {
	// WorkDir is the local scratch directory; each batch gets a subdirectory.
	WorkDir string
	// ExtractedDir names the directory the top-level archive unpacks into.
	ExtractedDir string
	// MaxDepth bounds nested-archive descent. Exceeding it skips the branch
	// and logs; it never fails the batch.
	MaxDepth int
	// Extensions overrides constants.SupportedExtensions when non-empty.
	Extensions []string
}

// Extractor walks an uploaded archive and materializes one FileExtraction row
// per supported document it discovers.
type Extractor struct {
	batches repository.BatchRepository
	files   repository.FileExtractionRepository
	store   storage.Storage
	reader  archive.Reader
	logger  *slog.Logger
	cfg     Config
	exts    map[string]struct{}
}

func New(
	batches repository.BatchRepository,
	files repository.FileExtractionRepository,
	store storage.Storage,
	reader archive.Reader,
	cfg Config,
	logger *slog.Logger,
) *Extractor {
	if cfg.WorkDir == "" {
		cfg.WorkDir = "./tmp/extract"
	}
	if cfg.ExtractedDir == "" {
		cfg.ExtractedDir = "extracted"
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 3
	}
	exts := constants.SupportedExtensions
	if len(cfg.Extensions) > 0 {
		exts = map[string]struct{}{}
		for _, e := range cfg.Extensions {
			if e = constants.NormalizeExt(e); e != "" {
				exts[e] = struct{}{}
			}
		}
	}
	return &Extractor{
		batches: batches,
		files:   files,
		store:   store,
		reader:  reader,
		logger:  logger,
		cfg:     cfg,
		exts:    exts,
	}
}

// Extract unpacks the batch's stored archive, walks it (nested archives
// included, up to the depth bound), records one pending FileExtraction row
// per supported file, and moves the batch back to "queued" with run_id and
// total_files fixed.
//
// A missing archive or an archive with zero supported files fails the batch
// with a message. An unpack I/O error is fatal to the call and leaves the
// batch in "extracting" for an external retry.
func (e *Extractor) Extract(ctx context.Context, batchID uuid.UUID) (*Result, error) {
	batch, err := e.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if err := e.batches.UpdateStatus(ctx, batchID, constants.BatchStatusExtracting, nil); err != nil {
		return nil, err
	}

	data, err := e.store.ReadFile(ctx, batch.ArchiveKey)
	if err != nil {
		msg := "Archive not found: " + batch.ArchiveKey
		if uerr := e.batches.UpdateStatus(ctx, batchID, constants.BatchStatusFailed, &msg); uerr != nil {
			e.logger.Error("failed to record missing archive", "batch_id", batchID, "error", uerr)
		}
		return nil, common.WrapError(err, "read archive for batch "+batchID.String())
	}

	workDir := filepath.Join(e.cfg.WorkDir, batchID.String())
	destDir := filepath.Join(workDir, e.cfg.ExtractedDir)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, err
	}
	// Scratch only: everything worth keeping lands in storage, and a replay
	// re-materializes the archive from there.
	defer func() {
		if rerr := os.RemoveAll(workDir); rerr != nil {
			e.logger.Warn("failed to clean extraction scratch dir", "batch_id", batchID, "error", rerr)
		}
	}()
	archivePath := filepath.Join(workDir, "upload.zip")
	if err := os.WriteFile(archivePath, data, 0o644); err != nil {
		return nil, err
	}
	if err := e.reader.ExtractAll(ctx, archivePath, destDir); err != nil {
		return nil, common.WrapError(err, "unpack archive for batch "+batchID.String())
	}

	runID := batch.Run()
	w := &walker{ex: e, batch: batch, runID: runID, destDir: destDir}
	if err := w.walk(ctx, destDir, 0); err != nil {
		return nil, err
	}

	if w.kept == 0 {
		msg := NoSupportedFilesMessage
		if uerr := e.batches.UpdateStatus(ctx, batchID, constants.BatchStatusFailed, &msg); uerr != nil {
			e.logger.Error("failed to record empty archive", "batch_id", batchID, "error", uerr)
		}
		return nil, common.NewAppError("NO_SUPPORTED_FILES", msg, common.ErrInvalidInput)
	}

	if err := e.batches.MarkExtracted(ctx, batchID, runID, w.kept); err != nil {
		return nil, err
	}
	e.logger.Info("extraction complete", "batch_id", batchID, "run_id", runID, "total_files", w.kept)
	return &Result{BatchID: batchID, TotalFiles: w.kept}, nil
}

type walker struct {
	ex      *Extractor
	batch   *entity.Batch
	runID   uuid.UUID
	destDir string
	kept    int
}

// walk descends dir. depth counts nested-archive unpacks performed above the
// current directory; it starts at 0 for the top-level archive's contents.
func (w *walker) walk(ctx context.Context, dir string, depth int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if err := w.walk(ctx, path, depth); err != nil {
				return err
			}
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(entry.Name()))
		if constants.IsArchiveExt(ext) {
			if depth >= w.ex.cfg.MaxDepth {
				w.ex.logger.Warn("nested archive exceeds depth bound, skipping branch",
					"batch_id", w.batch.ID, "path", entry.Name(), "depth", depth+1, "max_depth", w.ex.cfg.MaxDepth)
				continue
			}
			nestedDir := filepath.Join(dir, entry.Name()+".d")
			if err := w.ex.reader.ExtractAll(ctx, path, nestedDir); err != nil {
				// A corrupt nested archive loses its branch, not the batch.
				w.ex.logger.Warn("nested archive unreadable, skipping",
					"batch_id", w.batch.ID, "path", entry.Name(), "error", err)
				continue
			}
			if err := w.walk(ctx, nestedDir, depth+1); err != nil {
				return err
			}
			continue
		}
		if _, ok := w.ex.exts[ext]; !ok {
			continue
		}
		if err := w.keep(ctx, path, ext); err != nil {
			return err
		}
	}
	return nil
}

// keep uploads one discovered file to storage and records its row. The file
// identifier is derived from the run and the relative path, so replaying an
// interrupted extraction reproduces the same identifiers and the idempotent
// insert skips existing rows.
func (w *walker) keep(ctx context.Context, path, ext string) error {
	rel, err := filepath.Rel(w.destDir, path)
	if err != nil {
		return err
	}
	relKey := filepath.ToSlash(rel)
	storageKey := fmt.Sprintf("batches/%s/%s/%s", w.batch.ID, w.ex.cfg.ExtractedDir, relKey)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := w.ex.store.WriteFile(ctx, storageKey, data); err != nil {
		return err
	}

	fileID := uuid.NewSHA1(w.runID, []byte(relKey))
	created, err := w.ex.files.Insert(ctx, &entity.FileExtraction{
		ID:       fileID,
		RunID:    w.runID,
		Filename: filepath.Base(path),
		FilePath: storageKey,
		FileType: ext,
		Status:   constants.FileStatusPending,
	})
	if err != nil {
		return err
	}
	if !created {
		w.ex.logger.Debug("file already recorded", "batch_id", w.batch.ID, "file_id", fileID, "path", relKey)
	}
	w.kept++
	return nil
}
