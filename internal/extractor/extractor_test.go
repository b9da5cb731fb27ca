package extractor

import (
	"archive/zip"
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/constants"
	"github.com/mlevchenko/tenderbatch/internal/archive"
	"github.com/mlevchenko/tenderbatch/internal/common"
	"github.com/mlevchenko/tenderbatch/internal/entity"
	"github.com/mlevchenko/tenderbatch/internal/repository/repotest"
	"github.com/mlevchenko/tenderbatch/internal/storage"
)

// buildZip assembles a ZIP from name -> content pairs. Nested archives are
// just entries whose content is another ZIP.
func buildZip(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write(entries[name])
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func newTestExtractor(t *testing.T, archiveData []byte) (*Extractor, *repotest.BatchRepo, *repotest.FileRepo, *entity.Batch) {
	t.Helper()
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	store := storage.NewMemory()

	batch := &entity.Batch{
		ID:         uuid.New(),
		Status:     constants.BatchStatusQueued,
		ArchiveKey: "uploads/archive.zip",
	}
	batches.Add(batch)
	if archiveData != nil {
		require.NoError(t, store.WriteFile(context.Background(), batch.ArchiveKey, archiveData))
	}

	ex := New(batches, files, store, archive.NewZipReader(), Config{
		WorkDir:  t.TempDir(),
		MaxDepth: 3,
	}, slog.Default())
	return ex, batches, files, batch
}

func TestExtractRecordsSupportedFiles(t *testing.T) {
	nested := buildZip(t, map[string][]byte{"c.pdf": []byte("c")})
	data := buildZip(t, map[string][]byte{
		"a.pdf":      []byte("a"),
		"b.docx":     []byte("b"),
		"nested.zip": nested,
	})
	ex, batches, files, batch := newTestExtractor(t, data)

	res, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, batch.ID, res.BatchID)
	require.Equal(t, 3, res.TotalFiles)

	got, err := batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusQueued, got.Status)
	require.Equal(t, 3, got.TotalFiles)
	require.NotNil(t, got.RunID)
	require.Equal(t, batch.ID, *got.RunID, "run defaults to the batch identifier")

	rows := files.All()
	require.Len(t, rows, 3)
	seen := map[uuid.UUID]bool{}
	for _, f := range rows {
		require.Equal(t, batch.ID, f.RunID)
		require.Equal(t, constants.FileStatusPending, f.Status)
		require.Equal(t, constants.SourceTagUpload, f.SourceTag)
		require.False(t, seen[f.ID], "file identifiers must be distinct")
		seen[f.ID] = true
	}
}

func TestExtractIsIdempotent(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"a.pdf": []byte("a"),
		"b.csv": []byte("b"),
	})
	ex, _, files, batch := newTestExtractor(t, data)

	_, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, 2, files.Len())

	// Replaying the extraction reproduces the same identifiers; the insert
	// skips every existing row.
	res, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalFiles)
	require.Equal(t, 2, files.Len())
}

func TestExtractZeroSupportedFilesFailsBatch(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"readme.txt": []byte("hi"),
		"image.png":  []byte{0x89},
	})
	ex, batches, _, batch := newTestExtractor(t, data)

	_, err := ex.Extract(context.Background(), batch.ID)
	require.Error(t, err)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	got, err := batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	require.Equal(t, "No supported files found in ZIP", *got.ErrorMessage)
}

func TestExtractMissingArchiveFailsBatch(t *testing.T) {
	ex, batches, _, batch := newTestExtractor(t, nil)

	_, err := ex.Extract(context.Background(), batch.ID)
	require.Error(t, err)

	got, err := batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusFailed, got.Status)
}

func TestExtractCorruptArchiveLeavesBatchExtracting(t *testing.T) {
	ex, batches, _, batch := newTestExtractor(t, []byte("not a zip"))

	_, err := ex.Extract(context.Background(), batch.ID)
	require.Error(t, err)

	got, err := batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusExtracting, got.Status)
}

func TestExtractUnknownBatch(t *testing.T) {
	ex, _, _, _ := newTestExtractor(t, nil)
	_, err := ex.Extract(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestExtractHonorsDepthBound(t *testing.T) {
	// top -> l1.zip -> l2.zip -> l3.zip holds d.p83; a 4th level is skipped.
	l4 := buildZip(t, map[string][]byte{"e.pdf": []byte("e")})
	l3 := buildZip(t, map[string][]byte{"d.p83": []byte("d"), "l4.zip": l4})
	l2 := buildZip(t, map[string][]byte{"c.xlsx": []byte("c"), "l3.zip": l3})
	l1 := buildZip(t, map[string][]byte{"b.x81": []byte("b"), "l2.zip": l2})
	data := buildZip(t, map[string][]byte{"a.pdf": []byte("a"), "l1.zip": l1})

	ex, batches, files, batch := newTestExtractor(t, data)

	res, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, 4, res.TotalFiles, "three nested levels extract, the fourth is excluded")

	names := map[string]bool{}
	for _, f := range files.All() {
		names[f.Filename] = true
	}
	require.True(t, names["a.pdf"])
	require.True(t, names["b.x81"])
	require.True(t, names["c.xlsx"])
	require.True(t, names["d.p83"])
	require.False(t, names["e.pdf"], "4th-level contents must be excluded")

	got, err := batches.GetByID(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, constants.BatchStatusQueued, got.Status, "depth bound is soft, batch still succeeds")
}

func TestExtractCorruptNestedArchiveSkipsBranch(t *testing.T) {
	data := buildZip(t, map[string][]byte{
		"a.pdf":      []byte("a"),
		"broken.zip": []byte("definitely not a zip"),
	})
	ex, _, files, batch := newTestExtractor(t, data)

	res, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalFiles)
	require.Equal(t, 1, files.Len())
}

func TestExtractCleansUpScratchDir(t *testing.T) {
	data := buildZip(t, map[string][]byte{"a.pdf": []byte("a")})
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	store := storage.NewMemory()
	batch := &entity.Batch{ID: uuid.New(), Status: constants.BatchStatusQueued, ArchiveKey: "uploads/a.zip"}
	batches.Add(batch)
	require.NoError(t, store.WriteFile(context.Background(), batch.ArchiveKey, data))

	workDir := t.TempDir()
	ex := New(batches, files, store, archive.NewZipReader(), Config{WorkDir: workDir}, slog.Default())
	_, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)

	// The unpacked tree is gone; disk usage does not accumulate per batch.
	require.NoDirExists(t, filepath.Join(workDir, batch.ID.String()))
}

func TestExtractMaterializesFilesInStorage(t *testing.T) {
	data := buildZip(t, map[string][]byte{"docs/a.pdf": []byte("hello")})
	batches := repotest.NewBatchRepo()
	files := repotest.NewFileRepo()
	store := storage.NewMemory()
	batch := &entity.Batch{ID: uuid.New(), Status: constants.BatchStatusQueued, ArchiveKey: "uploads/a.zip"}
	batches.Add(batch)
	require.NoError(t, store.WriteFile(context.Background(), batch.ArchiveKey, data))

	ex := New(batches, files, store, archive.NewZipReader(), Config{WorkDir: t.TempDir()}, slog.Default())
	_, err := ex.Extract(context.Background(), batch.ID)
	require.NoError(t, err)

	rows := files.All()
	require.Len(t, rows, 1)
	content, err := store.ReadFile(context.Background(), rows[0].FilePath)
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), content)
	require.Equal(t, "pdf", rows[0].FileType)
}
