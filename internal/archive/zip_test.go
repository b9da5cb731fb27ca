package archive

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, entries map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.zip")
	out, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(out)
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
	require.NoError(t, out.Close())
	return path
}

func TestListEntries(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"a.pdf":       []byte("a"),
		"docs/b.docx": []byte("b"),
	})
	r := NewZipReader()
	names, err := r.ListEntries(context.Background(), path)
	require.NoError(t, err)
	sort.Strings(names)
	require.Equal(t, []string{"a.pdf", "docs/b.docx"}, names)
}

func TestListEntriesCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	r := NewZipReader()
	_, err := r.ListEntries(context.Background(), path)
	require.Error(t, err)
}

func TestExtractAll(t *testing.T) {
	path := writeZip(t, map[string][]byte{
		"a.pdf":             []byte("alpha"),
		"docs/nested/b.x81": []byte("beta"),
	})
	dest := filepath.Join(t.TempDir(), "out")

	r := NewZipReader()
	require.NoError(t, r.ExtractAll(context.Background(), path, dest))

	data, err := os.ReadFile(filepath.Join(dest, "a.pdf"))
	require.NoError(t, err)
	require.Equal(t, []byte("alpha"), data)

	data, err = os.ReadFile(filepath.Join(dest, "docs", "nested", "b.x81"))
	require.NoError(t, err)
	require.Equal(t, []byte("beta"), data)
}

func TestExtractAllCorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.zip")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))

	r := NewZipReader()
	err := r.ExtractAll(context.Background(), path, filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
}

func TestExtractAllRejectsPathTraversal(t *testing.T) {
	// Hand-build an archive whose entry name escapes the destination.
	path := filepath.Join(t.TempDir(), "evil.zip")
	out, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(out)
	f, err := w.CreateHeader(&zip.FileHeader{Name: "../escape.txt"})
	require.NoError(t, err)
	_, err = f.Write([]byte("pwned"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, out.Close())

	base := t.TempDir()
	dest := filepath.Join(base, "out")
	r := NewZipReader()
	require.Error(t, r.ExtractAll(context.Background(), path, dest))

	_, statErr := os.Stat(filepath.Join(base, "escape.txt"))
	require.True(t, os.IsNotExist(statErr))
}

func TestExtractAllCancelledContext(t *testing.T) {
	path := writeZip(t, map[string][]byte{"a.pdf": []byte("a")})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewZipReader()
	err := r.ExtractAll(ctx, path, filepath.Join(t.TempDir(), "out"))
	require.ErrorIs(t, err, context.Canceled)
}
