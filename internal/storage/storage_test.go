package storage

import (
	"context"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/internal/common"
)

// backends under test share one behavioral contract.
func backends(t *testing.T) map[string]Storage {
	t.Helper()
	local, err := NewLocal(t.TempDir(), slog.Default())
	require.NoError(t, err)
	return map[string]Storage{
		"local":  local,
		"memory": NewMemory(),
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.WriteFile(ctx, "batches/b1/extracted/a.pdf", []byte("payload")))

			data, err := s.ReadFile(ctx, "batches/b1/extracted/a.pdf")
			require.NoError(t, err)
			require.Equal(t, []byte("payload"), data)

			// Overwrite replaces the object.
			require.NoError(t, s.WriteFile(ctx, "batches/b1/extracted/a.pdf", []byte("v2")))
			data, err = s.ReadFile(ctx, "batches/b1/extracted/a.pdf")
			require.NoError(t, err)
			require.Equal(t, []byte("v2"), data)
		})
	}
}

func TestReadMissingObject(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.ReadFile(context.Background(), "nope/missing.pdf")
			require.ErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestFileExists(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ok, err := s.FileExists(ctx, "uploads/a.zip")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, s.WriteFile(ctx, "uploads/a.zip", []byte("z")))
			ok, err = s.FileExists(ctx, "uploads/a.zip")
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}

func TestGetFileSize(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.WriteFile(ctx, "uploads/a.zip", make([]byte, 1234)))

			size, err := s.GetFileSize(ctx, "uploads/a.zip")
			require.NoError(t, err)
			require.Equal(t, int64(1234), size)

			_, err = s.GetFileSize(ctx, "uploads/b.zip")
			require.ErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestListFilesByPrefix(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, key := range []string{
				"batches/b1/extracted/a.pdf",
				"batches/b1/extracted/sub/b.x81",
				"batches/b2/extracted/c.pdf",
				"uploads/b1.zip",
			} {
				require.NoError(t, s.WriteFile(ctx, key, []byte(key)))
			}

			keys, err := s.ListFiles(ctx, "batches/b1/")
			require.NoError(t, err)
			sort.Strings(keys)
			require.Equal(t, []string{
				"batches/b1/extracted/a.pdf",
				"batches/b1/extracted/sub/b.x81",
			}, keys)

			keys, err = s.ListFiles(ctx, "nonexistent/")
			require.NoError(t, err)
			require.Empty(t, keys)
		})
	}
}

func TestDeleteFile(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.WriteFile(ctx, "uploads/a.zip", []byte("z")))
			require.NoError(t, s.DeleteFile(ctx, "uploads/a.zip"))

			ok, err := s.FileExists(ctx, "uploads/a.zip")
			require.NoError(t, err)
			require.False(t, ok)

			require.ErrorIs(t, s.DeleteFile(ctx, "uploads/a.zip"), common.ErrNotFound)
		})
	}
}

func TestMemoryCopiesData(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	buf := []byte("original")
	require.NoError(t, s.WriteFile(ctx, "k", buf))
	buf[0] = 'X'

	data, err := s.ReadFile(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("original"), data)

	// Mutating a returned slice must not corrupt the stored object.
	data[0] = 'Y'
	again, err := s.ReadFile(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("original"), again)
}
