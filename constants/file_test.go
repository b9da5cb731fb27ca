package constants

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeExt(t *testing.T) {
	require.Equal(t, "pdf", NormalizeExt(".PDF"))
	require.Equal(t, "x83", NormalizeExt("x83"))
	require.Equal(t, "", NormalizeExt("."))
}

func TestIsSupportedExt(t *testing.T) {
	for _, ext := range []string{".pdf", "DOCX", ".x81", "d86", ".P83", "csv"} {
		require.True(t, IsSupportedExt(ext), ext)
	}
	for _, ext := range []string{".txt", "png", ".exe", "zip", ""} {
		require.False(t, IsSupportedExt(ext), ext)
	}
}

func TestIsArchiveExt(t *testing.T) {
	require.True(t, IsArchiveExt(".zip"))
	require.True(t, IsArchiveExt("ZIP"))
	require.False(t, IsArchiveExt(".rar"))
	require.False(t, IsArchiveExt(".pdf"))
}

func TestBatchStatusIsTerminal(t *testing.T) {
	require.True(t, BatchStatusCompleted.IsTerminal())
	require.True(t, BatchStatusCompletedWithErrors.IsTerminal())
	require.True(t, BatchStatusFailed.IsTerminal())
	require.False(t, BatchStatusQueued.IsTerminal())
	require.False(t, BatchStatusExtracting.IsTerminal())
	require.False(t, BatchStatusProcessing.IsTerminal())
}

func TestFileStatusIsTerminal(t *testing.T) {
	require.True(t, FileStatusSuccess.IsTerminal())
	require.True(t, FileStatusFailed.IsTerminal())
	require.False(t, FileStatusPending.IsTerminal())
	require.False(t, FileStatusProcessing.IsTerminal())
}
