package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, int32(20), cfg.Database.MaxConns)
	require.Equal(t, "localhost:6379", cfg.Queue.Addr)
	require.Equal(t, "tenderbatch", cfg.Queue.Namespace)
	require.Equal(t, "local", cfg.Storage.Backend)
	require.Equal(t, 3, cfg.Extraction.MaxDepth)
	require.Equal(t, 3, cfg.Dispatch.Concurrency)
	require.Equal(t, 3, cfg.Dispatch.MaxAttempts)
	require.Equal(t, 30*time.Second, cfg.Dispatch.RetryDelay)
	require.Equal(t, 5*time.Minute, cfg.Worker.Timeout)
	require.Equal(t, 15*time.Second, cfg.Poller.Interval)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_URL", "postgres://app@db/tenderbatch")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("EXTRACTION_MAX_DEPTH", "5")
	t.Setenv("DISPATCH_RETRY_DELAY", "2m")
	t.Setenv("EXTRACTION_EXTENSIONS", "pdf, x83 ,")

	cfg := LoadConfig()
	require.Equal(t, "postgres://app@db/tenderbatch", cfg.Database.DSN)
	require.Equal(t, int32(50), cfg.Database.MaxConns)
	require.Equal(t, 5, cfg.Extraction.MaxDepth)
	require.Equal(t, 2*time.Minute, cfg.Dispatch.RetryDelay)
	require.Equal(t, []string{"pdf", "x83"}, cfg.Extraction.Extensions)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("DISPATCH_RETRY_DELAY", "soon")

	cfg := LoadConfig()
	require.Equal(t, int32(20), cfg.Database.MaxConns)
	require.Equal(t, 30*time.Second, cfg.Dispatch.RetryDelay)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		t.Setenv("DB_URL", "postgres://app@db/tenderbatch")
		return LoadConfig()
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Database.DSN = ""
	require.ErrorIs(t, cfg.Validate(), ErrInvalidInput)

	cfg = valid()
	cfg.Storage.Backend = "s3"
	require.ErrorIs(t, cfg.Validate(), ErrInvalidInput)

	cfg = valid()
	cfg.Dispatch.Concurrency = 0
	require.ErrorIs(t, cfg.Validate(), ErrInvalidInput)

	cfg = valid()
	cfg.Dispatch.MaxAttempts = -1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidInput)
}
