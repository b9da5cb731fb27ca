package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mlevchenko/tenderbatch/internal/common"
)

func TestProcessFileDecodesResult(t *testing.T) {
	docID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/process-file", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, docID.String(), body["doc_id"])

		json.NewEncoder(w).Encode(ProcessResult{Status: "success"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slog.Default())
	res, err := c.ProcessFile(context.Background(), docID)
	require.NoError(t, err)
	require.Equal(t, "success", res.Status)
}

func TestProcessFilePreservesErrorTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ProcessResult{
			Status:   "failed",
			ErrorTag: "PARSE_ERROR",
			Message:  "unreadable GAEB payload",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slog.Default())
	res, err := c.ProcessFile(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, "failed", res.Status)
	require.Equal(t, "PARSE_ERROR", res.ErrorTag)
}

func TestAggregateBatchSendsBatchID(t *testing.T) {
	batchID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/aggregate-batch", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, batchID.String(), body["batch_id"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slog.Default())
	res, err := c.AggregateBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestNon2xxIsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slog.Default())
	_, err := c.ProcessFile(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrUnavailable)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "WORKER_REJECTED", appErr.Code)
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second, slog.Default())
	_, err := c.ProcessFile(context.Background(), uuid.New())
	require.Error(t, err)

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "WORKER_REQUEST_FAILED", appErr.Code)
}

func TestHealth(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slog.Default())
	require.NoError(t, c.Health(context.Background()))

	healthy = false
	require.ErrorIs(t, c.Health(context.Background()), common.ErrUnavailable)
}
