package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mlevchenko/tenderbatch/internal/common"
)

// Client talks to the external extraction worker, the process that owns the
// document parsers and the language-model calls. Failures from it are always
// per-item failures, never cause to abort a whole batch.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// ProcessResult is the worker-defined outcome envelope. The classified error
// tag is preserved verbatim for retry-eligibility accounting.
type ProcessResult struct {
	Status   string `json:"status"`
	ErrorTag string `json:"error_tag,omitempty"`
	Message  string `json:"message,omitempty"`
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ProcessFile asks the worker to parse one document.
func (c *Client) ProcessFile(ctx context.Context, docID uuid.UUID) (*ProcessResult, error) {
	return c.post(ctx, "/process-file", map[string]string{"doc_id": docID.String()})
}

// AggregateBatch asks the worker to aggregate a completed batch.
func (c *Client) AggregateBatch(ctx context.Context, batchID uuid.UUID) (*ProcessResult, error) {
	return c.post(ctx, "/aggregate-batch", map[string]string{"batch_id": batchID.String()})
}

// Health reports whether the worker is ready.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return common.NewAppError("WORKER_UNAVAILABLE", "worker health check failed", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return common.NewAppError("WORKER_UNAVAILABLE",
			fmt.Sprintf("worker health returned %d", resp.StatusCode), common.ErrUnavailable)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*ProcessResult, error) {
	start := time.Now()
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("worker request failed", "path", path, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.NewAppError("WORKER_REQUEST_FAILED", "POST "+path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("worker returned non-2xx", "path", path, "status", resp.StatusCode,
			"body_bytes", len(raw), "elapsed_ms", time.Since(start).Milliseconds())
		return nil, common.NewAppError("WORKER_REJECTED",
			fmt.Sprintf("POST %s returned %d", path, resp.StatusCode), common.ErrUnavailable)
	}

	var result ProcessResult
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &result); err != nil {
			return nil, fmt.Errorf("decode worker response: %w", err)
		}
	}
	return &result, nil
}
