// Package analysis turns completed call transcripts into lead analytics via
// an external LLM extraction service: one score sheet per call, one rolling
// aggregate per lead.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ringstack/ringstack/pkg/config"
)

// Result is the flat JSON object the extraction model returns. Mapping to
// typed columns happens in mapResult; unknown fields survive in reasoning.
type Result map[string]interface{}

// ExtractRequest is one extraction call.
type ExtractRequest struct {
	PromptID   string                 `json:"prompt_id"`
	Transcript string                 `json:"transcript"`
	Variables  map[string]interface{} `json:"variables,omitempty"`
}

// ExtractionError is a non-2xx response from the extraction service.
type ExtractionError struct {
	StatusCode int
	Body       string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction service returned %d: %s", e.StatusCode, e.Body)
}

// retryableStatus reports whether a status is worth another attempt.
// Anything else (400s, auth failures) will fail the same way every time.
func retryableStatus(status int) bool {
	return status == http.StatusTooManyRequests ||
		status == http.StatusInternalServerError ||
		status == http.StatusServiceUnavailable
}

// Client calls the extraction service. Transient failures are retried with
// exponential backoff (1s, 2s, 4s by default); permanent failures surface
// immediately.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	maxRetries     uint64
	initialBackoff time.Duration
	logger         *slog.Logger
}

// NewClient creates an extraction client from configuration. The API key is
// read from the env var named by the config at construction time.
func NewClient(cfg *config.ExtractionConfig) *Client {
	if cfg == nil {
		panic("analysis.NewClient: config is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	initial := cfg.InitialBackoff
	if initial <= 0 {
		initial = time.Second
	}
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		baseURL:        cfg.BaseURL,
		apiKey:         os.Getenv(cfg.APIKeyEnv),
		maxRetries:     uint64(retries),
		initialBackoff: initial,
		logger:         slog.With("component", "extraction"),
	}
}

// Extract posts one extraction request and returns the model's JSON object.
func (c *Client) Extract(ctx context.Context, req ExtractRequest) (Result, error) {
	if req.PromptID == "" {
		return nil, fmt.Errorf("extract: prompt id is required")
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode extraction request: %w", err)
	}

	var result Result
	attempt := 0
	op := func() error {
		attempt++
		res, err := c.doExtract(ctx, payload)
		if err != nil {
			var exErr *ExtractionError
			if errors.As(err, &exErr) && !retryableStatus(exErr.StatusCode) {
				return backoff.Permanent(err)
			}
			c.logger.Warn("Extraction attempt failed",
				"prompt_id", req.PromptID,
				"attempt", attempt,
				"error", err)
			return err
		}
		result = res
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	if err := backoff.Retry(op, backoff.WithMaxRetries(backoff.WithContext(b, ctx), c.maxRetries)); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) doExtract(ctx context.Context, payload []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ExtractionError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result Result
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode extraction response: %w", err)
	}
	return result, nil
}
