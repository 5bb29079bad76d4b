// Package voice is the HTTP client for the AI voice provider. It starts and
// stops provider call executions; everything the provider reports back comes
// in asynchronously through the webhook endpoint, not through this client.
package voice

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

	"github.com/ringstack/ringstack/pkg/config"
)

// metadataCallIDKey is the metadata field carrying our internal call id; the
// provider echoes metadata back on every webhook, which lets completion
// events be attributed even when the execution id is not yet persisted.
const metadataCallIDKey = "internal_call_id"

// Client talks to the voice provider API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Client from configuration. The API key is read from the
// environment variable named in the config, never from the config file.
func NewClient(cfg *config.VoiceConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("voice config is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("voice provider base URL is required")
	}
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("voice provider API key not set (env %s)", cfg.APIKeyEnv)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.With("component", "voice"),
	}, nil
}

// ProviderError is any non-success answer from the provider, kept verbatim
// for logs. The API layer maps it to 502.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("voice provider returned %d: %s", e.StatusCode, e.Body)
}

// CreateCallRequest starts one outbound call execution.
type CreateCallRequest struct {
	// AgentID is the provider-side agent (persona) identifier.
	AgentID string `json:"agent_id"`

	// ToPhone is the destination in E.164 format.
	ToPhone string `json:"to_phone"`

	// FromPhone is the caller id; must be a number provisioned with the provider.
	FromPhone string `json:"from_phone,omitempty"`

	// Webhook receives lifecycle and completion events for this execution.
	Webhook string `json:"webhook,omitempty"`

	// Variables are interpolated into the agent prompt as {{variable}}.
	Variables map[string]interface{} `json:"variables,omitempty"`

	// Metadata is echoed back verbatim on every webhook.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// CreateCallResponse is the provider's acknowledgment of a started call.
type CreateCallResponse struct {
	ExecutionID string `json:"execution_id"`
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
}

// CallStatus is the provider's live view of an execution.
type CallStatus struct {
	ExecutionID     string `json:"execution_id"`
	Status          string `json:"status"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
	AnsweredBy      string `json:"answered_by,omitempty"`
}

// NewMetadata builds the webhook-echoed metadata for a call.
func NewMetadata(internalCallID string) map[string]interface{} {
	return map[string]interface{}{metadataCallIDKey: internalCallID}
}

// InternalCallID extracts our call id from echoed webhook metadata.
func InternalCallID(metadata map[string]interface{}) string {
	if metadata == nil {
		return ""
	}
	if v, ok := metadata[metadataCallIDKey].(string); ok {
		return v
	}
	return ""
}

// CreateCall starts an outbound call and returns the provider execution id.
func (c *Client) CreateCall(ctx context.Context, req *CreateCallRequest) (*CreateCallResponse, error) {
	if req.AgentID == "" {
		return nil, fmt.Errorf("agent_id is required")
	}
	if req.ToPhone == "" {
		return nil, fmt.Errorf("to_phone is required")
	}

	var resp CreateCallResponse
	if err := c.request(ctx, http.MethodPost, "/call", req, &resp); err != nil {
		return nil, err
	}
	if resp.ExecutionID == "" {
		return nil, &ProviderError{StatusCode: http.StatusOK, Body: "response missing execution_id"}
	}

	c.logger.Info("Provider call created",
		"execution_id", resp.ExecutionID,
		"to_phone", req.ToPhone,
		"status", resp.Status)
	return &resp, nil
}

// StopCall asks the provider to terminate an execution. A provider 404 is
// swallowed: the call already ended and the completion webhook is en route,
// which is exactly what the caller wanted.
func (c *Client) StopCall(ctx context.Context, executionID string) error {
	if executionID == "" {
		return fmt.Errorf("execution_id is required")
	}

	err := c.request(ctx, http.MethodPost, "/call/"+executionID+"/stop", nil, nil)
	var provErr *ProviderError
	if errors.As(err, &provErr) && provErr.StatusCode == http.StatusNotFound {
		c.logger.Info("Stop requested for finished execution", "execution_id", executionID)
		return nil
	}
	if err != nil {
		return err
	}

	c.logger.Info("Provider call stopped", "execution_id", executionID)
	return nil
}

// GetCallStatus fetches the provider's live view of an execution.
func (c *Client) GetCallStatus(ctx context.Context, executionID string) (*CallStatus, error) {
	if executionID == "" {
		return nil, fmt.Errorf("execution_id is required")
	}

	var resp CallStatus
	if err := c.request(ctx, http.MethodGet, "/call/"+executionID, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// request performs one JSON round-trip against the provider API.
func (c *Client) request(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("voice provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Bounded read: provider errors should never blow up memory or logs.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProviderError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode provider response: %w", err)
		}
	}
	return nil
}
