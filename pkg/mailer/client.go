// Package mailer is the HTTP client for the transactional email provider.
// It makes exactly one delivery attempt per message; retry policy belongs to
// the caller (pkg/notify deliberately has none, failed rows are the audit
// trail).
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/ringstack/ringstack/pkg/config"
)

// Client talks to the email provider API.
type Client struct {
	baseURL     string
	apiKey      string
	fromAddress string
	fromName    string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient builds a Client from configuration. The API key is read from the
// environment variable named in the config, never from the config file.
func NewClient(cfg *config.MailerConfig) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mailer config is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("mail provider base URL is required")
	}
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("mail from address is required")
	}
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("mail provider API key not set (env %s)", cfg.APIKeyEnv)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:     cfg.BaseURL,
		apiKey:      apiKey,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      slog.With("component", "mailer"),
	}, nil
}

// SendError is any non-success answer from the mail provider.
type SendError struct {
	StatusCode int
	Body       string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("mail provider returned %d: %s", e.StatusCode, e.Body)
}

// Message is one transactional email. Template names a provider-side
// template; Variables are interpolated into it.
type Message struct {
	To        string                 `json:"to"`
	Subject   string                 `json:"subject"`
	Template  string                 `json:"template"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type sendPayload struct {
	FromAddress string                 `json:"from_address"`
	FromName    string                 `json:"from_name,omitempty"`
	To          string                 `json:"to"`
	Subject     string                 `json:"subject"`
	Template    string                 `json:"template"`
	Variables   map[string]interface{} `json:"variables,omitempty"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
}

// Send delivers one message. One attempt, no retries: a failure is final as
// far as this client is concerned.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	if msg.To == "" {
		return fmt.Errorf("recipient is required")
	}
	if msg.Template == "" {
		return fmt.Errorf("template is required")
	}

	payload := sendPayload{
		FromAddress: c.fromAddress,
		FromName:    c.fromName,
		To:          msg.To,
		Subject:     msg.Subject,
		Template:    msg.Template,
		Variables:   msg.Variables,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/send", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read provider response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &SendError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out sendResponse
	if err := json.Unmarshal(body, &out); err == nil && out.MessageID != "" {
		c.logger.Info("Email delivered", "to", msg.To, "template", msg.Template, "message_id", out.MessageID)
	} else {
		c.logger.Info("Email delivered", "to", msg.To, "template", msg.Template)
	}
	return nil
}
