package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ringstack/ringstack/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailerClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	t.Setenv("EMAIL_API_KEY", "mail-key-123")
	client, err := NewClient(&config.MailerConfig{
		BaseURL:     server.URL,
		APIKeyEnv:   "EMAIL_API_KEY",
		FromAddress: "calls@ringstack.example",
		FromName:    "RingStack",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.MailerConfig
		wantErr string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: "config is required",
		},
		{
			name:    "missing base URL",
			cfg:     &config.MailerConfig{APIKeyEnv: "EMAIL_API_KEY", FromAddress: "calls@example.com"},
			wantErr: "base URL",
		},
		{
			name:    "missing from address",
			cfg:     &config.MailerConfig{BaseURL: "https://mail.example.com", APIKeyEnv: "EMAIL_API_KEY"},
			wantErr: "from address",
		},
		{
			name: "missing API key env",
			cfg: &config.MailerConfig{
				BaseURL:     "https://mail.example.com",
				APIKeyEnv:   "EMAIL_API_KEY_UNSET",
				FromAddress: "calls@example.com",
			},
			wantErr: "EMAIL_API_KEY_UNSET",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EMAIL_API_KEY", "mail-key-123")
			_, err := NewClient(tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_Send(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		var (
			gotMethod string
			gotPath   string
			gotAuth   string
			gotBody   map[string]interface{}
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"message_id": "m-1"}`))
		}))
		defer server.Close()

		client := newTestMailerClient(t, server)
		err := client.Send(context.Background(), &Message{
			To:        "jane@acme.io",
			Subject:   "Your credits are running low",
			Template:  "credit_low",
			Variables: map[string]interface{}{"balance": 12},
		})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/v1/send", gotPath)
		assert.Equal(t, "Bearer mail-key-123", gotAuth)
		assert.Equal(t, "calls@ringstack.example", gotBody["from_address"])
		assert.Equal(t, "RingStack", gotBody["from_name"])
		assert.Equal(t, "jane@acme.io", gotBody["to"])
		assert.Equal(t, "Your credits are running low", gotBody["subject"])
		assert.Equal(t, "credit_low", gotBody["template"])
		assert.Equal(t, map[string]interface{}{"balance": float64(12)}, gotBody["variables"])
	})

	t.Run("success without message id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		client := newTestMailerClient(t, server)
		err := client.Send(context.Background(), &Message{To: "jane@acme.io", Template: "welcome"})
		assert.NoError(t, err)
	})

	t.Run("provider error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error": "unknown template"}`))
		}))
		defer server.Close()

		client := newTestMailerClient(t, server)
		err := client.Send(context.Background(), &Message{To: "jane@acme.io", Template: "missing"})
		require.Error(t, err)

		var sendErr *SendError
		require.ErrorAs(t, err, &sendErr)
		assert.Equal(t, http.StatusUnprocessableEntity, sendErr.StatusCode)
		assert.Contains(t, sendErr.Body, "unknown template")
	})

	t.Run("validation happens before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestMailerClient(t, server)

		err := client.Send(context.Background(), &Message{Template: "welcome"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recipient")

		err = client.Send(context.Background(), &Message{To: "jane@acme.io"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "template")

		assert.Zero(t, requests)
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestMailerClient(t, server)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := client.Send(ctx, &Message{To: "jane@acme.io", Template: "welcome"})
		require.Error(t, err)
	})
}
