package voice

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

func newTestVoiceClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	t.Setenv("VOICE_API_KEY", "test-key-123")
	client, err := NewClient(&config.VoiceConfig{
		BaseURL:   server.URL,
		APIKeyEnv: "VOICE_API_KEY",
	})
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		_, err := NewClient(nil)
		require.Error(t, err)
	})

	t.Run("missing base URL", func(t *testing.T) {
		_, err := NewClient(&config.VoiceConfig{APIKeyEnv: "VOICE_API_KEY"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base URL")
	})

	t.Run("missing API key env", func(t *testing.T) {
		t.Setenv("VOICE_API_KEY_UNSET", "")
		_, err := NewClient(&config.VoiceConfig{
			BaseURL:   "https://voice.example.com",
			APIKeyEnv: "VOICE_API_KEY_UNSET",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VOICE_API_KEY_UNSET")
	})
}

func TestClient_CreateCall(t *testing.T) {
	t.Run("successful create", func(t *testing.T) {
		var (
			gotMethod string
			gotPath   string
			gotAuth   string
			gotBody   CreateCallRequest
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"execution_id": "exec-123", "status": "queued"}`))
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		resp, err := client.CreateCall(context.Background(), &CreateCallRequest{
			AgentID:   "prov-agent-1",
			ToPhone:   "+15550101",
			FromPhone: "+15550000",
			Webhook:   "https://hooks.example.com/webhooks/voice",
			Metadata:  NewMetadata("call-1"),
		})
		require.NoError(t, err)

		assert.Equal(t, "exec-123", resp.ExecutionID)
		assert.Equal(t, "queued", resp.Status)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/call", gotPath)
		assert.Equal(t, "Bearer test-key-123", gotAuth)
		assert.Equal(t, "prov-agent-1", gotBody.AgentID)
		assert.Equal(t, "+15550101", gotBody.ToPhone)
		assert.Equal(t, "+15550000", gotBody.FromPhone)
		assert.Equal(t, "https://hooks.example.com/webhooks/voice", gotBody.Webhook)
		assert.Equal(t, "call-1", InternalCallID(gotBody.Metadata))
	})

	t.Run("validation happens before any request", func(t *testing.T) {
		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			requests++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)

		_, err := client.CreateCall(context.Background(), &CreateCallRequest{ToPhone: "+15550101"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "agent_id")

		_, err = client.CreateCall(context.Background(), &CreateCallRequest{AgentID: "prov-agent-1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "to_phone")

		assert.Zero(t, requests)
	})

	t.Run("provider error surfaces status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error": "out of provider credits"}`))
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		_, err := client.CreateCall(context.Background(), &CreateCallRequest{
			AgentID: "prov-agent-1",
			ToPhone: "+15550101",
		})
		require.Error(t, err)

		var provErr *ProviderError
		require.ErrorAs(t, err, &provErr)
		assert.Equal(t, http.StatusPaymentRequired, provErr.StatusCode)
		assert.Contains(t, provErr.Body, "out of provider credits")
	})

	t.Run("missing execution id in acknowledgment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status": "queued"}`))
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		_, err := client.CreateCall(context.Background(), &CreateCallRequest{
			AgentID: "prov-agent-1",
			ToPhone: "+15550101",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing execution_id")
	})
}

func TestClient_StopCall(t *testing.T) {
	t.Run("successful stop", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		require.NoError(t, client.StopCall(context.Background(), "exec-123"))
		assert.Equal(t, "/call/exec-123/stop", gotPath)
	})

	t.Run("provider 404 means already finished", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		assert.NoError(t, client.StopCall(context.Background(), "exec-gone"))
	})

	t.Run("provider 500 is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		err := client.StopCall(context.Background(), "exec-123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("empty execution id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		require.Error(t, client.StopCall(context.Background(), ""))
	})
}

func TestClient_GetCallStatus(t *testing.T) {
	t.Run("returns live view", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"execution_id": "exec-123", "status": "in-progress", "duration_seconds": 42}`))
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		status, err := client.GetCallStatus(context.Background(), "exec-123")
		require.NoError(t, err)

		assert.Equal(t, "/call/exec-123", gotPath)
		assert.Equal(t, "in-progress", status.Status)
		assert.Equal(t, 42, status.DurationSeconds)
	})

	t.Run("empty execution id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		_, err := client.GetCallStatus(context.Background(), "")
		require.Error(t, err)
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := newTestVoiceClient(t, server)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetCallStatus(ctx, "exec-123")
		require.Error(t, err)
	})
}

func TestMetadataRoundTrip(t *testing.T) {
	md := NewMetadata("call-42")
	assert.Equal(t, "call-42", InternalCallID(md))

	assert.Empty(t, InternalCallID(nil))
	assert.Empty(t, InternalCallID(map[string]interface{}{}))
	assert.Empty(t, InternalCallID(map[string]interface{}{"internal_call_id": 7}))
}
