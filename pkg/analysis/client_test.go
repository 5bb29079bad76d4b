package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ringstack/ringstack/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExtractionClient(t *testing.T, server *httptest.Server, retries int) *Client {
	t.Helper()
	t.Setenv("EXTRACTION_API_KEY", "ex-key-123")
	return NewClient(&config.ExtractionConfig{
		BaseURL:        server.URL,
		APIKeyEnv:      "EXTRACTION_API_KEY",
		MaxRetries:     retries,
		InitialBackoff: time.Millisecond,
	})
}

func TestClient_Extract(t *testing.T) {
	t.Run("successful extraction", func(t *testing.T) {
		var (
			gotPath string
			gotAuth string
			gotBody ExtractRequest
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"intent_score": 80, "lead_status_tag": "Hot"}`))
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 0)
		res, err := client.Extract(context.Background(), ExtractRequest{
			PromptID:   "individual",
			Transcript: "agent: Hello",
			Variables:  map[string]interface{}{"phone": "+15550101"},
		})
		require.NoError(t, err)

		assert.Equal(t, "/v1/extract", gotPath)
		assert.Equal(t, "Bearer ex-key-123", gotAuth)
		assert.Equal(t, "individual", gotBody.PromptID)
		assert.Equal(t, "agent: Hello", gotBody.Transcript)
		assert.Equal(t, float64(80), res["intent_score"])
		assert.Equal(t, "Hot", res["lead_status_tag"])
	})

	t.Run("missing prompt id", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			t.Error("no request expected")
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 0)
		_, err := client.Extract(context.Background(), ExtractRequest{Transcript: "hi"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt id is required")
	})

	t.Run("transient errors are retried", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			_, _ = w.Write([]byte(`{"total_score": 50}`))
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 3)
		res, err := client.Extract(context.Background(), ExtractRequest{PromptID: "individual"})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		assert.Equal(t, float64(50), res["total_score"])
	})

	t.Run("rate limiting is retried", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 1)
		_, err := client.Extract(context.Background(), ExtractRequest{PromptID: "individual"})
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("client errors fail immediately", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error": "unknown prompt"}`))
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 3)
		_, err := client.Extract(context.Background(), ExtractRequest{PromptID: "ghost"})
		require.Error(t, err)
		assert.Equal(t, 1, attempts, "a 400 will fail the same way every time")

		var exErr *ExtractionError
		require.ErrorAs(t, err, &exErr)
		assert.Equal(t, http.StatusBadRequest, exErr.StatusCode)
		assert.Contains(t, exErr.Body, "unknown prompt")
	})

	t.Run("retries exhausted", func(t *testing.T) {
		attempts := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 2)
		_, err := client.Extract(context.Background(), ExtractRequest{PromptID: "individual"})
		require.Error(t, err)
		assert.Equal(t, 3, attempts, "initial attempt plus two retries")
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := newTestExtractionClient(t, server, 0)
		_, err := client.Extract(context.Background(), ExtractRequest{PromptID: "individual"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})
}

func TestRetryableStatus(t *testing.T) {
	assert.True(t, retryableStatus(http.StatusTooManyRequests))
	assert.True(t, retryableStatus(http.StatusInternalServerError))
	assert.True(t, retryableStatus(http.StatusServiceUnavailable))
	assert.False(t, retryableStatus(http.StatusBadRequest))
	assert.False(t, retryableStatus(http.StatusUnauthorized))
	assert.False(t, retryableStatus(http.StatusNotFound))
}
