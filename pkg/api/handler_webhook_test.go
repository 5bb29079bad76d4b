package api

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringstack/ringstack/pkg/calls"
)

// recordingWebhookProcessor captures what made it past the edge checks.
type recordingWebhookProcessor struct {
	events []*calls.WebhookEvent
	err    error
}

func (p *recordingWebhookProcessor) ProcessWebhook(_ context.Context, ev *calls.WebhookEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func newWebhookContext(body []byte, signature string) (*echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/voice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestVoiceWebhookRejectsBadSignature(t *testing.T) {
	proc := &recordingWebhookProcessor{}
	s := &Server{webhooks: proc, webhookSecret: []byte("secret")}
	body := []byte(`{"event":"completed","execution_id":"exec-1","status":"done"}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"missing signature", ""},
		{"wrong secret", sign([]byte("other"), body)},
		{"signature of different body", sign([]byte("secret"), []byte(`{}`))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newWebhookContext(body, tt.signature)
			err := s.voiceWebhookHandler(c)
			require.Error(t, err)
			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "expected echo.HTTPError")
			assert.Equal(t, http.StatusUnauthorized, he.Code)
		})
	}
	assert.Empty(t, proc.events, "unauthenticated events must never reach processing")
}

func TestVoiceWebhookRejectsMalformedBody(t *testing.T) {
	proc := &recordingWebhookProcessor{}
	s := &Server{webhooks: proc, webhookSecret: []byte("secret")}
	body := []byte(`{not json at all`)

	c, _ := newWebhookContext(body, sign([]byte("secret"), body))
	err := s.voiceWebhookHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Empty(t, proc.events)
}

func TestVoiceWebhookAcksAfterProcessing(t *testing.T) {
	proc := &recordingWebhookProcessor{}
	s := &Server{webhooks: proc, webhookSecret: []byte("secret")}
	body := []byte(`{"event":"completed","execution_id":"exec-1","status":"done","duration_seconds":61}`)

	c, rec := newWebhookContext(body, sign([]byte("secret"), body))
	require.NoError(t, s.voiceWebhookHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
	require.Len(t, proc.events, 1)
	assert.Equal(t, "exec-1", proc.events[0].ExecutionID)
	assert.Equal(t, 61, proc.events[0].DurationSeconds)
}

func TestVoiceWebhookProcessingErrorIsRetryable(t *testing.T) {
	// 5xx tells the provider to retry; 2xx would silently drop the event.
	proc := &recordingWebhookProcessor{err: errors.New("database unavailable")}
	s := &Server{webhooks: proc, webhookSecret: []byte("secret")}
	body := []byte(`{"event":"completed","execution_id":"exec-1","status":"done"}`)

	c, _ := newWebhookContext(body, sign([]byte("secret"), body))
	err := s.voiceWebhookHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.GreaterOrEqual(t, he.Code, http.StatusInternalServerError)
}
