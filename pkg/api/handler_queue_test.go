package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ringstack/ringstack/pkg/queue"
)

// stubQueueRunner records how passes were requested.
type stubQueueRunner struct {
	smartResult     queue.PassResult
	immediateResult queue.PassResult
	immediateTenant string
	immediateCalls  int
}

func (r *stubQueueRunner) ProcessSmart(context.Context) (queue.PassResult, error) {
	return r.smartResult, nil
}

func (r *stubQueueRunner) ProcessImmediate(_ context.Context, tenantID string) (queue.PassResult, error) {
	r.immediateTenant = tenantID
	r.immediateCalls++
	return r.immediateResult, nil
}

func TestProcessQueueReturnsPassSummary(t *testing.T) {
	runner := &stubQueueRunner{smartResult: queue.PassResult{
		Skipped:    true,
		SkipReason: queue.SkipReasonSchedule,
	}}
	s := &Server{processor: runner}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/queue/process", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, s.processQueueHandler(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var result queue.PassResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Skipped)
	assert.Equal(t, queue.SkipReasonSchedule, result.SkipReason)
}

func TestProcessImmediateBodyIsOptional(t *testing.T) {
	t.Run("no body processes all tenants", func(t *testing.T) {
		runner := &stubQueueRunner{}
		s := &Server{processor: runner}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/queue/process/immediate", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, s.processImmediateHandler(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, runner.immediateCalls)
		assert.Empty(t, runner.immediateTenant)
	})

	t.Run("tenant_id narrows the pass", func(t *testing.T) {
		runner := &stubQueueRunner{}
		s := &Server{processor: runner}

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/queue/process/immediate",
			strings.NewReader(`{"tenant_id":"tenant-7"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		require.NoError(t, s.processImmediateHandler(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tenant-7", runner.immediateTenant)
	})
}
