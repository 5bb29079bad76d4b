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

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/pkg/calls"
	"github.com/ringstack/ringstack/pkg/services"
)

// stubCallService returns canned Initiate results and records the input.
type stubCallService struct {
	result    *calls.InitiateResult
	err       error
	lastInput calls.InitiateInput
}

func (s *stubCallService) Initiate(_ context.Context, in calls.InitiateInput) (*calls.InitiateResult, error) {
	s.lastInput = in
	return s.result, s.err
}

func (s *stubCallService) Stop(context.Context, string, string) (*ent.Call, error) {
	return nil, services.ErrNotFound
}

func (s *stubCallService) Get(context.Context, string, string) (*calls.Detail, error) {
	return nil, services.ErrNotFound
}

func (s *stubCallService) QueueStatus(context.Context, string) (*calls.QueueStatus, error) {
	return &calls.QueueStatus{}, nil
}

func newInitiateContext(body string, tenantID string) (*echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calls/initiate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if tenantID != "" {
		req.Header.Set(tenantHeader, tenantID)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInitiateCallDispatchesWhenSlotFree(t *testing.T) {
	svc := &stubCallService{result: &calls.InitiateResult{CallID: "call-1"}}
	s := &Server{calls: svc}

	c, rec := newInitiateContext(`{"agent_id":"agent-1","contact_phone":"+15550001111"}`, "tenant-1")
	require.NoError(t, s.initiateCallHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp InitiateCallResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "call-1", resp.CallID)
	assert.Equal(t, "initiated", resp.Status)

	assert.Equal(t, "tenant-1", svc.lastInput.TenantID, "tenant comes from the header, not the body")
	assert.Equal(t, "agent-1", svc.lastInput.AgentID)
}

func TestInitiateCallQueuesAtCapacity(t *testing.T) {
	// Hitting the concurrency cap is flow control: the caller gets a queue
	// position and a 202, never a rate-limit rejection.
	svc := &stubCallService{result: &calls.InitiateResult{
		Queued:               true,
		QueueItemID:          "qi-1",
		QueuePosition:        3,
		EstimatedWaitMinutes: 9,
		Reason:               "tenant concurrency limit reached",
	}}
	s := &Server{calls: svc}

	c, rec := newInitiateContext(`{"agent_id":"agent-1","contact_phone":"+15550001111"}`, "tenant-1")
	require.NoError(t, s.initiateCallHandler(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.NotEqual(t, http.StatusTooManyRequests, rec.Code)

	var resp QueuedCallResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Queued)
	assert.Equal(t, "qi-1", resp.QueueItemID)
	assert.Equal(t, 3, resp.QueuePosition)
	assert.Equal(t, 9, resp.EstimatedWaitMinutes)
	assert.Equal(t, "tenant concurrency limit reached", resp.Reason)
}

func TestInitiateCallRequiresTenantHeader(t *testing.T) {
	s := &Server{calls: &stubCallService{}}

	c, _ := newInitiateContext(`{"agent_id":"agent-1","contact_phone":"+15550001111"}`, "")
	err := s.initiateCallHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestInitiateCallOutOfCredits(t *testing.T) {
	svc := &stubCallService{err: services.ErrInsufficientCredits}
	s := &Server{calls: svc}

	c, _ := newInitiateContext(`{"agent_id":"agent-1","contact_phone":"+15550001111"}`, "tenant-1")
	err := s.initiateCallHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusPaymentRequired, he.Code)
}

func TestStopCallRequiresID(t *testing.T) {
	s := &Server{calls: &stubCallService{}}
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/calls//stop", nil)
	req.Header.Set(tenantHeader, "tenant-1")
	c := e.NewContext(req, httptest.NewRecorder())

	err := s.stopCallHandler(c)
	require.Error(t, err)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
