package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// processQueueHandler handles POST /api/v1/queue/process, the external cron
// entry point. The response is the pass summary even when the schedule gate
// or the advisory lock skipped the pass.
func (s *Server) processQueueHandler(c *echo.Context) error {
	result, err := s.processor.ProcessSmart(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// processImmediateHandler handles POST /api/v1/queue/process/immediate.
// The body is optional; `{"tenant_id": "..."}` narrows the pass.
func (s *Server) processImmediateHandler(c *echo.Context) error {
	var req ProcessImmediateRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	result, err := s.processor.ProcessImmediate(c.Request().Context(), req.TenantID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// kickProcessor runs a narrowed immediate pass off the request goroutine so
// freshly enqueued work dispatches without waiting for the next cron tick.
// The pass is best-effort; the enqueue already succeeded.
func (s *Server) kickProcessor(tenantID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := s.processor.ProcessImmediate(ctx, tenantID); err != nil {
			slog.Warn("Post-enqueue queue pass failed", "tenant_id", tenantID, "error", err)
		}
	}()
}

// scheduleHandler handles GET /api/v1/queue/schedule.
func (s *Server) scheduleHandler(c *echo.Context) error {
	now := time.Now()
	snap, err := s.cache.Current(c.Request().Context(), now)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ScheduleResponse{
		NextWake: snap.NextWake(now),
		Snapshot: snap,
	})
}

// refreshScheduleHandler handles POST /api/v1/queue/schedule/refresh,
// rebuilding the snapshot from the database regardless of its age.
func (s *Server) refreshScheduleHandler(c *echo.Context) error {
	snap, err := s.cache.Refresh(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &ScheduleResponse{
		NextWake: snap.NextWake(time.Now()),
		Snapshot: snap,
	})
}
