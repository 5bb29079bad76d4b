package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ringstack/ringstack/pkg/calls"
)

// initiateCallHandler handles POST /api/v1/calls/initiate.
// Capacity is flow control, not failure: a free slot dispatches now (200),
// a full one queues at direct priority (202). This endpoint never says 429.
func (s *Server) initiateCallHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req InitiateCallRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := s.calls.Initiate(c.Request().Context(), calls.InitiateInput{
		TenantID:     tenantID,
		AgentID:      req.AgentID,
		ContactPhone: req.ContactPhone,
		ContactName:  req.ContactName,
		ContactID:    req.ContactID,
		Variables:    req.Variables,
	})
	if err != nil {
		return mapServiceError(err)
	}

	if res.Queued {
		return c.JSON(http.StatusAccepted, &QueuedCallResponse{
			Queued:               true,
			QueueItemID:          res.QueueItemID,
			QueuePosition:        res.QueuePosition,
			EstimatedWaitMinutes: res.EstimatedWaitMinutes,
			Reason:               res.Reason,
		})
	}
	return c.JSON(http.StatusOK, &InitiateCallResponse{
		CallID: res.CallID,
		Status: "initiated",
	})
}

// stopCallHandler handles POST /api/v1/calls/:id/stop.
func (s *Server) stopCallHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}
	callID := c.Param("id")
	if callID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "call id is required")
	}

	stopped, err := s.calls.Stop(c.Request().Context(), tenantID, callID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StopCallResponse{
		CallID:  stopped.ID,
		Status:  string(stopped.Status),
		Message: "Call stop requested",
	})
}

// getCallHandler handles GET /api/v1/calls/:id.
func (s *Server) getCallHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}
	callID := c.Param("id")
	if callID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "call id is required")
	}

	detail, err := s.calls.Get(c.Request().Context(), tenantID, callID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// queueStatusHandler handles GET /api/v1/calls/queue/status.
func (s *Server) queueStatusHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	status, err := s.calls.QueueStatus(c.Request().Context(), tenantID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, status)
}
