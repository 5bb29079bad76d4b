package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/ringstack/ringstack/pkg/notify"
)

// getPreferencesHandler handles GET /api/v1/notifications/preferences.
// Tenants without a stored row get the defaults (everything enabled).
func (s *Server) getPreferencesHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	prefs, err := s.notifications.Preferences(c.Request().Context(), tenantID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// updatePreferencesHandler handles PUT /api/v1/notifications/preferences.
// Only the fields present in the body change.
func (s *Server) updatePreferencesHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var patch notify.PreferencesPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prefs, err := s.notifications.UpdatePreferences(c.Request().Context(), tenantID, patch)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, prefs)
}

// notificationHistoryHandler handles GET /api/v1/notifications/history.
func (s *Server) notificationHistoryHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be a positive integer")
		}
		limit = n
	}
	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset: must be a non-negative integer")
		}
		offset = n
	}

	rows, err := s.notifications.History(c.Request().Context(), tenantID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &NotificationHistoryResponse{
		Notifications: rows,
		Count:         len(rows),
		Offset:        offset,
	})
}
