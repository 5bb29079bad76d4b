package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ringstack/ringstack/ent"
	"github.com/ringstack/ringstack/pkg/queue"
)

// campaignTransition is the shared shape of Activate and Pause.
type campaignTransition func(ctx context.Context, tenantID, campaignID string) (*ent.Campaign, error)

// createCampaignHandler handles POST /api/v1/campaigns.
// Window validation happens in the service; midnight-crossing windows come
// back as 400.
func (s *Server) createCampaignHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req CreateCampaignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	camp, err := s.campaigns.Create(c.Request().Context(), queue.CreateCampaignInput{
		TenantID:      tenantID,
		AgentID:       req.AgentID,
		Name:          req.Name,
		Timezone:      req.Timezone,
		FirstCallTime: req.FirstCallTime,
		LastCallTime:  req.LastCallTime,
		FromPhone:     req.FromPhone,
		StartDate:     req.StartDate,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, camp)
}

// activateCampaignHandler handles POST /api/v1/campaigns/:id/activate.
func (s *Server) activateCampaignHandler(c *echo.Context) error {
	return s.transitionCampaign(c, s.campaigns.Activate)
}

// pauseCampaignHandler handles POST /api/v1/campaigns/:id/pause.
func (s *Server) pauseCampaignHandler(c *echo.Context) error {
	return s.transitionCampaign(c, s.campaigns.Pause)
}

func (s *Server) transitionCampaign(c *echo.Context, transition campaignTransition) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}
	campaignID := c.Param("id")
	if campaignID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "campaign id is required")
	}

	camp, err := transition(c.Request().Context(), tenantID, campaignID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, camp)
}

// enqueueCampaignHandler handles POST /api/v1/campaigns/:id/enqueue.
func (s *Server) enqueueCampaignHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}
	campaignID := c.Param("id")
	if campaignID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "campaign id is required")
	}

	var req EnqueueContactsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enqueued, err := s.campaigns.EnqueueContacts(c.Request().Context(), tenantID, campaignID, req.Contacts)
	if err != nil {
		return mapServiceError(err)
	}
	if enqueued > 0 {
		s.kickProcessor(tenantID)
	}
	return c.JSON(http.StatusOK, &EnqueueContactsResponse{
		CampaignID: campaignID,
		Enqueued:   enqueued,
	})
}
