package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ringstack/ringstack/pkg/contacts"
)

// createContactHandler handles POST /api/v1/contacts.
// Creation fires the tenant's auto-engagement flows before the response is
// written; a duplicate (tenant, phone) pair is a 409.
func (s *Server) createContactHandler(c *echo.Context) error {
	tenantID, err := requireTenant(c)
	if err != nil {
		return err
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := s.contacts.Create(c.Request().Context(), contacts.CreateInput{
		TenantID:     tenantID,
		Phone:        req.Phone,
		Name:         req.Name,
		Email:        req.Email,
		Company:      req.Company,
		LeadSource:   req.LeadSource,
		Tags:         req.Tags,
		CustomFields: req.CustomFields,
	})
	if err != nil {
		return mapServiceError(err)
	}
	// An engagement flow may have enqueued an immediate call for the new
	// contact.
	s.kickProcessor(tenantID)
	return c.JSON(http.StatusCreated, &CreateContactResponse{Contact: contact})
}
