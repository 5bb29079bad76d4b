package api

import (
	"encoding/json"
	"io"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/ringstack/ringstack/pkg/calls"
)

// maxWebhookBodyBytes caps provider callback bodies; full transcripts fit
// comfortably under this.
const maxWebhookBodyBytes = 1 << 20

// voiceWebhookHandler handles POST /api/v1/webhooks/voice.
// The signature is verified over the raw body before parsing, and 200 is
// returned only after the event is persisted: any processing error surfaces
// as a 5xx so the provider retries.
func (s *Server) voiceWebhookHandler(c *echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodyBytes+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	if len(body) > maxWebhookBodyBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "webhook body too large")
	}

	if !verifySignature(s.webhookSecret, body, c.Request().Header.Get(signatureHeader)) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid webhook signature")
	}

	var ev calls.WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload: "+err.Error())
	}

	if err := s.webhooks.ProcessWebhook(c.Request().Context(), &ev); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &WebhookAck{Status: "ok"})
}
