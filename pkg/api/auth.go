package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

const (
	// tenantHeader carries the tenant identity set by the upstream auth proxy.
	tenantHeader = "X-Tenant-ID"

	// signatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
	signatureHeader = "X-Ringstack-Signature"
)

// requireTenant extracts the tenant id from proxy headers. Tenant-scoped
// handlers call this first; a missing header never reaches a service.
func requireTenant(c *echo.Context) (string, error) {
	tenantID := c.Request().Header.Get(tenantHeader)
	if tenantID == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, tenantHeader+" header is required")
	}
	return tenantID, nil
}

// verifySignature checks a hex-encoded HMAC-SHA256 signature over body.
// Comparison is constant-time.
func verifySignature(secret, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
