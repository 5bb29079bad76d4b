package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sign computes the hex HMAC-SHA256 a well-behaved provider would send.
func sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := []byte("test-secret")
	body := []byte(`{"event":"completed","execution_id":"exec-1"}`)

	assert.True(t, verifySignature(secret, body, sign(secret, body)))
	assert.False(t, verifySignature(secret, body, sign([]byte("other-secret"), body)), "wrong secret")
	assert.False(t, verifySignature(secret, []byte(`{"event":"tampered"}`), sign(secret, body)), "tampered body")
	assert.False(t, verifySignature(secret, body, ""), "missing signature")
	assert.False(t, verifySignature(secret, body, "not-hex-at-all"), "garbage signature")
}

func TestRequireTenant(t *testing.T) {
	e := echo.New()

	t.Run("header present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/calls/queue/status", nil)
		req.Header.Set(tenantHeader, "tenant-1")
		c := e.NewContext(req, httptest.NewRecorder())

		tenantID, err := requireTenant(c)
		require.NoError(t, err)
		assert.Equal(t, "tenant-1", tenantID)
	})

	t.Run("header missing returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/calls/queue/status", nil)
		c := e.NewContext(req, httptest.NewRecorder())

		_, err := requireTenant(c)
		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok, "expected echo.HTTPError")
		assert.Equal(t, http.StatusBadRequest, he.Code)
		assert.Contains(t, he.Message, tenantHeader)
	})
}
