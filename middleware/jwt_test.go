package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mendokusaisai/kodomo-wallet/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"profileId":  c.Locals("profileId"),
			"authUserId": c.Locals("authUserId"),
		})
	})
	return app
}

func TestGeneratedTokenPassesMiddleware(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	token, err := GenerateJWT(42, "auth-sub-1", "Mio", "parent")
	require.NoError(t, err)

	app := newAuthedApp()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "auth-sub-1")
	assert.Contains(t, string(body), "42")
}

func TestTokenWithoutProfilePassesWithZeroProfileID(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	// A fresh login has no profile yet; it still needs a session so it can
	// accept a child invite.
	token, err := GenerateJWT(0, "auth-sub-new", "", "")
	require.NoError(t, err)

	app := newAuthedApp()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"profileId":0`)
}

func TestMiddlewareRejectsMissingOrMalformedHeader(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newAuthedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsWrongKeyToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	claims := jwt.MapClaims{
		"profileId":  float64(1),
		"authUserId": "auth-sub-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	app := newAuthedApp()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+forged)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsNonStringSubjectClaim(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	// Validly signed token with a malformed authUserId claim must be
	// rejected, not crash the handler.
	claims := jwt.MapClaims{
		"profileId":  float64(1),
		"authUserId": 12345,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	app := newAuthedApp()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
