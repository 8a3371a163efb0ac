package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medisage/medisage_backend/pkg/token"
)

func newApp(t *testing.T) (*fiber.App, *token.Manager) {
	t.Helper()

	mgr, err := token.New(token.Config{
		Issuer:    "medisage-test",
		Audience:  "medisage-app",
		AccessTTL: time.Hour,
	}, paseto.NewV4SymmetricKey())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", RequireKind(mgr, token.KindUser), func(c fiber.Ctx) error {
		claims, ok := ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.SendString(claims.AccountID)
	})
	return app, mgr
}

func request(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRequireKindAcceptsRawToken(t *testing.T) {
	app, mgr := newApp(t)

	tok, err := mgr.Issue("user-123", token.KindUser)
	require.NoError(t, err)

	resp := request(t, app, tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireKindAcceptsBearerPrefix(t *testing.T) {
	app, mgr := newApp(t)

	tok, err := mgr.Issue("user-123", token.KindUser)
	require.NoError(t, err)

	resp := request(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireKindRejectsMissingToken(t *testing.T) {
	app, _ := newApp(t)

	resp := request(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireKindRejectsGarbage(t *testing.T) {
	app, _ := newApp(t)

	resp := request(t, app, "v4.local.notatoken")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireKindRejectsWrongKind(t *testing.T) {
	app, mgr := newApp(t)

	tok, err := mgr.Issue("clinic-1", token.KindClinic)
	require.NoError(t, err)

	resp := request(t, app, tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
