package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wsei-dev/university-records/internal/domain"
	apperrors "github.com/wsei-dev/university-records/pkg/util"
)

func gateApp(t *testing.T) (*fiber.App, *TokenManager) {
	t.Helper()
	tm := NewTokenManager(testAuthConfig())
	gate := NewGate(tm, zap.NewNop())

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"code": de.Code})
		},
	})
	ok := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/open", gate.Require(Anonymous()), ok)
	app.Get("/protected", gate.Require(Authenticated()), ok)
	app.Get("/admin", gate.Require(RoleRequired(domain.RoleAdmin)), func(c *fiber.Ctx) error {
		claims, found := ClaimsFromContext(c)
		require.True(t, found)
		return c.SendString(claims.Subject)
	})
	return app, tm
}

func doGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGateAnonymous(t *testing.T) {
	app, _ := gateApp(t)
	resp := doGet(t, app, "/open", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateAuthenticatedRequiresToken(t *testing.T) {
	app, tm := gateApp(t)

	resp := doGet(t, app, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, _, err := tm.Issue("student", domain.RoleUser)
	require.NoError(t, err)
	resp = doGet(t, app, "/protected", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGateRejectsBadHeader(t *testing.T) {
	app, tm := gateApp(t)
	token, _, err := tm.Issue("student", domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token) // missing Bearer prefix
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateRoleRequired(t *testing.T) {
	app, tm := gateApp(t)

	userToken, _, err := tm.Issue("student", domain.RoleUser)
	require.NoError(t, err)
	resp := doGet(t, app, "/admin", userToken)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken, _, err := tm.Issue("wsei", domain.RoleAdmin)
	require.NoError(t, err)
	resp = doGet(t, app, "/admin", adminToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
