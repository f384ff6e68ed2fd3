package admin

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wsei-dev/university-records/internal/api/dto"
	"github.com/wsei-dev/university-records/internal/auth"
	"github.com/wsei-dev/university-records/internal/config"
	"github.com/wsei-dev/university-records/internal/domain"
)

func testToken(t *testing.T, username string, role domain.Role) string {
	t.Helper()
	tokens := auth.NewTokenManager(config.AuthConfig{
		JWTSecret:             "test-secret-0123456789abcdef0123456789",
		Issuer:                "university-records",
		Audience:              "university-records-clients",
		AccessTokenTTLMinutes: 5,
	})
	token, _, err := tokens.Issue(username, role)
	require.NoError(t, err)
	return token
}

// newAdminApp serves the admin pages against a stubbed records API.
func newAdminApp(t *testing.T, api http.HandlerFunc) *fiber.App {
	t.Helper()
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	handlers := NewHandlers(
		NewClient(server.URL),
		NewSessions(config.AdminConfig{SessionTTLMinutes: 5}),
		zap.NewNop(),
	)

	app := fiber.New(fiber.Config{Views: NewViewEngine()})
	RegisterRoutes(app, handlers)
	return app
}

// stubRecordsAPI answers the token and list endpoints the pages call.
func stubRecordsAPI(t *testing.T, token string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/token":
			var req dto.TokenRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Password != "wsei" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			_ = json.NewEncoder(w).Encode(dto.TokenResponse{Token: token})
		case r.URL.Path == "/students":
			_ = json.NewEncoder(w).Encode([]dto.StudentResponse{{ID: 1, Name: "Ada", Email: "ada@example.edu"}})
		case r.URL.Path == "/courses":
			_ = json.NewEncoder(w).Encode([]dto.CourseResponse{})
		case r.URL.Path == "/enrollments":
			_ = json.NewEncoder(w).Encode([]dto.EnrollmentResponse{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func login(t *testing.T, app *fiber.App, password string) (*http.Response, string) {
	t.Helper()
	form := url.Values{"username": {"wsei"}, "password": {password}}
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var cookie string
	for _, c := range resp.Cookies() {
		if c.Name == "admin_session" {
			cookie = c.Name + "=" + c.Value
		}
	}
	return resp, cookie
}

func getPage(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAnonymousVisitorIsSentToLogin(t *testing.T) {
	app := newAdminApp(t, stubRecordsAPI(t, testToken(t, "wsei", domain.RoleAdmin)))

	resp := getPage(t, app, "/", "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestLoginCachesTokenAndShowsDashboard(t *testing.T) {
	app := newAdminApp(t, stubRecordsAPI(t, testToken(t, "wsei", domain.RoleAdmin)))

	resp, cookie := login(t, app, "wsei")
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
	require.NotEmpty(t, cookie)

	page := getPage(t, app, "/", cookie)
	defer page.Body.Close()
	require.Equal(t, http.StatusOK, page.StatusCode)
	body, err := io.ReadAll(page.Body)
	require.NoError(t, err)
	// The identity decoded from the token shows in the layout.
	require.Contains(t, string(body), "wsei")
}

func TestLoginWithBadPasswordStaysOnForm(t *testing.T) {
	app := newAdminApp(t, stubRecordsAPI(t, testToken(t, "wsei", domain.RoleAdmin)))

	resp, cookie := login(t, app, "wrong")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, cookie)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "wrong username or password")
}

func TestNonAdminIsDeniedMutatingPages(t *testing.T) {
	app := newAdminApp(t, stubRecordsAPI(t, testToken(t, "student", domain.RoleUser)))

	resp, cookie := login(t, app, "wsei")
	resp.Body.Close()
	require.NotEmpty(t, cookie)

	page := getPage(t, app, "/students/new", cookie)
	defer page.Body.Close()
	require.Equal(t, http.StatusFound, page.StatusCode)
	require.Equal(t, "/denied", page.Header.Get("Location"))

	// Read-only pages remain reachable.
	index := getPage(t, app, "/students", cookie)
	defer index.Body.Close()
	require.Equal(t, http.StatusOK, index.StatusCode)
}

func TestLogoutClearsSession(t *testing.T) {
	app := newAdminApp(t, stubRecordsAPI(t, testToken(t, "wsei", domain.RoleAdmin)))

	_, cookie := login(t, app, "wsei")
	require.NotEmpty(t, cookie)

	req := httptest.NewRequest(fiber.MethodPost, "/logout", nil)
	req.Header.Set("Cookie", cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)

	page := getPage(t, app, "/", cookie)
	defer page.Body.Close()
	require.Equal(t, http.StatusFound, page.StatusCode)
	require.Equal(t, "/login", page.Header.Get("Location"))
}
