package admin

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/wsei-dev/university-records/internal/auth"
	"github.com/wsei-dev/university-records/internal/config"
)

// Session keys for the cached API token and the decoded identity.
const (
	sessionKeyToken = "jwt_token"
	sessionKeyUser  = "user_name"
	sessionKeyRole  = "user_role"
)

// Sessions wraps the cookie-backed session store caching the API token.
type Sessions struct {
	store *session.Store
}

// NewSessions builds the session store from admin configuration.
func NewSessions(cfg config.AdminConfig) *Sessions {
	return &Sessions{
		store: session.New(session.Config{
			Expiration:     cfg.SessionTTL(),
			KeyLookup:      "cookie:admin_session",
			CookieHTTPOnly: true,
			CookieSecure:   cfg.CookieSecure,
			CookieSameSite: "Lax",
		}),
	}
}

// SignIn caches the token and the identity decoded from its payload. The
// claims are read without signature verification; the API verifies on every
// request, the admin only needs them for display and menu gating.
func (s *Sessions) SignIn(c *fiber.Ctx, token string) error {
	name, role := identityFromToken(token)

	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionKeyToken, token)
	sess.Set(sessionKeyUser, name)
	sess.Set(sessionKeyRole, role)
	return sess.Save()
}

// SignOut destroys the session.
func (s *Sessions) SignOut(c *fiber.Ctx) error {
	sess, err := s.store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

// Token returns the cached API token, or "" when not signed in.
func (s *Sessions) Token(c *fiber.Ctx) string {
	return s.getString(c, sessionKeyToken)
}

// User returns the signed-in username.
func (s *Sessions) User(c *fiber.Ctx) string {
	return s.getString(c, sessionKeyUser)
}

// Role returns the signed-in role.
func (s *Sessions) Role(c *fiber.Ctx) string {
	return s.getString(c, sessionKeyRole)
}

func (s *Sessions) getString(c *fiber.Ctx, key string) string {
	sess, err := s.store.Get(c)
	if err != nil {
		return ""
	}
	if val, ok := sess.Get(key).(string); ok {
		return val
	}
	return ""
}

func identityFromToken(token string) (name, role string) {
	var claims auth.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", ""
	}
	return claims.Name, string(claims.Role)
}
