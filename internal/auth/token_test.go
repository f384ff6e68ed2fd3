package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/wsei-dev/university-records/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret-0123456789abcdef",
		Issuer:                "records-test",
		Audience:              "records-test-clients",
		AccessTokenTTLMinutes: 60,
		ClockSkewSeconds:      60,
	}
}

func TestIssueValidateRoundtrip(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, expiresAt, err := tm.Issue("wsei", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().UTC().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	require.Equal(t, "wsei", claims.Subject)
	require.Equal(t, "wsei", claims.Name)
	require.EqualValues(t, "Admin", claims.Role)
	require.NotEmpty(t, claims.ID)
}

func TestIssueGeneratesUniqueTokenIDs(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	first, _, err := tm.Issue("wsei", "Admin")
	require.NoError(t, err)
	second, _, err := tm.Issue("wsei", "Admin")
	require.NoError(t, err)

	firstClaims, err := tm.Validate(first)
	require.NoError(t, err)
	secondClaims, err := tm.Validate(second)
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

// signedWith builds a token directly so tests can control every claim.
func signedWith(t *testing.T, secret, issuer, audience string, issuedAt, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Name: "wsei",
		Role: "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "wsei",
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        "test-token-id",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateExpired(t *testing.T) {
	cfg := testAuthConfig()
	tm := NewTokenManager(cfg)

	// Expired well past the 60s leeway; the signature itself is valid.
	token := signedWith(t, cfg.JWTSecret, cfg.Issuer, cfg.Audience,
		time.Now().UTC().Add(-2*time.Hour), time.Now().UTC().Add(-time.Hour))

	_, err := tm.Validate(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestValidateExpiredWithinLeeway(t *testing.T) {
	cfg := testAuthConfig()
	tm := NewTokenManager(cfg)

	// Expired 30s ago but the configured 60s skew tolerance covers it.
	token := signedWith(t, cfg.JWTSecret, cfg.Issuer, cfg.Audience,
		time.Now().UTC().Add(-time.Hour), time.Now().UTC().Add(-30*time.Second))

	_, err := tm.Validate(token)
	require.NoError(t, err)
}

func TestValidateTamperedSignature(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, _, err := tm.Issue("wsei", "Admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Validate(tampered)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestValidateWrongSecret(t *testing.T) {
	cfg := testAuthConfig()
	tm := NewTokenManager(cfg)

	token := signedWith(t, "another-secret-entirely", cfg.Issuer, cfg.Audience,
		time.Now().UTC(), time.Now().UTC().Add(time.Hour))

	_, err := tm.Validate(token)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestValidateWrongIssuer(t *testing.T) {
	cfg := testAuthConfig()
	tm := NewTokenManager(cfg)

	token := signedWith(t, cfg.JWTSecret, "someone-else", cfg.Audience,
		time.Now().UTC(), time.Now().UTC().Add(time.Hour))

	_, err := tm.Validate(token)
	require.ErrorIs(t, err, ErrWrongIssuer)
}

func TestValidateWrongAudience(t *testing.T) {
	cfg := testAuthConfig()
	tm := NewTokenManager(cfg)

	token := signedWith(t, cfg.JWTSecret, cfg.Issuer, "other-clients",
		time.Now().UTC(), time.Now().UTC().Add(time.Hour))

	_, err := tm.Validate(token)
	require.ErrorIs(t, err, ErrWrongAudience)
}

func TestValidateGarbage(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	_, err := tm.Validate("not-a-token")
	require.ErrorIs(t, err, ErrMalformed)
}
