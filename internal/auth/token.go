package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/wsei-dev/university-records/internal/config"
	"github.com/wsei-dev/university-records/internal/domain"
)

// Validation failures carry a distinct kind so callers can log what went
// wrong. Clients only ever see a generic unauthorized response.
var (
	ErrMalformed     = errors.New("token malformed")
	ErrBadSignature  = errors.New("token signature invalid")
	ErrWrongIssuer   = errors.New("token issuer mismatch")
	ErrWrongAudience = errors.New("token audience mismatch")
	ErrExpired       = errors.New("token expired or not yet valid")
)

// TokenManager issues and validates JWT bearer tokens. Validation is pure
// computation over the token string and the server secret; nothing is stored
// per issuance.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	leeway   time.Duration
}

// NewTokenManager builds a manager from auth configuration.
func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.AccessTokenTTL(),
		leeway:   cfg.ClockSkew(),
	}
}

// Claims describes the JWT payload.
type Claims struct {
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue builds and signs a token for an already-authorized username. Each
// token gets a fresh unique id.
func (tm *TokenManager) Issue(username string, role domain.Role) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Name: username,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    tm.issuer,
			Audience:  jwt.ClaimStrings{tm.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Validate checks signature, issuer, audience and time window, and returns
// the decoded claims. The leeway applies to the time window only.
func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithAudience(tm.audience),
		jwt.WithLeeway(tm.leeway),
		jwt.WithIssuedAt(),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !parsed.Valid {
		return nil, ErrMalformed
	}
	return &claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrWrongIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ErrWrongAudience
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
