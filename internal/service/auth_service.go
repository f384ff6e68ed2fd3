package service

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/wsei-dev/university-records/internal/auth"
)

// ErrInvalidCredentials signals a failed username/password check. The token
// endpoint maps it to a bare 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService coordinates the credential check and token issuance.
type AuthService struct {
	credentials *auth.CredentialStore
	tokens      *auth.TokenManager
	logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(credentials *auth.CredentialStore, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{credentials: credentials, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a role-bearing token.
func (s *AuthService) Login(username, password string) (string, time.Time, error) {
	if !s.credentials.Authorize(username, password) {
		s.logger.Info("login rejected", zap.String("username", username))
		return "", time.Time{}, ErrInvalidCredentials
	}

	role := s.credentials.Role(username)
	token, expiresAt, err := s.tokens.Issue(username, role)
	if err != nil {
		return "", time.Time{}, err
	}

	s.logger.Info("token issued",
		zap.String("username", username),
		zap.String("role", string(role)),
		zap.Time("expires_at", expiresAt),
	)
	return token, expiresAt, nil
}
