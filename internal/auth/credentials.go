package auth

import (
	"fmt"
	"strings"

	"github.com/wsei-dev/university-records/internal/domain"
)

// CredentialStore answers authentication and role-lookup queries over a
// fixed set of accounts. It is built once at startup and read-only after
// that, so concurrent reads need no locking.
type CredentialStore struct {
	accounts map[string]domain.Credential
}

// NewCredentialStore parses a seed string of comma-separated
// username:password:role triples and stores each password as a bcrypt hash.
func NewCredentialStore(seed string, bcryptCost int) (*CredentialStore, error) {
	accounts := make(map[string]domain.Credential)
	for _, entry := range strings.Split(seed, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("malformed credential seed entry %q", entry)
		}
		hash, err := HashPassword(parts[1], bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %q: %w", parts[0], err)
		}
		accounts[parts[0]] = domain.Credential{
			Username:     parts[0],
			PasswordHash: hash,
			Role:         domain.Role(parts[2]),
		}
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("credential seed yielded no accounts")
	}
	return &CredentialStore{accounts: accounts}, nil
}

// Authorize reports whether the username exists and the password matches.
func (s *CredentialStore) Authorize(username, password string) bool {
	cred, ok := s.accounts[username]
	if !ok {
		return false
	}
	return ComparePassword(cred.PasswordHash, password) == nil
}

// Role returns the stored role for the username, defaulting to User when the
// username is unknown. Callers must gate on Authorize first.
func (s *CredentialStore) Role(username string) domain.Role {
	if cred, ok := s.accounts[username]; ok {
		return cred.Role
	}
	return domain.RoleUser
}
