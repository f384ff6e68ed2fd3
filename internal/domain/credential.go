package domain

// Role names an authorization level carried in token claims.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Credential is a seeded login account. Passwords are stored hashed; the
// credential table is immutable after startup.
type Credential struct {
	Username     string
	PasswordHash string
	Role         Role
}
