package domain

import "time"

// Role is the administrative role attached to an identity. There are exactly
// two: the single bootstrap owner and regular admins.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r == RoleOwner || r == RoleAdmin }

// Admin is a login-capable (or pending) administrative identity.
type Admin struct {
	ID           string
	Name         string
	Email        string // lowercased, trimmed, unique
	PasswordHash string // argon2id encoded; empty means no password set yet
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanLogin reports whether this identity has a password set. Identities
// created via the owner invite path stay password-less until the invite is
// accepted.
func (a Admin) CanLogin() bool { return a.PasswordHash != "" }
