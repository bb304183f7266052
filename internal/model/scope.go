package model

// Role values carried in the JWT and checked by route guards.
const (
	RoleUser       = "USER"
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleAccountant = "ACCOUNTANT"
)

// Scope holds the authenticated caller identity extracted from the token.
type Scope struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// CanModerate reports whether the scope may run moderation operations.
func (s Scope) CanModerate() bool {
	return s.Role == RoleAdmin || s.Role == RoleManager
}

// CanProcessPayments reports whether the scope may run payment operations.
func (s Scope) CanProcessPayments() bool {
	return s.Role == RoleAdmin || s.Role == RoleManager || s.Role == RoleAccountant
}
