package user

import "time"

type Role string

const (
	RoleOwner    Role = "owner"    // Company owner - full access
	RoleHR       Role = "hr"       // HR staff - recruitment, attendance, leads
	RoleManager  Role = "manager"  // Can approve leave requests
	RoleEmployee Role = "employee" // Regular employee
)

// ParseRole converts a raw claim value to a Role. Unknown values collapse to
// the empty Role, which holds no permissions.
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleOwner, RoleHR, RoleManager, RoleEmployee:
		return Role(s)
	}
	return ""
}

type User struct {
	ID              string
	Email           string
	FullName        string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// Actor is the authenticated identity extracted from JWT claims, passed
// from handlers into services for transition and ownership checks.
type Actor struct {
	UserID     string
	EmployeeID *string
	Role       Role
}
