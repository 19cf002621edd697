package domain

import (
	"errors"
	"fmt"
)

// Role is the closed set of roles a user can hold. Tokens carry the role
// as a snapshot taken at login; a role change only takes effect on the
// next issued session.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// DefaultRole is assigned to every new registration. There is no endpoint
// that creates an admin; the first admin is seeded at startup.
const DefaultRole = RoleStaff

var ErrUnknownRole = errors.New("domain: unknown role")

// ParseRole validates a stored or decoded role string against the enum.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleStaff:
		return RoleStaff, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

func (r Role) String() string { return string(r) }

// DashboardPath is where a freshly logged-in user of this role lands.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/pages/admin/dashboard.html"
	case RoleStaff:
		return "/pages/pegawai/dashboard.html"
	default:
		return ""
	}
}

// In reports whether r is one of the allowed roles.
func (r Role) In(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}
