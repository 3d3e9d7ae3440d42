package entity

import (
	"slices"
	"strings"
)

// Role is the capacity an account acts under. Tokens carry roles as plain strings.
type Role string

const (
	RoleResident  Role = "resident"  // household that tracks trucks and files reports
	RoleCollector Role = "collector" // truck crew running routes
	RoleAdmin     Role = "admin"     // manages schedules and runs sweeps
)

// ParseRole maps a token claim to a known role, ignoring case and surrounding space.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RoleResident, RoleCollector, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}

// Roles is the role set of one authenticated caller.
type Roles []Role

func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings returns the roles in claim form.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings keeps the known roles of a claim list, dropping duplicates.
func RolesFromStrings(ss []string) Roles {
	roles := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role, ok := ParseRole(s); ok && !roles.Contains(role) {
			roles = append(roles, role)
		}
	}

	return roles
}
