package models

import (
	"fmt"
	"strings"
)

// UserRole defines allowed roles in the app
type UserRole string

const (
	RoleChef UserRole = "Chef"
	RoleUser UserRole = "User"
)

// Roles lists every selectable role
var Roles = []UserRole{RoleChef, RoleUser}

// ParseRole matches a role name case-insensitively
func ParseRole(s string) (UserRole, error) {
	for _, r := range Roles {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("invalid role %q. Must be: Chef or User", s)
}

// User is the actor of the current session. It is a display label, not a credential.
type User struct {
	Role     UserRole `json:"role"`
	Username string   `json:"username"`
}

// IsChef reports whether the user has write access to the menu
func (u User) IsChef() bool {
	return u.Role == RoleChef
}
