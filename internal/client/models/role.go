package models

import "fmt"

// Role gates navigation and is fixed when a user is created.
type Role string

const (
	// RoleAny means "no role requirement" when used as a route requirement.
	RoleAny     Role = ""
	RoleStudent Role = "student"
	RoleDonor   Role = "donor"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleDonor
}

func (r Role) String() string {
	if r == RoleAny {
		return "any"
	}
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return RoleAny, fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
