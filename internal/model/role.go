// internal/model/role.go
package model

import "fmt"

// Role is the closed set of privilege levels a user can hold within an
// organization. Roles form a strict total order; every authorization
// decision is a threshold comparison on that order.
type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleTeamLead Role = "team_lead"
	RoleWorker   Role = "worker"
)

// roleRanks maps each role to its position in the privilege order.
// Higher rank means more privilege.
var roleRanks = map[Role]int{
	RoleWorker:   1,
	RoleTeamLead: 2,
	RoleManager:  3,
	RoleAdmin:    4,
	RoleOwner:    5,
}

// Rank returns the role's position in the privilege order, or 0 for an
// unknown role so that unknown roles never pass a threshold check.
func (r Role) Rank() int {
	return roleRanks[r]
}

// Valid reports whether r is one of the five defined roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// AtLeast reports whether r holds at least the privilege of min.
func (r Role) AtLeast(min Role) bool {
	return r.Rank() >= min.Rank() && r.Rank() > 0
}

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
