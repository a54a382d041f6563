// internal/auth/policy.go
package auth

import "github.com/fleetdesk/fleetdesk/internal/model"

// Authorization policy. Every check is a single threshold comparison
// against the fixed privilege order owner > admin > manager >
// team_lead > worker. New capabilities pick a threshold on that order;
// roles are never enumerated ad hoc.

// IsOwner reports whether the role is the organization owner.
func IsOwner(r model.Role) bool {
	return r == model.RoleOwner
}

// IsAdminOrAbove reports whether the role holds admin privilege.
func IsAdminOrAbove(r model.Role) bool {
	return r.AtLeast(model.RoleAdmin)
}

// IsManagerOrAbove reports whether the role holds manager privilege.
func IsManagerOrAbove(r model.Role) bool {
	return r.AtLeast(model.RoleManager)
}

// Capability predicates, named for the action they gate.

// CanManagePlatformUsers gates creating, editing and removing users.
func CanManagePlatformUsers(r model.Role) bool {
	return IsAdminOrAbove(r)
}

// CanManageTeamMembers gates team and team-member mutations.
func CanManageTeamMembers(r model.Role) bool {
	return IsManagerOrAbove(r)
}

// CanManageFleet gates vehicle, maintenance, penalty, expense and
// rental mutations.
func CanManageFleet(r model.Role) bool {
	return IsManagerOrAbove(r)
}

// CanExportData gates CSV exports of organization data.
func CanExportData(r model.Role) bool {
	return IsManagerOrAbove(r)
}

// CanEditOrganization gates organization settings changes.
func CanEditOrganization(r model.Role) bool {
	return IsAdminOrAbove(r)
}

// CanDeleteAccount gates deleting the whole organization account.
func CanDeleteAccount(r model.Role) bool {
	return IsOwner(r)
}
