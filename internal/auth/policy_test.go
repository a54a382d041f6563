// internal/auth/policy_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

var allRoles = []model.Role{
	model.RoleWorker,
	model.RoleTeamLead,
	model.RoleManager,
	model.RoleAdmin,
	model.RoleOwner,
}

func TestRoleThresholds(t *testing.T) {
	tests := []struct {
		role           model.Role
		owner          bool
		adminOrAbove   bool
		managerOrAbove bool
	}{
		{model.RoleWorker, false, false, false},
		{model.RoleTeamLead, false, false, false},
		{model.RoleManager, false, false, true},
		{model.RoleAdmin, false, true, true},
		{model.RoleOwner, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.owner, IsOwner(tt.role))
			assert.Equal(t, tt.adminOrAbove, IsAdminOrAbove(tt.role))
			assert.Equal(t, tt.managerOrAbove, IsManagerOrAbove(tt.role))
		})
	}
}

func TestCapabilityPredicates(t *testing.T) {
	tests := []struct {
		role          model.Role
		platformUsers bool
		teamMembers   bool
		fleet         bool
		export        bool
		editOrg       bool
		deleteAccount bool
	}{
		{model.RoleWorker, false, false, false, false, false, false},
		{model.RoleTeamLead, false, false, false, false, false, false},
		{model.RoleManager, false, true, true, true, false, false},
		{model.RoleAdmin, true, true, true, true, true, false},
		{model.RoleOwner, true, true, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.platformUsers, CanManagePlatformUsers(tt.role))
			assert.Equal(t, tt.teamMembers, CanManageTeamMembers(tt.role))
			assert.Equal(t, tt.fleet, CanManageFleet(tt.role))
			assert.Equal(t, tt.export, CanExportData(tt.role))
			assert.Equal(t, tt.editOrg, CanEditOrganization(tt.role))
			assert.Equal(t, tt.deleteAccount, CanDeleteAccount(tt.role))
		})
	}
}

// A capability granted to some role must be granted to every role above
// it on the privilege order.
func TestCapabilitiesAreMonotonic(t *testing.T) {
	predicates := map[string]func(model.Role) bool{
		"CanManagePlatformUsers": CanManagePlatformUsers,
		"CanManageTeamMembers":   CanManageTeamMembers,
		"CanManageFleet":         CanManageFleet,
		"CanExportData":          CanExportData,
		"CanEditOrganization":    CanEditOrganization,
		"CanDeleteAccount":       CanDeleteAccount,
	}

	for name, allow := range predicates {
		t.Run(name, func(t *testing.T) {
			granted := false
			for _, role := range allRoles {
				if allow(role) {
					granted = true
				} else {
					assert.False(t, granted,
						"%s denied to %s but granted to a lower role", name, role)
				}
			}
		})
	}
}
