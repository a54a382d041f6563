// internal/model/role_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	ordered := []Role{RoleWorker, RoleTeamLead, RoleManager, RoleAdmin, RoleOwner}

	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(),
			"%s must outrank %s", ordered[i], ordered[i-1])
	}
}

func TestAtLeast(t *testing.T) {
	assert.True(t, RoleOwner.AtLeast(RoleWorker))
	assert.True(t, RoleManager.AtLeast(RoleManager))
	assert.False(t, RoleTeamLead.AtLeast(RoleManager))

	// Unknown roles never pass a threshold, not even against
	// themselves.
	unknown := Role("superuser")
	assert.False(t, unknown.AtLeast(RoleWorker))
	assert.False(t, unknown.AtLeast(unknown))
}

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"owner", "admin", "manager", "team_lead", "worker"} {
		role, err := ParseRole(raw)
		require.NoError(t, err)
		assert.Equal(t, Role(raw), role)
	}

	_, err := ParseRole("superuser")
	assert.Error(t, err)

	_, err = ParseRole("")
	assert.Error(t, err)
}
