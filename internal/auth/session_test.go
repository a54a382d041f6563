// internal/auth/session_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

func TestNewSessionIsIdempotent(t *testing.T) {
	first := NewSession()
	second := NewSession()

	assert.Equal(t, first, second)
	assert.False(t, first.Authenticated)
	assert.Equal(t, uuid.Nil, first.UserID)
	assert.Equal(t, uuid.Nil, first.OrganizationID)
	assert.Empty(t, first.Role)
	assert.Empty(t, first.OrganizationName)
	assert.Empty(t, first.DisplayName)
}

func TestLoginPopulatesAllFields(t *testing.T) {
	user := &model.User{
		ID:        uuid.New(),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Role:      model.RoleAdmin,
	}
	org := &model.Organization{
		ID:   uuid.New(),
		Name: "Acme Logistics",
	}

	s := Login(user, org)

	assert.True(t, s.Authenticated)
	assert.Equal(t, user.ID, s.UserID)
	assert.Equal(t, org.ID, s.OrganizationID)
	assert.Equal(t, model.RoleAdmin, s.Role)
	assert.Equal(t, "Acme Logistics", s.OrganizationName)
	assert.Equal(t, "Ada Lovelace", s.DisplayName)
}

func TestLogoutClearsEverything(t *testing.T) {
	user := &model.User{ID: uuid.New(), FirstName: "Ada", Role: model.RoleOwner}
	org := &model.Organization{ID: uuid.New(), Name: "Acme"}

	s := Login(user, org)
	s.Logout()

	assert.Equal(t, NewSession(), s)
}

func TestSessionContextRoundTrip(t *testing.T) {
	user := &model.User{ID: uuid.New(), FirstName: "Ada", Role: model.RoleManager}
	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	s := Login(user, org)

	ctx := WithSession(context.Background(), s)
	assert.Equal(t, s, FromContext(ctx))

	// A bare context yields the unauthenticated zero session.
	assert.Equal(t, NewSession(), FromContext(context.Background()))
}

func TestSessionFromToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &model.User{ID: uuid.New(), FirstName: "Ada", Role: model.RoleTeamLead}
	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	original := Login(user, org)

	token, err := tm.Generate(original)
	require.NoError(t, err)

	rebuilt, err := SessionFromToken(tm, token)
	require.NoError(t, err)
	assert.Equal(t, original, rebuilt)
}

func TestSessionFromTokenRejectsTampering(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	user := &model.User{ID: uuid.New(), Role: model.RoleWorker}
	org := &model.Organization{ID: uuid.New()}

	token, err := other.Generate(Login(user, org))
	require.NoError(t, err)

	_, err = SessionFromToken(tm, token)
	assert.Error(t, err)
}
