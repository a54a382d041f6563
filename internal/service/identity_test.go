// internal/service/identity_test.go
package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/mocks"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

func newIdentityFixture(t *testing.T) (*mocks.MockUserRepositoryIface, *service.IdentityService, *auth.PasswordHasher) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	hasher := auth.NewPasswordHasher()
	svc := service.NewIdentityService(userRepo, hasher, auth.NewTokenManager("test-secret", time.Hour))
	return userRepo, svc, hasher
}

func testUser(hash string) *model.User {
	orgID := uuid.New()
	return &model.User{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Email:          "ada@example.com",
		PasswordHash:   hash,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Role:           model.RoleAdmin,
		Organization: model.Organization{
			ID:                 orgID,
			Name:               "Acme Logistics",
			SubscriptionStatus: model.SubscriptionActive,
		},
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	userRepo, svc, hasher := newIdentityFixture(t)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)
	user := testUser(hash)

	userRepo.EXPECT().
		FindActiveByEmail(gomock.Any(), user.Email).
		Return(user, nil)

	output, err := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "correct_password",
	})

	require.NoError(t, err)
	assert.True(t, output.Session.Authenticated)
	assert.Equal(t, user.ID, output.Session.UserID)
	assert.Equal(t, user.OrganizationID, output.Session.OrganizationID)
	assert.Equal(t, model.RoleAdmin, output.Session.Role)
	assert.Equal(t, "Acme Logistics", output.Session.OrganizationName)
	assert.Equal(t, "Ada Lovelace", output.Session.DisplayName)
	assert.NotEmpty(t, output.Token)
}

// Unknown email and wrong password must be indistinguishable to the
// caller.
func TestAuthenticateUniformFailure(t *testing.T) {
	userRepo, svc, hasher := newIdentityFixture(t)

	hash, err := hasher.Hash("correct_password")
	require.NoError(t, err)
	user := testUser(hash)

	userRepo.EXPECT().
		FindActiveByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, domain.ErrUserNotFound)

	_, unknownEmailErr := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	userRepo.EXPECT().
		FindActiveByEmail(gomock.Any(), user.Email).
		Return(user, nil)

	_, wrongPasswordErr := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "wrong_password",
	})

	assert.ErrorIs(t, unknownEmailErr, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPasswordErr, domain.ErrInvalidCredentials)
	assert.Equal(t, unknownEmailErr.Error(), wrongPasswordErr.Error())
}

// A store failure is not a credentials failure.
func TestAuthenticateStoreError(t *testing.T) {
	userRepo, svc, _ := newIdentityFixture(t)

	userRepo.EXPECT().
		FindActiveByEmail(gomock.Any(), "ada@example.com").
		Return(nil, errors.New("connection refused"))

	_, err := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    "ada@example.com",
		Password: "correct_password",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateUpgradesLegacyHash(t *testing.T) {
	userRepo, svc, _ := newIdentityFixture(t)

	user := testUser(auth.LegacyHash("old_password"))

	userRepo.EXPECT().
		FindActiveByEmail(gomock.Any(), user.Email).
		Return(user, nil)
	userRepo.EXPECT().
		Update(gomock.Any(), user).
		Return(nil)

	output, err := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "old_password",
	})

	require.NoError(t, err)
	assert.True(t, output.Session.Authenticated)
	assert.Contains(t, user.PasswordHash, "$argon2id$",
		"stored hash should be upgraded on successful login")
}

// A failed rehash write must not fail the login itself.
func TestAuthenticateRehashFailureStillLogsIn(t *testing.T) {
	userRepo, svc, _ := newIdentityFixture(t)

	user := testUser(auth.LegacyHash("old_password"))

	userRepo.EXPECT().
		FindActiveByEmail(gomock.Any(), user.Email).
		Return(user, nil)
	userRepo.EXPECT().
		Update(gomock.Any(), user).
		Return(errors.New("write failed"))

	output, err := svc.Authenticate(context.Background(), service.LoginInput{
		Email:    user.Email,
		Password: "old_password",
	})

	require.NoError(t, err)
	assert.True(t, output.Session.Authenticated)
}
