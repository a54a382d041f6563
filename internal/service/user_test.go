// internal/service/user_test.go
package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/config"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/mocks"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

func newUserFixture(t *testing.T) (*mocks.MockUserRepositoryIface, *service.UserService) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         5 * time.Minute,
		CleanupFreq: time.Minute,
	})
	t.Cleanup(func() { cacheService.Close() })

	svc := service.NewUserService(userRepo, auth.NewPasswordHasher(), nil, cacheService, config.Load())
	return userRepo, svc
}

func adminSession() auth.Session {
	return auth.Session{
		Authenticated:    true,
		UserID:           uuid.New(),
		OrganizationID:   uuid.New(),
		Role:             model.RoleAdmin,
		OrganizationName: "Acme Logistics",
		DisplayName:      "Ada Lovelace",
	}
}

func validCreateUserInput(role string) service.CreateUserInput {
	return service.CreateUserInput{
		Email:     "worker@example.com",
		Password:  "s3cret!",
		FirstName: "Grace",
		LastName:  "Hopper",
		Role:      role,
	}
}

func TestCreateUserScopedToCallerOrganization(t *testing.T) {
	userRepo, svc := newUserFixture(t)
	session := adminSession()

	userRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *model.User) error {
			assert.Equal(t, session.OrganizationID, user.OrganizationID)
			return nil
		})

	user, err := svc.Create(context.Background(), session, validCreateUserInput("worker"))

	require.NoError(t, err)
	assert.Equal(t, model.RoleWorker, user.Role)
	assert.Contains(t, user.PasswordHash, "$argon2id$")
}

func TestCreateUserNeverGrantsOwner(t *testing.T) {
	_, svc := newUserFixture(t)

	session := adminSession()
	session.Role = model.RoleOwner

	_, err := svc.Create(context.Background(), session, validCreateUserInput("owner"))
	assert.ErrorIs(t, err, domain.ErrOwnerImmutable)
}

func TestCreateUserCannotExceedCallerRole(t *testing.T) {
	_, svc := newUserFixture(t)

	session := adminSession()
	session.Role = model.RoleManager

	_, err := svc.Create(context.Background(), session, validCreateUserInput("admin"))
	assert.ErrorIs(t, err, domain.ErrRoleExceedsInviter)

	// Granting at the caller's own level is allowed.
	userRepo, svc := newUserFixture(t)
	userRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.Create(context.Background(), session, validCreateUserInput("manager"))
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, user.Role)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	_, svc := newUserFixture(t)

	_, err := svc.Create(context.Background(), adminSession(), validCreateUserInput("superuser"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUserOwnerRoleImmutable(t *testing.T) {
	userRepo, svc := newUserFixture(t)
	session := adminSession()
	session.Role = model.RoleOwner

	ownerID := uuid.New()
	userRepo.EXPECT().
		FindByID(gomock.Any(), session.OrganizationID, ownerID).
		Return(&model.User{
			ID:             ownerID,
			OrganizationID: session.OrganizationID,
			Role:           model.RoleOwner,
			FirstName:      "Ada",
		}, nil)

	_, err := svc.Update(context.Background(), session, ownerID, service.UpdateUserInput{
		FirstName: "Ada",
		Role:      "worker",
	})
	assert.ErrorIs(t, err, domain.ErrOwnerImmutable)
}

func TestDeleteUserOwnerProtected(t *testing.T) {
	userRepo, svc := newUserFixture(t)
	session := adminSession()

	ownerID := uuid.New()
	userRepo.EXPECT().
		FindByID(gomock.Any(), session.OrganizationID, ownerID).
		Return(&model.User{ID: ownerID, Role: model.RoleOwner}, nil)

	err := svc.Delete(context.Background(), session, ownerID)
	assert.ErrorIs(t, err, domain.ErrOwnerImmutable)
}

func TestDeleteUser(t *testing.T) {
	userRepo, svc := newUserFixture(t)
	session := adminSession()

	workerID := uuid.New()
	gomock.InOrder(
		userRepo.EXPECT().
			FindByID(gomock.Any(), session.OrganizationID, workerID).
			Return(&model.User{ID: workerID, Role: model.RoleWorker}, nil),
		userRepo.EXPECT().
			Delete(gomock.Any(), session.OrganizationID, workerID).
			Return(nil),
	)

	err := svc.Delete(context.Background(), session, workerID)
	assert.NoError(t, err)
}

func TestAcceptInviteRejectsUnknownToken(t *testing.T) {
	_, svc := newUserFixture(t)

	_, err := svc.AcceptInvite(context.Background(), service.AcceptInviteInput{
		Token:           "does-not-exist",
		Password:        "s3cret!",
		ConfirmPassword: "s3cret!",
		FirstName:       "Grace",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInviteToken)
}
