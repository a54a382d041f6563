// internal/service/organization_test.go
package service_test

import (
	"context"
	"strings"
	"testing"

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

func newOrgFixture(t *testing.T) (*mocks.MockOrganizationRepositoryIface, *service.OrganizationService) {
	ctrl := gomock.NewController(t)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	svc := service.NewOrganizationService(orgRepo, auth.NewPasswordHasher(), nil, config.Load())
	return orgRepo, svc
}

func validRegisterInput() service.RegisterInput {
	return service.RegisterInput{
		OrganizationName: "Acme Logistics",
		Email:            "owner@example.com",
		Password:         "s3cret!",
		ConfirmPassword:  "s3cret!",
		FirstName:        "Ada",
		LastName:         "Lovelace",
	}
}

func TestRegisterSuccess(t *testing.T) {
	orgRepo, svc := newOrgFixture(t)

	orgRepo.EXPECT().
		CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	output, err := svc.Register(context.Background(), validRegisterInput())

	require.NoError(t, err)
	assert.Equal(t, "Acme Logistics", output.Organization.Name)
	assert.Equal(t, model.SubscriptionActive, output.Organization.SubscriptionStatus)
	assert.Equal(t, model.RoleOwner, output.Owner.Role)
	assert.True(t, strings.HasPrefix(output.Owner.PasswordHash, "$argon2id$"),
		"new accounts never get a legacy hash")
	assert.NotEqual(t, "s3cret!", output.Owner.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*service.RegisterInput)
		wantErr error
	}{
		{
			name:    "short password",
			mutate:  func(in *service.RegisterInput) { in.Password = "abc"; in.ConfirmPassword = "abc" },
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name:    "password mismatch",
			mutate:  func(in *service.RegisterInput) { in.ConfirmPassword = "different" },
			wantErr: domain.ErrPasswordsDoNotMatch,
		},
		{
			name:    "missing organization name",
			mutate:  func(in *service.RegisterInput) { in.OrganizationName = "" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "bad email",
			mutate:  func(in *service.RegisterInput) { in.Email = "not-an-email" },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "missing first name",
			mutate:  func(in *service.RegisterInput) { in.FirstName = "" },
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newOrgFixture(t)

			input := validRegisterInput()
			tt.mutate(&input)

			_, err := svc.Register(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	orgRepo, svc := newOrgFixture(t)

	orgRepo.EXPECT().
		CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), validRegisterInput())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestDeleteAccountRequiresOwner(t *testing.T) {
	orgID := uuid.New()

	for _, role := range []model.Role{model.RoleAdmin, model.RoleManager, model.RoleTeamLead, model.RoleWorker} {
		t.Run(string(role), func(t *testing.T) {
			_, svc := newOrgFixture(t)

			err := svc.DeleteAccount(context.Background(), auth.Session{
				Authenticated:  true,
				UserID:         uuid.New(),
				OrganizationID: orgID,
				Role:           role,
			})
			assert.ErrorIs(t, err, domain.ErrAccessDenied)
		})
	}

	t.Run("owner", func(t *testing.T) {
		orgRepo, svc := newOrgFixture(t)

		orgRepo.EXPECT().
			DeleteCascade(gomock.Any(), orgID).
			Return(nil)

		err := svc.DeleteAccount(context.Background(), auth.Session{
			Authenticated:  true,
			UserID:         uuid.New(),
			OrganizationID: orgID,
			Role:           model.RoleOwner,
		})
		assert.NoError(t, err)
	})
}

func TestUpdateSettings(t *testing.T) {
	orgRepo, svc := newOrgFixture(t)

	orgID := uuid.New()
	session := auth.Session{
		Authenticated:  true,
		OrganizationID: orgID,
		Role:           model.RoleAdmin,
	}

	orgRepo.EXPECT().
		FindByID(gomock.Any(), orgID).
		Return(&model.Organization{ID: orgID, Name: "Old Name"}, nil)
	orgRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)

	org, err := svc.UpdateSettings(context.Background(), session, service.UpdateSettingsInput{
		Name:            "New Name",
		NotifyChannelID: "C123456",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", org.Name)
	assert.Equal(t, "C123456", org.NotifyChannelID)
}
