// internal/service/organization.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/config"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/email"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

type OrganizationService struct {
	orgRepo        repository.OrganizationRepositoryIface
	passwordHasher *auth.PasswordHasher
	emailService   *email.Service
	config         *config.Config
	validate       *validator.Validate
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	emailService *email.Service,
	cfg *config.Config,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:        orgRepo,
		passwordHasher: passwordHasher,
		emailService:   emailService,
		config:         cfg,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	OrganizationName string `json:"organization_name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	ConfirmPassword  string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName        string `json:"first_name" validate:"required"`
	LastName         string `json:"last_name"`
	Phone            string `json:"phone"`
}

type RegisterOutput struct {
	Organization *model.Organization `json:"organization"`
	Owner        *model.User         `json:"owner"`
}

// Register creates an organization and its owner user atomically. The
// owner role is fixed here and cannot be granted anywhere else.
func (s *OrganizationService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		if len(input.Password) < 6 {
			return nil, domain.ErrPasswordTooShort
		}
		if input.Password != input.ConfirmPassword {
			return nil, domain.ErrPasswordsDoNotMatch
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	org := &model.Organization{
		Name:               input.OrganizationName,
		SubscriptionStatus: model.SubscriptionActive,
	}

	owner := &model.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Role:         model.RoleOwner,
	}

	if err := s.orgRepo.CreateWithOwner(ctx, org, owner); err != nil {
		return nil, err
	}

	// Welcome mail is best effort; registration already committed.
	if s.emailService != nil {
		err := s.emailService.Send(email.EmailData{
			To:           owner.Email,
			Subject:      "Welcome to FleetDesk",
			TemplateName: email.TemplateWelcome,
			TemplateData: email.WelcomeData{
				FirstName:        owner.FirstName,
				OrganizationName: org.Name,
				LoginURL:         s.config.BaseURL + "/login",
			},
		})
		if err != nil {
			slog.WarnContext(ctx, "welcome email not sent", "error", err, "organization", org.ID)
		}
	}

	return &RegisterOutput{
		Organization: org,
		Owner:        owner,
	}, nil
}

type UpdateSettingsInput struct {
	Name            string `json:"name" validate:"required"`
	NotifyChannelID string `json:"notify_channel_id"`
}

// UpdateSettings changes the organization's display name and relay
// channel. Caller must already hold admin privilege.
func (s *OrganizationService) UpdateSettings(ctx context.Context, session auth.Session, input UpdateSettingsInput) (*model.Organization, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	org, err := s.orgRepo.FindByID(ctx, session.OrganizationID)
	if err != nil {
		return nil, err
	}

	org.Name = input.Name
	org.NotifyChannelID = input.NotifyChannelID

	if err := s.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Get returns the caller's organization.
func (s *OrganizationService) Get(ctx context.Context, session auth.Session) (*model.Organization, error) {
	return s.orgRepo.FindByID(ctx, session.OrganizationID)
}

// DeleteAccount removes the organization and everything in it. Only the
// owner may call this; the handler enforces the threshold and this
// guard backs it up.
func (s *OrganizationService) DeleteAccount(ctx context.Context, session auth.Session) error {
	if !auth.CanDeleteAccount(session.Role) {
		return domain.ErrAccessDenied
	}
	return s.orgRepo.DeleteCascade(ctx, session.OrganizationID)
}
