// internal/service/user.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/config"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/email"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

// UserService manages the platform users of one organization. Every
// operation takes the caller's session; all lookups are scoped to the
// session's organization.
type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	emailService   *email.Service
	cacheService   *CacheService
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	emailService *email.Service,
	cacheService *CacheService,
	cfg *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		emailService:   emailService,
		cacheService:   cacheService,
		config:         cfg,
		validate:       validator.New(),
	}
}

// List returns the organization's users.
func (s *UserService) List(ctx context.Context, session auth.Session) ([]*model.User, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

type CreateUserInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Role      string `json:"role" validate:"required"`
}

// Create adds a user to the caller's organization. The owner role can
// never be granted here, and nobody can grant a role above their own.
func (s *UserService) Create(ctx context.Context, session auth.Session, input CreateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		if len(input.Password) < 6 {
			return nil, domain.ErrPasswordTooShort
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	role, err := s.grantableRole(session, input.Role)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		OrganizationID: session.OrganizationID,
		Email:          input.Email,
		PasswordHash:   hashedPassword,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		Role:           role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type UpdateUserInput struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role" validate:"required"`
	TeamID    *uuid.UUID `json:"team_id"`
}

// Update edits a user's profile and role. The owner's role is
// immutable and the owner row cannot be edited by anyone else.
func (s *UserService) Update(ctx context.Context, session auth.Session, id uuid.UUID, input UpdateUserInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	role, err := s.grantableRole(session, input.Role)
	if err != nil {
		return nil, err
	}

	if user.Role == model.RoleOwner && role != model.RoleOwner {
		return nil, domain.ErrOwnerImmutable
	}
	if user.Role == model.RoleOwner {
		role = model.RoleOwner
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Phone = input.Phone
	user.Role = role
	user.TeamID = input.TeamID

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user from the organization. The owner cannot be
// removed through user management.
func (s *UserService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return err
	}

	if user.Role == model.RoleOwner {
		return domain.ErrOwnerImmutable
	}

	return s.repo.Delete(ctx, session.OrganizationID, id)
}

type InviteInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// invitePayload is what the one-time invite token resolves to.
type invitePayload struct {
	OrganizationID uuid.UUID  `json:"organization_id"`
	Email          string     `json:"email"`
	Role           model.Role `json:"role"`
}

// Invite emails a one-time signup link for the caller's organization.
func (s *UserService) Invite(ctx context.Context, session auth.Session, input InviteInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	role, err := s.grantableRole(session, input.Role)
	if err != nil {
		return err
	}

	token := generateInviteToken()
	payload := invitePayload{
		OrganizationID: session.OrganizationID,
		Email:          input.Email,
		Role:           role,
	}
	if err := s.cacheService.Set(ctx, "invite:"+token, payload); err != nil {
		return fmt.Errorf("storing invite token: %w", err)
	}

	acceptURL := fmt.Sprintf("%s/invite/accept?token=%s", s.config.BaseURL, token)
	err = s.emailService.Send(email.EmailData{
		To:           input.Email,
		Subject:      fmt.Sprintf("Invitation to join %s", session.OrganizationName),
		TemplateName: email.TemplateInvite,
		TemplateData: email.InviteData{
			InviterName:      session.DisplayName,
			OrganizationName: session.OrganizationName,
			Role:             string(role),
			AcceptURL:        acceptURL,
			ExpiresIn:        "24 hours",
		},
	})
	if err != nil {
		return fmt.Errorf("sending invitation email: %w", err)
	}

	slog.InfoContext(ctx, "invitation sent",
		"organization", session.OrganizationID,
		"email", input.Email,
		"role", role,
	)
	return nil
}

type AcceptInviteInput struct {
	Token           string `json:"token" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
}

// AcceptInvite redeems a one-time invitation token and creates the
// invited user.
func (s *UserService) AcceptInvite(ctx context.Context, input AcceptInviteInput) (*model.User, error) {
	if err := s.validate.Struct(input); err != nil {
		if len(input.Password) < 6 {
			return nil, domain.ErrPasswordTooShort
		}
		if input.Password != input.ConfirmPassword {
			return nil, domain.ErrPasswordsDoNotMatch
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	var payload invitePayload
	if err := s.cacheService.Take(ctx, "invite:"+input.Token, &payload); err != nil {
		return nil, domain.ErrInvalidInviteToken
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		OrganizationID: payload.OrganizationID,
		Email:          payload.Email,
		PasswordHash:   hashedPassword,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Role:           payload.Role,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// grantableRole validates a requested role against the caller: never
// the owner role, never above the caller's own.
func (s *UserService) grantableRole(session auth.Session, raw string) (model.Role, error) {
	role, err := model.ParseRole(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if role == model.RoleOwner {
		return "", domain.ErrOwnerImmutable
	}
	if !session.Role.AtLeast(role) {
		return "", domain.ErrRoleExceedsInviter
	}
	return role, nil
}

// generateInviteToken creates a secure random invitation token
func generateInviteToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic(err) // This should never happen
	}
	return hex.EncodeToString(bytes)
}
