// internal/service/identity.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

// IdentityService establishes who is logged in and for which
// organization.
type IdentityService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
}

func NewIdentityService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *IdentityService {
	return &IdentityService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Session auth.Session `json:"session"`
	Token   string       `json:"token"`
}

// Authenticate verifies credentials against users of organizations with
// an active subscription. Unknown email, wrong password and inactive
// organization all fail with the same ErrInvalidCredentials so callers
// cannot enumerate accounts. Store failures surface distinctly.
func (s *IdentityService) Authenticate(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.repo.FindActiveByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	// Transparent migration off the legacy static-salt digest.
	if s.passwordHasher.NeedsRehash(user.PasswordHash) {
		if rehashed, err := s.passwordHasher.Hash(input.Password); err == nil {
			user.PasswordHash = rehashed
			if err := s.repo.Update(ctx, user); err != nil {
				slog.WarnContext(ctx, "password rehash not persisted", "error", err, "user", user.ID)
			}
		}
	}

	session := auth.Login(user, &user.Organization)

	token, err := s.tokenManager.Generate(session)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{
		Session: session,
		Token:   token,
	}, nil
}

// Logout has no server-side state to discard; the client drops its
// token and the middleware treats the next request as unauthenticated.
func (s *IdentityService) Logout(ctx context.Context) error {
	return nil
}
