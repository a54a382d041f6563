// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// User-related errors
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordTooShort    = errors.New("password too short")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrOwnerImmutable      = errors.New("the organization owner cannot be removed or demoted")

	// Authorization errors
	ErrAccessDenied = errors.New("access denied")
	ErrUnauthenticated = errors.New("authentication required")

	// Organization-related errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrSubscriptionInactive = errors.New("subscription is not active")

	// Invitation-related errors
	ErrInvalidInviteToken = errors.New("invalid or expired invitation token")
	ErrRoleExceedsInviter = errors.New("cannot grant a role above your own")
)
