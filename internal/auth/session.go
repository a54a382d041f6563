// internal/auth/session.go
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

// Session is the per-request record of who is authenticated and for
// which organization. It is a value carried in the request context,
// never process-global state, so concurrent requests from different
// users cannot cross-contaminate.
//
// The zero value is the Unauthenticated state with every identity
// field empty.
type Session struct {
	Authenticated    bool
	UserID           uuid.UUID
	OrganizationID   uuid.UUID
	Role             model.Role
	OrganizationName string
	DisplayName      string
}

// NewSession returns a fresh Unauthenticated session. Calling it again
// yields an identical state; initialization is idempotent.
func NewSession() Session {
	return Session{}
}

// Login returns the Authenticated session for a user/organization pair.
// All identity fields are populated in one step; callers never observe
// a partially populated session.
func Login(user *model.User, org *model.Organization) Session {
	return Session{
		Authenticated:    true,
		UserID:           user.ID,
		OrganizationID:   org.ID,
		Role:             user.Role,
		OrganizationName: org.Name,
		DisplayName:      user.DisplayName(),
	}
}

// Logout clears every identity field, returning the session to the
// Unauthenticated state.
func (s *Session) Logout() {
	*s = Session{}
}

type sessionKey struct{}

// WithSession returns a context carrying the given session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session carried by the context. A context
// without a session yields the Unauthenticated zero session.
func FromContext(ctx context.Context) Session {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok {
		return NewSession()
	}
	return s
}

// sessionFromClaims rebuilds a session from validated token claims.
func sessionFromClaims(c *Claims) (Session, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Session{}, err
	}
	orgID, err := uuid.Parse(c.OrganizationID)
	if err != nil {
		return Session{}, err
	}
	if !c.Role.Valid() {
		return Session{}, fmt.Errorf("unknown role %q in token", c.Role)
	}
	return Session{
		Authenticated:    true,
		UserID:           userID,
		OrganizationID:   orgID,
		Role:             c.Role,
		OrganizationName: c.OrganizationName,
		DisplayName:      c.DisplayName,
	}, nil
}

// SessionFromToken validates a bearer token and rebuilds the session it
// carries.
func SessionFromToken(tm *TokenManager, token string) (Session, error) {
	claims, err := tm.Validate(token)
	if err != nil {
		return Session{}, err
	}
	return sessionFromClaims(claims)
}
