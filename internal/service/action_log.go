// internal/service/action_log.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

// ActionLogService records sensitive mutations and authorization
// denials. Recording never fails the operation it describes.
type ActionLogService struct {
	repo repository.ActionLogRepositoryIface
}

func NewActionLogService(repo repository.ActionLogRepositoryIface) *ActionLogService {
	return &ActionLogService{repo: repo}
}

type ActionRecord struct {
	Action     string
	EntityType string
	EntityID   string
	Allowed    bool
	Context    model.JSONMap
	RequestID  string
	ClientIP   string
}

func (s *ActionLogService) Record(ctx context.Context, session auth.Session, rec ActionRecord) {
	var actorID *uuid.UUID
	if session.Authenticated {
		id := session.UserID
		actorID = &id
	}

	entry := &model.ActionLog{
		OrganizationID: session.OrganizationID,
		ActorID:        actorID,
		ActorRole:      session.Role,
		Action:         rec.Action,
		EntityType:     rec.EntityType,
		EntityID:       rec.EntityID,
		Allowed:        rec.Allowed,
		Context:        rec.Context,
		RequestID:      rec.RequestID,
		ClientIP:       rec.ClientIP,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		slog.WarnContext(ctx, "action log entry not persisted", "error", err, "action", rec.Action)
	}
}

// List returns recent entries for the caller's organization.
func (s *ActionLogService) List(ctx context.Context, session auth.Session, limit int) ([]*model.ActionLog, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID, limit)
}
