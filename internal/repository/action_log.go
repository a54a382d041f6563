// internal/repository/action_log.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

type ActionLogRepositoryIface interface {
	Create(ctx context.Context, entry *model.ActionLog) error
	FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]*model.ActionLog, error)
}

type ActionLogRepository struct {
	db *gorm.DB
}

func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{db: db}
}

func (r *ActionLogRepository) Create(ctx context.Context, entry *model.ActionLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create action log entry: %w", err)
	}
	return nil
}

func (r *ActionLogRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID, limit int) ([]*model.ActionLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var entries []*model.ActionLog
	if err := orgScoped(r.db.WithContext(ctx), orgID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to find action log entries: %w", err)
	}
	return entries, nil
}
