// internal/repository/bug_report.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleetdesk/internal/model"
)

type BugReportRepositoryIface interface {
	Create(ctx context.Context, b *model.BugReport) error
	MarkRelayed(ctx context.Context, orgID, id uuid.UUID) error
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.BugReport, error)
}

type BugReportRepository struct {
	db *gorm.DB
}

func NewBugReportRepository(db *gorm.DB) *BugReportRepository {
	return &BugReportRepository{db: db}
}

func (r *BugReportRepository) Create(ctx context.Context, b *model.BugReport) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("failed to create bug report: %w", err)
	}
	return nil
}

func (r *BugReportRepository) MarkRelayed(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).
		Model(&model.BugReport{}).
		Where("id = ?", id).
		Update("relayed", true).Error; err != nil {
		return fmt.Errorf("failed to mark bug report relayed: %w", err)
	}
	return nil
}

func (r *BugReportRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.BugReport, error) {
	var reports []*model.BugReport
	if err := orgScoped(r.db.WithContext(ctx), orgID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to find bug reports: %w", err)
	}
	return reports, nil
}
