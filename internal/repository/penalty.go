// internal/repository/penalty.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/model"
)

type PenaltyRepositoryIface interface {
	Create(ctx context.Context, p *model.Penalty) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Penalty, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Penalty, error)
	Update(ctx context.Context, p *model.Penalty) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type PenaltyRepository struct {
	db *gorm.DB
}

func NewPenaltyRepository(db *gorm.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

func (r *PenaltyRepository) Create(ctx context.Context, p *model.Penalty) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create penalty: %w", err)
	}
	return nil
}

func (r *PenaltyRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Penalty, error) {
	var p model.Penalty
	if err := orgScoped(r.db.WithContext(ctx), orgID).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find penalty: %w", err)
	}
	return &p, nil
}

func (r *PenaltyRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Penalty, error) {
	var penalties []*model.Penalty
	if err := orgScoped(r.db.WithContext(ctx), orgID).Order("issued_at DESC").Find(&penalties).Error; err != nil {
		return nil, fmt.Errorf("failed to find penalties: %w", err)
	}
	return penalties, nil
}

func (r *PenaltyRepository) Update(ctx context.Context, p *model.Penalty) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		return fmt.Errorf("failed to update penalty: %w", err)
	}
	return nil
}

func (r *PenaltyRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).Delete(&model.Penalty{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete penalty: %w", err)
	}
	return nil
}
