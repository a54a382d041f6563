// internal/repository/rental.go
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

type RentalRepositoryIface interface {
	Create(ctx context.Context, rc *model.RentalContract) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.RentalContract, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.RentalContract, error)
	Update(ctx context.Context, rc *model.RentalContract) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

func (r *RentalRepository) Create(ctx context.Context, rc *model.RentalContract) error {
	if err := r.db.WithContext(ctx).Create(rc).Error; err != nil {
		return fmt.Errorf("failed to create rental contract: %w", err)
	}
	return nil
}

func (r *RentalRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.RentalContract, error) {
	var rc model.RentalContract
	if err := orgScoped(r.db.WithContext(ctx), orgID).First(&rc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rental contract: %w", err)
	}
	return &rc, nil
}

func (r *RentalRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.RentalContract, error) {
	var contracts []*model.RentalContract
	if err := orgScoped(r.db.WithContext(ctx), orgID).Order("starts_at DESC").Find(&contracts).Error; err != nil {
		return nil, fmt.Errorf("failed to find rental contracts: %w", err)
	}
	return contracts, nil
}

func (r *RentalRepository) Update(ctx context.Context, rc *model.RentalContract) error {
	if err := r.db.WithContext(ctx).Save(rc).Error; err != nil {
		return fmt.Errorf("failed to update rental contract: %w", err)
	}
	return nil
}

func (r *RentalRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).Delete(&model.RentalContract{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete rental contract: %w", err)
	}
	return nil
}
