// internal/repository/vehicle.go
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

type VehicleRepositoryIface interface {
	Create(ctx context.Context, v *model.Vehicle) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Vehicle, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Vehicle, error)
	Update(ctx context.Context, v *model.Vehicle) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *model.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(v).Error; err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Vehicle, error) {
	var v model.Vehicle
	if err := orgScoped(r.db.WithContext(ctx), orgID).First(&v, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle: %w", err)
	}
	return &v, nil
}

func (r *VehicleRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Vehicle, error) {
	var vehicles []*model.Vehicle
	if err := orgScoped(r.db.WithContext(ctx), orgID).Order("created_at").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to find vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *model.Vehicle) error {
	if err := r.db.WithContext(ctx).Save(v).Error; err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).Delete(&model.Vehicle{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}
