// internal/repository/maintenance.go
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

type MaintenanceRepositoryIface interface {
	Create(ctx context.Context, m *model.Maintenance) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Maintenance, error)
	FindByVehicle(ctx context.Context, orgID, vehicleID uuid.UUID) ([]*model.Maintenance, error)
	Update(ctx context.Context, m *model.Maintenance) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	AddMaterial(ctx context.Context, mat *model.Material) error
	DeleteMaterial(ctx context.Context, orgID, id uuid.UUID) error
}

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// Create inserts the maintenance record and its materials atomically.
func (r *MaintenanceRepository) Create(ctx context.Context, m *model.Maintenance) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create maintenance record: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Maintenance, error) {
	var m model.Maintenance
	if err := orgScoped(r.db.WithContext(ctx), orgID).Preload("Materials").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance record: %w", err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) FindByVehicle(ctx context.Context, orgID, vehicleID uuid.UUID) ([]*model.Maintenance, error) {
	var records []*model.Maintenance
	if err := orgScoped(r.db.WithContext(ctx), orgID).
		Where("vehicle_id = ?", vehicleID).
		Preload("Materials").
		Order("performed_at DESC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find maintenance records: %w", err)
	}
	return records, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *model.Maintenance) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to update maintenance record: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orgScoped(tx, orgID).Where("maintenance_id = ?", id).Delete(&model.Material{}).Error; err != nil {
			return fmt.Errorf("deleting materials: %w", err)
		}
		if err := orgScoped(tx, orgID).Delete(&model.Maintenance{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting maintenance record: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) AddMaterial(ctx context.Context, mat *model.Material) error {
	if err := r.db.WithContext(ctx).Create(mat).Error; err != nil {
		return fmt.Errorf("failed to add material: %w", err)
	}
	return nil
}

func (r *MaintenanceRepository) DeleteMaterial(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).Delete(&model.Material{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return nil
}
