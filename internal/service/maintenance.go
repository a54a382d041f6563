// internal/service/maintenance.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

type MaintenanceService struct {
	repo        repository.MaintenanceRepositoryIface
	vehicleRepo repository.VehicleRepositoryIface
	validate    *validator.Validate
}

func NewMaintenanceService(
	repo repository.MaintenanceRepositoryIface,
	vehicleRepo repository.VehicleRepositoryIface,
) *MaintenanceService {
	return &MaintenanceService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		validate:    validator.New(),
	}
}

type MaterialInput struct {
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=1"`
	UnitCost float64 `json:"unit_cost" validate:"gte=0"`
}

type MaintenanceInput struct {
	VehicleID   uuid.UUID       `json:"vehicle_id" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Cost        float64         `json:"cost" validate:"gte=0"`
	PerformedAt time.Time       `json:"performed_at"`
	Materials   []MaterialInput `json:"materials" validate:"dive"`
}

func (s *MaintenanceService) ListForVehicle(ctx context.Context, session auth.Session, vehicleID uuid.UUID) ([]*model.Maintenance, error) {
	return s.repo.FindByVehicle(ctx, session.OrganizationID, vehicleID)
}

func (s *MaintenanceService) Get(ctx context.Context, session auth.Session, id uuid.UUID) (*model.Maintenance, error) {
	return s.repo.FindByID(ctx, session.OrganizationID, id)
}

func (s *MaintenanceService) Create(ctx context.Context, session auth.Session, input MaintenanceInput) (*model.Maintenance, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// The vehicle must belong to the caller's organization.
	if _, err := s.vehicleRepo.FindByID(ctx, session.OrganizationID, input.VehicleID); err != nil {
		return nil, err
	}

	performedAt := input.PerformedAt
	if performedAt.IsZero() {
		performedAt = time.Now().UTC()
	}

	m := &model.Maintenance{
		OrganizationID: session.OrganizationID,
		VehicleID:      input.VehicleID,
		Description:    input.Description,
		Cost:           input.Cost,
		PerformedAt:    performedAt,
	}
	for _, mat := range input.Materials {
		m.Materials = append(m.Materials, model.Material{
			OrganizationID: session.OrganizationID,
			Name:           mat.Name,
			Quantity:       mat.Quantity,
			UnitCost:       mat.UnitCost,
		})
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, session.OrganizationID, id)
}
