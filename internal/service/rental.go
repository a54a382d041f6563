// internal/service/rental.go
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

type RentalService struct {
	repo        repository.RentalRepositoryIface
	vehicleRepo repository.VehicleRepositoryIface
	validate    *validator.Validate
}

func NewRentalService(
	repo repository.RentalRepositoryIface,
	vehicleRepo repository.VehicleRepositoryIface,
) *RentalService {
	return &RentalService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		validate:    validator.New(),
	}
}

type RentalInput struct {
	VehicleID uuid.UUID  `json:"vehicle_id" validate:"required"`
	Renter    string     `json:"renter" validate:"required"`
	DailyRate float64    `json:"daily_rate" validate:"gte=0"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
}

func (s *RentalService) List(ctx context.Context, session auth.Session) ([]*model.RentalContract, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

func (s *RentalService) Create(ctx context.Context, session auth.Session, input RentalInput) (*model.RentalContract, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	vehicle, err := s.vehicleRepo.FindByID(ctx, session.OrganizationID, input.VehicleID)
	if err != nil {
		return nil, err
	}

	startsAt := input.StartsAt
	if startsAt.IsZero() {
		startsAt = time.Now().UTC()
	}

	rc := &model.RentalContract{
		OrganizationID: session.OrganizationID,
		VehicleID:      input.VehicleID,
		Renter:         input.Renter,
		DailyRate:      input.DailyRate,
		StartsAt:       startsAt,
		EndsAt:         input.EndsAt,
		Status:         model.RentalActive,
	}

	if err := s.repo.Create(ctx, rc); err != nil {
		return nil, err
	}

	vehicle.Status = model.VehicleRented
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("updating vehicle status: %w", err)
	}

	return rc, nil
}

// Close completes or cancels an active contract and returns the
// vehicle to the active pool.
func (s *RentalService) Close(ctx context.Context, session auth.Session, id uuid.UUID, cancelled bool) (*model.RentalContract, error) {
	rc, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	if rc.Status != model.RentalActive {
		return nil, fmt.Errorf("%w: contract is already closed", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	rc.EndsAt = &now
	rc.Status = model.RentalCompleted
	if cancelled {
		rc.Status = model.RentalCancelled
	}

	if err := s.repo.Update(ctx, rc); err != nil {
		return nil, err
	}

	if vehicle, err := s.vehicleRepo.FindByID(ctx, session.OrganizationID, rc.VehicleID); err == nil {
		vehicle.Status = model.VehicleActive
		if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
			return nil, fmt.Errorf("updating vehicle status: %w", err)
		}
	}

	return rc, nil
}

func (s *RentalService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, session.OrganizationID, id)
}
