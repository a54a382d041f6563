// internal/service/vehicle.go
package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

type VehicleService struct {
	repo     repository.VehicleRepositoryIface
	validate *validator.Validate
}

func NewVehicleService(repo repository.VehicleRepositoryIface) *VehicleService {
	return &VehicleService{repo: repo, validate: validator.New()}
}

type VehicleInput struct {
	Plate   string     `json:"plate" validate:"required"`
	Make    string     `json:"make"`
	Model   string     `json:"model"`
	Year    int        `json:"year"`
	Mileage int        `json:"mileage" validate:"gte=0"`
	Status  string     `json:"status"`
	TeamID  *uuid.UUID `json:"team_id"`
}

func (s *VehicleService) List(ctx context.Context, session auth.Session) ([]*model.Vehicle, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

func (s *VehicleService) Get(ctx context.Context, session auth.Session, id uuid.UUID) (*model.Vehicle, error) {
	return s.repo.FindByID(ctx, session.OrganizationID, id)
}

func (s *VehicleService) Create(ctx context.Context, session auth.Session, input VehicleInput) (*model.Vehicle, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	v := &model.Vehicle{
		OrganizationID: session.OrganizationID,
		Plate:          input.Plate,
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		Mileage:        input.Mileage,
		Status:         vehicleStatus(input.Status),
		TeamID:         input.TeamID,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) Update(ctx context.Context, session auth.Session, id uuid.UUID, input VehicleInput) (*model.Vehicle, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	v, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	v.Plate = input.Plate
	v.Make = input.Make
	v.Model = input.Model
	v.Year = input.Year
	v.Mileage = input.Mileage
	v.Status = vehicleStatus(input.Status)
	v.TeamID = input.TeamID

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, session.OrganizationID, id)
}

func vehicleStatus(raw string) model.VehicleStatus {
	switch model.VehicleStatus(raw) {
	case model.VehicleInService, model.VehicleRented, model.VehicleDecommissioned:
		return model.VehicleStatus(raw)
	default:
		return model.VehicleActive
	}
}
