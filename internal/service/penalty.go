// internal/service/penalty.go
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

type PenaltyService struct {
	repo        repository.PenaltyRepositoryIface
	vehicleRepo repository.VehicleRepositoryIface
	validate    *validator.Validate
}

func NewPenaltyService(
	repo repository.PenaltyRepositoryIface,
	vehicleRepo repository.VehicleRepositoryIface,
) *PenaltyService {
	return &PenaltyService{
		repo:        repo,
		vehicleRepo: vehicleRepo,
		validate:    validator.New(),
	}
}

type PenaltyInput struct {
	VehicleID uuid.UUID  `json:"vehicle_id" validate:"required"`
	UserID    *uuid.UUID `json:"user_id"`
	Amount    float64    `json:"amount" validate:"gt=0"`
	Reason    string     `json:"reason"`
	IssuedAt  time.Time  `json:"issued_at"`
	Paid      bool       `json:"paid"`
}

func (s *PenaltyService) List(ctx context.Context, session auth.Session) ([]*model.Penalty, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

func (s *PenaltyService) Create(ctx context.Context, session auth.Session, input PenaltyInput) (*model.Penalty, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.vehicleRepo.FindByID(ctx, session.OrganizationID, input.VehicleID); err != nil {
		return nil, err
	}

	issuedAt := input.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = time.Now().UTC()
	}

	p := &model.Penalty{
		OrganizationID: session.OrganizationID,
		VehicleID:      input.VehicleID,
		UserID:         input.UserID,
		Amount:         input.Amount,
		Reason:         input.Reason,
		IssuedAt:       issuedAt,
		Paid:           input.Paid,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// MarkPaid flips a penalty to paid.
func (s *PenaltyService) MarkPaid(ctx context.Context, session auth.Session, id uuid.UUID) (*model.Penalty, error) {
	p, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	p.Paid = true
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PenaltyService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, session.OrganizationID, id)
}
