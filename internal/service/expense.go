// internal/service/expense.go
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

type ExpenseService struct {
	repo     repository.ExpenseRepositoryIface
	validate *validator.Validate
}

func NewExpenseService(repo repository.ExpenseRepositoryIface) *ExpenseService {
	return &ExpenseService{repo: repo, validate: validator.New()}
}

type ExpenseInput struct {
	VehicleID  *uuid.UUID `json:"vehicle_id"`
	Category   string     `json:"category" validate:"required"`
	Amount     float64    `json:"amount" validate:"gt=0"`
	Note       string     `json:"note"`
	IncurredAt time.Time  `json:"incurred_at"`
}

func (s *ExpenseService) List(ctx context.Context, session auth.Session) ([]*model.Expense, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

func (s *ExpenseService) Create(ctx context.Context, session auth.Session, input ExpenseInput) (*model.Expense, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	incurredAt := input.IncurredAt
	if incurredAt.IsZero() {
		incurredAt = time.Now().UTC()
	}

	e := &model.Expense{
		OrganizationID: session.OrganizationID,
		VehicleID:      input.VehicleID,
		Category:       input.Category,
		Amount:         input.Amount,
		Note:           input.Note,
		IncurredAt:     incurredAt,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Update(ctx context.Context, session auth.Session, id uuid.UUID, input ExpenseInput) (*model.Expense, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	e, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	e.VehicleID = input.VehicleID
	e.Category = input.Category
	e.Amount = input.Amount
	e.Note = input.Note
	if !input.IncurredAt.IsZero() {
		e.IncurredAt = input.IncurredAt
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, session.OrganizationID, id)
}
