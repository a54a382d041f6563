// internal/repository/expense.go
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

type ExpenseRepositoryIface interface {
	Create(ctx context.Context, e *model.Expense) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Expense, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Expense, error)
	Update(ctx context.Context, e *model.Expense) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *model.Expense) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Expense, error) {
	var e model.Expense
	if err := orgScoped(r.db.WithContext(ctx), orgID).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return &e, nil
}

func (r *ExpenseRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Expense, error) {
	var expenses []*model.Expense
	if err := orgScoped(r.db.WithContext(ctx), orgID).Order("incurred_at DESC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to find expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *model.Expense) error {
	if err := r.db.WithContext(ctx).Save(e).Error; err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).Delete(&model.Expense{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
