// internal/repository/organization.go
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

type OrganizationRepositoryIface interface {
	CreateWithOwner(ctx context.Context, org *model.Organization, owner *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	Update(ctx context.Context, org *model.Organization) error
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// CreateWithOwner inserts the organization and its owner user in one
// transaction: both rows exist afterwards or neither does.
func (r *OrganizationRepository) CreateWithOwner(ctx context.Context, org *model.Organization, owner *model.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("creating organization: %w", err)
		}

		owner.OrganizationID = org.ID
		owner.Role = model.RoleOwner
		if err := tx.Create(owner).Error; err != nil {
			return fmt.Errorf("creating owner: %w", err)
		}

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.Organization) error {
	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

// DeleteCascade removes the organization and everything scoped to it.
// Ordered so foreign keys never dangle mid-transaction.
func (r *OrganizationRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := func(m interface{}) error {
			return tx.Where("organization_id = ?", id).Delete(m).Error
		}
		for _, m := range []interface{}{
			&model.Material{},
			&model.Maintenance{},
			&model.Penalty{},
			&model.Expense{},
			&model.RentalContract{},
			&model.TeamMember{},
			&model.Team{},
			&model.Vehicle{},
			&model.BugReport{},
			&model.ActionLog{},
			&model.User{},
		} {
			if err := scoped(m); err != nil {
				return fmt.Errorf("deleting organization records: %w", err)
			}
		}

		if err := tx.Delete(&model.Organization{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting organization: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
