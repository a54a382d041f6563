// internal/repository/team.go
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

type TeamRepositoryIface interface {
	Create(ctx context.Context, t *model.Team) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Team, error)
	FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Team, error)
	Update(ctx context.Context, t *model.Team) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error

	CreateMember(ctx context.Context, m *model.TeamMember) error
	FindMemberByID(ctx context.Context, orgID, id uuid.UUID) (*model.TeamMember, error)
	FindMembersByTeam(ctx context.Context, orgID, teamID uuid.UUID) ([]*model.TeamMember, error)
	UpdateMember(ctx context.Context, m *model.TeamMember) error
	DeleteMember(ctx context.Context, orgID, id uuid.UUID) error
}

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, t *model.Team) error {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Team, error) {
	var t model.Team
	if err := orgScoped(r.db.WithContext(ctx), orgID).Preload("Members").First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}
	return &t, nil
}

func (r *TeamRepository) FindByOrganization(ctx context.Context, orgID uuid.UUID) ([]*model.Team, error) {
	var teams []*model.Team
	if err := orgScoped(r.db.WithContext(ctx), orgID).Order("name").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	return teams, nil
}

func (r *TeamRepository) Update(ctx context.Context, t *model.Team) error {
	if err := r.db.WithContext(ctx).Save(t).Error; err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := orgScoped(tx, orgID).Where("team_id = ?", id).Delete(&model.TeamMember{}).Error; err != nil {
			return fmt.Errorf("deleting team members: %w", err)
		}
		if err := orgScoped(tx, orgID).Delete(&model.Team{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting team: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}

func (r *TeamRepository) CreateMember(ctx context.Context, m *model.TeamMember) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindMemberByID(ctx context.Context, orgID, id uuid.UUID) (*model.TeamMember, error) {
	var m model.TeamMember
	if err := orgScoped(r.db.WithContext(ctx), orgID).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	return &m, nil
}

func (r *TeamRepository) FindMembersByTeam(ctx context.Context, orgID, teamID uuid.UUID) ([]*model.TeamMember, error) {
	var members []*model.TeamMember
	if err := orgScoped(r.db.WithContext(ctx), orgID).Where("team_id = ?", teamID).Order("last_name, first_name").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to find team members: %w", err)
	}
	return members, nil
}

func (r *TeamRepository) UpdateMember(ctx context.Context, m *model.TeamMember) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	return nil
}

func (r *TeamRepository) DeleteMember(ctx context.Context, orgID, id uuid.UUID) error {
	if err := orgScoped(r.db.WithContext(ctx), orgID).Delete(&model.TeamMember{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	return nil
}
