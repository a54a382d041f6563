// internal/service/team.go
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

type TeamService struct {
	repo     repository.TeamRepositoryIface
	validate *validator.Validate
}

func NewTeamService(repo repository.TeamRepositoryIface) *TeamService {
	return &TeamService{repo: repo, validate: validator.New()}
}

type TeamInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (s *TeamService) List(ctx context.Context, session auth.Session) ([]*model.Team, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

func (s *TeamService) Get(ctx context.Context, session auth.Session, id uuid.UUID) (*model.Team, error) {
	return s.repo.FindByID(ctx, session.OrganizationID, id)
}

func (s *TeamService) Create(ctx context.Context, session auth.Session, input TeamInput) (*model.Team, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	t := &model.Team{
		OrganizationID: session.OrganizationID,
		Name:           input.Name,
		Description:    input.Description,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Update(ctx context.Context, session auth.Session, id uuid.UUID, input TeamInput) (*model.Team, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	t, err := s.repo.FindByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	t.Name = input.Name
	t.Description = input.Description

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TeamService) Delete(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, session.OrganizationID, id)
}

type TeamMemberInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Position  string `json:"position"`
}

func (s *TeamService) ListMembers(ctx context.Context, session auth.Session, teamID uuid.UUID) ([]*model.TeamMember, error) {
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, teamID); err != nil {
		return nil, err
	}
	return s.repo.FindMembersByTeam(ctx, session.OrganizationID, teamID)
}

func (s *TeamService) AddMember(ctx context.Context, session auth.Session, teamID uuid.UUID, input TeamMemberInput) (*model.TeamMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// The team must belong to the caller's organization.
	if _, err := s.repo.FindByID(ctx, session.OrganizationID, teamID); err != nil {
		return nil, err
	}

	m := &model.TeamMember{
		OrganizationID: session.OrganizationID,
		TeamID:         teamID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Phone:          input.Phone,
		Position:       input.Position,
	}

	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TeamService) UpdateMember(ctx context.Context, session auth.Session, id uuid.UUID, input TeamMemberInput) (*model.TeamMember, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	m, err := s.repo.FindMemberByID(ctx, session.OrganizationID, id)
	if err != nil {
		return nil, err
	}

	m.FirstName = input.FirstName
	m.LastName = input.LastName
	m.Phone = input.Phone
	m.Position = input.Position

	if err := s.repo.UpdateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, session auth.Session, id uuid.UUID) error {
	if _, err := s.repo.FindMemberByID(ctx, session.OrganizationID, id); err != nil {
		return err
	}
	return s.repo.DeleteMember(ctx, session.OrganizationID, id)
}
