// internal/service/bugreport.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/relay"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

type BugReportService struct {
	repo     repository.BugReportRepositoryIface
	orgRepo  repository.OrganizationRepositoryIface
	relay    *relay.Client
	validate *validator.Validate
}

func NewBugReportService(
	repo repository.BugReportRepositoryIface,
	orgRepo repository.OrganizationRepositoryIface,
	relayClient *relay.Client,
) *BugReportService {
	return &BugReportService{
		repo:     repo,
		orgRepo:  orgRepo,
		relay:    relayClient,
		validate: validator.New(),
	}
}

type BugReportInput struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

func (s *BugReportService) List(ctx context.Context, session auth.Session) ([]*model.BugReport, error) {
	return s.repo.FindByOrganization(ctx, session.OrganizationID)
}

// Create stores the report, then attempts delivery to the
// organization's messaging channel. The report is kept even when the
// relay is down; Relayed stays false so a later sweep can retry.
func (s *BugReportService) Create(ctx context.Context, session auth.Session, input BugReportInput) (*model.BugReport, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	report := &model.BugReport{
		OrganizationID: session.OrganizationID,
		UserID:         session.UserID,
		Subject:        input.Subject,
		Body:           input.Body,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	s.relayReport(ctx, session, report)

	return report, nil
}

func (s *BugReportService) relayReport(ctx context.Context, session auth.Session, report *model.BugReport) {
	if s.relay == nil || !s.relay.Enabled() {
		return
	}

	org, err := s.orgRepo.FindByID(ctx, session.OrganizationID)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load organization for bug report relay", "error", err)
		return
	}
	if org.NotifyChannelID == "" {
		return
	}

	text := fmt.Sprintf("Bug report from %s (%s)\n%s\n\n%s",
		session.DisplayName, session.OrganizationName, report.Subject, report.Body)

	if err := s.relay.SendMessage(ctx, org.NotifyChannelID, text); err != nil {
		slog.WarnContext(ctx, "Failed to relay bug report", "report_id", report.ID, "error", err)
		return
	}

	if err := s.repo.MarkRelayed(ctx, session.OrganizationID, report.ID); err != nil {
		slog.WarnContext(ctx, "Failed to mark bug report relayed", "report_id", report.ID, "error", err)
	}

	report.Relayed = true
}
