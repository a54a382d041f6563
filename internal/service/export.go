// internal/service/export.go
package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/repository"
)

// ExportService writes organization data as CSV. Only the caller's
// organization is ever visible to an export.
type ExportService struct {
	vehicleRepo repository.VehicleRepositoryIface
	expenseRepo repository.ExpenseRepositoryIface
	penaltyRepo repository.PenaltyRepositoryIface
}

func NewExportService(
	vehicleRepo repository.VehicleRepositoryIface,
	expenseRepo repository.ExpenseRepositoryIface,
	penaltyRepo repository.PenaltyRepositoryIface,
) *ExportService {
	return &ExportService{
		vehicleRepo: vehicleRepo,
		expenseRepo: expenseRepo,
		penaltyRepo: penaltyRepo,
	}
}

// Export writes the named dataset to w. Supported datasets are
// "vehicles", "expenses" and "penalties".
func (s *ExportService) Export(ctx context.Context, session auth.Session, dataset string, w io.Writer) error {
	switch dataset {
	case "vehicles":
		return s.exportVehicles(ctx, session, w)
	case "expenses":
		return s.exportExpenses(ctx, session, w)
	case "penalties":
		return s.exportPenalties(ctx, session, w)
	default:
		return fmt.Errorf("%w: unknown dataset %q", domain.ErrInvalidInput, dataset)
	}
}

func (s *ExportService) exportVehicles(ctx context.Context, session auth.Session, w io.Writer) error {
	vehicles, err := s.vehicleRepo.FindByOrganization(ctx, session.OrganizationID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "plate", "make", "model", "year", "mileage", "status"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, v := range vehicles {
		record := []string{
			v.ID.String(),
			v.Plate,
			v.Make,
			v.Model,
			strconv.Itoa(v.Year),
			strconv.Itoa(v.Mileage),
			string(v.Status),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) exportExpenses(ctx context.Context, session auth.Session, w io.Writer) error {
	expenses, err := s.expenseRepo.FindByOrganization(ctx, session.OrganizationID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "vehicle_id", "category", "amount", "note", "incurred_at"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range expenses {
		vehicleID := ""
		if e.VehicleID != nil {
			vehicleID = e.VehicleID.String()
		}
		record := []string{
			e.ID.String(),
			vehicleID,
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Note,
			e.IncurredAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *ExportService) exportPenalties(ctx context.Context, session auth.Session, w io.Writer) error {
	penalties, err := s.penaltyRepo.FindByOrganization(ctx, session.OrganizationID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "vehicle_id", "user_id", "amount", "reason", "issued_at", "paid"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, p := range penalties {
		userID := ""
		if p.UserID != nil {
			userID = p.UserID.String()
		}
		record := []string{
			p.ID.String(),
			p.VehicleID.String(),
			userID,
			strconv.FormatFloat(p.Amount, 'f', 2, 64),
			p.Reason,
			p.IssuedAt.UTC().Format(time.RFC3339),
			strconv.FormatBool(p.Paid),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
