// internal/handler/export.go
package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type ExportHandler struct {
	exportService *service.ExportService
	actionLogs    *service.ActionLogService
}

func NewExportHandler(exportService *service.ExportService, actionLogs *service.ActionLogService) *ExportHandler {
	return &ExportHandler{exportService: exportService, actionLogs: actionLogs}
}

func (h *ExportHandler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())
	dataset := chi.URLParam(r, "dataset")

	filename := fmt.Sprintf("%s-%s.csv", dataset, time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.Export(r.Context(), session, dataset, w); err != nil {
		// Headers may already be out; report what we can.
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionExport,
		EntityType: "export",
		EntityID:   dataset,
		Allowed:    true,
	})
}
