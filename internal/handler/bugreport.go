// internal/handler/bugreport.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type BugReportHandler struct {
	bugReportService *service.BugReportService
}

func NewBugReportHandler(bugReportService *service.BugReportService) *BugReportHandler {
	return &BugReportHandler{bugReportService: bugReportService}
}

type BugReportListResponse struct {
	BaseResponse
	Reports []*model.BugReport `json:"reports"`
}

type BugReportResponse struct {
	BaseResponse
	Report *model.BugReport `json:"report"`
}

func (h *BugReportHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	reports, err := h.bugReportService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BugReportListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Reports:      reports,
	})
}

func (h *BugReportHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.BugReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	report, err := h.bugReportService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BugReportResponse{
		BaseResponse: BaseResponse{Ok: true},
		Report:       report,
	})
}
