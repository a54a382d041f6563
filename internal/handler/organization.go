// internal/handler/organization.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type OrganizationHandler struct {
	orgService *service.OrganizationService
	actionLogs *service.ActionLogService
}

func NewOrganizationHandler(orgService *service.OrganizationService, actionLogs *service.ActionLogService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService, actionLogs: actionLogs}
}

type OrganizationResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
}

func (h *OrganizationHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	org, err := h.orgService.Get(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, OrganizationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: org,
	})
}

func (h *OrganizationHandler) UpdateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.UpdateSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	org, err := h.orgService.UpdateSettings(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionUpdate,
		EntityType: "organization",
		EntityID:   org.ID.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusOK, OrganizationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: org,
	})
}

func (h *OrganizationHandler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	if err := h.orgService.DeleteAccount(r.Context(), session); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
