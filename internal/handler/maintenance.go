// internal/handler/maintenance.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type MaintenanceHandler struct {
	maintenanceService *service.MaintenanceService
}

func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: maintenanceService}
}

type MaintenanceListResponse struct {
	BaseResponse
	Records []*model.Maintenance `json:"records"`
}

type MaintenanceResponse struct {
	BaseResponse
	Record *model.Maintenance `json:"record"`
}

func (h *MaintenanceHandler) ListForVehicleHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	vehicleID, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	records, err := h.maintenanceService.ListForVehicle(r.Context(), session, vehicleID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MaintenanceListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Records:      records,
	})
}

func (h *MaintenanceHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.MaintenanceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	record, err := h.maintenanceService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, MaintenanceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Record:       record,
	})
}

func (h *MaintenanceHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid maintenance id")
		return
	}

	if err := h.maintenanceService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
