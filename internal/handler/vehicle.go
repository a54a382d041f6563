// internal/handler/vehicle.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type VehicleHandler struct {
	vehicleService *service.VehicleService
	actionLogs     *service.ActionLogService
}

func NewVehicleHandler(vehicleService *service.VehicleService, actionLogs *service.ActionLogService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService, actionLogs: actionLogs}
}

type VehicleListResponse struct {
	BaseResponse
	Vehicles []*model.Vehicle `json:"vehicles"`
}

type VehicleResponse struct {
	BaseResponse
	Vehicle *model.Vehicle `json:"vehicle"`
}

func (h *VehicleHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	vehicles, err := h.vehicleService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, VehicleListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Vehicles:     vehicles,
	})
}

func (h *VehicleHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	vehicle, err := h.vehicleService.Get(r.Context(), session, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, VehicleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Vehicle:      vehicle,
	})
}

func (h *VehicleHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	vehicle, err := h.vehicleService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionCreate,
		EntityType: "vehicle",
		EntityID:   vehicle.ID.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusCreated, VehicleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Vehicle:      vehicle,
	})
}

func (h *VehicleHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	var input service.VehicleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	vehicle, err := h.vehicleService.Update(r.Context(), session, id, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionUpdate,
		EntityType: "vehicle",
		EntityID:   vehicle.ID.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusOK, VehicleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Vehicle:      vehicle,
	})
}

func (h *VehicleHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid vehicle id")
		return
	}

	if err := h.vehicleService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionDelete,
		EntityType: "vehicle",
		EntityID:   id.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
