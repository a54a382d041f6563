// internal/handler/penalty.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type PenaltyHandler struct {
	penaltyService *service.PenaltyService
}

func NewPenaltyHandler(penaltyService *service.PenaltyService) *PenaltyHandler {
	return &PenaltyHandler{penaltyService: penaltyService}
}

type PenaltyListResponse struct {
	BaseResponse
	Penalties []*model.Penalty `json:"penalties"`
}

type PenaltyResponse struct {
	BaseResponse
	Penalty *model.Penalty `json:"penalty"`
}

func (h *PenaltyHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	penalties, err := h.penaltyService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PenaltyListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Penalties:    penalties,
	})
}

func (h *PenaltyHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.PenaltyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	penalty, err := h.penaltyService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, PenaltyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Penalty:      penalty,
	})
}

func (h *PenaltyHandler) MarkPaidHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid penalty id")
		return
	}

	penalty, err := h.penaltyService.MarkPaid(r.Context(), session, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PenaltyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Penalty:      penalty,
	})
}

func (h *PenaltyHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid penalty id")
		return
	}

	if err := h.penaltyService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
