// internal/handler/rental.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type RentalHandler struct {
	rentalService *service.RentalService
}

func NewRentalHandler(rentalService *service.RentalService) *RentalHandler {
	return &RentalHandler{rentalService: rentalService}
}

type RentalListResponse struct {
	BaseResponse
	Contracts []*model.RentalContract `json:"contracts"`
}

type RentalResponse struct {
	BaseResponse
	Contract *model.RentalContract `json:"contract"`
}

func (h *RentalHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	contracts, err := h.rentalService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, RentalListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Contracts:    contracts,
	})
}

func (h *RentalHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.RentalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	contract, err := h.rentalService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RentalResponse{
		BaseResponse: BaseResponse{Ok: true},
		Contract:     contract,
	})
}

type CloseRentalInput struct {
	Cancelled bool `json:"cancelled"`
}

func (h *RentalHandler) CloseHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	var input CloseRentalInput
	if r.Body != nil {
		// An empty body means a normal completion.
		_ = json.NewDecoder(r.Body).Decode(&input)
		defer r.Body.Close()
	}

	contract, err := h.rentalService.Close(r.Context(), session, id, input.Cancelled)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, RentalResponse{
		BaseResponse: BaseResponse{Ok: true},
		Contract:     contract,
	})
}

func (h *RentalHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	if err := h.rentalService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
