// internal/handler/expense.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type ExpenseListResponse struct {
	BaseResponse
	Expenses []*model.Expense `json:"expenses"`
}

type ExpenseResponse struct {
	BaseResponse
	Expense *model.Expense `json:"expense"`
}

func (h *ExpenseHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	expenses, err := h.expenseService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ExpenseListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Expenses:     expenses,
	})
}

func (h *ExpenseHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	expense, err := h.expenseService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ExpenseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Expense:      expense,
	})
}

func (h *ExpenseHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	var input service.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	expense, err := h.expenseService.Update(r.Context(), session, id, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ExpenseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Expense:      expense,
	})
}

func (h *ExpenseHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid expense id")
		return
	}

	if err := h.expenseService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
