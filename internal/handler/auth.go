// internal/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/fleetdesk/fleetdesk/internal/domain"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type AuthHandler struct {
	orgService      *service.OrganizationService
	identityService *service.IdentityService
}

func NewAuthHandler(orgService *service.OrganizationService, identityService *service.IdentityService) *AuthHandler {
	return &AuthHandler{
		orgService:      orgService,
		identityService: identityService,
	}
}

type RegisterResponse struct {
	BaseResponse
	Organization *model.Organization `json:"organization"`
	Owner        *model.User         `json:"owner"`
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.orgService.Register(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Organization registration error",
			"error", err, "requestID", chimw.GetReqID(r.Context()))
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RegisterResponse{
		BaseResponse: BaseResponse{Ok: true},
		Organization: output.Organization,
		Owner:        output.Owner,
	})
}

type LoginResponse struct {
	BaseResponse
	Token            string `json:"token,omitempty"`
	Role             string `json:"role,omitempty"`
	DisplayName      string `json:"display_name,omitempty"`
	OrganizationName string `json:"organization_name,omitempty"`
	Error            string `json:"error,omitempty"`
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.identityService.Authenticate(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondWithJSON(w, http.StatusUnauthorized, LoginResponse{
				Error: "Invalid email or password",
			})
			return
		}
		slog.ErrorContext(r.Context(), "User login error",
			"error", err, "requestID", chimw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		BaseResponse:     BaseResponse{Ok: true},
		Token:            output.Token,
		Role:             string(output.Session.Role),
		DisplayName:      output.Session.DisplayName,
		OrganizationName: output.Session.OrganizationName,
	})
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.identityService.Logout(r.Context()); err != nil {
		handleServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
