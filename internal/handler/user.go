// internal/handler/user.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type UserHandler struct {
	userService *service.UserService
	actionLogs  *service.ActionLogService
}

func NewUserHandler(userService *service.UserService, actionLogs *service.ActionLogService) *UserHandler {
	return &UserHandler{userService: userService, actionLogs: actionLogs}
}

type UserListResponse struct {
	BaseResponse
	Users []*model.User `json:"users"`
}

type UserResponse struct {
	BaseResponse
	User *model.User `json:"user"`
}

func (h *UserHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	users, err := h.userService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, UserListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Users:        users,
	})
}

func (h *UserHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionCreate,
		EntityType: "user",
		EntityID:   user.ID.String(),
		Allowed:    true,
		Context:    model.JSONMap{"role": string(user.Role)},
	})

	respondWithJSON(w, http.StatusCreated, UserResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

func (h *UserHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var input service.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.Update(r.Context(), session, id, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionUpdate,
		EntityType: "user",
		EntityID:   user.ID.String(),
		Allowed:    true,
		Context:    model.JSONMap{"role": string(user.Role)},
	})

	respondWithJSON(w, http.StatusOK, UserResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}

func (h *UserHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	if err := h.userService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionDelete,
		EntityType: "user",
		EntityID:   id.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *UserHandler) InviteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.InviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.userService.Invite(r.Context(), session, input); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *UserHandler) AcceptInviteHandler(w http.ResponseWriter, r *http.Request) {
	var input service.AcceptInviteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	user, err := h.userService.AcceptInvite(r.Context(), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, UserResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         user,
	})
}
