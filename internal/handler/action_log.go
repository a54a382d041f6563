// internal/handler/action_log.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type ActionLogHandler struct {
	actionLogs *service.ActionLogService
}

func NewActionLogHandler(actionLogs *service.ActionLogService) *ActionLogHandler {
	return &ActionLogHandler{actionLogs: actionLogs}
}

type ActionLogListResponse struct {
	BaseResponse
	Entries []*model.ActionLog `json:"entries"`
}

func (h *ActionLogHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	entries, err := h.actionLogs.List(r.Context(), session, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ActionLogListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Entries:      entries,
	})
}
