// internal/handler/team.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fleetdesk/fleetdesk/internal/auth"
	"github.com/fleetdesk/fleetdesk/internal/model"
	"github.com/fleetdesk/fleetdesk/internal/service"
)

type TeamHandler struct {
	teamService *service.TeamService
	actionLogs  *service.ActionLogService
}

func NewTeamHandler(teamService *service.TeamService, actionLogs *service.ActionLogService) *TeamHandler {
	return &TeamHandler{teamService: teamService, actionLogs: actionLogs}
}

type TeamListResponse struct {
	BaseResponse
	Teams []*model.Team `json:"teams"`
}

type TeamResponse struct {
	BaseResponse
	Team *model.Team `json:"team"`
}

type TeamMemberListResponse struct {
	BaseResponse
	Members []*model.TeamMember `json:"members"`
}

type TeamMemberResponse struct {
	BaseResponse
	Member *model.TeamMember `json:"member"`
}

func (h *TeamHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	teams, err := h.teamService.List(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TeamListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Teams:        teams,
	})
}

func (h *TeamHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	team, err := h.teamService.Get(r.Context(), session, id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TeamResponse{
		BaseResponse: BaseResponse{Ok: true},
		Team:         team,
	})
}

func (h *TeamHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	var input service.TeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	team, err := h.teamService.Create(r.Context(), session, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionCreate,
		EntityType: "team",
		EntityID:   team.ID.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusCreated, TeamResponse{
		BaseResponse: BaseResponse{Ok: true},
		Team:         team,
	})
}

func (h *TeamHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	var input service.TeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	team, err := h.teamService.Update(r.Context(), session, id, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TeamResponse{
		BaseResponse: BaseResponse{Ok: true},
		Team:         team,
	})
}

func (h *TeamHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	if err := h.teamService.Delete(r.Context(), session, id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	h.actionLogs.Record(r.Context(), session, service.ActionRecord{
		Action:     model.ActionDelete,
		EntityType: "team",
		EntityID:   id.String(),
		Allowed:    true,
	})

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *TeamHandler) ListMembersHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	teamID, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	members, err := h.teamService.ListMembers(r.Context(), session, teamID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TeamMemberListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Members:      members,
	})
}

func (h *TeamHandler) AddMemberHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	teamID, err := uuidParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	var input service.TeamMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	member, err := h.teamService.AddMember(r.Context(), session, teamID, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, TeamMemberResponse{
		BaseResponse: BaseResponse{Ok: true},
		Member:       member,
	})
}

func (h *TeamHandler) UpdateMemberHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	memberID, err := uuidParam(r, "memberID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	var input service.TeamMemberInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	member, err := h.teamService.UpdateMember(r.Context(), session, memberID, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TeamMemberResponse{
		BaseResponse: BaseResponse{Ok: true},
		Member:       member,
	})
}

func (h *TeamHandler) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	session := auth.FromContext(r.Context())

	memberID, err := uuidParam(r, "memberID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid member id")
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), session, memberID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
