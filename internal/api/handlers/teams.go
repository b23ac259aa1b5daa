package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
)

type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

type CreateTeamRequest struct {
	SessionID uuid.UUID `json:"sessionId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
}

type SetCaptainRequest struct {
	PlayerSessionID uuid.UUID `json:"playerSessionId"`
}

// TeamResponse carries the derived display name alongside the stored
// fields.
type TeamResponse struct {
	*domain.Team
	DisplayName string `json:"displayName"`
}

func toTeamResponse(team *domain.Team) TeamResponse {
	return TeamResponse{
		Team:        team,
		DisplayName: team.DisplayName(),
	}
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SessionID == uuid.Nil || req.Name == "" {
		http.Error(w, "Session ID and name are required", http.StatusBadRequest)
		return
	}

	team, err := h.teamService.Create(r.Context(), service.CreateTeamInput{
		SessionID: req.SessionID,
		Name:      req.Name,
		Color:     req.Color,
	})
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toTeamResponse(team))
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	team, err := h.teamService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			http.Error(w, "Team not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTeamResponse(team))
}

func (h *TeamHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	teams, err := h.teamService.ListBySession(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		resp = append(resp, toTeamResponse(team))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// SetCaptain designates a roster member as the team captain.
func (h *TeamHandler) SetCaptain(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid team ID", http.StatusBadRequest)
		return
	}

	var req SetCaptainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.PlayerSessionID == uuid.Nil {
		http.Error(w, "Player session ID is required", http.StatusBadRequest)
		return
	}

	team, err := h.teamService.SetCaptain(r.Context(), id, req.PlayerSessionID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamNotFound):
			http.Error(w, "Team not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrNotOnTeam):
			http.Error(w, "Player session is not on this team's roster", http.StatusBadRequest)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toTeamResponse(team))
}
