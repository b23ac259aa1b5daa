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

type PlayerSessionHandler struct {
	rosterService *service.RosterService
}

func NewPlayerSessionHandler(rosterService *service.RosterService) *PlayerSessionHandler {
	return &PlayerSessionHandler{rosterService: rosterService}
}

type CreatePlayerSessionRequest struct {
	UserID    uuid.UUID  `json:"userId"`
	SessionID uuid.UUID  `json:"sessionId"`
	TeamID    *uuid.UUID `json:"teamId"`
	Confirmed bool       `json:"confirmed"`
	WillPlay  *bool      `json:"willPlay"`
}

type UpdateStatsRequest struct {
	Goals   int `json:"goals"`
	Assists int `json:"assists"`
}

type UpdateWillPlayRequest struct {
	WillPlay bool `json:"willPlay"`
}

// Create registers a participation record for a user, for admin roster
// building ahead of player responses.
func (h *PlayerSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == uuid.Nil || req.SessionID == uuid.Nil {
		http.Error(w, "User ID and session ID are required", http.StatusBadRequest)
		return
	}

	willPlay := true
	if req.WillPlay != nil {
		willPlay = *req.WillPlay
	}

	ps, err := h.rosterService.Create(r.Context(), service.CreatePlayerSessionInput{
		UserID:    req.UserID,
		SessionID: req.SessionID,
		TeamID:    req.TeamID,
		Confirmed: req.Confirmed,
		WillPlay:  willPlay,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			http.Error(w, "Session not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrSessionFinalized):
			http.Error(w, "Session is already finalized", http.StatusConflict)
		case errors.Is(err, domain.ErrDuplicateEntry):
			http.Error(w, "Player already has an entry for this session", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(ps)
}

func (h *PlayerSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid player session ID", http.StatusBadRequest)
		return
	}

	ps, err := h.rosterService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerSessionNotFound) {
			http.Error(w, "Player session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ps)
}

// UpdateStats overwrites the goals/assists counters for a completed
// session.
func (h *PlayerSessionHandler) UpdateStats(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid player session ID", http.StatusBadRequest)
		return
	}

	var req UpdateStatsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ps, err := h.rosterService.UpdateStats(r.Context(), id, req.Goals, req.Assists)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPlayerSessionNotFound):
			http.Error(w, "Player session not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrNegativeStats):
			http.Error(w, "Goals and assists must be non-negative", http.StatusBadRequest)
		case errors.Is(err, domain.ErrSessionNotCompleted):
			http.Error(w, "Stats can only be entered for a completed session", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ps)
}

// UpdateWillPlay flips a roster entry between playing and resenha.
func (h *PlayerSessionHandler) UpdateWillPlay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid player session ID", http.StatusBadRequest)
		return
	}

	var req UpdateWillPlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ps, err := h.rosterService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPlayerSessionNotFound) {
			http.Error(w, "Player session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	ps, err = h.rosterService.ToggleWillPlay(r.Context(), ps.SessionID, ps.UserID, req.WillPlay)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionFinalized):
			http.Error(w, "Session is already finalized", http.StatusConflict)
		case errors.Is(err, domain.ErrPlayerSessionNotFound):
			http.Error(w, "Player session not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ps)
}
