package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/api/middleware"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
)

type SessionHandler struct {
	sessionService *service.SessionService
	rosterService  *service.RosterService
}

func NewSessionHandler(sessionService *service.SessionService, rosterService *service.RosterService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		rosterService:  rosterService,
	}
}

type CreateSessionRequest struct {
	Date     time.Time `json:"date"`
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

type UpdateSessionRequest struct {
	Date     *time.Time `json:"date"`
	Location *string    `json:"location"`
	Notes    *string    `json:"notes"`
}

type RecordResultRequest struct {
	TeamAID      uuid.UUID  `json:"teamAId"`
	TeamBID      uuid.UUID  `json:"teamBId"`
	TeamAScore   int        `json:"teamAScore"`
	TeamBScore   int        `json:"teamBScore"`
	WinnerTeamID *uuid.UUID `json:"winnerTeamId"`
}

type AssignTeamRequest struct {
	UserID uuid.UUID `json:"userId"`
	TeamID uuid.UUID `json:"teamId"`
}

func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Location == "" || req.Date.IsZero() {
		http.Error(w, "Date and location are required", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.Create(r.Context(), service.CreateSessionInput{
		Date:     req.Date,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionService.List(r.Context())
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	var req UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.sessionService.Update(r.Context(), id, service.UpdateSessionInput{
		Date:     req.Date,
		Location: req.Location,
		Notes:    req.Notes,
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
	json.NewEncoder(w).Encode(session)
}

func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	if err := h.sessionService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.Complete)
}

func (h *SessionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.sessionService.Cancel)
}

func (h *SessionHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) (*domain.Session, error)) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	session, err := fn(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			http.Error(w, "Session not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrSessionFinalized):
			http.Error(w, "Session is already finalized", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// Confirm records the authenticated user's attendance for the session.
// The acting identity comes from the token, not the request.
func (h *SessionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	willPlay := true
	if v := r.URL.Query().Get("willPlay"); v != "" {
		willPlay, err = strconv.ParseBool(v)
		if err != nil {
			http.Error(w, "Invalid willPlay value", http.StatusBadRequest)
			return
		}
	}

	ps, err := h.rosterService.ConfirmAttendance(r.Context(), sessionID, userID, willPlay)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			http.Error(w, "Session not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrSessionFinalized):
			http.Error(w, "Session is already finalized", http.StatusConflict)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ps)
}

// AssignTeam places a user on a team inside the session.
func (h *SessionHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	var req AssignTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	ps, err := h.rosterService.AssignToTeam(r.Context(), sessionID, req.UserID, req.TeamID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTeam):
			http.Error(w, "Invalid team ID", http.StatusBadRequest)
		case errors.Is(err, domain.ErrTeamNotFound):
			http.Error(w, "Team not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrTeamWrongSession):
			http.Error(w, "Team does not belong to this session", http.StatusBadRequest)
		case errors.Is(err, domain.ErrSessionNotFound):
			http.Error(w, "Session not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrSessionFinalized):
			http.Error(w, "Session is already finalized", http.StatusConflict)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ps)
}

// Roster returns the session's entries split into playing, resenha and
// pending buckets.
func (h *SessionHandler) Roster(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	roster, err := h.rosterService.SessionRoster(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			http.Error(w, "Session not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(roster)
}

func (h *SessionHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	var req RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.TeamAID == uuid.Nil || req.TeamBID == uuid.Nil {
		http.Error(w, "Both team IDs are required", http.StatusBadRequest)
		return
	}

	result, err := h.sessionService.RecordResult(r.Context(), sessionID, service.RecordResultInput{
		TeamAID:      req.TeamAID,
		TeamBID:      req.TeamBID,
		TeamAScore:   req.TeamAScore,
		TeamBScore:   req.TeamBScore,
		WinnerTeamID: req.WinnerTeamID,
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
	json.NewEncoder(w).Encode(result)
}

func (h *SessionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	result, err := h.sessionService.GetResult(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrResultNotFound) {
			http.Error(w, "Game result not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
