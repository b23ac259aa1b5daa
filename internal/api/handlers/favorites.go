package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/api/middleware"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
)

type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

type CastVoteRequest struct {
	SessionID  uuid.UUID `json:"sessionId"`
	FavoriteID uuid.UUID `json:"favoriteId"`
}

// Cast records a favorite-teammate vote. The voter is always the
// authenticated user.
func (h *FavoriteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	voterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SessionID == uuid.Nil || req.FavoriteID == uuid.Nil {
		http.Error(w, "Session ID and favorite ID are required", http.StatusBadRequest)
		return
	}

	fav, err := h.favoriteService.CastVote(r.Context(), req.SessionID, voterID, req.FavoriteID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSelfVote):
			http.Error(w, "You cannot vote for yourself", http.StatusBadRequest)
		case errors.Is(err, domain.ErrFavoriteLimit):
			http.Error(w, "Favorite limit reached for this session", http.StatusBadRequest)
		case errors.Is(err, domain.ErrSessionNotFound):
			http.Error(w, "Session not found", http.StatusNotFound)
		case errors.Is(err, domain.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusNotFound)
		default:
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fav)
}

func (h *FavoriteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid favorite ID", http.StatusBadRequest)
		return
	}

	if err := h.favoriteService.RemoveVote(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrFavoriteNotFound) {
			http.Error(w, "Favorite not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

func (h *FavoriteHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		http.Error(w, "Invalid session ID", http.StatusBadRequest)
		return
	}

	favorites, err := h.favoriteService.ListBySession(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

func (h *FavoriteHandler) ListByVoter(w http.ResponseWriter, r *http.Request) {
	voterID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	favorites, err := h.favoriteService.ListByVoter(r.Context(), voterID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

func (h *FavoriteHandler) ListByFavorite(w http.ResponseWriter, r *http.Request) {
	favoriteID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	favorites, err := h.favoriteService.ListByFavorite(r.Context(), favoriteID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(favorites)
}

// MostFavorited returns the vote ranking across all sessions.
func (h *FavoriteHandler) MostFavorited(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid limit value", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	ranking, err := h.favoriteService.MostFavorited(r.Context(), limit)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ranking)
}
