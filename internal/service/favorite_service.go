package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
	"gorm.io/gorm"
)

const defaultMostFavoritedLimit = 10

// FavoriteService records favorite-teammate votes per session with a
// per-voter cap.
type FavoriteService struct {
	favoriteRepo      repository.FavoriteRepository
	sessionRepo       repository.SessionRepository
	userRepo          repository.UserRepository
	playerSessionRepo repository.PlayerSessionRepository
}

func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	playerSessionRepo repository.PlayerSessionRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo:      favoriteRepo,
		sessionRepo:       sessionRepo,
		userRepo:          userRepo,
		playerSessionRepo: playerSessionRepo,
	}
}

// CastVote records a favorite vote by voterID for favoriteID within the
// session. Re-voting the same triple returns the existing row; the sixth
// distinct vote in one session is rejected. The voter identity comes from
// the authenticated caller, never from the request body.
func (s *FavoriteService) CastVote(ctx context.Context, sessionID, voterID, favoriteID uuid.UUID) (*domain.PlayerFavorite, error) {
	if voterID == favoriteID {
		return nil, domain.ErrSelfVote
	}

	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, favoriteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	fav := &domain.PlayerFavorite{
		ID:         uuid.New(),
		SessionID:  sessionID,
		VoterID:    voterID,
		FavoriteID: favoriteID,
	}

	// Tag the vote with the voter's team when they have one.
	if ps, err := s.playerSessionRepo.GetByUserAndSession(ctx, voterID, sessionID); err == nil {
		fav.TeamID = ps.TeamID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	result, err := s.favoriteRepo.CastVote(ctx, fav)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *FavoriteService) RemoveVote(ctx context.Context, id uuid.UUID) error {
	if _, err := s.favoriteRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFavoriteNotFound
		}
		return err
	}
	return s.favoriteRepo.Delete(ctx, id)
}

// MostFavorited returns users ranked by received votes, most first,
// enriched with public profile fields.
func (s *FavoriteService) MostFavorited(ctx context.Context, limit int) ([]*domain.FavoriteCount, error) {
	if limit <= 0 {
		limit = defaultMostFavoritedLimit
	}
	return s.favoriteRepo.MostFavorited(ctx, limit)
}

func (s *FavoriteService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.PlayerFavorite, error) {
	return s.favoriteRepo.ListBySession(ctx, sessionID)
}

func (s *FavoriteService) ListByVoter(ctx context.Context, voterID uuid.UUID) ([]*domain.PlayerFavorite, error) {
	return s.favoriteRepo.ListByVoter(ctx, voterID)
}

func (s *FavoriteService) ListByFavorite(ctx context.Context, favoriteID uuid.UUID) ([]*domain.PlayerFavorite, error) {
	return s.favoriteRepo.ListByFavorite(ctx, favoriteID)
}
