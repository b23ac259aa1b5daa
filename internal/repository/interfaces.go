package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
	// HardDelete permanently removes the row and returns the pre-delete
	// snapshot, reading and deleting inside one transaction.
	HardDelete(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	GetByIDWithRelations(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.Team, error)
	// SetCaptain overwrites the captain column only, bypassing the
	// association-aware full-row save.
	SetCaptain(ctx context.Context, teamID, playerSessionID uuid.UUID) error
}

type PlayerSessionRepository interface {
	Create(ctx context.Context, ps *domain.PlayerSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PlayerSession, error)
	GetByUserAndSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.PlayerSession, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.PlayerSession, error)
	// ConfirmUpsert atomically creates or updates the (user, session) row,
	// setting confirmed=true and the given willPlay.
	ConfirmUpsert(ctx context.Context, userID, sessionID uuid.UUID, willPlay bool) (*domain.PlayerSession, error)
	// AssignTeamUpsert atomically creates or updates the (user, session)
	// row, setting the team. Moving a team captain off their team clears
	// the team's captain reference in the same transaction.
	AssignTeamUpsert(ctx context.Context, userID, sessionID, teamID uuid.UUID) (*domain.PlayerSession, error)
	UpdateWillPlay(ctx context.Context, id uuid.UUID, willPlay bool) error
	UpdateStats(ctx context.Context, id uuid.UUID, goals, assists int) error
	Update(ctx context.Context, ps *domain.PlayerSession) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type FavoriteRepository interface {
	// CastVote inserts the vote inside a transaction that serializes on
	// the voter's user row, enforcing the per-session cap and returning
	// the existing row on a repeated (session, voter, favorite) triple.
	CastVote(ctx context.Context, fav *domain.PlayerFavorite) (*domain.PlayerFavorite, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PlayerFavorite, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.PlayerFavorite, error)
	ListByVoter(ctx context.Context, voterID uuid.UUID) ([]*domain.PlayerFavorite, error)
	ListByFavorite(ctx context.Context, favoriteID uuid.UUID) ([]*domain.PlayerFavorite, error)
	MostFavorited(ctx context.Context, limit int) ([]*domain.FavoriteCount, error)
}

type GameResultRepository interface {
	Upsert(ctx context.Context, result *domain.GameResult) error
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.GameResult, error)
}

type SeasonRepository interface {
	Create(ctx context.Context, season *domain.Season) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Season, error)
	List(ctx context.Context) ([]*domain.Season, error)
	Update(ctx context.Context, season *domain.Season) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User          UserRepository
	Session       SessionRepository
	Team          TeamRepository
	PlayerSession PlayerSessionRepository
	Favorite      FavoriteRepository
	GameResult    GameResultRepository
	Season        SeasonRepository
}
