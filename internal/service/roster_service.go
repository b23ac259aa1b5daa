package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
	"gorm.io/gorm"
)

// RosterService answers "who is coming, and to which team" for a session
// and owns the participation record lifecycle.
type RosterService struct {
	playerSessionRepo repository.PlayerSessionRepository
	sessionRepo       repository.SessionRepository
	teamRepo          repository.TeamRepository
	userRepo          repository.UserRepository
}

func NewRosterService(
	playerSessionRepo repository.PlayerSessionRepository,
	sessionRepo repository.SessionRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) *RosterService {
	return &RosterService{
		playerSessionRepo: playerSessionRepo,
		sessionRepo:       sessionRepo,
		teamRepo:          teamRepo,
		userRepo:          userRepo,
	}
}

type CreatePlayerSessionInput struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	TeamID    *uuid.UUID
	Confirmed bool
	WillPlay  bool
}

// ConfirmAttendance marks the user as confirmed for the session with the
// given willPlay flag. The write is a single upsert on the unique
// (user, session) pair, so concurrent confirmations land on one row.
func (s *RosterService) ConfirmAttendance(ctx context.Context, sessionID, userID uuid.UUID, willPlay bool) (*domain.PlayerSession, error) {
	if err := s.requireOpenSession(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.playerSessionRepo.ConfirmUpsert(ctx, userID, sessionID, willPlay)
}

// AssignToTeam places the user on a team within the session. The team
// must exist and belong to the same session.
func (s *RosterService) AssignToTeam(ctx context.Context, sessionID, userID, teamID uuid.UUID) (*domain.PlayerSession, error) {
	if teamID == uuid.Nil {
		return nil, domain.ErrInvalidTeam
	}
	if err := s.requireOpenSession(ctx, sessionID); err != nil {
		return nil, err
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	if team.SessionID != sessionID {
		return nil, domain.ErrTeamWrongSession
	}

	return s.playerSessionRepo.AssignTeamUpsert(ctx, userID, sessionID, teamID)
}

// ToggleWillPlay flips the playing/resenha flag without touching the
// confirmation or team assignment.
func (s *RosterService) ToggleWillPlay(ctx context.Context, sessionID, userID uuid.UUID, willPlay bool) (*domain.PlayerSession, error) {
	if err := s.requireOpenSession(ctx, sessionID); err != nil {
		return nil, err
	}

	ps, err := s.playerSessionRepo.GetByUserAndSession(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerSessionNotFound
		}
		return nil, err
	}

	if err := s.playerSessionRepo.UpdateWillPlay(ctx, ps.ID, willPlay); err != nil {
		return nil, err
	}
	ps.WillPlay = willPlay
	return ps, nil
}

// UpdateStats overwrites the goals/assists counters. Stats can only be
// entered once the session is completed.
func (s *RosterService) UpdateStats(ctx context.Context, playerSessionID uuid.UUID, goals, assists int) (*domain.PlayerSession, error) {
	if goals < 0 || assists < 0 {
		return nil, domain.ErrNegativeStats
	}

	ps, err := s.Get(ctx, playerSessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, ps.SessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	if session.Status != domain.SessionStatusCompleted {
		return nil, domain.ErrSessionNotCompleted
	}

	if err := s.playerSessionRepo.UpdateStats(ctx, playerSessionID, goals, assists); err != nil {
		return nil, err
	}
	ps.Goals = goals
	ps.Assists = assists
	return ps, nil
}

// Create registers a participation record directly, for admin flows that
// build a roster before players respond. The unique (user, session) index
// rejects duplicates, including ones racing past a pre-check.
func (s *RosterService) Create(ctx context.Context, input CreatePlayerSessionInput) (*domain.PlayerSession, error) {
	if err := s.requireOpenSession(ctx, input.SessionID); err != nil {
		return nil, err
	}
	if err := s.requireUser(ctx, input.UserID); err != nil {
		return nil, err
	}

	ps := &domain.PlayerSession{
		ID:        uuid.New(),
		UserID:    input.UserID,
		SessionID: input.SessionID,
		TeamID:    input.TeamID,
		Confirmed: input.Confirmed,
		WillPlay:  input.WillPlay,
	}
	if err := s.playerSessionRepo.Create(ctx, ps); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, err
	}
	return ps, nil
}

func (s *RosterService) Get(ctx context.Context, id uuid.UUID) (*domain.PlayerSession, error) {
	ps, err := s.playerSessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlayerSessionNotFound
		}
		return nil, err
	}
	return ps, nil
}

// SessionRoster returns the session's entries partitioned into playing,
// resenha and pending buckets.
func (s *RosterService) SessionRoster(ctx context.Context, sessionID uuid.UUID) (*domain.Roster, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	entries, err := s.playerSessionRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return domain.BuildRoster(entries), nil
}

func (s *RosterService) requireOpenSession(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSessionNotFound
		}
		return err
	}
	if session.Status.Terminal() {
		return domain.ErrSessionFinalized
	}
	return nil
}

func (s *RosterService) requireUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}
