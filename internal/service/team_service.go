package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
	"gorm.io/gorm"
)

// TeamService owns team creation and captaincy within a session.
type TeamService struct {
	teamRepo    repository.TeamRepository
	sessionRepo repository.SessionRepository
}

func NewTeamService(teamRepo repository.TeamRepository, sessionRepo repository.SessionRepository) *TeamService {
	return &TeamService{
		teamRepo:    teamRepo,
		sessionRepo: sessionRepo,
	}
}

type CreateTeamInput struct {
	SessionID uuid.UUID
	Name      string
	Color     string
}

func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (*domain.Team, error) {
	if _, err := s.sessionRepo.GetByID(ctx, input.SessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	team := &domain.Team{
		ID:        uuid.New(),
		SessionID: input.SessionID,
		Name:      input.Name,
		Color:     input.Color,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

func (s *TeamService) Get(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *TeamService) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.Team, error) {
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return s.teamRepo.GetBySessionID(ctx, sessionID)
}

// SetCaptain designates the given player-session as the team's captain.
// The captain must already be on the team's roster; a previous captain is
// overwritten. The team's stored name is untouched, the display name is
// derived from the captain at read time.
func (s *TeamService) SetCaptain(ctx context.Context, teamID, playerSessionID uuid.UUID) (*domain.Team, error) {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if !team.HasPlayer(playerSessionID) {
		return nil, domain.ErrNotOnTeam
	}

	if err := s.teamRepo.SetCaptain(ctx, teamID, playerSessionID); err != nil {
		return nil, err
	}
	return s.Get(ctx, teamID)
}
