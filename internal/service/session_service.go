package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
	"gorm.io/gorm"
)

type SessionService struct {
	sessionRepo repository.SessionRepository
	resultRepo  repository.GameResultRepository
}

func NewSessionService(sessionRepo repository.SessionRepository, resultRepo repository.GameResultRepository) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
	}
}

type CreateSessionInput struct {
	Date     time.Time
	Location string
	Notes    string
}

type UpdateSessionInput struct {
	Date     *time.Time
	Location *string
	Notes    *string
}

type RecordResultInput struct {
	TeamAID      uuid.UUID
	TeamBID      uuid.UUID
	TeamAScore   int
	TeamBScore   int
	WinnerTeamID *uuid.UUID
}

func (s *SessionService) Create(ctx context.Context, input CreateSessionInput) (*domain.Session, error) {
	session := &domain.Session{
		ID:       uuid.New(),
		Date:     input.Date,
		Location: input.Location,
		Status:   domain.SessionStatusScheduled,
		Notes:    input.Notes,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessionRepo.List(ctx)
}

func (s *SessionService) Update(ctx context.Context, id uuid.UUID, input UpdateSessionInput) (*domain.Session, error) {
	session, err := s.getPlain(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		session.Date = *input.Date
	}
	if input.Location != nil {
		session.Location = *input.Location
	}
	if input.Notes != nil {
		session.Notes = *input.Notes
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.getPlain(ctx, id); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, id)
}

// Complete moves a scheduled session to COMPLETED. Terminal sessions
// reject any further transition.
func (s *SessionService) Complete(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.transition(ctx, id, domain.SessionStatusCompleted)
}

// Cancel moves a scheduled session to CANCELED.
func (s *SessionService) Cancel(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.transition(ctx, id, domain.SessionStatusCanceled)
}

func (s *SessionService) transition(ctx context.Context, id uuid.UUID, to domain.SessionStatus) (*domain.Session, error) {
	session, err := s.getPlain(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, domain.ErrSessionFinalized
	}
	session.Status = to
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RecordResult upserts the session's final score. The winner is derived
// from the scores when not explicitly supplied; a tie leaves it unset.
func (s *SessionService) RecordResult(ctx context.Context, sessionID uuid.UUID, input RecordResultInput) (*domain.GameResult, error) {
	if _, err := s.getPlain(ctx, sessionID); err != nil {
		return nil, err
	}

	result := &domain.GameResult{
		ID:           uuid.New(),
		SessionID:    sessionID,
		TeamAID:      input.TeamAID,
		TeamBID:      input.TeamBID,
		TeamAScore:   input.TeamAScore,
		TeamBScore:   input.TeamBScore,
		WinnerTeamID: input.WinnerTeamID,
	}
	result.DeriveWinner()

	if err := s.resultRepo.Upsert(ctx, result); err != nil {
		return nil, err
	}
	return s.resultRepo.GetBySessionID(ctx, sessionID)
}

func (s *SessionService) GetResult(ctx context.Context, sessionID uuid.UUID) (*domain.GameResult, error) {
	result, err := s.resultRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrResultNotFound
		}
		return nil, err
	}
	return result, nil
}

func (s *SessionService) getPlain(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}
