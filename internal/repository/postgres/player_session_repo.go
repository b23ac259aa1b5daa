package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerSessionRepository struct {
	db *gorm.DB
}

func NewPlayerSessionRepository(db *gorm.DB) *playerSessionRepository {
	return &playerSessionRepository{db: db}
}

func (r *playerSessionRepository) Create(ctx context.Context, ps *domain.PlayerSession) error {
	return r.db.WithContext(ctx).Create(ps).Error
}

func (r *playerSessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlayerSession, error) {
	var ps domain.PlayerSession
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&ps, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *playerSessionRepository) GetByUserAndSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.PlayerSession, error) {
	var ps domain.PlayerSession
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		First(&ps).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *playerSessionRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.PlayerSession, error) {
	var entries []*domain.PlayerSession
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ConfirmUpsert is a single INSERT ... ON CONFLICT DO UPDATE on the
// (user_id, session_id) unique index. Team assignment and stats are left
// untouched when the row already exists.
func (r *playerSessionRepository) ConfirmUpsert(ctx context.Context, userID, sessionID uuid.UUID, willPlay bool) (*domain.PlayerSession, error) {
	ps := domain.PlayerSession{
		UserID:    userID,
		SessionID: sessionID,
		Confirmed: true,
		WillPlay:  willPlay,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "session_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"confirmed":  true,
				"will_play":  willPlay,
				"updated_at": time.Now(),
			}),
		}).
		Create(&ps).Error
	if err != nil {
		return nil, err
	}
	return r.GetByUserAndSession(ctx, userID, sessionID)
}

// AssignTeamUpsert sets the team on the (user, session) row, creating it
// if needed. When the move takes a captain off their previous team, the
// dangling captain reference is cleared in the same transaction.
func (r *playerSessionRepository) AssignTeamUpsert(ctx context.Context, userID, sessionID, teamID uuid.UUID) (*domain.PlayerSession, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.PlayerSession
		err := tx.Where("user_id = ? AND session_id = ?", userID, sessionID).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.TeamID != nil && *existing.TeamID != teamID {
				err := tx.Model(&domain.Team{}).
					Where("id = ? AND captain_id = ?", *existing.TeamID, existing.ID).
					Update("captain_id", nil).Error
				if err != nil {
					return err
				}
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// first contact with this session, row is created below
		default:
			return err
		}

		ps := domain.PlayerSession{
			UserID:    userID,
			SessionID: sessionID,
			TeamID:    &teamID,
			WillPlay:  true,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "session_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"team_id":    teamID,
				"updated_at": time.Now(),
			}),
		}).Create(&ps).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByUserAndSession(ctx, userID, sessionID)
}

func (r *playerSessionRepository) UpdateWillPlay(ctx context.Context, id uuid.UUID, willPlay bool) error {
	return r.db.WithContext(ctx).
		Model(&domain.PlayerSession{}).
		Where("id = ?", id).
		Update("will_play", willPlay).Error
}

func (r *playerSessionRepository) UpdateStats(ctx context.Context, id uuid.UUID, goals, assists int) error {
	return r.db.WithContext(ctx).
		Model(&domain.PlayerSession{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"goals":   goals,
			"assists": assists,
		}).Error
}

func (r *playerSessionRepository) Update(ctx context.Context, ps *domain.PlayerSession) error {
	return r.db.WithContext(ctx).Save(ps).Error
}

func (r *playerSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PlayerSession{}, "id = ?", id).Error
}
