package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gameResultRepository struct {
	db *gorm.DB
}

func NewGameResultRepository(db *gorm.DB) *gameResultRepository {
	return &gameResultRepository{db: db}
}

func (r *gameResultRepository) Upsert(ctx context.Context, result *domain.GameResult) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"team_a_id":      result.TeamAID,
				"team_b_id":      result.TeamBID,
				"team_a_score":   result.TeamAScore,
				"team_b_score":   result.TeamBScore,
				"winner_team_id": result.WinnerTeamID,
				"updated_at":     time.Now(),
			}),
		}).
		Create(result).Error
}

func (r *gameResultRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.GameResult, error) {
	var result domain.GameResult
	err := r.db.WithContext(ctx).First(&result, "session_id = ?", sessionID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}
