package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"gorm.io/gorm"
)

type teamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *teamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).
		Preload("Players").
		Preload("Players.User").
		Preload("Captain").
		Preload("Captain.User").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := r.db.WithContext(ctx).
		Preload("Players").
		Preload("Players.User").
		Preload("Captain").
		Preload("Captain.User").
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// SetCaptain writes the captain column directly. A Save on a team loaded
// with its Captain association would let gorm restore the old captain_id
// from the preloaded struct before the UPDATE, so the overwrite must not
// go through the full-row path.
func (r *teamRepository) SetCaptain(ctx context.Context, teamID, playerSessionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("id = ?", teamID).
		Update("captain_id", playerSessionID).Error
}
