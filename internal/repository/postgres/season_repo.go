package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"gorm.io/gorm"
)

type seasonRepository struct {
	db *gorm.DB
}

func NewSeasonRepository(db *gorm.DB) *seasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) Create(ctx context.Context, season *domain.Season) error {
	return r.db.WithContext(ctx).Create(season).Error
}

func (r *seasonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Season, error) {
	var season domain.Season
	err := r.db.WithContext(ctx).First(&season, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepository) List(ctx context.Context) ([]*domain.Season, error) {
	var seasons []*domain.Season
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *seasonRepository) Update(ctx context.Context, season *domain.Season) error {
	return r.db.WithContext(ctx).Save(season).Error
}

func (r *seasonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Season{}, "id = ?", id).Error
}
