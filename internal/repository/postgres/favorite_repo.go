package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *favoriteRepository {
	return &favoriteRepository{db: db}
}

// CastVote serializes on the voter's user row (SELECT ... FOR UPDATE) so
// two concurrent votes from the same voter cannot both pass the cap
// check. A repeated (session, voter, favorite) triple returns the
// existing row unchanged.
func (r *favoriteRepository) CastVote(ctx context.Context, fav *domain.PlayerFavorite) (*domain.PlayerFavorite, error) {
	var result domain.PlayerFavorite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var voter domain.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&voter, "id = ?", fav.VoterID).Error
		if err != nil {
			return err
		}

		err = tx.Where("session_id = ? AND voter_id = ? AND favorite_id = ?",
			fav.SessionID, fav.VoterID, fav.FavoriteID).
			First(&result).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var count int64
		err = tx.Model(&domain.PlayerFavorite{}).
			Where("session_id = ? AND voter_id = ?", fav.SessionID, fav.VoterID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= domain.MaxFavoritesPerSession {
			return domain.ErrFavoriteLimit
		}

		if err := tx.Create(fav).Error; err != nil {
			return err
		}
		result = *fav
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *favoriteRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PlayerFavorite, error) {
	var fav domain.PlayerFavorite
	err := r.db.WithContext(ctx).First(&fav, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PlayerFavorite{}, "id = ?", id).Error
}

func (r *favoriteRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*domain.PlayerFavorite, error) {
	var favorites []*domain.PlayerFavorite
	err := r.db.WithContext(ctx).
		Preload("Voter").
		Preload("Favorite").
		Where("session_id = ?", sessionID).
		Order("created_at").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) ListByVoter(ctx context.Context, voterID uuid.UUID) ([]*domain.PlayerFavorite, error) {
	var favorites []*domain.PlayerFavorite
	err := r.db.WithContext(ctx).
		Preload("Favorite").
		Where("voter_id = ?", voterID).
		Order("created_at").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) ListByFavorite(ctx context.Context, favoriteID uuid.UUID) ([]*domain.PlayerFavorite, error) {
	var favorites []*domain.PlayerFavorite
	err := r.db.WithContext(ctx).
		Preload("Voter").
		Where("favorite_id = ?", favoriteID).
		Order("created_at").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) MostFavorited(ctx context.Context, limit int) ([]*domain.FavoriteCount, error) {
	var results []*domain.FavoriteCount
	err := r.db.WithContext(ctx).
		Model(&domain.PlayerFavorite{}).
		Select("users.id AS user_id, users.name, users.email, users.position, COUNT(*) AS favorite_count").
		Joins("JOIN users ON users.id = player_favorites.favorite_id").
		Where("users.deleted_at IS NULL").
		Group("users.id, users.name, users.email, users.position").
		Order("favorite_count DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
