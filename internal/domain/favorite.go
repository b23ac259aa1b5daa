package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxFavoritesPerSession caps how many favorite-teammate votes one voter
// may cast within a single session.
const MaxFavoritesPerSession = 5

// PlayerFavorite is a peer-nominated "best teammate" vote scoped to one
// session. The (session_id, voter_id, favorite_id) triple is unique so
// that re-voting is idempotent at the database level.
type PlayerFavorite struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID  uuid.UUID  `json:"sessionId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_session_voter_favorite"`
	VoterID    uuid.UUID  `json:"voterId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_session_voter_favorite"`
	FavoriteID uuid.UUID  `json:"favoriteId" gorm:"type:uuid;not null;uniqueIndex:idx_favorites_session_voter_favorite"`
	TeamID     *uuid.UUID `json:"teamId" gorm:"type:uuid"`
	CreatedAt  time.Time  `json:"createdAt"`

	// Relations
	Voter    *User    `json:"voter,omitempty" gorm:"foreignKey:VoterID"`
	Favorite *User    `json:"favorite,omitempty" gorm:"foreignKey:FavoriteID"`
	Session  *Session `json:"-" gorm:"foreignKey:SessionID"`
}

func (PlayerFavorite) TableName() string {
	return "player_favorites"
}

// FavoriteCount is one row of the most-favorited ranking: a user's public
// profile fields plus how many votes they received.
type FavoriteCount struct {
	UserID        uuid.UUID `json:"userId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Position      *Position `json:"position"`
	FavoriteCount int       `json:"favoriteCount"`
}
