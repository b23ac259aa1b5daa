package domain

import (
	"time"

	"github.com/google/uuid"
)

// GameResult records the final score of a session. One result per session.
type GameResult struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID    uuid.UUID  `json:"sessionId" gorm:"type:uuid;not null;uniqueIndex"`
	TeamAID      uuid.UUID  `json:"teamAId" gorm:"type:uuid;not null"`
	TeamBID      uuid.UUID  `json:"teamBId" gorm:"type:uuid;not null"`
	TeamAScore   int        `json:"teamAScore" gorm:"not null;default:0"`
	TeamBScore   int        `json:"teamBScore" gorm:"not null;default:0"`
	WinnerTeamID *uuid.UUID `json:"winnerTeamId" gorm:"type:uuid"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	// Relations
	Session *Session `json:"-" gorm:"foreignKey:SessionID"`
}

func (GameResult) TableName() string {
	return "game_results"
}

// DeriveWinner fills WinnerTeamID from the scores when it was not
// explicitly supplied. A tie leaves the winner unset.
func (g *GameResult) DeriveWinner() {
	if g.WinnerTeamID != nil {
		return
	}
	switch {
	case g.TeamAScore > g.TeamBScore:
		id := g.TeamAID
		g.WinnerTeamID = &id
	case g.TeamBScore > g.TeamAScore:
		id := g.TeamBID
		g.WinnerTeamID = &id
	}
}
