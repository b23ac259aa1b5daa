package domain

import (
	"time"

	"github.com/google/uuid"
)

// Team belongs to a single session. CaptainID references a PlayerSession
// on this team's roster; the display name is derived from the captain at
// read time rather than stored.
type Team struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SessionID uuid.UUID  `json:"sessionId" gorm:"type:uuid;not null;index"`
	Name      string     `json:"name" gorm:"not null"`
	Color     string     `json:"color"`
	CaptainID *uuid.UUID `json:"captainId" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Relations
	Session *Session         `json:"-" gorm:"foreignKey:SessionID"`
	Captain *PlayerSession   `json:"captain,omitempty" gorm:"foreignKey:CaptainID"`
	Players []*PlayerSession `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}

// DisplayName returns "Time <captain first name>" when a captain with a
// loaded user is present, otherwise the stored name.
func (t *Team) DisplayName() string {
	if t.Captain != nil && t.Captain.User != nil {
		if first := t.Captain.User.FirstName(); first != "" {
			return "Time " + first
		}
	}
	return t.Name
}

// HasPlayer reports whether the given player-session is on this team's
// loaded roster.
func (t *Team) HasPlayer(playerSessionID uuid.UUID) bool {
	for _, p := range t.Players {
		if p.ID == playerSessionID {
			return true
		}
	}
	return false
}
