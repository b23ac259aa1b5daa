package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCanceled  SessionStatus = "CANCELED"
)

// Terminal reports whether the status admits no further transitions.
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCanceled
}

// Session is one scheduled pickup match event.
type Session struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Date      time.Time      `json:"date" gorm:"not null"`
	Location  string         `json:"location" gorm:"not null"`
	Status    SessionStatus  `json:"status" gorm:"not null;default:'SCHEDULED'"`
	Notes     string         `json:"notes"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Teams          []*Team          `json:"teams,omitempty" gorm:"foreignKey:SessionID"`
	PlayerSessions []*PlayerSession `json:"playerSessions,omitempty" gorm:"foreignKey:SessionID"`
}

func (Session) TableName() string {
	return "sessions"
}
