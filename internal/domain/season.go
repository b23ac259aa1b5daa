package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Season is a date-range label for grouping sessions.
type Season struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StartDate   datatypes.Date `json:"startDate" gorm:"not null"`
	EndDate     datatypes.Date `json:"endDate" gorm:"not null"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (Season) TableName() string {
	return "seasons"
}
