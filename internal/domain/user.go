package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypePlayer UserType = "PLAYER"
	UserTypeAdmin  UserType = "ADMIN"
)

type Position string

const (
	PositionGoalkeeper Position = "GOALKEEPER"
	PositionDefender   Position = "DEFENDER"
	PositionMidfielder Position = "MIDFIELDER"
	PositionForward    Position = "FORWARD"
)

func (p Position) Valid() bool {
	switch p {
	case PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string         `json:"email" gorm:"uniqueIndex;not null"`
	Name         string         `json:"name" gorm:"not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Type         UserType       `json:"type" gorm:"not null;default:'PLAYER'"`
	Phone        string         `json:"phone"`
	Position     *Position      `json:"position"`
	Observations string         `json:"observations"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// FirstName returns the first word of the user's name. Used for the
// derived team display name.
func (u *User) FirstName() string {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return ""
	}
	return strings.Fields(name)[0]
}

func (u *User) IsAdmin() bool {
	return u.Type == UserTypeAdmin
}
