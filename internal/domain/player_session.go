package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlayerSession is a user's participation record within one session.
// The (user_id, session_id) pair is unique so that concurrent
// confirmations cannot create duplicate roster rows.
type PlayerSession struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_player_sessions_user_session"`
	SessionID uuid.UUID      `json:"sessionId" gorm:"type:uuid;not null;uniqueIndex:idx_player_sessions_user_session"`
	TeamID    *uuid.UUID     `json:"teamId" gorm:"type:uuid;index"`
	Confirmed bool           `json:"confirmed" gorm:"not null;default:false"`
	WillPlay  bool           `json:"willPlay" gorm:"not null;default:true"`
	Goals     int            `json:"goals" gorm:"not null;default:0"`
	Assists   int            `json:"assists" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Session *Session `json:"-" gorm:"foreignKey:SessionID"`
	Team    *Team    `json:"-" gorm:"foreignKey:TeamID"`
}

func (PlayerSession) TableName() string {
	return "player_sessions"
}

// IsPlaying reports whether the entry counts toward the playing roster.
func (ps *PlayerSession) IsPlaying() bool {
	return ps.Confirmed && ps.WillPlay
}

// IsResenha reports whether the entry is a confirmed social-only attendee.
func (ps *PlayerSession) IsResenha() bool {
	return ps.Confirmed && !ps.WillPlay
}

// Roster partitions a session's participation records by attendance state.
type Roster struct {
	Playing []*PlayerSession `json:"playing"`
	Resenha []*PlayerSession `json:"resenha"`
	Pending []*PlayerSession `json:"pending"`
}

// BuildRoster splits entries into playing, resenha and pending buckets.
func BuildRoster(entries []*PlayerSession) *Roster {
	roster := &Roster{
		Playing: []*PlayerSession{},
		Resenha: []*PlayerSession{},
		Pending: []*PlayerSession{},
	}
	for _, e := range entries {
		switch {
		case e.IsPlaying():
			roster.Playing = append(roster.Playing, e)
		case e.IsResenha():
			roster.Resenha = append(roster.Resenha, e)
		default:
			roster.Pending = append(roster.Pending, e)
		}
	}
	return roster
}

// TeamSplit groups playing entries by team assignment.
type TeamSplit struct {
	Assigned   map[uuid.UUID][]*PlayerSession `json:"-"`
	Unassigned []*PlayerSession               `json:"unassigned"`
}

// SplitByTeam buckets playing entries into per-team slices plus the
// unassigned pool. Resenha and pending entries are ignored.
func SplitByTeam(entries []*PlayerSession) *TeamSplit {
	split := &TeamSplit{
		Assigned:   make(map[uuid.UUID][]*PlayerSession),
		Unassigned: []*PlayerSession{},
	}
	for _, e := range entries {
		if !e.IsPlaying() {
			continue
		}
		if e.TeamID == nil {
			split.Unassigned = append(split.Unassigned, e)
			continue
		}
		split.Assigned[*e.TeamID] = append(split.Assigned[*e.TeamID], e)
	}
	return split
}
