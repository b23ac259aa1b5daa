package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vitorhpaes/futebasssss-sub000/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	name     string
	password string
	userType domain.UserType
	position *domain.Position
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		email:    fmt.Sprintf("player_%s@test.dev", suffix),
		name:     fmt.Sprintf("Player %s", suffix),
		password: "testpassword123",
		userType: domain.UserTypePlayer,
	}
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.userType = domain.UserTypeAdmin
	return b
}

func (b *UserBuilder) WithPosition(position domain.Position) *UserBuilder {
	b.position = &position
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		Name:         b.name,
		PasswordHash: string(hashedPassword),
		Type:         b.userType,
		Position:     b.position,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndAuthenticate creates a user and logs in via the API, returning
// the user and a bearer token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	body, _ := json.Marshal(map[string]string{
		"email":    b.email,
		"password": password,
	})
	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to login: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login returned status %d", resp.StatusCode)
	}

	var authResp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}

	return user, authResp.AccessToken
}

// SessionBuilder creates test sessions
type SessionBuilder struct {
	date     time.Time
	location string
	status   domain.SessionStatus
	notes    string
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		date:     time.Now().Add(48 * time.Hour),
		location: "Campo do Flamengo",
		status:   domain.SessionStatusScheduled,
	}
}

func (b *SessionBuilder) WithStatus(status domain.SessionStatus) *SessionBuilder {
	b.status = status
	return b
}

func (b *SessionBuilder) WithDate(date time.Time) *SessionBuilder {
	b.date = date
	return b
}

func (b *SessionBuilder) WithLocation(location string) *SessionBuilder {
	b.location = location
	return b
}

func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Session {
	t.Helper()

	session := &domain.Session{
		ID:       uuid.New(),
		Date:     b.date,
		Location: b.location,
		Status:   b.status,
		Notes:    b.notes,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return session
}

// TeamBuilder creates test teams
type TeamBuilder struct {
	sessionID uuid.UUID
	name      string
	color     string
}

func NewTeamBuilder(sessionID uuid.UUID) *TeamBuilder {
	return &TeamBuilder{
		sessionID: sessionID,
		name:      fmt.Sprintf("Time %s", uuid.New().String()[:4]),
	}
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.name = name
	return b
}

func (b *TeamBuilder) WithColor(color string) *TeamBuilder {
	b.color = color
	return b
}

func (b *TeamBuilder) Build(t *testing.T, db *gorm.DB) *domain.Team {
	t.Helper()

	team := &domain.Team{
		ID:        uuid.New(),
		SessionID: b.sessionID,
		Name:      b.name,
		Color:     b.color,
	}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("failed to create team: %v", err)
	}
	return team
}

// PlayerSessionBuilder creates roster entries
type PlayerSessionBuilder struct {
	userID    uuid.UUID
	sessionID uuid.UUID
	teamID    *uuid.UUID
	confirmed bool
	willPlay  bool
	goals     int
	assists   int
}

func NewPlayerSessionBuilder(userID, sessionID uuid.UUID) *PlayerSessionBuilder {
	return &PlayerSessionBuilder{
		userID:    userID,
		sessionID: sessionID,
		confirmed: true,
		willPlay:  true,
	}
}

func (b *PlayerSessionBuilder) OnTeam(teamID uuid.UUID) *PlayerSessionBuilder {
	b.teamID = &teamID
	return b
}

func (b *PlayerSessionBuilder) Unconfirmed() *PlayerSessionBuilder {
	b.confirmed = false
	return b
}

func (b *PlayerSessionBuilder) AsResenha() *PlayerSessionBuilder {
	b.confirmed = true
	b.willPlay = false
	return b
}

func (b *PlayerSessionBuilder) WithStats(goals, assists int) *PlayerSessionBuilder {
	b.goals = goals
	b.assists = assists
	return b
}

func (b *PlayerSessionBuilder) Build(t *testing.T, db *gorm.DB) *domain.PlayerSession {
	t.Helper()

	ps := &domain.PlayerSession{
		ID:        uuid.New(),
		UserID:    b.userID,
		SessionID: b.sessionID,
		TeamID:    b.teamID,
		Confirmed: b.confirmed,
		WillPlay:  b.willPlay,
		Goals:     b.goals,
		Assists:   b.assists,
	}
	if err := db.Create(ps).Error; err != nil {
		t.Fatalf("failed to create player session: %v", err)
	}
	return ps
}

// SeedSessionWithPlayers creates a scheduled session with n confirmed
// playing users and their roster entries.
func SeedSessionWithPlayers(t *testing.T, db *gorm.DB, n int) (*domain.Session, []*domain.User, []*domain.PlayerSession) {
	t.Helper()

	session := NewSessionBuilder().Build(t, db)
	users := make([]*domain.User, 0, n)
	entries := make([]*domain.PlayerSession, 0, n)
	for i := 0; i < n; i++ {
		user, _ := NewUserBuilder().Build(t, db)
		users = append(users, user)
		entries = append(entries, NewPlayerSessionBuilder(user.ID, session.ID).Build(t, db))
	}
	return session, users, entries
}
