package domain

import "errors"

// Not-found errors
var (
	ErrUserNotFound          = errors.New("user not found")
	ErrSessionNotFound       = errors.New("session not found")
	ErrTeamNotFound          = errors.New("team not found")
	ErrPlayerSessionNotFound = errors.New("player session not found")
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrResultNotFound        = errors.New("game result not found")
	ErrSeasonNotFound        = errors.New("season not found")
)

// Roster and captaincy errors
var (
	ErrInvalidTeam         = errors.New("invalid team id")
	ErrTeamWrongSession    = errors.New("team does not belong to this session")
	ErrNotOnTeam           = errors.New("player session is not on this team's roster")
	ErrDuplicateEntry      = errors.New("player already has an entry for this session")
	ErrNegativeStats       = errors.New("goals and assists must be non-negative")
	ErrSessionNotCompleted = errors.New("session is not completed")
	ErrSessionFinalized    = errors.New("session is already finalized")
)

// Favorite-voting errors
var (
	ErrSelfVote      = errors.New("voter cannot favorite themselves")
	ErrFavoriteLimit = errors.New("favorite limit reached for this session")
)
