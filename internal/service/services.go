package service

import (
	"github.com/vitorhpaes/futebasssss-sub000/internal/config"
	"github.com/vitorhpaes/futebasssss-sub000/internal/repository"
)

type Services struct {
	Auth     *AuthService
	User     *UserService
	Session  *SessionService
	Roster   *RosterService
	Team     *TeamService
	Favorite *FavoriteService
	Season   *SeasonService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, cfg),
		User:     NewUserService(repos.User),
		Session:  NewSessionService(repos.Session, repos.GameResult),
		Roster:   NewRosterService(repos.PlayerSession, repos.Session, repos.Team, repos.User),
		Team:     NewTeamService(repos.Team, repos.Session),
		Favorite: NewFavoriteService(repos.Favorite, repos.Session, repos.User, repos.PlayerSession),
		Season:   NewSeasonService(repos.Season),
	}
}
