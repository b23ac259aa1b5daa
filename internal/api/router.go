package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/vitorhpaes/futebasssss-sub000/internal/api/handlers"
	"github.com/vitorhpaes/futebasssss-sub000/internal/api/middleware"
	"github.com/vitorhpaes/futebasssss-sub000/internal/service"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	sessionHandler := handlers.NewSessionHandler(services.Session, services.Roster)
	teamHandler := handlers.NewTeamHandler(services.Team)
	playerSessionHandler := handlers.NewPlayerSessionHandler(services.Roster)
	favoriteHandler := handlers.NewFavoriteHandler(services.Favorite)
	seasonHandler := handlers.NewSeasonHandler(services.Season)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// User routes
			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Patch("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
					r.Post("/{id}/restore", userHandler.Restore)
					r.Delete("/{id}/permanent", userHandler.PermanentDelete)
				})
			})

			// Session routes
			r.Route("/sessions", func(r chi.Router) {
				r.Get("/", sessionHandler.List)
				r.Get("/{id}", sessionHandler.Get)
				r.Get("/{id}/roster", sessionHandler.Roster)
				r.Get("/{id}/result", sessionHandler.GetResult)
				r.Post("/{id}/confirm", sessionHandler.Confirm)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", sessionHandler.Create)
					r.Patch("/{id}", sessionHandler.Update)
					r.Delete("/{id}", sessionHandler.Delete)
					r.Post("/{id}/complete", sessionHandler.Complete)
					r.Post("/{id}/cancel", sessionHandler.Cancel)
					r.Post("/{id}/assign", sessionHandler.AssignTeam)
					r.Put("/{id}/result", sessionHandler.RecordResult)
				})
			})

			// Team routes
			r.Route("/teams", func(r chi.Router) {
				r.Get("/{id}", teamHandler.Get)
				r.Get("/session/{sessionId}", teamHandler.ListBySession)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", teamHandler.Create)
					r.Patch("/{id}/captain", teamHandler.SetCaptain)
				})
			})

			// Player session routes
			r.Route("/player-sessions", func(r chi.Router) {
				r.Get("/{id}", playerSessionHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", playerSessionHandler.Create)
					r.Patch("/{id}/stats", playerSessionHandler.UpdateStats)
					r.Patch("/{id}/will-play", playerSessionHandler.UpdateWillPlay)
				})
			})

			// Favorite routes
			r.Route("/player-favorites", func(r chi.Router) {
				r.Post("/", favoriteHandler.Cast)
				r.Delete("/{id}", favoriteHandler.Delete)
				r.Get("/session/{sessionId}", favoriteHandler.ListBySession)
				r.Get("/voter/{userId}", favoriteHandler.ListByVoter)
				r.Get("/favorite/{userId}", favoriteHandler.ListByFavorite)
				r.Get("/most-favorited", favoriteHandler.MostFavorited)
			})

			// Season routes
			r.Route("/seasons", func(r chi.Router) {
				r.Get("/", seasonHandler.List)
				r.Get("/{id}", seasonHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", seasonHandler.Create)
					r.Patch("/{id}", seasonHandler.Update)
					r.Delete("/{id}", seasonHandler.Delete)
				})
			})
		})
	})

	return r
}
