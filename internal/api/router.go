package api

import (
	"net/http"

	"github.com/campusconnect/backend/internal/api/handlers"
	"github.com/campusconnect/backend/internal/api/middleware"
	"github.com/campusconnect/backend/internal/config"
	"github.com/campusconnect/backend/internal/service"
	"github.com/campusconnect/backend/internal/storage"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, photoStore storage.PhotoStore, logger zerolog.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile, photoStore, cfg)
	matchHandler := handlers.NewMatchHandler(services.Match)

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"OK","message":"CampusConnect API is running"}`))
		})

		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/signin", authHandler.Signin)
			r.Post("/forgot-password", authHandler.ForgotPassword)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/user", func(r chi.Router) {
				r.Get("/profile", profileHandler.GetProfile)
				r.Put("/profile", profileHandler.UpdateProfile)
				r.Post("/photos", profileHandler.UploadPhotos)
			})

			r.Get("/matches", matchHandler.GetMatches)
			r.Post("/swipe", matchHandler.Swipe)
		})
	})

	// Uploaded photos are served straight from disk.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}
