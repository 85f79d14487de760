package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crucial707/blog-api/internal/auth"
	"github.com/crucial707/blog-api/internal/config"
	"github.com/crucial707/blog-api/internal/handlers"
	"github.com/crucial707/blog-api/internal/middleware"
	"github.com/crucial707/blog-api/internal/repo"
	"github.com/crucial707/blog-api/internal/service"
)

// newRouter wires repositories, services and handlers onto a chi router.
func newRouter(db *sql.DB, cfg config.Config) http.Handler {
	tokens := auth.NewTokenCodec([]byte(cfg.JWTSecret), time.Duration(cfg.JWTExpireHours)*time.Hour)

	authHandler := &handlers.AuthHandler{
		Service: service.NewAuthService(repo.NewUserRepo(db), auth.NewBcryptHasher(cfg.BcryptCost), tokens),
	}
	postHandler := &handlers.PostHandler{
		Service: service.NewPostService(repo.NewPostRepo(db)),
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLog)
	r.Use(middleware.Prometheus)
	r.Use(middleware.SecurityHeaders(cfg.TLSEnabled()))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}
	r.Use(middleware.MaxBytes(int64(cfg.MaxBodyBytes)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			handlers.JSONError(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		r.Route("/post", func(r chi.Router) {
			r.Get("/{postID}", postHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTMiddleware(tokens))
				r.Post("/create", postHandler.Create)
				r.Put("/{postID}", postHandler.Update)
				r.Delete("/{postID}", postHandler.Delete)
			})
		})
	})

	return r
}
