package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/samhrndi/ecommerce-analytics/internal/dashboard"
)

// Config holds server-specific configuration.
type Config struct {
	Addr        string
	CORSOrigins []string
}

func NewHTTPServer(cfg Config, svc *dashboard.Service) *http.Server {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	dashboard.RegisterRoutes(r, dashboard.NewHandler(svc))

	return &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
}
