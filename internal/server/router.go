package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sevigo/spell-warden/internal/core"
	"github.com/sevigo/spell-warden/internal/server/handler"
)

// APIPrefix is the path every versioned API route lives under.
const APIPrefix = "/api/v1"

// NewRouter creates and configures a new HTTP router with middleware and API routes.
func NewRouter(resolver core.SettingsResolver, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route(APIPrefix, func(r chi.Router) {
		resolveHandler := handler.NewResolveHandler(resolver, logger)
		r.Post("/resolve", resolveHandler.Resolve)
		r.Post("/resolve/all", resolveHandler.ResolveAll)
	})

	return r
}
