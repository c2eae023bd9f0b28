package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"docuchat-ai/internal/handlers"
	"docuchat-ai/internal/rag"
	"docuchat-ai/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine     rag.Engine
	Runner     handlers.IngestRunner
	IndexAdmin handlers.IndexAdmin
	Documents  storage.DocumentStore
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)

	askHandler := handlers.NewAskHandler(deps.Engine)
	ingestHandler := handlers.NewIngestHandler(deps.Runner)
	statsHandler := handlers.NewStatsHandler(deps.IndexAdmin)
	documentsHandler := handlers.NewDocumentsHandler(deps.Documents)
	adminHandler := handlers.NewAdminHandler(deps.IndexAdmin, deps.Documents)
	healthHandler := handlers.NewHealthHandler(deps.IndexAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Route("/v1", func(r chi.Router) {
			r.Method(http.MethodPost, "/ask", askHandler)
			r.Method(http.MethodPost, "/ingest", ingestHandler)
			r.Method(http.MethodGet, "/stats", statsHandler)
			r.Method(http.MethodGet, "/documents", documentsHandler)
			r.Post("/index/clear", adminHandler.Clear)
			r.Delete("/index", adminHandler.Delete)
		})
	})

	return r
}
