package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// read-and-resolve routes, open to every caller
	router.Group(func(r chi.Router) {
		r.Post("/api/config/resolve", h.resolveConfig)
		r.Post("/api/config/validate", h.validateConfig)
		r.Get("/api/config/defaults", h.getDefaults)
		r.Get("/api/config/template", h.getTemplate)
		r.Get("/api/runs", h.listRuns)
		r.Get("/api/runs/{id}", h.getRun)
		r.Get("/api/version", h.getServerVersion)
	})

	// destructive routes, token-guarded when auth is configured
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)
		r.Delete("/api/runs/{id}", h.deleteRun)
	})

	router.MethodNotAllowed(notFoundOnUnknownMethod(router))

	return router
}
