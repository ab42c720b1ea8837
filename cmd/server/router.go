package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/pegword-api/internal/api"
	apimiddleware "github.com/phrazzld/pegword-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	workspaceHandler := api.NewWorkspaceHandler(app.workspaceService)
	entryHandler := api.NewEntryHandler(app.entryService, app.suggestionService)
	transferHandler := api.NewTransferHandler(app.transferService)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/workspaces", func(r chi.Router) {
				r.Post("/", workspaceHandler.Create)
				r.Get("/", workspaceHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", workspaceHandler.Get)
					r.Put("/", workspaceHandler.Rename)
					r.Delete("/", workspaceHandler.Delete)

					r.Get("/entries", entryHandler.List)
					r.Put("/entries/{key}", entryHandler.SetWord)
					r.Get("/review", entryHandler.Review)
					r.Get("/suggest/{key}", entryHandler.Suggest)

					r.Get("/export", transferHandler.Export)
					r.Post("/import", transferHandler.Import)
				})
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
