package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vocadeck/vocadeck-api/internal/api"
	apiMiddleware "github.com/vocadeck/vocadeck-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	sessionHandler := api.NewSessionHandler(app.sessionStore, app.tokenService, app.tokenLifetime())
	deckHandler := api.NewDeckHandler(app.deckService)
	cardHandler := api.NewCardHandler(app.deckService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Session creation (public)
		r.Post("/sessions", sessionHandler.Create)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Deck loading endpoints
			r.Post("/deck/sample", deckHandler.LoadSample)
			r.Post("/deck/source", deckHandler.LoadFromSource)

			// Card viewing endpoints
			r.Post("/cards/draw", cardHandler.Draw)
			r.Post("/cards/flip", cardHandler.Flip)
			r.Get("/cards/current", cardHandler.Current)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
