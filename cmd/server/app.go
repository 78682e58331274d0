package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vocadeck/vocadeck-api/internal/config"
	"github.com/vocadeck/vocadeck-api/internal/platform/gsheets"
	"github.com/vocadeck/vocadeck-api/internal/platform/memory"
	"github.com/vocadeck/vocadeck-api/internal/platform/xlsxfile"
	"github.com/vocadeck/vocadeck-api/internal/service/deck"
	"github.com/vocadeck/vocadeck-api/internal/service/session"
	"github.com/vocadeck/vocadeck-api/internal/source"
	"github.com/vocadeck/vocadeck-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and wiring.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	sessionStore store.SessionStore

	// Service interfaces
	tokenService session.TokenService
	deckService  deck.DeckService

	// External spreadsheet source; nil when none is configured
	source source.Source
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the configuration and logger that must be
// established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.tokenService, err = session.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("session token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Session lifetime tracks the token lifetime; a session whose token
	// can no longer validate is unreachable and safe to evict.
	app.sessionStore = memory.NewSessionStore(app.tokenLifetime())

	app.source, err = setupSource(ctx, cfg.Source, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize spreadsheet source: %w", err)
	}

	app.deckService = deck.NewDeckService(app.sessionStore, app.source, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// setupSource builds the spreadsheet source named by the configuration.
// An empty kind means sample-only operation; LoadFromSource then reports
// that no source is configured.
func setupSource(ctx context.Context, cfg config.SourceConfig, logger *slog.Logger) (source.Source, error) {
	switch cfg.Kind {
	case "google_sheet":
		src, err := gsheets.New(ctx, logger, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google Sheets source: %w", err)
		}
		logger.Info("Google Sheets source configured", "spreadsheet_id", cfg.SpreadsheetID)
		return src, nil

	case "xlsx":
		src, err := xlsxfile.New(logger, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create xlsx source: %w", err)
		}
		logger.Info("xlsx source configured", "workbook_path", cfg.WorkbookPath)
		return src, nil

	case "":
		logger.Info("no external source configured, sample-only operation")
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}

// tokenLifetime returns the configured session token lifetime.
func (app *application) tokenLifetime() time.Duration {
	return time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
