package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/phrazzld/pegword-api/internal/config"
	"github.com/phrazzld/pegword-api/internal/domain/homonym"
	"github.com/phrazzld/pegword-api/internal/domain/major"
	"github.com/phrazzld/pegword-api/internal/generation"
	"github.com/phrazzld/pegword-api/internal/platform/gemini"
	"github.com/phrazzld/pegword-api/internal/platform/metaphone"
	"github.com/phrazzld/pegword-api/internal/platform/postgres"
	"github.com/phrazzld/pegword-api/internal/service"
	"github.com/phrazzld/pegword-api/internal/service/auth"
	"github.com/phrazzld/pegword-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore      store.UserStore
	workspaceStore store.WorkspaceStore
	entryStore     store.EntryStore

	// Service interfaces
	jwtService        auth.JWTService
	passwordVerifier  auth.PasswordVerifier
	majorService      major.Service
	userService       service.UserService
	workspaceService  service.WorkspaceService
	entryService      service.EntryService
	transferService   service.TransferService
	suggestionService service.SuggestionService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordVerifier = auth.NewBcryptVerifier()

	bcryptCost := cfg.Auth.BcryptCost
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	app.userStore = postgres.NewPostgresUserStore(db, bcryptCost, logger)
	app.workspaceStore = postgres.NewPostgresWorkspaceStore(db, logger)
	app.entryStore = postgres.NewPostgresEntryStore(db, logger)

	// Major-system service, with the digit table overridable from config.
	majorParams, err := majorParamsFromConfig(cfg.Major)
	if err != nil {
		return nil, fmt.Errorf("invalid major-system configuration: %w", err)
	}
	app.majorService = major.NewServiceWithParams(majorParams)

	grouper := homonym.NewGrouper(metaphone.NewKeyer(), logger)

	// The LLM suggester is optional; without an API key the suggestion
	// endpoint reports the feature as unavailable.
	var suggester generation.Suggester
	if cfg.Suggest.Enabled() {
		geminiSuggester, err := gemini.NewSuggester(ctx, logger, cfg.Suggest, majorParams)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize suggester: %w", err)
		}
		suggester = geminiSuggester
		logger.Info("LLM suggester initialized", "model", cfg.Suggest.ModelName)
	} else {
		logger.Info("LLM suggester not configured, suggestions disabled")
	}

	app.userService, err = service.NewUserService(app.userStore, app.passwordVerifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.workspaceService, err = service.NewWorkspaceService(app.workspaceStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace service: %w", err)
	}

	app.entryService, err = service.NewEntryService(
		app.workspaceStore,
		app.entryStore,
		app.majorService,
		grouper,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create entry service: %w", err)
	}

	app.transferService, err = service.NewTransferService(
		db,
		app.workspaceStore,
		app.entryStore,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transfer service: %w", err)
	}

	app.suggestionService, err = service.NewSuggestionService(
		app.workspaceStore,
		app.entryStore,
		suggester,
		app.majorService,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion service: %w", err)
	}

	logger.Info("application initialized successfully")
	return app, nil
}

// majorParamsFromConfig builds the digit-to-sound table from configuration.
// An empty table means the standard major-system grouping.
func majorParamsFromConfig(cfg config.MajorConfig) (*major.Params, error) {
	if len(cfg.DigitSounds) == 0 {
		return major.NewDefaultParams(), nil
	}

	sounds := make(map[rune][]major.Symbol, len(cfg.DigitSounds))
	for digit, family := range cfg.DigitSounds {
		if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
			return nil, fmt.Errorf("digit sound table key %q is not a single digit", digit)
		}
		symbols := make([]major.Symbol, 0, len(family))
		for _, s := range family {
			symbols = append(symbols, major.Symbol(s))
		}
		sounds[rune(digit[0])] = symbols
	}
	return major.NewParams(sounds)
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
