package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/adityarahman/staffgate/internal/http"
	"github.com/adityarahman/staffgate/internal/service"
	"github.com/adityarahman/staffgate/internal/store"
	"github.com/adityarahman/staffgate/internal/store/sqlite"
	"github.com/adityarahman/staffgate/pkg/jwtx"
	"github.com/adityarahman/staffgate/pkg/slogx"
)

// BuildVersion should be set at build time via ldflags.
const BuildVersion = "v0.1.0"

// Application encapsulates the staffgate service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db    store.Store
	codec *jwtx.Codec

	// Services
	authService    *service.AuthService
	sessionService *service.SessionService
	seedService    *service.SeedService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "staffgate",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// The signing secret is immutable process configuration; refusing to
	// start beats signing sessions with an empty key.
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}

	codec, err := jwtx.NewCodec([]byte(cfg.SessionSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session codec: %w", err)
	}
	app.codec = codec

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()

	if err := app.seedAdmin(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("staffgate starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down staffgate...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("staffgate stopped")
	return nil
}

// initDatabase opens the store, applies migrations and verifies
// connectivity before the server accepts traffic.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn, app.cfg.DatabaseMaxConns)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	if err := db.Ping(context.Background()); err != nil {
		_ = db.Close()
		return fmt.Errorf("database connectivity check failed: %w", err)
	}

	app.logger.Info("database ready", "file", app.cfg.DatabaseFile, "max_conns", app.cfg.DatabaseMaxConns)
	return nil
}

func (app *Application) initServices() {
	app.authService = &service.AuthService{Store: app.db}
	app.sessionService = &service.SessionService{
		Codec:  app.codec,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}
	app.seedService = &service.SeedService{Store: app.db}
}

// seedAdmin provisions the first admin account when configured. The
// register endpoint only ever creates staff users.
func (app *Application) seedAdmin() error {
	ctx := slogx.WithContext(context.Background(), app.logger)

	created, err := app.seedService.SeedAdmin(ctx, app.cfg.AdminEmail, app.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	if created {
		app.logger.Info("seeded initial admin account")
	}
	return nil
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		BuildVersion,
		app.db,
		app.logger,
		app.cfg.IsProduction(),
	)

	router.AuthService = app.authService
	router.SessionService = app.sessionService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
