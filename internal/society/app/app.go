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

	httpapi "github.com/strataworks/societyd/internal/society/http"
	"github.com/strataworks/societyd/internal/society/identity"
	"github.com/strataworks/societyd/internal/society/service"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/internal/society/store/drivers/sqlite"
	"github.com/strataworks/societyd/pkg/cryptox"
	"github.com/strataworks/societyd/pkg/jwtx"
	"github.com/strataworks/societyd/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the society service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	codec *jwtx.Codec

	provisionService   *service.ProvisionService
	authService        *service.AuthService
	reservationService *service.ReservationService
	poolService        *service.PoolService
	noticeService      *service.NoticeService
	pollService        *service.PollService
	eventService       *service.EventService
	amenityService     *service.AmenityService
	bookingService     *service.BookingService
	complaintService   *service.ComplaintService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "society-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("SOCIETY_JWT_SECRET is required")
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	codec, err := jwtx.NewCodec(cfg.JWTSecret, cfg.Issuer, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session codec: %w", err)
	}
	app.codec = codec

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("society service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	app.logger.Info("shutting down society service...")

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

	app.logger.Info("society service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	provider := &identity.StoreProvider{Store: app.db}

	app.provisionService = &service.ProvisionService{Store: app.db, Identity: provider}
	app.authService = &service.AuthService{
		Store:    app.db,
		Identity: provider,
		Tokens:   app.codec,
	}
	app.reservationService = &service.ReservationService{Store: app.db}
	app.poolService = &service.PoolService{Store: app.db}
	app.noticeService = &service.NoticeService{Store: app.db}
	app.pollService = &service.PollService{Store: app.db}
	app.eventService = &service.EventService{Store: app.db}
	app.amenityService = &service.AmenityService{Store: app.db}
	app.bookingService = &service.BookingService{Store: app.db}
	app.complaintService = &service.ComplaintService{Store: app.db}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		app.cfg.SessionTTL,
		app.cfg.SecureCookies,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.ProvisionService = app.provisionService
	router.AuthService = app.authService
	router.ReservationService = app.reservationService
	router.PoolService = app.poolService
	router.NoticeService = app.noticeService
	router.PollService = app.pollService
	router.EventService = app.eventService
	router.AmenityService = app.amenityService
	router.BookingService = app.bookingService
	router.ComplaintService = app.complaintService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
