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

	"github.com/aussiebroadwan/werewolf/internal/setup/deck"
	httpapi "github.com/aussiebroadwan/werewolf/internal/setup/http"
	"github.com/aussiebroadwan/werewolf/internal/setup/service"
	"github.com/aussiebroadwan/werewolf/internal/setup/session"
	"github.com/aussiebroadwan/werewolf/internal/setup/store"
	"github.com/aussiebroadwan/werewolf/internal/setup/store/drivers/memory"
	"github.com/aussiebroadwan/werewolf/internal/setup/store/drivers/sqlite"
	"github.com/aussiebroadwan/werewolf/pkg/cryptox"
	"github.com/aussiebroadwan/werewolf/pkg/jwtx"
	"github.com/aussiebroadwan/werewolf/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the setup service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         store.Store
	keyManager *jwtx.KeyManager

	registry            *service.SetupRegistry
	deviceService       *service.DeviceService
	gameService         *service.GameService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "setup-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	var adapterOpts []store.AdapterOption
	if sealer, err := loadKeyCipher(cfg); err != nil {
		_ = app.db.Close()
		return nil, err
	} else if sealer != nil {
		adapterOpts = append(adapterOpts, store.WithSealer(sealer))
	}

	keyManager, err := jwtx.NewKeyManager(context.Background(), jwtx.KeyManagerOptions{
		Issuer: cfg.Issuer,
		Store:  store.NewKeyStoreAdapter(app.db, adapterOpts...),
	})
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize JWT keys: %w", err)
	}
	app.keyManager = keyManager

	app.initServices()
	app.initHTTP()

	return app, nil
}

func loadKeyCipher(cfg Config) (*cryptox.KeyCipher, error) {
	switch {
	case cfg.MasterKeyFile != "":
		c, err := cryptox.LoadKeyCipher(cfg.MasterKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load master key: %w", err)
		}
		return c, nil
	case cfg.MasterKey != "":
		c, err := cryptox.NewKeyCipher([]byte(cfg.MasterKey))
		if err != nil {
			return nil, fmt.Errorf("failed to load master key: %w", err)
		}
		return c, nil
	}
	return nil, nil
}

// Handler exposes the router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("setup service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"storage_mode", app.cfg.StorageMode,
		"game_server", app.cfg.GameServerURL,
	)

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

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down setup service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("setup service stopped")
	return nil
}

// initDatabase opens the configured store and applies migrations.
// Ephemeral mode keeps everything in memory, signing keys included, so all
// device tokens die with the process.
func (app *Application) initDatabase() error {
	if app.cfg.StorageMode == StorageModeEphemeral {
		app.db = memory.NewStore()
		app.logger.Warn("using ephemeral storage, devices and custom roles are lost on restart")
		return nil
	}

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

func (app *Application) initServices() {
	app.registry = service.NewSetupRegistry(app.db, deck.NewAssembler())

	app.deviceService = &service.DeviceService{
		Store:    app.db,
		Signer:   app.keyManager.Signer,
		Issuer:   app.cfg.Issuer,
		TokenTTL: app.cfg.DeviceTokenTTL,
	}

	app.gameService = &service.GameService{
		Sessions:      session.NewWSCreator(app.cfg.GameServerURL),
		Signer:        app.keyManager.Signer,
		Issuer:        app.cfg.Issuer,
		HostTokenTTL:  app.cfg.HostTokenTTL,
		PublicBaseURL: app.cfg.PublicBaseURL,
	}

	// Devices unseen for a whole token lifetime cannot authenticate again.
	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.registry,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.IdleTTL,
		app.cfg.DeviceTokenTTL,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		app.keyManager.Verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.Registry = app.registry
	router.DeviceService = app.deviceService
	router.GameService = app.gameService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
