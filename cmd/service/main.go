// Package main is the entry point for the service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mhlegal/intake-service/internal/adapters/clients"
	"github.com/mhlegal/intake-service/internal/adapters/clients/workspace"
	"github.com/mhlegal/intake-service/internal/adapters/http"
	"github.com/mhlegal/intake-service/internal/adapters/http/handlers"
	"github.com/mhlegal/intake-service/internal/adapters/mail"
	"github.com/mhlegal/intake-service/internal/adapters/store"
	"github.com/mhlegal/intake-service/internal/app"
	"github.com/mhlegal/intake-service/internal/platform/config"
	"github.com/mhlegal/intake-service/internal/platform/logging"
	"github.com/mhlegal/intake-service/internal/platform/telemetry"
	"github.com/mhlegal/intake-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create health registry
	healthRegistry := ports.NewHealthRegistry()

	// 6. Open the record store (system of record, fail fast)
	recordStore, err := store.Open(cfg.Store, logger)
	if err != nil {
		return fmt.Errorf("opening record store: %w", err)
	}

	defer func() {
		if closeErr := recordStore.Close(); closeErr != nil {
			logger.Error("record store close error", slog.Any("error", closeErr))
		}
	}()

	if err := healthRegistry.Register(recordStore); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	// 7. Create the workspace mirror when enabled.
	// The intake pipeline treats the mirror as best effort, so a disabled
	// workspace simply wires no mirror at all.
	var mirror ports.WorkspaceMirror

	if cfg.Workspace.Enabled {
		workspaceHTTP, err := clients.New(&clients.Config{
			BaseURL:     cfg.Workspace.BaseURL,
			ServiceName: "workspace",
			Timeout:     cfg.Client.Timeout,
			Retry:       cfg.Client.Retry,
			Circuit:     cfg.Client.CircuitBreaker,
			Transport:   cfg.Client.Transport,
			AuthFunc:    workspace.AuthHeaders(cfg.Workspace.Token),
			Logger:      logger,
		})
		if err != nil {
			return fmt.Errorf("creating workspace HTTP client: %w", err)
		}

		workspaceClient := workspace.NewClient(workspace.ClientConfig{
			Client:            workspaceHTTP,
			ConsultDatabaseID: cfg.Workspace.ConsultDatabaseID,
			QuoteDatabaseID:   cfg.Workspace.QuoteDatabaseID,
			Logger:            logger,
		})

		if err := healthRegistry.Register(workspaceClient); err != nil {
			return fmt.Errorf("registering workspace health check: %w", err)
		}

		mirror = workspaceClient
	}

	// 8. Create the SMTP mailer
	mailer := mail.NewSMTP(cfg.Mail, logger)

	if err := healthRegistry.Register(mailer); err != nil {
		return fmt.Errorf("registering mailer health check: %w", err)
	}

	// 9. Create intake service (application layer)
	intakeService := app.NewIntakeService(app.IntakeServiceConfig{
		Repo:        recordStore,
		Mirror:      mirror,
		Mailer:      mailer,
		Logger:      logger,
		OfficeEmail: cfg.Intake.OfficeEmail,
	})

	// 10. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	intakeHandler := handlers.NewIntakeHandler(intakeService)

	// 11. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 12. Setup router with all middleware and routes
	routerCfg := http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		HealthHandler: healthHandler,
		IntakeHandler: intakeHandler,
		Timeout:       http.DefaultRequestTimeout,
	}
	http.SetupRouter(server.Engine(), routerCfg)

	// 13. Start server (non-blocking)
	serverErr := server.Start()

	// 14. Wait for shutdown signal
	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal is received or server error occurs.
// It then performs graceful shutdown of the HTTP server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	// Listen for OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		// Server error during startup or runtime
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	// Graceful shutdown sequence
	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
