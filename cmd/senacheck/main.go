package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"senacheck/internal/bootstrap"
	"senacheck/internal/config"
	"senacheck/internal/engine"
	"senacheck/internal/event"
	"senacheck/internal/handler"
	"senacheck/internal/server"
	"senacheck/internal/session"
	"senacheck/internal/sse"
	"senacheck/internal/ticket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg, handler.AppVersion())
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}

	for _, warning := range warnings {
		slog.Warn(warning)
	}

	// A session without tickets has nothing to check; load failures are
	// terminal rather than degraded.
	games, err := ticket.NewLoader().Load(cfg.TicketsPath)
	if err != nil {
		slog.Error("Ticket load failed", "error", err, "path", cfg.TicketsPath)
		os.Exit(1)
	}

	eng := engine.NewService(games)

	bus := bootstrap.InitializeEventSystem()

	hub := sse.NewHub()
	hub.Start()

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus: bus,
		Hub:      hub,
	}); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	sessionService := session.NewService(eng, bus)

	if err := bus.Publish(context.Background(), event.NewTicketsLoadedEvent(len(games), cfg.TicketsPath)); err != nil {
		slog.Warn("Failed to publish tickets loaded event", "error", err)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, sessionService, hub)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	waitForShutdown()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:  srv,
		Hub:     hub,
		LogFile: logFile,
	})
}

// waitForShutdown blocks until an interrupt or termination signal arrives.
func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
