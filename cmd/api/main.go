package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kovfs/api/internal/di"
	"github.com/kovfs/api/internal/events"
	"github.com/kovfs/api/internal/handlers"
	"github.com/kovfs/api/internal/platform/auth"
	"github.com/kovfs/api/internal/platform/config"
	"github.com/kovfs/api/internal/platform/observability"
	"github.com/kovfs/api/internal/services"
)

func main() {
	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")

	cfg, err := config.Load()
	if err != nil {
		var validation *config.ValidationError
		if errors.As(err, &validation) {
			logger.Fatal("invalid configuration", zap.Strings("fields", validation.Fields()))
		}
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	var publisher services.Publisher = services.NoopPublisher()
	var hub *events.Hub
	if cfg.Features.EnableEvents {
		hub = events.NewHub(logger.Named("events"))
		go hub.Run()
		publisher = hub
	}

	container, err := di.NewContainer(cfg, publisher)
	if err != nil {
		logger.Fatal("failed to assemble dependencies", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := container.Close(closeCtx); err != nil {
			logger.Warn("container close error", zap.Error(err))
		}
	}()

	publicHandlers := handlers.NewPublicHandlers(handlers.PublicHandlersDeps{
		Catalog:       container.Services.Catalog,
		Announcements: container.Services.Announcements,
		Categories:    container.Services.Categories,
		Settings:      container.Services.Settings,
		Buttons:       container.Services.Buttons,
		Banner:        container.Services.Banner,
		Engagement:    container.Services.Engagement,
	})
	authHandlers := handlers.NewAuthHandlers(container.Services.Auth)
	adminHandlers := handlers.NewAdminHandlers(handlers.AdminHandlersDeps{
		Catalog:       container.Services.Catalog,
		Announcements: container.Services.Announcements,
		Categories:    container.Services.Categories,
		Notes:         container.Services.Notes,
		Buttons:       container.Services.Buttons,
		Settings:      container.Services.Settings,
		Banner:        container.Services.Banner,
		Auth:          container.Services.Auth,
	})
	healthHandlers := handlers.NewHealthHandlers(
		handlers.WithHealthSystemService(container.Services.System),
	)

	opts := []handlers.Option{
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.RequestLoggerMiddleware(),
			observability.RecoveryMiddleware(logger),
		),
		handlers.WithHealthHandlers(healthHandlers),
		handlers.WithPublicRoutes(publicHandlers.Register),
		handlers.WithAuthRoutes(authHandlers.Register),
		handlers.WithAdminRoutes(adminHandlers.Register),
		handlers.WithAdminMiddlewares(auth.RequireAdmin(container.Sessions)),
	}
	if hub != nil {
		opts = append(opts, handlers.WithEventRoutes(func(r chi.Router) {
			r.Get("/events", hub.ServeWS)
		}))
	}

	router := handlers.NewRouter(opts...)
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("kovfs api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
