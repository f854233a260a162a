package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quiverapp/quiver/api/internal/config"
	"github.com/quiverapp/quiver/api/internal/database"
	"github.com/quiverapp/quiver/api/internal/handler"
	"github.com/quiverapp/quiver/api/internal/jobs"
	"github.com/quiverapp/quiver/api/internal/middleware"
	"github.com/quiverapp/quiver/api/internal/repository"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	bookmarkRepo := repository.NewBookmarkRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Initialize the link checker
	var linkChecker *jobs.LinkChecker
	if cfg.LinkCheck.Enabled {
		linkChecker = jobs.NewLinkChecker(bookmarkRepo, cfg.LinkCheck.Interval, cfg.LinkCheck.Timeout)
		linkChecker.Start()
		defer linkChecker.Stop()
	}

	// Initialize handlers
	var enqueuer handler.LinkEnqueuer
	if linkChecker != nil {
		enqueuer = linkChecker
	}
	bookmarkHandler := handler.NewBookmarkHandler(bookmarkRepo, enqueuer)
	folderHandler := handler.NewFolderHandler(folderRepo)
	tagHandler := handler.NewTagHandler(tagRepo)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint (public)
	mux.HandleFunc("GET /health", handler.Health)

	// Resource endpoints (token protected)
	auth := middleware.Auth(cfg.Auth.TokenHash)
	bookmarkHandler.RegisterRoutes(mux, auth)
	folderHandler.RegisterRoutes(mux, auth)
	tagHandler.RegisterRoutes(mux, auth)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
