// main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/realty-portal/applications-service/internal/api"
	"github.com/realty-portal/applications-service/internal/api/handlers"
	"github.com/realty-portal/applications-service/internal/config"
	"github.com/realty-portal/applications-service/internal/db"
	"github.com/realty-portal/applications-service/internal/logging"
	"github.com/realty-portal/applications-service/internal/repository"
	"github.com/realty-portal/applications-service/internal/seed"
	"github.com/realty-portal/applications-service/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// ============================================
	// Load environment variables and configuration
	// ============================================
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.LogLevel, cfg.LogFormat)
	if envErr != nil {
		slog.Info("no .env file found, using environment variables")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	table, _ := cfg.TableIdentifier()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// ============================================
	// Run Database Migrations FIRST
	// ============================================
	if cfg.RunMigrations {
		slog.Info("running database migrations")
		if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
			return err
		}
		slog.Info("database migrations completed")
	}

	// ============================================
	// Initialize PostgreSQL
	// ============================================
	ctx := context.Background()

	pg, err := db.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pg.Close()

	repos := repository.NewRepositories(pg.Pool, table)

	if !cfg.IsProduction() && cfg.SeedData {
		if _, err := seed.SeedData(ctx, repos); err != nil {
			slog.Warn("seeding failed", "error", err)
		}
	}

	services := service.NewServices(&service.ServiceDeps{Repos: repos})
	h := handlers.NewHandlers(services, pg)
	r := api.NewRouter(h)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "table", cfg.ApplicationsTable)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return err
	case <-quit:
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server exited")
	return nil
}
