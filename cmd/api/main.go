package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	genOpts := []service.GeneratorOption{
		service.WithDefaultLength(cfg.DefaultLength),
		service.WithMaxLength(cfg.MaxLength),
	}
	statsService := service.NewStatsService(nil)

	// Event recording and stats are enabled only when a database is reachable.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database unavailable, event recording disabled", "error", err)
	} else {
		defer db.Close()
		eventRepo, err := repository.OpenEventRepository(context.Background(), db)
		if err != nil {
			slog.Warn("event store not ready", "error", err)
		}
		genOpts = append(genOpts, service.WithRecorder(eventRepo))
		statsService = service.NewStatsService(eventRepo)
	}

	genService := service.NewGeneratorService(nil, genOpts...)

	limiter := middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	defer limiter.Stop()

	router := handler.NewRouter(
		handler.NewGeneratorHandler(genService),
		handler.NewStatsHandler(statsService),
		handler.RouterConfig{JWTSecret: cfg.JWTSecret, Limiter: limiter},
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
