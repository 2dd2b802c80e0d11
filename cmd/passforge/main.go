package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/passforge/passforge-go/internal/cli"
	"github.com/passforge/passforge-go/internal/clipboard"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env loaded, using environment variables", "error", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	genOpts := []service.GeneratorOption{
		service.WithDefaultLength(cfg.DefaultLength),
		service.WithMaxLength(cfg.MaxLength),
	}
	if cfg.DatabaseDSN != "" {
		if db, err := repository.NewDB(cfg.DatabaseDSN); err != nil {
			slog.Warn("database unavailable, event recording disabled", "error", err)
		} else {
			defer db.Close()
			eventRepo, err := repository.OpenEventRepository(context.Background(), db)
			if err != nil {
				slog.Warn("event store not ready", "error", err)
			}
			genOpts = append(genOpts, service.WithRecorder(eventRepo))
		}
	}

	var cb clipboard.Clipboard = clipboard.System{}
	if !(clipboard.System{}).Available() {
		slog.Debug("no system clipboard found, copies stay in memory")
		cb = &clipboard.Memory{}
	}

	app := &cli.App{
		Out:       os.Stdout,
		Service:   service.NewGeneratorService(nil, genOpts...),
		Clipboard: cb,
		JWTSecret: cfg.JWTSecret,
		JWTExpiry: cfg.JWTExpiry,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(app).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, pterm.Error.Sprint(err.Error()))
		stop()
		os.Exit(1)
	}
}
