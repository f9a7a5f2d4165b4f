package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/liftflow/internal/coach"
	"github.com/claude/liftflow/internal/config"
	"github.com/claude/liftflow/internal/history"
	"github.com/claude/liftflow/internal/ids"
	"github.com/claude/liftflow/internal/photos"
	"github.com/claude/liftflow/internal/profile"
	"github.com/claude/liftflow/internal/server"
	"github.com/claude/liftflow/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	webDir := flag.String("web", "", "serve a built frontend from this directory")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("LiftFlow starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Storage.Path, cfg.Storage.MigrationsPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	state, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open state store", "error", err)
		os.Exit(1)
	}
	defer state.Close()
	log.Info("state store opened", "path", cfg.Storage.Path)

	gen := ids.NewGenerator()
	histStore := history.NewStore(state, gen, log)
	photoStore := photos.NewStore(state, gen, log)
	profStore := profile.NewStore(state, log)

	// A key saved through the settings API takes precedence over config.
	keyFn := func() string {
		if raw, ok, err := state.Get(storage.KeyAPIKey); err == nil && ok && len(raw) > 0 {
			return string(raw)
		}
		return cfg.Coach.APIKey
	}
	coachClient := coach.NewClient(cfg.Coach.BaseURL, cfg.Coach.Model, keyFn, gen, log)

	srv := server.New(state, histStore, photoStore, profStore, coachClient, log)

	if *webDir != "" {
		srv.SetFrontend(os.DirFS(*webDir))
		log.Info("serving frontend", "dir", *webDir)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", "addr", addr, "error", err)
		os.Exit(1)
	}
	log.Info("server starting", "addr", addr)

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}
