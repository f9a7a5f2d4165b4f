package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/claude/liftflow/internal/config"
	"github.com/claude/liftflow/internal/history"
	"github.com/claude/liftflow/internal/ids"
	"github.com/claude/liftflow/internal/mcp"
	"github.com/claude/liftflow/internal/profile"
	"github.com/claude/liftflow/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// stdout is the MCP transport; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := storage.RunMigrations(cfg.Storage.Path, cfg.Storage.MigrationsPath); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	state, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		log.Error("failed to open state store", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	gen := ids.NewGenerator()
	histStore := history.NewStore(state, gen, log)
	profStore := profile.NewStore(state, log)

	s := mcp.New(histStore, profStore, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
