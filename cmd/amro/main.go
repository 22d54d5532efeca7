package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JimClermonts/amro-assignment/internal/catalog"
	"github.com/JimClermonts/amro-assignment/internal/config"
	"github.com/JimClermonts/amro-assignment/internal/log"
	"github.com/JimClermonts/amro-assignment/internal/query"
	"github.com/JimClermonts/amro-assignment/internal/store"
	"github.com/JimClermonts/amro-assignment/internal/tmdb"
	"github.com/JimClermonts/amro-assignment/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	var clearCache bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&clearCache, "clear-cache", false, "delete the local movie cache and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("amro %s\n", Version)
		return
	}

	if err := run(clearCache); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(clearCache bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if clearCache {
		if err := config.ClearCache(cfg); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Println("Cache cleared.")
		return nil
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting amro", "version", Version)

	if !cfg.IsConfigured() {
		fmt.Println()
		fmt.Println("No API token configured.")
		fmt.Println()
		fmt.Println("Set your TMDB read access token via the environment:")
		fmt.Println()
		fmt.Println("  export AMRO_CATALOG_TOKEN=<your token>")
		fmt.Println()
		fmt.Printf("or add it under catalog.token in the config file.\n")
		return nil
	}

	cache, err := store.NewCacheStore(cfg.Cache.Dir, logger)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	defer cache.Close()

	client := tmdb.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Token, cfg.Catalog.Language, logger)
	repo := catalog.NewRepository(client, cache, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(ctx, repo, query.ParseSortKey(cfg.UI.DefaultSort))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
