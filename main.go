package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"wellness-bot/config"
	"wellness-bot/database"
	"wellness-bot/kb"
	"wellness-bot/resolver"
	"wellness-bot/web"
	"wellness-bot/web/handlers"
	"wellness-bot/web/services"
)

func main() {
	ctx := context.Background()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	store, err := database.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// --- Ensure Schema Exists ---
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	if cfg.SeedOnEmpty {
		seeded, err := store.SeedIfEmpty(ctx)
		if err != nil {
			logger.Fatal("Failed to seed knowledge base", zap.Error(err))
		}
		if seeded > 0 {
			logger.Info("Seeded starter knowledge base", zap.Int("conditions", seeded))
		}
	}

	// Build the alias index once at startup; a failure leaves it empty and
	// the resolver degrades to fuzzy matching instead of crashing.
	aliasIndex := kb.NewAliasIndex(logger)
	extraAliases, err := kb.LoadAliasFile(cfg.AliasFilePath)
	if err != nil {
		logger.Warn("Ignoring alias file", zap.Error(err))
	}
	if err := aliasIndex.Reload(ctx, store, extraAliases); err != nil {
		logger.Warn("Starting with empty alias index", zap.Error(err))
	}

	conditionCache := kb.NewConditionCache(store, cfg.ConditionCacheTTL)

	resolverService := resolver.New(aliasIndex, store, conditionCache, resolver.Config{
		FuzzyThreshold:      cfg.FuzzyMatchThreshold,
		DedupThreshold:      cfg.DedupThreshold,
		SuggestionThreshold: cfg.SuggestionThreshold,
		SuggestionLimit:     cfg.SuggestionLimit,
	}, logger)

	resolveService, err := services.NewResolveService(resolverService, store, cfg.ResponseCacheSize, logger)
	if err != nil {
		logger.Fatal("Failed to initialize resolve service", zap.Error(err))
	}
	searchService := services.NewSearchService(conditionCache, cfg.SuggestionLimit, logger)
	reloadService := services.NewReloadService(aliasIndex, store, conditionCache, resolveService, cfg.AliasFilePath, logger)
	statsService := services.NewStatsService(store, logger)

	kbHandler := handlers.NewKBHandler(resolveService, searchService, reloadService, statsService, logger)

	// Initialize web server
	webServer := web.NewServer(kbHandler, logger, cfg)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start web server
	if err := webServer.Start(ctx, cfg.ServerAddress); err != nil {
		logger.Fatal("Web server shutdown failed", zap.Error(err))
	}
}
