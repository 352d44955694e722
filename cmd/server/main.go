package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nyaysetu/legalchat/internal/auth"
	"github.com/nyaysetu/legalchat/internal/caselaw"
	"github.com/nyaysetu/legalchat/internal/chat"
	"github.com/nyaysetu/legalchat/internal/classifier"
	apphttp "github.com/nyaysetu/legalchat/internal/http"
	"github.com/nyaysetu/legalchat/internal/policy"
	"github.com/nyaysetu/legalchat/internal/provider"
	"github.com/nyaysetu/legalchat/internal/responder"
	"github.com/nyaysetu/legalchat/internal/storage"
	"github.com/nyaysetu/legalchat/internal/translate"
	"github.com/nyaysetu/legalchat/pkg/config"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", configPath))
	}

	// Initialize storage
	var store storage.Storage
	switch cfg.Database.Driver {
	case "memory":
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	case "postgres":
		logger.Info("Using PostgreSQL storage")
		store, err = storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:     cfg.Database.Host,
			Port:     cfg.Database.Port,
			User:     cfg.Database.User,
			Password: cfg.Database.Password,
			DBName:   cfg.Database.DBName,
			SSLMode:  cfg.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	default:
		logger.Info("Using SQLite storage", zap.String("path", cfg.Database.Path))
		store, err = storage.NewSQLiteStorage(cfg.Database.Path)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize translator
	var translator translate.Translator = translate.Noop{}
	if cfg.Translator.Enabled {
		translator = translate.NewGoogle(
			cfg.Translator.Endpoint,
			time.Duration(cfg.Translator.TimeoutSeconds)*time.Second,
			logger,
		)
	}

	// Initialize the deterministic core
	clf := classifier.New()
	offline := responder.New(translator, logger)
	engine := policy.NewEngine(clf, offline, logger)

	// Initialize answer sources in configured order
	ctx := context.Background()
	var sources []provider.AnswerSource
	for _, name := range cfg.Providers.Order {
		switch name {
		case "gemini":
			gemini, err := provider.NewGemini(ctx,
				cfg.Providers.Gemini.APIKey,
				cfg.Providers.Gemini.Model,
				time.Duration(cfg.Providers.Gemini.TimeoutSeconds)*time.Second,
				logger,
			)
			if err != nil {
				logger.Fatal("Failed to initialize gemini source", zap.Error(err))
			}
			sources = append(sources, gemini)
		case "openai":
			sources = append(sources, provider.NewOpenAI(
				cfg.Providers.OpenAI.APIKey,
				cfg.Providers.OpenAI.Model,
				cfg.Providers.OpenAI.MaxTokens,
				cfg.Providers.OpenAI.Temperature,
				logger,
			))
		case "offline":
			sources = append(sources, provider.NewOffline(offline))
		default:
			logger.Fatal("Unknown answer source in providers.order", zap.String("source", name))
		}
	}
	if len(sources) == 0 || sources[len(sources)-1].Name() != "offline_templates" {
		sources = append(sources, provider.NewOffline(offline))
	}
	chain := provider.NewChain(logger, sources...)

	// Initialize case-law search
	var searcher caselaw.Searcher = caselaw.Noop{}
	if cfg.CaseLaw.Endpoint != "" {
		searcher = caselaw.NewClient(
			cfg.CaseLaw.Endpoint,
			time.Duration(cfg.CaseLaw.TimeoutSeconds)*time.Second,
			cfg.CaseLaw.CacheSize,
			cfg.CaseLaw.CacheTTL(),
			logger,
		)
	}

	chatSvc := chat.NewService(translator, chain, engine, searcher, store, logger)
	authMgr := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	handler := apphttp.NewHandler(chatSvc, store, authMgr, logger)
	server := apphttp.NewServer(handler, authMgr, cfg.Server.AllowOrigin, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Starting server", zap.String("addr", addr))
	if err := server.Start(addr); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
