package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jobboard-bff/internal/api"
	"jobboard-bff/internal/api/handlers"
	"jobboard-bff/internal/repository"
	"jobboard-bff/internal/service"
	"jobboard-bff/pkg/auth"
	"jobboard-bff/pkg/config"
	"jobboard-bff/pkg/docx"
	"jobboard-bff/pkg/logger"
	"jobboard-bff/pkg/middleware"
	"jobboard-bff/pkg/postgres"

	"go.uber.org/zap"
)

// @title Job Board BFF API
// @version 1.0
// @description Backend-for-frontend of the job platform: document text extraction, scoring proxy, resume generation and scraper administration

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting jobboard-bff",
		zap.String("scoring_api", cfg.Scoring.BaseURL),
		zap.Int64("max_upload_size", cfg.Upload.MaxSize),
	)

	ctx := context.Background()

	if cfg.Auth.JWTSecret == "" {
		appLogger.Warn("SUPABASE_JWT_SECRET is not set, every caller is anonymous")
	}
	verifier := auth.NewTokenVerifier(cfg.Auth.JWTSecret)

	scoringClient := service.NewScoringClient(&cfg.Scoring, appLogger)
	extractionService := service.NewExtractionService(docx.NewParser(), appLogger)

	h := api.Handlers{
		Extract: handlers.NewExtractHandler(extractionService, cfg.Upload.MaxSize, appLogger),
		Scoring: handlers.NewScoringHandler(scoringClient, appLogger),
		Health:  handlers.NewHealthHandler(nil),
	}
	var roles middleware.RoleLookup

	if cfg.Database.Enabled() {
		db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		h.Health = handlers.NewHealthHandler(db)

		roles = repository.NewProfileRepository(db, appLogger)
		configService := service.NewScrapingConfigService(repository.NewScrapingConfigRepository(db, appLogger), appLogger)
		h.ScrapingConfig = handlers.NewScrapingConfigHandler(configService, appLogger)

		if cfg.GigaChat.APIKey != "" {
			llmService, err := service.NewLLMService(ctx, &cfg.GigaChat, appLogger)
			if err != nil {
				appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
			}
			defer llmService.Close()

			resumeService := service.NewResumeService(
				llmService,
				repository.NewGeneratedResumeRepository(db, appLogger),
				cfg.Upload.Dir,
				cfg.Resume.MinATSScore,
				appLogger,
			)
			h.Resume = handlers.NewResumeHandler(resumeService, appLogger)
		}
	} else {
		appLogger.Warn("DB_HOST is not set, database features are disabled")
	}

	app := api.SetupRouter(cfg, h, verifier, roles, appLogger)

	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
