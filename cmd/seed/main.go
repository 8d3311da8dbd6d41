package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"jobboard-bff/internal/dto"
	"jobboard-bff/internal/repository"
	"jobboard-bff/internal/service"
	"jobboard-bff/pkg/config"
	"jobboard-bff/pkg/logger"
	"jobboard-bff/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	seedFile := flag.String("file", "cmd/seed/scraping_configs.json", "JSON array of scraping configs to create")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if !cfg.Database.Enabled() {
		appLogger.Fatal("DB_HOST is not set, nothing to seed")
	}

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	configs := service.NewScrapingConfigService(repository.NewScrapingConfigRepository(db, appLogger), appLogger)

	appLogger.Info("Starting database seeding...", zap.String("file", *seedFile))

	seeds, err := loadSeeds(*seedFile)
	if err != nil {
		appLogger.Fatal("Failed to load seed file", zap.Error(err))
	}

	created, err := seedScrapingConfigs(ctx, configs, seeds, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed scraping configs", zap.Error(err))
	}

	appLogger.Info("Database seeding completed", zap.Int("created", created), zap.Int("in_file", len(seeds)))
}

func loadSeeds(path string) ([]dto.CreateScrapingConfigRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []dto.CreateScrapingConfigRequest
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return seeds, nil
}

// seedScrapingConfigs creates every seed whose name is not stored yet,
// so running the seeder twice is harmless.
func seedScrapingConfigs(
	ctx context.Context,
	configs *service.ScrapingConfigService,
	seeds []dto.CreateScrapingConfigRequest,
	logger *zap.Logger,
) (int, error) {
	existing, err := configs.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list existing configs: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, cfg := range existing {
		known[cfg.Name] = true
	}

	created := 0
	for i := range seeds {
		seed := &seeds[i]
		if known[seed.Name] {
			logger.Info("Scraping config already exists, skipping", zap.String("name", seed.Name))
			continue
		}

		cfg, err := configs.Create(ctx, seed)
		if err != nil {
			logger.Error("Failed to create scraping config", zap.String("name", seed.Name), zap.Error(err))
			continue
		}
		known[cfg.Name] = true
		created++
	}
	return created, nil
}
