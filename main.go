package main

import (
	"context"

	api "jobtrail-backend/cmd/api"
	applicationdomain "jobtrail-backend/internal/application/domain"
	applicationRepo "jobtrail-backend/internal/application/repository"
	identitydomain "jobtrail-backend/internal/identity/domain"
	priorityScheduler "jobtrail-backend/internal/priority/scheduler"
	priorityUsecase "jobtrail-backend/internal/priority/usecase"
	"jobtrail-backend/pkg/ai"
	"jobtrail-backend/pkg/config"
	"jobtrail-backend/pkg/database"
	"jobtrail-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&applicationdomain.Application{}, &identitydomain.UserProfile{}); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// Initialize model provider
	generator, err := ai.NewGenerator(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiAPIKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
	}, log)
	if err != nil {
		log.Fatal("failed to initialize model provider", zap.Error(err))
	}

	// Start the priority scoring scheduler
	appRepository := applicationRepo.NewGormApplicationRepository(db)
	scoring := priorityUsecase.NewScoringUsecase(appRepository, generator, log)
	sched := priorityScheduler.NewScoringScheduler(scoring, cfg.ScoringInterval, log)
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP handler
	handler, err := api.NewHandler(context.Background(), db, generator, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize handler", zap.Error(err))
	}

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
