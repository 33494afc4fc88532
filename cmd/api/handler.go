package api

import (
	"context"

	analyticsDelivery "jobtrail-backend/internal/analytics/delivery"
	analyticsUsecasePkg "jobtrail-backend/internal/analytics/usecase"
	applicationDelivery "jobtrail-backend/internal/application/delivery"
	applicationRepo "jobtrail-backend/internal/application/repository"
	applicationUsecasePkg "jobtrail-backend/internal/application/usecase"
	chatDelivery "jobtrail-backend/internal/chat/delivery"
	chatUsecasePkg "jobtrail-backend/internal/chat/usecase"
	identityDelivery "jobtrail-backend/internal/identity/delivery"
	identityRepo "jobtrail-backend/internal/identity/repository"
	"jobtrail-backend/internal/identity/verifier"
	jobpostDelivery "jobtrail-backend/internal/jobpost/delivery"
	jobpostUsecasePkg "jobtrail-backend/internal/jobpost/usecase"
	"jobtrail-backend/pkg/ai"
	"jobtrail-backend/pkg/config"
	"jobtrail-backend/pkg/websearch"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler wires repositories, usecases and delivery handlers together and
// owns the HTTP server.
type Handler struct {
	config *config.Config
	log    *zap.Logger

	applicationHandler *applicationDelivery.ApplicationHandler
	analyticsHandler   *analyticsDelivery.AnalyticsHandler
	jobPostHandler     *jobpostDelivery.JobPostHandler
	chatHandler        *chatDelivery.ChatHandler
	authMiddleware     gin.HandlerFunc
}

func NewHandler(ctx context.Context, db *gorm.DB, generator ai.Generator, cfg *config.Config, log *zap.Logger) (*Handler, error) {
	// Repositories
	appRepository := applicationRepo.NewGormApplicationRepository(db)
	profileRepository := identityRepo.NewGormProfileRepository(db)

	// Identity
	tokenVerifier, err := verifier.New(ctx, verifier.Config{
		Provider:        verifier.ProviderType(cfg.AuthProvider),
		Secret:          cfg.JWTSecret,
		CredentialsFile: cfg.FirebaseCredentials,
	})
	if err != nil {
		return nil, err
	}

	// Usecases
	applicationUsecase := applicationUsecasePkg.NewApplicationUsecase(appRepository)
	analyticsUsecase := analyticsUsecasePkg.NewAnalyticsUsecase(appRepository)
	extractUsecase := jobpostUsecasePkg.NewExtractUsecase(generator)
	searchClient := websearch.NewClient(cfg.TavilyAPIKey, log)
	chatUsecase := chatUsecasePkg.NewChatUsecase(appRepository, generator, searchClient, log)

	return &Handler{
		config:             cfg,
		log:                log,
		applicationHandler: applicationDelivery.NewApplicationHandler(applicationUsecase),
		analyticsHandler:   analyticsDelivery.NewAnalyticsHandler(analyticsUsecase),
		jobPostHandler:     jobpostDelivery.NewJobPostHandler(extractUsecase),
		chatHandler:        chatDelivery.NewChatHandler(chatUsecase, log),
		authMiddleware:     identityDelivery.AuthMiddleware(tokenVerifier, profileRepository, log),
	}, nil
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.HandleMethodNotAllowed = true
	r.NoMethod(methodNotAllowed)

	r.Use(RequestIDMiddleware(h.log))
	r.Use(CORSMiddleware(h.config.AllowedOrigins))

	SetupRoutes(r, h.authMiddleware, h.applicationHandler, h.analyticsHandler, h.jobPostHandler, h.chatHandler)

	return r.Run(addr)
}
