package bootstrap

import (
	"log"

	"pocket-pm-be/internal/config"
	"pocket-pm-be/internal/controller"
	"pocket-pm-be/internal/pkg/logger"
	"pocket-pm-be/internal/repository/memory"
	"pocket-pm-be/internal/repository/unitofwork"
	"pocket-pm-be/internal/service"
	"pocket-pm-be/pkg/backloggen"
	"pocket-pm-be/pkg/llm/factory"
	"pocket-pm-be/pkg/prdgen"

	"gorm.io/gorm"
)

type Container struct {
	AuthController    controller.IAuthController
	FeatureController controller.IFeatureController
	PrdController     controller.IPrdController
	BacklogController controller.IBacklogController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.OpenAIBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	prdGenerator := prdgen.NewGenerator(llmProvider, sysLogger)
	backlogGenerator := backloggen.NewGenerator(llmProvider, sysLogger)

	// 3. In-Memory Refresh Session Storage
	sessionRepo := memory.NewSessionRepository(cfg.Auth.RefreshSessionTTL)

	// 4. Services
	authService := service.NewAuthService(uowFactory, sessionRepo)
	featureService := service.NewFeatureService(uowFactory)
	prdService := service.NewPrdService(uowFactory, prdGenerator)
	backlogService := service.NewBacklogService(uowFactory, backlogGenerator, featureService, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		FeatureController: controller.NewFeatureController(featureService),
		PrdController:     controller.NewPrdController(prdService),
		BacklogController: controller.NewBacklogController(backlogService),
	}
}
