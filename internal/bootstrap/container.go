package bootstrap

import (
	"log"

	"guru-ai-be/internal/config"
	"guru-ai-be/internal/controller"
	"guru-ai-be/internal/pkg/logger"
	"guru-ai-be/internal/repository/implementation"
	"guru-ai-be/internal/repository/memory"
	"guru-ai-be/internal/repository/unitofwork"
	"guru-ai-be/internal/service"
	"guru-ai-be/pkg/embedding"
	"guru-ai-be/pkg/llm/factory"

	pktNats "guru-ai-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController    controller.IChatController
	ContentController controller.IContentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	log.Printf("[INFO] Using Embedding Provider: GEMINI")

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Keys.GoogleGemini,
		cfg.Ai.LLMModel,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Short-lived memoization of identical interpretations
	interpretCache := memory.NewInterpretationCache()

	// NATS (optional, usage analytics only)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 4. Stores shared by pipeline components
	profileRepo := implementation.NewProfileRepository(db)
	documentRepo := implementation.NewDocumentRepository(db)
	figureRepo := implementation.NewFigureRepository(db)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
	)

	tutorService := service.NewTutorService(
		uowFactory,
		profileRepo,
		documentRepo,
		figureRepo,
		llmProvider,
		interpretCache,
		natsPub,
		sysLogger,
		cfg.Retrieval.PerKeywordLimit,
	)
	contentService := service.NewContentService(uowFactory, publisherService)

	// 6. Controllers
	chatController := controller.NewChatController(tutorService)
	contentController := controller.NewContentController(contentService)

	return &Container{
		ChatController:    chatController,
		ContentController: contentController,
		ConsumerService:   consumerService,
	}
}
