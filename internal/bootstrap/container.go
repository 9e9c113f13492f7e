package bootstrap

import (
	"context"
	"log"

	"github.com/sajjad006/ardine-backend/internal/config"
	"github.com/sajjad006/ardine-backend/internal/controller"
	"github.com/sajjad006/ardine-backend/internal/pkg/logger"
	"github.com/sajjad006/ardine-backend/internal/repository/contract"
	"github.com/sajjad006/ardine-backend/internal/repository/implementation"
	"github.com/sajjad006/ardine-backend/internal/repository/memory"
	redisrepo "github.com/sajjad006/ardine-backend/internal/repository/redis"
	"github.com/sajjad006/ardine-backend/internal/repository/unitofwork"
	"github.com/sajjad006/ardine-backend/internal/service"
	"github.com/sajjad006/ardine-backend/pkg/embedding"
	"github.com/sajjad006/ardine-backend/pkg/llm/factory"
	pktNats "github.com/sajjad006/ardine-backend/pkg/nats"
	"github.com/sajjad006/ardine-backend/pkg/waiter"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	RestaurantController controller.IRestaurantController
	DishController       controller.IDishController
	OrderController      controller.IOrderController
	ReviewController     controller.IReviewController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for the offline indexer command
	IndexerService service.IIndexerService

	Logger logger.ILogger
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

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.Groq,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Session store selection: Postgres rides the main DB, Redis is for
	// deployments that want session churn off the relational store.
	var sessionRepo contract.ChatSessionRepository
	if cfg.Ai.SessionStore == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionRepo = redisrepo.NewChatSessionRepository(rdb)
		log.Printf("[INFO] Using Session Store: REDIS")
	} else {
		sessionRepo = implementation.NewChatSessionRepository(db)
		log.Printf("[INFO] Using Session Store: POSTGRES")
	}

	sessionLocker := memory.NewSessionLocker()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.IndexTopic, pubSub)
	indexerService := service.NewIndexerService(uowFactory, embeddingProvider, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.IndexTopic,
		indexerService,
		sysLogger,
	)

	restaurantService := service.NewRestaurantService(uowFactory)
	menuService := service.NewMenuService(uowFactory, publisherService, sysLogger)
	orderService := service.NewOrderService(uowFactory, natsPub, sysLogger)
	reviewService := service.NewReviewService(uowFactory, sysLogger)

	// 6. Waiter pipeline
	embeddingRepo := implementation.NewDishEmbeddingRepository(db)
	retriever := waiter.NewRetriever(embeddingProvider, embeddingRepo, sysLogger)
	policy := waiter.NewPolicy(llmProvider, sysLogger)
	executor := waiter.NewExecutor(menuService, orderService, sysLogger)

	chatService := service.NewChatService(
		uowFactory,
		sessionRepo,
		sessionLocker,
		retriever,
		policy,
		executor,
		sysLogger,
		cfg.Ai.RetrievalTopK,
	)

	// 7. Controllers
	return &Container{
		ChatController:       controller.NewChatController(chatService),
		RestaurantController: controller.NewRestaurantController(restaurantService),
		DishController:       controller.NewDishController(menuService),
		OrderController:      controller.NewOrderController(orderService),
		ReviewController:     controller.NewReviewController(reviewService),

		ConsumerService: consumerService,
		IndexerService:  indexerService,
		Logger:          sysLogger,
	}
}
