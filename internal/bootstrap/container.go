package bootstrap

import (
	"context"
	"log"

	"grocery-ai-be/internal/config"
	"grocery-ai-be/internal/controller"
	"grocery-ai-be/internal/pkg/logger"
	"grocery-ai-be/internal/repository/contract"
	"grocery-ai-be/internal/repository/implementation"
	"grocery-ai-be/internal/repository/memory"
	"grocery-ai-be/internal/service"
	"grocery-ai-be/pkg/llm/factory"
	"grocery-ai-be/pkg/suggester"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ListController       controller.IListController
	SuggestionController controller.ISuggestionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Storage (Redis slot, in-memory when unreachable)
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)

	var listRepo contract.IListRepository
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. List storage is in-memory only", err)
		listRepo = memory.NewListRepository()
	} else {
		listRepo = implementation.NewRedisListRepository(rdb)
	}

	// 4. LLM Provider + Suggester
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	sug := suggester.NewLLMSuggester(llmProvider)

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Keys.ListChangedTopic, pubSub)

	listService := service.NewListService(listRepo, publisherService, sysLogger)
	listService.LoadFromStorage(context.Background())

	suggestionService := service.NewSuggestionService(sug, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.ListChangedTopic,
		suggestionService,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		ListController:       controller.NewListController(listService),
		SuggestionController: controller.NewSuggestionController(sug, suggestionService, listService),

		ConsumerService: consumerService,
	}
}
