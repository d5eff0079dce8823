package bootstrap

import (
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"nailaide-be/internal/config"
	"nailaide-be/internal/constant"
	"nailaide-be/internal/controller"
	"nailaide-be/internal/pkg/logger"
	"nailaide-be/internal/repository/memory"
	"nailaide-be/internal/service"
	"nailaide-be/pkg/actions"
	"nailaide-be/pkg/catalog"
	"nailaide-be/pkg/entity"
	"nailaide-be/pkg/intent"
	"nailaide-be/pkg/llm/factory"
	"nailaide-be/pkg/nlg"
	"nailaide-be/pkg/nlu"
	"nailaide-be/pkg/planner"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ActionConsumerService service.IActionConsumerService

	// Exposed for the CLI and for graceful shutdown
	AgentService service.IAgentService
	Logger       logger.ILogger
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

	// 3. Pipeline Components
	// Catalog: file-backed with a built-in default so the agent always
	// has something to sell.
	cat, err := catalog.Load(filepath.Join(cfg.App.DataDir, "services.json"))
	if err != nil {
		log.Printf("[WARN] Service catalog unavailable (%v), using built-in catalog", err)
		cat = catalog.Default()
	}
	log.Printf("[INFO] Service catalog loaded: %d services", len(cat.Services()))

	normalizer := nlu.NewNormalizer()

	intentLogger := log.New(os.Stdout, "[INTENT] ", log.LstdFlags)
	classifier := intent.NewClassifierFromDir(filepath.Join(cfg.App.DataDir, "intents"), intentLogger)
	log.Printf("[INFO] Intent classifier ready: %d intents", len(classifier.Classes()))

	entityLogger := log.New(os.Stdout, "[ENTITY] ", log.LstdFlags)
	extractor := entity.NewExtractor(cat, entityLogger)

	nlgLogger := log.New(os.Stdout, "[NLG] ", log.LstdFlags)
	// Each component owns its rand source; the generator and assistant
	// serve parallel requests and must never share one.
	generator := nlg.NewGeneratorFromDir(
		filepath.Join(cfg.App.DataDir, "responses"),
		rand.New(rand.NewSource(time.Now().UnixNano())),
		nlgLogger,
	)

	// LLM Provider: a failed init degrades to simulated mode rather than
	// refusing to boot, the template path still works without a model.
	llmBaseURL := cfg.Ai.OllamaBaseURL
	if cfg.Ai.LLMProvider == "openai" {
		llmBaseURL = cfg.Ai.OpenAIBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Printf("[WARN] Failed to initialize LLM Provider: %v. Assistant runs in simulated mode", err)
		llmProvider = nil
	}
	if llmProvider != nil {
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	} else {
		log.Printf("[INFO] No LLM Provider configured, assistant runs in simulated mode")
	}

	assistant := nlg.NewAssistant(
		llmProvider,
		cat,
		time.Duration(cfg.Ai.CompletionTimeout)*time.Second,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		nlgLogger,
	).WithGeneration(cfg.Ai.MaxTokens, cfg.Ai.Temperature)

	actionPlanner := planner.NewPlanner(cat)

	// Initialize In-Memory Context Storage
	contextRepo := memory.NewContextRepository()

	// 4. Services
	actionSink := actions.NewBusSink(pubSub, constant.ActionTopicName)
	actionConsumerService := service.NewActionConsumerService(
		pubSub,
		constant.ActionTopicName,
		sysLogger,
	)

	agentService := service.NewAgentService(
		normalizer,
		classifier,
		extractor,
		generator,
		assistant,
		actionPlanner,
		cat,
		contextRepo,
		actionSink,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		ChatController:        controller.NewChatController(agentService),
		ActionConsumerService: actionConsumerService,
		AgentService:          agentService,
		Logger:                sysLogger,
	}
}
