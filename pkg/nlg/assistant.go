package nlg

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"nailaide-be/internal/constant"
	"nailaide-be/pkg/catalog"
	"nailaide-be/pkg/llm"
	"nailaide-be/pkg/store"
)

// Assistant answers open-ended or low-confidence messages through the
// completion provider. When the provider is missing or fails, it hands
// back one of the canned simulated replies instead — the user never
// sees an error because the model was unreachable.
type Assistant struct {
	provider    llm.LLMProvider
	catalog     *catalog.Catalog
	timeout     time.Duration
	maxTokens   int
	temperature float64
	logger      *log.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAssistant builds the AI-fallback reply path. provider may be nil,
// which puts the assistant in simulated mode from the start.
func NewAssistant(provider llm.LLMProvider, cat *catalog.Catalog, timeout time.Duration, rng *rand.Rand, logger *log.Logger) *Assistant {
	if logger == nil {
		logger = log.New(os.Stdout, "[ASSISTANT] ", log.LstdFlags)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Assistant{
		provider:    provider,
		catalog:     cat,
		timeout:     timeout,
		maxTokens:   150,
		temperature: 0.7,
		logger:      logger,
		rng:         rng,
	}
}

// WithGeneration overrides the completion token budget and sampling
// temperature.
func (a *Assistant) WithGeneration(maxTokens int, temperature float64) *Assistant {
	if maxTokens > 0 {
		a.maxTokens = maxTokens
	}
	if temperature > 0 {
		a.temperature = temperature
	}
	return a
}

// Reply generates a completion for the raw message. The provider call
// is bounded by the configured timeout; the provider can otherwise hang
// on a slow upstream.
func (a *Assistant) Reply(ctx context.Context, message string, convCtx *store.Context) string {
	if a.provider == nil {
		return a.simulated()
	}

	prompt := a.buildPrompt(message, convCtx)

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.provider.Generate(callCtx, prompt,
		llm.WithTemperature(a.temperature),
		llm.WithMaxTokens(a.maxTokens),
	)
	if err != nil {
		a.logger.Printf("[WARN] completion failed, using simulated reply: %v", err)
		return a.simulated()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return a.simulated()
	}
	return text
}

func (a *Assistant) buildPrompt(message string, convCtx *store.Context) string {
	serialized, err := json.MarshalIndent(convCtx, "", "  ")
	if err != nil || convCtx == nil {
		serialized = []byte("{}")
	}
	names := strings.Join(a.catalog.Names(), ", ")
	return fmt.Sprintf(constant.AssistantPersonaPromptV1, names, serialized, message)
}

func (a *Assistant) simulated() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return constant.SimulatedReplies[a.rng.Intn(len(constant.SimulatedReplies))]
}
