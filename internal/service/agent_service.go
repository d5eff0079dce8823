package service

import (
	"context"
	"time"

	"nailaide-be/internal/constant"
	"nailaide-be/internal/dto"
	"nailaide-be/internal/pkg/logger"
	"nailaide-be/internal/repository/memory"
	"nailaide-be/pkg/actions"
	"nailaide-be/pkg/catalog"
	"nailaide-be/pkg/entity"
	"nailaide-be/pkg/intent"
	"nailaide-be/pkg/nlg"
	"nailaide-be/pkg/nlu"
	"nailaide-be/pkg/planner"
	"nailaide-be/pkg/store"

	"github.com/google/uuid"
)

type IAgentService interface {
	ProcessMessage(ctx context.Context, req *dto.ChatMessageRequest) (*dto.AgentResponse, error)
	GetContext(userId string) *dto.ContextResponse
	ClearContext(userId string) bool
	ContextStats() *dto.ContextStatsResponse
	ListServices() []dto.ServiceDTO
}

type agentService struct {
	normalizer  *nlu.Normalizer
	classifier  *intent.Classifier
	extractor   *entity.Extractor
	generator   *nlg.Generator
	assistant   *nlg.Assistant
	planner     *planner.Planner
	catalog     *catalog.Catalog
	contextRepo memory.IContextRepository
	actionSink  actions.Sink
	logger      logger.ILogger
}

func NewAgentService(
	normalizer *nlu.Normalizer,
	classifier *intent.Classifier,
	extractor *entity.Extractor,
	generator *nlg.Generator,
	assistant *nlg.Assistant,
	actionPlanner *planner.Planner,
	cat *catalog.Catalog,
	contextRepo memory.IContextRepository,
	actionSink actions.Sink,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		normalizer:  normalizer,
		classifier:  classifier,
		extractor:   extractor,
		generator:   generator,
		assistant:   assistant,
		planner:     actionPlanner,
		catalog:     cat,
		contextRepo: contextRepo,
		actionSink:  actionSink,
		logger:      log,
	}
}

// ProcessMessage runs one conversation turn through the full pipeline.
// It never returns a user-visible failure for pipeline faults: any panic
// inside a stage degrades to a fixed apology tagged with the error
// intent, because a broken reply is still better than a 500 mid-chat.
func (s *agentService) ProcessMessage(ctx context.Context, req *dto.ChatMessageRequest) (res *dto.AgentResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("AgentService", "Pipeline panic recovered", map[string]interface{}{
				"user_id": req.UserId,
				"panic":   r,
			})
			res = &dto.AgentResponse{
				Id:         uuid.New(),
				Text:       constant.ApologyResponseV1,
				Intent:     constant.IntentError,
				Confidence: 0,
				Actions:    []planner.Action{},
				CreatedAt:  time.Now(),
			}
			err = nil
		}
	}()

	// 1. Normalize raw input
	input := s.normalizer.Process(req.Message)

	// 2. Load conversation context (nil on first contact)
	convCtx := s.contextRepo.Get(req.UserId)

	// 3. Classify intent
	detected := s.classifier.Detect(input, convCtx)

	// 4. Extract intent-scoped entities
	extracted := s.extractor.Find(input, detected)

	// 5. Merge remembered entities under the fresh ones
	merged := make(map[string]string)
	if convCtx != nil {
		for k, v := range convCtx.Entities {
			merged[k] = v
		}
	}
	for k, v := range extracted {
		merged[k] = v
	}

	// 6. Persist the turn before generating so the reply sees the
	// freshest context (this turn's message and entities included)
	update := store.ContextUpdate{
		LastIntent:  detected.Name,
		Entities:    merged,
		LastMessage: req.Message,
	}
	if d, ok := extracted[constant.EntityDate]; ok {
		update.PreferredDate = d
	}
	updatedCtx, uerr := s.contextRepo.Update(req.UserId, update)
	if uerr != nil {
		s.logger.Warn("AgentService", "Failed to update context", map[string]interface{}{
			"user_id": req.UserId,
			"error":   uerr.Error(),
		})
		updatedCtx = convCtx
	}

	// 7. Generate the reply: open questions and low-confidence turns go
	// to the assistant, everything else is answered from templates. The
	// response always reports the detected intent, even when a missing
	// bucket makes the generator answer from its fallback bucket.
	var text string
	if detected.Name == constant.IntentGeneralQuestion || detected.Confidence < constant.ConfidenceThreshold {
		text = s.assistant.Reply(ctx, req.Message, updatedCtx)
	} else {
		text = s.generator.Generate(detected.Name, merged, updatedCtx).Text
	}

	// 8. Plan UI actions off the detected intent, not the reply intent
	plannedActions := s.planner.Plan(detected.Name, merged, updatedCtx)

	if len(plannedActions) > 0 {
		s.publishActions(req.UserId, detected.Name, plannedActions)
	}

	s.logger.Info("AgentService", "Processed message", map[string]interface{}{
		"user_id":    req.UserId,
		"intent":     detected.Name,
		"confidence": detected.Confidence,
		"actions":    len(plannedActions),
	})

	return &dto.AgentResponse{
		Id:         uuid.New(),
		Text:       text,
		Intent:     detected.Name,
		Confidence: detected.Confidence,
		Actions:    plannedActions,
		CreatedAt:  time.Now(),
	}, nil
}

// publishActions hands the turn's actions to the sink without blocking
// the reply. Failures are logged and dropped; action telemetry is
// auxiliary to the conversation.
func (s *agentService) publishActions(userId, intentName string, planned []planner.Action) {
	event := actions.TurnEvent{
		UserId:  userId,
		Intent:  intentName,
		Actions: planned,
		At:      time.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.actionSink.Publish(ctx, event); err != nil {
			s.logger.Warn("AgentService", "Failed to publish action event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}()
}

// GetContext returns the live context for a user, or nil when none
// exists (expired or never created).
func (s *agentService) GetContext(userId string) *dto.ContextResponse {
	convCtx := s.contextRepo.Get(userId)
	if convCtx == nil {
		return nil
	}
	return &dto.ContextResponse{
		UserId:        userId,
		LastIntent:    convCtx.LastIntent,
		Entities:      convCtx.Entities,
		LastMessage:   convCtx.LastMessage,
		PreferredDate: convCtx.PreferredDate,
		LastUpdated:   convCtx.LastUpdated,
	}
}

func (s *agentService) ClearContext(userId string) bool {
	cleared := s.contextRepo.Clear(userId)
	if cleared {
		s.logger.Info("AgentService", "Context cleared", map[string]interface{}{
			"user_id": userId,
		})
	}
	return cleared
}

func (s *agentService) ContextStats() *dto.ContextStatsResponse {
	stats := s.contextRepo.Stats()
	res := &dto.ContextStatsResponse{
		TotalContexts: stats.TotalContexts,
	}
	if stats.TotalContexts > 0 {
		oldest := stats.OldestContext
		res.OldestContext = &oldest
	}
	return res
}

func (s *agentService) ListServices() []dto.ServiceDTO {
	services := s.catalog.Services()
	out := make([]dto.ServiceDTO, 0, len(services))
	for _, svc := range services {
		out = append(out, dto.ServiceDTO{
			Name:        svc.Name,
			Price:       svc.Price,
			Duration:    svc.Duration,
			Description: svc.Description,
		})
	}
	return out
}
