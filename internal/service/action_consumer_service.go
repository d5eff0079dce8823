package service

import (
	"context"
	"encoding/json"

	"nailaide-be/internal/pkg/logger"
	"nailaide-be/pkg/actions"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IActionConsumerService interface {
	Consume(ctx context.Context) error
}

// actionConsumerService drains the action topic and records each turn's
// planned actions. It is the in-process stand-in for whatever analytics
// or booking backend would subscribe in a larger deployment.
type actionConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewActionConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IActionConsumerService {
	return &actionConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

func (cs *actionConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *actionConsumerService) processMessage(msg *message.Message) {
	var event actions.TurnEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("ActionConsumer", "Failed to unmarshal action event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	types := make([]string, 0, len(event.Actions))
	for _, a := range event.Actions {
		types = append(types, a.Type)
	}

	cs.logger.Info("ActionConsumer", "Turn actions recorded", map[string]interface{}{
		"user_id": event.UserId,
		"intent":  event.Intent,
		"actions": types,
		"at":      event.At,
	})
	msg.Ack()
}
