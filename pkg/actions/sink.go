package actions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nailaide-be/pkg/planner"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// TurnEvent is the payload published for each turn that produced actions.
type TurnEvent struct {
	UserId  string           `json:"user_id"`
	Intent  string           `json:"intent"`
	Actions []planner.Action `json:"actions"`
	At      time.Time        `json:"at"`
}

// Sink receives the planned actions of a turn for out-of-band handling
// (telemetry, analytics consumers). Implementations must not block the
// request path for long.
type Sink interface {
	Publish(ctx context.Context, event TurnEvent) error
}

// BusSink publishes turn events onto a watermill publisher.
type BusSink struct {
	publisher message.Publisher
	topicName string
}

func NewBusSink(publisher message.Publisher, topicName string) *BusSink {
	return &BusSink{
		publisher: publisher,
		topicName: topicName,
	}
}

func (s *BusSink) Publish(ctx context.Context, event TurnEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal turn event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.SetContext(ctx)

	if err := s.publisher.Publish(s.topicName, msg); err != nil {
		return fmt.Errorf("failed to publish turn event: %w", err)
	}

	return nil
}
