package actions

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"nailaide-be/pkg/planner"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusSinkPublish(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(context.Background(), "test.actions")
	require.NoError(t, err)

	sink := NewBusSink(pubSub, "test.actions")
	sent := TurnEvent{
		UserId: "user-1",
		Intent: "book_appointment",
		Actions: []planner.Action{
			{Type: "show_booking_form", Data: map[string]any{"prefilledService": "Gel Manicure"}},
		},
		At: time.Now(),
	}

	require.NoError(t, sink.Publish(context.Background(), sent))

	select {
	case msg := <-messages:
		var got TurnEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &got))
		assert.Equal(t, "user-1", got.UserId)
		assert.Equal(t, "book_appointment", got.Intent)
		require.Len(t, got.Actions, 1)
		assert.Equal(t, "show_booking_form", got.Actions[0].Type)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("no message received within 1s")
	}
}
