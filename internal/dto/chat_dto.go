package dto

import (
	"time"

	"github.com/google/uuid"

	"nailaide-be/pkg/planner"
)

type ChatMessageRequest struct {
	UserId      string            `json:"user_id" validate:"required"`
	Message     string            `json:"message"`
	SessionData map[string]string `json:"session_data,omitempty"` // extra context hints from the client
}

type AgentResponse struct {
	Id         uuid.UUID        `json:"id"`
	Text       string           `json:"text"`
	Intent     string           `json:"intent"`
	Confidence float64          `json:"confidence"`
	Actions    []planner.Action `json:"actions"`
	CreatedAt  time.Time        `json:"created_at"`
}

type ContextResponse struct {
	UserId        string            `json:"user_id"`
	LastIntent    string            `json:"last_intent,omitempty"`
	Entities      map[string]string `json:"entities,omitempty"`
	LastMessage   string            `json:"last_message,omitempty"`
	PreferredDate string            `json:"preferred_date,omitempty"`
	LastUpdated   time.Time         `json:"last_updated"`
}

type ContextStatsResponse struct {
	TotalContexts int        `json:"total_contexts"`
	OldestContext *time.Time `json:"oldest_context,omitempty"`
}

type ServiceDTO struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
	Description string  `json:"description"`
}
