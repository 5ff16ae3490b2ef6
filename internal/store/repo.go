package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ConversationEventData captures one handled input from a user.
type ConversationEventData struct {
	UserID    string
	Mode      string
	InputKind string // "text" or "button"
	Detail    string
}

// LLMStats summarizes the LLM request event log.
type LLMStats struct {
	TotalRequests int
	Failures      int
	InputTokens   int
	OutputTokens  int
	AvgLatencyMs  float64
	ByPurpose     map[string]int
}

// ConversationStats summarizes the conversation event log.
type ConversationStats struct {
	TotalInputs int
	UniqueUsers int
	ByMode      map[string]int
	Since       time.Time
}

// EventRepo provides append and summary access to the event log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendConversation records a handled conversation input.
	AppendConversation(ctx context.Context, data ConversationEventData) error

	// LLMStats aggregates the LLM request log.
	LLMStats(ctx context.Context) (*LLMStats, error)

	// ConversationStats aggregates the conversation log.
	ConversationStats(ctx context.Context) (*ConversationStats, error)
}
