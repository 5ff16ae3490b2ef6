package store

import "context"

// NopEventRepo discards all events. Used when no database is configured and
// in tests that don't assert on the event log.
type NopEventRepo struct{}

func (NopEventRepo) AppendLLMRequest(context.Context, LLMRequestEventData) error  { return nil }
func (NopEventRepo) AppendConversation(context.Context, ConversationEventData) error { return nil }

func (NopEventRepo) LLMStats(context.Context) (*LLMStats, error) {
	return &LLMStats{ByPurpose: map[string]int{}}, nil
}

func (NopEventRepo) ConversationStats(context.Context) (*ConversationStats, error) {
	return &ConversationStats{ByMode: map[string]int{}}, nil
}
