package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db handle")
	}
}

func TestAppendAndAggregateLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "explain", InputTokens: 100, OutputTokens: 200, LatencyMs: 40, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "quiz-gen", InputTokens: 50, OutputTokens: 80, LatencyMs: 60, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "explain", LatencyMs: 20, Success: false, ErrorMessage: "unavailable"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalRequests != 3 {
		t.Errorf("TotalRequests = %d, want 3", stats.TotalRequests)
	}
	if stats.Failures != 1 {
		t.Errorf("Failures = %d, want 1", stats.Failures)
	}
	if stats.InputTokens != 150 || stats.OutputTokens != 280 {
		t.Errorf("tokens = %d/%d, want 150/280", stats.InputTokens, stats.OutputTokens)
	}
	if stats.ByPurpose["explain"] != 2 {
		t.Errorf("ByPurpose[explain] = %d, want 2", stats.ByPurpose["explain"])
	}
}

func TestAppendAndAggregateConversationEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []ConversationEventData{
		{UserID: "U1", Mode: "selecting_topic", InputKind: "text", Detail: "network"},
		{UserID: "U1", Mode: "quiz", InputKind: "button"},
		{UserID: "U2", Mode: "selecting_topic", InputKind: "text", Detail: "os"},
	}
	for _, e := range events {
		if err := repo.AppendConversation(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.ConversationStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalInputs != 3 {
		t.Errorf("TotalInputs = %d, want 3", stats.TotalInputs)
	}
	if stats.UniqueUsers != 2 {
		t.Errorf("UniqueUsers = %d, want 2", stats.UniqueUsers)
	}
	if stats.ByMode["selecting_topic"] != 2 {
		t.Errorf("ByMode[selecting_topic] = %d, want 2", stats.ByMode["selecting_topic"])
	}
}
