package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo with hand-written SQL. SQLite handles the
// low write volume of a single bot process without a queueing layer.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendConversation(ctx context.Context, data ConversationEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO conversation_events (user_id, mode, input_kind, detail)
		VALUES (?, ?, ?, ?)`,
		data.UserID, data.Mode, data.InputKind, data.Detail,
	)
	if err != nil {
		return fmt.Errorf("save conversation event: %w", err)
	}
	return nil
}

func (r *eventRepo) LLMStats(ctx context.Context) (*LLMStats, error) {
	stats := &LLMStats{ByPurpose: make(map[string]int)}

	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM llm_request_events`)
	if err := row.Scan(&stats.TotalRequests, &stats.Failures,
		&stats.InputTokens, &stats.OutputTokens, &stats.AvgLatencyMs); err != nil {
		return nil, fmt.Errorf("aggregate LLM events: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*) FROM llm_request_events GROUP BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("group LLM events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var purpose string
		var n int
		if err := rows.Scan(&purpose, &n); err != nil {
			return nil, err
		}
		stats.ByPurpose[purpose] = n
	}
	return stats, rows.Err()
}

func (r *eventRepo) ConversationStats(ctx context.Context) (*ConversationStats, error) {
	stats := &ConversationStats{ByMode: make(map[string]int)}

	var since sql.NullString
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT user_id), MIN(created_at)
		FROM conversation_events`)
	if err := row.Scan(&stats.TotalInputs, &stats.UniqueUsers, &since); err != nil {
		return nil, fmt.Errorf("aggregate conversation events: %w", err)
	}
	if since.Valid {
		if t, err := time.Parse("2006-01-02 15:04:05", since.String); err == nil {
			stats.Since = t
		}
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT mode, COUNT(*) FROM conversation_events GROUP BY mode`)
	if err != nil {
		return nil, fmt.Errorf("group conversation events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mode string
		var n int
		if err := rows.Scan(&mode, &n); err != nil {
			return nil, err
		}
		stats.ByMode[mode] = n
	}
	return stats, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
