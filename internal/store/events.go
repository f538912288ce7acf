package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MitulPatil/YouTube-Notes-Quiz-Generator/internal/llm"
)

// UsageSummary aggregates generation telemetry over all recorded events.
type UsageSummary struct {
	Calls        int
	Errors       int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// EventRepo records model calls. It satisfies llm.EventSink.
type EventRepo interface {
	RecordEvent(ctx context.Context, ev llm.Event) error
	Summary(ctx context.Context) (*UsageSummary, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) RecordEvent(ctx context.Context, ev llm.Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_events (model, purpose, duration_ms, input_tokens, output_tokens, cost_usd, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Model, ev.Purpose, ev.DurationMS, ev.InputTokens, ev.OutputTokens,
		ev.CostUSD, ev.Error, ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) Summary(ctx context.Context) (*UsageSummary, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN error != '' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0),
		        COALESCE(SUM(cost_usd), 0)
		 FROM llm_events`)

	var s UsageSummary
	if err := row.Scan(&s.Calls, &s.Errors, &s.InputTokens, &s.OutputTokens, &s.CostUSD); err != nil {
		return nil, fmt.Errorf("scan usage summary: %w", err)
	}
	return &s, nil
}
