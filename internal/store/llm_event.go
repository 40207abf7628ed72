package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var llmColumns = []string{
	"id", "sequence", "created_at", "provider", "model", "purpose", "input_tokens",
	"output_tokens", "latency_ms", "success", "error_message", "request_body", "response_body",
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, ev LLMRequestEvent) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	ins := builder().Insert(llmRequestEventsTable.Name).
		Columns(llmColumns[1:]...).
		Values(seqNum, r.clock().UnixMilli(), ev.Provider, ev.Model, ev.Purpose,
			ev.InputTokens, ev.OutputTokens, ev.LatencyMs, ev.Success,
			ev.ErrorMessage, ev.RequestBody, ev.ResponseBody)
	if err := r.exec(ctx, ins); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	b := builder()
	sel := opts.apply(b.Select(llmColumns...).From(b.Table(llmRequestEventsTable.Name)))
	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int64) (*LLMEventRecord, error) {
	b := builder()
	sel := b.Select(llmColumns...).
		From(b.Table(llmRequestEventsTable.Name)).
		Where(entsql.EQ("id", id)).
		Limit(1)
	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("LLM event %d: %w", id, ErrNotFound)
	}
	return scanLLMEvent(rows)
}

// LLMUsageByPurpose sums calls, failures and tokens per purpose.
func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	b := builder()
	sel := b.Select(
		"purpose",
		entsql.Count("*"),
		"SUM(CASE WHEN success THEN 0 ELSE 1 END)",
		entsql.Sum("input_tokens"),
		entsql.Sum("output_tokens"),
		entsql.Avg("latency_ms"),
	).
		From(b.Table(llmRequestEventsTable.Name)).
		GroupBy("purpose").
		OrderBy("purpose")
	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []PurposeUsage
	for rows.Next() {
		var u PurposeUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.Failures, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(s scanner) (*LLMEventRecord, error) {
	var (
		rec       LLMEventRecord
		createdAt int64
	)
	err := s.Scan(&rec.ID, &rec.Sequence, &createdAt, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs, &rec.Success,
		&rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody)
	if err != nil {
		return nil, fmt.Errorf("scan LLM event: %w", err)
	}
	rec.Timestamp = time.UnixMilli(createdAt)
	return &rec, nil
}
