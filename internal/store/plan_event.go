package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var planColumns = []string{
	"id", "sequence", "created_at", "plan_id", "user_id", "patient_code", "user_type",
	"rule", "locale", "dropped_task_ids", "plan_json",
}

func (r *eventRepo) AppendPlanEvent(ctx context.Context, ev PlanEvent) error {
	if ev.PlanID == "" {
		return errors.New("plan event requires a plan id")
	}
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	ins := builder().Insert(planEventsTable.Name).
		Columns(planColumns[1:]...).
		Values(seqNum, r.clock().UnixMilli(), ev.PlanID, ev.UserID, ev.PatientCode, ev.UserType,
			ev.Rule, ev.Locale, strings.Join(ev.DroppedTaskIDs, ","), ev.PlanJSON)
	if err := r.exec(ctx, ins); err != nil {
		return fmt.Errorf("save plan event: %w", err)
	}
	return nil
}

// QueryPlanEvents lists plans, optionally restricted to one user.
func (r *eventRepo) QueryPlanEvents(ctx context.Context, userID string, opts QueryOpts) ([]PlanEventRecord, error) {
	b := builder()
	sel := b.Select(planColumns...).From(b.Table(planEventsTable.Name))
	if userID != "" {
		sel.Where(entsql.EQ("user_id", userID))
	}
	rows, err := r.query(ctx, opts.apply(sel))
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}
	defer rows.Close()

	var out []PlanEventRecord
	for rows.Next() {
		rec, err := scanPlanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetPlanEvent(ctx context.Context, planID string) (*PlanEventRecord, error) {
	b := builder()
	sel := b.Select(planColumns...).
		From(b.Table(planEventsTable.Name)).
		Where(entsql.EQ("plan_id", planID)).
		Limit(1)
	rows, err := r.query(ctx, sel)
	if err != nil {
		return nil, fmt.Errorf("get plan event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("plan %s: %w", planID, ErrNotFound)
	}
	return scanPlanEvent(rows)
}

func scanPlanEvent(s scanner) (*PlanEventRecord, error) {
	var (
		rec       PlanEventRecord
		createdAt int64
		dropped   string
	)
	err := s.Scan(&rec.ID, &rec.Sequence, &createdAt, &rec.PlanID, &rec.UserID, &rec.PatientCode,
		&rec.UserType, &rec.Rule, &rec.Locale, &dropped, &rec.PlanJSON)
	if err != nil {
		return nil, fmt.Errorf("scan plan event: %w", err)
	}
	rec.Timestamp = time.UnixMilli(createdAt)
	if dropped != "" {
		rec.DroppedTaskIDs = strings.Split(dropped, ",")
	}
	return &rec, nil
}
