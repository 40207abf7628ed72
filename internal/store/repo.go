package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("store: not found")

// QueryOpts configures event queries with filtering and pagination.
// Results are ordered newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // created_at >= From
	To     time.Time // created_at <= To
}

// LLMRequestEvent is one provider call.
type LLMRequestEvent struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLMRequestEvent.
type LLMEventRecord struct {
	LLMRequestEvent
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// PurposeUsage aggregates LLM calls for one purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs float64
}

// PlanEvent records one assembled plan.
type PlanEvent struct {
	PlanID         string
	UserID         string
	PatientCode    string
	UserType       string
	Rule           string
	Locale         string
	DroppedTaskIDs []string
	PlanJSON       string
}

// PlanEventRecord is a stored PlanEvent.
type PlanEventRecord struct {
	PlanEvent
	ID        int64
	Sequence  int64
	Timestamp time.Time
}

// EventRepo provides append and query access to the audit log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, ev LLMRequestEvent) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)
	GetLLMEvent(ctx context.Context, id int64) (*LLMEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	AppendPlanEvent(ctx context.Context, ev PlanEvent) error
	QueryPlanEvents(ctx context.Context, userID string, opts QueryOpts) ([]PlanEventRecord, error)
	GetPlanEvent(ctx context.Context, planID string) (*PlanEventRecord, error)
}

type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

func (r *eventRepo) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *eventRepo) exec(ctx context.Context, q entsql.Querier) error {
	query, args := q.Query()
	var res sql.Result
	return r.drv.Exec(ctx, query, args, &res)
}

func (r *eventRepo) query(ctx context.Context, q entsql.Querier) (*entsql.Rows, error) {
	query, args := q.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// apply adds the sequence and time bounds, newest-first order and limit.
func (opts QueryOpts) apply(sel *entsql.Selector) *entsql.Selector {
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("created_at", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE("created_at", opts.To.UnixMilli()))
	}
	sel.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return sel
}
