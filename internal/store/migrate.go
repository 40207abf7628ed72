package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// eventColumns are shared by every event table: an auto id, the global
// sequence and the wall-clock time in unix milliseconds.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt64, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "created_at", Type: field.TypeInt64},
	}, extra...)
}

func textColumn(name string) *schema.Column {
	return &schema.Column{Name: name, Type: field.TypeString, Size: 2147483647, Default: ""}
}

var (
	llmRequestEventsColumns = eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		textColumn("error_message"),
		textColumn("request_body"),
		textColumn("response_body"),
	)
	llmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    llmRequestEventsColumns,
		PrimaryKey: []*schema.Column{llmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "llmrequestevent_created_at", Columns: []*schema.Column{llmRequestEventsColumns[2]}},
			{Name: "llmrequestevent_purpose", Columns: []*schema.Column{llmRequestEventsColumns[5]}},
		},
	}

	planEventsColumns = eventColumns(
		&schema.Column{Name: "plan_id", Type: field.TypeString, Unique: true},
		&schema.Column{Name: "user_id", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "patient_code", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "user_type", Type: field.TypeString},
		&schema.Column{Name: "rule", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "locale", Type: field.TypeString, Default: ""},
		textColumn("dropped_task_ids"),
		textColumn("plan_json"),
	)
	planEventsTable = &schema.Table{
		Name:       "plan_events",
		Columns:    planEventsColumns,
		PrimaryKey: []*schema.Column{planEventsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "planevent_created_at", Columns: []*schema.Column{planEventsColumns[2]}},
			{Name: "planevent_user_id", Columns: []*schema.Column{planEventsColumns[4]}},
		},
	}

	tables = []*schema.Table{llmRequestEventsTable, planEventsTable}
)

// migrate creates or upgrades the event tables through ent's migration
// engine. Columns are only ever added.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}

// builder returns an SQL builder for the SQLite dialect.
func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
