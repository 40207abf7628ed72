// Package goals writes the goal sentence attached to each training item.
package goals

import (
	"context"
	"fmt"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/profile"
)

// Writer produces the goal text for one ability given its matched tasks.
// Errors are fatal to the plan being assembled.
type Writer interface {
	Goal(ctx context.Context, a ability.Ability, tasks []profile.NormalizedTask) (string, error)
}

// WriterFunc adapts a plain function to Writer.
type WriterFunc func(ctx context.Context, a ability.Ability, tasks []profile.NormalizedTask) (string, error)

func (f WriterFunc) Goal(ctx context.Context, a ability.Ability, tasks []profile.NormalizedTask) (string, error) {
	return f(ctx, a, tasks)
}

// TemplateWriter fills a fixed sentence with the ability's display name.
type TemplateWriter struct {
	// Format takes one %s verb. Empty uses DefaultFormat.
	Format string
}

// DefaultFormat is the goal sentence used without an LLM.
const DefaultFormat = "强化%s能力，提升整体认知灵活性与稳定性。"

func (w TemplateWriter) Goal(_ context.Context, a ability.Ability, _ []profile.NormalizedTask) (string, error) {
	format := w.Format
	if format == "" {
		format = DefaultFormat
	}
	return fmt.Sprintf(format, ability.DisplayName(a)), nil
}
