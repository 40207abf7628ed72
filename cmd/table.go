package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/mindstep/aiplan/internal/ui/theme"
)

// table prints tab-aligned rows. Only the last column may carry styling.
type table struct {
	w *tabwriter.Writer
}

func newTable(out io.Writer, headers ...string) *table {
	t := &table{w: tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)}
	fmt.Fprintln(t.w, strings.Join(headers, "\t"))
	return t
}

func (t *table) row(cols ...any) {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprint(c)
	}
	fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

func (t *table) flush() { _ = t.w.Flush() }

func status(ok bool) string {
	if ok {
		return theme.Ok.Render("ok")
	}
	return theme.Failed.Render("fail")
}

func stamp(ts time.Time) string {
	return ts.Local().Format("2006-01-02 15:04:05")
}
