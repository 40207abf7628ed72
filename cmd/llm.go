package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mindstep/aiplan/internal/store"
	"github.com/mindstep/aiplan/internal/ui/theme"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM calls (goal and narrative text)",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		tb := newTable(cmd.OutOrStdout(), "ID", "TIME", "PURPOSE", "MODEL", "IN", "OUT", "MS", "STATUS")
		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			tb.row(e.ID, stamp(e.Timestamp), e.Purpose, e.Model, e.InputTokens, e.OutputTokens, e.LatencyMs, status(e.Success))
		}
		tb.flush()
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the request and response of one LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return err
		}

		fields := [][2]string{
			{"event", strconv.FormatInt(e.ID, 10)},
			{"time", stamp(e.Timestamp)},
			{"model", e.Provider + "/" + e.Model},
			{"purpose", e.Purpose},
			{"tokens", fmt.Sprintf("%d in, %d out", e.InputTokens, e.OutputTokens)},
			{"latency", fmt.Sprintf("%dms", e.LatencyMs)},
			{"status", status(e.Success)},
		}
		if e.ErrorMessage != "" {
			fields = append(fields, [2]string{"error", e.ErrorMessage})
		}
		for _, f := range fields {
			fmt.Println(theme.Label.Render(f[0]) + f[1])
		}

		printBlock("REQUEST", e.RequestBody)
		printBlock("RESPONSE", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM token usage by purpose",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.EventRepo().LLMUsageByPurpose(cmd.Context())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		tb := newTable(cmd.OutOrStdout(), "PURPOSE", "CALLS", "FAILED", "INPUT", "OUTPUT", "TOTAL", "AVG MS")
		var calls, failed, in, out int
		for _, st := range stats {
			tb.row(st.Purpose, st.Calls, st.Failures, st.InputTokens, st.OutputTokens,
				st.InputTokens+st.OutputTokens, fmt.Sprintf("%.0f", st.AvgLatencyMs))
			calls += st.Calls
			failed += st.Failures
			in += st.InputTokens
			out += st.OutputTokens
		}
		tb.row("total", calls, failed, in, out, in+out, "")
		tb.flush()
		return nil
	},
}

func printBlock(title, body string) {
	if body == "" {
		body = theme.Hint.Render("(empty)")
	}
	fmt.Println()
	fmt.Println(theme.Card.Render(theme.Heading.Render(title) + "\n" + body))
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum number of events to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose (goal, narrative)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
