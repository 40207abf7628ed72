package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindstep/aiplan/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [plan-id]",
	Short: "List recorded plans, or print one plan as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		repo := s.EventRepo()

		if len(args) == 1 {
			rec, err := repo.GetPlanEvent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(rec.PlanJSON)
			return nil
		}

		userID, _ := cmd.Flags().GetString("user-id")
		limit, _ := cmd.Flags().GetInt("limit")
		events, err := repo.QueryPlanEvents(cmd.Context(), userID, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query plans: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No plans recorded yet.")
			return nil
		}

		tb := newTable(cmd.OutOrStdout(), "PLAN", "TIME", "USER", "TYPE", "RULE", "DROPPED")
		for _, e := range events {
			tb.row(e.PlanID, stamp(e.Timestamp), e.UserID, e.UserType, e.Rule, len(e.DroppedTaskIDs))
		}
		tb.flush()
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user-id", "", "Only show plans for this user")
	historyCmd.Flags().Int("limit", 20, "Maximum number of plans to show")
}
