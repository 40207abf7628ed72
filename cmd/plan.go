package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mindstep/aiplan/internal/clients"
	"github.com/mindstep/aiplan/internal/plan"
	"github.com/mindstep/aiplan/internal/profile"
	"github.com/mindstep/aiplan/internal/store"
	"github.com/mindstep/aiplan/internal/ui/render"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a training plan",
	Long: `Generate a training plan from local files (--profile, --catalog) or
from the profile and task services (--user-id, --patient-code).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		profilePath, _ := cmd.Flags().GetString("profile")
		catalogPath, _ := cmd.Flags().GetString("catalog")
		userID, _ := cmd.Flags().GetString("user-id")
		patientCode, _ := cmd.Flags().GetString("patient-code")
		asJSON, _ := cmd.Flags().GetBool("json")
		noRecord, _ := cmd.Flags().GetBool("no-record")

		if profilePath == "" && userID == "" {
			return errors.New("either --profile or --user-id is required")
		}

		seed, err := cfg.SeedValue()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			v, _ := cmd.Flags().GetUint64("seed")
			seed = &v
		}

		var repo store.EventRepo
		if !noRecord {
			if s, err := openStore(cmd); err != nil {
				logger.Warn("audit log disabled", zap.Error(err))
			} else {
				defer s.Close()
				repo = s.EventRepo()
			}
		}

		asm, err := newAssembler(ctx, repo, seed)
		if err != nil {
			return err
		}
		svc := newService(asm, repo, nil)

		var out *plan.Plan
		if profilePath != "" {
			p, err := clients.LoadProfileFile(profilePath)
			if err != nil {
				return err
			}
			var catalog []profile.TaskCatalogEntry
			if catalogPath != "" {
				if catalog, err = clients.LoadCatalogFile(catalogPath); err != nil {
					return err
				}
			}
			out, err = svc.Preview(ctx, p, catalog)
			if err != nil {
				return err
			}
		} else {
			if !cfg.Remote() {
				return errors.New("PROFILE_SERVICE_URL and TASK_SERVICE_URL must be set for remote plans")
			}
			out, err = svc.Generate(ctx, userID, patientCode)
			if err != nil {
				return err
			}
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}
		fmt.Println(render.Plan(out))
		return nil
	},
}

func init() {
	planCmd.Flags().String("profile", "", "Profile file (JSON or YAML)")
	planCmd.Flags().String("catalog", "", "Task catalog file (JSON or YAML)")
	planCmd.Flags().String("user-id", "", "User id for the profile service")
	planCmd.Flags().String("patient-code", "", "Patient code for the profile service")
	planCmd.Flags().Uint64("seed", 0, "Fix the task-matching random source (overrides PLAN_SEED)")
	planCmd.Flags().Bool("json", false, "Print the plan as JSON")
	planCmd.Flags().Bool("no-record", false, "Do not write the plan to the audit log")
	planCmd.MarkFlagsMutuallyExclusive("profile", "user-id")
	planCmd.MarkFlagsRequiredTogether("user-id", "patient-code")
}
