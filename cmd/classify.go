package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindstep/aiplan/internal/ability"
	"github.com/mindstep/aiplan/internal/clients"
	"github.com/mindstep/aiplan/internal/modules"
	"github.com/mindstep/aiplan/internal/usertype"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a profile and show its module split",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("profile")
		asJSON, _ := cmd.Flags().GetBool("json")

		p, err := clients.LoadProfileFile(path)
		if err != nil {
			return err
		}

		th := usertype.DefaultThresholds()
		ut, rule := usertype.Explain(p.Scores, p.SubScores, th)
		skel := modules.Build(modules.Input{
			Type:       ut,
			Scores:     p.Scores,
			SubScores:  p.SubScores,
			Thresholds: th,
		})

		if asJSON {
			type module struct {
				Name      string            `json:"name"`
				Abilities []ability.Ability `json:"abilities"`
			}
			out := struct {
				UserType usertype.UserType `json:"user_type"`
				Rule     string            `json:"rule"`
				Modules  []module          `json:"modules"`
			}{UserType: ut, Rule: rule}
			for _, s := range skel {
				out.Modules = append(out.Modules, module{Name: string(s.Name), Abilities: s.Abilities})
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Printf("User type: %s (%s)\n", ut.Label(), ut)
		fmt.Printf("Rule:      %s\n", rule)
		fmt.Println()
		fmt.Printf("%-12s  %8s\n", "Ability", "Score")
		fmt.Println(strings.Repeat("\u2500", 24))
		for _, a := range ability.All() {
			if v, ok := p.Scores.Get(a); ok {
				fmt.Printf("%-12s  %8.1f\n", a, v)
			} else {
				fmt.Printf("%-12s  %8s\n", a, "-")
			}
		}
		fmt.Println()
		for _, s := range skel {
			names := make([]string, len(s.Abilities))
			for i, a := range s.Abilities {
				names[i] = ability.DisplayName(a)
			}
			fmt.Printf("%s: %s\n", s.Name, strings.Join(names, "、"))
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().String("profile", "", "Profile file (JSON or YAML)")
	classifyCmd.Flags().Bool("json", false, "Print the result as JSON")
	_ = classifyCmd.MarkFlagRequired("profile")
}
