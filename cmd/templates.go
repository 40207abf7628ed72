package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindstep/aiplan/internal/templates"
	"github.com/mindstep/aiplan/internal/usertype"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [type]",
	Short: "Show the fixed plan text per user type",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tb := templates.Default()
		if cfg.TemplatesFile != "" {
			var err error
			if tb, err = templates.LoadFile(cfg.TemplatesFile); err != nil {
				return err
			}
		}

		types := usertype.All()
		if len(args) == 1 {
			t, ok := usertype.Parse(args[0])
			if !ok {
				return fmt.Errorf("unknown user type %q", args[0])
			}
			types = []usertype.UserType{t}
		}

		sep := strings.Repeat("\u2500", 60)
		for i, t := range types {
			if i > 0 {
				fmt.Println()
			}
			tpl := tb.Lookup(t)
			fmt.Println(sep)
			fmt.Printf("%s (%s)\n", t.Label(), t)
			fmt.Println(sep)
			fmt.Printf("Overview:  %s\n", tpl.Overview)
			fmt.Printf("Intro:     %s\n", tpl.TrainingPlanIntro)
			printList("Home advice", tpl.HomeAdvice)
			printList("Tracking", tpl.TrackingAndAdjustment)
		}
		return nil
	},
}

func printList(title string, items []string) {
	fmt.Printf("%s:\n", title)
	for i, s := range items {
		fmt.Printf("  %d. %s\n", i+1, s)
	}
}
