package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/overview"
)

func addOverview(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	table := false

	cmd := &cobra.Command{
		Use:     "overview",
		Aliases: []string{"month", "cal"},
		Short:   "Show which days of a month have content",
		Example: `
planner overview
planner overview --on="2026-3-1" --table
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := overview.Overview{
				On:          on,
				Table:       table,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&table, "table", false,
		"Also list each day with the kinds of content it holds.")

	options.AddOnArgs(cmd, no)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
