package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"page", "get"},
		Short:   "Show a day's page",
		Example: `
planner show
planner show --on="2/28"
planner show --on="2026-2-28" --show-id
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
			s := show.Show{
				ShowID:      io.ShowID,
				On:          on,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, no)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
