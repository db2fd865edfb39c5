package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete",
		Aliases: []string{"completed", "done", "check"},
		Short:   "Check off a reminder",
		Example: `
planner complete <event id>
planner complete --on="2/28" <event id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an event id")
			}
			io.ID = strings.Join(args, " ")

			return nil
		},

		RunE: func(_ *cobra.Command, _ []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := complete.Complete{
				On:          on,
				ID:          io.ID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, no)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
