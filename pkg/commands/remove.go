package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a placement from a day's page",
		Example: `
planner remove <placement id>
planner remove --on="2/28" <placement id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a placement id")
			}
			io.ID = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := remove.Remove{
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
