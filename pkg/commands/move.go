package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	io := &options.IDOptions{}
	po := &options.PositionOptions{}
	resize := false

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move or resize a placement on a day's page",
		Example: `
planner move --x=120 --y=300 <placement id>
planner move --resize --x=200 --y=150 <photo id>
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
			s := move.Move{
				On:          on,
				ID:          io.ID,
				X:           po.X,
				Y:           po.Y,
				Resize:      resize,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&resize, "resize", false,
		"Treat --x/--y as width and height. Photos only.")

	options.AddOnArgs(cmd, no)
	options.AddPositionArgs(cmd, po)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
