package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream store changes until interrupted",
		Example: `
planner watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPersistence()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			s := watch.Watch{
				Persistence: p,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
