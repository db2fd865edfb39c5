package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: base.Wrap80("Daily planner pages on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addComplete(topLevel)
	addOverview(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

func loadPersistence() (store.Persistence, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	return store.Load(cfg)
}
