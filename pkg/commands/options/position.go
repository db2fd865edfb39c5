package options

import (
	"github.com/spf13/cobra"
)

// PositionOptions
type PositionOptions struct {
	X float64
	Y float64
}

func AddPositionArgs(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().Float64Var(&o.X, "x", 0, "Horizontal position on the page.")
	cmd.Flags().Float64Var(&o.Y, "y", 0, "Vertical position on the page.")
}
