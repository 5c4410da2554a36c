package internal

import (
	"github.com/MrSnakeDoc/tango/internal/errs"

	"github.com/spf13/cobra"
)

// NewRunCmd reserves the verb; what it should do on its own is still undecided.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the project (not implemented yet)",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errs.New(errs.NotImplemented, "The run command")
		},
	}
}
