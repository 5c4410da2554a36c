package internal

import (
	"github.com/MrSnakeDoc/tango/internal/middleware"
	"github.com/spf13/cobra"
)

var defaultCommands = []middleware.CommandFactory{
	NewVersionCmd,
	NewInitCmd,
	middleware.UseMiddlewareChain(middleware.RequireProject, middleware.RequireEngine)(NewBuildCmd),
	NewRunCmd,
	middleware.UseMiddlewareChain(middleware.RequireProject)(NewDeployCmd),
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}
