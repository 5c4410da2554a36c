package middleware

import (
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/engine"
	"github.com/MrSnakeDoc/tango/internal/runner"

	"github.com/spf13/cobra"
)

// RequireEngine stops the command when Docker is missing or its daemon is down.
func RequireEngine(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	settings, err := Get[config.Settings](cmd, CtxKeySettings)
	if err != nil {
		return err
	}
	r, err := Get[runner.CommandRunner](cmd, CtxKeyRunner)
	if err != nil {
		return err
	}

	if err := engine.New(settings, r).CheckPrerequisites(cmd.Context()); err != nil {
		return err
	}
	return next(cmd, args)
}
