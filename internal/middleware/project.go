package middleware

import (
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/store"

	"github.com/spf13/cobra"
)

// RequireProject makes sure the store holds a scaffolded project, loading it
// from --project, the working directory or the last init when needed.
func RequireProject(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	st, err := Get[*store.Store](cmd, CtxKeyStore)
	if err != nil {
		return err
	}
	settings, err := Get[config.Settings](cmd, CtxKeySettings)
	if err != nil {
		return err
	}

	cfg, err := st.Resolve(settings.ProjectDir)
	if err != nil {
		return err
	}
	logger.Debug("Using project %q in %s (stage %s)", cfg.Name, cfg.ProjectDir, cfg.Stage)

	return next(cmd, args)
}
