package internal

import (
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/engine"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/middleware"
	"github.com/MrSnakeDoc/tango/internal/models"
	"github.com/MrSnakeDoc/tango/internal/runner"
	"github.com/MrSnakeDoc/tango/internal/store"

	"github.com/spf13/cobra"
)

func NewBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the project image and run it locally",
		Long: `Build the project's Docker image and run it.
This command will:
- Check that Docker is installed and its daemon is running
- Run 'docker build -t myapp .' in the project directory
- Run the image with the project's python directory mounted at /opt/ext`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := middleware.Get[*store.Store](cmd, middleware.CtxKeyStore)
			if err != nil {
				return err
			}
			settings, err := middleware.Get[config.Settings](cmd, middleware.CtxKeySettings)
			if err != nil {
				return err
			}
			r, err := middleware.Get[runner.CommandRunner](cmd, middleware.CtxKeyRunner)
			if err != nil {
				return err
			}

			cfg, err := st.Require()
			if err != nil {
				return err
			}

			eng := engine.New(settings, r)
			if insp, err := middleware.Get[engine.ImageInspector](cmd, middleware.CtxKeyInspector); err == nil {
				eng.Inspector = insp
			}

			ctx := cmd.Context()
			if err := eng.Build(ctx, cfg.ProjectDir); err != nil {
				return err
			}
			if info, err := eng.Inspect(ctx); err != nil {
				logger.Debug("Skipping image inspection: %v", err)
			} else {
				logger.Info("Image %s built (%s, %.1f MB)", settings.ImageTag, info.ShortID(), float64(info.Size)/(1<<20))
			}

			if err := cfg.Advance(models.Built); err != nil {
				return err
			}
			if err := st.Save(); err != nil {
				return err
			}

			if err := eng.Run(ctx, cfg.ProjectDir); err != nil {
				return err
			}
			logger.Success("Project %s built and run", cfg.Name)
			return nil
		},
	}
}
