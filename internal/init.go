package internal

import (
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/initiator"
	"github.com/MrSnakeDoc/tango/internal/middleware"
	"github.com/MrSnakeDoc/tango/internal/prompter"
	"github.com/MrSnakeDoc/tango/internal/scaffold"
	"github.com/MrSnakeDoc/tango/internal/store"

	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a new project from a provider template",
		Long: `Create a new test-automation project.
This command will:
- Ask for the project name, automation framework and cloud provider
- Copy the provider template into <project name with spaces replaced by _>
- Write tango.yml in the new project directory
- Remember the project for later build and deploy commands`,
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
			p, err := middleware.Get[prompter.Prompter](cmd, middleware.CtxKeyPrompter)
			if err != nil {
				return err
			}

			_, err = initiator.New(st, p, scaffold.New(settings.TemplatesDir, "")).Execute()
			return err
		},
	}
}
