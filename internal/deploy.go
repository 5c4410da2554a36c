package internal

import (
	"github.com/MrSnakeDoc/tango/internal/awsidentity"
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/deploy"
	"github.com/MrSnakeDoc/tango/internal/middleware"
	"github.com/MrSnakeDoc/tango/internal/prompter"
	"github.com/MrSnakeDoc/tango/internal/runner"
	"github.com/MrSnakeDoc/tango/internal/store"

	"github.com/spf13/cobra"
)

func NewDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the project to its cloud provider",
		Long: `Deploy the project with the AWS CDK.
This command will:
- Ask for the AWS account ID and region if they are not known yet
- Run 'cdk bootstrap aws://<account>/<region>'
- Run 'cdk deploy' once the bootstrap succeeded
Azure projects are not supported yet.`,
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
			p, err := middleware.Get[prompter.Prompter](cmd, middleware.CtxKeyPrompter)
			if err != nil {
				return err
			}
			id, err := middleware.Get[awsidentity.Resolver](cmd, middleware.CtxKeyIdentity)
			if err != nil {
				return err
			}

			return deploy.New(st, settings, r, p, id).Execute(cmd.Context())
		},
	}
}
