package internal

import (
	"context"
	"os"
	"strings"

	"github.com/MrSnakeDoc/tango/internal/awsidentity"
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/middleware"
	"github.com/MrSnakeDoc/tango/internal/prompter"
	"github.com/MrSnakeDoc/tango/internal/runner"
	"github.com/MrSnakeDoc/tango/internal/store"
	"github.com/MrSnakeDoc/tango/internal/version"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tango",
		Short: "Scaffold, build and deploy cloud test-automation projects",
		Long: `Tango generates a test-automation project (Selenium, Playwright or Puppeteer)
from a cloud provider template, builds and runs it in Docker, and deploys it
with the AWS CDK.`,
		Example: `tango init
tango build
tango deploy --project ./My_Project`,
		Run: func(cmd *cobra.Command, _ []string) {
			if v, _ := cmd.Flags().GetBool("version"); v {
				version.Print(cmd.OutOrStdout())
				return
			}
			_ = cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if logger.FlagQuiet && logger.FlagVerboseCount > 0 {
				return middleware.FlagComboError("--quiet and --verbose cannot be used together")
			}
			logger.ConfigureLoggerFromFlags()

			v, err := config.SetupViper(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			settings := config.Load(v)
			logger.Debug("Settings: templates=%s engine=%s infra=%s", settings.TemplatesDir, settings.Engine, settings.Infra)

			middleware.Provide(cmd, middleware.CtxKeySettings, settings)
			middleware.Provide(cmd, middleware.CtxKeyStore, store.New())
			middleware.Provide(cmd, middleware.CtxKeyRunner, runner.CommandRunner(&runner.ExecRunner{}))
			middleware.Provide(cmd, middleware.CtxKeyPrompter, prompter.Default())
			middleware.Provide(cmd, middleware.CtxKeyIdentity, awsidentity.Resolver(awsidentity.NewSTSResolver()))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")

	pf := cmd.PersistentFlags()
	pf.StringP("project", "p", "", "Project directory (defaults to ./tango.yml, then the last initialized project)")
	pf.String("templates", config.Default().TemplatesDir, "Root directory of the provider templates (default: bundled templates)")
	pf.CountVarP(&logger.FlagVerboseCount, "verbose", "V", "Increase verbosity")
	pf.BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Only print errors")
	pf.BoolVar(&logger.FlagJSON, "json", false, "Log as JSON")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	return ExecuteContext(context.Background())
}

func ExecuteContext(ctx context.Context) error {
	root := NewRootCmd()

	if os.Getenv("COMP_LINE") != "" ||
		(len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "__complete")) {
		return root.ExecuteContext(ctx)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Debug("Failed to execute root command: %v", err)
		return err
	}
	return nil
}
