package deploy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/tango/internal/awsidentity"
	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/models"
	"github.com/MrSnakeDoc/tango/internal/prompter"
	"github.com/MrSnakeDoc/tango/internal/runner"
	"github.com/MrSnakeDoc/tango/internal/store"
	"github.com/MrSnakeDoc/tango/internal/utils"

	"github.com/joho/godotenv"
)

const (
	envAccount = "AWS_ACCOUNT_ID"
	envRegion  = "AWS_DEFAULT_REGION"
)

type Deployer struct {
	Store    *store.Store
	Settings config.Settings
	Runner   runner.CommandRunner
	Prompter prompter.Prompter
	Identity awsidentity.Resolver
}

func New(s *store.Store, settings config.Settings, r runner.CommandRunner, p prompter.Prompter, id awsidentity.Resolver) *Deployer {
	if r == nil {
		r = &runner.ExecRunner{}
	}
	if p == nil {
		p = prompter.Default()
	}
	if id == nil {
		id = awsidentity.NewSTSResolver()
	}

	return &Deployer{
		Store:    s,
		Settings: settings,
		Runner:   r,
		Prompter: p,
		Identity: id,
	}
}

// Execute deploys the active project to its cloud provider.
func (d *Deployer) Execute(ctx context.Context) error {
	cfg, err := d.Store.Require()
	if err != nil {
		return err
	}

	utils.RenderTable("Deploying project", []string{"Setting", "Value"}, [][]string{
		{"Project", cfg.Name},
		{"Framework", string(cfg.Framework)},
		{"Provider", string(cfg.Provider)},
		{"Directory", cfg.ProjectDir},
	})

	switch cfg.Provider {
	case models.AWS:
		return d.deployAWS(ctx, cfg)
	case models.Azure:
		return errs.New(errs.NotImplemented, "Deployment to Azure")
	default:
		return errs.New(errs.ProviderUnsupported, cfg.Provider)
	}
}

func (d *Deployer) deployAWS(ctx context.Context, cfg *models.ProjectConfig) error {
	creds := cfg.Credentials()
	if !creds.Complete() {
		seedFromDotenv(cfg.ProjectDir, creds)
		if err := d.collectCredentials(ctx, creds); err != nil {
			return err
		}
		if err := d.Store.Save(); err != nil {
			return err
		}
	}

	if _, err := d.Runner.LookPath(d.Settings.Infra); err != nil {
		return errs.Wrap(errs.InfraUnavailable, err, d.Settings.Infra)
	}

	env := creds.Environment()
	logger.Info("Bootstrapping %s...", env)
	if err := d.infra(ctx, cfg.ProjectDir, errs.BootstrapFailed, []any{env}, "bootstrap", env); err != nil {
		return err
	}
	if err := d.advance(cfg, models.Bootstrapped); err != nil {
		return err
	}

	logger.Info("Deploying stack...")
	if err := d.infra(ctx, cfg.ProjectDir, errs.DeployFailed, nil, "deploy"); err != nil {
		return err
	}
	if err := d.advance(cfg, models.Deployed); err != nil {
		return err
	}

	logger.Success("Project %s deployed to %s", cfg.Name, env)
	return nil
}

// seedFromDotenv fills missing credentials from <projectDir>/.env. Invalid
// values are ignored so the prompts can ask for them instead.
func seedFromDotenv(projectDir string, creds *models.AWSCredentials) {
	path := filepath.Join(projectDir, ".env")
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Ignoring %s: %v", path, err)
		}
		return
	}

	if creds.AccountID == "" {
		if v := env[envAccount]; v != "" && models.ValidateAccountID(v) == nil {
			creds.AccountID = v
			logger.Debug("Using %s from %s", envAccount, path)
		}
	}
	if creds.Region == "" {
		if v := env[envRegion]; models.IsRegion(v) {
			creds.Region = v
			logger.Debug("Using %s from %s", envRegion, path)
		}
	}
}

func (d *Deployer) collectCredentials(ctx context.Context, creds *models.AWSCredentials) error {
	if creds.Complete() {
		return nil
	}

	hint := d.lookupIdentity(ctx)

	if creds.AccountID == "" {
		def := ""
		if models.ValidateAccountID(hint.Account) == nil {
			def = hint.Account
		}
		account, err := d.Prompter.Input("Enter your AWS account ID", def, models.ValidateAccountID)
		if err != nil {
			return errs.Wrap(errs.InvalidInput, err).WithDetail("no AWS account ID given")
		}
		creds.AccountID = account
	}

	if creds.Region == "" {
		def := ""
		if models.IsRegion(hint.Region) {
			def = hint.Region
		}
		region, err := d.Prompter.Select("Select your AWS region", models.Regions, def)
		if err != nil {
			return errs.Wrap(errs.InvalidInput, err).WithDetail("no AWS region selected")
		}
		creds.Region = region
	}
	return nil
}

func (d *Deployer) lookupIdentity(ctx context.Context) awsidentity.Identity {
	ctx, cancel := context.WithTimeout(ctx, d.Settings.Timeouts.Probe)
	defer cancel()

	id, err := d.Identity.Resolve(ctx)
	if err != nil {
		logger.Debug("AWS caller identity unavailable: %v", err)
	}
	return id
}

func (d *Deployer) infra(ctx context.Context, dir string, code errs.Code, msgArgs []any, args ...string) error {
	timeout := d.Settings.Timeouts.Infra
	opts := runner.Options{Timeout: timeout, Mode: runner.Stream, Dir: dir}
	if _, err := d.Runner.Run(ctx, opts, d.Settings.Infra, args...); err != nil {
		if errors.Is(err, runner.ErrTimeout) {
			return errs.Wrap(errs.Timeout, err, fmt.Sprintf("%s %s", d.Settings.Infra, args[0]), timeout)
		}
		return errs.Wrap(code, err, msgArgs...)
	}
	return nil
}

func (d *Deployer) advance(cfg *models.ProjectConfig, next models.Stage) error {
	if err := cfg.Advance(next); err != nil {
		return err
	}
	return d.Store.Save()
}
