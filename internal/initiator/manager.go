package initiator

import (
	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/globalconfig"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/models"
	"github.com/MrSnakeDoc/tango/internal/prompter"
	"github.com/MrSnakeDoc/tango/internal/scaffold"
	"github.com/MrSnakeDoc/tango/internal/store"

	"github.com/samber/lo"
)

type Initiator struct {
	Store      *store.Store
	Prompter   prompter.Prompter
	Scaffolder *scaffold.Scaffolder
}

func New(s *store.Store, p prompter.Prompter, sc *scaffold.Scaffolder) *Initiator {
	if p == nil {
		p = prompter.Default()
	}
	return &Initiator{
		Store:      s,
		Prompter:   p,
		Scaffolder: sc,
	}
}

// Execute asks for the project settings, scaffolds the project directory
// and records it as the active project.
func (i *Initiator) Execute() (*models.ProjectConfig, error) {
	cfg, err := i.ask()
	if err != nil {
		return nil, err
	}
	i.Store.Set(cfg)

	dest, err := i.Scaffolder.Scaffold(cfg)
	if err != nil {
		return nil, err
	}
	cfg.ProjectDir = dest
	if err := cfg.Advance(models.Scaffolded); err != nil {
		return nil, err
	}

	if err := i.Store.Save(); err != nil {
		return nil, err
	}
	if err := globalconfig.Save(dest); err != nil {
		logger.Warn("Could not record %s as the active project: %v", dest, err)
	}

	logger.Success("Project %s created in %s", cfg.Name, dest)
	return cfg, nil
}

func (i *Initiator) ask() (*models.ProjectConfig, error) {
	name, err := i.Prompter.Input("Enter the project name", "", models.ValidateName)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err).WithDetail("no project name given")
	}

	framework, err := i.Prompter.Select("Select the automation framework",
		lo.Map(models.Frameworks, func(f models.Framework, _ int) string { return string(f) }), "")
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err).WithDetail("no automation framework selected")
	}

	provider, err := i.Prompter.Select("Select the cloud provider",
		lo.Map(models.Providers, func(p models.Provider, _ int) string { return string(p) }), "")
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err).WithDetail("no cloud provider selected")
	}

	cfg, err := models.NewProjectConfig(name, framework, provider)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err)
	}
	return cfg, nil
}
