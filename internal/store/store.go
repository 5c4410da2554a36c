package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/globalconfig"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/models"
	"github.com/MrSnakeDoc/tango/internal/utils"

	"gopkg.in/yaml.v3"
)

// Store holds the single active project configuration of one invocation.
// The CLI is synchronous end to end, so there is no locking.
type Store struct {
	current *models.ProjectConfig
}

func New() *Store {
	return &Store{}
}

// Get returns the active configuration, or false when init has not run.
func (s *Store) Get() (*models.ProjectConfig, bool) {
	if s.current == nil {
		return nil, false
	}
	return s.current, true
}

func (s *Store) Set(cfg *models.ProjectConfig) {
	s.current = cfg
}

// Require returns the active configuration only once it has a project directory.
func (s *Store) Require() (*models.ProjectConfig, error) {
	cfg, ok := s.Get()
	if !ok || !cfg.Scaffolded() {
		return nil, errs.New(errs.ConfigMissing)
	}
	return cfg, nil
}

// Path returns the location of the configuration file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, config.ConfigFile)
}

// Load reads dir/tango.yml, validates it and makes it the active configuration.
func (s *Store) Load(dir string) (*models.ProjectConfig, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, errs.Wrap(errs.ConfigMissing, err).WithDetail("no %s in %s", config.ConfigFile, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := validateDocument(data); err != nil {
		return nil, errs.Wrap(errs.InvalidConfig, err).WithDetail("%s", path)
	}

	var cfg models.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errs.Wrap(errs.InvalidConfig, err).WithDetail("%s", path)
	}
	cfg.ProjectDir = filepath.Clean(dir)
	if cfg.Stage < models.Scaffolded {
		cfg.Stage = models.Scaffolded
	}

	logger.Debug("Loaded project %q from %s", cfg.Name, path)
	s.Set(&cfg)
	return &cfg, nil
}

// Save writes the active configuration into its project directory.
func (s *Store) Save() error {
	cfg, err := s.Require()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal project config: %w", err)
	}

	path := Path(cfg.ProjectDir)
	if err := utils.WriteFileAtomic(path+".tmp", path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("Saved project config to %s", path)
	return nil
}

// Resolve finds the project for commands that run after init:
// the in-memory configuration, then explicitDir, then the working
// directory, then the project recorded by the last init.
func (s *Store) Resolve(explicitDir string) (*models.ProjectConfig, error) {
	if _, ok := s.Get(); ok {
		return s.Require()
	}
	if explicitDir != "" {
		return s.Load(explicitDir)
	}
	if ok, _ := utils.FileExists(Path(".")); ok {
		return s.Load(".")
	}

	g, err := globalconfig.LoadPersistentConfig()
	if err != nil {
		if errors.Is(err, globalconfig.ErrNoActiveProject) {
			return nil, errs.New(errs.ConfigMissing)
		}
		return nil, errs.Wrap(errs.ConfigMissing, err)
	}
	return s.Load(g.ActiveProject)
}
