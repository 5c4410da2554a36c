package globalconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MrSnakeDoc/tango/internal/utils/pathutils"

	"gopkg.in/yaml.v3"
)

// PersistentConfig survives across invocations so build and deploy can find
// the project scaffolded by an earlier init.
type PersistentConfig struct {
	ActiveProject string `yaml:"active_project"`
}

const (
	configDir  = ".config/tango"
	configFile = "config.yml"
)

// ErrNoActiveProject is returned when no project has been recorded yet.
var ErrNoActiveProject = errors.New("no active project recorded")

func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

func LoadPersistentConfig() (*PersistentConfig, error) {
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}
	configPath := filepath.Join(fullConfigDir, configFile)

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoActiveProject
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg PersistentConfig
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}
	if cfg.ActiveProject == "" {
		return nil, ErrNoActiveProject
	}

	absPath, err := pathutils.ToAbsolutePath(cfg.ActiveProject)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}
	cfg.ActiveProject = absPath
	return &cfg, nil
}

// Save records dir (made absolute) as the active project.
func Save(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	homePath, err := pathutils.ToHomePathFormat(abs)
	if err != nil {
		return fmt.Errorf("failed to convert to home path format: %w", err)
	}

	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(fullConfigDir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&PersistentConfig{ActiveProject: homePath})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(fullConfigDir, configFile), data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
