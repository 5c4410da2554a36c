package globalconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadPersistentConfig()
	require.ErrorIs(t, err, ErrNoActiveProject)
}

func TestSaveAndLoad_HomeRelative(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := filepath.Join(home, "work", "My_Project")
	require.NoError(t, Save(project))

	raw, err := os.ReadFile(filepath.Join(home, ".config", "tango", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "active_project: ~/work/My_Project")

	cfg, err := LoadPersistentConfig()
	require.NoError(t, err)
	assert.Equal(t, project, cfg.ActiveProject)
}
