package initiator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/globalconfig"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/models"
	"github.com/MrSnakeDoc/tango/internal/prompter"
	"github.com/MrSnakeDoc/tango/internal/scaffold"
	"github.com/MrSnakeDoc/tango/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.UseTestMode()
	os.Exit(m.Run())
}

type fixture struct {
	store *store.Store
	base  string
	out   *strings.Builder
}

func setup(t *testing.T) (fixture, func(input string) *Initiator) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	templates := t.TempDir()
	awsDir := filepath.Join(templates, "aws")
	require.NoError(t, os.MkdirAll(filepath.Join(awsDir, "python"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(awsDir, "Dockerfile"), []byte("FROM python:3.11\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(awsDir, "python", "main.py"), []byte("print('hi')\n"), 0o644))

	f := fixture{store: store.New(), base: t.TempDir(), out: &strings.Builder{}}
	return f, func(input string) *Initiator {
		p := prompter.New(strings.NewReader(input), f.out)
		return New(f.store, p, scaffold.New(templates, f.base))
	}
}

func TestExecute_PlaywrightOnAWS(t *testing.T) {
	f, newInit := setup(t)

	cfg, err := newInit("My Project\n2\n1\n").Execute()
	require.NoError(t, err)

	assert.Equal(t, "My Project", cfg.Name)
	assert.Equal(t, models.Playwright, cfg.Framework)
	assert.Equal(t, models.AWS, cfg.Provider)
	assert.Equal(t, models.Scaffolded, cfg.Stage)
	assert.Equal(t, filepath.Join(f.base, "My_Project"), cfg.ProjectDir)

	got, ok := f.store.Get()
	require.True(t, ok)
	assert.Same(t, cfg, got)

	b, err := os.ReadFile(filepath.Join(cfg.ProjectDir, "python", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(b))

	loaded, err := store.New().Load(cfg.ProjectDir)
	require.NoError(t, err)
	assert.Equal(t, cfg.Name, loaded.Name)
	assert.Equal(t, cfg.Provider, loaded.Provider)
	assert.Nil(t, loaded.AWS)

	g, err := globalconfig.LoadPersistentConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.ProjectDir, g.ActiveProject)
}

func TestExecute_WhitespaceNameReprompts(t *testing.T) {
	f, newInit := setup(t)

	cfg, err := newInit("   \n\t\n  Demo  \nSelenium\nAWS\n").Execute()
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Name)
	assert.Equal(t, models.Selenium, cfg.Framework)
	assert.Equal(t, 2, strings.Count(f.out.String(), "project name cannot be empty"))
}

func TestExecute_NameOutsideBaseReprompts(t *testing.T) {
	f, newInit := setup(t)

	cfg, err := newInit("../escaped\n..\n.\na/b\nDemo\n1\n1\n").Execute()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.base, "Demo"), cfg.ProjectDir)
	assert.Equal(t, 2, strings.Count(f.out.String(), "project name cannot contain path separators"))
	assert.Contains(t, f.out.String(), `project name cannot be ".."`)

	_, statErr := os.Stat(filepath.Join(f.base, "..", "escaped"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExecute_InvalidChoiceReprompts(t *testing.T) {
	_, newInit := setup(t)

	cfg, err := newInit("Demo\n7\nCypress\n3\n1\n").Execute()
	require.NoError(t, err)
	assert.Equal(t, models.Puppeteer, cfg.Framework)
}

func TestExecute_MissingTemplateKeepsConfiguredProject(t *testing.T) {
	f, newInit := setup(t)

	_, err := newInit("Demo\n1\n2\n").Execute()
	require.True(t, errs.HasCode(err, errs.TemplateMissing), "got %v", err)

	cfg, ok := f.store.Get()
	require.True(t, ok)
	assert.Equal(t, models.Configured, cfg.Stage)
	assert.False(t, cfg.Scaffolded())

	_, err = f.store.Require()
	assert.True(t, errs.HasCode(err, errs.ConfigMissing))
}

func TestExecute_DestinationExists(t *testing.T) {
	f, newInit := setup(t)
	require.NoError(t, os.Mkdir(filepath.Join(f.base, "Demo"), 0o755))

	_, err := newInit("Demo\n1\n1\n").Execute()
	assert.True(t, errors.Is(err, errs.ErrFilesystemConflict), "got %v", err)
}

func TestExecute_NoInput(t *testing.T) {
	f, newInit := setup(t)

	_, err := newInit("").Execute()
	assert.True(t, errors.Is(err, errs.ErrValidation), "got %v", err)
	_, ok := f.store.Get()
	assert.False(t, ok)
}

