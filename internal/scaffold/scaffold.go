package scaffold

import (
	"embed"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/models"
	"github.com/MrSnakeDoc/tango/internal/utils"

	cp "github.com/otiai10/copy"
)

//go:embed all:templates
var bundled embed.FS

const bundledRoot = "templates"

// Scaffolder materializes a project directory from a provider template tree.
// An empty TemplatesDir selects the templates compiled into the binary.
type Scaffolder struct {
	TemplatesDir string
	BaseDir      string
}

func New(templatesDir, baseDir string) *Scaffolder {
	if baseDir == "" {
		baseDir = "."
	}
	return &Scaffolder{
		TemplatesDir: templatesDir,
		BaseDir:      baseDir,
	}
}

func (s *Scaffolder) Bundled() bool {
	return s.TemplatesDir == ""
}

func (s *Scaffolder) TemplateFor(p models.Provider) (string, error) {
	var dir string
	switch p {
	case models.AWS:
		dir = "aws"
	case models.Azure:
		dir = "azure"
	default:
		return "", errs.New(errs.ProviderUnsupported, string(p))
	}
	if s.Bundled() {
		return path.Join(bundledRoot, dir), nil
	}
	return filepath.Join(s.TemplatesDir, dir), nil
}

func (s *Scaffolder) templateExists(src string) (bool, error) {
	if !s.Bundled() {
		return utils.DirExists(src)
	}
	info, err := fs.Stat(bundled, src)
	if err != nil {
		return false, nil
	}
	return info.IsDir(), nil
}

// DirName derives the project directory name: every whitespace rune becomes "_".
func DirName(name string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
}

// Scaffold copies the provider template into a fresh directory and returns its path.
// An existing destination is never touched. A failed copy leaves whatever was
// written in place and reports it.
func (s *Scaffolder) Scaffold(cfg *models.ProjectConfig) (string, error) {
	src, err := s.TemplateFor(cfg.Provider)
	if err != nil {
		return "", err
	}

	ok, err := s.templateExists(src)
	if err != nil {
		return "", errs.Wrap(errs.TemplateMissing, err, src)
	}
	if !ok {
		e := errs.New(errs.TemplateMissing, src)
		if s.Bundled() {
			e = e.WithDetail("no %s template is bundled, pass --templates", cfg.Provider)
		}
		return "", e
	}

	dest := filepath.Join(s.BaseDir, DirName(cfg.Name))
	if filepath.Dir(dest) != filepath.Clean(s.BaseDir) {
		return "", errs.New(errs.InvalidInput).WithDetail("project %q would be created outside %s", cfg.Name, s.BaseDir)
	}
	occupied, err := utils.PathOccupied(dest)
	if err != nil {
		return "", err
	}
	if occupied {
		return "", errs.New(errs.DestinationExists, dest)
	}

	logger.Debug("Copying %s into %s", src, dest)
	opts := cp.Options{
		OnSymlink:         func(string) cp.SymlinkAction { return cp.Deep },
		PermissionControl: cp.AddPermission(0o200),
	}
	if s.Bundled() {
		opts.FS = bundled
	}
	if err := cp.Copy(src, dest, opts); err != nil {
		return "", errs.Wrap(errs.CopyFailed, err, dest)
	}

	return dest, nil
}
