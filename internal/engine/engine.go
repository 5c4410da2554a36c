package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MrSnakeDoc/tango/internal/config"
	"github.com/MrSnakeDoc/tango/internal/errs"
	"github.com/MrSnakeDoc/tango/internal/logger"
	"github.com/MrSnakeDoc/tango/internal/progress"
	"github.com/MrSnakeDoc/tango/internal/runner"
)

// Engine drives the container engine CLI for local builds.
type Engine struct {
	Runner    runner.CommandRunner
	Settings  config.Settings
	Inspector ImageInspector
}

func New(settings config.Settings, r runner.CommandRunner) *Engine {
	if r == nil {
		r = &runner.ExecRunner{}
	}
	return &Engine{
		Runner:   r,
		Settings: settings,
	}
}

// CheckPrerequisites verifies the engine binary is installed and its daemon answers.
func (e *Engine) CheckPrerequisites(ctx context.Context) error {
	bin := e.Settings.Engine
	if _, err := e.Runner.LookPath(bin); err != nil {
		return errs.Wrap(errs.EngineUnavailable, err).WithDetail("%s not found on PATH", bin)
	}

	if err := e.probe(ctx, "--version"); err != nil {
		return err
	}

	stop := progress.Start("Checking Docker daemon...")
	err := e.probe(ctx, "info")
	stop()
	return err
}

func (e *Engine) probe(ctx context.Context, args ...string) error {
	timeout := e.Settings.Timeouts.Probe
	out, err := e.Runner.Run(ctx, runner.Options{Timeout: timeout, Mode: runner.Capture}, e.Settings.Engine, args...)
	if err == nil {
		return nil
	}
	if errors.Is(err, runner.ErrTimeout) {
		return errs.Wrap(errs.Timeout, err, e.describe(args), timeout)
	}

	detail := fmt.Sprintf("'%s' failed", e.describe(args))
	if line := lastLine(out); line != "" {
		detail += ": " + line
	}
	return errs.Wrap(errs.EngineUnavailable, err).WithDetail("%s", detail)
}

// Build builds the project image from projectDir. A failure is final.
func (e *Engine) Build(ctx context.Context, projectDir string) error {
	logger.Info("Building Docker image %s...", e.Settings.ImageTag)
	return e.stream(ctx, errs.BuildFailed, e.Settings.Timeouts.Build, projectDir,
		"build", "-t", e.Settings.ImageTag, ".")
}

// Run starts the image with <projectDir>/python mounted at the configured target.
func (e *Engine) Run(ctx context.Context, projectDir string) error {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", projectDir, err)
	}
	mount := fmt.Sprintf("%s:%s", filepath.Join(abs, "python"), e.Settings.MountTarget)

	logger.Info("Running container %s...", e.Settings.ImageTag)
	return e.stream(ctx, errs.RunFailed, e.Settings.Timeouts.Run, projectDir,
		"run", "-i", "-v", mount, "-t", e.Settings.ImageTag)
}

func (e *Engine) stream(ctx context.Context, code errs.Code, timeout time.Duration, dir string, args ...string) error {
	opts := runner.Options{Timeout: timeout, Mode: runner.Stream, Dir: dir}
	if _, err := e.Runner.Run(ctx, opts, e.Settings.Engine, args...); err != nil {
		if errors.Is(err, runner.ErrTimeout) {
			return errs.Wrap(errs.Timeout, err, e.describe(args[:1]), timeout)
		}
		return errs.Wrap(code, err)
	}
	return nil
}

func (e *Engine) describe(args []string) string {
	return strings.Join(append([]string{e.Settings.Engine}, args...), " ")
}

func lastLine(out []byte) string {
	lines := strings.Split(string(bytes.TrimSpace(out)), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
