package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

type Mode int

const (
	Capture Mode = iota
	Stream
)

// ErrTimeout is returned when a command outlives its Options.Timeout.
var ErrTimeout = errors.New("command timed out")

type Options struct {
	Timeout time.Duration
	Mode    Mode
	Dir     string
}

type CommandRunner interface {
	Run(ctx context.Context, opts Options, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

type ExecRunner struct{}

func (ExecRunner) Run(
	parent context.Context,
	opts Options,
	name string,
	args ...string,
) ([]byte, error) {
	ctx, cancel := parent, context.CancelFunc(func() {})
	if opts.Timeout > 0 {
		ctx, cancel = context.WithTimeout(parent, opts.Timeout)
	}
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	var (
		out []byte
		err error
	)
	switch opts.Mode {
	case Stream:
		cmd.Stdout, cmd.Stderr, cmd.Stdin = os.Stdout, os.Stderr, os.Stdin
		err = cmd.Run()
	default:
		out, err = cmd.CombinedOutput()
	}

	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("%s after %s: %w", name, opts.Timeout, ErrTimeout)
	}
	return out, err
}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
