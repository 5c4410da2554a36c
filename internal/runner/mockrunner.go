package runner

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

type MockRunner struct {
	Commands     []MockCommand
	Responses    map[string]MockResponse
	ResponseFunc func(name string, args ...string) ([]byte, error)
	Missing      map[string]bool
}

type MockCommand struct {
	Name    string
	Args    []string
	Dir     string
	Timeout time.Duration
	Mode    Mode
}

type MockResponse struct {
	Output []byte
	Error  error
}

func NewMockRunner() *MockRunner {
	return &MockRunner{
		Commands:  []MockCommand{},
		Responses: make(map[string]MockResponse),
		Missing:   make(map[string]bool),
	}
}

func (m *MockRunner) Run(
	_ context.Context,
	opts Options,
	name string,
	args ...string,
) ([]byte, error) {
	m.Commands = append(m.Commands, MockCommand{
		Name:    name,
		Args:    args,
		Dir:     opts.Dir,
		Timeout: opts.Timeout,
		Mode:    opts.Mode,
	})

	key := cmdKey(name, args...)
	if resp, ok := m.Responses[key]; ok {
		return resp.Output, resp.Error
	}
	if m.ResponseFunc != nil {
		return m.ResponseFunc(name, args...)
	}
	if opts.Mode == Stream {
		return nil, nil
	}
	return []byte{}, nil
}

func (m *MockRunner) LookPath(name string) (string, error) {
	if m.Missing[name] {
		return "", fmt.Errorf("exec: %q: %w", name, exec.ErrNotFound)
	}
	return "/usr/bin/" + name, nil
}

func (m *MockRunner) AddResponse(key string, output []byte, err error) {
	m.Responses[key] = MockResponse{
		Output: output,
		Error:  err,
	}
}

// Fail makes the command identified by name and args return err.
func (m *MockRunner) Fail(err error, name string, args ...string) {
	m.AddResponse(cmdKey(name, args...), nil, err)
}

func cmdKey(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), "|")
}

func (m *MockRunner) VerifyCommand(name string, args ...string) bool {
	for _, cmd := range m.Commands {
		if cmd.Name == name && argsEqual(cmd.Args, args) {
			return true
		}
	}
	return false
}

func (m *MockRunner) VerifyRunCount(name string, count int) bool {
	runCount := 0
	for _, cmd := range m.Commands {
		if cmd.Name == name {
			runCount++
		}
	}
	return runCount == count
}

func argsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
