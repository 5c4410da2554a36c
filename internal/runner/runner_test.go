package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestExecRunner_CaptureInDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "marker"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	out, err := ExecRunner{}.Run(context.Background(), Options{Timeout: 5 * time.Second, Dir: dir}, "ls")
	if err != nil {
		t.Fatalf("ls: %v", err)
	}
	if !strings.Contains(string(out), "marker") {
		t.Fatalf("expected marker in output, got %q", out)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), Options{Timeout: 5 * time.Second}, "sh", "-c", "exit 3")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrTimeout) {
		t.Fatalf("non-zero exit must not be reported as timeout: %v", err)
	}
}

func TestExecRunner_Timeout(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), Options{Timeout: 50 * time.Millisecond}, "sleep", "5")
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
}

func TestMockRunner_Responses(t *testing.T) {
	m := NewMockRunner()
	boom := errors.New("boom")
	m.Fail(boom, "docker", "info")
	m.Missing["cdk"] = true

	if _, err := m.Run(context.Background(), Options{}, "docker", "--version"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := m.Run(context.Background(), Options{Dir: "p"}, "docker", "info"); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if _, err := m.LookPath("cdk"); err == nil {
		t.Fatal("expected cdk to be missing")
	}
	if !m.VerifyCommand("docker", "info") || !m.VerifyRunCount("docker", 2) {
		t.Fatalf("unexpected commands: %+v", m.Commands)
	}
	if m.Commands[1].Dir != "p" {
		t.Fatalf("dir not recorded: %+v", m.Commands[1])
	}
}
