package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaultSettings(t *testing.T) {
	v, err := SetupViper(nil)
	if err != nil {
		t.Fatalf("SetupViper: %v", err)
	}
	s := Load(v)
	if s != Default() {
		t.Fatalf("want defaults, got %+v", s)
	}
	if s.ImageTag != "myapp" || s.MountTarget != "/opt/ext" {
		t.Fatalf("unexpected image settings: %+v", s)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TANGO_ENGINE", "podman")
	t.Setenv("TANGO_TIMEOUTS_BUILD", "90s")

	v, err := SetupViper(nil)
	if err != nil {
		t.Fatalf("SetupViper: %v", err)
	}
	s := Load(v)
	if s.Engine != "podman" {
		t.Fatalf("want podman, got %q", s.Engine)
	}
	if s.Timeouts.Build != 90*time.Second {
		t.Fatalf("want 90s, got %s", s.Timeouts.Build)
	}
}

func TestFlagsWinOverEnv(t *testing.T) {
	t.Setenv("TANGO_TEMPLATES", "/env/templates")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("templates", "", "")
	if err := fs.Parse([]string{"--templates", "/flag/templates"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	v, err := SetupViper(fs)
	if err != nil {
		t.Fatalf("SetupViper: %v", err)
	}
	if got := Load(v).TemplatesDir; got != "/flag/templates" {
		t.Fatalf("want flag value, got %q", got)
	}
}
