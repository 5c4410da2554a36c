package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "TANGO"
	ConfigFile = "tango.yml"
)

type Timeouts struct {
	Probe time.Duration
	Build time.Duration
	Run   time.Duration
	Infra time.Duration
}

type Settings struct {
	TemplatesDir string
	ProjectDir   string
	Engine       string
	Infra        string
	ImageTag     string
	MountTarget  string
	Timeouts     Timeouts
}

func Default() Settings {
	return Settings{
		TemplatesDir: "",
		Engine:       "docker",
		Infra:        "cdk",
		ImageTag:     "myapp",
		MountTarget:  "/opt/ext",
		Timeouts: Timeouts{
			Probe: 30 * time.Second,
			Build: 30 * time.Minute,
			Run:   60 * time.Minute,
			Infra: 60 * time.Minute,
		},
	}
}

// SetupViper layers flags over TANGO_* environment variables over defaults.
func SetupViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("templates", d.TemplatesDir)
	v.SetDefault("project", d.ProjectDir)
	v.SetDefault("engine", d.Engine)
	v.SetDefault("infra", d.Infra)
	v.SetDefault("image_tag", d.ImageTag)
	v.SetDefault("mount_target", d.MountTarget)
	v.SetDefault("timeouts.probe", d.Timeouts.Probe)
	v.SetDefault("timeouts.build", d.Timeouts.Build)
	v.SetDefault("timeouts.run", d.Timeouts.Run)
	v.SetDefault("timeouts.infra", d.Timeouts.Infra)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}
	}
	return v, nil
}

func Load(v *viper.Viper) Settings {
	return Settings{
		TemplatesDir: v.GetString("templates"),
		ProjectDir:   v.GetString("project"),
		Engine:       v.GetString("engine"),
		Infra:        v.GetString("infra"),
		ImageTag:     v.GetString("image_tag"),
		MountTarget:  v.GetString("mount_target"),
		Timeouts: Timeouts{
			Probe: v.GetDuration("timeouts.probe"),
			Build: v.GetDuration("timeouts.build"),
			Run:   v.GetDuration("timeouts.run"),
			Infra: v.GetDuration("timeouts.infra"),
		},
	}
}
