package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Runtime holds settings read from BREATHE_* environment variables.
type Runtime struct {
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	Theme         string `env:"THEME" envDefault:"default"`
	Sound         bool   `env:"SOUND"`
	Player        string `env:"PLAYER"`
	KeepAwake     bool   `env:"KEEP_AWAKE" envDefault:"true"`
	ProbeAddr     string `env:"PROBE_ADDR" envDefault:"1.1.1.1:53"`
	ProbeDisabled bool   `env:"PROBE_DISABLED"`
}

// LoadRuntime parses the runtime configuration from the environment.
func LoadRuntime() (Runtime, error) {
	var cfg Runtime
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Runtime{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
