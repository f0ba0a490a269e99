package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the runtime configuration read from the environment.
type Env struct {
	// Seed fixes world generation. Zero means pick a fresh seed.
	Seed uint64 `env:"WILDREALM_SEED"`
	// MapGenFile is an optional YAML file overriding the MapGen defaults.
	MapGenFile  string `env:"WILDREALM_MAPGEN_FILE"`
	SightRadius int    `env:"WILDREALM_SIGHT_RADIUS" envDefault:"8"`
	LocaleDir   string `env:"WILDREALM_LOCALE_DIR"`
	Locale      string `env:"WILDREALM_LOCALE" envDefault:"en_US"`
	Telemetry   bool   `env:"WILDREALM_TELEMETRY" envDefault:"true"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SightRadius < 1 {
		return Env{}, fmt.Errorf("parse env: WILDREALM_SIGHT_RADIUS must be positive, got %d", cfg.SightRadius)
	}
	return cfg, nil
}
