package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envConfig is read from the environment; flags override it.
type envConfig struct {
	DBDriver string `env:"RATEPATH_DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"RATEPATH_DB_DSN"`
	DayCount string `env:"RATEPATH_DAY_COUNT" envDefault:"ACT/360"`
	Calendar string `env:"RATEPATH_CALENDAR" envDefault:"FOMC"`
}

func loadEnv(environ map[string]string) (envConfig, error) {
	var cfg envConfig
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return envConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
