package config_test

import (
	"testing"

	"github.com/avelezX/xerenity-fe-sub001/ratepath/config"
)

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	if got := (config.Config{}).WithDefaults(); got != config.DefaultConfig {
		t.Fatalf("zero config = %+v, want %+v", got, config.DefaultConfig)
	}

	custom := config.Config{DaysPerMonth: 30.4375, DefaultDayBasis: 365}
	got := custom.WithDefaults()
	if got.DaysPerMonth != 30.4375 || got.DefaultDayBasis != 365 {
		t.Fatalf("custom fields overwritten: %+v", got)
	}
	if got.NodeTolerance != config.DefaultConfig.NodeTolerance || got.RateDecimals != config.DefaultConfig.RateDecimals {
		t.Fatalf("zero fields not defaulted: %+v", got)
	}
}
