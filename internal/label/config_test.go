package label

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validConfig() Config {
	return Config{
		TriggerPips:    3.5,
		DistancePips:   2.5,
		MaxFutureTicks: 120,
		MinConfidence:  0.3,
		MinScore:       0.35,
	}
}

func TestConfigValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero trigger", func(c *Config) { c.TriggerPips = 0 }, "trigger_pips"},
		{"negative distance", func(c *Config) { c.DistancePips = -1 }, "distance_pips"},
		{"zero window", func(c *Config) { c.MaxFutureTicks = 0 }, "max_future_ticks"},
		{"confidence above one", func(c *Config) { c.MinConfidence = 1.5 }, "min_confidence"},
		{"negative score", func(c *Config) { c.MinScore = -0.1 }, "min_score"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error naming %s, got %v", tc.want, err)
			}
		})
	}
}

func TestEffectiveStopLossExplicitWins(t *testing.T) {
	cfg := validConfig()
	cfg.StopLossPips = 42
	if got := cfg.EffectiveStopLossPips(tickAtPips(0, 0), testPip); got != 42 {
		t.Fatalf("explicit stop must win, got %v", got)
	}
}

func TestEffectiveStopLossFloor(t *testing.T) {
	// 1-pip spread: max(5, max(2.5, 3)) = 5.
	cfg := validConfig()
	if got := cfg.EffectiveStopLossPips(tickAtPips(0, 0), testPip); got != DefaultMinStopLossPips {
		t.Fatalf("expected the %v-pip floor, got %v", DefaultMinStopLossPips, got)
	}
}

func TestEffectiveStopLossWideSpread(t *testing.T) {
	cfg := validConfig()
	entry := tickAtPips(0, 0)
	entry.Ask = entry.Bid.Add(testPip.Mul(decimal.NewFromInt(12)))
	// 12-pip spread: max(5, max(2.5, 36)) = 36.
	if got := cfg.EffectiveStopLossPips(entry, testPip); !closeTo(got, 36) {
		t.Fatalf("expected spread-driven stop of 36, got %v", got)
	}
}

func TestEffectiveStopLossDistanceDriven(t *testing.T) {
	cfg := validConfig()
	cfg.DistancePips = 8
	if got := cfg.EffectiveStopLossPips(tickAtPips(0, 0), testPip); !closeTo(got, 8) {
		t.Fatalf("expected distance-driven stop of 8, got %v", got)
	}
}
