// Package label converts forward tick windows into long/short/neutral
// training labels by simulating a trailing-stop managed trade in each
// direction and keeping the better side when it clears the configured
// confidence and quality thresholds.
package label

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"fxlabel-go/internal/market"
)

// Config controls one label-generation run. StopLossPips <= 0 means the hard
// stop distance is inferred per decision point from the entry spread and the
// trail distance.
type Config struct {
	StopLossPips   float64
	TriggerPips    float64
	DistancePips   float64
	MaxFutureTicks int
	MinConfidence  float64
	MinScore       float64
}

// Validate reports the first violated parameter constraint.
func (c Config) Validate() error {
	if c.TriggerPips <= 0 {
		return fmt.Errorf("trigger_pips must be > 0, got %v", c.TriggerPips)
	}
	if c.DistancePips <= 0 {
		return fmt.Errorf("distance_pips must be > 0, got %v", c.DistancePips)
	}
	if c.MaxFutureTicks <= 0 {
		return fmt.Errorf("max_future_ticks must be > 0, got %d", c.MaxFutureTicks)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be in [0,1], got %v", c.MinConfidence)
	}
	if c.MinScore < 0 || c.MinScore > 1 {
		return fmt.Errorf("min_score must be in [0,1], got %v", c.MinScore)
	}
	return nil
}

// EffectiveStopLossPips resolves the hard stop distance for a decision point.
// A configured positive value wins. Otherwise the stop derives from the trail
// distance and the entry spread, floored at DefaultMinStopLossPips, so it
// always clears both. Both simulated directions share the resolved value.
func (c Config) EffectiveStopLossPips(entry market.Tick, pip decimal.Decimal) float64 {
	if c.StopLossPips > 0 {
		return c.StopLossPips
	}
	spreadPips := entry.Spread().Div(pip).InexactFloat64()
	inferred := math.Max(c.DistancePips, spreadPips*DefaultSpreadMultiplier)
	return math.Max(DefaultMinStopLossPips, inferred)
}
