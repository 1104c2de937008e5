package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// SyntheticConfig shapes the deterministic zig-zag generator. Zero fields
// fall back to a 4-decimal EURUSD-like series with a 1-pip spread.
type SyntheticConfig struct {
	StartBid   decimal.Decimal
	PipSize    decimal.Decimal
	SpreadPips float64
	RisePips   float64 // bid move per tick on the rising leg
	RiseTicks  int
	FallPips   float64 // bid move per tick on the falling leg
	FallTicks  int
	StartTime  time.Time
	Interval   time.Duration
}

// Synthetic emits n deterministic ticks following a rise/fall cycle, a stand-in
// for a live feed in tests and offline runs. Identical configs always produce
// identical series.
func Synthetic(cfg SyntheticConfig, n int) []Tick {
	if cfg.StartBid.Sign() <= 0 {
		cfg.StartBid = decimal.RequireFromString("1.10000")
	}
	if cfg.PipSize.Sign() <= 0 {
		cfg.PipSize = decimal.RequireFromString("0.0001")
	}
	if cfg.SpreadPips <= 0 {
		cfg.SpreadPips = 1
	}
	if cfg.RisePips <= 0 {
		cfg.RisePips = 0.5
	}
	if cfg.RiseTicks <= 0 {
		cfg.RiseTicks = 10
	}
	if cfg.FallPips <= 0 {
		cfg.FallPips = 1
	}
	if cfg.FallTicks <= 0 {
		cfg.FallTicks = 5
	}
	if cfg.StartTime.IsZero() {
		cfg.StartTime = time.Unix(1700000000, 0).UTC()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}

	spread := decimal.NewFromFloat(cfg.SpreadPips).Mul(cfg.PipSize)
	riseStep := decimal.NewFromFloat(cfg.RisePips).Mul(cfg.PipSize)
	fallStep := decimal.NewFromFloat(cfg.FallPips).Mul(cfg.PipSize)

	ticks := make([]Tick, 0, n)
	bid := cfg.StartBid
	cycle := 0
	for i := 0; i < n; i++ {
		ticks = append(ticks, Tick{
			Ts:  cfg.StartTime.Add(time.Duration(i) * cfg.Interval),
			Bid: bid,
			Ask: bid.Add(spread),
		})
		if cycle < cfg.RiseTicks {
			bid = bid.Add(riseStep)
		} else {
			bid = bid.Sub(fallStep)
		}
		cycle++
		if cycle >= cfg.RiseTicks+cfg.FallTicks {
			cycle = 0
		}
	}
	return ticks
}
