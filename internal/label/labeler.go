package label

import (
	"github.com/shopspring/decimal"

	"fxlabel-go/internal/market"
)

// Labeler runs the full per-decision-point chain: window slicing and guard,
// stop-loss inference, one simulation per direction, decision. It holds no
// state across calls, so a single instance may be shared by concurrent
// workers without locking.
type Labeler struct {
	cfg Config
	sim *Simulator
}

// NewLabeler validates cfg and builds a labeler for the given pip size.
func NewLabeler(cfg Config, pip decimal.Decimal) (*Labeler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Labeler{cfg: cfg, sim: NewSimulator(pip)}, nil
}

// Config returns the labeler's run parameters.
func (l *Labeler) Config() Config { return l.cfg }

// Label produces the label for one decision point. The window is truncated to
// cfg.MaxFutureTicks first; windows shorter than MinWindowTicks return
// Neutral without invoking the simulator.
func (l *Labeler) Label(entry market.Tick, future []market.Tick) Result {
	if len(future) > l.cfg.MaxFutureTicks {
		future = future[:l.cfg.MaxFutureTicks]
	}
	if len(future) < MinWindowTicks {
		return Neutral()
	}
	stopLoss := l.cfg.EffectiveStopLossPips(entry, l.sim.pip)
	longOut := l.sim.Simulate(entry, future, l.cfg.TriggerPips, l.cfg.DistancePips, stopLoss, true)
	shortOut := l.sim.Simulate(entry, future, l.cfg.TriggerPips, l.cfg.DistancePips, stopLoss, false)
	return Decide(longOut, shortOut, l.cfg)
}
