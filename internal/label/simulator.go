package label

import (
	"github.com/shopspring/decimal"

	"fxlabel-go/internal/market"
)

// ExitReason identifies which rule closed a simulated trade.
type ExitReason string

const (
	ExitStopLoss     ExitReason = "STOP_LOSS"
	ExitTakeProfit   ExitReason = "TAKE_PROFIT"
	ExitTrailingStop ExitReason = "TRAILING_STOP"
	ExitTimeLimit    ExitReason = "TIME_LIMIT"
)

const (
	// TakeProfitMultiplier fixes the take-profit distance at a multiple of the
	// activation distance; it is deliberately not configurable on its own.
	TakeProfitMultiplier = 3.0
	// MaxTimeLimitTicks caps how many future ticks a simulation may consume,
	// regardless of the configured window size.
	MaxTimeLimitTicks = 600
	// DefaultMinStopLossPips floors the inferred hard stop.
	DefaultMinStopLossPips = 5.0
	// DefaultSpreadMultiplier scales the entry spread when inferring the stop.
	DefaultSpreadMultiplier = 3.0
	// MinWindowTicks is the smallest forward window worth simulating; shorter
	// windows label neutral without invoking the simulator.
	MinWindowTicks = 10
)

// DefaultPipSize is the 4-decimal non-JPY quote convention.
var DefaultPipSize = decimal.RequireFromString("0.0001")

// Outcome summarizes one simulated directional trade. Excursions are running
// maxima over the whole path, reported non-negative.
type Outcome struct {
	ProfitPips        float64
	MaxFavorablePips  float64
	MaxAdversePips    float64
	TimeToExit        int
	ExitReason        ExitReason
	TrailingActivated bool
}

// Simulator replays hypothetical trailing-stop trades over bounded tick
// windows. Pip size is an instrument parameter, not a constant. All price
// arithmetic runs on decimals so that boundary touches compare exactly and
// identical inputs always produce identical outcomes.
type Simulator struct {
	pip decimal.Decimal
}

// NewSimulator returns a simulator for the given pip size, defaulting to the
// 0.0001 non-JPY convention when pip is zero or negative.
func NewSimulator(pip decimal.Decimal) *Simulator {
	if pip.Sign() <= 0 {
		pip = DefaultPipSize
	}
	return &Simulator{pip: pip}
}

// Pip returns the simulator's pip size.
func (s *Simulator) Pip() decimal.Decimal { return s.pip }

// Simulate runs one directional trade forward over the window and reports how
// it ended. Entry fills at the ask for longs and the bid for shorts; exits
// mark against the opposite side, so the spread is paid on both legs.
// stopLossPips <= 0 disables the hard stop. Exit rules are checked in strict
// priority order per tick: stop loss, take profit, trailing stop, time limit.
func (s *Simulator) Simulate(entry market.Tick, future []market.Tick, triggerPips, distancePips, stopLossPips float64, long bool) Outcome {
	if len(future) == 0 {
		return Outcome{ExitReason: ExitTimeLimit}
	}

	entryPrice := entry.Ask
	if !long {
		entryPrice = entry.Bid
	}

	activation := decimal.NewFromFloat(triggerPips).Mul(s.pip)
	trail := decimal.NewFromFloat(distancePips).Mul(s.pip)
	takeProfit := activation.Mul(decimal.NewFromFloat(TakeProfitMultiplier))

	stopEnabled := stopLossPips > 0
	var stopPrice decimal.Decimal
	if stopEnabled {
		dist := decimal.NewFromFloat(stopLossPips).Mul(s.pip)
		if long {
			stopPrice = entryPrice.Sub(dist)
		} else {
			stopPrice = entryPrice.Add(dist)
		}
	}

	var (
		mfe       decimal.Decimal
		mae       decimal.Decimal
		activated bool
		level     decimal.Decimal
	)

	exit := func(price decimal.Decimal, idx int, reason ExitReason) Outcome {
		profit := price.Sub(entryPrice)
		if !long {
			profit = entryPrice.Sub(price)
		}
		return Outcome{
			ProfitPips:        profit.Div(s.pip).InexactFloat64(),
			MaxFavorablePips:  mfe.Div(s.pip).InexactFloat64(),
			MaxAdversePips:    mae.Div(s.pip).InexactFloat64(),
			TimeToExit:        idx,
			ExitReason:        reason,
			TrailingActivated: activated,
		}
	}

	for i, tk := range future {
		mark := tk.Bid
		if !long {
			mark = tk.Ask
		}
		move := mark.Sub(entryPrice)
		if !long {
			move = entryPrice.Sub(mark)
		}

		// Excursions update before any exit rule fires.
		if move.Sign() >= 0 {
			if move.GreaterThan(mfe) {
				mfe = move
			}
		} else if adverse := move.Neg(); adverse.GreaterThan(mae) {
			mae = adverse
		}

		if stopEnabled {
			hit := mark.LessThanOrEqual(stopPrice)
			if !long {
				hit = mark.GreaterThanOrEqual(stopPrice)
			}
			if hit {
				// Assume the fill happens at the stop, not the mark.
				return exit(stopPrice, i, ExitStopLoss)
			}
		}

		if move.GreaterThanOrEqual(takeProfit) {
			return exit(mark, i, ExitTakeProfit)
		}

		if !activated {
			if move.GreaterThanOrEqual(activation) {
				activated = true
				if long {
					level = mark.Sub(trail)
				} else {
					level = mark.Add(trail)
				}
			}
		} else if long {
			if next := mark.Sub(trail); next.GreaterThan(level) {
				level = next
			}
			if mark.LessThanOrEqual(level) {
				return exit(level, i, ExitTrailingStop)
			}
		} else {
			if next := mark.Add(trail); next.LessThan(level) {
				level = next
			}
			if mark.GreaterThanOrEqual(level) {
				return exit(level, i, ExitTrailingStop)
			}
		}

		if i >= MaxTimeLimitTicks {
			return exit(mark, i, ExitTimeLimit)
		}
	}

	last := future[len(future)-1]
	mark := last.Bid
	if !long {
		mark = last.Ask
	}
	return exit(mark, len(future)-1, ExitTimeLimit)
}
