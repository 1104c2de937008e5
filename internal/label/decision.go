package label

import "math"

// safeDivEpsilon guards divisions: denominators at or below this magnitude
// yield the documented default instead of NaN or Inf.
const safeDivEpsilon = 1e-10

// riskRewardCap stands in for the ratio when a winner never drew down.
const riskRewardCap = 10.0

// Result is the final label for one decision point.
type Result struct {
	Label            int     `json:"label"`
	Confidence       float64 `json:"confidence"`
	LongProfitPips   float64 `json:"long_profit_pips"`
	ShortProfitPips  float64 `json:"short_profit_pips"`
	MaxAdversePips   float64 `json:"max_adverse_pips"`
	MaxFavorablePips float64 `json:"max_favorable_pips"`
	TimeToTarget     int     `json:"time_to_target"`
	RiskReward       float64 `json:"risk_reward"`
	Quality          float64 `json:"quality"`
}

// Neutral is the label returned without simulation when the forward window is
// too short. It is indistinguishable from a simulated no-winner result by
// design: short windows near the end of a dataset must not abort a batch run.
func Neutral() Result { return Result{} }

// Decide combines the two directional outcomes into one label. The higher
// quality side wins only when the quality gap clears cfg.MinConfidence and
// its own quality clears cfg.MinScore; otherwise the label stays neutral.
// Excursions, time to target, and risk/reward are reported for the winning
// side only and remain zero on a neutral label.
func Decide(longOut, shortOut Outcome, cfg Config) Result {
	longQ := Quality(longOut)
	shortQ := Quality(shortOut)

	res := Result{
		Confidence:      math.Min(1, math.Abs(longQ-shortQ)),
		LongProfitPips:  longOut.ProfitPips,
		ShortProfitPips: shortOut.ProfitPips,
		Quality:         math.Max(longQ, shortQ),
	}

	winner, winnerQ, lbl := longOut, longQ, 1
	if shortQ > longQ {
		winner, winnerQ, lbl = shortOut, shortQ, -1
	}
	if res.Confidence < cfg.MinConfidence || winnerQ < cfg.MinScore {
		return res
	}

	res.Label = lbl
	res.TimeToTarget = winner.TimeToExit
	res.MaxAdversePips = winner.MaxAdversePips
	res.MaxFavorablePips = winner.MaxFavorablePips
	res.RiskReward = riskReward(winner)
	return res
}

func riskReward(o Outcome) float64 {
	if o.MaxAdversePips > safeDivEpsilon {
		return o.ProfitPips / o.MaxAdversePips
	}
	if o.ProfitPips > 0 {
		return riskRewardCap
	}
	return 0
}
