package label

import "math"

const (
	profitWeight = 0.5
	riskWeight   = 0.3
	timeWeight   = 0.2

	// pipsPerUnitScore is the pip move that saturates the profit and risk
	// score components.
	pipsPerUnitScore = 10.0
)

// Quality reduces a simulated outcome to a single [0,1] score weighing
// realized profit, adverse excursion, and time to exit. A trade that never
// activated its trailing stop is treated as noise and scores 0.
func Quality(o Outcome) float64 {
	if !o.TrailingActivated {
		return 0
	}
	profitScore := clamp(o.ProfitPips/pipsPerUnitScore, 0, 1)
	riskScore := 1.0
	if o.MaxAdversePips > 0 {
		riskScore = clamp(1-o.MaxAdversePips/pipsPerUnitScore, 0, 1)
	}
	timeScore := clamp(1-float64(o.TimeToExit)/float64(MaxTimeLimitTicks), 0, 1)
	return profitWeight*profitScore + riskWeight*riskScore + timeWeight*timeScore
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
