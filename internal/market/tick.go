// Package market standardizes the tick data model shared between sources and
// the labeling core.
package market

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tick is a single top-of-book quote. Ticks are immutable once produced;
// Ask >= Bid is assumed upstream and not enforced here.
type Tick struct {
	Ts  time.Time       `json:"ts"`
	Bid decimal.Decimal `json:"bid"`
	Ask decimal.Decimal `json:"ask"`
}

// Spread returns Ask - Bid.
func (t Tick) Spread() decimal.Decimal {
	return t.Ask.Sub(t.Bid)
}

// Mid returns the quote midpoint.
func (t Tick) Mid() decimal.Decimal {
	return t.Ask.Add(t.Bid).Div(decimal.NewFromInt(2))
}
