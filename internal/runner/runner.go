// Package runner sweeps an ordered tick series and labels every decision
// point in it.
package runner

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fxlabel-go/internal/label"
	"fxlabel-go/internal/market"
	"fxlabel-go/internal/metrics"
)

// Labeled pairs a decision point with its label.
type Labeled struct {
	Index  int          `json:"index"`
	Tick   market.Tick  `json:"tick"`
	Result label.Result `json:"result"`
}

// Runner owns the sweep parameters. Decision points depend only on their own
// forward window, so the sweep shards across workers; every worker writes to
// its own result slots, which keeps output deterministic and lock-free.
type Runner struct {
	labeler *label.Labeler
	workers int
	stride  int
	log     zerolog.Logger
}

// New builds a runner. Workers and stride default to 1 when non-positive.
func New(labeler *label.Labeler, workers, stride int, log zerolog.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if stride <= 0 {
		stride = 1
	}
	return &Runner{labeler: labeler, workers: workers, stride: stride, log: log}
}

// Run labels every decision point in ticks and returns the results in tick
// order. Each decision point at index i sees the forward window starting at
// i+1, capped at the configured maximum.
func (r *Runner) Run(ctx context.Context, ticks []market.Tick) ([]Labeled, error) {
	if len(ticks) == 0 {
		return nil, fmt.Errorf("no ticks to label")
	}
	runID := uuid.NewString()
	maxFuture := r.labeler.Config().MaxFutureTicks

	points := make([]int, 0, len(ticks)/r.stride+1)
	for i := 0; i < len(ticks); i += r.stride {
		points = append(points, i)
	}
	results := make([]Labeled, len(points))

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < r.workers; w++ {
		w := w
		g.Go(func() error {
			for p := w; p < len(points); p += r.workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				i := points[p]
				end := i + 1 + maxFuture
				if end > len(ticks) {
					end = len(ticks)
				}
				future := ticks[i+1 : end]
				if len(future) < label.MinWindowTicks {
					metrics.ShortWindows.Inc()
				}
				res := r.labeler.Label(ticks[i], future)
				metrics.LabelsTotal.WithLabelValues(className(res.Label)).Inc()
				results[p] = Labeled{Index: i, Tick: ticks[i], Result: res}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var long, short, neutral int
	for _, row := range results {
		switch row.Result.Label {
		case 1:
			long++
		case -1:
			short++
		default:
			neutral++
		}
	}
	r.log.Info().
		Str("run_id", runID).
		Int("points", len(points)).
		Int("long", long).
		Int("short", short).
		Int("neutral", neutral).
		Msg("label sweep done")
	return results, nil
}

func className(lbl int) string {
	switch {
	case lbl > 0:
		return "long"
	case lbl < 0:
		return "short"
	default:
		return "neutral"
	}
}
