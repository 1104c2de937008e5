package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"fxlabel-go/internal/dataset"
	"fxlabel-go/internal/label"
	"fxlabel-go/internal/market"
	"fxlabel-go/internal/runner"
	"fxlabel-go/internal/util"
)

// TestLabelFlow walks the full chain: synthetic ticks, the labeling sweep,
// and both sinks.
func TestLabelFlow(t *testing.T) {
	ticks := market.Synthetic(market.SyntheticConfig{
		RisePips:  1,
		RiseTicks: 8,
		FallPips:  1,
		FallTicks: 8,
	}, 400)

	labeler, err := label.NewLabeler(label.Config{
		TriggerPips:    1.5,
		DistancePips:   1,
		MaxFutureTicks: 60,
		MinConfidence:  0.05,
		MinScore:       0.05,
	}, decimal.RequireFromString("0.0001"))
	if err != nil {
		t.Fatalf("new labeler: %v", err)
	}

	rows, err := runner.New(labeler, 4, 1, util.NewLogger("disabled")).Run(context.Background(), ticks)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rows) != len(ticks) {
		t.Fatalf("expected %d rows, got %d", len(ticks), len(rows))
	}

	// The first tick sits at a cycle bottom: the long side rides the rising
	// leg into its take profit while the short side stops out.
	if rows[0].Result.Label != 1 {
		t.Fatalf("cycle bottom must label long, got %+v", rows[0].Result)
	}
	// The last tick has no forward window.
	if rows[len(rows)-1].Result != label.Neutral() {
		t.Fatalf("tail must be neutral, got %+v", rows[len(rows)-1].Result)
	}

	var long, short, neutral int
	for _, row := range rows {
		switch row.Result.Label {
		case 1:
			long++
		case -1:
			short++
		default:
			neutral++
		}
	}
	if long == 0 || short == 0 || neutral == 0 {
		t.Fatalf("zig-zag series must produce all three classes: long=%d short=%d neutral=%d", long, short, neutral)
	}

	mem := dataset.NewMemory(len(rows))
	path := filepath.Join(t.TempDir(), "labels.csv")
	csvSink, err := dataset.NewCSVWriter(path)
	if err != nil {
		t.Fatalf("new csv writer: %v", err)
	}
	for _, row := range rows {
		mem.Record(row)
		csvSink.Record(row)
	}
	if err := csvSink.Close(); err != nil {
		t.Fatalf("close csv: %v", err)
	}

	if got := len(mem.Snapshot()); got != len(rows) {
		t.Fatalf("memory sink holds %d rows, want %d", got, len(rows))
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != len(rows)+1 {
		t.Fatalf("csv has %d lines, want header plus %d rows", len(lines), len(rows))
	}
}
