// Package dataset persists labeled decision points for downstream training.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"fxlabel-go/internal/runner"
)

// Sink receives labeled decision points for persistence or inspection.
type Sink interface {
	Record(runner.Labeled)
}

// CSVWriter appends one row per decision point in the
// timestamp,label,confidence,long_profit_pips,short_profit_pips,quality shape
// the downstream feature/label merger consumes.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
	w    *csv.Writer
}

var csvHeader = []string{"timestamp", "label", "confidence", "long_profit_pips", "short_profit_pips", "quality"}

// NewCSVWriter creates the target file (and its directory) and writes the
// header row.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}
	return &CSVWriter{file: file, w: w}, nil
}

// Record writes a single labeled decision point.
func (c *CSVWriter) Record(row runner.Labeled) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.w.Write([]string{
		row.Tick.Ts.UTC().Format(time.RFC3339Nano),
		strconv.Itoa(row.Result.Label),
		formatFixed(row.Result.Confidence),
		formatFixed(row.Result.LongProfitPips),
		formatFixed(row.Result.ShortProfitPips),
		formatFixed(row.Result.Quality),
	})
}

// Close flushes buffered rows and closes the file handle.
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.file == nil {
		return nil
	}
	c.w.Flush()
	err := c.w.Error()
	if cerr := c.file.Close(); err == nil {
		err = cerr
	}
	c.file = nil
	return err
}

func formatFixed(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
