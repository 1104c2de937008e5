package market

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// ReadCSV loads an ordered tick series from a timestamp,bid,ask file.
// Timestamps may be RFC3339(Nano) or unix milliseconds; a single header row
// is tolerated. Prices are parsed exactly, no float round trip.
func ReadCSV(path string) ([]Tick, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticks: %w", err)
	}
	defer file.Close()

	ticks, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ticks, nil
}

// Read parses CSV tick rows from r.
func Read(r io.Reader) ([]Tick, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var ticks []Tick
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		ts, err := parseTimestamp(record[0])
		if err != nil {
			if row == 1 {
				continue // header
			}
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		bid, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("row %d bid: %w", row, err)
		}
		ask, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("row %d ask: %w", row, err)
		}
		ticks = append(ticks, Tick{Ts: ts, Bid: bid, Ask: ask})
	}
	return ticks, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC(), nil
	}
	if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", raw)
}
