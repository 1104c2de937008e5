// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	Env         string `yaml:"env"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Instrument names the traded pair and its pip size; the pip size is kept as
// a decimal string so quotes parse exactly.
type Instrument struct {
	Symbol  string `yaml:"symbol"`
	PipSize string `yaml:"pip_size"`
}

// Pip parses the configured pip size; an empty value returns the zero decimal
// and lets the labeling core apply its default.
func (i Instrument) Pip() (decimal.Decimal, error) {
	if i.PipSize == "" {
		return decimal.Decimal{}, nil
	}
	pip, err := decimal.NewFromString(i.PipSize)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse pip_size: %w", err)
	}
	if pip.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("pip_size must be positive, got %s", i.PipSize)
	}
	return pip, nil
}

// Synthetic tunes the deterministic tick generator used when no CSV file is
// configured.
type Synthetic struct {
	StartBid   string  `yaml:"start_bid"`
	SpreadPips float64 `yaml:"spread_pips"`
	RisePips   float64 `yaml:"rise_pips"`
	RiseTicks  int     `yaml:"rise_ticks"`
	FallPips   float64 `yaml:"fall_pips"`
	FallTicks  int     `yaml:"fall_ticks"`
	Ticks      int     `yaml:"ticks"`
}

// Source selects where the tick series comes from.
type Source struct {
	Mode      string    `yaml:"mode"` // "csv" or "synthetic"
	Path      string    `yaml:"path"`
	Synthetic Synthetic `yaml:"synthetic"`
}

// Labeling mirrors the label run parameters.
type Labeling struct {
	StopLossPips   float64 `yaml:"stop_loss_pips"`
	TriggerPips    float64 `yaml:"trigger_pips"`
	DistancePips   float64 `yaml:"distance_pips"`
	MaxFutureTicks int     `yaml:"max_future_ticks"`
	MinConfidence  float64 `yaml:"min_confidence"`
	MinScore       float64 `yaml:"min_score"`
}

// Runner tunes the decision-point sweep.
type Runner struct {
	Workers int `yaml:"workers"`
	Stride  int `yaml:"stride"`
}

// Output selects the label sink.
type Output struct {
	Format string `yaml:"format"` // "csv" or "jsonl"
	Path   string `yaml:"path"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App        App        `yaml:"app"`
	Instrument Instrument `yaml:"instrument"`
	Source     Source     `yaml:"source"`
	Labeling   Labeling   `yaml:"labeling"`
	Runner     Runner     `yaml:"runner"`
	Output     Output     `yaml:"output"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
