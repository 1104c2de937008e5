package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"fxlabel-go/internal/config"
	"fxlabel-go/internal/dataset"
	"fxlabel-go/internal/label"
	"fxlabel-go/internal/market"
	"fxlabel-go/internal/metrics"
	"fxlabel-go/internal/runner"
	"fxlabel-go/internal/util"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to YAML config")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog := util.NewLogger("info")
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := util.NewLogger(cfg.App.LogLevel)

	_ = metrics.Serve(cfg.App.MetricsAddr)
	log.Info().Str("addr", cfg.App.MetricsAddr).Msg("metrics up")

	ctx, cancel := ossignal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pip, err := cfg.Instrument.Pip()
	if err != nil {
		log.Fatal().Err(err).Msg("instrument config")
	}

	ticks, err := loadTicks(cfg, pip)
	if err != nil {
		log.Fatal().Err(err).Msg("load ticks")
	}
	metrics.TicksLoaded.Add(float64(len(ticks)))
	log.Info().Int("ticks", len(ticks)).Str("symbol", cfg.Instrument.Symbol).Str("mode", cfg.Source.Mode).Msg("tick series ready")

	labeler, err := label.NewLabeler(label.Config{
		StopLossPips:   cfg.Labeling.StopLossPips,
		TriggerPips:    cfg.Labeling.TriggerPips,
		DistancePips:   cfg.Labeling.DistancePips,
		MaxFutureTicks: cfg.Labeling.MaxFutureTicks,
		MinConfidence:  cfg.Labeling.MinConfidence,
		MinScore:       cfg.Labeling.MinScore,
	}, pip)
	if err != nil {
		log.Fatal().Err(err).Msg("labeling config")
	}

	rows, err := runner.New(labeler, cfg.Runner.Workers, cfg.Runner.Stride, log).Run(ctx, ticks)
	if err != nil {
		log.Fatal().Err(err).Msg("label sweep")
	}

	sink, closeSink, err := newSink(cfg.Output)
	if err != nil {
		log.Fatal().Err(err).Msg("open output")
	}
	for _, row := range rows {
		sink.Record(row)
	}
	if err := closeSink(); err != nil {
		log.Fatal().Err(err).Msg("close output")
	}
	log.Info().Int("rows", len(rows)).Str("path", cfg.Output.Path).Msg("labels written")
}

func loadTicks(cfg *config.Config, pip decimal.Decimal) ([]market.Tick, error) {
	switch cfg.Source.Mode {
	case "csv":
		return market.ReadCSV(cfg.Source.Path)
	case "synthetic", "":
		syn := cfg.Source.Synthetic
		gen := market.SyntheticConfig{
			PipSize:    pip,
			SpreadPips: syn.SpreadPips,
			RisePips:   syn.RisePips,
			RiseTicks:  syn.RiseTicks,
			FallPips:   syn.FallPips,
			FallTicks:  syn.FallTicks,
		}
		if syn.StartBid != "" {
			start, err := decimal.NewFromString(syn.StartBid)
			if err != nil {
				return nil, fmt.Errorf("parse start_bid: %w", err)
			}
			gen.StartBid = start
		}
		n := syn.Ticks
		if n <= 0 {
			n = 1000
		}
		return market.Synthetic(gen, n), nil
	default:
		return nil, fmt.Errorf("unknown source mode %q", cfg.Source.Mode)
	}
}

func newSink(out config.Output) (dataset.Sink, func() error, error) {
	switch out.Format {
	case "jsonl":
		w, err := dataset.NewJSONLWriter(out.Path)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil
	case "csv", "":
		w, err := dataset.NewCSVWriter(out.Path)
		if err != nil {
			return nil, nil, err
		}
		return w, w.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", out.Format)
	}
}
