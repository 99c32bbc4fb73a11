// SPDX-License-Identifier: MIT
//
// Command linegraph builds a line graph from a segment document and prints
// its node/edge counts and degree histogram.
//
// Usage:
//
//	linegraph -input streets.yaml|streets.geojson [-strategy opt|adjacency] [-log-level info]
//	          [-metrics-out linegraph.prom] [-config linegraph.yaml]
//
// Flags override values read from -config. Segments with non-finite
// ordinates are skipped and counted; every other failure is fatal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/linegraph/assembly"
	"github.com/katalvlaran/linegraph/config"
	"github.com/katalvlaran/linegraph/linegraph"
	"github.com/katalvlaran/linegraph/metrics"
	"github.com/katalvlaran/linegraph/segio"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "linegraph:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	segs, err := segio.ReadFile(cfg.Input)
	if err != nil {
		return err
	}

	strategy, err := newStrategy(cfg.Strategy)
	if err != nil {
		return err
	}
	collector := metrics.NewCollector(cfg.MetricsNamespace)
	gen, err := linegraph.NewGenerator(strategy,
		linegraph.WithLogger(logger),
		linegraph.WithMetrics(collector),
		linegraph.WithCapacity(len(segs)),
	)
	if err != nil {
		return err
	}

	rejected := 0
	for _, s := range segs {
		if err := gen.Ingest(s); err != nil {
			if !errors.Is(err, linegraph.ErrInvalidSegment) {
				return err
			}
			rejected++
		}
	}
	if err := gen.Build(); err != nil {
		return err
	}
	g, err := gen.Graph()
	if err != nil {
		return err
	}

	logger.Info("line graph built",
		zap.String("input", cfg.Input),
		zap.String("strategy", cfg.Strategy),
		zap.Int("segments", gen.SegmentCount()),
		zap.Int("rejected", rejected))
	printSummary(stdout, linegraph.Summarize(g), rejected)

	if cfg.MetricsOut != "" {
		if err := collector.WriteTextfile(cfg.MetricsOut); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}

func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("linegraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	input := fs.String("input", "", "segment document (YAML, JSON or .geojson)")
	strategy := fs.String("strategy", "", "assembly strategy: opt or adjacency")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	metricsOut := fs.String("metrics-out", "", "write Prometheus metrics to this file")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "strategy":
			cfg.Strategy = *strategy
		case "log-level":
			cfg.LogLevel = *logLevel
		case "metrics-out":
			cfg.MetricsOut = *metricsOut
		}
	})

	return cfg, cfg.Validate()
}

func newStrategy(name string) (linegraph.Strategy, error) {
	switch name {
	case config.StrategyOpt:
		return assembly.NewOpt(), nil
	case config.StrategyAdjacency:
		return assembly.NewAdjacency(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q: %w", name, config.ErrInvalidConfig)
	}
}

func printSummary(w io.Writer, s linegraph.Summary, rejected int) {
	fmt.Fprintf(w, "nodes=%d edges=%d self_loops=%d max_degree=%d rejected=%d\n",
		s.NodeCount, s.EdgeCount, s.SelfLoops, s.MaxDegree, rejected)
	for _, d := range s.Degrees() {
		fmt.Fprintf(w, "degree %d: %d\n", d, s.DegreeHistogram[d])
	}
}
