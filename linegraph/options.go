// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for NewGenerator.
//
// Contract:
//   - Options mutate a generatorConfig before the Generator is assembled.
//   - Option constructors panic on meaningless input (nil logger, negative
//     capacity); generator operations never panic.
//   - Defaults: no-op logger, no metrics, no capacity hint.

package linegraph

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/linegraph/metrics"
)

// Option customizes a Generator.
type Option func(*generatorConfig)

type generatorConfig struct {
	logger   *zap.Logger
	metrics  *metrics.Collector
	capacity int
}

func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes generator diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("linegraph: WithLogger(nil)")
	}
	return func(c *generatorConfig) { c.logger = l }
}

// WithMetrics records ingestion and build counters into m.
func WithMetrics(m *metrics.Collector) Option {
	if m == nil {
		panic("linegraph: WithMetrics(nil)")
	}
	return func(c *generatorConfig) { c.metrics = m }
}

// WithCapacity pre-sizes the segment log (and the index, assuming roughly one
// new coordinate per segment) for the expected number of segments.
func WithCapacity(segments int) Option {
	if segments < 0 {
		panic("linegraph: WithCapacity(negative)")
	}
	return func(c *generatorConfig) { c.capacity = segments }
}
