// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// options.go: functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Constructors themselves never panic.
//   • Defaults: origin (0,0), spacing 1, no shuffling.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/linegraph/geom"
)

// BuilderOption customizes segment generation.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	origin  geom.Coordinate
	spacing float64
	rng     *rand.Rand // nil means emission order is kept as generated
}

const defaultSpacing = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin translates every constructor's output so it is anchored at o.
func WithOrigin(o geom.Coordinate) BuilderOption {
	if !o.IsFinite() {
		panic("builder: WithOrigin(non-finite)")
	}
	return func(c *builderConfig) { c.origin = o }
}

// WithSpacing sets the distance between neighboring grid/path points and the
// radius of rings and stars.
func WithSpacing(d float64) BuilderOption {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		panic("builder: WithSpacing must be finite and > 0")
	}
	return func(c *builderConfig) { c.spacing = d }
}

// WithSeed shuffles the final segment order and reverses roughly half of the
// segments, reproducibly for a given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// at returns origin + (dx, dy) scaled by spacing.
func (c builderConfig) at(dx, dy float64) geom.Coordinate {
	return geom.XY(c.origin.X+dx*c.spacing, c.origin.Y+dy*c.spacing)
}
