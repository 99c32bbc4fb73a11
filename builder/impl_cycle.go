// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// impl_cycle.go: Cycle(n): a closed ring of n points on a circle of radius
// spacing around the origin. Every endpoint has degree 2.
//
// Points are computed once and reused, so the closing segment ends exactly
// at the first point (no trigonometric drift breaks the ring).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linegraph/geom"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for a regular n-gon ring.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]geom.Segment, error) {
		if n < minCycleNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		pts := ring(cfg, n)
		out := make([]geom.Segment, n)
		for i := 0; i < n; i++ {
			out[i] = geom.Seg(pts[i], pts[(i+1)%n])
		}

		return out, nil
	}
}

// ring places n points evenly on the circle of radius spacing.
func ring(cfg builderConfig, n int) []geom.Coordinate {
	pts := make([]geom.Coordinate, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = cfg.at(math.Cos(theta), math.Sin(theta))
	}

	return pts
}
