// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// impl_star.go: Star(n): a hub at the origin with n-1 spokes.
// Hub degree n-1, leaf degree 1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a hub with n-1 radial spokes.
func Star(n int) Constructor {
	return func(cfg builderConfig) ([]geom.Segment, error) {
		if n < minStarNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := cfg.at(0, 0)
		leaves := n - 1
		if leaves < minCycleNodes {
			// Fewer than three leaves: place them on the axes to keep them distinct.
			out := make([]geom.Segment, 0, leaves)
			for i := 0; i < leaves; i++ {
				out = append(out, geom.Seg(hub, cfg.at(float64(1-2*i), 0)))
			}
			return out, nil
		}
		out := make([]geom.Segment, 0, leaves)
		for _, p := range ring(cfg, leaves) {
			out = append(out, geom.Seg(hub, p))
		}

		return out, nil
	}
}
