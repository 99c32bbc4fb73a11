// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// impl_path.go: Path(n): n points along +X, n-1 segments.
// Endpoint degrees: 1 at both ends, 2 inside.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for a straight polyline of n points.
func Path(n int) Constructor {
	return func(cfg builderConfig) ([]geom.Segment, error) {
		if n < minPathNodes {
			return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		out := make([]geom.Segment, 0, n-1)
		prev := cfg.at(0, 0)
		for i := 1; i < n; i++ {
			cur := cfg.at(float64(i), 0)
			out = append(out, geom.Seg(prev, cur))
			prev = cur
		}

		return out, nil
	}
}
