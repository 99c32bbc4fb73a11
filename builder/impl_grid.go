// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// impl_grid.go: Grid(rows, cols): an orthogonal street grid of rows×cols
// intersections.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Intersection (r,c) sits at origin + (c, r)·spacing.
//   • For each (r,c) in row-major order emit Right then Bottom where present.
//   • rows*(cols-1) + cols*(rows-1) segments in total.
//
// Endpoint degrees: 2 at corners, 3 on borders, 4 inside (1×1 yields nothing).

package builder

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) ([]geom.Segment, error) {
		if rows < minGridDim || cols < minGridDim {
			return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		out := make([]geom.Segment, 0, rows*(cols-1)+cols*(rows-1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				here := cfg.at(float64(c), float64(r))
				if c+1 < cols {
					out = append(out, geom.Seg(here, cfg.at(float64(c+1), float64(r))))
				}
				if r+1 < rows {
					out = append(out, geom.Seg(here, cfg.at(float64(c), float64(r+1))))
				}
			}
		}

		return out, nil
	}
}
