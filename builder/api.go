// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// api.go: Constructor type and the BuildSegments orchestrator.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
)

// Constructor emits a deterministic set of segments for the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(cfg builderConfig) ([]geom.Segment, error)

// BuildSegments resolves bopts and concatenates the output of cons in order.
// Any constructor error is wrapped as "BuildSegments: %w" and returned
// immediately.
//
// Complexity: Σ cost of each constructor, plus O(S) for the optional shuffle.
func BuildSegments(bopts []BuilderOption, cons ...Constructor) ([]geom.Segment, error) {
	cfg := newBuilderConfig(bopts...)

	var out []geom.Segment
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildSegments: constructor %d: %w", i, ErrNilConstructor)
		}
		segs, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildSegments: %w", err)
		}
		out = append(out, segs...)
	}

	if cfg.rng != nil {
		cfg.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		for i := range out {
			if cfg.rng.Intn(2) == 1 {
				out[i] = out[i].Reverse()
			}
		}
	}

	return out, nil
}
