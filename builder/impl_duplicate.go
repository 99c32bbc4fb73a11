// SPDX-License-Identifier: MIT
// Package: linegraph/builder
//
// impl_duplicate.go: Duplicate(times, inner) and SelfLoop().

package builder

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
)

const (
	methodDuplicate = "Duplicate"
	minDuplicate    = 1
)

// Duplicate repeats the whole output of inner times times, producing parallel
// segments between the same endpoints.
func Duplicate(times int, inner Constructor) Constructor {
	return func(cfg builderConfig) ([]geom.Segment, error) {
		if times < minDuplicate {
			return nil, fmt.Errorf("%s: times=%d < min=%d: %w", methodDuplicate, times, minDuplicate, ErrTooFewVertices)
		}
		if inner == nil {
			return nil, fmt.Errorf("%s: %w", methodDuplicate, ErrNilConstructor)
		}
		once, err := inner(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodDuplicate, err)
		}
		out := make([]geom.Segment, 0, times*len(once))
		for i := 0; i < times; i++ {
			out = append(out, once...)
		}

		return out, nil
	}
}

// SelfLoop emits one degenerate segment at the origin.
func SelfLoop() Constructor {
	return func(cfg builderConfig) ([]geom.Segment, error) {
		p := cfg.at(0, 0)
		return []geom.Segment{geom.Seg(p, p)}, nil
	}
}
