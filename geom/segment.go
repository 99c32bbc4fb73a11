// SPDX-License-Identifier: MIT
//
// File: segment.go
// Role: Segment value type.

package geom

import "fmt"

// Segment is an ordered pair of endpoints. A Segment with P0 == P1 is
// degenerate but valid; it describes a self-loop at a single coordinate.
type Segment struct {
	P0 Coordinate
	P1 Coordinate
}

// Seg is shorthand for Segment{P0: p0, P1: p1}.
func Seg(p0, p1 Coordinate) Segment {
	return Segment{P0: p0, P1: p1}
}

// Validate checks both endpoints for finiteness.
// The returned error wraps ErrNonFinite and names the offending endpoint.
//
// Complexity: O(1).
func (s Segment) Validate() error {
	if err := s.P0.Validate(); err != nil {
		return fmt.Errorf("p0 %s: %w", s.P0, err)
	}
	if err := s.P1.Validate(); err != nil {
		return fmt.Errorf("p1 %s: %w", s.P1, err)
	}

	return nil
}

// IsDegenerate reports whether both endpoints are the same coordinate.
func (s Segment) IsDegenerate() bool {
	return s.P0 == s.P1
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// String renders the segment as "(x0 y0)-(x1 y1)".
func (s Segment) String() string {
	return s.P0.String() + "-" + s.P1.String()
}
