// SPDX-License-Identifier: MIT
//
// Package geom defines the planar value types consumed by the line graph
// generator: Coordinate (a 2-D point used as a node identity key) and
// Segment (an ordered pair of coordinates).
//
// Both types are comparable values. Coordinate is used directly as a map key,
// so equality is Go's == on both ordinates: (0, 0) and (-0, 0) are the same
// coordinate, and NaN never equals itself. The generator therefore rejects
// non-finite ordinates before they can reach an index.
//
// Errors:
//
//	ErrNonFinite - an ordinate is NaN or ±Inf.
package geom
