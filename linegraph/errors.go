// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the linegraph package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w ("Ingest: ...: %w").
//   - Absent lookups are not errors: NodeAt/EdgeFor/EdgeBetween report ok=false.

package linegraph

import "errors"

// ErrInvalidSegment indicates a segment was rejected at ingestion because an
// endpoint is non-finite. The segment is not recorded; the caller may retry
// with a corrected segment. The error also wraps geom.ErrNonFinite.
var ErrInvalidSegment = errors.New("linegraph: invalid segment")

// ErrBuildOrder indicates the ingest-then-build-once protocol was violated:
// Build called twice (or after a failed build) without Reset, Ingest after
// Build, or a post-build query issued before Build.
var ErrBuildOrder = errors.New("linegraph: build order violated")

// ErrUnsupported indicates a permanently unsupported operation (removal).
var ErrUnsupported = errors.New("linegraph: unsupported operation")

// ErrNilStrategy indicates a nil Strategy was supplied to NewGenerator or Reset.
var ErrNilStrategy = errors.New("linegraph: nil assembly strategy")

// ErrStrategyInUse indicates NewGenerator or Reset received a Strategy whose
// graph already holds nodes or edges, such as the one bound before Reset.
var ErrStrategyInUse = errors.New("linegraph: strategy already holds a graph")

// ErrAllocation indicates the Strategy failed to allocate a node or edge, or
// its Verify rejected the finished graph.
// The generator is left in a failed state and must be Reset.
var ErrAllocation = errors.New("linegraph: allocation failed")

// ErrIndexState indicates an endpoint index entry held the wrong variant
// (a count where a node was required, or the reverse).
var ErrIndexState = errors.New("linegraph: endpoint index state mismatch")
