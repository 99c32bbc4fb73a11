// SPDX-License-Identifier: MIT
//
// Package linegraph converts an unordered stream of planar line segments into
// a topological graph: segments sharing an endpoint coordinate become edges
// incident on a shared node.
//
// Construction is deferred. Ingest only records endpoint multiplicities and
// the segment itself; Build then runs two passes:
//
//	phase A  one node per distinct coordinate, degree = endpoint count
//	phase B  one edge per ingested segment, in ingestion order
//
// Knowing the final degree before a node exists lets a Strategy size its
// adjacency exactly (see assembly.NewOpt) instead of growing it edge by edge.
//
//	ingest (A,B) (B,C) (A,B)      build
//	  A:2  B:3  C:1        ─────▶   A ══ B ── C     (two parallel A-B edges)
//
// The coordinate index is reused between the passes: before Build it holds
// counts, after Build it holds node handles. Each entry is tagged, so reading
// the wrong variant surfaces ErrIndexState instead of misinterpreting data.
//
// Degree counts endpoint occurrences, so a self-loop segment (A,A) contributes
// 2 to A and produces one A-A edge.
//
// Queries (NodeAt, EdgeFor, EdgeBetween) are valid after Build. When parallel
// edges join the same pair of coordinates, which one is returned is
// unspecified; callers must not rely on a particular edge.
//
// The generator is append/build-only: Remove always fails with ErrUnsupported,
// and a second Build fails with ErrBuildOrder until Reset is called.
//
// Concurrency: a Generator is not safe for concurrent use. Funnel ingestion
// through one owner and call Build once.
//
// Errors:
//
//	ErrInvalidSegment - non-finite endpoint at Ingest (segment not recorded).
//	ErrBuildOrder     - Build twice, Ingest after Build, query before Build.
//	ErrUnsupported    - Remove.
//	ErrNilStrategy    - nil Strategy.
//	ErrAllocation     - the Strategy failed during Build.
//	ErrIndexState     - an index entry held the wrong variant.
package linegraph
