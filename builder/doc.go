// SPDX-License-Identifier: MIT
//
// Package builder produces deterministic synthetic segment sets (street
// grids, paths, rings, stars) for feeding linegraph.Generator in tests,
// benchmarks and examples.
//
// One orchestrator, BuildSegments(bopts, cons...), resolves BuilderOption
// values into an immutable builderConfig and concatenates the output of each
// Constructor in order. WithSeed additionally shuffles the result and flips
// the orientation of some segments, which exercises the generator's claim
// that topology does not depend on ingestion order.
//
// Determinism: same options, seed and constructor order ⇒ identical segments.
//
// Errors:
//
//	ErrTooFewVertices – a size parameter is below its minimum.
//	ErrNilConstructor – a nil Constructor was passed to BuildSegments.
package builder
