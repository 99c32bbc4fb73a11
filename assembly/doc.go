// SPDX-License-Identifier: MIT
//
// Package assembly provides Assembly Strategies for linegraph.Generator.
//
//   - NewOpt: each node holds an edge slice whose capacity is exactly its
//     final degree, allocated once in phase A. Attaching more edges than the
//     declared degree fails with ErrDegreeExceeded.
//   - NewAdjacency: nodes and edges are registered in a core.Graph with loops
//     and multi-edges enabled; adjacency grows dynamically.
//
// Both produce the same topology for the same input. Handles must only be
// passed back to the strategy that allocated them; anything else fails with
// ErrForeignNode.
package assembly
