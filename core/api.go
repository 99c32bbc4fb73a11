// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters and the Stats snapshot.

package core

// GraphStats is a point-in-time summary of configuration flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	VertexCount int
	EdgeCount   int
	LoopCount   int
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Stats produces a read-only snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: snapshot vertex count under muVert, then release.
//   - Stage 2: snapshot edge count and loops under muEdgeAdj.
//
// Complexity: O(E).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	s := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	s.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		if e.From == e.To {
			s.LoopCount++
		}
	}
	g.muEdgeAdj.RUnlock()

	return s
}
