// SPDX-License-Identifier: MIT
//
// File: summary.go
// Role: read-only snapshot of a built graph for diagnostics.

package linegraph

import "sort"

// Summary describes the shape of a built Graph.
type Summary struct {
	NodeCount int
	EdgeCount int
	// SelfLoops counts edges whose endpoints are the same node.
	SelfLoops int
	// MaxDegree is the largest node degree, 0 for an empty graph.
	MaxDegree int
	// DegreeHistogram maps degree to the number of nodes carrying it.
	DegreeHistogram map[int]int
}

// Degrees returns the distinct degrees in ascending order.
func (s Summary) Degrees() []int {
	out := make([]int, 0, len(s.DegreeHistogram))
	for d := range s.DegreeHistogram {
		out = append(out, d)
	}
	sort.Ints(out)

	return out
}

// Summarize scans g once. A nil graph yields the zero Summary with an empty histogram.
// Complexity: O(V + E).
func Summarize(g Graph) Summary {
	s := Summary{DegreeHistogram: make(map[int]int)}
	if g == nil {
		return s
	}
	s.NodeCount = g.NodeCount()
	s.EdgeCount = g.EdgeCount()
	for _, n := range g.Nodes() {
		d := n.Degree()
		s.DegreeHistogram[d]++
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	for _, e := range g.Edges() {
		if a, b := e.Endpoints(); a == b {
			s.SelfLoops++
		}
	}

	return s
}
