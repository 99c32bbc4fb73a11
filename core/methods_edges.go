// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and queries, plus nextEdgeID().
//
// Determinism:
//   - Edges() and EdgesBetween() return edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of generated edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge from→to, adding missing endpoints.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: from == to without WithLoops().
//   - ErrMultiEdgeNotAllowed: an edge already joins from and to without WithMultiEdges().
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: edgeID(seq), From: from, To: to, seq: seq}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

// link registers eid in adjacency[u][v]. Caller holds muEdgeAdj.
func (g *Graph) link(u, v, eid string) {
	inner := g.adjacency[u]
	if inner == nil {
		inner = make(map[string]map[string]struct{})
		g.adjacency[u] = inner
	}
	bucket := inner[v]
	if bucket == nil {
		bucket = make(map[string]struct{})
		inner[v] = bucket
	}
	bucket[eid] = struct{}{}
}

// HasEdge reports whether at least one edge joins u and v (either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// EdgesBetween returns every edge joining u and v, in creation order.
// Complexity: O(k log k) for k parallel edges.
func (g *Graph) EdgesBetween(u, v string) []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adjacency[u][v]
	out := make([]*Edge, 0, len(bucket))
	for eid := range bucket {
		out = append(out, g.edges[eid])
	}
	sortBySeq(out)

	return out
}

// GetEdge returns the edge with the given ID. The returned *Edge is read-only.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}

// edgeID renders "e<seq>" without fmt.
func edgeID(seq uint64) string {
	b := make([]byte, 0, 21)
	b = append(b, edgeIDPrefix)
	b = strconv.AppendUint(b, seq, 10)

	return string(b)
}
