// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: dynamic-adjacency strategy backed by core.Graph.

package assembly

import (
	"fmt"

	"github.com/katalvlaran/linegraph/core"
	"github.com/katalvlaran/linegraph/geom"
	"github.com/katalvlaran/linegraph/linegraph"
)

// Metadata keys written on every core.Vertex allocated by Adjacency.
const (
	MetaCoordinate = "coordinate"
	MetaDegree     = "degree"
)

// AdjNode is a node stored as a core.Vertex.
type AdjNode struct {
	owner  *AdjGraph
	id     string
	coord  geom.Coordinate
	degree int
}

// ID returns the core vertex ID.
func (n *AdjNode) ID() string { return n.id }

// Coordinate implements linegraph.Node.
func (n *AdjNode) Coordinate() geom.Coordinate { return n.coord }

// Degree implements linegraph.Node.
func (n *AdjNode) Degree() int { return n.degree }

// AdjEdge is an edge stored as a core.Edge.
type AdjEdge struct {
	id   string
	a, b *AdjNode
}

// ID returns the core edge ID.
func (e *AdjEdge) ID() string { return e.id }

// Endpoints implements linegraph.Edge.
func (e *AdjEdge) Endpoints() (linegraph.Node, linegraph.Node) { return e.a, e.b }

// AdjGraph adapts a core.Graph to linegraph.Graph.
type AdjGraph struct {
	core  *core.Graph
	nodes []*AdjNode
	edges map[string]*AdjEdge // core edge ID → handle
}

// Core returns the underlying container.
func (g *AdjGraph) Core() *core.Graph { return g.core }

// Nodes implements linegraph.Graph; allocation order.
func (g *AdjGraph) Nodes() []linegraph.Node {
	out := make([]linegraph.Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n
	}

	return out
}

// Edges implements linegraph.Graph; creation order as kept by core.
func (g *AdjGraph) Edges() []linegraph.Edge {
	ces := g.core.Edges()
	out := make([]linegraph.Edge, len(ces))
	for i, ce := range ces {
		out[i] = g.edges[ce.ID]
	}

	return out
}

// NodeCount implements linegraph.Graph.
func (g *AdjGraph) NodeCount() int { return g.core.VertexCount() }

// EdgeCount implements linegraph.Graph.
func (g *AdjGraph) EdgeCount() int { return g.core.EdgeCount() }

// EdgeBetween implements linegraph.Graph.
func (g *AdjGraph) EdgeBetween(a, b linegraph.Node) (linegraph.Edge, bool) {
	na, ok := a.(*AdjNode)
	if !ok || na == nil || na.owner != g {
		return nil, false
	}
	nb, ok := b.(*AdjNode)
	if !ok || nb == nil || nb.owner != g {
		return nil, false
	}
	if !g.core.HasEdge(na.id, nb.id) {
		return nil, false
	}
	between := g.core.EdgesBetween(na.id, nb.id)
	if len(between) == 0 {
		return nil, false
	}

	return g.edges[between[0].ID], true
}

// Adjacency allocates nodes and edges into a core.Graph.
type Adjacency struct {
	graph *AdjGraph
}

// NewAdjacency returns a strategy over a fresh core.Graph with loops and
// multi-edges enabled.
func NewAdjacency() *Adjacency {
	return &Adjacency{graph: &AdjGraph{
		core:  core.NewGraph(core.WithLoops(), core.WithMultiEdges()),
		edges: make(map[string]*AdjEdge),
	}}
}

// AllocateNode implements linegraph.Strategy.
func (s *Adjacency) AllocateNode(c geom.Coordinate, degree int) (linegraph.Node, error) {
	if degree < 0 {
		return nil, fmt.Errorf("AllocateNode %s: degree %d: %w", c, degree, ErrNegativeDegree)
	}
	g := s.graph
	n := &AdjNode{owner: g, id: seqID('n', len(g.nodes)+1), coord: c, degree: degree}
	if err := g.core.AddVertex(n.id); err != nil {
		return nil, fmt.Errorf("AllocateNode %s: %w", c, err)
	}
	v, err := g.core.GetVertex(n.id)
	if err != nil {
		return nil, fmt.Errorf("AllocateNode %s: %w", c, err)
	}
	v.Metadata[MetaCoordinate] = c
	v.Metadata[MetaDegree] = degree
	g.nodes = append(g.nodes, n)

	return n, nil
}

// AllocateEdge implements linegraph.Strategy.
func (s *Adjacency) AllocateEdge(a, b linegraph.Node) (linegraph.Edge, error) {
	g := s.graph
	na, ok := a.(*AdjNode)
	if !ok || na == nil || na.owner != g {
		return nil, fmt.Errorf("AllocateEdge: %w", ErrForeignNode)
	}
	nb, ok := b.(*AdjNode)
	if !ok || nb == nil || nb.owner != g {
		return nil, fmt.Errorf("AllocateEdge: %w", ErrForeignNode)
	}
	id, err := g.core.AddEdge(na.id, nb.id)
	if err != nil {
		return nil, fmt.Errorf("AllocateEdge %s-%s: %w", na.coord, nb.coord, err)
	}
	e := &AdjEdge{id: id, a: na, b: nb}
	g.edges[id] = e

	return e, nil
}

// Verify implements linegraph.Verifier by auditing the core container against
// the issued handles: loops and multi-edges enabled, matching catalog sizes,
// every node present with its allocated degree, every edge present with its
// original orientation.
//
// Complexity: O(V·d + E).
func (s *Adjacency) Verify() error {
	g := s.graph
	c := g.core
	if !c.Looped() || !c.Multigraph() {
		return fmt.Errorf("Verify: loops=%t multi=%t: %w", c.Looped(), c.Multigraph(), ErrContainerMismatch)
	}
	if st := c.Stats(); st.VertexCount != len(g.nodes) || st.EdgeCount != len(g.edges) {
		return fmt.Errorf("Verify: core has %d vertices, %d edges; issued %d nodes, %d edges: %w",
			st.VertexCount, st.EdgeCount, len(g.nodes), len(g.edges), ErrContainerMismatch)
	}
	for _, n := range g.nodes {
		if !c.HasVertex(n.id) {
			return fmt.Errorf("Verify %s: vertex %s missing: %w", n.coord, n.id, ErrContainerMismatch)
		}
		d, err := c.Degree(n.id)
		if err != nil {
			return fmt.Errorf("Verify %s: %w", n.coord, err)
		}
		if d != n.degree {
			return fmt.Errorf("Verify %s: %d of %d endpoints attached: %w", n.coord, d, n.degree, ErrDegreeMismatch)
		}
	}
	for id, e := range g.edges {
		ce, err := c.GetEdge(id)
		if err != nil {
			return fmt.Errorf("Verify edge %s: %w", id, err)
		}
		if ce.From != e.a.id || ce.To != e.b.id {
			return fmt.Errorf("Verify edge %s: %s-%s, want %s-%s: %w",
				id, ce.From, ce.To, e.a.id, e.b.id, ErrContainerMismatch)
		}
	}

	return nil
}

// Graph implements linegraph.Strategy.
func (s *Adjacency) Graph() linegraph.Graph { return s.graph }

// AdjGraph returns the concrete graph for callers that need core access.
func (s *Adjacency) AdjGraph() *AdjGraph { return s.graph }

var (
	_ linegraph.Strategy = (*Adjacency)(nil)
	_ linegraph.Verifier = (*Adjacency)(nil)
	_ linegraph.Graph    = (*AdjGraph)(nil)
)
