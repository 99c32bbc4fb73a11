// SPDX-License-Identifier: MIT
//
// File: opt.go
// Role: degree-sized strategy. Node adjacency is a fixed-capacity slice.

package assembly

import (
	"fmt"

	"github.com/katalvlaran/linegraph/geom"
	"github.com/katalvlaran/linegraph/linegraph"
)

// OptNode is a node whose adjacency was sized to its degree at allocation.
type OptNode struct {
	owner  *OptGraph
	id     string
	coord  geom.Coordinate
	degree int
	edges  []*OptEdge // len grows to degree, cap == degree
}

// ID returns the node identifier ("n1", "n2", ...).
func (n *OptNode) ID() string { return n.id }

// Coordinate implements linegraph.Node.
func (n *OptNode) Coordinate() geom.Coordinate { return n.coord }

// Degree implements linegraph.Node.
func (n *OptNode) Degree() int { return n.degree }

// Edges returns the attached edges; a self-loop appears twice.
func (n *OptNode) Edges() []*OptEdge {
	out := make([]*OptEdge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Free returns the number of adjacency slots not yet filled.
func (n *OptNode) Free() int { return cap(n.edges) - len(n.edges) }

func (n *OptNode) edgeTo(other *OptNode) *OptEdge {
	for _, e := range n.edges {
		if e.other(n) == other {
			return e
		}
	}

	return nil
}

// OptEdge joins two OptNodes.
type OptEdge struct {
	id   string
	a, b *OptNode
}

// ID returns the edge identifier ("e1", "e2", ...).
func (e *OptEdge) ID() string { return e.id }

// Endpoints implements linegraph.Edge.
func (e *OptEdge) Endpoints() (linegraph.Node, linegraph.Node) { return e.a, e.b }

func (e *OptEdge) other(n *OptNode) *OptNode {
	if e.a == n {
		return e.b
	}

	return e.a
}

// OptGraph is the graph owned by an Opt strategy.
type OptGraph struct {
	nodes []*OptNode
	edges []*OptEdge
}

// Nodes implements linegraph.Graph; allocation order.
func (g *OptGraph) Nodes() []linegraph.Node {
	out := make([]linegraph.Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n
	}

	return out
}

// Edges implements linegraph.Graph; allocation order.
func (g *OptGraph) Edges() []linegraph.Edge {
	out := make([]linegraph.Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = e
	}

	return out
}

// NodeCount implements linegraph.Graph.
func (g *OptGraph) NodeCount() int { return len(g.nodes) }

// EdgeCount implements linegraph.Graph.
func (g *OptGraph) EdgeCount() int { return len(g.edges) }

// EdgeBetween implements linegraph.Graph by scanning the lower-degree endpoint.
// Complexity: O(min(deg a, deg b)).
func (g *OptGraph) EdgeBetween(a, b linegraph.Node) (linegraph.Edge, bool) {
	na, ok := a.(*OptNode)
	if !ok || na == nil {
		return nil, false
	}
	nb, ok := b.(*OptNode)
	if !ok || nb == nil {
		return nil, false
	}
	if len(nb.edges) < len(na.edges) {
		na, nb = nb, na
	}
	if e := na.edgeTo(nb); e != nil {
		return e, true
	}

	return nil, false
}

// Opt allocates degree-sized nodes.
type Opt struct {
	graph *OptGraph
}

// NewOpt returns an empty degree-sized strategy.
func NewOpt() *Opt {
	return &Opt{graph: &OptGraph{}}
}

// AllocateNode implements linegraph.Strategy.
func (s *Opt) AllocateNode(c geom.Coordinate, degree int) (linegraph.Node, error) {
	if degree < 0 {
		return nil, fmt.Errorf("AllocateNode %s: degree %d: %w", c, degree, ErrNegativeDegree)
	}
	n := &OptNode{
		owner:  s.graph,
		id:     seqID('n', len(s.graph.nodes)+1),
		coord:  c,
		degree: degree,
		edges:  make([]*OptEdge, 0, degree),
	}
	s.graph.nodes = append(s.graph.nodes, n)

	return n, nil
}

// AllocateEdge implements linegraph.Strategy. A self-loop takes two slots.
func (s *Opt) AllocateEdge(a, b linegraph.Node) (linegraph.Edge, error) {
	na, err := s.own(a)
	if err != nil {
		return nil, err
	}
	nb, err := s.own(b)
	if err != nil {
		return nil, err
	}

	if na == nb {
		if na.Free() < 2 {
			return nil, degreeExceeded(na)
		}
	} else {
		if na.Free() < 1 {
			return nil, degreeExceeded(na)
		}
		if nb.Free() < 1 {
			return nil, degreeExceeded(nb)
		}
	}

	e := &OptEdge{id: seqID('e', len(s.graph.edges)+1), a: na, b: nb}
	na.edges = append(na.edges, e)
	nb.edges = append(nb.edges, e)
	s.graph.edges = append(s.graph.edges, e)

	return e, nil
}

func (s *Opt) own(n linegraph.Node) (*OptNode, error) {
	on, ok := n.(*OptNode)
	if !ok || on == nil || on.owner != s.graph {
		return nil, fmt.Errorf("AllocateEdge: %w", ErrForeignNode)
	}

	return on, nil
}

func degreeExceeded(n *OptNode) error {
	return fmt.Errorf("AllocateEdge %s: degree %d full: %w", n.coord, n.degree, ErrDegreeExceeded)
}

// Verify implements linegraph.Verifier: every node must have filled all of
// its slots. Complexity: O(V).
func (s *Opt) Verify() error {
	for _, n := range s.graph.nodes {
		if n.Free() != 0 {
			return fmt.Errorf("Verify %s: %d of %d slots filled: %w",
				n.coord, len(n.edges), n.degree, ErrDegreeMismatch)
		}
	}

	return nil
}

// Graph implements linegraph.Strategy.
func (s *Opt) Graph() linegraph.Graph { return s.graph }

// OptGraph returns the concrete graph for callers that need OptNode access.
func (s *Opt) OptGraph() *OptGraph { return s.graph }

var (
	_ linegraph.Strategy = (*Opt)(nil)
	_ linegraph.Verifier = (*Opt)(nil)
	_ linegraph.Graph    = (*OptGraph)(nil)
)
