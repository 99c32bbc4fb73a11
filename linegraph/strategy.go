// SPDX-License-Identifier: MIT
//
// File: strategy.go
// Role: contracts between the Generator and the pluggable Assembly Strategy.
//
// The Generator computes topology; a Strategy decides how nodes and edges are
// represented. Swapping strategies never changes the topology.

package linegraph

import "github.com/katalvlaran/linegraph/geom"

// Node is an opaque handle to a materialized graph node.
// Degree is fixed at allocation time and never revised.
type Node interface {
	Coordinate() geom.Coordinate
	Degree() int
}

// Edge is an opaque handle to a materialized graph edge.
type Edge interface {
	// Endpoints returns the nodes in the orientation of the originating segment.
	Endpoints() (Node, Node)
}

// Graph is the aggregate a Strategy accumulates.
type Graph interface {
	// Nodes returns every node. Order is strategy-defined but stable between calls.
	Nodes() []Node
	// Edges returns every edge in allocation order.
	Edges() []Edge
	NodeCount() int
	EdgeCount() int
	// EdgeBetween returns some edge joining a and b in either orientation.
	// When parallel edges exist, which one is returned is unspecified.
	EdgeBetween(a, b Node) (Edge, bool)
}

// Strategy allocates graph primitives and registers them into its Graph.
//
// AllocateNode is called exactly once per distinct coordinate, with the final
// endpoint count as degree, before any AllocateEdge call. AllocateEdge is
// called once per ingested segment, in ingestion order, with handles returned
// by AllocateNode.
type Strategy interface {
	AllocateNode(c geom.Coordinate, degree int) (Node, error)
	AllocateEdge(a, b Node) (Edge, error)
	Graph() Graph
}

// Verifier is implemented by strategies that can audit their graph once phase
// B is done, e.g. that every node carries exactly Degree attachments. Build
// calls Verify when the bound Strategy provides it.
type Verifier interface {
	Verify() error
}
