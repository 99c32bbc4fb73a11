// Package core provides a thread-safe, in-memory undirected graph container
// used to store the nodes and edges of a line network.
//
// The Graph G = (V,E) is configured once with GraphOption values:
//
//   - WithMultiEdges() permits parallel edges between the same endpoints.
//     Otherwise a second AddEdge(u,v) → ErrMultiEdgeNotAllowed.
//   - WithLoops() permits self-loops (u == v); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Storage:
//
//	vertices[id]                      → *Vertex
//	edges[edgeID]                     → *Edge
//	adjacency[u][v][edgeID] = struct{}{}   (mirrored in adjacency[v][u])
//
// Edge IDs are generated atomically as "e1", "e2", ... and Edges() returns
// edges in creation order, so two graphs built from the same input enumerate
// identically.
//
// Degree policy: a self-loop contributes 2 to its vertex, every other edge 1
// to each endpoint. This matches the endpoint-count degree of the line graph
// generator.
//
// Concurrency: muVert guards the vertex catalog, muEdgeAdj guards the edge
// catalog and adjacency. Lock order is always muVert → muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
