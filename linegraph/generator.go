// SPDX-License-Identifier: MIT
//
// File: generator.go
// Role: Generator, the ingest / build / query orchestrator.
//
// Protocol:
//   - Ingest records endpoint counts and logs the segment; no graph object is
//     allocated.
//   - Build runs phase A (one node per distinct coordinate, sized by its final
//     count) and then phase B (one edge per logged segment, in order).
//   - Queries resolve through the index, which now holds node handles.
//
// Concurrency: none. Callers serialize Ingest and call Build from one goroutine.

package linegraph

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/linegraph/geom"
	"github.com/katalvlaran/linegraph/metrics"
)

type generatorState uint8

const (
	stateIngesting generatorState = iota
	stateBuilt
	stateFailed
)

// Generator builds a line graph from segments in two deferred passes.
// The zero value is not usable; construct with NewGenerator.
type Generator struct {
	cfg      generatorConfig
	strategy Strategy
	index    *endpointIndex
	log      *segmentLog
	state    generatorState
}

// NewGenerator returns a Generator that allocates through s.
// Returns ErrNilStrategy if s is nil and ErrStrategyInUse if s already holds
// nodes or edges.
func NewGenerator(s Strategy, opts ...Option) (*Generator, error) {
	if err := checkStrategy(s); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	cfg := newGeneratorConfig(opts...)
	g := &Generator{cfg: cfg, strategy: s}
	g.resetState()

	return g, nil
}

func (g *Generator) resetState() {
	g.index = newEndpointIndex(g.cfg.capacity)
	g.log = newSegmentLog(g.cfg.capacity)
	g.state = stateIngesting
}

// Reset discards all ingested segments and binds a fresh strategy, returning
// the generator to the ingesting state. The graph of the previous strategy is
// left untouched and remains owned by whoever holds it.
//
// A strategy that already holds nodes or edges (including the one just built
// with) is rejected with ErrStrategyInUse and the generator is left as is.
func (g *Generator) Reset(s Strategy) error {
	if err := checkStrategy(s); err != nil {
		return fmt.Errorf("Reset: %w", err)
	}
	g.strategy = s
	g.resetState()

	return nil
}

// checkStrategy accepts only a strategy with an empty graph, so the next
// Build yields exactly one node per coordinate and one edge per segment.
func checkStrategy(s Strategy) error {
	if s == nil {
		return ErrNilStrategy
	}
	if gr := s.Graph(); gr != nil && gr.NodeCount()+gr.EdgeCount() > 0 {
		return fmt.Errorf("%d nodes, %d edges: %w", gr.NodeCount(), gr.EdgeCount(), ErrStrategyInUse)
	}

	return nil
}

// Ingest records s for the next Build.
//
// Errors:
//   - ErrInvalidSegment (also wrapping geom.ErrNonFinite) for a non-finite endpoint.
//   - ErrBuildOrder once Build has been called.
//
// Complexity: O(1) amortized.
func (g *Generator) Ingest(s geom.Segment) error {
	if g.state != stateIngesting {
		return fmt.Errorf("Ingest: generator already built: %w", ErrBuildOrder)
	}
	if err := s.Validate(); err != nil {
		g.cfg.metrics.Rejected()
		g.cfg.logger.Warn("segment rejected",
			zap.Stringer("segment", s), zap.Error(err))
		return fmt.Errorf("Ingest: %w: %w", ErrInvalidSegment, err)
	}

	// Both observations are on entries in the count state, so neither can fail
	// while ingesting. A degenerate segment observes the same entry twice.
	if err := g.index.observe(s.P0); err != nil {
		return fmt.Errorf("Ingest: %w", err)
	}
	if err := g.index.observe(s.P1); err != nil {
		return fmt.Errorf("Ingest: %w", err)
	}
	g.log.append(s)
	g.cfg.metrics.Ingested()

	return nil
}

// IngestAll ingests segs in order and stops at the first rejected segment.
// Segments before it stay recorded. The error names the failing index.
func (g *Generator) IngestAll(segs ...geom.Segment) error {
	for i, s := range segs {
		if err := g.Ingest(s); err != nil {
			return fmt.Errorf("IngestAll: segment %d: %w", i, err)
		}
	}

	return nil
}

// Build materializes the graph: phase A allocates one node per distinct
// coordinate with degree equal to its endpoint count, phase B allocates one
// edge per ingested segment in ingestion order.
//
// Errors:
//   - ErrBuildOrder if Build already ran (successfully or not) since the last Reset.
//   - ErrAllocation wrapping the strategy error; the generator must be Reset.
//
// Complexity: O(V + E) strategy calls, where V is the number of distinct
// coordinates and E the number of segments.
func (g *Generator) Build() error {
	if g.state != stateIngesting {
		g.cfg.metrics.BuildFinished(metrics.ResultRejected, 0, 0, 0)
		return fmt.Errorf("Build: called twice without Reset: %w", ErrBuildOrder)
	}
	start := time.Now()
	log := g.cfg.logger

	log.Debug("phase A: materializing nodes", zap.Int("coordinates", g.index.len()))
	if err := g.buildNodes(); err != nil {
		return g.failBuild(err)
	}

	log.Debug("phase B: materializing edges", zap.Int("segments", g.log.len()))
	if err := g.buildEdges(); err != nil {
		return g.failBuild(err)
	}

	if v, ok := g.strategy.(Verifier); ok {
		if err := v.Verify(); err != nil {
			return g.failBuild(fmt.Errorf("verify: %w: %w", ErrAllocation, err))
		}
	}

	g.state = stateBuilt
	elapsed := time.Since(start)
	g.cfg.metrics.BuildFinished(metrics.ResultOK, g.index.len(), g.log.len(), elapsed)
	log.Debug("graph built",
		zap.Int("nodes", g.index.len()),
		zap.Int("edges", g.log.len()),
		zap.Duration("elapsed", elapsed))

	return nil
}

func (g *Generator) failBuild(err error) error {
	g.state = stateFailed
	g.cfg.metrics.BuildFinished(metrics.ResultFailed, 0, 0, 0)
	g.cfg.logger.Warn("build failed", zap.Error(err))

	return fmt.Errorf("Build: %w", err)
}

// buildNodes is phase A. Iteration order over coordinates is unspecified.
func (g *Generator) buildNodes() error {
	return g.index.forEachCount(func(c geom.Coordinate, count int) error {
		n, err := g.strategy.AllocateNode(c, count)
		if err != nil {
			return fmt.Errorf("node at %s: %w: %w", c, ErrAllocation, err)
		}

		return g.index.materialize(c, n)
	})
}

// buildEdges is phase B. Every endpoint was observed during ingestion, so
// resolve always finds a node here.
func (g *Generator) buildEdges() error {
	return g.log.forEach(func(i int, s geom.Segment) error {
		n0, _, err := g.index.resolve(s.P0)
		if err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		n1, _, err := g.index.resolve(s.P1)
		if err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		if _, err = g.strategy.AllocateEdge(n0, n1); err != nil {
			return fmt.Errorf("segment %d %s: %w: %w", i, s, ErrAllocation, err)
		}

		return nil
	})
}

// Built reports whether Build completed successfully.
func (g *Generator) Built() bool { return g.state == stateBuilt }

func (g *Generator) requireBuilt(method string) error {
	if g.state != stateBuilt {
		return fmt.Errorf("%s: graph not built: %w", method, ErrBuildOrder)
	}

	return nil
}

// NodeAt returns the node at c. ok is false if c was never ingested.
// Returns ErrBuildOrder before a successful Build.
// Complexity: O(1).
func (g *Generator) NodeAt(c geom.Coordinate) (Node, bool, error) {
	if err := g.requireBuilt("NodeAt"); err != nil {
		return nil, false, err
	}
	n, ok, err := g.index.resolve(c)
	if err != nil {
		return nil, false, fmt.Errorf("NodeAt: %w", err)
	}

	return n, ok, nil
}

// EdgeFor returns some edge connecting the endpoints of s, matched in either
// orientation. When several ingested segments share those endpoints, which
// edge is returned is unspecified. ok is false if either endpoint was never
// ingested or no edge joins them.
func (g *Generator) EdgeFor(s geom.Segment) (Edge, bool, error) {
	if err := g.requireBuilt("EdgeFor"); err != nil {
		return nil, false, err
	}

	return g.edgeBetween("EdgeFor", s.P0, s.P1)
}

// EdgeBetween returns some edge connecting a and b. Same policy as EdgeFor.
func (g *Generator) EdgeBetween(a, b geom.Coordinate) (Edge, bool, error) {
	if err := g.requireBuilt("EdgeBetween"); err != nil {
		return nil, false, err
	}

	return g.edgeBetween("EdgeBetween", a, b)
}

func (g *Generator) edgeBetween(method string, a, b geom.Coordinate) (Edge, bool, error) {
	na, ok, err := g.index.resolve(a)
	if err != nil || !ok {
		return nil, false, wrapMethod(method, err)
	}
	nb, ok, err := g.index.resolve(b)
	if err != nil || !ok {
		return nil, false, wrapMethod(method, err)
	}
	e, ok := g.strategy.Graph().EdgeBetween(na, nb)

	return e, ok, nil
}

func wrapMethod(method string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", method, err)
}

// Remove always fails with ErrUnsupported: removing a segment after Build
// would invalidate the degrees fixed in phase A.
func (g *Generator) Remove(s geom.Segment) error {
	return fmt.Errorf("Remove %s: generator is append/build-only: %w", s, ErrUnsupported)
}

// Graph returns the graph accumulated by the strategy.
// Returns ErrBuildOrder before a successful Build.
func (g *Generator) Graph() (Graph, error) {
	if err := g.requireBuilt("Graph"); err != nil {
		return nil, err
	}

	return g.strategy.Graph(), nil
}

// Strategy returns the strategy currently bound to the generator.
func (g *Generator) Strategy() Strategy { return g.strategy }

// Segments returns a copy of the ingested segments in ingestion order.
func (g *Generator) Segments() []geom.Segment { return g.log.snapshot() }

// SegmentCount returns the number of ingested segments.
func (g *Generator) SegmentCount() int { return g.log.len() }

// EndpointCounts returns a snapshot of the per-coordinate endpoint counts.
// Only valid before Build; afterwards the counts live on as node degrees and
// ErrBuildOrder is returned.
func (g *Generator) EndpointCounts() (map[geom.Coordinate]int, error) {
	if g.state != stateIngesting {
		return nil, fmt.Errorf("EndpointCounts: index already materialized: %w", ErrBuildOrder)
	}

	return g.index.counts(), nil
}

// Nodes returns a snapshot of the coordinate to node mapping.
// Returns ErrBuildOrder before a successful Build.
func (g *Generator) Nodes() (map[geom.Coordinate]Node, error) {
	if err := g.requireBuilt("Nodes"); err != nil {
		return nil, err
	}

	return g.index.nodes(), nil
}
