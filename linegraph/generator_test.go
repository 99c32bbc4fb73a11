// SPDX-License-Identifier: MIT

package linegraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/linegraph/assembly"
	"github.com/katalvlaran/linegraph/builder"
	"github.com/katalvlaran/linegraph/geom"
	"github.com/katalvlaran/linegraph/linegraph"
)

var (
	ptA = geom.XY(0, 0)
	ptB = geom.XY(1, 0)
	ptC = geom.XY(1, 1)
	ptD = geom.XY(5, 5)
)

// GeneratorSuite runs every generator contract against one strategy.
type GeneratorSuite struct {
	suite.Suite
	newStrategy func() linegraph.Strategy
	gen         *linegraph.Generator
}

func (s *GeneratorSuite) SetupTest() {
	g, err := linegraph.NewGenerator(s.newStrategy())
	s.Require().NoError(err)
	s.gen = g
}

func (s *GeneratorSuite) ingest(segs ...geom.Segment) {
	s.Require().NoError(s.gen.IngestAll(segs...))
}

func (s *GeneratorSuite) build() linegraph.Graph {
	s.Require().NoError(s.gen.Build())
	g, err := s.gen.Graph()
	s.Require().NoError(err)

	return g
}

func (s *GeneratorSuite) degreeAt(c geom.Coordinate) int {
	n, ok, err := s.gen.NodeAt(c)
	s.Require().NoError(err)
	s.Require().True(ok, "node at %s", c)
	s.Require().Equal(c, n.Coordinate())

	return n.Degree()
}

// TestDuplicateScenario: (A,B), (B,C), (A,B) gives 3 nodes, degrees 2/3/1, 3 edges.
func (s *GeneratorSuite) TestDuplicateScenario() {
	s.ingest(geom.Seg(ptA, ptB), geom.Seg(ptB, ptC), geom.Seg(ptA, ptB))
	g := s.build()

	s.Equal(3, g.NodeCount())
	s.Equal(3, g.EdgeCount())
	s.Equal(2, s.degreeAt(ptA))
	s.Equal(3, s.degreeAt(ptB))
	s.Equal(1, s.degreeAt(ptC))

	na, _, _ := s.gen.NodeAt(ptA)
	nb, _, _ := s.gen.NodeAt(ptB)
	between := 0
	for _, e := range g.Edges() {
		x, y := e.Endpoints()
		if (x == na && y == nb) || (x == nb && y == na) {
			between++
		}
	}
	s.Equal(2, between, "duplicate segments must produce two A-B edges")

	// Some A-B edge is returned; which one is unspecified.
	e, ok, err := s.gen.EdgeFor(geom.Seg(ptA, ptB))
	s.Require().NoError(err)
	s.Require().True(ok)
	x, y := e.Endpoints()
	s.ElementsMatch([]linegraph.Node{na, nb}, []linegraph.Node{x, y})
}

// TestSelfLoop: (A,A) gives one node of degree 2 and one A-A edge.
func (s *GeneratorSuite) TestSelfLoop() {
	s.ingest(geom.Seg(ptA, ptA))
	g := s.build()

	s.Equal(1, g.NodeCount())
	s.Equal(1, g.EdgeCount())
	s.Equal(2, s.degreeAt(ptA))

	e, ok, err := s.gen.EdgeBetween(ptA, ptA)
	s.Require().NoError(err)
	s.Require().True(ok)
	x, y := e.Endpoints()
	s.Same(x, y)
	s.Equal(1, linegraph.Summarize(g).SelfLoops)
}

// TestAbsentLookups: never-ingested coordinates and pairs report ok=false, not an error.
func (s *GeneratorSuite) TestAbsentLookups() {
	s.ingest(geom.Seg(ptA, ptB), geom.Seg(ptB, ptC))
	s.build()

	n, ok, err := s.gen.NodeAt(ptD)
	s.NoError(err)
	s.False(ok)
	s.Nil(n)

	_, ok, err = s.gen.EdgeFor(geom.Seg(ptA, ptD))
	s.NoError(err)
	s.False(ok)

	// Both endpoints exist but no segment joins them.
	_, ok, err = s.gen.EdgeFor(geom.Seg(ptA, ptC))
	s.NoError(err)
	s.False(ok)

	_, ok, err = s.gen.EdgeBetween(ptD, ptA)
	s.NoError(err)
	s.False(ok)
}

// TestEdgeForUsesBothEndpoints guards against resolving p0 twice: with a
// loop at A and an A-B segment, EdgeFor(A,B) must return the A-B edge.
func (s *GeneratorSuite) TestEdgeForUsesBothEndpoints() {
	s.ingest(geom.Seg(ptA, ptA), geom.Seg(ptA, ptB))
	s.build()

	e, ok, err := s.gen.EdgeFor(geom.Seg(ptA, ptB))
	s.Require().NoError(err)
	s.Require().True(ok)
	x, y := e.Endpoints()
	s.NotSame(x, y)

	// Reverse orientation resolves to an edge between the same nodes.
	r, ok, err := s.gen.EdgeFor(geom.Seg(ptB, ptA))
	s.Require().NoError(err)
	s.Require().True(ok)
	rx, ry := r.Endpoints()
	s.ElementsMatch([]linegraph.Node{x, y}, []linegraph.Node{rx, ry})
}

// TestIdempotentLookupAndCoverage: every endpoint resolves to a stable node; no extras.
func (s *GeneratorSuite) TestIdempotentLookupAndCoverage() {
	segs := []geom.Segment{
		geom.Seg(ptA, ptB), geom.Seg(ptB, ptC), geom.Seg(ptC, ptD), geom.Seg(ptD, ptA),
	}
	s.ingest(segs...)
	g := s.build()

	for _, seg := range segs {
		for _, c := range []geom.Coordinate{seg.P0, seg.P1} {
			first, ok, err := s.gen.NodeAt(c)
			s.Require().NoError(err)
			s.Require().True(ok)
			again, _, _ := s.gen.NodeAt(c)
			s.Same(first, again)
		}
	}
	s.Equal(4, g.NodeCount())

	nodes, err := s.gen.Nodes()
	s.Require().NoError(err)
	s.Len(nodes, 4)
	for c, n := range nodes {
		s.Equal(c, n.Coordinate())
		s.Equal(2, n.Degree())
	}
}

// TestBuildOrder covers double build, ingest after build and queries before build.
func (s *GeneratorSuite) TestBuildOrder() {
	_, _, err := s.gen.NodeAt(ptA)
	s.ErrorIs(err, linegraph.ErrBuildOrder)
	_, _, err = s.gen.EdgeFor(geom.Seg(ptA, ptB))
	s.ErrorIs(err, linegraph.ErrBuildOrder)
	_, _, err = s.gen.EdgeBetween(ptA, ptB)
	s.ErrorIs(err, linegraph.ErrBuildOrder)
	_, err = s.gen.Graph()
	s.ErrorIs(err, linegraph.ErrBuildOrder)
	_, err = s.gen.Nodes()
	s.ErrorIs(err, linegraph.ErrBuildOrder)
	s.False(s.gen.Built())

	s.ingest(geom.Seg(ptA, ptB))
	s.build()
	s.True(s.gen.Built())

	s.ErrorIs(s.gen.Build(), linegraph.ErrBuildOrder)
	s.ErrorIs(s.gen.Ingest(geom.Seg(ptB, ptC)), linegraph.ErrBuildOrder)
	_, err = s.gen.EndpointCounts()
	s.ErrorIs(err, linegraph.ErrBuildOrder)

	// The graph survives the rejected second build untouched.
	g, err := s.gen.Graph()
	s.Require().NoError(err)
	s.Equal(1, g.EdgeCount())
}

// TestEmptyBuild produces an empty graph.
func (s *GeneratorSuite) TestEmptyBuild() {
	g := s.build()
	s.Equal(0, g.NodeCount())
	s.Equal(0, g.EdgeCount())
	s.Empty(g.Nodes())
}

// TestInvalidSegment rejects non-finite endpoints without recording them.
func (s *GeneratorSuite) TestInvalidSegment() {
	s.ingest(geom.Seg(ptA, ptB))

	bad := []geom.Segment{
		geom.Seg(geom.XY(math.NaN(), 0), ptB),
		geom.Seg(ptA, geom.XY(0, math.Inf(1))),
		geom.Seg(geom.XY(math.Inf(-1), math.NaN()), ptA),
	}
	for _, seg := range bad {
		err := s.gen.Ingest(seg)
		s.ErrorIs(err, linegraph.ErrInvalidSegment)
		s.ErrorIs(err, geom.ErrNonFinite)
	}

	s.Equal(1, s.gen.SegmentCount())
	counts, err := s.gen.EndpointCounts()
	s.Require().NoError(err)
	s.Equal(map[geom.Coordinate]int{ptA: 1, ptB: 1}, counts)

	// Recovery: a corrected segment is accepted.
	s.NoError(s.gen.Ingest(geom.Seg(ptA, ptC)))
	s.Equal(2, s.build().EdgeCount())
}

// TestIngestAllStopsAtFirstRejection keeps the prefix and reports the index.
func (s *GeneratorSuite) TestIngestAllStopsAtFirstRejection() {
	err := s.gen.IngestAll(
		geom.Seg(ptA, ptB),
		geom.Seg(ptB, geom.XY(math.NaN(), 1)),
		geom.Seg(ptB, ptC),
	)
	s.Require().ErrorIs(err, linegraph.ErrInvalidSegment)
	s.Contains(err.Error(), "segment 1")
	s.Equal([]geom.Segment{geom.Seg(ptA, ptB)}, s.gen.Segments())
}

// TestRemoveUnsupported is permanent, before and after build.
func (s *GeneratorSuite) TestRemoveUnsupported() {
	seg := geom.Seg(ptA, ptB)
	s.ErrorIs(s.gen.Remove(seg), linegraph.ErrUnsupported)
	s.ingest(seg)
	s.build()
	s.ErrorIs(s.gen.Remove(seg), linegraph.ErrUnsupported)
}

// TestEndpointCountsMatchDegrees: the pre-build count equals the post-build degree.
func (s *GeneratorSuite) TestEndpointCountsMatchDegrees() {
	s.ingest(
		geom.Seg(ptA, ptB), geom.Seg(ptB, ptB), geom.Seg(ptB, ptC),
		geom.Seg(ptC, ptA), geom.Seg(ptD, ptD), geom.Seg(ptD, ptA),
	)
	counts, err := s.gen.EndpointCounts()
	s.Require().NoError(err)
	s.Equal(map[geom.Coordinate]int{ptA: 3, ptB: 4, ptC: 2, ptD: 3}, counts)

	g := s.build()
	for c, want := range counts {
		s.Equal(want, s.degreeAt(c), "degree at %s", c)
	}
	s.Equal(6, g.EdgeCount())

	sum := linegraph.Summarize(g)
	s.Equal(4, sum.MaxDegree)
	s.Equal(2, sum.SelfLoops)
	s.Equal(map[int]int{2: 1, 3: 2, 4: 1}, sum.DegreeHistogram)
	s.Equal([]int{2, 3, 4}, sum.Degrees())
}

// TestReset allows a fresh build with a new strategy.
func (s *GeneratorSuite) TestReset() {
	s.ingest(geom.Seg(ptA, ptB))
	first := s.build()

	s.ErrorIs(s.gen.Reset(nil), linegraph.ErrNilStrategy)
	s.Require().NoError(s.gen.Reset(s.newStrategy()))
	s.False(s.gen.Built())
	s.Equal(0, s.gen.SegmentCount())

	s.ingest(geom.Seg(ptC, ptD), geom.Seg(ptD, ptA))
	second := s.build()
	s.Equal(2, second.EdgeCount())
	s.Equal(1, first.EdgeCount(), "previous graph is left untouched")
}

// TestResetRejectsUsedStrategy keeps the built graph at one node per
// coordinate and one edge per segment.
func (s *GeneratorSuite) TestResetRejectsUsedStrategy() {
	bound := s.gen.Strategy()
	s.ingest(geom.Seg(ptA, ptB))
	first := s.build()

	err := s.gen.Reset(bound)
	s.ErrorIs(err, linegraph.ErrStrategyInUse)
	s.True(s.gen.Built(), "rejected Reset leaves the generator untouched")
	s.Same(bound, s.gen.Strategy())

	_, err = linegraph.NewGenerator(bound)
	s.ErrorIs(err, linegraph.ErrStrategyInUse)

	fresh := s.newStrategy()
	s.Require().NoError(s.gen.Reset(fresh))
	s.Same(fresh, s.gen.Strategy())
	s.ingest(geom.Seg(ptD, geom.XY(6, 6)))
	second := s.build()
	s.Equal(2, second.NodeCount())
	s.Equal(1, second.EdgeCount())
	s.Equal(2, first.NodeCount())
}

// TestResetReusesEmptyStrategy: nothing was allocated, so rebinding is safe.
func (s *GeneratorSuite) TestResetReusesEmptyStrategy() {
	bound := s.gen.Strategy()
	s.build()
	s.Require().NoError(s.gen.Reset(bound))
	s.ingest(geom.Seg(ptA, ptB))
	s.Equal(1, s.build().EdgeCount())
}

// TestSegmentsPreserveOrder returns a defensive copy in insertion order.
func (s *GeneratorSuite) TestSegmentsPreserveOrder() {
	in := []geom.Segment{geom.Seg(ptC, ptB), geom.Seg(ptA, ptB), geom.Seg(ptC, ptB)}
	s.ingest(in...)

	out := s.gen.Segments()
	s.Equal(in, out)
	out[0] = geom.Seg(ptD, ptD)
	s.Equal(in, s.gen.Segments())

	// Edge allocation follows ingestion order.
	g := s.build()
	for i, e := range g.Edges() {
		x, y := e.Endpoints()
		s.Equal(in[i].P0, x.Coordinate())
		s.Equal(in[i].P1, y.Coordinate())
	}
}

func TestGeneratorSuite_Opt(t *testing.T) {
	suite.Run(t, &GeneratorSuite{newStrategy: func() linegraph.Strategy { return assembly.NewOpt() }})
}

func TestGeneratorSuite_Adjacency(t *testing.T) {
	suite.Run(t, &GeneratorSuite{newStrategy: func() linegraph.Strategy { return assembly.NewAdjacency() }})
}

func TestNewGenerator_NilStrategy(t *testing.T) {
	_, err := linegraph.NewGenerator(nil)
	require.ErrorIs(t, err, linegraph.ErrNilStrategy)
}

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	require.Panics(t, func() { linegraph.WithLogger(nil) })
	require.Panics(t, func() { linegraph.WithMetrics(nil) })
	require.Panics(t, func() { linegraph.WithCapacity(-1) })
	require.NotPanics(t, func() { linegraph.WithCapacity(0) })
}

// TestStrategySwapPreservesTopology builds the same input with both strategies.
func TestStrategySwapPreservesTopology(t *testing.T) {
	segs := []geom.Segment{
		geom.Seg(ptA, ptB), geom.Seg(ptB, ptC), geom.Seg(ptA, ptB),
		geom.Seg(ptC, ptC), geom.Seg(ptC, ptD), geom.Seg(ptD, ptA),
	}
	degrees := func(s linegraph.Strategy) (map[geom.Coordinate]int, int) {
		g, err := linegraph.NewGenerator(s, linegraph.WithCapacity(len(segs)))
		require.NoError(t, err)
		require.NoError(t, g.IngestAll(segs...))
		require.NoError(t, g.Build())
		nodes, err := g.Nodes()
		require.NoError(t, err)
		out := make(map[geom.Coordinate]int, len(nodes))
		for c, n := range nodes {
			out[c] = n.Degree()
		}
		graph, err := g.Graph()
		require.NoError(t, err)

		return out, graph.EdgeCount()
	}

	optDeg, optEdges := degrees(assembly.NewOpt())
	adjDeg, adjEdges := degrees(assembly.NewAdjacency())
	require.Equal(t, optDeg, adjDeg)
	require.Equal(t, optEdges, adjEdges)
	require.Equal(t, len(segs), optEdges)
}

// TestIngestionOrderDoesNotChangeTopology shuffles and flips a street grid.
func TestIngestionOrderDoesNotChangeTopology(t *testing.T) {
	cons := []builder.Constructor{builder.Grid(5, 6), builder.Duplicate(2, builder.Path(3)), builder.SelfLoop()}
	plain, err := builder.BuildSegments(nil, cons...)
	require.NoError(t, err)
	shuffled, err := builder.BuildSegments([]builder.BuilderOption{builder.WithSeed(99)}, cons...)
	require.NoError(t, err)

	summarize := func(segs []geom.Segment) linegraph.Summary {
		g, err := linegraph.NewGenerator(assembly.NewOpt())
		require.NoError(t, err)
		require.NoError(t, g.IngestAll(segs...))
		require.NoError(t, g.Build())
		graph, err := g.Graph()
		require.NoError(t, err)
		return linegraph.Summarize(graph)
	}

	a, b := summarize(plain), summarize(shuffled)
	require.Equal(t, a, b)
	require.Equal(t, 30, a.NodeCount)
	require.Equal(t, 5*5+6*4+2*2+1, a.EdgeCount)
	require.Equal(t, 1, a.SelfLoops)
}

// failingStrategy fails on the n-th edge allocation.
type failingStrategy struct {
	linegraph.Strategy
	failAt int
	edges  int
}

var errBoom = errors.New("boom")

func (f *failingStrategy) AllocateEdge(a, b linegraph.Node) (linegraph.Edge, error) {
	f.edges++
	if f.edges == f.failAt {
		return nil, errBoom
	}

	return f.Strategy.AllocateEdge(a, b)
}

func TestBuild_AllocationFailureLeavesGeneratorFailed(t *testing.T) {
	fs := &failingStrategy{Strategy: assembly.NewOpt(), failAt: 2}
	g, err := linegraph.NewGenerator(fs)
	require.NoError(t, err)
	require.NoError(t, g.IngestAll(geom.Seg(ptA, ptB), geom.Seg(ptB, ptC)))

	err = g.Build()
	require.ErrorIs(t, err, linegraph.ErrAllocation)
	require.ErrorIs(t, err, errBoom)
	require.Contains(t, err.Error(), "segment 1")
	require.False(t, g.Built())

	require.ErrorIs(t, g.Build(), linegraph.ErrBuildOrder)
	_, _, err = g.NodeAt(ptA)
	require.ErrorIs(t, err, linegraph.ErrBuildOrder)

	require.ErrorIs(t, g.Reset(fs), linegraph.ErrStrategyInUse, "partially built strategy")
	require.NoError(t, g.Reset(assembly.NewOpt()))
	require.NoError(t, g.IngestAll(geom.Seg(ptA, ptB), geom.Seg(ptB, ptC)))
	require.NoError(t, g.Build())
}

// vetoingStrategy builds normally and then fails verification.
type vetoingStrategy struct {
	linegraph.Strategy
}

func (vetoingStrategy) Verify() error { return errBoom }

func TestBuild_VerifyFailureLeavesGeneratorFailed(t *testing.T) {
	g, err := linegraph.NewGenerator(vetoingStrategy{Strategy: assembly.NewAdjacency()})
	require.NoError(t, err)
	require.NoError(t, g.Ingest(geom.Seg(ptA, ptB)))

	err = g.Build()
	require.ErrorIs(t, err, linegraph.ErrAllocation)
	require.ErrorIs(t, err, errBoom)
	require.False(t, g.Built())
	_, err = g.Graph()
	require.ErrorIs(t, err, linegraph.ErrBuildOrder)
}
