// SPDX-License-Identifier: MIT

package assembly_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linegraph/assembly"
	"github.com/katalvlaran/linegraph/geom"
)

var (
	ptA = geom.XY(0, 0)
	ptB = geom.XY(1, 0)
	ptC = geom.XY(1, 1)
)

func TestOpt_FixedCapacity(t *testing.T) {
	s := assembly.NewOpt()
	a, err := s.AllocateNode(ptA, 1)
	require.NoError(t, err)
	b, err := s.AllocateNode(ptB, 2)
	require.NoError(t, err)

	_, err = s.AllocateEdge(a, b)
	require.NoError(t, err)

	// a has no free slot left.
	_, err = s.AllocateEdge(a, b)
	require.ErrorIs(t, err, assembly.ErrDegreeExceeded)

	ob := b.(*assembly.OptNode)
	assert.Equal(t, 1, ob.Free())
	assert.Len(t, ob.Edges(), 1)
	assert.Equal(t, "n2", ob.ID())
	assert.Equal(t, 1, s.Graph().EdgeCount(), "failed attach must not register an edge")
}

func TestOpt_SelfLoopTakesTwoSlots(t *testing.T) {
	s := assembly.NewOpt()
	one, err := s.AllocateNode(ptA, 1)
	require.NoError(t, err)
	_, err = s.AllocateEdge(one, one)
	require.ErrorIs(t, err, assembly.ErrDegreeExceeded)

	two, err := s.AllocateNode(ptB, 2)
	require.NoError(t, err)
	e, err := s.AllocateEdge(two, two)
	require.NoError(t, err)

	on := two.(*assembly.OptNode)
	assert.Equal(t, 0, on.Free())
	got, ok := s.Graph().EdgeBetween(two, two)
	require.True(t, ok)
	assert.Same(t, e, got)
}

func TestOpt_EdgeBetween(t *testing.T) {
	s := assembly.NewOpt()
	a, _ := s.AllocateNode(ptA, 2)
	b, _ := s.AllocateNode(ptB, 3)
	c, _ := s.AllocateNode(ptC, 1)
	ab1, err := s.AllocateEdge(a, b)
	require.NoError(t, err)
	ab2, err := s.AllocateEdge(b, a)
	require.NoError(t, err)
	_, err = s.AllocateEdge(b, c)
	require.NoError(t, err)

	g := s.Graph()
	e, ok := g.EdgeBetween(b, a)
	require.True(t, ok)
	assert.Contains(t, []interface{}{ab1, ab2}, e)

	_, ok = g.EdgeBetween(a, c)
	assert.False(t, ok)
	_, ok = g.EdgeBetween(a, a)
	assert.False(t, ok)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.Nodes(), 3)
	assert.Len(t, g.Edges(), 3)
	assert.Equal(t, "e1", ab1.(*assembly.OptEdge).ID())
}

func TestOpt_Rejections(t *testing.T) {
	s := assembly.NewOpt()
	_, err := s.AllocateNode(ptA, -1)
	require.ErrorIs(t, err, assembly.ErrNegativeDegree)

	other := assembly.NewOpt()
	foreign, err := other.AllocateNode(ptA, 1)
	require.NoError(t, err)
	local, err := s.AllocateNode(ptB, 1)
	require.NoError(t, err)

	_, err = s.AllocateEdge(local, foreign)
	require.ErrorIs(t, err, assembly.ErrForeignNode)

	adj := assembly.NewAdjacency()
	adjNode, err := adj.AllocateNode(ptC, 1)
	require.NoError(t, err)
	_, err = s.AllocateEdge(adjNode, local)
	require.ErrorIs(t, err, assembly.ErrForeignNode)
	_, ok := s.Graph().EdgeBetween(adjNode, local)
	assert.False(t, ok)
}

func TestOpt_Verify(t *testing.T) {
	s := assembly.NewOpt()
	require.NoError(t, s.Verify(), "empty graph")

	a, _ := s.AllocateNode(ptA, 2)
	b, _ := s.AllocateNode(ptB, 1)
	_, err := s.AllocateEdge(a, b)
	require.NoError(t, err)
	require.ErrorIs(t, s.Verify(), assembly.ErrDegreeMismatch)

	c, _ := s.AllocateNode(ptC, 1)
	_, err = s.AllocateEdge(a, c)
	require.NoError(t, err)
	require.NoError(t, s.Verify())
}
