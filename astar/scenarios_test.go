package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/core"
)

// ScenarioSuite exercises the engine on small hand-checked geometries.
type ScenarioSuite struct {
	suite.Suite
}

// collinear builds A=(0,0,0), B=(1,0,0), C=(2,0,0) with unit-weight arcs
// A→B and B→C.
func (s *ScenarioSuite) collinear() (*core.Graph[string], *core.Node[string], *core.Node[string], *core.Node[string]) {
	g := core.NewGraph[string]()
	a := core.NewNode(pt(0, 0, 0), core.WithPayload("A"))
	b := core.NewNode(pt(1, 0, 0), core.WithPayload("B"))
	c := core.NewNode(pt(2, 0, 0), core.WithPayload("C"))
	for _, n := range []*core.Node[string]{a, b, c} {
		require.True(s.T(), g.AddNode(n))
	}
	_, err := g.AddArcBetween(a, b, 1)
	require.NoError(s.T(), err)
	_, err = g.AddArcBetween(b, c, 1)
	require.NoError(s.T(), err)

	return g, a, b, c
}

// diamond builds A=(0,0,0), B=(1,1,0), C=(1,−1,0), D=(2,0,0) with arcs
// A→B, A→C (weight 1), B→D (weight 1), C→D (weight cd).
func (s *ScenarioSuite) diamond(cd float64) (*core.Graph[string], *core.Node[string], *core.Node[string], *core.Node[string], *core.Node[string]) {
	g := core.NewGraph[string]()
	a := core.NewNode(pt(0, 0, 0), core.WithPayload("A"))
	b := core.NewNode(pt(1, 1, 0), core.WithPayload("B"))
	c := core.NewNode(pt(1, -1, 0), core.WithPayload("C"))
	d := core.NewNode(pt(2, 0, 0), core.WithPayload("D"))
	for _, n := range []*core.Node[string]{a, b, c, d} {
		require.True(s.T(), g.AddNode(n))
	}
	for _, arc := range []struct {
		u, v *core.Node[string]
		w    float64
	}{{a, b, 1}, {a, c, 1}, {b, d, 1}, {c, d, cd}} {
		_, err := g.AddArcBetween(arc.u, arc.v, arc.w)
		require.NoError(s.T(), err)
	}

	return g, a, b, c, d
}

// TestCollinear: the only path is A→B→C with cost 2.
func (s *ScenarioSuite) TestCollinear() {
	g, a, b, c := s.collinear()
	eng, err := astar.New(g)
	require.NoError(s.T(), err)

	found, err := eng.SearchPath(a, c)
	require.NoError(s.T(), err)
	require.True(s.T(), found)

	path, err := eng.PathByNodes()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []*core.Node[string]{a, b, c}, path)

	hops, cost, err := eng.ResultInformation()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, hops)
	require.InDelta(s.T(), 2.0, cost, 1e-12)
}

// TestCollinearWithDirectTie: a direct A→C arc of equal cost; either
// route is acceptable but the cost is pinned and the run deterministic.
func (s *ScenarioSuite) TestCollinearWithDirectTie() {
	g, a, _, c := s.collinear()
	_, err := g.AddArcBetween(a, c, 1) // length 2 ⇒ cost 2, ties the two-hop route
	require.NoError(s.T(), err)

	eng, err := astar.New(g)
	require.NoError(s.T(), err)

	run := func() (float64, []*core.Node[string]) {
		found, serr := eng.SearchPath(a, c)
		require.NoError(s.T(), serr)
		require.True(s.T(), found)
		_, cost, rerr := eng.ResultInformation()
		require.NoError(s.T(), rerr)
		path, perr := eng.PathByNodes()
		require.NoError(s.T(), perr)

		return cost, path
	}
	cost1, path1 := run()
	cost2, path2 := run()
	require.InDelta(s.T(), 2.0, cost1, 1e-12)
	require.Equal(s.T(), cost1, cost2)
	require.Equal(s.T(), path1, path2, "tie resolution must be deterministic")
}

// TestDiamond: the expensive C→D branch loses to A→B→D.
func (s *ScenarioSuite) TestDiamond() {
	g, a, b, _, d := s.diamond(100)
	eng, err := astar.New(g)
	require.NoError(s.T(), err)

	found, err := eng.SearchPath(a, d)
	require.NoError(s.T(), err)
	require.True(s.T(), found)

	path, err := eng.PathByNodes()
	require.NoError(s.T(), err)
	require.Equal(s.T(), []*core.Node[string]{a, b, d}, path)

	_, cost, err := eng.ResultInformation()
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 2*math.Sqrt2, cost, 1e-12)
}

// TestDisconnected: two nodes, no arcs.
func (s *ScenarioSuite) TestDisconnected() {
	g := core.NewGraph[string]()
	a := core.NewNode(pt(0, 0, 0), core.WithPayload("A"))
	b := core.NewNode(pt(1, 0, 0), core.WithPayload("B"))
	require.True(s.T(), g.AddNode(a))
	require.True(s.T(), g.AddNode(b))

	eng, err := astar.New(g)
	require.NoError(s.T(), err)

	found, err := eng.SearchPath(a, b)
	require.NoError(s.T(), err)
	require.False(s.T(), found)

	path, err := eng.PathByNodes()
	require.NoError(s.T(), err)
	require.Nil(s.T(), path)

	hops, cost, err := eng.ResultInformation()
	require.NoError(s.T(), err)
	require.Equal(s.T(), -1, hops)
	require.Equal(s.T(), -1.0, cost)
}

// TestImpassableIntermediate: marking B impassable cascades to both of
// its arcs, severing the only route.
func (s *ScenarioSuite) TestImpassableIntermediate() {
	g, a, b, c := s.collinear()
	b.SetPassable(false)

	eng, err := astar.New(g)
	require.NoError(s.T(), err)

	found, err := eng.SearchPath(a, c)
	require.NoError(s.T(), err)
	require.False(s.T(), found)
}

// TestBalanceExtremes: with both diamond branches at weight 1, pure
// Dijkstra and classical A* agree on the optimal cost, and pure greedy
// still reaches the target.
func (s *ScenarioSuite) TestBalanceExtremes() {
	want := 2 * math.Sqrt2
	for _, balance := range []float64{astar.BalanceDijkstra, astar.BalanceClassic} {
		g, a, _, _, d := s.diamond(1)
		eng, err := astar.New(g, astar.WithBalance[string](balance))
		require.NoError(s.T(), err)

		found, err := eng.SearchPath(a, d)
		require.NoError(s.T(), err)
		require.True(s.T(), found, "balance %g", balance)

		_, cost, err := eng.ResultInformation()
		require.NoError(s.T(), err)
		require.InDelta(s.T(), want, cost, 1e-12, "balance %g", balance)
	}

	g, a, _, _, d := s.diamond(1)
	eng, err := astar.New(g, astar.WithBalance[string](astar.BalanceGreedy))
	require.NoError(s.T(), err)
	found, err := eng.SearchPath(a, d)
	require.NoError(s.T(), err)
	require.True(s.T(), found, "greedy must still find a path")
	_, cost, err := eng.ResultInformation()
	require.NoError(s.T(), err)
	require.InDelta(s.T(), want, cost, 1e-12, "both diamond branches cost the same")
}

// TestHeuristicChoices: Manhattan and Chebyshev both solve the diamond.
func (s *ScenarioSuite) TestHeuristicChoices() {
	for name, h := range map[string]astar.Heuristic[string]{
		"manhattan": astar.Manhattan[string],
		"chebyshev": astar.Chebyshev[string],
	} {
		g, a, b, _, d := s.diamond(100)
		eng, err := astar.New(g, astar.WithHeuristic(h))
		require.NoError(s.T(), err)

		found, err := eng.SearchPath(a, d)
		require.NoError(s.T(), err)
		require.True(s.T(), found, name)

		path, err := eng.PathByNodes()
		require.NoError(s.T(), err)
		require.Equal(s.T(), []*core.Node[string]{a, b, d}, path, name)
	}
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}
