// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/graphalg/graph"
)

// classicNetwork is the six-vertex network with maximum flow 19.
func classicNetwork() (*graph.Index, graph.SliceIntWeights, int, int) {
	// 0=s 1=a 2=b 3=c 4=d 5=t
	g := graph.NewIndexDirected(6)
	g.AddEdge(0, 1) // s→a 10
	g.AddEdge(0, 2) // s→b 10
	g.AddEdge(1, 3) // a→c 4
	g.AddEdge(1, 4) // a→d 8
	g.AddEdge(2, 3) // b→c 9
	g.AddEdge(3, 5) // c→t 10
	g.AddEdge(4, 5) // d→t 10
	g.AddEdge(2, 4) // b→d 6
	caps := graph.SliceIntWeights{10, 10, 4, 8, 9, 10, 10, 6}
	return g, caps, 0, 5
}

// checkFeasible asserts capacity bounds and conservation away from
// the terminals.
func checkFeasible(t *testing.T, g graph.IndexGraph, caps graph.Weights, f *Flow, source, sink int) {
	t.Helper()
	for e := 0; e < g.NumEdges(); e++ {
		assert.GreaterOrEqual(t, f.Flow(e), 0.0, "edge %d below zero", e)
		assert.LessOrEqual(t, f.Flow(e), caps.Weight(e), "edge %d above capacity", e)
	}
	net := make([]float64, g.NumVertices())
	for e := 0; e < g.NumEdges(); e++ {
		net[g.Source(e)] -= f.Flow(e)
		net[g.Target(e)] += f.Flow(e)
	}
	for v := range net {
		if v == source || v == sink {
			continue
		}
		assert.InDelta(t, 0, net[v], 1e-9, "conservation violated at %d", v)
	}
}

func TestMaximumClassicNetwork(t *testing.T) {
	g, caps, s, snk := classicNetwork()
	f, err := MaximumIndex(g, s, snk, caps)
	require.NoError(t, err)
	assert.Equal(t, 19.0, f.Value())
	checkFeasible(t, g, caps, f, s, snk)
}

func TestMaximumFloatCapacities(t *testing.T) {
	g, icaps, s, snk := classicNetwork()
	caps := make(graph.SliceWeights, len(icaps))
	for i, c := range icaps {
		caps[i] = float64(c)
	}
	f, err := MaximumIndex(g, s, snk, caps)
	require.NoError(t, err)
	assert.InDelta(t, 19.0, f.Value(), 1e-6)
	checkFeasible(t, g, caps, f, s, snk)
}

func TestMaximumUndirected(t *testing.T) {
	// A path with a parallel detour: 0-1-2 plus 0-2.
	g := graph.NewIndexUndirected(3)
	g.AddEdge(0, 1) // 3
	g.AddEdge(1, 2) // 2
	g.AddEdge(0, 2) // 4
	caps := graph.SliceIntWeights{3, 2, 4}
	f, err := MaximumIndex(g, 0, 2, caps)
	require.NoError(t, err)
	assert.Equal(t, 6.0, f.Value())
	for e := 0; e < g.NumEdges(); e++ {
		assert.LessOrEqual(t, abs(f.Flow(e)), caps.Weight(e), "edge %d above capacity", e)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestMinCutClassicNetwork(t *testing.T) {
	g, caps, s, snk := classicNetwork()
	cut, err := MinCutIndex(g, s, snk, caps)
	require.NoError(t, err)
	assert.Equal(t, 19.0, cut.Weight())
	assert.True(t, cut.InSourceSide(s))
	assert.False(t, cut.InSourceSide(snk))
	assert.NotEmpty(t, cut.Edges())
}

func TestResidualView(t *testing.T) {
	g := graph.NewIndexDirected(2)
	g.AddEdge(0, 1)
	caps := graph.SliceIntWeights{5}
	f, err := MaximumIndex(g, 0, 1, caps)
	require.NoError(t, err)
	assert.Equal(t, 5.0, f.Value())
	r := f.Residual(caps)
	assert.Equal(t, 0.0, r.Forward(0))
	assert.Equal(t, 5.0, r.Backward(0))
}

func TestMinCostMaxFlow(t *testing.T) {
	// 0=s, 1=a, 2=b, 3=t. Two routes of capacity 2 each.
	g := graph.NewIndexDirected(4)
	g.AddEdge(0, 1) // cap 2 cost 1
	g.AddEdge(0, 2) // cap 2 cost 2
	g.AddEdge(1, 3) // cap 2 cost 1
	g.AddEdge(2, 3) // cap 2 cost 1
	caps := graph.SliceIntWeights{2, 2, 2, 2}
	costs := graph.SliceIntWeights{1, 2, 1, 1}

	f, err := MinCostMaxFlowIndex(g, 0, 3, caps, costs)
	require.NoError(t, err)
	assert.Equal(t, 4.0, f.Value())
	var total float64
	for e := 0; e < g.NumEdges(); e++ {
		total += f.Flow(e) * costs.Weight(e)
	}
	assert.Equal(t, 10.0, total)
	checkFeasible(t, g, caps, f, 0, 3)
}

func TestMinCostFlowSupplies(t *testing.T) {
	// Supply 3 at vertex 0, demand 3 at vertex 2, two routes.
	g := graph.NewIndexDirected(3)
	g.AddEdge(0, 1) // cap 5 cost 1
	g.AddEdge(1, 2) // cap 5 cost 1
	g.AddEdge(0, 2) // cap 2 cost 5
	caps := graph.SliceIntWeights{5, 5, 2}
	costs := graph.SliceIntWeights{1, 1, 5}

	f, err := MinCostFlowIndex(g, caps, costs, nil, []float64{3, 0, -3})
	require.NoError(t, err)
	checkFeasible(t, g, caps, f, 0, 2)
	// The cheap two-hop route carries everything.
	assert.Equal(t, 3.0, f.Flow(0))
	assert.Equal(t, 3.0, f.Flow(1))
	assert.Equal(t, 0.0, f.Flow(2))
}

func TestMinCostFlowLowerBounds(t *testing.T) {
	// The expensive direct edge has a lower bound of 1.
	g := graph.NewIndexDirected(3)
	g.AddEdge(0, 1) // cap 5 cost 1
	g.AddEdge(1, 2) // cap 5 cost 1
	g.AddEdge(0, 2) // cap 2 cost 5, lb 1
	caps := graph.SliceIntWeights{5, 5, 2}
	costs := graph.SliceIntWeights{1, 1, 5}
	lb := graph.SliceIntWeights{0, 0, 1}

	f, err := MinCostFlowIndex(g, caps, costs, lb, []float64{3, 0, -3})
	require.NoError(t, err)
	checkFeasible(t, g, caps, f, 0, 2)
	assert.Equal(t, 1.0, f.Flow(2))
	assert.Equal(t, 2.0, f.Flow(0))
	assert.Equal(t, 2.0, f.Flow(1))
}

func TestMinCostFlowArgumentErrors(t *testing.T) {
	g := graph.NewIndexDirected(2)
	g.AddEdge(0, 1)
	caps := graph.SliceIntWeights{1}
	costs := graph.SliceIntWeights{1}

	var argErr graph.ArgumentError
	_, err := MinCostFlowIndex(g, caps, costs, nil, []float64{1, 0})
	assert.ErrorAs(t, err, &argErr, "supply mismatch should be rejected")

	_, err = MinCostFlowIndex(g, caps, costs, graph.SliceIntWeights{2}, []float64{0, 0})
	assert.ErrorAs(t, err, &argErr, "lower bound above capacity should be rejected")

	_, err = MinCostFlowIndex(g, caps, costs, nil, []float64{3, -3})
	assert.ErrorAs(t, err, &argErr, "infeasible supply should be rejected")
}

func TestMaximumArgumentErrors(t *testing.T) {
	g := graph.NewIndexDirected(2)
	g.AddEdge(0, 1)

	var argErr graph.ArgumentError
	_, err := MaximumIndex(g, 0, 0, nil)
	assert.ErrorAs(t, err, &argErr, "equal terminals should be rejected")

	_, err = MaximumIndex(g, 0, 1, graph.SliceIntWeights{-1})
	assert.ErrorAs(t, err, &argErr, "negative capacity should be rejected")
}
