// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cores

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/graphalg/graph"
)

func TestDecomposeTriangleWithTail(t *testing.T) {
	// A triangle 0-1-2 with a tail 0-3-4.
	g := graph.NewIndexUndirected(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(0, 3)
	g.AddEdge(3, 4)

	d := DecomposeIndex(g, AllDegrees)
	want := []int{2, 2, 2, 1, 1}
	for v, c := range want {
		assert.Equal(t, c, d.CoreNumber(v), "core number of %d", v)
	}
	assert.Equal(t, 2, d.MaxCore())

	core2 := append([]int(nil), d.Core(2)...)
	sort.Ints(core2)
	assert.Equal(t, []int{0, 1, 2}, core2)

	shell1 := append([]int(nil), d.Shell(1)...)
	sort.Ints(shell1)
	assert.Equal(t, []int{3, 4}, shell1)
}

func TestDecomposeClique(t *testing.T) {
	const n = 5
	g := graph.NewIndexUndirected(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	d := DecomposeIndex(g, AllDegrees)
	for v := 0; v < n; v++ {
		require.Equal(t, n-1, d.CoreNumber(v), "clique vertex %d", v)
	}
}

func TestDecomposeCoreProperty(t *testing.T) {
	// In the subgraph induced by {v : core(v) >= k} every vertex has
	// at least k neighbours inside it.
	g := graph.NewIndexUndirected(7)
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 5}, {5, 3}, {5, 6}}
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	d := DecomposeIndex(g, AllDegrees)
	for k := 1; k <= d.MaxCore(); k++ {
		in := make(map[int]bool)
		for _, v := range d.Core(k) {
			in[v] = true
		}
		for _, v := range d.Core(k) {
			deg := 0
			for it := g.OutEdges(v); it.Next(); {
				if in[it.Target()] {
					deg++
				}
			}
			assert.GreaterOrEqual(t, deg, k, "vertex %d in %d-core", v, k)
		}
	}
}

func TestDecomposeDirected(t *testing.T) {
	// A directed 3-cycle: out- and in-degree cores are 1, total 2.
	g := graph.NewIndexDirected(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	for _, tc := range []struct {
		dir  Direction
		want int
	}{
		{dir: OutDegrees, want: 1},
		{dir: InDegrees, want: 1},
		{dir: AllDegrees, want: 2},
	} {
		d := DecomposeIndex(g, tc.dir)
		for v := 0; v < 3; v++ {
			assert.Equal(t, tc.want, d.CoreNumber(v), "direction %d vertex %d", tc.dir, v)
		}
	}
}
