// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/linear"
)

// dagFrom computes a shortest-path tree by relaxation in topological
// order. Weights may be negative. The graph must be a directed acyclic
// graph.
//
// The time complexity is O(|V|+|E|).
func dagFrom(g graph.IndexGraph, source int, w graph.Weights) (*Tree, error) {
	if !g.Directed() {
		return nil, graph.DirectionError{Directed: true}
	}
	n := g.NumVertices()

	indeg := make([]int, n)
	for e := 0; e < g.NumEdges(); e++ {
		indeg[g.Target(e)]++
	}
	var queue linear.IntQueue
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue.Push(v)
		}
	}

	t := newTree(g, source)
	var sorted int
	for queue.Len() > 0 {
		u := queue.Pop()
		sorted++
		du := t.dist[u]
		for it := g.OutEdges(u); it.Next(); {
			e := it.Edge()
			v := it.Target()
			if !math.IsInf(du, 1) {
				if joint := du + w.Weight(e); joint < t.dist[v] {
					t.dist[v] = joint
					t.backtrack[v] = e
				}
			}
			if indeg[v]--; indeg[v] == 0 {
				queue.Push(v)
			}
		}
	}
	if sorted != n {
		return nil, graph.ArgumentError{Reason: "graph is not a DAG"}
	}
	return t, nil
}
