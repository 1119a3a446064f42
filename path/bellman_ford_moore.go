// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/graphalg/graph"
)

// NegativeCycleError is returned by shortest-path algorithms that
// permit negative weights when a negative cycle reachable from the
// source is detected. It carries the offending cycle.
type NegativeCycleError struct {
	Cycle *graph.Path
}

func (e NegativeCycleError) Error() string { return "path: negative cycle" }

// bellmanFordMoore computes a shortest-path tree allowing negative
// real edge weights by iterated relaxation. A reachable negative cycle
// is surfaced through NegativeCycleError.
//
// The time complexity is O(|V|.|E|).
func bellmanFordMoore(g graph.IndexGraph, source int, w graph.Weights) (*Tree, error) {
	t := newTree(g, source)
	n := g.NumVertices()
	m := g.NumEdges()
	directed := g.Directed()

	relax := func(e, u, v int, ew float64) bool {
		if math.IsInf(t.dist[u], 1) {
			return false
		}
		joint := t.dist[u] + ew
		if joint < t.dist[v] {
			t.dist[v] = joint
			t.backtrack[v] = e
			return true
		}
		return false
	}

	for round := 0; round < n-1; round++ {
		var changed bool
		for e := 0; e < m; e++ {
			u, v := g.Source(e), g.Target(e)
			ew := w.Weight(e)
			if !directed && ew < 0 && u != v {
				// Traversing a negative undirected edge both ways is
				// already a negative cycle.
				if !math.IsInf(t.dist[u], 1) || !math.IsInf(t.dist[v], 1) {
					from := u
					if math.IsInf(t.dist[u], 1) {
						from = v
					}
					return nil, NegativeCycleError{Cycle: graph.NewPath(g, from, from, []int{e, e})}
				}
				continue
			}
			if relax(e, u, v, ew) {
				changed = true
			}
			if !directed {
				if relax(e, v, u, ew) {
					changed = true
				}
			}
		}
		if !changed {
			return t, nil
		}
	}

	// One more sweep: any improvement witnesses a negative cycle.
	for e := 0; e < m; e++ {
		u, v := g.Source(e), g.Target(e)
		ew := w.Weight(e)
		if relax(e, u, v, ew) {
			return nil, NegativeCycleError{Cycle: extractCycle(g, t, v)}
		}
		if !directed && relax(e, v, u, ew) {
			return nil, NegativeCycleError{Cycle: extractCycle(g, t, u)}
		}
	}
	return t, nil
}

// extractCycle walks the backtrack pointers from a vertex improved in
// the extra relaxation sweep. After n steps the walk is inside a
// negative cycle, which is then collected until it closes.
func extractCycle(g graph.IndexGraph, t *Tree, v int) *graph.Path {
	n := g.NumVertices()
	x := v
	for i := 0; i < n; i++ {
		x = backtrackPrev(g, t, x)
	}
	var rev []int
	start := x
	for {
		e := t.backtrack[x]
		rev = append(rev, e)
		x = backtrackPrev(g, t, x)
		if x == start {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return graph.NewPath(g, start, start, rev)
}

func backtrackPrev(g graph.IndexGraph, t *Tree, v int) int {
	e := t.backtrack[v]
	if g.Directed() {
		return g.Source(e)
	}
	return g.Endpoint(e, v)
}
