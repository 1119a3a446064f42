// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/bitset"
)

// goldbergRadzik computes a shortest-path tree allowing negative edge
// weights using Goldberg and Radzik's topological-scan method: each
// pass grows the set of labelled vertices along admissible edges in
// depth-first postorder and relaxes them in topological order, which
// in practice performs far fewer relaxations than round-robin
// Bellman-Ford on the integer-weighted graphs it is selected for.
//
// A pass count exceeding |V| witnesses a reachable negative cycle; the
// cycle itself is then extracted by the Bellman-Ford machinery.
func goldbergRadzik(g graph.IndexGraph, source int, w graph.Weights) (*Tree, error) {
	if !g.Directed() {
		// Negative undirected edges degenerate to two-edge cycles;
		// the round-robin relaxation handles and reports them.
		return bellmanFordMoore(g, source, w)
	}
	t := newTree(g, source)
	n := g.NumVertices()

	b := []int{source}
	inB := bitset.New(n)
	inB.Set(source)
	inA := bitset.New(n)
	var a []int // reverse DFS postorder, rebuilt each pass

	for pass := 0; len(b) > 0; pass++ {
		if pass > n+1 {
			// Still improving after n passes: a negative cycle is
			// reachable. Delegate for exact cycle extraction.
			return bellmanFordMoore(g, source, w)
		}
		a = a[:0]
		inA.Reset()
		for _, u := range b {
			if !inA.Has(u) && hasNegativeReducedEdge(g, t, w, u) {
				postorderAdmissible(g, t, w, u, inA, &a)
			}
		}
		b = b[:0]
		inB.Reset()
		// a holds postorder; scan in reverse for topological order.
		for i := len(a) - 1; i >= 0; i-- {
			u := a[i]
			du := t.dist[u]
			if math.IsInf(du, 1) {
				continue
			}
			for it := g.OutEdges(u); it.Next(); {
				e := it.Edge()
				v := it.Target()
				joint := du + w.Weight(e)
				if joint < t.dist[v] {
					t.dist[v] = joint
					t.backtrack[v] = e
					if !inB.Has(v) {
						inB.Set(v)
						b = append(b, v)
					}
				}
			}
		}
	}
	return t, nil
}

// hasNegativeReducedEdge reports whether u has an out-edge that can
// still strictly improve its head, the Goldberg-Radzik pruning of the
// candidate set.
func hasNegativeReducedEdge(g graph.IndexGraph, t *Tree, w graph.Weights, u int) bool {
	du := t.dist[u]
	if math.IsInf(du, 1) {
		return false
	}
	for it := g.OutEdges(u); it.Next(); {
		if du+w.Weight(it.Edge()) < t.dist[it.Target()] {
			return true
		}
	}
	return false
}

// postorderAdmissible appends to a the depth-first postorder of the
// subgraph of zero-or-better reduced-cost edges reachable from u.
func postorderAdmissible(g graph.IndexGraph, t *Tree, w graph.Weights, u int, inA *bitset.Set, a *[]int) {
	type frame struct {
		v  int
		it graph.EdgeIterator
	}
	stack := []frame{{v: u, it: g.OutEdges(u)}}
	inA.Set(u)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		advanced := false
		for top.it.Next() {
			e := top.it.Edge()
			v := top.it.Target()
			if inA.Has(v) {
				continue
			}
			if t.dist[top.v]+w.Weight(e) > t.dist[v] {
				continue
			}
			inA.Set(v)
			stack = append(stack, frame{v: v, it: g.OutEdges(v)})
			advanced = true
			break
		}
		if !advanced {
			*a = append(*a, top.v)
			stack = stack[:len(stack)-1]
		}
	}
}
