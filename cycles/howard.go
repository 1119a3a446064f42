// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cycles provides cycle-quality optimisation over directed
// graphs, currently the minimum-mean cycle by Howard's policy
// iteration.
package cycles // import "gonum.org/v1/graphalg/cycles"

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/linear"
	"gonum.org/v1/graphalg/topo"
)

// improveEps is the tolerance below which a policy improvement is
// considered noise.
const improveEps = 1e-4

// MinimumMeanCycle returns a cycle of g minimising total weight over
// length, or false when g is acyclic. A nil w counts edges.
func MinimumMeanCycle[V, E comparable](g graph.Graph[V, E], w func(E) float64) (graph.PathOf[V, E], float64, bool, error) {
	p, mean, err := MinimumMeanCycleIndex(g.Index(), graph.WeightsOf(g.EdgeMap(), w))
	if err != nil || p == nil {
		return graph.PathOf[V, E]{}, mean, false, err
	}
	return graph.NewPathOf(g, p), mean, true, nil
}

// MinimumMeanCycleIndex is the index-space variant of MinimumMeanCycle.
// A nil path with a nil error means the graph is acyclic.
//
// Each strongly connected component of two or more vertices is solved
// by Howard's policy iteration: every vertex keeps one outgoing policy
// edge, the best cycle of the policy graph re-biases the vertex
// values, and edges that still improve a value update the policy,
// until a sweep changes nothing. Self loops are tracked separately as
// length-one cycles.
func MinimumMeanCycleIndex(g graph.IndexGraph, w graph.Weights) (*graph.Path, float64, error) {
	if !g.Directed() {
		return nil, 0, graph.DirectionError{Directed: true}
	}
	w = graph.ReplaceNil(w)
	n := g.NumVertices()

	bestMean := math.Inf(1)
	bestVertex := -1

	// The minimum-weight self loop competes with all longer cycles.
	bestLoop := -1
	for e := 0; e < g.NumEdges(); e++ {
		if g.Source(e) == g.Target(e) {
			if bestLoop < 0 || w.Weight(e) < w.Weight(bestLoop) {
				bestLoop = e
			}
		}
	}

	sccs := topo.StronglyConnected(g)
	h := howard{
		g:      g,
		w:      w,
		sccs:   sccs,
		policy: make([]int, n),
		d:      make([]float64, n),
		visit:  make([]int, n),
		rev:    make([][]int, n),
		seen:   make([]bool, n),
	}
	for b := 0; b < sccs.NumBlocks(); b++ {
		comp := sccs.BlockVertices(b)
		if len(comp) < 2 {
			continue
		}
		mean, vertex := h.component(b, comp)
		if mean < bestMean {
			bestMean = mean
			bestVertex = vertex
		}
	}

	if bestLoop >= 0 && w.Weight(bestLoop) <= bestMean {
		v := g.Source(bestLoop)
		return graph.NewPath(g, v, v, []int{bestLoop}), w.Weight(bestLoop), nil
	}
	if bestVertex < 0 {
		return nil, math.Inf(1), nil
	}
	return h.reconstruct(bestVertex), bestMean, nil
}

type howard struct {
	g    graph.IndexGraph
	w    graph.Weights
	sccs *topo.VertexPartition

	policy []int
	d      []float64
	visit  []int
	rev    [][]int
	seen   []bool
}

// component runs policy iteration on the strongly connected component
// block, returning its minimum cycle mean and a vertex on an optimal
// cycle. The policy array is left holding the final policy for
// reconstruction.
func (h *howard) component(block int, comp []int) (float64, int) {
	g, w := h.g, h.w
	in := func(v int) bool { return h.sccs.Block(v) == block }

	// Initial policy: the cheapest outgoing edge inside the component.
	for _, u := range comp {
		h.d[u] = math.Inf(1)
		h.policy[u] = -1
		for it := g.OutEdges(u); it.Next(); {
			e, v := it.Edge(), it.Target()
			if v == u || !in(v) {
				continue
			}
			if ew := w.Weight(e); ew < h.d[u] {
				h.d[u] = ew
				h.policy[u] = e
			}
		}
	}

	var (
		mean   = math.Inf(1)
		vertex = -1
		queue  linear.IntQueue
	)
	// Policy iteration strictly decreases the cycle mean, so the
	// component size bounds the useful iteration count generously.
	maxIter := len(comp)*len(comp) + 16
	for iter := 0; iter < maxIter; iter++ {
		mean, vertex = h.evalPolicy(comp)

		// Re-bias values along reverse policy edges from the best
		// cycle vertex.
		for _, v := range comp {
			h.rev[v] = h.rev[v][:0]
			h.seen[v] = false
		}
		for _, u := range comp {
			h.rev[g.Target(h.policy[u])] = append(h.rev[g.Target(h.policy[u])], u)
		}
		h.d[vertex] = 0
		h.seen[vertex] = true
		queue.Reset()
		queue.Push(vertex)
		for queue.Len() > 0 {
			v := queue.Pop()
			for _, u := range h.rev[v] {
				if h.seen[u] {
					continue
				}
				h.seen[u] = true
				h.d[u] = h.d[v] + w.Weight(h.policy[u]) - mean
				queue.Push(u)
			}
		}

		// Improvement sweep.
		var improved bool
		for _, u := range comp {
			for it := g.OutEdges(u); it.Next(); {
				e, v := it.Edge(), it.Target()
				if v == u || !in(v) {
					continue
				}
				if cand := h.d[v] + w.Weight(e) - mean; cand < h.d[u]-improveEps {
					h.d[u] = cand
					h.policy[u] = e
					improved = true
				}
			}
		}
		if !improved {
			return mean, vertex
		}
	}
	// The iteration cap tripped with an improvement pending: evaluate
	// the final policy so the returned cycle matches it.
	return h.evalPolicy(comp)
}

// evalPolicy finds the minimum-mean cycle of the current policy graph
// restricted to comp.
func (h *howard) evalPolicy(comp []int) (float64, int) {
	g, w := h.g, h.w
	for _, v := range comp {
		h.visit[v] = 0
	}
	mean := math.Inf(1)
	vertex := -1
	for i, s := range comp {
		if h.visit[s] != 0 {
			continue
		}
		stamp := i + 1
		x := s
		for h.visit[x] == 0 {
			h.visit[x] = stamp
			x = g.Target(h.policy[x])
		}
		if h.visit[x] != stamp {
			continue
		}
		// The walk closed on itself: measure the cycle.
		var sum float64
		var length int
		y := x
		for {
			e := h.policy[y]
			sum += w.Weight(e)
			length++
			y = g.Target(e)
			if y == x {
				break
			}
		}
		if cm := sum / float64(length); cm < mean {
			mean = cm
			vertex = x
		}
	}
	return mean, vertex
}

// reconstruct follows the final policy from a vertex of an optimal
// cycle. Advancing the full vertex count first guards against walks
// that pass through several equal-mean cycles before closing.
func (h *howard) reconstruct(start int) *graph.Path {
	n := h.g.NumVertices()
	x := start
	for i := 0; i < n; i++ {
		x = h.g.Target(h.policy[x])
	}
	var edges []int
	y := x
	for {
		e := h.policy[y]
		edges = append(edges, e)
		y = h.g.Target(e)
		if y == x {
			break
		}
	}
	return graph.NewPath(h.g, x, x, edges)
}
