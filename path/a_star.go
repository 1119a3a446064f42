// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"container/heap"
	"math"

	"gonum.org/v1/graphalg/graph"
)

// Heuristic estimates the remaining distance from a vertex to the
// target of an A* search. Admissibility is the caller's
// responsibility: an overestimate forfeits optimality.
type Heuristic func(v int) float64

// AStar returns a shortest path from source to target guided by the
// heuristic h, or the zero PathOf with weight +Inf if target is
// unreachable. A nil h degenerates
// to Dijkstra. Weights must be non-negative; a nil w counts edges.
func AStar[V, E comparable](g graph.Graph[V, E], source, target V, w func(E) float64, h func(V) float64) (graph.PathOf[V, E], float64, error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return graph.PathOf[V, E]{}, math.Inf(1), graph.NoSuchVertexError{ID: source}
	}
	ti, ok := g.VertexMap().Index(target)
	if !ok {
		return graph.PathOf[V, E]{}, math.Inf(1), graph.NoSuchVertexError{ID: target}
	}
	var hi Heuristic
	if h != nil {
		vm := g.VertexMap()
		hi = func(v int) float64 { return h(vm.ID(v)) }
	}
	p, weight, err := AStarIndex(g.Index(), si, ti, graph.WeightsOf(g.EdgeMap(), w), hi)
	if err != nil || p == nil {
		return graph.PathOf[V, E]{}, weight, err
	}
	return graph.NewPathOf(g, p), weight, nil
}

// AStarIndex is the index-space variant of AStar. A nil path with a
// nil error means target is unreachable from source.
func AStarIndex(g graph.IndexGraph, source, target int, w graph.Weights, h Heuristic) (*graph.Path, float64, error) {
	w = graph.ReplaceNil(w)
	if h == nil {
		h = func(int) float64 { return 0 }
	}
	n := g.NumVertices()
	dist := make([]float64, n)
	back := make([]int, n)
	closed := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		back[i] = -1
	}
	dist[source] = 0

	// A no-decrease queue in the manner of the Dijkstra reference
	// implementations: stale entries are skipped on pop.
	q := aStarQueue{{v: source, f: h(source)}}
	for q.Len() != 0 {
		top := heap.Pop(&q).(aStarItem)
		u := top.v
		if closed[u] {
			continue
		}
		closed[u] = true
		if u == target {
			break
		}
		du := dist[u]
		for it := g.OutEdges(u); it.Next(); {
			e := it.Edge()
			ew := w.Weight(e)
			if ew < 0 {
				return nil, math.Inf(1), graph.ErrNegativeWeight
			}
			v := it.Target()
			joint := du + ew
			if joint < dist[v] {
				dist[v] = joint
				back[v] = e
				if !closed[v] {
					heap.Push(&q, aStarItem{v: v, f: joint + h(v)})
				}
			}
		}
	}
	if math.IsInf(dist[target], 1) {
		return nil, math.Inf(1), nil
	}
	t := Tree{g: g, source: source, dist: dist, backtrack: back}
	return t.PathTo(target), dist[target], nil
}

type aStarItem struct {
	v int
	f float64
}

type aStarQueue []aStarItem

func (q aStarQueue) Len() int            { return len(q) }
func (q aStarQueue) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q aStarQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *aStarQueue) Push(x interface{}) { *q = append(*q, x.(aStarItem)) }
func (q *aStarQueue) Pop() interface{} {
	t := *q
	var x interface{}
	x, *q = t[len(t)-1], t[:len(t)-1]
	return x
}
