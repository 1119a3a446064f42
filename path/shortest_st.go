// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/bitset"
	"gonum.org/v1/graphalg/internal/heap"
	"gonum.org/v1/graphalg/internal/linear"
)

// Between returns a shortest path between source and target under w,
// or the zero PathOf with weight +Inf if target is unreachable. A nil
// w counts edges. Weights
// must be non-negative.
//
// The search is bidirectional: two Dijkstra frontiers advance from the
// source forwards and from the target backwards until their next keys
// sum past the best meeting value.
func Between[V, E comparable](g graph.Graph[V, E], source, target V, w func(E) float64) (graph.PathOf[V, E], float64, error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return graph.PathOf[V, E]{}, math.Inf(1), graph.NoSuchVertexError{ID: source}
	}
	ti, ok := g.VertexMap().Index(target)
	if !ok {
		return graph.PathOf[V, E]{}, math.Inf(1), graph.NoSuchVertexError{ID: target}
	}
	p, weight, err := BetweenIndex(g.Index(), si, ti, graph.WeightsOf(g.EdgeMap(), w))
	if err != nil || p == nil {
		return graph.PathOf[V, E]{}, weight, err
	}
	return graph.NewPathOf(g, p), weight, nil
}

// BetweenIndex is the index-space variant of Between. A nil path with
// a nil error means target is unreachable from source.
func BetweenIndex(g graph.IndexGraph, source, target int, w graph.Weights) (*graph.Path, float64, error) {
	st := newBiDijkstra(g, graph.ReplaceNil(w))
	return st.shortestPath(source, target)
}

// biDijkstra is a reusable bidirectional Dijkstra. Its scratch arrays
// are allocated once and cleared only at the indices dirtied by each
// call, so that repeated invocations over masked variants of the same
// graph (as in Yen's algorithm) stay cheap.
type biDijkstra struct {
	g graph.IndexGraph
	w graph.Weights

	distF, distB *linear.DirtyFloats
	backF, backB *linear.DirtyInts
	heapF, heapB *heap.IndexHeapDouble

	maskedV, maskedE *bitset.Dirty
}

func newBiDijkstra(g graph.IndexGraph, w graph.Weights) *biDijkstra {
	n, m := g.NumVertices(), g.NumEdges()
	inf := math.Inf(1)
	return &biDijkstra{
		g:       g,
		w:       w,
		distF:   linear.NewDirtyFloats(n, inf),
		distB:   linear.NewDirtyFloats(n, inf),
		backF:   linear.NewDirtyInts(n, -1),
		backB:   linear.NewDirtyInts(n, -1),
		heapF:   heap.NewIndexHeapDouble(n),
		heapB:   heap.NewIndexHeapDouble(n),
		maskedV: bitset.NewDirty(n),
		maskedE: bitset.NewDirty(m),
	}
}

func (st *biDijkstra) reset() {
	st.distF.Reset()
	st.distB.Reset()
	st.backF.Reset()
	st.backB.Reset()
	st.heapF.Clear()
	st.heapB.Clear()
}

// shortestPath runs the bidirectional search. Masked vertices and
// edges are skipped; the masks themselves are managed by the caller.
func (st *biDijkstra) shortestPath(source, target int) (*graph.Path, float64, error) {
	defer st.reset()
	if source == target {
		return graph.NewPath(st.g, source, target, nil), 0, nil
	}

	st.distF.Set(source, 0)
	st.distB.Set(target, 0)
	st.heapF.Insert(source, 0)
	st.heapB.Insert(target, 0)

	mu := math.Inf(1)
	meet := -1

	for st.heapF.Len() != 0 && st.heapB.Len() != 0 {
		u, ku := st.heapF.Min()
		v, kv := st.heapB.Min()
		if ku+kv >= mu {
			break
		}
		st.heapF.ExtractMin()
		if err := st.relax(u, false, &mu, &meet); err != nil {
			return nil, math.Inf(1), err
		}
		st.heapB.ExtractMin()
		if err := st.relax(v, true, &mu, &meet); err != nil {
			return nil, math.Inf(1), err
		}
	}

	if meet < 0 {
		return nil, math.Inf(1), nil
	}
	return st.rebuild(source, target, meet), mu, nil
}

func (st *biDijkstra) relax(u int, backward bool, mu *float64, meet *int) error {
	var (
		dist, odist *linear.DirtyFloats
		back        *linear.DirtyInts
		h           *heap.IndexHeapDouble
		it          graph.EdgeIterator
	)
	if backward {
		dist, odist, back, h = st.distB, st.distF, st.backB, st.heapB
		it = st.g.InEdges(u)
	} else {
		dist, odist, back, h = st.distF, st.distB, st.backF, st.heapF
		it = st.g.OutEdges(u)
	}
	du := dist.Get(u)
	for it.Next() {
		e := it.Edge()
		if st.maskedE.Has(e) {
			continue
		}
		var v int
		if backward {
			v = it.Source()
		} else {
			v = it.Target()
		}
		if v == u || st.maskedV.Has(v) {
			continue
		}
		ew := st.w.Weight(e)
		if ew < 0 {
			return graph.ErrNegativeWeight
		}
		joint := du + ew
		if od := odist.Get(v); joint+od < *mu {
			*mu = joint + od
			*meet = v
		}
		if h.WasExtracted(v) {
			continue
		}
		switch {
		case !h.IsInserted(v):
			h.Insert(v, joint)
			dist.Set(v, joint)
			back.Set(v, e)
		case joint < h.Key(v):
			h.DecreaseKey(v, joint)
			dist.Set(v, joint)
			back.Set(v, e)
		}
	}
	return nil
}

// rebuild concatenates the forward backtrack from source to the
// meeting vertex with the backward backtrack from the meeting vertex
// to target.
func (st *biDijkstra) rebuild(source, target, meet int) *graph.Path {
	var rev []int
	for x := meet; x != source; {
		e := st.backF.Get(x)
		rev = append(rev, e)
		if st.g.Directed() {
			x = st.g.Source(e)
		} else {
			x = st.g.Endpoint(e, x)
		}
	}
	edges := make([]int, 0, len(rev)+4)
	for i := len(rev) - 1; i >= 0; i-- {
		edges = append(edges, rev[i])
	}
	for x := meet; x != target; {
		e := st.backB.Get(x)
		edges = append(edges, e)
		if st.g.Directed() {
			x = st.g.Target(e)
		} else {
			x = st.g.Endpoint(e, x)
		}
	}
	return graph.NewPath(st.g, source, target, edges)
}

// maskVertex hides v from subsequent searches.
func (st *biDijkstra) maskVertex(v int) { st.maskedV.Set(v) }

// maskEdge hides e from subsequent searches.
func (st *biDijkstra) maskEdge(e int) { st.maskedE.Set(e) }

// clearMasks unhides all masked vertices and edges.
func (st *biDijkstra) clearMasks() {
	st.maskedV.Reset()
	st.maskedE.Reset()
}
