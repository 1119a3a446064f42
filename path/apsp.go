// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"gonum.org/v1/graphalg/graph"
)

// Distances is an all-pairs shortest-path matrix built from repeated
// single-source computations. Rows correspond to the requested source
// vertices, columns to all vertices of the graph.
type Distances struct {
	g       graph.IndexGraph
	sources []int
	rowOf   []int // vertex → row, -1 when absent

	dist *mat.Dense
	back [][]int // per-row backtrack edges
}

// AllPairsIndex computes shortest paths between every pair of vertices
// of g under w, by |V| single-source computations dispatched as in
// FromIndex.
//
// Peak memory is O(|V|²).
func AllPairsIndex(g graph.IndexGraph, w graph.Weights, opts Options) (*Distances, error) {
	sources := make([]int, g.NumVertices())
	for i := range sources {
		sources[i] = i
	}
	return AllPairsSubsetIndex(g, w, sources, opts)
}

// AllPairsSubsetIndex computes shortest paths from every vertex of
// sources to all vertices of g under w.
func AllPairsSubsetIndex(g graph.IndexGraph, w graph.Weights, sources []int, opts Options) (*Distances, error) {
	n := g.NumVertices()
	d := &Distances{
		g:       g,
		sources: sources,
		rowOf:   make([]int, n),
		back:    make([][]int, len(sources)),
	}
	for i := range d.rowOf {
		d.rowOf[i] = -1
	}
	if len(sources) == 0 {
		return d, nil
	}
	d.dist = mat.NewDense(len(sources), n, nil)
	for i, s := range sources {
		if s < 0 || s >= n {
			return nil, graph.NoSuchVertexError{ID: s}
		}
		d.rowOf[s] = i
		t, err := FromIndex(g, s, w, opts)
		if err != nil {
			return nil, err
		}
		d.dist.SetRow(i, t.dist)
		d.back[i] = t.backtrack
	}
	return d, nil
}

// Distance returns the weight of the shortest path from u to v, or
// +Inf if v is unreachable. Distance panics if u is not one of the
// requested sources.
func (d *Distances) Distance(u, v int) float64 {
	row := d.rowOf[u]
	if row < 0 {
		panic("path: distance from vertex outside subset")
	}
	return d.dist.At(row, v)
}

// PathBetween returns a shortest path from u to v, or nil if v is
// unreachable. PathBetween panics if u is not one of the requested
// sources.
func (d *Distances) PathBetween(u, v int) *graph.Path {
	row := d.rowOf[u]
	if row < 0 {
		panic("path: path from vertex outside subset")
	}
	if math.IsInf(d.dist.At(row, v), 1) {
		return nil
	}
	t := Tree{g: d.g, source: u, dist: d.dist.RawRowView(row), backtrack: d.back[row]}
	return t.PathTo(v)
}

// DistancesOf is the identifier view of an all-pairs result.
type DistancesOf[V, E comparable] struct {
	g graph.Graph[V, E]
	d *Distances
}

// AllPairs computes shortest paths between every pair of vertices of g
// under w. A nil w counts edges.
func AllPairs[V, E comparable](g graph.Graph[V, E], w func(E) float64, opts Options) (DistancesOf[V, E], error) {
	d, err := AllPairsIndex(g.Index(), graph.WeightsOf(g.EdgeMap(), w), opts)
	if err != nil {
		return DistancesOf[V, E]{}, err
	}
	return DistancesOf[V, E]{g: g, d: d}, nil
}

// AllPairsSubset computes shortest paths from every vertex of sources
// to all vertices of g under w.
func AllPairsSubset[V, E comparable](g graph.Graph[V, E], w func(E) float64, sources []V, opts Options) (DistancesOf[V, E], error) {
	si := make([]int, len(sources))
	for i, s := range sources {
		idx, ok := g.VertexMap().Index(s)
		if !ok {
			return DistancesOf[V, E]{}, graph.NoSuchVertexError{ID: s}
		}
		si[i] = idx
	}
	d, err := AllPairsSubsetIndex(g.Index(), graph.WeightsOf(g.EdgeMap(), w), si, opts)
	if err != nil {
		return DistancesOf[V, E]{}, err
	}
	return DistancesOf[V, E]{g: g, d: d}, nil
}

// Index returns the underlying index-space result.
func (d DistancesOf[V, E]) Index() *Distances { return d.d }

// Distance returns the weight of the shortest path from u to v, or
// +Inf if either vertex is unknown or v is unreachable.
func (d DistancesOf[V, E]) Distance(u, v V) float64 {
	ui, ok := d.g.VertexMap().Index(u)
	if !ok {
		return math.Inf(1)
	}
	vi, ok := d.g.VertexMap().Index(v)
	if !ok {
		return math.Inf(1)
	}
	return d.d.Distance(ui, vi)
}

// PathBetween returns a shortest path from u to v, or false if either
// vertex is unknown or v is unreachable.
func (d DistancesOf[V, E]) PathBetween(u, v V) (graph.PathOf[V, E], bool) {
	ui, ok := d.g.VertexMap().Index(u)
	if !ok {
		return graph.PathOf[V, E]{}, false
	}
	vi, ok := d.g.VertexMap().Index(v)
	if !ok {
		return graph.PathOf[V, E]{}, false
	}
	p := d.d.PathBetween(ui, vi)
	if p == nil {
		return graph.PathOf[V, E]{}, false
	}
	return graph.NewPathOf(d.g, p), true
}
