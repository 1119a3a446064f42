// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cores computes k-core decompositions: the core number of a
// vertex is the largest k such that the vertex belongs to a subgraph
// with minimum degree k.
package cores // import "gonum.org/v1/graphalg/cores"

import (
	"gonum.org/v1/graphalg/graph"
)

// Direction selects which incident edges count towards a vertex's
// degree in a directed graph. Undirected graphs always use all
// incident edges.
type Direction int

const (
	// AllDegrees counts both in- and out-edges.
	AllDegrees Direction = iota
	// OutDegrees counts out-edges only.
	OutDegrees
	// InDegrees counts in-edges only.
	InDegrees
)

// Decomposition is the result of a k-core decomposition.
type Decomposition struct {
	g    graph.IndexGraph
	core []int
	max  int

	shells [][]int
}

// CoreNumber returns the core number of the vertex v.
func (d *Decomposition) CoreNumber(v int) int { return d.core[v] }

// MaxCore returns the largest core number in the graph.
func (d *Decomposition) MaxCore() int { return d.max }

// Shell returns the vertices whose core number is exactly k. The
// returned slice is shared and must not be modified.
func (d *Decomposition) Shell(k int) []int {
	if d.shells == nil {
		d.shells = make([][]int, d.max+1)
		for v, c := range d.core {
			d.shells[c] = append(d.shells[c], v)
		}
	}
	if k < 0 || k > d.max {
		return nil
	}
	return d.shells[k]
}

// Core returns the vertices whose core number is at least k.
func (d *Decomposition) Core(k int) []int {
	var vs []int
	for v, c := range d.core {
		if c >= k {
			vs = append(vs, v)
		}
	}
	return vs
}

// Decompose computes the core decomposition of g.
func Decompose[V, E comparable](g graph.Graph[V, E], dir Direction) *Decomposition {
	return DecomposeIndex(g.Index(), dir)
}

// CoreNumberOf returns the core number of the identified vertex, or
// false if the identifier is unknown.
func CoreNumberOf[V, E comparable](g graph.Graph[V, E], d *Decomposition, v V) (int, bool) {
	vi, ok := g.VertexMap().Index(v)
	if !ok {
		return 0, false
	}
	return d.CoreNumber(vi), true
}

// DecomposeIndex computes the core decomposition of g in O(|V|+|E|)
// time by bucket sort: vertices are peeled in non-decreasing order of
// remaining degree, each peel decrementing its still-present
// neighbours and sliding them one bucket down.
func DecomposeIndex(g graph.IndexGraph, dir Direction) *Decomposition {
	n := g.NumVertices()
	deg := make([]int, n)
	md := 0
	for v := 0; v < n; v++ {
		deg[v] = degreeOf(g, v, dir)
		if deg[v] > md {
			md = deg[v]
		}
	}

	// Counting sort of vertices by degree.
	bin := make([]int, md+2)
	for _, d := range deg {
		bin[d]++
	}
	start := 0
	for d := 0; d <= md; d++ {
		count := bin[d]
		bin[d] = start
		start += count
	}
	vert := make([]int, n)
	pos := make([]int, n)
	for v := 0; v < n; v++ {
		pos[v] = bin[deg[v]]
		vert[pos[v]] = v
		bin[deg[v]]++
	}
	for d := md; d > 0; d-- {
		bin[d] = bin[d-1]
	}
	bin[0] = 0

	for i := 0; i < n; i++ {
		v := vert[i]
		forEachAffected(g, v, dir, func(u int) {
			if deg[u] <= deg[v] {
				return
			}
			// Swap u with the first vertex of its bucket and shrink
			// the bucket by one.
			du, pu := deg[u], pos[u]
			pw := bin[du]
			w := vert[pw]
			if u != w {
				pos[u], pos[w] = pw, pu
				vert[pu], vert[pw] = w, u
			}
			bin[du]++
			deg[u]--
		})
	}

	d := &Decomposition{g: g, core: deg}
	for _, c := range deg {
		if c > d.max {
			d.max = c
		}
	}
	return d
}

func degreeOf(g graph.IndexGraph, v int, dir Direction) int {
	if !g.Directed() {
		return g.OutEdges(v).Len()
	}
	switch dir {
	case OutDegrees:
		return g.OutEdges(v).Len()
	case InDegrees:
		return g.InEdges(v).Len()
	default:
		return g.OutEdges(v).Len() + g.InEdges(v).Len()
	}
}

// forEachAffected visits the vertices whose degree depends on v: the
// opposite direction of the one being counted.
func forEachAffected(g graph.IndexGraph, v int, dir Direction, f func(u int)) {
	if !g.Directed() {
		for it := g.OutEdges(v); it.Next(); {
			if u := it.Target(); u != v {
				f(u)
			}
		}
		return
	}
	if dir == OutDegrees || dir == AllDegrees {
		for it := g.InEdges(v); it.Next(); {
			if u := it.Source(); u != v {
				f(u)
			}
		}
	}
	if dir == InDegrees || dir == AllDegrees {
		for it := g.OutEdges(v); it.Next(); {
			if u := it.Target(); u != v {
				f(u)
			}
		}
	}
}
