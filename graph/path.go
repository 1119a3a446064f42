// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Path is a walk through an index graph from a source to a target
// vertex. Consecutive edges share an endpoint; in directed graphs
// successive edges are strictly head to tail. A Path is immutable once
// returned by an algorithm.
type Path struct {
	g      IndexGraph
	source int
	target int
	edges  []int
}

// NewPath returns a path over g from source to target using the given
// edge indices. The edges must form a walk from source to target;
// NewPath panics if they do not.
func NewPath(g IndexGraph, source, target int, edges []int) *Path {
	p := &Path{g: g, source: source, target: target, edges: edges}
	vs := p.Vertices()
	if vs[len(vs)-1] != target {
		panic("graph: path edges do not terminate at target")
	}
	return p
}

// Source returns the first vertex of the path.
func (p *Path) Source() int { return p.source }

// Target returns the last vertex of the path.
func (p *Path) Target() int { return p.target }

// Edges returns the edge indices of the path in order. The returned
// slice must not be modified.
func (p *Path) Edges() []int { return p.edges }

// Len returns the number of edges in the path.
func (p *Path) Len() int { return len(p.edges) }

// Vertices returns the vertex sequence of the path, of length
// Len()+1. The first vertex is the source and the last the target.
func (p *Path) Vertices() []int {
	vs := make([]int, 0, len(p.edges)+1)
	v := p.source
	vs = append(vs, v)
	for _, e := range p.edges {
		if p.g.Directed() {
			if p.g.Source(e) != v {
				panic("graph: broken path: edge tail mismatch")
			}
			v = p.g.Target(e)
		} else {
			v = p.g.Endpoint(e, v)
		}
		vs = append(vs, v)
	}
	return vs
}

// IsCycle reports whether the path starts and ends at the same vertex
// and is not empty.
func (p *Path) IsCycle() bool {
	return len(p.edges) > 0 && p.source == p.target
}

// IsSimple reports whether all intermediate vertices of the path are
// distinct.
func (p *Path) IsSimple() bool {
	vs := p.Vertices()
	seen := make(map[int]bool, len(vs))
	for i, v := range vs {
		if i == len(vs)-1 && v == p.source && p.IsCycle() {
			continue
		}
		if seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Weight returns the total weight of the path under w. A nil w counts
// edges.
func (p *Path) Weight(w Weights) float64 {
	w = ReplaceNil(w)
	var total float64
	for _, e := range p.edges {
		total += w.Weight(e)
	}
	return total
}

// PathOf is an identifier view of an index-space path. Translation is
// performed lazily on each query.
type PathOf[V, E comparable] struct {
	g Graph[V, E]
	p *Path
}

// NewPathOf returns the identifier view of p over g.
func NewPathOf[V, E comparable](g Graph[V, E], p *Path) PathOf[V, E] {
	return PathOf[V, E]{g: g, p: p}
}

// Index returns the underlying index-space path.
func (p PathOf[V, E]) Index() *Path { return p.p }

// Source returns the identifier of the first vertex of the path.
func (p PathOf[V, E]) Source() V { return p.g.VertexMap().ID(p.p.Source()) }

// Target returns the identifier of the last vertex of the path.
func (p PathOf[V, E]) Target() V { return p.g.VertexMap().ID(p.p.Target()) }

// Edges returns the edge identifiers of the path in order.
func (p PathOf[V, E]) Edges() []E {
	em := p.g.EdgeMap()
	es := make([]E, len(p.p.Edges()))
	for i, e := range p.p.Edges() {
		es[i] = em.ID(e)
	}
	return es
}

// Vertices returns the vertex identifiers of the path in order.
func (p PathOf[V, E]) Vertices() []V {
	vm := p.g.VertexMap()
	idx := p.p.Vertices()
	vs := make([]V, len(idx))
	for i, v := range idx {
		vs[i] = vm.ID(v)
	}
	return vs
}

// IsSimple reports whether all intermediate vertices are distinct.
func (p PathOf[V, E]) IsSimple() bool { return p.p.IsSimple() }
