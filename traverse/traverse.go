// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package traverse provides breadth-first and depth-first iterators
// over index graphs, and a random-walk iterator.
package traverse // import "gonum.org/v1/graphalg/traverse"

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/bitset"
	"gonum.org/v1/graphalg/internal/linear"
)

// BreadthFirst is a breadth-first iterator over the vertices reachable
// from a set of sources. Layer reports the distance from the nearest
// source and LastEdge the edge used to reach the current vertex.
type BreadthFirst struct {
	g        graph.IndexGraph
	backward bool

	queue   linear.IntQueue
	visited *bitset.Set
	edgeTo  []int
	layerOf []int

	cur int
}

// NewBreadthFirst returns a breadth-first iterator over g from the
// given source vertices. All sources are enqueued at layer zero before
// the first call to Next.
func NewBreadthFirst(g graph.IndexGraph, sources ...int) *BreadthFirst {
	return newBreadthFirst(g, false, sources)
}

// NewBreadthFirstBackward returns a breadth-first iterator that
// follows in-edges instead of out-edges.
func NewBreadthFirstBackward(g graph.IndexGraph, sources ...int) *BreadthFirst {
	return newBreadthFirst(g, true, sources)
}

func newBreadthFirst(g graph.IndexGraph, backward bool, sources []int) *BreadthFirst {
	n := g.NumVertices()
	b := &BreadthFirst{
		g:        g,
		backward: backward,
		visited:  bitset.New(n),
		edgeTo:   make([]int, n),
		layerOf:  make([]int, n),
		cur:      -1,
	}
	for _, s := range sources {
		if !b.visited.Has(s) {
			b.visited.Set(s)
			b.edgeTo[s] = -1
			b.layerOf[s] = 0
			b.queue.Push(s)
		}
	}
	return b
}

// Next advances the iterator and reports whether a vertex is
// available.
func (b *BreadthFirst) Next() bool {
	if b.queue.Len() == 0 {
		return false
	}
	u := b.queue.Pop()
	b.cur = u
	var it graph.EdgeIterator
	if b.backward {
		it = b.g.InEdges(u)
	} else {
		it = b.g.OutEdges(u)
	}
	for it.Next() {
		var v int
		if b.backward {
			v = it.Source()
		} else {
			v = it.Target()
		}
		if b.visited.Has(v) {
			continue
		}
		b.visited.Set(v)
		b.edgeTo[v] = it.Edge()
		b.layerOf[v] = b.layerOf[u] + 1
		b.queue.Push(v)
	}
	return true
}

// Vertex returns the current vertex.
func (b *BreadthFirst) Vertex() int { return b.cur }

// LastEdge returns the edge used to reach the current vertex, or -1 at
// a source.
func (b *BreadthFirst) LastEdge() int { return b.edgeTo[b.cur] }

// Layer returns the distance of the current vertex from the nearest
// source.
func (b *BreadthFirst) Layer() int { return b.layerOf[b.cur] }

// Visited reports whether v has been seen by the traversal.
func (b *BreadthFirst) Visited(v int) bool { return b.visited.Has(v) }

// DepthFirst is a depth-first iterator over the vertices reachable
// from a source. Vertices are reported in preorder; Layer reports the
// depth at which the current vertex was first reached.
type DepthFirst struct {
	g        graph.IndexGraph
	backward bool

	stack   []dfsFrame
	visited *bitset.Set
	edgeTo  []int
	layerOf []int

	cur int
}

type dfsFrame struct {
	v  int
	it graph.EdgeIterator
}

// NewDepthFirst returns a depth-first iterator over g from the given
// source vertices.
func NewDepthFirst(g graph.IndexGraph, sources ...int) *DepthFirst {
	return newDepthFirst(g, false, sources)
}

// NewDepthFirstBackward returns a depth-first iterator that follows
// in-edges instead of out-edges.
func NewDepthFirstBackward(g graph.IndexGraph, sources ...int) *DepthFirst {
	return newDepthFirst(g, true, sources)
}

func newDepthFirst(g graph.IndexGraph, backward bool, sources []int) *DepthFirst {
	n := g.NumVertices()
	d := &DepthFirst{
		g:        g,
		backward: backward,
		visited:  bitset.New(n),
		edgeTo:   make([]int, n),
		layerOf:  make([]int, n),
		cur:      -1,
	}
	// Sources are stacked in reverse so the first source is explored
	// first.
	for i := len(sources) - 1; i >= 0; i-- {
		s := sources[i]
		d.edgeTo[s] = -1
		d.layerOf[s] = 0
		d.stack = append(d.stack, dfsFrame{v: s})
	}
	return d
}

// Next advances the iterator and reports whether a vertex is
// available.
func (d *DepthFirst) Next() bool {
	for len(d.stack) > 0 {
		top := &d.stack[len(d.stack)-1]
		if top.it == nil {
			if d.visited.Has(top.v) {
				d.stack = d.stack[:len(d.stack)-1]
				continue
			}
			d.visited.Set(top.v)
			if d.backward {
				top.it = d.g.InEdges(top.v)
			} else {
				top.it = d.g.OutEdges(top.v)
			}
			d.cur = top.v
			return true
		}
		advanced := false
		for top.it.Next() {
			var v int
			if d.backward {
				v = top.it.Source()
			} else {
				v = top.it.Target()
			}
			if d.visited.Has(v) {
				continue
			}
			d.edgeTo[v] = top.it.Edge()
			d.layerOf[v] = d.layerOf[top.v] + 1
			d.stack = append(d.stack, dfsFrame{v: v})
			advanced = true
			break
		}
		if !advanced {
			d.stack = d.stack[:len(d.stack)-1]
		}
	}
	return false
}

// Vertex returns the current vertex.
func (d *DepthFirst) Vertex() int { return d.cur }

// LastEdge returns the edge used to reach the current vertex, or -1 at
// a source.
func (d *DepthFirst) LastEdge() int { return d.edgeTo[d.cur] }

// Layer returns the depth at which the current vertex was reached.
func (d *DepthFirst) Layer() int { return d.layerOf[d.cur] }

// Visited reports whether v has been seen by the traversal.
func (d *DepthFirst) Visited(v int) bool { return d.visited.Has(v) }
