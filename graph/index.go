// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// Index is an append-only index graph backed by adjacency slices. It is
// the reference implementation of the IndexGraph contract used by the
// builders and the tests; algorithm packages depend only on the
// interface.
type Index struct {
	directed  bool
	selfEdges bool

	src, dst []int
	out, in  [][]int
}

var _ IndexGraph = (*Index)(nil)

// IndexOption configures an Index at construction time.
type IndexOption func(*Index)

// SelfEdges sets whether the graph accepts self edges.
func SelfEdges(ok bool) IndexOption {
	return func(g *Index) { g.selfEdges = ok }
}

// NewIndexDirected returns a directed index graph with n vertices and
// no edges.
func NewIndexDirected(n int, opts ...IndexOption) *Index {
	return newIndex(n, true, opts)
}

// NewIndexUndirected returns an undirected index graph with n vertices
// and no edges.
func NewIndexUndirected(n int, opts ...IndexOption) *Index {
	return newIndex(n, false, opts)
}

func newIndex(n int, directed bool, opts []IndexOption) *Index {
	if n < 0 {
		panic("graph: negative vertex count")
	}
	g := &Index{
		directed: directed,
		out:      make([][]int, n),
	}
	if directed {
		g.in = make([][]int, n)
	} else {
		g.in = g.out
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddVertex adds a vertex to the graph, returning its index.
func (g *Index) AddVertex() int {
	v := len(g.out)
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	} else {
		g.in = g.out
	}
	return v
}

// AddEdge adds an edge from u to v, returning its index. AddEdge
// panics if either endpoint is out of range, or if u == v and the
// graph does not allow self edges.
func (g *Index) AddEdge(u, v int) int {
	n := len(g.out)
	if u < 0 || u >= n || v < 0 || v >= n {
		panic(fmt.Sprintf("graph: vertex out of range adding edge (%d,%d)", u, v))
	}
	if u == v && !g.selfEdges {
		panic(fmt.Sprintf("graph: self edge at vertex %d", u))
	}
	e := len(g.src)
	g.src = append(g.src, u)
	g.dst = append(g.dst, v)
	g.out[u] = append(g.out[u], e)
	if g.directed {
		g.in[v] = append(g.in[v], e)
	} else if u != v {
		g.out[v] = append(g.out[v], e)
	}
	return e
}

// NumVertices returns the number of vertices in the graph.
func (g *Index) NumVertices() int { return len(g.out) }

// NumEdges returns the number of edges in the graph.
func (g *Index) NumEdges() int { return len(g.src) }

// Directed reports whether the graph is directed.
func (g *Index) Directed() bool { return g.directed }

// AllowsSelfEdges reports whether the graph may contain self edges.
func (g *Index) AllowsSelfEdges() bool { return g.selfEdges }

// Source returns the source vertex of the edge e.
func (g *Index) Source(e int) int { return g.src[e] }

// Target returns the target vertex of the edge e.
func (g *Index) Target(e int) int { return g.dst[e] }

// Endpoint returns the endpoint of e that is not v.
func (g *Index) Endpoint(e, v int) int {
	switch v {
	case g.src[e]:
		return g.dst[e]
	case g.dst[e]:
		return g.src[e]
	}
	panic(fmt.Sprintf("graph: vertex %d is not an endpoint of edge %d", v, e))
}

// OutEdges returns an iterator over the edges leaving v.
func (g *Index) OutEdges(v int) EdgeIterator {
	return &edgeSliceIterator{g: g, from: v, edges: g.out[v], i: -1}
}

// InEdges returns an iterator over the edges entering v.
func (g *Index) InEdges(v int) EdgeIterator {
	return &edgeSliceIterator{g: g, from: v, edges: g.in[v], i: -1, in: true}
}

// edgeSliceIterator iterates a slice of edge indices. For out
// iteration the iterated vertex is reported as the source; for in
// iteration it is reported as the target.
type edgeSliceIterator struct {
	g     IndexGraph
	from  int
	edges []int
	i     int
	in    bool
}

func (it *edgeSliceIterator) Next() bool {
	if it.i+1 >= len(it.edges) {
		it.i = len(it.edges)
		return false
	}
	it.i++
	return true
}

func (it *edgeSliceIterator) Len() int {
	if it.i >= len(it.edges) {
		return 0
	}
	return len(it.edges) - it.i - 1
}

func (it *edgeSliceIterator) Reset() { it.i = -1 }

func (it *edgeSliceIterator) Edge() int { return it.edges[it.i] }

func (it *edgeSliceIterator) Source() int {
	if it.in {
		return it.g.Endpoint(it.edges[it.i], it.from)
	}
	return it.from
}

func (it *edgeSliceIterator) Target() int {
	if it.in {
		return it.from
	}
	return it.g.Endpoint(it.edges[it.i], it.from)
}
