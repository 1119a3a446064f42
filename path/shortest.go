// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/traverse"
)

// Tree is a single-source shortest-path tree over an index graph. It
// holds the distance from the source to every vertex and the edge used
// to reach it, -1 at the source and at unreached vertices.
type Tree struct {
	g      graph.IndexGraph
	source int

	dist      []float64
	backtrack []int
}

func newTree(g graph.IndexGraph, source int) *Tree {
	n := g.NumVertices()
	t := &Tree{
		g:         g,
		source:    source,
		dist:      make([]float64, n),
		backtrack: make([]int, n),
	}
	for i := range t.dist {
		t.dist[i] = math.Inf(1)
		t.backtrack[i] = -1
	}
	t.dist[source] = 0
	return t
}

// Source returns the source vertex of the tree.
func (t *Tree) Source() int { return t.source }

// Distance returns the weight of the shortest path from the source to
// v, or +Inf if v is unreachable.
func (t *Tree) Distance(v int) float64 { return t.dist[v] }

// Reachable reports whether v is reachable from the source.
func (t *Tree) Reachable(v int) bool { return !math.IsInf(t.dist[v], 1) }

// Backtrack returns the edge used to reach v, or -1 at the source and
// at unreached vertices.
func (t *Tree) Backtrack(v int) int { return t.backtrack[v] }

// PathTo returns a shortest path from the source to v, or nil if v is
// unreachable.
func (t *Tree) PathTo(v int) *graph.Path {
	if !t.Reachable(v) {
		return nil
	}
	var rev []int
	for u := v; u != t.source; {
		e := t.backtrack[u]
		rev = append(rev, e)
		if t.g.Directed() {
			u = t.g.Source(e)
		} else {
			u = t.g.Endpoint(e, u)
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return graph.NewPath(t.g, t.source, v, rev)
}

// TreeOf is the identifier view of a shortest-path tree.
type TreeOf[V, E comparable] struct {
	g graph.Graph[V, E]
	t *Tree
}

// Index returns the underlying index-space tree.
func (t TreeOf[V, E]) Index() *Tree { return t.t }

// Source returns the source vertex identifier.
func (t TreeOf[V, E]) Source() V { return t.g.VertexMap().ID(t.t.Source()) }

// Distance returns the weight of the shortest path to v, or +Inf if v
// is unreachable or not in the graph.
func (t TreeOf[V, E]) Distance(v V) float64 {
	vi, ok := t.g.VertexMap().Index(v)
	if !ok {
		return math.Inf(1)
	}
	return t.t.Distance(vi)
}

// PathTo returns a shortest path to v, or false if v is unreachable or
// not in the graph.
func (t TreeOf[V, E]) PathTo(v V) (graph.PathOf[V, E], bool) {
	vi, ok := t.g.VertexMap().Index(v)
	if !ok {
		return graph.PathOf[V, E]{}, false
	}
	p := t.t.PathTo(vi)
	if p == nil {
		return graph.PathOf[V, E]{}, false
	}
	return graph.NewPathOf(t.g, p), true
}

// Options configure single-source shortest-path computation. The zero
// value requests the default behaviour: non-negative weights and no
// structural hints.
type Options struct {
	// DAG asserts that the graph is a directed acyclic graph,
	// selecting topological relaxation.
	DAG bool

	// Negative allows negative edge weights. Negative cycles are
	// reported through NegativeCycleError.
	Negative bool

	// MaxDistance is an upper bound on the largest finite distance
	// from the source, enabling bucket-based relaxation for integer
	// weights. Zero and below means unknown.
	MaxDistance int
}

// From returns a shortest-path tree from source in the graph g under
// the weight function w. A nil w counts edges. The algorithm is chosen
// from the options and the runtime type of the weights; see FromIndex.
func From[V, E comparable](g graph.Graph[V, E], source V, w func(E) float64, opts Options) (TreeOf[V, E], error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return TreeOf[V, E]{}, graph.NoSuchVertexError{ID: source}
	}
	t, err := FromIndex(g.Index(), si, graph.WeightsOf(g.EdgeMap(), w), opts)
	if err != nil {
		return TreeOf[V, E]{}, err
	}
	return TreeOf[V, E]{g: g, t: t}, nil
}

// FromIndex returns a shortest-path tree from source in the index
// graph g under the weight function w. A nil w counts edges.
//
// The algorithm is selected as follows: cardinality weights use
// breadth-first search; a DAG uses topological relaxation; negative
// integer weights use Goldberg-Radzik and negative real weights
// Bellman-Ford; bounded integer weights use Dial's buckets when the
// bucket work n+m+maxDist undercuts the heap work m+n·log₂n; anything
// else uses Dijkstra.
func FromIndex(g graph.IndexGraph, source int, w graph.Weights, opts Options) (*Tree, error) {
	if source < 0 || source >= g.NumVertices() {
		return nil, graph.NoSuchVertexError{ID: source}
	}
	if graph.IsCardinality(w) {
		return bfsFrom(g, source), nil
	}
	iw, isInt := w.(graph.IntWeights)
	switch {
	case opts.DAG:
		return dagFrom(g, source, w)
	case opts.Negative && isInt:
		return goldbergRadzik(g, source, w)
	case opts.Negative:
		return bellmanFordMoore(g, source, w)
	case isInt && opts.MaxDistance > 0 && dialUndercutsDijkstra(g, opts.MaxDistance):
		return dialFrom(g, source, iw, opts.MaxDistance)
	default:
		return dijkstraFrom(g, source, w)
	}
}

func dialUndercutsDijkstra(g graph.IndexGraph, maxDist int) bool {
	n, m := g.NumVertices(), g.NumEdges()
	dialWork := float64(n + m + maxDist)
	dijkstraWork := float64(m) + float64(n)*math.Log2(float64(max(2, n)))
	return dialWork < dijkstraWork
}

// bfsFrom fills a tree by breadth-first search, the unweighted fast
// path.
func bfsFrom(g graph.IndexGraph, source int) *Tree {
	t := newTree(g, source)
	b := traverse.NewBreadthFirst(g, source)
	for b.Next() {
		v := b.Vertex()
		if v == source {
			continue
		}
		t.dist[v] = float64(b.Layer())
		t.backtrack[v] = b.LastEdge()
	}
	return t
}
