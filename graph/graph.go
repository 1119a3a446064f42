// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph defines the index-graph contract consumed by every
// algorithm in the module, the identifier layer that lifts the contract
// to arbitrary comparable vertex and edge identifiers, and the result
// types shared between algorithm packages.
//
// Algorithms never see user identifiers. An IndexGraph exposes vertices
// as the dense range [0,n) and edges as [0,m); the generic Graph
// interface pairs an IndexGraph with two IndexIDMaps that translate
// between identifiers and indices at the API boundary.
package graph // import "gonum.org/v1/graphalg/graph"

// Iterator is an item iterator.
type Iterator interface {
	// Next advances the iterator and returns whether a call to the
	// iterator's item methods will return a valid item. Next must be
	// called before any item access after the iterator has been
	// obtained or reset.
	Next() bool

	// Len returns the number of items remaining in the iterator.
	Len() int

	// Reset returns the iterator to its start position.
	Reset()
}

// EdgeIterator is a cursor over edge indices. Source and Target report
// the endpoints of the current edge; for iterators obtained from
// OutEdges, Source is the iterated vertex regardless of the stored
// orientation of an undirected edge.
type EdgeIterator interface {
	Iterator

	// Edge returns the current edge index.
	Edge() int

	// Source returns the source endpoint of the current edge.
	Source() int

	// Target returns the target endpoint of the current edge.
	Target() int
}

// IndexGraph is a read-only graph whose vertices are the contiguous
// indices [0,NumVertices()) and whose edges are [0,NumEdges()).
//
// Implementations must be safe for concurrent readers; algorithms hold
// only read-only references for the duration of a call.
type IndexGraph interface {
	// NumVertices returns the number of vertices in the graph.
	NumVertices() int

	// NumEdges returns the number of edges in the graph.
	NumEdges() int

	// Directed reports whether the graph is directed.
	Directed() bool

	// AllowsSelfEdges reports whether the graph may contain self edges.
	AllowsSelfEdges() bool

	// Source returns the source vertex of the edge e. In undirected
	// graphs the orientation is arbitrary but fixed.
	Source(e int) int

	// Target returns the target vertex of the edge e.
	Target(e int) int

	// Endpoint returns the endpoint of e that is not v. Endpoint
	// panics if v is not an endpoint of e.
	Endpoint(e, v int) int

	// OutEdges returns an iterator over the edges leaving v. In
	// undirected graphs these are all edges incident to v.
	OutEdges(v int) EdgeIterator

	// InEdges returns an iterator over the edges entering v. In
	// undirected graphs these are all edges incident to v.
	InEdges(v int) EdgeIterator
}

// EdgesOf returns the remaining edge indices of it as a slice. It is
// safe to pass a nil iterator.
func EdgesOf(it EdgeIterator) []int {
	if it == nil {
		return nil
	}
	n := it.Len()
	if n == 0 {
		return nil
	}
	e := make([]int, 0, n)
	for it.Next() {
		e = append(e, it.Edge())
	}
	return e
}

// IndexIDMap is a dense bijection between the identifiers of a graph
// and the index range of its IndexGraph.
type IndexIDMap[K comparable] interface {
	// Index returns the index of the identifier id, or false if the
	// identifier is not in the graph.
	Index(id K) (int, bool)

	// ID returns the identifier at the index idx. ID panics if idx is
	// out of range.
	ID(idx int) K

	// IDIfExists returns the identifier at idx, or false when idx is
	// out of range. It is used to translate indices an algorithm may
	// return as sentinels.
	IDIfExists(idx int) (K, bool)
}

// Graph is a graph with user-chosen vertex and edge identifiers. The
// identifier maps and the underlying index graph share the same dense
// index space.
type Graph[V, E comparable] interface {
	// Index returns the index-space representation of the graph.
	Index() IndexGraph

	// VertexMap returns the vertex identifier↔index bijection.
	VertexMap() IndexIDMap[V]

	// EdgeMap returns the edge identifier↔index bijection.
	EdgeMap() IndexIDMap[E]
}
