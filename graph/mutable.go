// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "fmt"

// Mutable is an append-only graph with user-chosen vertex and edge
// identifiers, backed by an Index and two identifier maps.
type Mutable[V, E comparable] struct {
	idx *Index

	vertices *idMap[V]
	edges    *idMap[E]
}

var _ Graph[int, int] = (*Mutable[int, int])(nil)

// Directed returns an empty directed graph.
func Directed[V, E comparable](opts ...IndexOption) *Mutable[V, E] {
	return &Mutable[V, E]{
		idx:      NewIndexDirected(0, opts...),
		vertices: newIDMap[V](),
		edges:    newIDMap[E](),
	}
}

// Undirected returns an empty undirected graph.
func Undirected[V, E comparable](opts ...IndexOption) *Mutable[V, E] {
	return &Mutable[V, E]{
		idx:      NewIndexUndirected(0, opts...),
		vertices: newIDMap[V](),
		edges:    newIDMap[E](),
	}
}

// AddVertex adds a vertex with the given identifier. AddVertex panics
// if the identifier is already present.
func (g *Mutable[V, E]) AddVertex(id V) {
	if _, ok := g.vertices.Index(id); ok {
		panic(fmt.Sprintf("graph: duplicate vertex identifier %v", id))
	}
	g.vertices.add(id)
	g.idx.AddVertex()
}

// AddEdge adds an edge with the given identifier between the vertices
// u and v. AddEdge panics if the edge identifier is already present,
// and returns a NoSuchVertexError if either endpoint is unknown.
func (g *Mutable[V, E]) AddEdge(id E, u, v V) error {
	if _, ok := g.edges.Index(id); ok {
		panic(fmt.Sprintf("graph: duplicate edge identifier %v", id))
	}
	ui, ok := g.vertices.Index(u)
	if !ok {
		return NoSuchVertexError{ID: u}
	}
	vi, ok := g.vertices.Index(v)
	if !ok {
		return NoSuchVertexError{ID: v}
	}
	g.edges.add(id)
	g.idx.AddEdge(ui, vi)
	return nil
}

// Endpoints returns the endpoint identifiers of the edge id, or a
// NoSuchEdgeError if the identifier is unknown.
func (g *Mutable[V, E]) Endpoints(id E) (u, v V, err error) {
	ei, ok := g.edges.Index(id)
	if !ok {
		return u, v, NoSuchEdgeError{ID: id}
	}
	return g.vertices.ID(g.idx.Source(ei)), g.vertices.ID(g.idx.Target(ei)), nil
}

// Index returns the index-space representation of the graph.
func (g *Mutable[V, E]) Index() IndexGraph { return g.idx }

// VertexMap returns the vertex identifier↔index bijection.
func (g *Mutable[V, E]) VertexMap() IndexIDMap[V] { return g.vertices }

// EdgeMap returns the edge identifier↔index bijection.
func (g *Mutable[V, E]) EdgeMap() IndexIDMap[E] { return g.edges }

// idMap is the dense identifier↔index bijection behind Mutable.
type idMap[K comparable] struct {
	ids   []K
	index map[K]int
}

func newIDMap[K comparable]() *idMap[K] {
	return &idMap[K]{index: make(map[K]int)}
}

func (m *idMap[K]) add(id K) int {
	idx := len(m.ids)
	m.index[id] = idx
	m.ids = append(m.ids, id)
	return idx
}

func (m *idMap[K]) Index(id K) (int, bool) {
	idx, ok := m.index[id]
	return idx, ok
}

func (m *idMap[K]) ID(idx int) K { return m.ids[idx] }

func (m *idMap[K]) IDIfExists(idx int) (K, bool) {
	if idx < 0 || idx >= len(m.ids) {
		var zero K
		return zero, false
	}
	return m.ids[idx], true
}
