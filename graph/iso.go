// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// IsoMapping is a partial mapping between the vertex and edge index
// spaces of two graphs. Unmapped indices hold the sentinel -1. The
// inverse mapping is memoised on first use and back-linked so that
// m.Inverse().Inverse() returns m itself.
type IsoMapping struct {
	vertexMap []int
	edgeMap   []int

	// Codomain sizes, needed to invert.
	numVertices int
	numEdges    int

	inv *IsoMapping
}

// NewIsoMapping returns a mapping with the given vertex and edge
// images. numVertices and numEdges are the sizes of the target graph's
// index spaces.
func NewIsoMapping(vertexMap, edgeMap []int, numVertices, numEdges int) *IsoMapping {
	return &IsoMapping{
		vertexMap:   vertexMap,
		edgeMap:     edgeMap,
		numVertices: numVertices,
		numEdges:    numEdges,
	}
}

// Vertex returns the image of the vertex v, or false if v is unmapped.
func (m *IsoMapping) Vertex(v int) (int, bool) {
	w := m.vertexMap[v]
	return w, w >= 0
}

// Edge returns the image of the edge e, or false if e is unmapped.
func (m *IsoMapping) Edge(e int) (int, bool) {
	f := m.edgeMap[e]
	return f, f >= 0
}

// VertexMap returns the raw vertex image slice with -1 sentinels. The
// returned slice must not be modified.
func (m *IsoMapping) VertexMap() []int { return m.vertexMap }

// EdgeMap returns the raw edge image slice with -1 sentinels. The
// returned slice must not be modified.
func (m *IsoMapping) EdgeMap() []int { return m.edgeMap }

// Inverse returns the inverse mapping. The inverse is computed on
// first call and installed on both sides.
func (m *IsoMapping) Inverse() *IsoMapping {
	if m.inv != nil {
		return m.inv
	}
	inv := &IsoMapping{
		vertexMap:   invert(m.vertexMap, m.numVertices),
		edgeMap:     invert(m.edgeMap, m.numEdges),
		numVertices: len(m.vertexMap),
		numEdges:    len(m.edgeMap),
		inv:         m,
	}
	m.inv = inv
	return inv
}

func invert(fwd []int, n int) []int {
	inv := make([]int, n)
	for i := range inv {
		inv[i] = -1
	}
	for i, j := range fwd {
		if j >= 0 {
			inv[j] = i
		}
	}
	return inv
}
