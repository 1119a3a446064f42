// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// OfIndex wraps an index graph as a Graph[int,int] whose identifier
// maps are the identity, so that index graphs can be passed to the
// generic algorithm entry points without translation cost.
func OfIndex(g IndexGraph) Graph[int, int] {
	return identityGraph{g}
}

type identityGraph struct {
	g IndexGraph
}

func (g identityGraph) Index() IndexGraph { return g.g }

func (g identityGraph) VertexMap() IndexIDMap[int] {
	return identityMap{n: g.g.NumVertices()}
}

func (g identityGraph) EdgeMap() IndexIDMap[int] {
	return identityMap{n: g.g.NumEdges()}
}

type identityMap struct {
	n int
}

func (m identityMap) Index(id int) (int, bool) {
	if id < 0 || id >= m.n {
		return 0, false
	}
	return id, true
}

func (m identityMap) ID(idx int) int { return idx }

func (m identityMap) IDIfExists(idx int) (int, bool) {
	if idx < 0 || idx >= m.n {
		return 0, false
	}
	return idx, true
}
