// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"gonum.org/v1/graphalg/graph"
)

// BiconnectedComponents is the decomposition of an undirected graph
// into maximal subgraphs with no cut vertex. Components are reported
// as edge lists; a cut vertex belongs to more than one component.
type BiconnectedComponents struct {
	// Components holds the edges of each biconnected component.
	Components [][]int

	// CutVertices holds the articulation vertices of the graph.
	CutVertices []int
}

// Biconnected returns the biconnected components and the articulation
// vertices of the undirected graph g using the Hopcroft-Tarjan
// lowpoint search.
func Biconnected(g graph.IndexGraph) (*BiconnectedComponents, error) {
	if g.Directed() {
		return nil, graph.DirectionError{Directed: false}
	}
	n := g.NumVertices()
	b := &bicon{
		g:    g,
		disc: make([]int, n),
		low:  make([]int, n),
	}
	for i := range b.disc {
		b.disc[i] = -1
	}
	res := &BiconnectedComponents{}
	for v := 0; v < n; v++ {
		if b.disc[v] < 0 {
			b.root(v, res)
		}
	}
	return res, nil
}

type bicon struct {
	g    graph.IndexGraph
	time int
	disc []int
	low  []int

	estack []int
}

func (b *bicon) root(r int, res *BiconnectedComponents) {
	children := b.visit(r, -1, res)
	if children > 1 {
		res.CutVertices = append(res.CutVertices, r)
	}
}

// visit performs the lowpoint DFS from v, entered over the edge
// parent, and returns the number of DFS children of v.
func (b *bicon) visit(v, parent int, res *BiconnectedComponents) int {
	b.disc[v] = b.time
	b.low[v] = b.time
	b.time++
	var children int
	for it := b.g.OutEdges(v); it.Next(); {
		e := it.Edge()
		if e == parent {
			continue
		}
		w := b.g.Endpoint(e, v)
		if w == v {
			// A self loop is its own trivial component.
			res.Components = append(res.Components, []int{e})
			continue
		}
		if b.disc[w] < 0 {
			children++
			b.estack = append(b.estack, e)
			b.visit(w, e, res)
			b.low[v] = min(b.low[v], b.low[w])
			if b.low[w] >= b.disc[v] {
				// v separates w's subtree: pop one component.
				var comp []int
				for {
					top := b.estack[len(b.estack)-1]
					b.estack = b.estack[:len(b.estack)-1]
					comp = append(comp, top)
					if top == e {
						break
					}
				}
				res.Components = append(res.Components, comp)
				if parent >= 0 {
					res.CutVertices = appendUnique(res.CutVertices, v)
				}
			}
		} else if b.disc[w] < b.disc[v] {
			// Back edge.
			b.estack = append(b.estack, e)
			b.low[v] = min(b.low[v], b.disc[w])
		}
	}
	return children
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
