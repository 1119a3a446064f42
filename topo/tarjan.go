// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/linear"
)

// WeaklyConnected returns the partition of the vertices of g into
// weakly connected components: components of the graph with edge
// directions ignored.
func WeaklyConnected(g graph.IndexGraph) *VertexPartition {
	n := g.NumVertices()
	block := make([]int, n)
	for i := range block {
		block[i] = -1
	}
	var k int
	var queue linear.IntQueue
	for s := 0; s < n; s++ {
		if block[s] >= 0 {
			continue
		}
		block[s] = k
		queue.Push(s)
		for queue.Len() > 0 {
			u := queue.Pop()
			for _, it := range []graph.EdgeIterator{g.OutEdges(u), g.InEdges(u)} {
				for it.Next() {
					v := g.Endpoint(it.Edge(), u)
					if block[v] < 0 {
						block[v] = k
						queue.Push(v)
					}
				}
			}
		}
		k++
	}
	return NewVertexPartition(g, block, k)
}

// StronglyConnected returns the partition of the vertices of g into
// strongly connected components using Tarjan's algorithm. For an
// undirected graph the result equals WeaklyConnected. Components are
// numbered in reverse topological order of the condensation.
//
// The implementation is an iterative rendering of the pseudocode at
// http://en.wikipedia.org/wiki/Tarjan%27s_strongly_connected_components_algorithm
func StronglyConnected(g graph.IndexGraph) *VertexPartition {
	if !g.Directed() {
		return WeaklyConnected(g)
	}
	n := g.NumVertices()
	t := tarjan{
		g:          g,
		indexTable: make([]int, n),
		lowLink:    make([]int, n),
		onStack:    make([]bool, n),
		block:      make([]int, n),
	}
	for i := range t.block {
		t.block[i] = -1
	}
	for v := 0; v < n; v++ {
		if t.indexTable[v] == 0 {
			t.strongconnect(v)
		}
	}
	return NewVertexPartition(g, t.block, t.nblocks)
}

// tarjan implements Tarjan's strongly connected component finding
// algorithm with an explicit call stack.
type tarjan struct {
	g graph.IndexGraph

	index      int
	indexTable []int
	lowLink    []int
	onStack    []bool

	stack linear.IntStack

	block   []int
	nblocks int
}

type tarjanFrame struct {
	v  int
	it graph.EdgeIterator
	w  int // successor awaiting lowlink propagation, -1 if none
}

func (t *tarjan) strongconnect(v int) {
	call := []tarjanFrame{{v: v, it: t.g.OutEdges(v), w: -1}}
	t.visit(v)
	for len(call) > 0 {
		top := &call[len(call)-1]
		if top.w >= 0 {
			t.lowLink[top.v] = min(t.lowLink[top.v], t.lowLink[top.w])
			top.w = -1
		}
		recursed := false
		for top.it.Next() {
			w := top.it.Target()
			if t.indexTable[w] == 0 {
				// Successor has not yet been visited; recur on it.
				top.w = w
				t.visit(w)
				call = append(call, tarjanFrame{v: w, it: t.g.OutEdges(w), w: -1})
				recursed = true
				break
			} else if t.onStack[w] {
				// Successor is on the stack and hence in the current
				// component.
				t.lowLink[top.v] = min(t.lowLink[top.v], t.indexTable[w])
			}
		}
		if recursed {
			continue
		}
		// If v is a root, pop the stack and emit a component.
		if t.lowLink[top.v] == t.indexTable[top.v] {
			for {
				w := t.stack.Pop()
				t.onStack[w] = false
				t.block[w] = t.nblocks
				if w == top.v {
					break
				}
			}
			t.nblocks++
		}
		call = call[:len(call)-1]
	}
}

func (t *tarjan) visit(v int) {
	t.index++
	t.indexTable[v] = t.index
	t.lowLink[v] = t.index
	t.stack.Push(v)
	t.onStack[v] = true
}
