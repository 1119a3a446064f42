// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/heap"
)

// dijkstraFrom computes a shortest-path tree with Dijkstra's algorithm
// over an indexed heap with decrease-key. It fails fast on the first
// negative edge weight discovered.
//
// The time complexity is O(|E|.log|V|).
func dijkstraFrom(g graph.IndexGraph, source int, w graph.Weights) (*Tree, error) {
	t := newTree(g, source)
	h := heap.NewIndexHeapDouble(g.NumVertices())
	h.Insert(source, 0)
	for h.Len() != 0 {
		u := h.ExtractMin()
		du := t.dist[u]
		for it := g.OutEdges(u); it.Next(); {
			e := it.Edge()
			ew := w.Weight(e)
			if ew < 0 {
				return nil, graph.ErrNegativeWeight
			}
			v := it.Target()
			if h.WasExtracted(v) {
				continue
			}
			joint := du + ew
			switch {
			case !h.IsInserted(v):
				h.Insert(v, joint)
				t.dist[v] = joint
				t.backtrack[v] = e
			case joint < h.Key(v):
				h.DecreaseKey(v, joint)
				t.dist[v] = joint
				t.backtrack[v] = e
			}
		}
	}
	return t, nil
}
