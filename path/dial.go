// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/list"
)

// dialFrom computes a shortest-path tree with Dial's bucket queue for
// integer weights bounded by maxDist.
//
// The time complexity is O(|V|+|E|+maxDist).
func dialFrom(g graph.IndexGraph, source int, w graph.IntWeights, maxDist int) (*Tree, error) {
	t := newTree(g, source)
	n := g.NumVertices()

	const unset = -1
	distInt := make([]int, n)
	for i := range distInt {
		distInt[i] = unset
	}
	heads := make([]int, maxDist+1)
	for i := range heads {
		heads[i] = -1
	}
	buckets := list.NewDoubly(n)

	distInt[source] = 0
	heads[0] = buckets.PushFront(heads[0], source)

	for d := 0; d <= maxDist; d++ {
		for heads[d] != -1 {
			u := heads[d]
			heads[d] = buckets.Remove(heads[d], u)
			for it := g.OutEdges(u); it.Next(); {
				e := it.Edge()
				ew := w.WeightInt(e)
				if ew < 0 {
					return nil, graph.ErrNegativeWeight
				}
				v := it.Target()
				nd := d + ew
				if distInt[v] != unset && distInt[v] <= nd {
					continue
				}
				if nd > maxDist {
					return nil, graph.ArgumentError{Reason: "distance exceeds declared maximum"}
				}
				if distInt[v] != unset {
					heads[distInt[v]] = buckets.Remove(heads[distInt[v]], v)
				}
				distInt[v] = nd
				heads[nd] = buckets.PushFront(heads[nd], v)
				t.backtrack[v] = e
			}
		}
	}
	for v := 0; v < n; v++ {
		if distInt[v] != unset {
			t.dist[v] = float64(distInt[v])
		}
	}
	return t, nil
}
