// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/graphalg/flow"
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/linear"
)

// KEdgeOptions configure the randomised k-edge-connectivity
// computation.
type KEdgeOptions struct {
	// Seed seeds the random source when non-zero; otherwise the
	// global source is used.
	Seed uint64
}

// KEdgeConnected returns the partition of the vertices of g into
// k-edge-connected components: maximal vertex sets that remain
// mutually connected after the removal of any k-1 edges.
//
// The computation is Wang's randomised divide: repeatedly separate a
// random terminal pair by a minimum cut of the whole graph, record the
// cut weight on an auxiliary tree edge between the terminals, and
// recurse on the two sides; components are then read off the auxiliary
// tree by following only edges of weight at least k.
func KEdgeConnected(g graph.IndexGraph, k int, opts KEdgeOptions) (*VertexPartition, error) {
	if k <= 0 {
		return nil, graph.ArgumentError{Reason: "k must be positive"}
	}
	n := g.NumVertices()
	var rnd *rand.Rand
	if opts.Seed != 0 {
		rnd = rand.New(rand.NewSource(opts.Seed))
	} else {
		rnd = rand.New(rand.NewSource(rand.Uint64()))
	}

	type auxEdge struct {
		s, t   int
		weight float64
	}
	var aux []auxEdge

	weak := WeaklyConnected(g)
	for b := 0; b < weak.NumBlocks(); b++ {
		verts := append([]int(nil), weak.BlockVertices(b)...)
		if len(verts) < 2 {
			continue
		}
		type job struct {
			source   int
			from, to int
		}
		stack := []job{{source: verts[0], from: 0, to: len(verts)}}
		for len(stack) > 0 {
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if j.to-j.from < 2 {
				continue
			}
			// Pick a random sink distinct from the source.
			var sink int
			for {
				sink = verts[j.from+rnd.Intn(j.to-j.from)]
				if sink != j.source {
					break
				}
			}
			cut, err := flow.MinCutIndex(g, j.source, sink, graph.Cardinality)
			if err != nil {
				return nil, err
			}
			withSource := cut.InSourceSide
			if g.Directed() {
				// Edge connectivity of a directed pair is the smaller
				// of the two one-way cuts.
				rev, err := flow.MinCutIndex(g, sink, j.source, graph.Cardinality)
				if err != nil {
					return nil, err
				}
				if rev.Weight() < cut.Weight() {
					cut = rev
					withSource = func(v int) bool { return !rev.InSourceSide(v) }
				}
			}
			if cut.Weight() > 0 {
				aux = append(aux, auxEdge{s: j.source, t: sink, weight: cut.Weight()})
			}
			// Two-pointer partition of the range: the source's side
			// first.
			lo, hi := j.from, j.to-1
			for lo <= hi {
				if withSource(verts[lo]) {
					lo++
				} else {
					verts[lo], verts[hi] = verts[hi], verts[lo]
					hi--
				}
			}
			stack = append(stack,
				job{source: j.source, from: j.from, to: lo},
				job{source: sink, from: lo, to: j.to},
			)
		}
	}

	// Components follow auxiliary edges of weight at least k.
	adj := make([][]int, n)
	for _, e := range aux {
		if e.weight >= float64(k) {
			adj[e.s] = append(adj[e.s], e.t)
			adj[e.t] = append(adj[e.t], e.s)
		}
	}
	block := make([]int, n)
	for i := range block {
		block[i] = -1
	}
	var nblocks int
	var queue linear.IntQueue
	for v := 0; v < n; v++ {
		if block[v] >= 0 {
			continue
		}
		block[v] = nblocks
		queue.Push(v)
		for queue.Len() > 0 {
			u := queue.Pop()
			for _, w := range adj[u] {
				if block[w] < 0 {
					block[w] = nblocks
					queue.Push(w)
				}
			}
		}
		nblocks++
	}
	return NewVertexPartition(g, block, nblocks), nil
}
