// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/graphalg/graph"
)

// RandomWalk is an iterator over a uniform random walk on a graph.
// The walk ends when it reaches a vertex with no outgoing edges.
type RandomWalk struct {
	g   graph.IndexGraph
	rnd *rand.Rand

	cur      int
	lastEdge int
	steps    int
}

// NewRandomWalk returns a random walk over g starting at source. If
// src is nil, the walk is seeded from the global source.
func NewRandomWalk(g graph.IndexGraph, source int, src rand.Source) *RandomWalk {
	var rnd *rand.Rand
	if src != nil {
		rnd = rand.New(src)
	}
	return &RandomWalk{g: g, rnd: rnd, cur: source, lastEdge: -1}
}

// Next advances the walk by one step and reports whether a step was
// possible.
func (w *RandomWalk) Next() bool {
	out := w.g.OutEdges(w.cur)
	n := out.Len()
	if n == 0 {
		return false
	}
	var k int
	if w.rnd != nil {
		k = w.rnd.Intn(n)
	} else {
		k = rand.Intn(n)
	}
	for i := 0; i <= k; i++ {
		out.Next()
	}
	w.lastEdge = out.Edge()
	w.cur = out.Target()
	w.steps++
	return true
}

// Vertex returns the current vertex of the walk.
func (w *RandomWalk) Vertex() int { return w.cur }

// LastEdge returns the edge taken by the last step, or -1 before the
// first step.
func (w *RandomWalk) LastEdge() int { return w.lastEdge }

// Steps returns the number of steps taken.
func (w *RandomWalk) Steps() int { return w.steps }
