// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flow provides maximum-flow, minimum-cut and minimum-cost
// flow computations over index graphs. The maximum-flow core is a
// push-relabel algorithm accelerated with a link-cut forest;
// minimum-cost problems with lower bounds, supplies or multiple
// terminals reduce to a single-source single-sink form solved by
// successive shortest paths.
package flow // import "gonum.org/v1/graphalg/flow"

import (
	"errors"
	"math"

	"gonum.org/v1/graphalg/graph"
)

// ErrUnsupported is returned when a requested feature is not supported
// by the chosen algorithm.
var ErrUnsupported = errors.New("flow: unsupported operation")

// Flow is a feasible flow on a graph. On directed edges the value lies
// in [0,capacity]; on undirected edges its magnitude is bounded by the
// capacity and its sign encodes the direction relative to the edge's
// stored orientation. Net flow is zero at every vertex other than the
// sources and sinks.
type Flow struct {
	g graph.IndexGraph
	f []float64

	value float64
}

// Flow returns the flow on the edge e.
func (f *Flow) Flow(e int) float64 { return f.f[e] }

// Value returns the total flow carried from the sources to the sinks.
func (f *Flow) Value() float64 { return f.value }

// Residual returns the residual view of the flow under the given
// capacities.
func (f *Flow) Residual(capacity graph.Weights) *Residual {
	return &Residual{g: f.g, cap: graph.ReplaceNil(capacity), f: f}
}

// Residual exposes the forward and backward residual capacities of a
// flow.
type Residual struct {
	g   graph.IndexGraph
	cap graph.Weights
	f   *Flow
}

// Forward returns the remaining forward capacity of e.
func (r *Residual) Forward(e int) float64 {
	return r.cap.Weight(e) - r.f.Flow(e)
}

// Backward returns the backward residual of e: the flow that can be
// cancelled.
func (r *Residual) Backward(e int) float64 {
	if r.g.Directed() {
		return r.f.Flow(e)
	}
	return r.cap.Weight(e) + r.f.Flow(e)
}

// Cut is a partition of the vertices of a graph separating a source
// from a sink.
type Cut struct {
	g          graph.IndexGraph
	sourceSide []bool
	weight     float64

	edges []int
}

// Weight returns the total capacity crossing the cut.
func (c *Cut) Weight() float64 { return c.weight }

// InSourceSide reports whether v lies on the source side of the cut.
func (c *Cut) InSourceSide(v int) bool { return c.sourceSide[v] }

// Edges returns the edges crossing the cut, computed lazily.
func (c *Cut) Edges() []int {
	if c.edges == nil {
		for e := 0; e < c.g.NumEdges(); e++ {
			if c.sourceSide[c.g.Source(e)] != c.sourceSide[c.g.Target(e)] {
				c.edges = append(c.edges, e)
			}
		}
	}
	return c.edges
}

// Maximum returns a maximum flow from source to sink in g under the
// given capacities. A nil capacity gives every edge unit capacity.
// Integer-typed capacities are computed exactly; real capacities use a
// tolerance scaled from the smallest positive capacity.
func Maximum[V, E comparable](g graph.Graph[V, E], source, sink V, capacity func(E) float64) (*Flow, error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: source}
	}
	ti, ok := g.VertexMap().Index(sink)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: sink}
	}
	return MaximumIndex(g.Index(), si, ti, graph.WeightsOf(g.EdgeMap(), capacity))
}

// MaximumIndex is the index-space variant of Maximum.
func MaximumIndex(g graph.IndexGraph, source, sink int, capacity graph.Weights) (*Flow, error) {
	if source == sink {
		return nil, graph.ArgumentError{Reason: "equal source and sink"}
	}
	capacity = graph.ReplaceNil(capacity)
	if ic, ok := capacity.(graph.IntWeights); ok {
		pr, err := newPushRelabel[int64](g, source, sink, intCaps(g, ic), 0)
		if err != nil {
			return nil, err
		}
		return pr.run(), nil
	}
	caps, eps := floatCaps(g, capacity)
	pr, err := newPushRelabel[float64](g, source, sink, caps, eps)
	if err != nil {
		return nil, err
	}
	return pr.run(), nil
}

// MinCutIndex returns a minimum cut separating source from sink under
// the given capacities, derived from the residual reachability of a
// maximum flow.
func MinCutIndex(g graph.IndexGraph, source, sink int, capacity graph.Weights) (*Cut, error) {
	if source == sink {
		return nil, graph.ArgumentError{Reason: "equal source and sink"}
	}
	capacity = graph.ReplaceNil(capacity)
	if ic, ok := capacity.(graph.IntWeights); ok {
		pr, err := newPushRelabel[int64](g, source, sink, intCaps(g, ic), 0)
		if err != nil {
			return nil, err
		}
		f := pr.run()
		return pr.minCut(f), nil
	}
	caps, eps := floatCaps(g, capacity)
	pr, err := newPushRelabel[float64](g, source, sink, caps, eps)
	if err != nil {
		return nil, err
	}
	f := pr.run()
	return pr.minCut(f), nil
}

// MinCut returns a minimum cut separating source from sink in g.
func MinCut[V, E comparable](g graph.Graph[V, E], source, sink V, capacity func(E) float64) (*Cut, error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: source}
	}
	ti, ok := g.VertexMap().Index(sink)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: sink}
	}
	return MinCutIndex(g.Index(), si, ti, graph.WeightsOf(g.EdgeMap(), capacity))
}

func intCaps(g graph.IndexGraph, w graph.IntWeights) []int64 {
	caps := make([]int64, g.NumEdges())
	for e := range caps {
		caps[e] = int64(w.WeightInt(e))
	}
	return caps
}

func floatCaps(g graph.IndexGraph, w graph.Weights) ([]float64, float64) {
	caps := make([]float64, g.NumEdges())
	minPos := math.Inf(1)
	for e := range caps {
		caps[e] = w.Weight(e)
		if caps[e] > 0 && caps[e] < minPos {
			minPos = caps[e]
		}
	}
	if math.IsInf(minPos, 1) {
		return caps, 0
	}
	return caps, minPos * 1e-8
}
