// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/heap"
)

// MinCostMaxFlow returns a maximum flow of minimum total cost from
// source to sink in the directed graph g. A nil capacity gives unit
// capacities; a nil cost gives unit costs.
func MinCostMaxFlow[V, E comparable](g graph.Graph[V, E], source, sink V, capacity, cost func(E) float64) (*Flow, error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: source}
	}
	ti, ok := g.VertexMap().Index(sink)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: sink}
	}
	em := g.EdgeMap()
	return MinCostMaxFlowIndex(g.Index(), si, ti, graph.WeightsOf(em, capacity), graph.WeightsOf(em, cost))
}

// MinCostMaxFlowIndex is the index-space variant of MinCostMaxFlow.
func MinCostMaxFlowIndex(g graph.IndexGraph, source, sink int, capacity, cost graph.Weights) (*Flow, error) {
	if !g.Directed() {
		return nil, ErrUnsupported
	}
	if source == sink {
		return nil, graph.ArgumentError{Reason: "equal source and sink"}
	}
	capacity = graph.ReplaceNil(capacity)
	cost = graph.ReplaceNil(cost)

	m := g.NumEdges()
	nw := newCostNetwork(g.NumVertices())
	flows := make([]float64, m)
	arcOf := make([]int, m)
	for e := 0; e < m; e++ {
		u, v := g.Source(e), g.Target(e)
		c := capacity.Weight(e)
		if c < 0 {
			return nil, graph.ArgumentError{Reason: "negative capacity"}
		}
		arcOf[e] = -1
		if u == v {
			// Negative-cost self loops are saturated up front; they
			// never appear in augmenting paths.
			if cost.Weight(e) < 0 {
				flows[e] = c
			}
			continue
		}
		arcOf[e] = nw.addArc(u, v, c, cost.Weight(e))
	}
	if err := nw.maxFlowSSP(source, sink); err != nil {
		return nil, err
	}
	var value float64
	for e := 0; e < m; e++ {
		if arcOf[e] >= 0 {
			flows[e] = nw.flowOf(arcOf[e])
		}
		if g.Source(e) == g.Target(e) {
			continue
		}
		if g.Source(e) == source {
			value += flows[e]
		} else if g.Target(e) == source {
			value -= flows[e]
		}
	}
	return &Flow{g: g, f: flows, value: value}, nil
}

// MinCostFlow returns a minimum-cost feasible flow in the directed
// graph g satisfying the given per-vertex supplies (positive) and
// demands (negative), edge lower bounds and capacities. Supplies must
// sum to zero.
func MinCostFlow[V, E comparable](g graph.Graph[V, E], capacity, cost, lowerBound func(E) float64, supply func(V) float64) (*Flow, error) {
	em := g.EdgeMap()
	ig := g.Index()
	sup := make([]float64, ig.NumVertices())
	if supply != nil {
		vm := g.VertexMap()
		for v := range sup {
			sup[v] = supply(vm.ID(v))
		}
	}
	var lb graph.Weights
	if lowerBound != nil {
		lb = graph.WeightsOf(em, lowerBound)
	}
	return MinCostFlowIndex(ig, graph.WeightsOf(em, capacity), graph.WeightsOf(em, cost), lb, sup)
}

// MinCostFlowIndex is the index-space variant of MinCostFlow. A nil
// lowerBound means zero lower bounds.
//
// The problem is reduced to a single-source single-sink min-cost
// max-flow: lower bounds are subtracted from capacities and moved into
// the supplies, a super source feeds every positive-supply vertex and
// a super sink drains every negative-supply vertex, and the
// supply-satisfying arcs carry a huge negative cost so that any
// optimal flow saturates them.
func MinCostFlowIndex(g graph.IndexGraph, capacity, cost, lowerBound graph.Weights, supply []float64) (*Flow, error) {
	if !g.Directed() {
		return nil, ErrUnsupported
	}
	capacity = graph.ReplaceNil(capacity)
	cost = graph.ReplaceNil(cost)

	n, m := g.NumVertices(), g.NumEdges()
	if len(supply) != n {
		return nil, graph.ArgumentError{Reason: "supply length does not match vertex count"}
	}
	var total float64
	for _, s := range supply {
		total += s
	}
	if math.Abs(total) > 1e-9 {
		return nil, graph.ArgumentError{Reason: "supplies do not sum to zero"}
	}

	hugeCost := hugeNegativeCost(g, cost, capacity)

	excess := make([]float64, n)
	copy(excess, supply)
	flows := make([]float64, m)
	arcOf := make([]int, m)

	// The reduced network has two extra vertices: the super source n
	// and the super sink n+1.
	nw := newCostNetwork(n + 2)
	superSource, superSink := n, n+1

	for e := 0; e < m; e++ {
		u, v := g.Source(e), g.Target(e)
		c := capacity.Weight(e)
		var lb float64
		if lowerBound != nil {
			lb = lowerBound.Weight(e)
		}
		if lb < 0 || lb > c {
			return nil, graph.ArgumentError{Reason: "lower bound exceeds capacity"}
		}
		arcOf[e] = -1
		if u == v {
			if cost.Weight(e) < 0 {
				flows[e] = c
			} else {
				flows[e] = lb
			}
			continue
		}
		// Transfer the mandatory lb units into the supplies.
		excess[v] += lb
		excess[u] -= lb
		flows[e] = lb
		arcOf[e] = nw.addArc(u, v, c-lb, cost.Weight(e))
	}
	var needed float64
	for v := 0; v < n; v++ {
		switch {
		case excess[v] > 0:
			nw.addArc(superSource, v, excess[v], hugeCost)
			needed += excess[v]
		case excess[v] < 0:
			nw.addArc(v, superSink, -excess[v], 0)
		}
	}
	if err := nw.maxFlowSSP(superSource, superSink); err != nil {
		return nil, err
	}
	var sent float64
	for _, a := range nw.adj[superSource] {
		sent += nw.flowOf(a)
	}
	if math.Abs(sent-needed) > 1e-9 {
		return nil, graph.ArgumentError{Reason: "infeasible supply"}
	}
	for e := 0; e < m; e++ {
		if arcOf[e] >= 0 {
			flows[e] += nw.flowOf(arcOf[e])
		}
	}
	var value float64
	for v := 0; v < n; v++ {
		if supply[v] > 0 {
			value += supply[v]
		}
	}
	return &Flow{g: g, f: flows, value: value}, nil
}

// hugeNegativeCost returns -(1+Σ|cost|) over the edges, the cost that
// forces supply arcs to saturate. For integer costs the fold is
// checked for overflow.
func hugeNegativeCost(g graph.IndexGraph, cost, capacity graph.Weights) float64 {
	m := g.NumEdges()
	if ic, ok := cost.(graph.IntWeights); ok {
		var sum int64 = 1
		for e := 0; e < m; e++ {
			c := int64(ic.WeightInt(e))
			if c < 0 {
				c = -c
			}
			sum += c
			if sum < 0 {
				panic("flow: integer overflow folding total cost")
			}
		}
		return -float64(sum)
	}
	sum := 1.0
	for e := 0; e < m; e++ {
		sum += math.Abs(cost.Weight(e))
	}
	return -sum
}

// costNetwork is the arc-paired residual network of the successive
// shortest path solver. Arc a and its twin a^1 are stored adjacently.
type costNetwork struct {
	n    int
	to   []int
	cap  []float64
	cst  []float64
	adj  [][]int
	init []float64 // original capacity of forward arcs, by pair
}

func newCostNetwork(n int) *costNetwork {
	return &costNetwork{n: n, adj: make([][]int, n)}
}

func (nw *costNetwork) addArc(u, v int, c, cost float64) int {
	a := len(nw.to)
	nw.to = append(nw.to, v, u)
	nw.cap = append(nw.cap, c, 0)
	nw.cst = append(nw.cst, cost, -cost)
	nw.adj[u] = append(nw.adj[u], a)
	nw.adj[v] = append(nw.adj[v], a+1)
	nw.init = append(nw.init, c)
	return a
}

// flowOf returns the flow carried by the forward arc a.
func (nw *costNetwork) flowOf(a int) float64 {
	return nw.init[a/2] - nw.cap[a]
}

// maxFlowSSP augments along successive shortest paths under reduced
// costs until the sink is unreachable. Initial potentials come from a
// Bellman-Ford pass so that negative arc costs are handled; a negative
// cost cycle is not: the reductions never produce one, and inputs
// containing one are rejected.
func (nw *costNetwork) maxFlowSSP(s, t int) error {
	pot, err := nw.initialPotentials(s)
	if err != nil {
		return err
	}
	dist := make([]float64, nw.n)
	parent := make([]int, nw.n)
	h := heap.NewIndexHeapDouble(nw.n)
	for {
		for i := range dist {
			dist[i] = math.Inf(1)
			parent[i] = -1
		}
		dist[s] = 0
		h.Clear()
		h.Insert(s, 0)
		for h.Len() != 0 {
			u := h.ExtractMin()
			du := dist[u]
			for _, a := range nw.adj[u] {
				if nw.cap[a] <= 1e-12 {
					continue
				}
				v := nw.to[a]
				rc := nw.cst[a] + pot[u] - pot[v]
				joint := du + rc
				if joint < dist[v] {
					switch {
					case h.WasExtracted(v):
						continue
					case h.IsInserted(v):
						h.DecreaseKey(v, joint)
					default:
						h.Insert(v, joint)
					}
					dist[v] = joint
					parent[v] = a
				}
			}
		}
		if math.IsInf(dist[t], 1) {
			return nil
		}
		for v := 0; v < nw.n; v++ {
			if !math.IsInf(dist[v], 1) {
				pot[v] += dist[v]
			}
		}
		// Augment by the bottleneck along the parent arcs.
		bottleneck := math.Inf(1)
		for v := t; v != s; {
			a := parent[v]
			if nw.cap[a] < bottleneck {
				bottleneck = nw.cap[a]
			}
			v = nw.to[a^1]
		}
		for v := t; v != s; {
			a := parent[v]
			nw.cap[a] -= bottleneck
			nw.cap[a^1] += bottleneck
			v = nw.to[a^1]
		}
	}
}

// initialPotentials runs Bellman-Ford over the arc network so that all
// reduced costs start non-negative.
func (nw *costNetwork) initialPotentials(s int) ([]float64, error) {
	pot := make([]float64, nw.n)
	for i := range pot {
		pot[i] = math.Inf(1)
	}
	pot[s] = 0
	for round := 0; ; round++ {
		var changed bool
		for a := 0; a < len(nw.to); a++ {
			if nw.cap[a] <= 0 {
				continue
			}
			u := nw.to[a^1]
			if math.IsInf(pot[u], 1) {
				continue
			}
			if d := pot[u] + nw.cst[a]; d < pot[nw.to[a]] {
				pot[nw.to[a]] = d
				changed = true
			}
		}
		if !changed {
			break
		}
		if round > nw.n {
			return nil, ErrUnsupported // negative cost cycle
		}
	}
	for i := range pot {
		if math.IsInf(pot[i], 1) {
			pot[i] = 0
		}
	}
	return pot, nil
}
