// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package match computes matchings in undirected graphs: maximum and
// minimum weight, perfect and non-perfect, and maximum cardinality,
// with a bipartite specialisation. The weighted core is a primal-dual
// blossom method; all entry points require an undirected graph.
package match // import "gonum.org/v1/graphalg/match"

import (
	"errors"
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/bitset"
	"gonum.org/v1/graphalg/internal/linear"
)

// ErrOddVertexCount is returned when a perfect matching is requested
// of a graph with an odd number of vertices.
var ErrOddVertexCount = errors.New("match: odd vertex count")

// ErrNoPerfectMatching is returned when a perfect matching is
// requested and none exists.
var ErrNoPerfectMatching = errors.New("match: no perfect matching")

// Matching is a set of edges sharing no endpoint. The matched-edge
// array and the edge set are two views of the same storage; the edge
// set is derived lazily.
type Matching struct {
	g       graph.IndexGraph
	matched []int // vertex → matching edge, -1 when unmatched

	edges []int
}

// Matched returns the matching edge at v, or -1 if v is unmatched.
func (m *Matching) Matched(v int) int { return m.matched[v] }

// IsMatched reports whether v is an endpoint of a matched edge.
func (m *Matching) IsMatched(v int) bool { return m.matched[v] >= 0 }

// IsPerfect reports whether every vertex is matched.
func (m *Matching) IsPerfect() bool {
	for _, e := range m.matched {
		if e < 0 {
			return false
		}
	}
	return true
}

// Len returns the number of matched edges.
func (m *Matching) Len() int { return len(m.Edges()) }

// Edges returns the matched edges. The scan keys each edge on its
// source endpoint so edges are not double counted. The returned slice
// is shared and must not be modified.
func (m *Matching) Edges() []int {
	if m.edges == nil {
		m.edges = []int{}
		for v, e := range m.matched {
			if e >= 0 && m.g.Source(e) == v {
				m.edges = append(m.edges, e)
			}
		}
	}
	return m.edges
}

// Weight returns the total weight of the matching under w. A nil w
// counts edges.
func (m *Matching) Weight(w graph.Weights) float64 {
	w = graph.ReplaceNil(w)
	var total float64
	for _, e := range m.Edges() {
		total += w.Weight(e)
	}
	return total
}

// MatchingOf is the identifier view of a matching.
type MatchingOf[V, E comparable] struct {
	g graph.Graph[V, E]
	m *Matching
}

// Index returns the underlying index-space matching.
func (m MatchingOf[V, E]) Index() *Matching { return m.m }

// Matched returns the matching edge at v, or false if v is unmatched
// or unknown.
func (m MatchingOf[V, E]) Matched(v V) (E, bool) {
	var zero E
	vi, ok := m.g.VertexMap().Index(v)
	if !ok {
		return zero, false
	}
	return m.g.EdgeMap().IDIfExists(m.m.Matched(vi))
}

// IsPerfect reports whether every vertex is matched.
func (m MatchingOf[V, E]) IsPerfect() bool { return m.m.IsPerfect() }

// Edges returns the matched edge identifiers.
func (m MatchingOf[V, E]) Edges() []E {
	em := m.g.EdgeMap()
	idx := m.m.Edges()
	es := make([]E, len(idx))
	for i, e := range idx {
		es[i] = em.ID(e)
	}
	return es
}

// Maximum returns a maximum weight matching of g. Edges of
// non-positive weight never improve the total and are not used. A nil
// w counts edges, yielding a maximum cardinality matching.
func Maximum[V, E comparable](g graph.Graph[V, E], w func(E) float64) (MatchingOf[V, E], error) {
	m, err := MaximumIndex(g.Index(), graph.WeightsOf(g.EdgeMap(), w))
	if err != nil {
		return MatchingOf[V, E]{}, err
	}
	return MatchingOf[V, E]{g: g, m: m}, nil
}

// MaximumIndex is the index-space variant of Maximum.
func MaximumIndex(g graph.IndexGraph, w graph.Weights) (*Matching, error) {
	if g.Directed() {
		return nil, graph.DirectionError{Directed: false}
	}
	if graph.IsCardinality(w) {
		return MaximumCardinalityIndex(g)
	}
	b := newBlossom(g, w, 0, false)
	return b.solve(), nil
}

// MaximumPerfect returns a maximum weight perfect matching of g, or
// ErrNoPerfectMatching (ErrOddVertexCount for an odd vertex count) if
// none exists.
func MaximumPerfect[V, E comparable](g graph.Graph[V, E], w func(E) float64) (MatchingOf[V, E], error) {
	m, err := MaximumPerfectIndex(g.Index(), graph.WeightsOf(g.EdgeMap(), w))
	if err != nil {
		return MatchingOf[V, E]{}, err
	}
	return MatchingOf[V, E]{g: g, m: m}, nil
}

// MaximumPerfectIndex is the index-space variant of MaximumPerfect.
// Cardinality is forced by shifting every weight up by more than the
// total weight spread, which preserves the relative order of
// equal-cardinality matchings.
func MaximumPerfectIndex(g graph.IndexGraph, w graph.Weights) (*Matching, error) {
	return perfectIndex(g, w, false)
}

// MinimumPerfect returns a minimum weight perfect matching of g, or
// ErrNoPerfectMatching (ErrOddVertexCount for an odd vertex count) if
// none exists.
func MinimumPerfect[V, E comparable](g graph.Graph[V, E], w func(E) float64) (MatchingOf[V, E], error) {
	m, err := MinimumPerfectIndex(g.Index(), graph.WeightsOf(g.EdgeMap(), w))
	if err != nil {
		return MatchingOf[V, E]{}, err
	}
	return MatchingOf[V, E]{g: g, m: m}, nil
}

// MinimumPerfectIndex is the index-space variant of MinimumPerfect,
// obtained by negating the weights integer-preservingly.
func MinimumPerfectIndex(g graph.IndexGraph, w graph.Weights) (*Matching, error) {
	return perfectIndex(g, w, true)
}

func perfectIndex(g graph.IndexGraph, w graph.Weights, minimize bool) (*Matching, error) {
	if g.Directed() {
		return nil, graph.DirectionError{Directed: false}
	}
	if g.NumVertices()%2 != 0 {
		return nil, ErrOddVertexCount
	}
	w = graph.ReplaceNil(w)
	shift := weightShift(g, w)
	b := newBlossom(g, w, shift, minimize)
	m := b.solve()
	if !m.IsPerfect() {
		return nil, ErrNoPerfectMatching
	}
	return m, nil
}

// weightShift returns 1+Σ|w|, an additive shift dominating any weight
// difference between matchings, so the shifted problem optimises
// cardinality first. Integer weights are folded with an overflow
// assertion.
func weightShift(g graph.IndexGraph, w graph.Weights) float64 {
	m := g.NumEdges()
	if iw, ok := w.(graph.IntWeights); ok {
		var sum int64 = 1
		for e := 0; e < m; e++ {
			c := int64(iw.WeightInt(e))
			if c < 0 {
				c = -c
			}
			sum += c
			if sum < 0 {
				panic("match: integer overflow folding weight shift")
			}
		}
		return float64(sum)
	}
	sum := 1.0
	for e := 0; e < m; e++ {
		sum += math.Abs(w.Weight(e))
	}
	return sum
}

// MaximumCardinality returns a matching of g with the largest number
// of edges, by Hopcroft-Karp when g is bipartite and by the blossom
// augmenting search otherwise.
func MaximumCardinality[V, E comparable](g graph.Graph[V, E]) (MatchingOf[V, E], error) {
	m, err := MaximumCardinalityIndex(g.Index())
	if err != nil {
		return MatchingOf[V, E]{}, err
	}
	return MatchingOf[V, E]{g: g, m: m}, nil
}

// MaximumCardinalityIndex is the index-space variant of
// MaximumCardinality.
func MaximumCardinalityIndex(g graph.IndexGraph) (*Matching, error) {
	if g.Directed() {
		return nil, graph.DirectionError{Directed: false}
	}
	if side, ok := bipartition(g); ok {
		return hopcroftKarp(g, side), nil
	}
	return cardinalityBlossom(g), nil
}

// bipartition two-colours g, reporting failure on an odd cycle.
func bipartition(g graph.IndexGraph) (*bitset.Set, bool) {
	n := g.NumVertices()
	side := bitset.New(n)
	colored := bitset.New(n)
	var queue linear.IntQueue
	for s := 0; s < n; s++ {
		if colored.Has(s) {
			continue
		}
		colored.Set(s)
		queue.Push(s)
		for queue.Len() > 0 {
			u := queue.Pop()
			for it := g.OutEdges(u); it.Next(); {
				v := it.Target()
				if v == u {
					return nil, false
				}
				if !colored.Has(v) {
					colored.Set(v)
					if !side.Has(u) {
						side.Set(v)
					}
					queue.Push(v)
					continue
				}
				if side.Has(u) == side.Has(v) {
					return nil, false
				}
			}
		}
	}
	return side, true
}
