// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

// Weights maps edge indices to real weights.
type Weights interface {
	// Weight returns the weight of the edge e.
	Weight(e int) float64
}

// IntWeights is a Weights whose values are integers. Algorithms with
// an integer specialisation inspect for this interface at the façade
// and convert once, not inside loops.
type IntWeights interface {
	Weights

	// WeightInt returns the weight of the edge e.
	WeightInt(e int) int
}

// SliceWeights is a Weights backed by a slice indexed by edge.
type SliceWeights []float64

// Weight returns the weight of the edge e.
func (w SliceWeights) Weight(e int) float64 { return w[e] }

// SliceIntWeights is an IntWeights backed by a slice indexed by edge.
type SliceIntWeights []int

// Weight returns the weight of the edge e.
func (w SliceIntWeights) Weight(e int) float64 { return float64(w[e]) }

// WeightInt returns the weight of the edge e.
func (w SliceIntWeights) WeightInt(e int) int { return w[e] }

type cardinality struct{}

func (cardinality) Weight(int) float64 { return 1 }
func (cardinality) WeightInt(int) int  { return 1 }

// Cardinality is the canonical weight function assigning weight 1 to
// every edge. It is the semantic default when no weights are supplied,
// and algorithms recognise this singleton to switch to unweighted fast
// paths.
var Cardinality IntWeights = cardinality{}

// IsCardinality reports whether w is nil or the Cardinality singleton.
func IsCardinality(w Weights) bool {
	if w == nil {
		return true
	}
	_, ok := w.(cardinality)
	return ok
}

// ReplaceNil normalises a nil weight function to Cardinality.
func ReplaceNil(w Weights) Weights {
	if w == nil {
		return Cardinality
	}
	return w
}

// VertexWeights maps vertex indices to real values. It is consumed by
// algorithms taking per-vertex quantities such as supplies.
type VertexWeights interface {
	// WeightOf returns the value associated with the vertex v.
	WeightOf(v int) float64
}

// SliceVertexWeights is a VertexWeights backed by a slice indexed by
// vertex.
type SliceVertexWeights []float64

// WeightOf returns the value associated with the vertex v.
func (w SliceVertexWeights) WeightOf(v int) float64 { return w[v] }

// funcWeights adapts an identifier-keyed weight function to index
// space by composing with an IndexIDMap.
type funcWeights[E comparable] struct {
	m IndexIDMap[E]
	w func(E) float64
}

func (w funcWeights[E]) Weight(e int) float64 { return w.w(w.m.ID(e)) }

// WeightsOf lifts an identifier-keyed weight function into index
// space using the edge map m. A nil w yields Cardinality.
func WeightsOf[E comparable](m IndexIDMap[E], w func(E) float64) Weights {
	if w == nil {
		return Cardinality
	}
	return funcWeights[E]{m: m, w: w}
}
