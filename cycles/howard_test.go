// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cycles

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"gonum.org/v1/graphalg/graph"
)

func TestMinimumMeanCycle(t *testing.T) {
	// A triangle of mean 2 and a heavier two-cycle of mean 5.
	g := graph.NewIndexDirected(4)
	g.AddEdge(0, 1) // 2
	g.AddEdge(1, 2) // 2
	g.AddEdge(2, 0) // 2
	g.AddEdge(1, 3) // 5
	g.AddEdge(3, 1) // 5
	w := graph.SliceIntWeights{2, 2, 2, 5, 5}

	p, mean, err := MinimumMeanCycleIndex(g, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a cycle")
	}
	if !scalar.EqualWithinAbs(mean, 2, 1e-9) {
		t.Errorf("unexpected mean: got %v want 2", mean)
	}
	if got := p.Len(); got != 3 {
		t.Errorf("unexpected cycle length: got %d want 3", got)
	}
	if !p.IsCycle() {
		t.Error("returned path is not a cycle")
	}
	if got := p.Weight(w); got != 6 {
		t.Errorf("unexpected cycle weight: got %v want 6", got)
	}
}

func TestMinimumMeanCycleUnbalanced(t *testing.T) {
	// A long cycle with one heavy edge against a short cycle of lower
	// mean.
	g := graph.NewIndexDirected(5)
	g.AddEdge(0, 1) // 1
	g.AddEdge(1, 2) // 1
	g.AddEdge(2, 3) // 1
	g.AddEdge(3, 0) // 5
	g.AddEdge(2, 4) // 1
	g.AddEdge(4, 2) // 2
	w := graph.SliceIntWeights{1, 1, 1, 5, 1, 2}

	p, mean, err := MinimumMeanCycleIndex(g, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("expected a cycle")
	}
	// 2-4-2 has mean 3/2; 0-1-2-3-0 has mean 2.
	if !scalar.EqualWithinAbs(mean, 1.5, 1e-9) {
		t.Errorf("unexpected mean: got %v want 1.5", mean)
	}
	if got := p.Len(); got != 2 {
		t.Errorf("unexpected cycle length: got %d want 2", got)
	}
}

func TestMinimumMeanCycleSelfLoop(t *testing.T) {
	g := graph.NewIndexDirected(3, graph.SelfEdges(true))
	g.AddEdge(0, 1) // 4
	g.AddEdge(1, 0) // 4
	g.AddEdge(2, 2) // 1 self loop
	w := graph.SliceIntWeights{4, 4, 1}

	p, mean, err := MinimumMeanCycleIndex(g, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil || p.Len() != 1 {
		t.Fatalf("expected the self loop, got %v", p)
	}
	if mean != 1 {
		t.Errorf("unexpected mean: got %v want 1", mean)
	}
}

func TestMinimumMeanCycleAcyclic(t *testing.T) {
	g := graph.NewIndexDirected(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	p, mean, err := MinimumMeanCycleIndex(g, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Errorf("acyclic graph returned a cycle: %v", p)
	}
	if !math.IsInf(mean, 1) {
		t.Errorf("unexpected mean for acyclic graph: got %v", mean)
	}

	undirected := graph.NewIndexUndirected(2)
	if _, _, err := MinimumMeanCycleIndex(undirected, nil); err == nil {
		t.Error("expected DirectionError for undirected input")
	}
}
