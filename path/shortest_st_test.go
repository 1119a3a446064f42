// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gonum.org/v1/graphalg/graph"
)

func TestBetweenIndex(t *testing.T) {
	g, w := triangleBypass()
	p, weight, err := BetweenIndex(g, 0, 3, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 3 {
		t.Errorf("unexpected weight: got %v want 3", weight)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, p.Vertices()); diff != "" {
		t.Errorf("unexpected path: (-want +got)\n%s", diff)
	}

	// Unreachable pair.
	p, weight, err = BetweenIndex(g, 3, 0, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil || !math.IsInf(weight, 1) {
		t.Errorf("3→0 should be unreachable: got %v at %v", p, weight)
	}

	// Equal endpoints yield the empty path.
	p, weight, err = BetweenIndex(g, 2, 2, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 0 || p.Len() != 0 {
		t.Errorf("unexpected self path: %v at %v", p, weight)
	}
}

func TestBetweenUndirected(t *testing.T) {
	// A ring of five unit edges: the search meets in the middle.
	g := graph.NewIndexUndirected(5)
	for v := 0; v < 5; v++ {
		g.AddEdge(v, (v+1)%5)
	}
	w := graph.SliceWeights{1, 1, 1, 1, 1}
	p, weight, err := BetweenIndex(g, 0, 2, w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 2 || p.Len() != 2 {
		t.Errorf("unexpected ring path: weight %v, %d edges", weight, p.Len())
	}
}

func TestAStarMatchesDijkstra(t *testing.T) {
	g, w := triangleBypass()
	for _, h := range []Heuristic{nil, func(v int) float64 { return 0 }} {
		p, weight, err := AStarIndex(g, 0, 3, w, h)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if weight != 3 {
			t.Errorf("unexpected weight: got %v want 3", weight)
		}
		if diff := cmp.Diff([]int{0, 1, 2, 3}, p.Vertices()); diff != "" {
			t.Errorf("unexpected path: (-want +got)\n%s", diff)
		}
	}
	// An admissible consistent heuristic: remaining hops.
	hops := []float64{3, 2, 1, 0}
	p, weight, err := AStarIndex(g, 0, 3, w, func(v int) float64 { return hops[v] })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weight != 3 || p.Len() != 3 {
		t.Errorf("unexpected heuristic path: weight %v, %d edges", weight, p.Len())
	}
}
