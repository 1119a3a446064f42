// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"errors"
	"testing"

	"gonum.org/v1/graphalg/graph"
)

func TestKShortestDiamond(t *testing.T) {
	// s-a-t and s-b-t, both of weight 3, are the only simple paths.
	g := graph.NewIndexUndirected(4)
	s, a, b, target := 0, 1, 2, 3
	g.AddEdge(s, a)      // 1
	g.AddEdge(s, b)      // 2
	g.AddEdge(a, target) // 2
	g.AddEdge(b, target) // 1
	w := graph.SliceWeights{1, 2, 2, 1}

	paths, err := KShortestIndex(g, s, target, w, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	for i, p := range paths {
		if got := p.Weight(w); got != 3 {
			t.Errorf("path %d has weight %v, want 3", i, got)
		}
		if !p.IsSimple() {
			t.Errorf("path %d is not simple", i)
		}
	}
	if equalPrefix(paths[0].Edges(), paths[1].Edges(), len(paths[0].Edges())) && len(paths[0].Edges()) == len(paths[1].Edges()) {
		t.Error("returned paths are not distinct")
	}
}

func TestKShortestOrdering(t *testing.T) {
	// A ladder with three distinct route weights.
	g := graph.NewIndexDirected(4)
	g.AddEdge(0, 1) // 1
	g.AddEdge(1, 3) // 1
	g.AddEdge(0, 2) // 2
	g.AddEdge(2, 3) // 2
	g.AddEdge(0, 3) // 10
	w := graph.SliceWeights{1, 1, 2, 2, 10}

	paths, err := KShortestIndex(g, 0, 3, w, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(paths))
	}
	var prev float64
	for i, p := range paths {
		got := p.Weight(w)
		if got < prev {
			t.Errorf("weights are not non-decreasing at %d: %v after %v", i, got, prev)
		}
		prev = got
	}
	if got := paths[0].Weight(w); got != 2 {
		t.Errorf("unexpected lightest weight: got %v want 2", got)
	}
	if got := paths[2].Weight(w); got != 10 {
		t.Errorf("unexpected heaviest weight: got %v want 10", got)
	}
}

func TestKShortestArguments(t *testing.T) {
	g := graph.NewIndexDirected(2)
	g.AddEdge(0, 1)
	var argErr graph.ArgumentError
	if _, err := KShortestIndex(g, 0, 1, nil, 0); !errors.As(err, &argErr) {
		t.Errorf("expected ArgumentError for k=0, got %v", err)
	}
	if _, err := KShortestIndex(g, 0, 0, nil, 1); !errors.As(err, &argErr) {
		t.Errorf("expected ArgumentError for equal endpoints, got %v", err)
	}
	// No path at all: an empty list, no error.
	paths, err := KShortestIndex(g, 1, 0, nil, 2)
	if err != nil || len(paths) != 0 {
		t.Errorf("expected no paths, got %v, %v", paths, err)
	}
}

func TestKShortestGeneric(t *testing.T) {
	g := graph.Undirected[string, string]()
	for _, v := range []string{"s", "a", "b", "t"} {
		g.AddVertex(v)
	}
	weights := map[string]float64{"sa": 1, "sb": 2, "at": 2, "bt": 1}
	for _, e := range []struct{ id, u, v string }{
		{"sa", "s", "a"}, {"sb", "s", "b"}, {"at", "a", "t"}, {"bt", "b", "t"},
	} {
		if err := g.AddEdge(e.id, e.u, e.v); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	paths, err := KShortest[string, string](g, "s", "t", func(e string) float64 { return weights[e] }, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	for _, p := range paths {
		vs := p.Vertices()
		if vs[0] != "s" || vs[len(vs)-1] != "t" {
			t.Errorf("path endpoints wrong: %v", vs)
		}
	}
}
