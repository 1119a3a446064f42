// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package traverse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"

	"gonum.org/v1/graphalg/graph"
)

func TestBreadthFirstLayers(t *testing.T) {
	// 0-1-2 path with a branch 1-3.
	g := graph.NewIndexUndirected(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	b := NewBreadthFirst(g, 0)
	layer := map[int]int{}
	last := map[int]int{}
	for b.Next() {
		layer[b.Vertex()] = b.Layer()
		last[b.Vertex()] = b.LastEdge()
	}
	wantLayer := map[int]int{0: 0, 1: 1, 2: 2, 3: 2}
	if diff := cmp.Diff(wantLayer, layer); diff != "" {
		t.Errorf("unexpected layers: (-want +got)\n%s", diff)
	}
	if last[0] != -1 {
		t.Errorf("source should have no last edge, got %d", last[0])
	}
	if last[2] != 1 {
		t.Errorf("vertex 2 should be reached over edge 1, got %d", last[2])
	}
}

func TestBreadthFirstMultiSource(t *testing.T) {
	// Two chains joined at 2: 0-1-2 and 4-3-2.
	g := graph.NewIndexUndirected(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 2)
	g.AddEdge(4, 3)

	b := NewBreadthFirst(g, 0, 4)
	layer := map[int]int{}
	for b.Next() {
		layer[b.Vertex()] = b.Layer()
	}
	want := map[int]int{0: 0, 4: 0, 1: 1, 3: 1, 2: 2}
	if diff := cmp.Diff(want, layer); diff != "" {
		t.Errorf("unexpected multi-source layers: (-want +got)\n%s", diff)
	}
}

func TestBreadthFirstBackward(t *testing.T) {
	g := graph.NewIndexDirected(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	b := NewBreadthFirstBackward(g, 2)
	var order []int
	for b.Next() {
		order = append(order, b.Vertex())
	}
	if diff := cmp.Diff([]int{2, 1, 0}, order); diff != "" {
		t.Errorf("unexpected backward order: (-want +got)\n%s", diff)
	}
}

func TestDepthFirstOrder(t *testing.T) {
	// A small tree: 0 → 1 → 2, 0 → 3.
	g := graph.NewIndexDirected(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 3)

	d := NewDepthFirst(g, 0)
	var order []int
	depth := map[int]int{}
	for d.Next() {
		order = append(order, d.Vertex())
		depth[d.Vertex()] = d.Layer()
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, order); diff != "" {
		t.Errorf("unexpected preorder: (-want +got)\n%s", diff)
	}
	wantDepth := map[int]int{0: 0, 1: 1, 2: 2, 3: 1}
	if diff := cmp.Diff(wantDepth, depth); diff != "" {
		t.Errorf("unexpected depths: (-want +got)\n%s", diff)
	}
}

func TestRandomWalk(t *testing.T) {
	// A directed cycle: the walk can always step.
	g := graph.NewIndexDirected(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	w := NewRandomWalk(g, 0, rand.NewSource(1))
	prev := w.Vertex()
	for i := 0; i < 10; i++ {
		if !w.Next() {
			t.Fatal("walk on a cycle should not terminate")
		}
		e := w.LastEdge()
		if g.Source(e) != prev || g.Target(e) != w.Vertex() {
			t.Fatalf("step %d is not along the reported edge", i)
		}
		prev = w.Vertex()
	}
	if w.Steps() != 10 {
		t.Errorf("unexpected step count: got %d", w.Steps())
	}

	// A sink ends the walk.
	h := graph.NewIndexDirected(2)
	h.AddEdge(0, 1)
	hw := NewRandomWalk(h, 0, rand.NewSource(1))
	if !hw.Next() {
		t.Fatal("first step should succeed")
	}
	if hw.Next() {
		t.Error("walk should stop at a sink")
	}
}
