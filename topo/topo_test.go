// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package topo

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gonum.org/v1/graphalg/graph"
)

func blocksAsSets(p *VertexPartition) [][]int {
	blocks := make([][]int, p.NumBlocks())
	for b := range blocks {
		blocks[b] = append([]int(nil), p.BlockVertices(b)...)
		sort.Ints(blocks[b])
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })
	return blocks
}

func TestWeaklyConnected(t *testing.T) {
	g := graph.NewIndexDirected(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)
	p := WeaklyConnected(g)
	if got, want := p.NumBlocks(), 2; got != want {
		t.Fatalf("unexpected block count: got %d want %d", got, want)
	}
	want := [][]int{{0, 1, 2}, {3, 4}}
	if diff := cmp.Diff(want, blocksAsSets(p)); diff != "" {
		t.Errorf("unexpected components: (-want +got)\n%s", diff)
	}
}

func TestStronglyConnected(t *testing.T) {
	g := graph.NewIndexDirected(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	p := StronglyConnected(g)
	if got, want := p.NumBlocks(), 3; got != want {
		t.Fatalf("unexpected block count: got %d want %d", got, want)
	}
	want := [][]int{{0, 1, 2}, {3}, {4}}
	if diff := cmp.Diff(want, blocksAsSets(p)); diff != "" {
		t.Errorf("unexpected components: (-want +got)\n%s", diff)
	}
	if p.Block(0) != p.Block(2) || p.Block(3) == p.Block(4) {
		t.Error("unexpected block assignment")
	}
}

func TestCrossEdges(t *testing.T) {
	g := graph.NewIndexDirected(4)
	g.AddEdge(0, 1) // e0 inside
	g.AddEdge(1, 0) // e1 inside
	g.AddEdge(1, 2) // e2 cross
	g.AddEdge(2, 3) // e3 cross: 2 and 3 are separate blocks
	p := StronglyConnected(g)
	cross := append([]int(nil), p.CrossEdges()...)
	sort.Ints(cross)
	if diff := cmp.Diff([]int{2, 3}, cross); diff != "" {
		t.Errorf("unexpected cross edges: (-want +got)\n%s", diff)
	}
	if p.IsCrossEdge(0) {
		t.Error("edge 0 should be internal")
	}
}

func TestBiconnected(t *testing.T) {
	// A path 0-1-2 feeding a triangle 2-3-4.
	g := graph.NewIndexUndirected(5)
	g.AddEdge(0, 1) // e0
	g.AddEdge(1, 2) // e1
	g.AddEdge(2, 3) // e2
	g.AddEdge(3, 4) // e3
	g.AddEdge(4, 2) // e4
	b, err := Biconnected(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(b.Components), 3; got != want {
		t.Fatalf("unexpected component count: got %d want %d", got, want)
	}
	var sizes []int
	for _, c := range b.Components {
		sizes = append(sizes, len(c))
	}
	sort.Ints(sizes)
	if diff := cmp.Diff([]int{1, 1, 3}, sizes); diff != "" {
		t.Errorf("unexpected component sizes: (-want +got)\n%s", diff)
	}
	cuts := append([]int(nil), b.CutVertices...)
	sort.Ints(cuts)
	if diff := cmp.Diff([]int{1, 2}, cuts); diff != "" {
		t.Errorf("unexpected cut vertices: (-want +got)\n%s", diff)
	}

	directed := graph.NewIndexDirected(2)
	if _, err := Biconnected(directed); err == nil {
		t.Error("expected DirectionError for directed input")
	}
}

func TestKEdgeConnectedBridged(t *testing.T) {
	// A 2-edge-connected diamond: 0-1-2-3-0 with chord 1-3.
	g := graph.NewIndexUndirected(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)
	g.AddEdge(1, 3)
	p, err := KEdgeConnected(g, 2, KEdgeOptions{Seed: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := p.NumBlocks(), 1; got != want {
		t.Fatalf("the whole graph is 2-edge-connected: got %d blocks", got)
	}
}

func TestKEdgeConnectedBridge(t *testing.T) {
	// Two triangles joined by a single bridge edge.
	g := graph.NewIndexUndirected(6)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	g.AddEdge(3, 4)
	g.AddEdge(4, 5)
	g.AddEdge(5, 3)
	g.AddEdge(2, 3) // bridge
	p, err := KEdgeConnected(g, 2, KEdgeOptions{Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := p.NumBlocks(), 2; got != want {
		t.Fatalf("expected the two triangles: got %d blocks", got)
	}
	if p.Block(0) != p.Block(1) || p.Block(0) != p.Block(2) {
		t.Error("first triangle split")
	}
	if p.Block(3) != p.Block(4) || p.Block(3) != p.Block(5) {
		t.Error("second triangle split")
	}
	if p.Block(0) == p.Block(3) {
		t.Error("bridge should separate the triangles at k=2")
	}

	one, err := KEdgeConnected(g, 1, KEdgeOptions{Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := one.NumBlocks(), 1; got != want {
		t.Errorf("at k=1 the graph is one component: got %d", got)
	}
}
