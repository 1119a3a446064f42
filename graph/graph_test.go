// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMutableDirected(t *testing.T) {
	g := Directed[string, string]()
	for _, v := range []string{"a", "b", "c"} {
		g.AddVertex(v)
	}
	if err := g.AddEdge("ab", "a", "b"); err != nil {
		t.Fatalf("unexpected error adding edge: %v", err)
	}
	if err := g.AddEdge("bc", "b", "c"); err != nil {
		t.Fatalf("unexpected error adding edge: %v", err)
	}
	if err := g.AddEdge("xy", "x", "y"); err == nil {
		t.Error("expected NoSuchVertexError for unknown endpoint")
	}

	ig := g.Index()
	if got, want := ig.NumVertices(), 3; got != want {
		t.Errorf("unexpected vertex count: got %d want %d", got, want)
	}
	if got, want := ig.NumEdges(), 2; got != want {
		t.Errorf("unexpected edge count: got %d want %d", got, want)
	}
	if !ig.Directed() {
		t.Error("expected a directed index graph")
	}

	vm := g.VertexMap()
	bi, ok := vm.Index("b")
	if !ok {
		t.Fatal("missing vertex b")
	}
	if got := vm.ID(bi); got != "b" {
		t.Errorf("index round trip failed: got %q", got)
	}
	if _, ok := vm.IDIfExists(-1); ok {
		t.Error("IDIfExists accepted a sentinel index")
	}

	em := g.EdgeMap()
	ei, ok := em.Index("bc")
	if !ok {
		t.Fatal("missing edge bc")
	}
	if got, want := ig.Source(ei), bi; got != want {
		t.Errorf("unexpected edge source: got %d want %d", got, want)
	}
}

func TestIndexUndirectedIncidence(t *testing.T) {
	g := NewIndexUndirected(3)
	e0 := g.AddEdge(0, 1)
	e1 := g.AddEdge(1, 2)

	got := EdgesOf(g.OutEdges(1))
	want := []int{e0, e1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected incidence of vertex 1: (-want +got)\n%s", diff)
	}
	it := g.OutEdges(1)
	for it.Next() {
		if it.Source() != 1 {
			t.Errorf("iterated vertex not reported as source: got %d", it.Source())
		}
	}
	if got, want := g.Endpoint(e0, 1), 0; got != want {
		t.Errorf("unexpected endpoint: got %d want %d", got, want)
	}
}

func TestPathVerticesAndSimple(t *testing.T) {
	g := NewIndexDirected(4)
	e0 := g.AddEdge(0, 1)
	e1 := g.AddEdge(1, 2)
	e2 := g.AddEdge(2, 3)
	p := NewPath(g, 0, 3, []int{e0, e1, e2})

	if diff := cmp.Diff([]int{0, 1, 2, 3}, p.Vertices()); diff != "" {
		t.Errorf("unexpected vertex sequence: (-want +got)\n%s", diff)
	}
	if !p.IsSimple() {
		t.Error("expected a simple path")
	}
	if got, want := p.Weight(nil), 3.0; got != want {
		t.Errorf("unexpected cardinality weight: got %v want %v", got, want)
	}
}

func TestIsoMappingInverse(t *testing.T) {
	m := NewIsoMapping([]int{2, 0, -1}, []int{1, -1}, 3, 2)
	inv := m.Inverse()
	if inv.Inverse() != m {
		t.Error("inverse of inverse is not the original mapping")
	}
	if got, ok := inv.Vertex(2); !ok || got != 0 {
		t.Errorf("unexpected inverse image of vertex 2: got %d, %t", got, ok)
	}
	if _, ok := inv.Vertex(1); ok {
		t.Error("vertex 1 should be unmapped in the inverse")
	}
	for v := 0; v < 3; v++ {
		if w, ok := m.Vertex(v); ok {
			if back, ok := inv.Vertex(w); !ok || back != v {
				t.Errorf("mapping does not invert at vertex %d", v)
			}
		}
	}
}

func TestCardinalitySingleton(t *testing.T) {
	if !IsCardinality(nil) {
		t.Error("nil weights should read as cardinality")
	}
	if !IsCardinality(Cardinality) {
		t.Error("the singleton should read as cardinality")
	}
	if IsCardinality(SliceWeights{1}) {
		t.Error("a slice weight function is not cardinality")
	}
	if got := ReplaceNil(nil); !IsCardinality(got) {
		t.Error("ReplaceNil(nil) should produce the cardinality singleton")
	}
}
