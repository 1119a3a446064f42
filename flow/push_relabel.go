// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flow

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/linear"
	"gonum.org/v1/graphalg/internal/linkcut"
	"gonum.org/v1/graphalg/internal/list"
)

// capacity is the arithmetic domain of the push-relabel core. The
// algorithm instantiates once for exact integer capacities and once
// for real capacities with a tolerance.
type capacity interface {
	~int64 | ~float64
}

// pushRelabel is a FIFO push-relabel maximum-flow computation with
// whole-path pushes over a link-cut forest whose edge weights are the
// residual capacities of the linked arcs.
//
// Every edge e of the graph is doubled into the forward arc 2e and
// its twin 2e+1; the twin of a directed edge starts with zero
// residual, the twin of an undirected edge with the full capacity.
type pushRelabel[T capacity] struct {
	g            graph.IndexGraph
	n, m         int
	source, sink int
	eps          T

	res       []T // residual capacity per arc
	pairTotal []T // res[2e]+res[2e+1], invariant per edge
	head      []int
	outArcs   [][]int
	cur       []int

	label  []int
	excess []T

	active  linear.IntQueue
	inQueue []bool

	forest    *linkcut.Forest
	treeArc   []int // arc linking v to its forest parent, -1 when unlinked
	children  *list.Doubly
	childHead []int
	sizeBound int

	relabels int // since the last global relabel
}

func newPushRelabel[T capacity](g graph.IndexGraph, source, sink int, caps []T, eps T) (*pushRelabel[T], error) {
	n, m := g.NumVertices(), g.NumEdges()
	t := &pushRelabel[T]{
		g:      g,
		n:      n,
		m:      m,
		source: source,
		sink:   sink,
		eps:    eps,

		res:       make([]T, 2*m),
		pairTotal: make([]T, m),
		head:      make([]int, 2*m),
		outArcs:   make([][]int, n),
		cur:       make([]int, n),

		label:   make([]int, n),
		excess:  make([]T, n),
		inQueue: make([]bool, n),

		forest:    linkcut.New(n),
		treeArc:   make([]int, n),
		children:  list.NewDoubly(n),
		childHead: make([]int, n),
	}
	t.sizeBound = 1
	if m > 0 && n*n/m > 1 {
		t.sizeBound = n * n / m
	}
	for v := 0; v < n; v++ {
		t.treeArc[v] = -1
		t.childHead[v] = -1
	}
	directed := g.Directed()
	for e := 0; e < m; e++ {
		c := caps[e]
		if c < 0 {
			return nil, graph.ArgumentError{Reason: "negative capacity"}
		}
		u, v := g.Source(e), g.Target(e)
		t.head[2*e] = v
		t.head[2*e+1] = u
		t.res[2*e] = c
		if directed {
			t.res[2*e+1] = 0
		} else {
			t.res[2*e+1] = c
		}
		t.pairTotal[e] = t.res[2*e] + t.res[2*e+1]
		if u == v {
			// Self loops carry no s-t flow.
			continue
		}
		t.outArcs[u] = append(t.outArcs[u], 2*e)
		t.outArcs[v] = append(t.outArcs[v], 2*e+1)
	}
	return t, nil
}

func (t *pushRelabel[T]) activate(v int) {
	if v == t.source || v == t.sink || t.inQueue[v] || t.excess[v] <= t.eps {
		return
	}
	t.inQueue[v] = true
	t.active.Push(v)
}

// run computes the maximum flow and returns it with all excess
// returned to the source, so conservation holds everywhere.
func (t *pushRelabel[T]) run() *Flow {
	t.globalRelabel()
	// Saturate the source's out-arcs.
	for _, a := range t.outArcs[t.source] {
		if t.res[a] > t.eps {
			t.push(a, t.res[a])
		}
	}
	for t.active.Len() > 0 {
		u := t.active.Pop()
		t.inQueue[u] = false
		t.discharge(u)
	}
	t.cutAll()
	return t.extract()
}

// push moves d units over the arc a.
func (t *pushRelabel[T]) push(a int, d T) {
	tail := t.head[a^1]
	t.res[a] -= d
	t.res[a^1] += d
	t.excess[tail] -= d
	t.excess[t.head[a]] += d
	t.activate(t.head[a])
}

func (t *pushRelabel[T]) discharge(u int) {
	for t.excess[u] > t.eps {
		if t.treeArc[u] != -1 {
			t.send(u)
			continue
		}
		if t.cur[u] == len(t.outArcs[u]) {
			// Out-arcs exhausted: detach the subtree and relabel.
			t.cutChildren(u)
			t.label[u]++
			t.cur[u] = 0
			if t.label[u] >= 2*t.n {
				panic("flow: vertex label exceeded 2n")
			}
			t.relabels++
			if t.relabels >= t.n {
				t.globalRelabel()
				if t.label[u] >= 2*t.n {
					panic("flow: vertex label exceeded 2n")
				}
			}
			continue
		}
		a := t.outArcs[u][t.cur[u]]
		v := t.head[a]
		// If the twin is currently a tree edge the pair's residuals
		// live in the forest; detach it before reading them.
		if t.treeArc[v] == a^1 {
			t.cutTreeEdge(v)
		}
		if t.res[a] <= t.eps || t.label[u] != t.label[v]+1 {
			t.cur[u]++
			continue
		}
		if t.forest.TreeSize(u)+t.forest.TreeSize(v) <= t.sizeBound {
			t.link(u, v, a)
			t.send(u)
			continue
		}
		d := t.excess[u]
		if t.res[a] < d {
			d = t.res[a]
		}
		t.push(a, d)
	}
}

// send pushes excess from u along its root path, cutting saturated
// edges before and after the push.
func (t *pushRelabel[T]) send(u int) {
	t.cutSaturated(u)
	if t.treeArc[u] == -1 {
		return
	}
	mw := T(t.forest.MinWeight(u))
	d := t.excess[u]
	if mw < d {
		d = mw
	}
	if d > t.eps {
		root := t.forest.FindRoot(u)
		t.forest.AddWeight(u, -float64(d))
		t.excess[u] -= d
		t.excess[root] += d
		t.activate(root)
	}
	t.cutSaturated(u)
}

func (t *pushRelabel[T]) cutSaturated(u int) {
	for {
		v, w := t.forest.FindMinEdge(u)
		if v < 0 || T(w) > t.eps {
			return
		}
		t.cutTreeEdge(v)
	}
}

func (t *pushRelabel[T]) link(u, v, a int) {
	t.forest.Link(u, v, float64(t.res[a]))
	t.treeArc[u] = a
	t.childHead[v] = t.children.PushFront(t.childHead[v], u)
}

// cutTreeEdge detaches v from its forest parent, writing the
// remaining residual back to the arc pair.
func (t *pushRelabel[T]) cutTreeEdge(v int) {
	a := t.treeArc[v]
	w := T(t.forest.Cost(v))
	if w < 0 {
		w = 0
	}
	t.forest.Cut(v)
	parent := t.head[a]
	t.childHead[parent] = t.children.Remove(t.childHead[parent], v)
	t.treeArc[v] = -1
	pair := a >> 1
	t.res[a] = w
	t.res[a^1] = t.pairTotal[pair] - w
	t.activate(v)
}

func (t *pushRelabel[T]) cutChildren(u int) {
	for t.childHead[u] != -1 {
		t.cutTreeEdge(t.childHead[u])
	}
}

func (t *pushRelabel[T]) cutAll() {
	for v := 0; v < t.n; v++ {
		if t.treeArc[v] != -1 {
			t.cutTreeEdge(v)
		}
	}
}

// globalRelabel recomputes all labels as exact residual distances to
// the sink by a reverse breadth-first search, with the source pinned
// at n.
func (t *pushRelabel[T]) globalRelabel() {
	t.cutAll()
	old := append([]int(nil), t.label...)
	const unset = -1
	for v := 0; v < t.n; v++ {
		t.label[v] = unset
		t.cur[v] = 0
	}
	t.label[t.sink] = 0
	var queue linear.IntQueue
	queue.Push(t.sink)
	for queue.Len() > 0 {
		u := queue.Pop()
		for _, a := range t.outArcs[u] {
			// Arcs entering u are the twins of its out-arcs.
			w := t.head[a]
			if t.label[w] != unset || t.res[a^1] <= t.eps {
				continue
			}
			t.label[w] = t.label[u] + 1
			queue.Push(w)
		}
	}
	// Vertices that cannot reach the sink return excess via labels
	// above n. Labels never decrease across a global relabel.
	for v := 0; v < t.n; v++ {
		if t.label[v] == unset {
			t.label[v] = max(t.n+1, old[v])
		}
	}
	t.label[t.source] = t.n
	t.relabels = 0
}

// extract converts residuals into per-edge flows.
func (t *pushRelabel[T]) extract() *Flow {
	f := make([]float64, t.m)
	directed := t.g.Directed()
	for e := 0; e < t.m; e++ {
		if directed {
			f[e] = float64(t.pairTotal[e] - t.res[2*e])
		} else {
			f[e] = float64(t.res[2*e+1]-t.res[2*e]) / 2
		}
	}
	return &Flow{g: t.g, f: f, value: float64(t.excess[t.sink])}
}

// minCut derives the source side from residual reachability after a
// maximum flow has been computed.
func (t *pushRelabel[T]) minCut(f *Flow) *Cut {
	side := make([]bool, t.n)
	side[t.source] = true
	var queue linear.IntQueue
	queue.Push(t.source)
	for queue.Len() > 0 {
		u := queue.Pop()
		for _, a := range t.outArcs[u] {
			v := t.head[a]
			if !side[v] && t.res[a] > t.eps {
				side[v] = true
				queue.Push(v)
			}
		}
	}
	// Sum the original capacities crossing the cut in the source to
	// sink direction.
	var weight float64
	for e := 0; e < t.m; e++ {
		u, v := t.g.Source(e), t.g.Target(e)
		if side[u] == side[v] {
			continue
		}
		c := float64(t.pairTotal[e])
		if !t.g.Directed() {
			c /= 2
		} else if side[v] {
			// The edge points from the sink side to the source side.
			continue
		}
		weight += c
	}
	return &Cut{g: t.g, sourceSide: side, weight: weight}
}
