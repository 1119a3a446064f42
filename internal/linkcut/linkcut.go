// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linkcut implements a link-cut forest of rooted trees with a
// real weight on every edge. All operations run in O(log n) amortised
// time. The forest supports adding a value to every edge weight on a
// vertex-to-root path, locating the minimum-weight edge on such a
// path, and reporting the size of a vertex's whole tree.
//
// The implementation is the splay-tree formulation of Sleator and
// Tarjan's dynamic trees. Preferred paths are kept in splay trees
// keyed by depth; the trees are rooted, so no reversal bit is needed.
// Each vertex stores the weight of the edge to its tree parent, +Inf
// at roots, and virtual subtree counts maintain whole-tree sizes.
package linkcut

import "math"

var inf = math.Inf(1)

// Forest is a link-cut forest over the vertices [0,n). All vertices
// start as singleton roots.
type Forest struct {
	// Internal indices are 1-based; 0 is the nil sentinel.
	p, l, r []int
	cost    []float64 // weight of the edge to the tree parent; +Inf at roots
	minc    []float64 // minimum cost in the splay subtree
	lz      []float64 // pending addition to the splay subtree's costs
	sz      []int     // vertices in the splay subtree plus virtual subtrees
	vsz     []int     // vertices in virtual subtrees hanging off this vertex

	stack []int // splay push scratch
}

// New returns a forest of n singleton trees.
func New(n int) *Forest {
	f := &Forest{
		p:    make([]int, n+1),
		l:    make([]int, n+1),
		r:    make([]int, n+1),
		cost: make([]float64, n+1),
		minc: make([]float64, n+1),
		lz:   make([]float64, n+1),
		sz:   make([]int, n+1),
		vsz:  make([]int, n+1),
	}
	for i := 0; i <= n; i++ {
		f.cost[i] = inf
		f.minc[i] = inf
	}
	for i := 1; i <= n; i++ {
		f.sz[i] = 1
	}
	return f
}

// Len returns the number of vertices in the forest.
func (f *Forest) Len() int { return len(f.p) - 1 }

func (f *Forest) pull(x int) {
	f.sz[x] = 1 + f.sz[f.l[x]] + f.sz[f.r[x]] + f.vsz[x]
	m := f.cost[x]
	if f.minc[f.l[x]] < m {
		m = f.minc[f.l[x]]
	}
	if f.minc[f.r[x]] < m {
		m = f.minc[f.r[x]]
	}
	f.minc[x] = m
}

func (f *Forest) apply(x int, d float64) {
	if x == 0 {
		return
	}
	f.cost[x] += d
	f.minc[x] += d
	f.lz[x] += d
}

func (f *Forest) push(x int) {
	if f.lz[x] != 0 {
		f.apply(f.l[x], f.lz[x])
		f.apply(f.r[x], f.lz[x])
		f.lz[x] = 0
	}
}

func (f *Forest) isRoot(x int) bool {
	y := f.p[x]
	return y == 0 || (f.l[y] != x && f.r[y] != x)
}

func (f *Forest) rotate(x int) {
	y := f.p[x]
	z := f.p[y]
	yWasRoot := f.isRoot(y)
	if f.l[y] == x {
		f.l[y] = f.r[x]
		if f.r[x] != 0 {
			f.p[f.r[x]] = y
		}
		f.r[x] = y
	} else {
		f.r[y] = f.l[x]
		if f.l[x] != 0 {
			f.p[f.l[x]] = y
		}
		f.l[x] = y
	}
	f.p[x] = z
	if !yWasRoot {
		if f.l[z] == y {
			f.l[z] = x
		} else {
			f.r[z] = x
		}
	}
	f.p[y] = x
	f.pull(y)
	f.pull(x)
}

func (f *Forest) splay(x int) {
	// Push pending additions from the splay root down to x.
	f.stack = f.stack[:0]
	for y := x; ; y = f.p[y] {
		f.stack = append(f.stack, y)
		if f.isRoot(y) {
			break
		}
	}
	for i := len(f.stack) - 1; i >= 0; i-- {
		f.push(f.stack[i])
	}
	for !f.isRoot(x) {
		y := f.p[x]
		if !f.isRoot(y) {
			if (f.l[f.p[y]] == y) == (f.l[y] == x) {
				f.rotate(y)
			} else {
				f.rotate(x)
			}
		}
		f.rotate(x)
	}
}

// expose makes the path from x's tree root to x preferred and splays x
// to the root of its splay tree, leaving x with no right child.
func (f *Forest) expose(x int) {
	f.splay(x)
	if c := f.r[x]; c != 0 {
		f.vsz[x] += f.sz[c]
		f.r[x] = 0
		f.pull(x)
	}
	for f.p[x] != 0 {
		y := f.p[x]
		f.splay(y)
		if c := f.r[y]; c != 0 {
			f.vsz[y] += f.sz[c]
		}
		f.vsz[y] -= f.sz[x]
		f.r[y] = x
		f.pull(y)
		f.splay(x)
	}
}

// FindRoot returns the root of u's tree.
func (f *Forest) FindRoot(u int) int {
	x := u + 1
	f.expose(x)
	for f.l[x] != 0 {
		x = f.l[x]
		f.push(x)
	}
	f.splay(x)
	return x - 1
}

// Link makes u, which must be the root of its own tree, a child of v
// with edge weight w. Link panics if u is not a root.
func (f *Forest) Link(u, v int, w float64) {
	x, y := u+1, v+1
	f.expose(x)
	if f.l[x] != 0 {
		panic("linkcut: link of non-root vertex")
	}
	f.cost[x] = w
	f.pull(x)
	f.expose(y)
	f.p[x] = y
	f.vsz[y] += f.sz[x]
	f.pull(y)
}

// Cut removes the edge between u and its parent, making u a root. Cut
// panics if u is a root.
func (f *Forest) Cut(u int) {
	x := u + 1
	f.expose(x)
	c := f.l[x]
	if c == 0 {
		panic("linkcut: cut of root vertex")
	}
	f.l[x] = 0
	f.p[c] = 0
	f.cost[x] = inf
	f.pull(x)
}

// Cost returns the weight of the edge from u to its parent, or +Inf
// if u is a root.
func (f *Forest) Cost(u int) float64 {
	x := u + 1
	f.expose(x)
	return f.cost[x]
}

// AddWeight adds d to the weight of every edge on the path from u to
// the root of u's tree.
func (f *Forest) AddWeight(u int, d float64) {
	x := u + 1
	f.expose(x)
	f.apply(x, d)
}

// FindMinEdge returns the vertex whose parent edge has the minimum
// weight on the path from u to the root, preferring the edge closest
// to the root on ties, together with that weight. If u is a root the
// returned vertex is -1 and the weight +Inf.
func (f *Forest) FindMinEdge(u int) (v int, w float64) {
	x := u + 1
	f.expose(x)
	m := f.minc[x]
	if math.IsInf(m, 1) {
		return -1, inf
	}
	for {
		f.push(x)
		switch {
		case f.minc[f.l[x]] == m:
			x = f.l[x]
		case f.cost[x] == m:
			f.splay(x)
			return x - 1, m
		default:
			x = f.r[x]
		}
	}
}

// MinWeight returns the minimum edge weight on the path from u to the
// root, or +Inf if u is a root.
func (f *Forest) MinWeight(u int) float64 {
	x := u + 1
	f.expose(x)
	return f.minc[x]
}

// TreeSize returns the number of vertices in u's whole tree.
func (f *Forest) TreeSize(u int) int {
	x := u + 1
	f.expose(x)
	return f.sz[x]
}

// Parent returns the tree parent of u, or -1 if u is a root.
func (f *Forest) Parent(u int) int {
	x := u + 1
	f.expose(x)
	// After expose, u's predecessor on the preferred path is the
	// rightmost vertex of its left subtree.
	y := f.l[x]
	if y == 0 {
		return -1
	}
	f.push(y)
	for f.r[y] != 0 {
		y = f.r[y]
		f.push(y)
	}
	f.splay(y)
	return y - 1
}
