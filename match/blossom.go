// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package match

import (
	"math"

	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/linear"
)

// blossom is the primal-dual weighted matching core. It maintains a
// forest of alternating trees grown simultaneously from all unmatched
// blossoms; every blossom is Even, Odd or Out, carries a dual value,
// and participates through the best (minimum-slack) original edge
// between each pair of blossoms, kept in a dense table.
//
// Vertices are the ids 1..n; contracted blossoms take ids above n.
// Id 0 is the nil sentinel throughout. The matched partner and tree
// parent of a blossom are recorded as original vertex ids, so the
// owning blossom is always st[match[x]] or st[pa[x]].
//
// The four moves of the main loop are the classical ones: grow a tight
// edge to an Out blossom, shrink a tight Even-Even edge into a new
// blossom at the two endpoints' lowest common ancestor, expand an Odd
// blossom whose dual has been driven to zero, and otherwise update the
// duals by the smallest amount that makes one of those moves
// available. A phase ends when an Even-Even edge joins two different
// trees and the augmentation flips the matching along both.
type blossom struct {
	g graph.IndexGraph

	n  int // original vertices
	nx int // ids in use, vertices and live blossoms

	// Best edge between every pair of ids: original endpoints and
	// weight. A zero weight means no edge.
	eu, ev [][]int
	ew     [][]float64
	eid    [][]int // original edge index for vertex-vertex pairs

	lab        []float64
	match      []int // partner vertex id, 0 when unmatched
	pa         []int // tree parent vertex id, 0 at roots
	slack      []int // witness vertex of the minimum-slack even edge
	st         []int // owning top blossom; st[b]==b for live tops
	status     []int // statusEven, statusOdd or statusOut
	vis        []int
	visTime    int
	flower     [][]int
	flowerFrom [][]int

	q   linear.IntQueue
	eps float64
}

const (
	statusEven = 0
	statusOdd  = 1
	statusOut  = -1
)

// newBlossom prepares the dense tables from the graph. With a zero
// shift, non-positive weights are dropped: they cannot improve a
// maximum matching. With a positive shift, weights enter as w+shift
// (or shift-w when minimize is set), all positive, making cardinality
// dominate the objective.
func newBlossom(g graph.IndexGraph, w graph.Weights, shift float64, minimize bool) *blossom {
	w = graph.ReplaceNil(w)
	n := g.NumVertices()
	size := 2*n + 1
	b := &blossom{
		g:  g,
		n:  n,
		nx: n,

		eu:  newIntTable(size),
		ev:  newIntTable(size),
		ew:  newFloatTable(size),
		eid: newIntTable(size),

		lab:        make([]float64, size),
		match:      make([]int, size),
		pa:         make([]int, size),
		slack:      make([]int, size),
		st:         make([]int, size),
		status:     make([]int, size),
		vis:        make([]int, size),
		flower:     make([][]int, size),
		flowerFrom: make([][]int, size),
	}
	for x := 1; x <= n; x++ {
		b.st[x] = x
		b.flowerFrom[x] = make([]int, n+1)
		b.flowerFrom[x][x] = x
	}
	for x := n + 1; x < size; x++ {
		b.flowerFrom[x] = make([]int, n+1)
	}
	for u := 0; u < size; u++ {
		for v := 0; v < size; v++ {
			b.eu[u][v] = u
			b.ev[u][v] = v
			b.eid[u][v] = -1
		}
	}

	var maxWeight float64
	for e := 0; e < g.NumEdges(); e++ {
		us, vs := g.Source(e), g.Target(e)
		if us == vs {
			continue
		}
		val := w.Weight(e)
		if minimize {
			val = shift - val
		} else {
			val += shift
		}
		if val <= 0 {
			continue
		}
		u, v := us+1, vs+1
		if val > b.ew[u][v] {
			b.ew[u][v] = val
			b.ew[v][u] = val
			b.eid[u][v] = e
			b.eid[v][u] = e
		}
		if val > maxWeight {
			maxWeight = val
		}
	}
	for u := 1; u <= n; u++ {
		b.lab[u] = maxWeight
	}
	if _, ok := w.(graph.IntWeights); !ok {
		// Integral weights make every slack half-integral and the
		// arithmetic exact; real weights get a scaled tolerance.
		b.eps = 1e-9 * (1 + maxWeight)
	}
	return b
}

func newIntTable(size int) [][]int {
	t := make([][]int, size)
	for i := range t {
		t[i] = make([]int, size)
	}
	return t
}

func newFloatTable(size int) [][]float64 {
	t := make([][]float64, size)
	for i := range t {
		t[i] = make([]float64, size)
	}
	return t
}

// slackOf is the slack of the best edge between the ids u and x:
// the duals of its original endpoints minus twice its weight.
func (b *blossom) slackOf(u, x int) float64 {
	return b.lab[b.eu[u][x]] + b.lab[b.ev[u][x]] - 2*b.ew[u][x]
}

func (b *blossom) updateSlack(u, x int) {
	if b.slack[x] == 0 || b.slackOf(u, x) < b.slackOf(b.slack[x], x) {
		b.slack[x] = u
	}
}

func (b *blossom) setSlack(x int) {
	b.slack[x] = 0
	for u := 1; u <= b.n; u++ {
		if b.ew[u][x] > 0 && b.st[u] != x && b.status[b.st[u]] == statusEven {
			b.updateSlack(u, x)
		}
	}
}

func (b *blossom) qPush(x int) {
	if x <= b.n {
		b.q.Push(x)
		return
	}
	for _, sub := range b.flower[x] {
		b.qPush(sub)
	}
}

func (b *blossom) setSt(x, top int) {
	b.st[x] = top
	if x > b.n {
		for _, sub := range b.flower[x] {
			b.setSt(sub, top)
		}
	}
}

// getPr locates the sub-blossom xr in the cycle of top, reversing the
// cycle past the base if xr sits at an odd position so that the kept
// path has even length.
func (b *blossom) getPr(top, xr int) int {
	var pr int
	for i, sub := range b.flower[top] {
		if sub == xr {
			pr = i
			break
		}
	}
	if pr%2 == 1 {
		cyc := b.flower[top]
		for i, j := 1, len(cyc)-1; i < j; i, j = i+1, j-1 {
			cyc[i], cyc[j] = cyc[j], cyc[i]
		}
		return len(cyc) - pr
	}
	return pr
}

// setMatch matches the blossom u along its best edge towards v,
// recursively re-rooting u's cycle at the edge's endpoint.
func (b *blossom) setMatch(u, v int) {
	b.match[u] = b.ev[u][v]
	if u <= b.n {
		return
	}
	xr := b.flowerFrom[u][b.eu[u][v]]
	pr := b.getPr(u, xr)
	for i := 0; i < pr; i++ {
		b.setMatch(b.flower[u][i], b.flower[u][i^1])
	}
	b.setMatch(xr, v)
	b.flower[u] = append(b.flower[u][pr:], b.flower[u][:pr]...)
}

// augment flips matched and unmatched edges from the tight edge (u,v)
// up to u's root.
func (b *blossom) augment(u, v int) {
	for {
		xnv := b.st[b.match[u]]
		b.setMatch(u, v)
		if xnv == 0 {
			return
		}
		b.setMatch(xnv, b.st[b.pa[xnv]])
		u, v = b.st[b.pa[xnv]], xnv
	}
}

// getLca walks both endpoints towards their roots with mark-and-meet.
// A zero return means the endpoints are in different trees.
func (b *blossom) getLca(u, v int) int {
	b.visTime++
	for u != 0 || v != 0 {
		if u != 0 {
			if b.vis[u] == b.visTime {
				return u
			}
			b.vis[u] = b.visTime
			u = b.st[b.match[u]]
			if u != 0 {
				u = b.st[b.pa[u]]
			}
		}
		u, v = v, u
	}
	return 0
}

// addBlossom contracts the odd cycle through u, lca and v into a new
// even blossom, absorbing the tree path between them and combining the
// incidence tables of the sub-blossoms edge-wise by minimum slack.
func (b *blossom) addBlossom(u, lca, v int) {
	top := b.n + 1
	for top <= b.nx && b.st[top] != 0 {
		top++
	}
	if top > b.nx {
		b.nx++
	}
	b.lab[top] = 0
	b.status[top] = statusEven
	b.match[top] = b.match[lca]
	b.flower[top] = append(b.flower[top][:0], lca)
	for x := u; x != lca; {
		b.flower[top] = append(b.flower[top], x)
		y := b.st[b.match[x]]
		b.flower[top] = append(b.flower[top], y)
		b.qPush(y)
		x = b.st[b.pa[y]]
	}
	cyc := b.flower[top]
	for i, j := 1, len(cyc)-1; i < j; i, j = i+1, j-1 {
		cyc[i], cyc[j] = cyc[j], cyc[i]
	}
	for x := v; x != lca; {
		b.flower[top] = append(b.flower[top], x)
		y := b.st[b.match[x]]
		b.flower[top] = append(b.flower[top], y)
		b.qPush(y)
		x = b.st[b.pa[y]]
	}
	b.setSt(top, top)
	for x := 1; x <= b.nx; x++ {
		b.ew[top][x] = 0
		b.ew[x][top] = 0
	}
	for x := 1; x <= b.n; x++ {
		b.flowerFrom[top][x] = 0
	}
	for _, xs := range b.flower[top] {
		for x := 1; x <= b.nx; x++ {
			if b.ew[x][xs] > 0 && (b.ew[top][x] == 0 || b.slackOf(xs, x) < b.slackOf(top, x)) {
				b.copyEdge(top, x, xs, x)
				b.copyEdge(x, top, x, xs)
			}
		}
		for x := 1; x <= b.n; x++ {
			if b.flowerFrom[xs][x] != 0 {
				b.flowerFrom[top][x] = xs
			}
		}
	}
	b.pa[top] = b.pa[lca]
	b.setSlack(top)
}

func (b *blossom) copyEdge(du, dv, su, sv int) {
	b.eu[du][dv] = b.eu[su][sv]
	b.ev[du][dv] = b.ev[su][sv]
	b.ew[du][dv] = b.ew[su][sv]
}

// expandBlossom dissolves an odd blossom whose dual has reached zero.
// The sub-blossoms between the base and the parent edge alternate odd
// and even and stay in the tree; the remainder become Out.
func (b *blossom) expandBlossom(top int) {
	for _, xs := range b.flower[top] {
		b.setSt(xs, xs)
	}
	xr := b.flowerFrom[top][b.eu[top][b.pa[top]]]
	pr := b.getPr(top, xr)
	for i := 0; i < pr; i += 2 {
		xs := b.flower[top][i]
		xns := b.flower[top][i+1]
		b.pa[xs] = b.eu[xns][xs]
		b.status[xs] = statusOdd
		b.status[xns] = statusEven
		b.slack[xs] = 0
		b.setSlack(xns)
		b.qPush(xns)
	}
	b.status[xr] = statusOdd
	b.pa[xr] = b.pa[top]
	for i := pr + 1; i < len(b.flower[top]); i++ {
		xs := b.flower[top][i]
		b.status[xs] = statusOut
		b.setSlack(xs)
	}
	b.st[top] = 0
	b.flower[top] = b.flower[top][:0]
}

// onFoundEdge reacts to the tight edge with original endpoints (eu0,
// ev0): grow when the far side is Out, augment when it joins two
// trees, shrink when it closes a cycle in one tree. The return
// reports an augmentation.
func (b *blossom) onFoundEdge(eu0, ev0 int) bool {
	u, v := b.st[eu0], b.st[ev0]
	switch b.status[v] {
	case statusOut:
		b.pa[v] = eu0
		b.status[v] = statusOdd
		nu := b.st[b.match[v]]
		b.slack[v] = 0
		b.slack[nu] = 0
		b.status[nu] = statusEven
		b.qPush(nu)
	case statusEven:
		lca := b.getLca(u, v)
		if lca == 0 {
			b.augment(u, v)
			b.augment(v, u)
			return true
		}
		b.addBlossom(u, lca, v)
	}
	return false
}

// phase grows the forest from all unmatched tops until an augmenting
// edge is found or the duals admit no further move. The return
// reports whether the matching grew.
func (b *blossom) phase() bool {
	for x := 0; x <= b.nx; x++ {
		b.status[x] = statusOut
		b.slack[x] = 0
	}
	b.q.Reset()
	var roots int
	for x := 1; x <= b.nx; x++ {
		if b.st[x] == x && b.match[x] == 0 {
			b.pa[x] = 0
			b.status[x] = statusEven
			b.qPush(x)
			roots++
		}
	}
	if roots == 0 {
		return false
	}

	for {
		for b.q.Len() > 0 {
			u := b.q.Pop()
			if b.status[b.st[u]] == statusOdd {
				continue
			}
			for v := 1; v <= b.n; v++ {
				if b.ew[u][v] == 0 || b.st[u] == b.st[v] {
					continue
				}
				if b.slackOf(u, v) <= b.eps {
					if b.onFoundEdge(b.eu[u][v], b.ev[u][v]) {
						return true
					}
				} else {
					b.updateSlack(u, b.st[v])
				}
			}
		}

		// Dual update: the least of the expandable odd duals, the
		// grow and shrink slacks, and the even vertex duals, which
		// floor the update for non-perfect instances.
		d := math.Inf(1)
		for x := b.n + 1; x <= b.nx; x++ {
			if b.st[x] == x && b.status[x] == statusOdd {
				d = math.Min(d, b.lab[x]/2)
			}
		}
		for x := 1; x <= b.nx; x++ {
			if b.st[x] != x || b.slack[x] == 0 || b.st[b.slack[x]] == x {
				continue
			}
			switch b.status[x] {
			case statusOut:
				d = math.Min(d, b.slackOf(b.slack[x], x))
			case statusEven:
				d = math.Min(d, b.slackOf(b.slack[x], x)/2)
			}
		}
		for u := 1; u <= b.n; u++ {
			if b.status[b.st[u]] == statusEven {
				d = math.Min(d, b.lab[u])
			}
		}
		if math.IsInf(d, 1) {
			return false
		}
		if d < 0 {
			d = 0
		}

		for u := 1; u <= b.n; u++ {
			switch b.status[b.st[u]] {
			case statusEven:
				b.lab[u] -= d
			case statusOdd:
				b.lab[u] += d
			}
		}
		for x := b.n + 1; x <= b.nx; x++ {
			if b.st[x] != x {
				continue
			}
			switch b.status[x] {
			case statusEven:
				b.lab[x] += 2 * d
			case statusOdd:
				b.lab[x] -= 2 * d
			}
		}

		moved := false
		for x := 1; x <= b.nx; x++ {
			if b.st[x] != x || b.slack[x] == 0 {
				continue
			}
			u := b.slack[x]
			if b.st[u] == x || b.status[b.st[u]] != statusEven {
				continue
			}
			if b.status[x] != statusOut && b.status[x] != statusEven {
				continue
			}
			if b.slackOf(u, x) <= b.eps {
				if b.onFoundEdge(b.eu[u][x], b.ev[u][x]) {
					return true
				}
				moved = true
			}
		}
		for x := b.n + 1; x <= b.nx; x++ {
			if b.st[x] == x && b.status[x] == statusOdd && b.lab[x] <= b.eps {
				b.expandBlossom(x)
				moved = true
			}
		}
		if !moved && b.q.Len() == 0 {
			// The even duals have hit their floor with no move
			// available: the matching is optimal.
			return false
		}
	}
}

// solve runs phases to completion and extracts the vertex-level
// matching.
func (b *blossom) solve() *Matching {
	for b.phase() {
	}
	matched := make([]int, b.n)
	for v := range matched {
		matched[v] = -1
	}
	for u := 1; u <= b.n; u++ {
		if p := b.match[u]; p != 0 {
			matched[u-1] = b.eid[u][p]
		}
	}
	return &Matching{g: b.g, matched: matched}
}
