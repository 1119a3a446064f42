// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package match

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/bitset"
	"gonum.org/v1/graphalg/internal/linear"
)

// adjacencyOf flattens the incidence of an undirected graph into
// neighbour and edge lists, dropping self loops.
func adjacencyOf(g graph.IndexGraph) (nbr [][]int, via [][]int) {
	n := g.NumVertices()
	nbr = make([][]int, n)
	via = make([][]int, n)
	for u := 0; u < n; u++ {
		for it := g.OutEdges(u); it.Next(); {
			if v := it.Target(); v != u {
				nbr[u] = append(nbr[u], v)
				via[u] = append(via[u], it.Edge())
			}
		}
	}
	return nbr, via
}

// cardinalityBlossom computes a maximum cardinality matching in a
// general undirected graph by alternating-tree search with blossom
// contraction tracked through cycle bases.
func cardinalityBlossom(g graph.IndexGraph) *Matching {
	n := g.NumVertices()
	nbr, via := adjacencyOf(g)

	match := make([]int, n) // partner vertex, -1 unmatched
	for v := range match {
		match[v] = -1
	}

	base := make([]int, n)
	parent := make([]int, n)
	used := make([]bool, n)
	inBlossom := make([]bool, n)
	var queue linear.IntQueue

	markPath := func(v, b, child int) {
		for base[v] != b {
			inBlossom[base[v]] = true
			inBlossom[base[match[v]]] = true
			parent[v] = child
			child = match[v]
			v = parent[match[v]]
		}
	}

	lca := func(a, bb int) int {
		seen := make(map[int]bool)
		for v := a; ; {
			v = base[v]
			seen[v] = true
			if match[v] == -1 {
				break
			}
			v = parent[match[v]]
		}
		for v := bb; ; {
			v = base[v]
			if seen[v] {
				return v
			}
			v = parent[match[v]]
		}
	}

	findPath := func(root int) bool {
		for v := 0; v < n; v++ {
			used[v] = false
			parent[v] = -1
			base[v] = v
		}
		used[root] = true
		queue.Reset()
		queue.Push(root)
		for queue.Len() > 0 {
			u := queue.Pop()
			for _, v := range nbr[u] {
				if base[u] == base[v] || match[u] == v {
					continue
				}
				if v == root || (match[v] != -1 && parent[match[v]] != -1) {
					// An odd cycle closed: contract the blossom.
					cb := lca(u, v)
					for x := range inBlossom {
						inBlossom[x] = false
					}
					markPath(u, cb, v)
					markPath(v, cb, u)
					for x := 0; x < n; x++ {
						if inBlossom[base[x]] {
							base[x] = cb
							if !used[x] {
								used[x] = true
								queue.Push(x)
							}
						}
					}
				} else if parent[v] == -1 {
					parent[v] = u
					if match[v] == -1 {
						// Augment along the alternating path to the
						// root.
						for v != -1 {
							pv := parent[v]
							next := match[pv]
							match[v] = pv
							match[pv] = v
							v = next
						}
						return true
					}
					used[match[v]] = true
					queue.Push(match[v])
				}
			}
		}
		return false
	}

	for v := 0; v < n; v++ {
		if match[v] == -1 {
			findPath(v)
		}
	}

	return matchingFromPartners(g, match, nbr, via)
}

// hopcroftKarp computes a maximum cardinality matching of a bipartite
// graph in O(E·√V) by layered phases of shortest augmenting paths.
// Vertices in side form the right side.
func hopcroftKarp(g graph.IndexGraph, side *bitset.Set) *Matching {
	n := g.NumVertices()
	nbr, via := adjacencyOf(g)

	const inf = int(^uint(0) >> 1)
	match := make([]int, n)
	dist := make([]int, n)
	for v := range match {
		match[v] = -1
	}
	var queue linear.IntQueue

	bfs := func() bool {
		queue.Reset()
		for u := 0; u < n; u++ {
			if side.Has(u) {
				continue
			}
			if match[u] == -1 {
				dist[u] = 0
				queue.Push(u)
			} else {
				dist[u] = inf
			}
		}
		found := false
		for queue.Len() > 0 {
			u := queue.Pop()
			for _, v := range nbr[u] {
				w := match[v]
				if w == -1 {
					found = true
				} else if dist[w] == inf {
					dist[w] = dist[u] + 1
					queue.Push(w)
				}
			}
		}
		return found
	}

	var dfs func(u int) bool
	dfs = func(u int) bool {
		for _, v := range nbr[u] {
			w := match[v]
			if w == -1 || (dist[w] == dist[u]+1 && dfs(w)) {
				match[u] = v
				match[v] = u
				return true
			}
		}
		dist[u] = inf
		return false
	}

	for bfs() {
		for u := 0; u < n; u++ {
			if !side.Has(u) && match[u] == -1 {
				dfs(u)
			}
		}
	}

	return matchingFromPartners(g, match, nbr, via)
}

// matchingFromPartners converts partner vertices into matched edge
// indices using any edge joining each pair.
func matchingFromPartners(g graph.IndexGraph, match []int, nbr, via [][]int) *Matching {
	n := g.NumVertices()
	matched := make([]int, n)
	for v := range matched {
		matched[v] = -1
	}
	for u := 0; u < n; u++ {
		p := match[u]
		if p == -1 || matched[u] != -1 {
			continue
		}
		for i, v := range nbr[u] {
			if v == p {
				matched[u] = via[u][i]
				matched[p] = via[u][i]
				break
			}
		}
	}
	return &Matching{g: g, matched: matched}
}
