// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/heap"
)

// KShortest returns up to k loopless shortest paths from source to
// target in order of non-decreasing weight, using Yen's algorithm with
// Lawler's deviation-index improvement. Weights must be non-negative;
// a nil w counts edges. Fewer than k paths are returned when the graph
// does not contain k distinct simple paths.
func KShortest[V, E comparable](g graph.Graph[V, E], source, target V, w func(E) float64, k int) ([]graph.PathOf[V, E], error) {
	si, ok := g.VertexMap().Index(source)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: source}
	}
	ti, ok := g.VertexMap().Index(target)
	if !ok {
		return nil, graph.NoSuchVertexError{ID: target}
	}
	paths, err := KShortestIndex(g.Index(), si, ti, graph.WeightsOf(g.EdgeMap(), w), k)
	if err != nil {
		return nil, err
	}
	out := make([]graph.PathOf[V, E], len(paths))
	for i, p := range paths {
		out[i] = graph.NewPathOf(g, p)
	}
	return out, nil
}

// yenCandidate is a deviation of a previously emitted path. dev is the
// position at which the candidate first diverges from the path it was
// derived from; positions before dev are never reconsidered.
type yenCandidate struct {
	edges  []int
	weight float64
	dev    int
}

// KShortestIndex is the index-space variant of KShortest.
func KShortestIndex(g graph.IndexGraph, source, target int, w graph.Weights, k int) ([]*graph.Path, error) {
	if k <= 0 {
		return nil, graph.ArgumentError{Reason: "k must be positive"}
	}
	if source == target {
		return nil, graph.ArgumentError{Reason: "equal source and target"}
	}
	w = graph.ReplaceNil(w)
	st := newBiDijkstra(g, w)

	first, weight, err := st.shortestPath(source, target)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, nil
	}

	var (
		emitted    []yenCandidate
		candidates heap.Pairing[yenCandidate]
	)
	candidates.Insert(yenCandidate{edges: first.Edges(), weight: weight, dev: 0}, weight)

	for len(emitted) < k && candidates.Len() != 0 {
		cur := candidates.ExtractMin().Value
		if isEmitted(emitted, cur) {
			continue
		}
		emitted = append(emitted, cur)
		if len(emitted) == k {
			break
		}

		// Root-path weights up to each deviation position.
		prefix := 0.0
		for j := 0; j < cur.dev; j++ {
			prefix += w.Weight(cur.edges[j])
		}
		spur := pathVertexAt(g, source, cur.edges, cur.dev)
		for j := cur.dev; j < len(cur.edges); j++ {
			// Mask edges that would recreate an emitted path sharing
			// this prefix, and the root-path vertices before the spur
			// vertex to keep candidates simple.
			for _, q := range emitted {
				if len(q.edges) > j && equalPrefix(q.edges, cur.edges, j) {
					st.maskEdge(q.edges[j])
				}
			}
			v := source
			for i := 0; i < j; i++ {
				st.maskVertex(v)
				v = nextVertex(g, v, cur.edges[i])
			}

			sigma, sweight, err := st.shortestPath(spur, target)
			if err != nil {
				st.clearMasks()
				return nil, err
			}
			if sigma != nil {
				edges := make([]int, 0, j+sigma.Len())
				edges = append(edges, cur.edges[:j]...)
				edges = append(edges, sigma.Edges()...)
				cand := yenCandidate{edges: edges, weight: prefix + sweight, dev: j}
				candidates.Insert(cand, cand.weight)
			}
			st.clearMasks()

			prefix += w.Weight(cur.edges[j])
			spur = nextVertex(g, spur, cur.edges[j])
		}

		// Keep the candidate queue at most the number of paths still
		// wanted, discarding the heaviest.
		if want := k - len(emitted); candidates.Len() > want {
			pruneCandidates(&candidates, want)
		}
	}

	paths := make([]*graph.Path, len(emitted))
	for i, p := range emitted {
		paths[i] = graph.NewPath(g, source, target, p.edges)
	}
	return paths, nil
}

// isEmitted reports whether c repeats an already emitted path. The
// deviation bookkeeping makes repeats rare; the check keeps the output
// list distinct regardless.
func isEmitted(emitted []yenCandidate, c yenCandidate) bool {
	for _, q := range emitted {
		if len(q.edges) != len(c.edges) || q.weight != c.weight {
			continue
		}
		if equalPrefix(q.edges, c.edges, len(c.edges)) {
			return true
		}
	}
	return false
}

func equalPrefix(a, b []int, j int) bool {
	for i := 0; i < j; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func nextVertex(g graph.IndexGraph, v, e int) int {
	if g.Directed() {
		return g.Target(e)
	}
	return g.Endpoint(e, v)
}

// pathVertexAt returns the j-th vertex of the path starting at source
// along edges.
func pathVertexAt(g graph.IndexGraph, source int, edges []int, j int) int {
	v := source
	for i := 0; i < j; i++ {
		v = nextVertex(g, v, edges[i])
	}
	return v
}

// pruneCandidates retains only the want lightest candidates.
func pruneCandidates(candidates *heap.Pairing[yenCandidate], want int) {
	kept := make([]yenCandidate, 0, want)
	for len(kept) < want && candidates.Len() != 0 {
		kept = append(kept, candidates.ExtractMin().Value)
	}
	var rebuilt heap.Pairing[yenCandidate]
	for _, c := range kept {
		rebuilt.Insert(c, c.weight)
	}
	*candidates = rebuilt
}
