// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package topo provides connectivity structure: weakly, strongly,
// biconnected and k-edge-connected components, and the vertex
// partitions they are reported as.
package topo // import "gonum.org/v1/graphalg/topo"

import (
	"gonum.org/v1/graphalg/graph"
	"gonum.org/v1/graphalg/internal/bitset"
)

// VertexPartition assigns every vertex of a graph to one of k blocks.
// Block-vertex lists and the cross-edge list are derived lazily and
// cached.
type VertexPartition struct {
	g     graph.IndexGraph
	block []int
	k     int

	blocks [][]int
	cross  []int
	haveX  bool
}

// NewVertexPartition returns a partition of the vertices of g into k
// blocks as given by block, which maps every vertex to [0,k).
func NewVertexPartition(g graph.IndexGraph, block []int, k int) *VertexPartition {
	return &VertexPartition{g: g, block: block, k: k}
}

// NumBlocks returns the number of blocks of the partition.
func (p *VertexPartition) NumBlocks() int { return p.k }

// Block returns the block of the vertex v.
func (p *VertexPartition) Block(v int) int { return p.block[v] }

// BlockVertices returns the vertices of the block b. The returned
// slice is shared and must not be modified.
func (p *VertexPartition) BlockVertices(b int) []int {
	if p.blocks == nil {
		p.blocks = make([][]int, p.k)
		for v, bv := range p.block {
			p.blocks[bv] = append(p.blocks[bv], v)
		}
	}
	return p.blocks[b]
}

// CrossEdges returns the edges whose endpoints lie in different
// blocks. The returned slice is shared and must not be modified.
func (p *VertexPartition) CrossEdges() []int {
	if !p.haveX {
		for e := 0; e < p.g.NumEdges(); e++ {
			if p.block[p.g.Source(e)] != p.block[p.g.Target(e)] {
				p.cross = append(p.cross, e)
			}
		}
		p.haveX = true
	}
	return p.cross
}

// IsCrossEdge reports whether the endpoints of e lie in different
// blocks.
func (p *VertexPartition) IsCrossEdge(e int) bool {
	return p.block[p.g.Source(e)] != p.block[p.g.Target(e)]
}

// Bipartition is a two-block vertex partition backed by a bitmap.
type Bipartition struct {
	g    graph.IndexGraph
	side *bitset.Set
}

// NewBipartition returns a bipartition of the vertices of g; members
// of side form the second block.
func NewBipartition(g graph.IndexGraph, side *bitset.Set) *Bipartition {
	return &Bipartition{g: g, side: side}
}

// Block returns 0 or 1 for the vertex v.
func (p *Bipartition) Block(v int) int {
	if p.side.Has(v) {
		return 1
	}
	return 0
}

// Partition expands the bipartition to a VertexPartition.
func (p *Bipartition) Partition() *VertexPartition {
	block := make([]int, p.g.NumVertices())
	for v := range block {
		block[v] = p.Block(v)
	}
	return NewVertexPartition(p.g, block, 2)
}
