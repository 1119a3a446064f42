// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"errors"
	"fmt"
)

// ErrNegativeWeight is returned by algorithms requiring non-negative
// edge weights when a negative weight is observed.
var ErrNegativeWeight = errors.New("graph: negative edge weight")

// NoSuchVertexError is returned when a vertex identifier or index is
// not present in a graph.
type NoSuchVertexError struct {
	ID any
}

func (e NoSuchVertexError) Error() string {
	return fmt.Sprintf("graph: no such vertex: %v", e.ID)
}

// NoSuchEdgeError is returned when an edge identifier or index is not
// present in a graph.
type NoSuchEdgeError struct {
	ID any
}

func (e NoSuchEdgeError) Error() string {
	return fmt.Sprintf("graph: no such edge: %v", e.ID)
}

// DirectionError is returned when an algorithm requires a directed or
// an undirected graph and the input is the other.
type DirectionError struct {
	// Directed is the directionality the algorithm requires.
	Directed bool
}

func (e DirectionError) Error() string {
	if e.Directed {
		return "graph: algorithm requires a directed graph"
	}
	return "graph: algorithm requires an undirected graph"
}

// ArgumentError is returned for invalid caller-supplied arguments such
// as a non-positive k, equal source and target where forbidden, a
// supply mismatch or a lower bound exceeding a capacity.
type ArgumentError struct {
	Reason string
}

func (e ArgumentError) Error() string {
	return "graph: invalid argument: " + e.Reason
}
