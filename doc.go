// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphalg is a collection of graph algorithms operating on
// directed and undirected, weighted and unweighted finite graphs.
//
// All algorithms execute in index space, against graphs whose vertices
// and edges are contiguous integers. The graph package defines the
// index-graph contract together with a generic identifier layer that
// lifts algorithms to graphs with arbitrary comparable vertex and edge
// identifiers; the remaining packages provide the algorithms themselves.
package graphalg // import "gonum.org/v1/graphalg"
