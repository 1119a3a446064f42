// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package path provides shortest-path algorithms: single-source trees
// with automatic algorithm selection, all-pairs distance matrices,
// point-to-point bidirectional and heuristic searches, and k-shortest
// simple paths.
package path // import "gonum.org/v1/graphalg/path"
