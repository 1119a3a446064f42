// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heap provides the priority queues used by the algorithm
// packages: an indexed binary heap over dense integer values with
// float64 keys, and a referenceable meldable pairing heap.
package heap

const (
	notInserted = -1
	extracted   = -2
)

// IndexHeapDouble is a priority queue whose keys are float64 and whose
// values are integers in [0,n), with at most one copy of each value.
// The structure distinguishes values that were never inserted from
// values that have been extracted.
type IndexHeapDouble struct {
	key  []float64
	heap []int
	pos  []int

	touched []int
}

// NewIndexHeapDouble returns an empty heap over values [0,n).
func NewIndexHeapDouble(n int) *IndexHeapDouble {
	h := &IndexHeapDouble{
		key:  make([]float64, n),
		heap: make([]int, 0, n),
		pos:  make([]int, n),
	}
	for i := range h.pos {
		h.pos[i] = notInserted
	}
	return h
}

// Len returns the number of values currently in the heap.
func (h *IndexHeapDouble) Len() int { return len(h.heap) }

// IsInserted reports whether v is currently in the heap.
func (h *IndexHeapDouble) IsInserted(v int) bool { return h.pos[v] >= 0 }

// WasExtracted reports whether v has been extracted since the last
// Clear.
func (h *IndexHeapDouble) WasExtracted(v int) bool { return h.pos[v] == extracted }

// Key returns the current key of v. Key panics if v is not in the
// heap.
func (h *IndexHeapDouble) Key(v int) float64 {
	if h.pos[v] < 0 {
		panic("heap: key of absent value")
	}
	return h.key[v]
}

// Min returns the value and key at the top of the heap without
// removing it. Min panics on an empty heap.
func (h *IndexHeapDouble) Min() (v int, key float64) {
	v = h.heap[0]
	return v, h.key[v]
}

// Insert adds v with the given key. Insert panics if v is already
// inserted or was extracted.
func (h *IndexHeapDouble) Insert(v int, key float64) {
	if h.pos[v] != notInserted {
		panic("heap: insert of present value")
	}
	h.key[v] = key
	h.pos[v] = len(h.heap)
	h.heap = append(h.heap, v)
	h.touched = append(h.touched, v)
	h.up(len(h.heap) - 1)
}

// DecreaseKey lowers the key of v to key. DecreaseKey panics if v is
// not in the heap or key is greater than the current key.
func (h *IndexHeapDouble) DecreaseKey(v int, key float64) {
	if h.pos[v] < 0 {
		panic("heap: decrease-key of absent value")
	}
	if key > h.key[v] {
		panic("heap: key increase in decrease-key")
	}
	h.key[v] = key
	h.up(h.pos[v])
}

// ExtractMin removes and returns the value with the minimum key.
// ExtractMin panics on an empty heap.
func (h *IndexHeapDouble) ExtractMin() int {
	v := h.heap[0]
	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	h.pos[v] = extracted
	if last > 0 {
		h.down(0)
	}
	return v
}

// Clear empties the heap and forgets all extraction state, touching
// only the values used since the previous Clear.
func (h *IndexHeapDouble) Clear() {
	for _, v := range h.touched {
		h.pos[v] = notInserted
	}
	h.touched = h.touched[:0]
	h.heap = h.heap[:0]
}

func (h *IndexHeapDouble) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i]] = i
	h.pos[h.heap[j]] = j
}

func (h *IndexHeapDouble) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.key[h.heap[i]] >= h.key[h.heap[parent]] {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *IndexHeapDouble) down(i int) {
	n := len(h.heap)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		least := left
		if right := left + 1; right < n && h.key[h.heap[right]] < h.key[h.heap[left]] {
			least = right
		}
		if h.key[h.heap[i]] <= h.key[h.heap[least]] {
			return
		}
		h.swap(i, least)
		i = least
	}
}
