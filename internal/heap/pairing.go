// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Node is a reference to an element of a Pairing heap, usable for
// DecreaseKey and Remove.
type Node[T any] struct {
	Value T
	key   float64

	child, sibling, prev *Node[T]
}

// Key returns the node's current key.
func (n *Node[T]) Key() float64 { return n.key }

// Pairing is a meldable min-heap of float64-keyed values that returns
// a reference on insert.
type Pairing[T any] struct {
	root *Node[T]
	n    int
}

// Len returns the number of elements in the heap.
func (h *Pairing[T]) Len() int { return h.n }

// Insert adds value with the given key and returns its reference.
func (h *Pairing[T]) Insert(value T, key float64) *Node[T] {
	n := &Node[T]{Value: value, key: key}
	h.root = merge(h.root, n)
	h.n++
	return n
}

// Min returns the node with the minimum key, or nil if the heap is
// empty.
func (h *Pairing[T]) Min() *Node[T] { return h.root }

// ExtractMin removes and returns the node with the minimum key.
// ExtractMin panics on an empty heap.
func (h *Pairing[T]) ExtractMin() *Node[T] {
	n := h.root
	if n == nil {
		panic("heap: extract from empty pairing heap")
	}
	h.root = mergePairs(n.child)
	if h.root != nil {
		h.root.prev = nil
		h.root.sibling = nil
	}
	n.child = nil
	n.prev = nil
	h.n--
	return n
}

// DecreaseKey lowers the key of n to key. DecreaseKey panics if key is
// greater than the node's current key.
func (h *Pairing[T]) DecreaseKey(n *Node[T], key float64) {
	if key > n.key {
		panic("heap: key increase in decrease-key")
	}
	n.key = key
	if n == h.root {
		return
	}
	detach(n)
	h.root = merge(h.root, n)
}

// Remove removes n from the heap.
func (h *Pairing[T]) Remove(n *Node[T]) {
	if n == h.root {
		h.ExtractMin()
		return
	}
	detach(n)
	h.root = merge(h.root, mergePairs(n.child))
	n.child = nil
	h.n--
}

// Meld merges other into h, leaving other empty.
func (h *Pairing[T]) Meld(other *Pairing[T]) {
	h.root = merge(h.root, other.root)
	h.n += other.n
	other.root = nil
	other.n = 0
}

// detach unlinks n from its parent's child list.
func detach[T any](n *Node[T]) {
	if n.prev.child == n {
		n.prev.child = n.sibling
	} else {
		n.prev.sibling = n.sibling
	}
	if n.sibling != nil {
		n.sibling.prev = n.prev
	}
	n.prev = nil
	n.sibling = nil
}

func merge[T any](a, b *Node[T]) *Node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.key < a.key {
		a, b = b, a
	}
	b.sibling = a.child
	if a.child != nil {
		a.child.prev = b
	}
	b.prev = a
	a.child = b
	return a
}

// mergePairs performs the two-pass pairing of a child list.
func mergePairs[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	if n.sibling == nil {
		n.prev = nil
		return n
	}
	a, b, rest := n, n.sibling, n.sibling.sibling
	a.sibling, a.prev = nil, nil
	b.sibling, b.prev = nil, nil
	return merge(merge(a, b), mergePairs(rest))
}
