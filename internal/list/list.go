// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package list provides an intrusive doubly linked list over integer
// indices with O(1) detach and attach.
package list

// Doubly links elements of [0,n) into external chains. An element may
// be a member of at most one chain at a time. The sentinel -1
// terminates chains.
type Doubly struct {
	next, prev []int
}

// NewDoubly returns list storage for n elements, all detached.
func NewDoubly(n int) *Doubly {
	l := &Doubly{next: make([]int, n), prev: make([]int, n)}
	for i := 0; i < n; i++ {
		l.next[i] = -1
		l.prev[i] = -1
	}
	return l
}

// Next returns the successor of e, or -1.
func (l *Doubly) Next(e int) int { return l.next[e] }

// Prev returns the predecessor of e, or -1.
func (l *Doubly) Prev(e int) int { return l.prev[e] }

// PushFront inserts e at the front of the chain whose first element is
// head (-1 for an empty chain) and returns the new head.
func (l *Doubly) PushFront(head, e int) int {
	l.prev[e] = -1
	l.next[e] = head
	if head >= 0 {
		l.prev[head] = e
	}
	return e
}

// Remove detaches e from the chain whose first element is head and
// returns the new head.
func (l *Doubly) Remove(head, e int) int {
	if l.prev[e] >= 0 {
		l.next[l.prev[e]] = l.next[e]
	} else {
		head = l.next[e]
	}
	if l.next[e] >= 0 {
		l.prev[l.next[e]] = l.prev[e]
	}
	l.next[e] = -1
	l.prev[e] = -1
	return head
}
