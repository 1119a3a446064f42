// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package list

import "testing"

func chainOf(l *Doubly, head int) []int {
	var c []int
	for e := head; e >= 0; e = l.Next(e) {
		c = append(c, e)
	}
	return c
}

func TestDoublyChains(t *testing.T) {
	l := NewDoubly(6)
	head := -1
	for _, e := range []int{0, 1, 2, 3} {
		head = l.PushFront(head, e)
	}
	got := chainOf(l, head)
	want := []int{3, 2, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected chain: got %v want %v", got, want)
		}
	}

	head = l.Remove(head, 2) // interior
	head = l.Remove(head, 3) // head
	head = l.Remove(head, 0) // tail
	got = chainOf(l, head)
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("unexpected chain after removals: got %v", got)
	}
	head = l.Remove(head, 1)
	if head != -1 {
		t.Errorf("chain should be empty, head %d", head)
	}
}
