// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "testing"

func TestIndexHeapDouble(t *testing.T) {
	h := NewIndexHeapDouble(8)
	h.Insert(3, 5)
	h.Insert(1, 2)
	h.Insert(6, 9)
	if !h.IsInserted(1) || h.IsInserted(0) {
		t.Error("unexpected insertion state")
	}
	h.DecreaseKey(6, 1)
	if got := h.ExtractMin(); got != 6 {
		t.Errorf("unexpected min after decrease-key: got %d", got)
	}
	if !h.WasExtracted(6) {
		t.Error("6 should read as extracted")
	}
	if h.IsInserted(6) {
		t.Error("6 should no longer be inserted")
	}
	if got := h.ExtractMin(); got != 1 {
		t.Errorf("unexpected second min: got %d", got)
	}
	if got := h.ExtractMin(); got != 3 {
		t.Errorf("unexpected third min: got %d", got)
	}
	h.Clear()
	if h.WasExtracted(6) || h.IsInserted(3) || h.Len() != 0 {
		t.Error("clear did not reset state")
	}
	h.Insert(6, 1) // re-insertion after Clear must be permitted
	if got := h.ExtractMin(); got != 6 {
		t.Errorf("unexpected min after clear: got %d", got)
	}
}

func TestPairingHeap(t *testing.T) {
	var h Pairing[string]
	ra := h.Insert("a", 4)
	h.Insert("b", 2)
	rc := h.Insert("c", 7)
	h.DecreaseKey(rc, 1)
	if got := h.ExtractMin(); got.Value != "c" {
		t.Errorf("unexpected min after decrease-key: got %q", got.Value)
	}
	h.Remove(ra)
	if got := h.ExtractMin(); got.Value != "b" {
		t.Errorf("unexpected min after remove: got %q", got.Value)
	}
	if h.Len() != 0 {
		t.Errorf("heap should be empty, has %d", h.Len())
	}

	var other Pairing[string]
	h.Insert("x", 5)
	other.Insert("y", 3)
	h.Meld(&other)
	if other.Len() != 0 {
		t.Error("meld should drain the melded heap")
	}
	if got := h.ExtractMin(); got.Value != "y" {
		t.Errorf("unexpected min after meld: got %q", got.Value)
	}
	if got := h.ExtractMin(); got.Value != "x" {
		t.Errorf("unexpected last value: got %q", got.Value)
	}
}
