// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitset

import "testing"

func TestSetBasics(t *testing.T) {
	s := New(130)
	for _, i := range []int{0, 63, 64, 129} {
		s.Set(i)
	}
	for _, i := range []int{0, 63, 64, 129} {
		if !s.Has(i) {
			t.Errorf("bit %d should be set", i)
		}
	}
	if s.Has(65) {
		t.Error("bit 65 should be clear")
	}
	if got, want := s.Count(), 4; got != want {
		t.Errorf("unexpected count: got %d want %d", got, want)
	}
	var got []int
	s.Scan(func(i int) bool {
		got = append(got, i)
		return true
	})
	want := []int{0, 63, 64, 129}
	if len(got) != len(want) {
		t.Fatalf("unexpected scan: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected scan: got %v want %v", got, want)
		}
	}
	s.Clear(63)
	if s.Has(63) {
		t.Error("bit 63 should be clear after Clear")
	}
}

func TestDirtyReset(t *testing.T) {
	s := NewDirty(1024)
	for _, i := range []int{1, 2, 3, 1000} {
		s.Set(i)
	}
	s.Reset()
	for i := 0; i < 1024; i++ {
		if s.Has(i) {
			t.Fatalf("bit %d survived reset", i)
		}
	}
	// Dense usage crosses the bulk-clear threshold.
	for i := 0; i < 600; i++ {
		s.Set(i)
	}
	s.Reset()
	for i := 0; i < 1024; i++ {
		if s.Has(i) {
			t.Fatalf("bit %d survived bulk reset", i)
		}
	}
}
