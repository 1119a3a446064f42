// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitset provides dense bit sets over the index range [0,n).
package bitset

import "math/bits"

const wordSize = 64

// Set is a fixed-size dense bit set.
type Set struct {
	words []uint64
	n     int
}

// New returns a set over [0,n) with no bits set.
func New(n int) *Set {
	return &Set{words: make([]uint64, (n+wordSize-1)/wordSize), n: n}
}

// Len returns the size of the set's universe.
func (s *Set) Len() int { return s.n }

// Has reports whether i is in the set.
func (s *Set) Has(i int) bool {
	return s.words[i/wordSize]&(1<<uint(i%wordSize)) != 0
}

// Set adds i to the set.
func (s *Set) Set(i int) {
	s.words[i/wordSize] |= 1 << uint(i%wordSize)
}

// Clear removes i from the set.
func (s *Set) Clear(i int) {
	s.words[i/wordSize] &^= 1 << uint(i%wordSize)
}

// Reset removes all members from the set.
func (s *Set) Reset() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Count returns the number of members in the set.
func (s *Set) Count() int {
	var c int
	for _, w := range s.words {
		c += bits.OnesCount64(w)
	}
	return c
}

// Scan calls f for each member of the set in increasing order until f
// returns false.
func (s *Set) Scan(f func(i int) bool) {
	for wi, w := range s.words {
		for w != 0 {
			i := wi*wordSize + bits.TrailingZeros64(w)
			if i >= s.n {
				return
			}
			if !f(i) {
				return
			}
			w &= w - 1
		}
	}
}

// Dirty is a Set that remembers the indices it has set, so that Reset
// clears only those indices. Above a density threshold Reset falls
// back to a bulk clear.
type Dirty struct {
	bits  *Set
	dirty []int
}

// NewDirty returns a dirty-tracking set over [0,n).
func NewDirty(n int) *Dirty {
	return &Dirty{bits: New(n)}
}

// Has reports whether i is in the set.
func (s *Dirty) Has(i int) bool { return s.bits.Has(i) }

// Set adds i to the set, remembering it for Reset.
func (s *Dirty) Set(i int) {
	if !s.bits.Has(i) {
		s.dirty = append(s.dirty, i)
		s.bits.Set(i)
	}
}

// Reset removes all members, clearing only remembered indices when
// they are sparse.
func (s *Dirty) Reset() {
	if len(s.dirty) >= s.bits.n/wordSize {
		s.bits.Reset()
	} else {
		for _, i := range s.dirty {
			s.bits.Clear(i)
		}
	}
	s.dirty = s.dirty[:0]
}
