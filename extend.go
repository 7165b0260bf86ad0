// SPDX-License-Identifier: Apache-2.0

package strarena

import "iter"

// Extend pushes every string in ss, in order.
// Room for all of them is reserved up front.
func (s *StringArena) Extend(ss ...string) {
	n := 0
	for _, str := range ss {
		n += len(str)
	}
	s.Reserve(n, len(ss))
	for _, str := range ss {
		s.Push(str)
	}
}

// ExtendSeq pushes every string produced by seq, in order.
func (s *StringArena) ExtendSeq(seq iter.Seq[string]) {
	for str := range seq {
		s.Push(str)
	}
}

// FromStrings returns a new arena holding ss.
func FromStrings(ss ...string) *StringArena {
	s := New()
	s.Extend(ss...)
	return s
}

// Collect returns a new arena holding the strings produced by seq.
func Collect(seq iter.Seq[string]) *StringArena {
	s := New()
	s.ExtendSeq(seq)
	return s
}
