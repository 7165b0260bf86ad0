// SPDX-License-Identifier: Apache-2.0

package strarena

import "iter"

// Iter walks the strings of an arena from both ends.
// The remaining strings are those in [start, end); Next consumes from the front and
// NextBack from the back until the two cursors meet.
//
// The slices returned alias the arena's buffer. An Iter becomes invalid as soon as its
// arena is modified; advancing it afterwards panics with ErrModified.
type Iter struct {
	s     *StringArena
	gen   uint64
	start int
	end   int
}

// Iter returns an iterator over all strings currently in the arena.
func (s *StringArena) Iter() *Iter {
	s.checkIdle()
	return &Iter{
		s:   s,
		gen: s.gen,
		end: len(s.ends),
	}
}

// Next returns the next string from the front.
// The second result is false once the iterator is exhausted.
func (it *Iter) Next() ([]byte, bool) {
	it.check()
	if it.start == it.end {
		return nil, false
	}
	b := it.s.view(it.start)
	it.start++
	return b, true
}

// NextBack returns the next string from the back.
// The second result is false once the iterator is exhausted.
func (it *Iter) NextBack() ([]byte, bool) {
	it.check()
	if it.start == it.end {
		return nil, false
	}
	it.end--
	return it.s.view(it.end), true
}

// Nth skips k strings and returns the one after them, exactly like calling Next k+1 times.
// If fewer than k+1 strings remain the iterator is exhausted and the second result is false.
// Nth panics if k is negative.
func (it *Iter) Nth(k int) ([]byte, bool) {
	if k < 0 {
		panic("strarena: negative skip count")
	}
	it.check()
	if k >= it.end-it.start {
		it.start = it.end
		return nil, false
	}
	it.start += k
	return it.Next()
}

// Last exhausts the iterator and returns the final remaining string.
func (it *Iter) Last() ([]byte, bool) {
	b, ok := it.NextBack()
	it.start = it.end
	return b, ok
}

// Len returns the number of strings left.
func (it *Iter) Len() int {
	return it.end - it.start
}

func (it *Iter) check() {
	it.s.checkIdle()
	if it.gen != it.s.gen {
		panic(ErrModified)
	}
}

// All returns an iterator over index and bytes of every string, front to back.
// The arena must not be modified during the loop.
func (s *StringArena) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		it := s.Iter()
		for i := 0; ; i++ {
			b, ok := it.Next()
			if !ok || !yield(i, b) {
				return
			}
		}
	}
}

// Backward returns an iterator over index and bytes of every string, back to front.
// The arena must not be modified during the loop.
func (s *StringArena) Backward() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		it := s.Iter()
		for {
			i := it.Len() - 1
			b, ok := it.NextBack()
			if !ok || !yield(i, b) {
				return
			}
		}
	}
}

// Strings returns an iterator over copies of every string, front to back.
func (s *StringArena) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, b := range s.All() {
			if !yield(string(b)) {
				return
			}
		}
	}
}
