// SPDX-License-Identifier: Apache-2.0

// Package strarena provides StringArena, a container that packs many short-lived
// strings into one growable byte buffer and refers to them by index.
//
// Strings are released together (Clear, Truncate, Pop) rather than one at a time,
// and the buffer's capacity is kept for reuse. This makes it a good fit for hot
// loops that format lots of small strings and throw them away in bulk.
package strarena

import (
	"fmt"
	"strconv"
	"unsafe"
)

// StringArena stores strings back to back in a single buffer.
// String i occupies buf[ends[i-1]:ends[i]], with an implicit start of 0 for the first string.
//
// A StringArena must not be used from multiple goroutines at once.
// The zero value is an empty arena ready to use.
type StringArena struct {
	buf  []byte
	ends []int

	gen     uint64 // bumped by every mutation, checked by iterators
	writing bool   // a Writer is open

	peakBytes   int
	peakStrings int
}

// New returns an empty arena.
func New() *StringArena {
	return &StringArena{}
}

// WithCapacity returns an empty arena that can hold the given number of bytes and strings
// before it has to grow. Both values are hints; the arena grows past them as needed.
func WithCapacity(bytes, strings int) *StringArena {
	return &StringArena{
		buf:  make([]byte, 0, max(bytes, 0)),
		ends: make([]int, 0, max(strings, 0)),
	}
}

// Push appends str to the arena and returns its index.
// Previously returned views from Index or UnsafeString stay readable, but may be
// overwritten by later pushes once the strings they refer to are popped or truncated.
func (s *StringArena) Push(str string) int {
	s.checkIdle()
	s.settle()
	s.buf = append(grow(s.buf, len(str)), str...)
	return s.commit()
}

// PushBytes appends the contents of b to the arena and returns its index.
// The arena keeps its own copy; b may be reused afterwards.
func (s *StringArena) PushBytes(b []byte) int {
	s.checkIdle()
	s.settle()
	s.buf = append(grow(s.buf, len(b)), b...)
	return s.commit()
}

// Index returns the bytes of string i.
// The returned slice aliases the arena's buffer and is only valid until the next mutation.
// Its capacity is clipped, so appending to it never writes into the arena.
// Index panics if i is out of range.
func (s *StringArena) Index(i int) []byte {
	s.checkIdle()
	return s.view(i)
}

// Get returns a copy of string i. It panics if i is out of range.
func (s *StringArena) Get(i int) string {
	s.checkIdle()
	return string(s.view(i))
}

// UnsafeString returns string i without copying it.
// The result shares memory with the arena and is only valid until the next mutation:
// once string i is popped, truncated or cleared, later pushes overwrite its bytes
// in place and the returned string changes. UnsafeString panics if i is out of range.
func (s *StringArena) UnsafeString(i int) string {
	s.checkIdle()
	b := s.view(i)
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Len returns the number of strings in the arena.
func (s *StringArena) Len() int {
	s.checkIdle()
	return len(s.ends)
}

// Size returns the number of bytes currently held in the buffer.
// This includes bytes left behind by a failed Consume.
func (s *StringArena) Size() int {
	s.checkIdle()
	return len(s.buf)
}

// Cap returns the capacity of the underlying byte buffer.
func (s *StringArena) Cap() int {
	s.checkIdle()
	return cap(s.buf)
}

// Peak returns the largest number of bytes and strings the arena has held at once.
// It is not reset by Clear, Truncate or Pop.
func (s *StringArena) Peak() (bytes, strings int) {
	return s.peakBytes, s.peakStrings
}

// Pop removes the most recently pushed string.
// It reports whether a string was removed. Capacity is retained.
func (s *StringArena) Pop() bool {
	s.checkIdle()
	if len(s.ends) == 0 {
		return false
	}
	s.ends = s.ends[:len(s.ends)-1]
	s.buf = s.buf[:s.lastEnd()]
	s.gen++
	return true
}

// Truncate keeps the first n strings and discards the rest.
// It does nothing if n >= Len(). It panics if n is negative.
func (s *StringArena) Truncate(n int) {
	s.checkIdle()
	if n < 0 {
		panic("strarena: truncation out of range")
	}
	if n >= len(s.ends) {
		return
	}
	s.ends = s.ends[:n]
	s.buf = s.buf[:s.lastEnd()]
	s.gen++
}

// Clear removes all strings. Capacity is retained.
func (s *StringArena) Clear() {
	s.checkIdle()
	s.ends = s.ends[:0]
	s.buf = s.buf[:0]
	s.gen++
}

// Reserve makes room for at least the given number of additional bytes and strings
// without further allocation. Negative values are treated as zero.
func (s *StringArena) Reserve(bytes, strings int) {
	s.checkIdle()
	s.buf = grow(s.buf, max(bytes, 0))
	s.ends = grow(s.ends, max(strings, 0))
}

// Clone returns a deep copy of the arena's live strings.
func (s *StringArena) Clone() *StringArena {
	s.checkIdle()
	end := s.lastEnd()
	c := WithCapacity(end, len(s.ends))
	c.buf = append(c.buf, s.buf[:end]...)
	c.ends = append(c.ends, s.ends...)
	c.peakBytes, c.peakStrings = s.peakBytes, s.peakStrings
	return c
}

// String renders the arena as a list of quoted strings, e.g. ["one" "two"].
func (s *StringArena) String() string {
	s.checkIdle()
	out := make([]byte, 0, s.lastEnd()+3*len(s.ends)+2)
	out = append(out, '[')
	for i := range s.ends {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendQuote(out, string(s.view(i)))
	}
	out = append(out, ']')
	return string(out)
}

// commit records the end of the string that was just appended to buf.
func (s *StringArena) commit() int {
	s.ends = append(grow(s.ends, 1), len(s.buf))
	s.gen++
	s.peakBytes = max(s.peakBytes, len(s.buf))
	s.peakStrings = max(s.peakStrings, len(s.ends))
	return len(s.ends) - 1
}

// settle drops bytes past the last committed end, left there by a failed Consume,
// so they never become part of the next string.
func (s *StringArena) settle() {
	if end := s.lastEnd(); len(s.buf) > end {
		s.buf = s.buf[:end]
	}
}

func (s *StringArena) lastEnd() int {
	if len(s.ends) == 0 {
		return 0
	}
	return s.ends[len(s.ends)-1]
}

func (s *StringArena) view(i int) []byte {
	if uint(i) >= uint(len(s.ends)) {
		panic(fmt.Sprintf("strarena: index out of range [%d] with length %d", i, len(s.ends)))
	}
	start := 0
	if i > 0 {
		start = s.ends[i-1]
	}
	end := s.ends[i]
	return s.buf[start:end:end]
}

func (s *StringArena) checkIdle() {
	if s.writing {
		panic(ErrBusy)
	}
}
