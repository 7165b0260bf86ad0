// SPDX-License-Identifier: Apache-2.0

package strarena

import (
	"errors"
	"io"
	"unicode/utf8"
)

const minRead = 512

var errNegativeRead = errors.New("strarena: reader returned negative count from Read")

// Consume reads from r until EOF and stores everything read as one new string.
// It returns the index of that string.
//
// If r fails with an error other than io.EOF, Consume returns -1 and that error unchanged.
// The bytes read before the failure stay in the buffer without an index: they cannot be
// addressed, still count towards Size, and are discarded by the next Push, Writer,
// Consume, Pop, Truncate or Clear.
//
// If the bytes read are not valid UTF-8 they are discarded and ErrInvalidUTF8 is returned.
func (s *StringArena) Consume(r io.Reader) (int, error) {
	s.checkIdle()
	s.settle()

	start := len(s.buf)
	for {
		// Read straight into the spare capacity of the buffer.
		s.buf = grow(s.buf, minRead)
		nr, err := r.Read(s.buf[len(s.buf):cap(s.buf)])
		if nr < 0 {
			panic(errNegativeRead)
		}
		s.buf = s.buf[:len(s.buf)+nr]
		if err != nil {
			if err == io.EOF {
				break
			}
			return -1, err
		}
	}

	if !utf8.Valid(s.buf[start:]) {
		s.buf = s.buf[:start]
		return -1, ErrInvalidUTF8
	}
	return s.commit(), nil
}
