// SPDX-License-Identifier: Apache-2.0

package strarena

import (
	"fmt"
	"unicode/utf8"
)

// Writer builds a single string in place, directly in its arena's buffer.
// It implements io.Writer, io.StringWriter and io.ByteWriter, so it can be handed
// to fmt.Fprintf and friends.
//
// Nothing written becomes visible until the Writer is finished with Finish or Close.
// Exactly one string is committed per Writer, no matter how often either is called,
// so the usual pattern is:
//
//	w := s.Writer()
//	defer w.Close()
//	fmt.Fprintf(w, "%s=%d", key, value)
//	idx := w.Finish()
//
// While a Writer is open, every other method of the arena panics with ErrBusy.
type Writer struct {
	s     *StringArena
	start int
	n     int // length at commit
	idx   int
	done  bool
}

// Writer opens a Writer on s. It panics with ErrBusy if another Writer is already open.
func (s *StringArena) Writer() *Writer {
	s.checkIdle()
	s.settle()
	s.writing = true
	s.gen++
	return &Writer{
		s:     s,
		start: len(s.buf),
		idx:   -1,
	}
}

// Write implements io.Writer. It never fails.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.checkOpen()
	w.s.buf = append(grow(w.s.buf, len(p)), p...)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (w *Writer) WriteString(str string) (n int, err error) {
	w.checkOpen()
	w.s.buf = append(grow(w.s.buf, len(str)), str...)
	return len(str), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (w *Writer) WriteByte(c byte) error {
	w.checkOpen()
	w.s.buf = append(grow(w.s.buf, 1), c)
	return nil
}

// WriteRune writes the UTF-8 encoding of r. Invalid runes are written as utf8.RuneError.
func (w *Writer) WriteRune(r rune) (n int, err error) {
	w.checkOpen()
	l := len(w.s.buf)
	w.s.buf = utf8.AppendRune(grow(w.s.buf, utf8.UTFMax), r)
	return len(w.s.buf) - l, nil
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	if w.done {
		return w.n
	}
	return len(w.s.buf) - w.start
}

// Finish commits the string and returns its index.
// Calling Finish again, or Close afterwards, returns the same index without committing again.
func (w *Writer) Finish() int {
	w.commit()
	return w.idx
}

// Close commits the string if Finish has not done so yet. It always returns nil.
func (w *Writer) Close() error {
	w.commit()
	return nil
}

func (w *Writer) commit() {
	if w.done {
		return
	}
	w.done = true
	w.n = len(w.s.buf) - w.start
	w.s.writing = false
	w.idx = w.s.commit()
}

func (w *Writer) checkOpen() {
	if w.done {
		panic(ErrWriterClosed)
	}
}

// Write pushes p as a new string. Together with WriteString it lets the arena act as a
// text sink: every call produces exactly one string. It never fails.
func (s *StringArena) Write(p []byte) (n int, err error) {
	s.PushBytes(p)
	return len(p), nil
}

// WriteString pushes str as a new string. It never fails.
func (s *StringArena) WriteString(str string) (n int, err error) {
	s.Push(str)
	return len(str), nil
}

// Printf formats according to a format specifier, stores the result as a new string
// and returns its index.
func (s *StringArena) Printf(format string, args ...any) int {
	w := s.Writer()
	defer w.Close()
	_, _ = fmt.Fprintf(w, format, args...)
	return w.Finish()
}
