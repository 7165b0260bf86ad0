// SPDX-License-Identifier: Apache-2.0

package strarena

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

// errorReader returns the first errPos bytes of data, then fails.
type errorReader struct {
	data   []byte
	pos    int
	errPos int
}

var errTestRead = errors.New("test error")

func (er *errorReader) Read(p []byte) (n int, err error) {
	if er.pos >= er.errPos {
		return 0, errTestRead
	}

	remaining := er.errPos - er.pos
	if len(p) > remaining {
		p = p[:remaining]
	}

	n = copy(p, er.data[er.pos:])
	er.pos += n
	return n, nil
}

func TestConsume(t *testing.T) {
	s := New()
	idx, err := s.Consume(strings.NewReader("testing"))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, "testing", s.Get(idx))
}

func TestConsumeAfterPush(t *testing.T) {
	s := New()
	s.Push("before")
	idx, err := s.Consume(bytes.NewReader([]byte("consumed")))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
	s.Push("after")

	require.Equal(t, "before", s.Get(0))
	require.Equal(t, "consumed", s.Get(1))
	require.Equal(t, "after", s.Get(2))
}

func TestConsumeEmptyReader(t *testing.T) {
	s := New()
	idx, err := s.Consume(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, "", s.Get(idx))
	require.Equal(t, 1, s.Len())
}

func TestConsumeLargeData(t *testing.T) {
	s := New()
	// larger than a single read
	largeData := strings.Repeat("abcdefghijklmnopqrstuvwxyz", 200)
	idx, err := s.Consume(iotest.OneByteReader(strings.NewReader(largeData)))
	require.NoError(t, err)
	require.Equal(t, largeData, s.Get(idx))
	require.Equal(t, len(largeData), s.Size())
}

func TestConsumeDataWithEOF(t *testing.T) {
	s := New()
	idx, err := s.Consume(iotest.DataErrReader(strings.NewReader("final chunk")))
	require.NoError(t, err)
	require.Equal(t, "final chunk", s.Get(idx))
}

func TestConsumeWithError(t *testing.T) {
	s := New()
	s.Push("kept")

	idx, err := s.Consume(&errorReader{data: []byte("hello"), errPos: 3})
	require.ErrorIs(t, err, errTestRead)
	require.Equal(t, -1, idx)

	// partial bytes occupy the buffer but no index refers to them
	require.Equal(t, 1, s.Len())
	require.Equal(t, len("kept")+3, s.Size())
	require.Equal(t, "kept", s.Get(0))
	require.Panics(t, func() { s.Get(1) })

	// and they never leak into the next string
	idx = s.Push("next")
	require.Equal(t, 1, idx)
	require.Equal(t, "next", s.Get(idx))
	require.Equal(t, len("keptnext"), s.Size())
}

func TestConsumeWithErrorReclaimedByTruncate(t *testing.T) {
	s := FromStrings("a", "b")
	_, err := s.Consume(iotest.TimeoutReader(strings.NewReader(strings.Repeat("x", 1024))))
	require.ErrorIs(t, err, iotest.ErrTimeout)
	require.Greater(t, s.Size(), 2)

	s.Truncate(1)
	require.Equal(t, 1, s.Size())
	require.Equal(t, "a", s.Get(0))
}

func TestConsumeInvalidUTF8(t *testing.T) {
	s := New()
	s.Push("ok")

	idx, err := s.Consume(bytes.NewReader([]byte{'a', 0xff, 'b'}))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	require.Equal(t, -1, idx)
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, s.Size())
}

func TestConsumeMultiByteAcrossReads(t *testing.T) {
	s := New()
	text := strings.Repeat("héllo wörld ", 100)
	idx, err := s.Consume(iotest.HalfReader(strings.NewReader(text)))
	require.NoError(t, err)
	require.Equal(t, text, s.Get(idx))
}

func TestConsumeIoReaderCompatibility(t *testing.T) {
	s := New()
	var r io.Reader = strings.NewReader("hello world")
	idx, err := s.Consume(r)
	require.NoError(t, err)
	require.Equal(t, "hello world", s.Get(idx))
}
