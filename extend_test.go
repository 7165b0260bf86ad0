// SPDX-License-Identifier: Apache-2.0

package strarena

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtend(t *testing.T) {
	s := New()
	s.Push("first")
	s.Extend("a", "bb", "")

	require.Equal(t, 4, s.Len())
	require.GreaterOrEqual(t, cap(s.ends), 4)
	require.Equal(t, []string{"first", "a", "bb", ""}, slices.Collect(s.Strings()))

	s.Extend()
	require.Equal(t, 4, s.Len())
}

func TestExtendSeq(t *testing.T) {
	s := New()
	s.ExtendSeq(slices.Values([]string{"x", "y"}))
	s.ExtendSeq(s.Clone().Strings())
	require.Equal(t, []string{"x", "y", "x", "y"}, slices.Collect(s.Strings()))
}

func TestFromStrings(t *testing.T) {
	s := FromStrings("one", "two", "three")
	require.Equal(t, 3, s.Len())
	require.Equal(t, "three", s.Get(2))
	require.Equal(t, len("onetwothree"), s.Cap())
}

func TestCollect(t *testing.T) {
	seq := func(yield func(string) bool) {
		for i := 0; i < 100; i++ {
			if !yield(strconv.Itoa(i)) {
				return
			}
		}
	}
	s := Collect(seq)
	require.Equal(t, 100, s.Len())
	require.Equal(t, "42", s.Get(42))
	require.Equal(t, "99", s.Get(99))
}
