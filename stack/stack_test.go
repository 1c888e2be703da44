// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package stack

import (
	"testing"

	"github.com/tunnelvisionlabs/go-immutable/util/assert"
)

func TestPushPeekPop(t *testing.T) {
	assert := assert.T(t)
	s := Empty[int]()
	assert.True(s.IsEmpty())
	_, ok := s.Peek()
	assert.False(ok)

	s1 := s.Push(1).Push(2).Push(3)
	assert.False(s1.IsEmpty())
	top, ok := s1.Peek()
	assert.True(ok)
	assert.This(top).Is(3)

	s2, v, ok := s1.Pop()
	assert.True(ok)
	assert.This(v).Is(3)
	assert.This(s2.ToSlice()).Is([]int{2, 1})
	assert.This(s1.ToSlice()).Is([]int{3, 2, 1}) // s1 unaffected by popping s2 from it
}

func TestReverse(t *testing.T) {
	assert := assert.T(t)
	s := Empty[int]().Push(1).Push(2).Push(3)
	assert.This(s.ToSlice()).Is([]int{3, 2, 1})
	assert.This(s.Reverse().ToSlice()).Is([]int{1, 2, 3})
}

func TestIter(t *testing.T) {
	assert := assert.T(t)
	s := Empty[string]().Push("a").Push("b").Push("c")
	it := s.Iter()
	var got []string
	for v, ok := it(); ok; v, ok = it() {
		got = append(got, v)
	}
	assert.This(got).Is([]string{"c", "b", "a"})
	_, ok := it()
	assert.False(ok)
}
