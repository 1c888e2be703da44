// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package immutable

import (
	"testing"

	"github.com/tunnelvisionlabs/go-immutable/hamt"
	"github.com/tunnelvisionlabs/go-immutable/util/assert"
)

func intHash(i int) uint32 { return uint32(i) }

func TestListFactories(t *testing.T) {
	assert := assert.T(t)
	l := ListOf(1, 2, 3)
	assert.This(l.ToSlice()).Is([]int{1, 2, 3})

	l2 := ListFrom([]int{4, 5, 6})
	assert.This(l2.ToSlice()).Is([]int{4, 5, 6})

	l3 := ListFromRange([]int{1, 2, 3, 4, 5}, 1, 4)
	assert.This(l3.ToSlice()).Is([]int{2, 3, 4})

	b := NewListBuilder[int]()
	b.Add(9)
	b.Add(10)
	assert.This(b.ToImmutable().ToSlice()).Is([]int{9, 10})
}

func TestMapFactories(t *testing.T) {
	assert := assert.T(t)
	m := MapOf(intHash, map[int]string{1: "a"})
	v, ok := m.Get(1)
	assert.True(ok)
	assert.This(v).Is("a")

	m2 := MapFrom(intHash, []hamt.Pair[int, string]{
		{Key: 1, Val: "x"},
		{Key: 2, Val: "y"},
		{Key: 1, Val: "z"},
	})
	v, _ = m2.Get(1)
	assert.This(v).Is("z")
	assert.This(m2.Size()).Is(2)

	b := NewMapBuilder[int, string](intHash)
	b.Set(3, "w")
	m3 := b.ToImmutable()
	v, _ = m3.Get(3)
	assert.This(v).Is("w")
}

// TestMapDefaultHash is spec.md §4.2's "default uses the host's
// standard key hash/equality": a nil Hasher must still produce a
// working Map, not panic or silently drop entries.
func TestMapDefaultHash(t *testing.T) {
	assert := assert.T(t)
	m := MapOf[string, int](nil, map[string]int{"a": 1, "b": 2, "c": 3})
	assert.This(m.Size()).Is(3)
	v, ok := m.Get("b")
	assert.True(ok)
	assert.This(v).Is(2)

	b := NewMapBuilder[string, int](nil)
	b.Set("x", 9)
	bv, bok := b.Get("x")
	assert.True(bok)
	assert.This(bv).Is(9)
}

func TestSetFactories(t *testing.T) {
	assert := assert.T(t)
	s := SetOf(intHash, 1, 2, 3, 2)
	assert.This(s.Size()).Is(3)
	assert.True(s.Contains(1))

	s2 := SetFrom(intHash, []int{4, 5})
	assert.True(s2.Contains(4))
	assert.True(s2.Contains(5))

	b := NewSetBuilder[int](intHash)
	b.Add(7)
	assert.True(b.ToImmutable().Contains(7))
}

// TestSetDefaultHash mirrors TestMapDefaultHash for Set: a nil Hasher
// must still produce a working Set.
func TestSetDefaultHash(t *testing.T) {
	assert := assert.T(t)
	s := SetOf[string](nil, "a", "b", "a")
	assert.This(s.Size()).Is(2)
	assert.True(s.Contains("a"))
	assert.True(s.Contains("b"))
	assert.False(s.Contains("c"))
}

func TestQueueFactories(t *testing.T) {
	assert := assert.T(t)
	q := QueueOf(1, 2, 3)
	assert.This(q.ToSlice()).Is([]int{1, 2, 3})

	b := NewQueueBuilder[int]()
	b.Enqueue(8)
	assert.This(b.ToImmutable().ToSlice()).Is([]int{8})
}

func TestArrayListFactories(t *testing.T) {
	assert := assert.T(t)
	a := ArrayListOf(1, 2, 3)
	assert.This(a.ToSlice()).Is([]int{1, 2, 3})

	b := NewArrayListBuilder[int](2)
	b.Add(1)
	b.Add(2)
	al, err := b.MoveToImmutable()
	assert.Nil(err)
	assert.This(al.ToSlice()).Is([]int{1, 2})
}
