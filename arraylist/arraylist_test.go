// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package arraylist

import (
	"testing"

	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
	"github.com/tunnelvisionlabs/go-immutable/util/assert"
)

func TestOfGetEqual(t *testing.T) {
	assert := assert.T(t)
	a := Of(1, 2, 3)
	assert.This(a.Size()).Is(3)
	v, err := a.Get(1)
	assert.Nil(err)
	assert.This(v).Is(2)
	_, err = a.Get(5)
	assert.This(err).Is(errs.ErrOutOfRange)

	b := Of(1, 2, 3)
	assert.True(a.Equal(b, func(x, y int) bool { return x == y }))
}

func TestMoveToImmutableRequiresExactCapacity(t *testing.T) {
	assert := assert.T(t)
	b := NewBuilder[int](5)
	for i := 0; i < 3; i++ {
		b.Add(i)
	}
	_, err := b.MoveToImmutable()
	assert.This(err).Is(errs.ErrInvalidOperation)
	assert.This(b.Size()).Is(3) // builder still valid and usable

	b.Add(3)
	b.Add(4)
	al, err := b.MoveToImmutable()
	assert.Nil(err)
	assert.This(al.ToSlice()).Is([]int{0, 1, 2, 3, 4})
}

func TestMoveToImmutableInvalidatesBuilder(t *testing.T) {
	b := NewBuilder[int](2)
	b.Add(1)
	b.Add(2)
	_, err := b.MoveToImmutable()
	assert.T(t).Nil(err)

	defer func() {
		r := recover()
		assert.T(t).This(r).Is(errs.ErrInvalidOperation)
	}()
	b.Add(3)
}

func TestToImmutableDoesNotInvalidate(t *testing.T) {
	assert := assert.T(t)
	b := NewBuilder[int](0)
	b.Add(1)
	snap := b.ToImmutable()
	b.Add(2)
	assert.This(snap.ToSlice()).Is([]int{1})
	assert.This(b.ToSlice()).Is([]int{1, 2})
}
