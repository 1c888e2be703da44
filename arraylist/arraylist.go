// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package arraylist implements a thin immutable wrapper over a slice,
// kept in scope (per SPEC_FULL.md) only for moveToImmutable and
// factory-function completeness — spec.md marks it out of scope as an
// algorithm in its own right, since it carries none of the
// structural-sharing machinery the other containers do.
package arraylist

import "github.com/tunnelvisionlabs/go-immutable/internal/errs"

// ArrayList is an immutable, fixed-content sequence of T backed by a
// plain slice. The zero value is the empty ArrayList.
type ArrayList[T any] struct {
	data []T
}

// Of builds an ArrayList from its arguments, in order.
func Of[T any](xs ...T) ArrayList[T] {
	return ArrayList[T]{data: append([]T(nil), xs...)}
}

// FromRange builds an ArrayList from the half-open range [from, to) of
// src.
func FromRange[T any](src []T, from, to int) ArrayList[T] {
	if from < 0 || to < from || to > len(src) {
		panic(errs.ErrOutOfRange)
	}
	return ArrayList[T]{data: append([]T(nil), src[from:to]...)}
}

// Size returns the number of elements.
func (a ArrayList[T]) Size() int {
	return len(a.data)
}

// IsEmpty reports whether the ArrayList has no elements.
func (a ArrayList[T]) IsEmpty() bool {
	return len(a.data) == 0
}

// Get returns the element at index i.
func (a ArrayList[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(a.data) {
		return zero, errs.ErrOutOfRange
	}
	return a.data[i], nil
}

// MustGet is like Get but panics on an out-of-range index.
func (a ArrayList[T]) MustGet(i int) T {
	v, err := a.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

// ToSlice returns a copy of the elements, in order.
func (a ArrayList[T]) ToSlice() []T {
	return append([]T(nil), a.data...)
}

// Iter returns a lazy, single-use iterator.
func (a ArrayList[T]) Iter() func() (T, bool) {
	i := 0
	return func() (T, bool) {
		var zero T
		if i >= len(a.data) {
			return zero, false
		}
		v := a.data[i]
		i++
		return v, true
	}
}

// Equal reports whether a and other have the same length and
// pairwise-equal elements under eq.
func (a ArrayList[T]) Equal(other ArrayList[T], eq func(x, y T) bool) bool {
	if len(a.data) != len(other.data) {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Hash computes an order-dependent hash by folding elemHash over the
// sequence, matching spec's "order-dependent for lists" rule.
func (a ArrayList[T]) Hash(elemHash func(T) uint32) uint32 {
	h := uint32(17)
	for _, x := range a.data {
		h = h*31 + elemHash(x)
	}
	return h
}

// ToBuilder returns a Builder seeded with a copy of a's contents.
func (a ArrayList[T]) ToBuilder() *Builder[T] {
	return &Builder[T]{data: append([]T(nil), a.data...)}
}
