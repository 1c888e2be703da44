// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package arraylist

import "github.com/tunnelvisionlabs/go-immutable/internal/errs"

// Builder is a single-owner, transient mutable view over an
// ArrayList. Builders are not safe for concurrent use; see package
// atomicx for the supported cross-thread mutation mechanism.
type Builder[T any] struct {
	data    []T
	invalid bool
}

// NewBuilder returns a Builder for an initially empty ArrayList,
// preallocated to the given capacity.
func NewBuilder[T any](capacity int) *Builder[T] {
	return &Builder[T]{data: make([]T, 0, capacity)}
}

func (b *Builder[T]) checkValid() {
	if b.invalid {
		panic(errs.ErrInvalidOperation)
	}
}

// Size returns the number of elements currently in the builder.
func (b *Builder[T]) Size() int {
	b.checkValid()
	return len(b.data)
}

// Get returns the element at index i.
func (b *Builder[T]) Get(i int) (T, error) {
	b.checkValid()
	var zero T
	if i < 0 || i >= len(b.data) {
		return zero, errs.ErrOutOfRange
	}
	return b.data[i], nil
}

// Set replaces the element at index i.
func (b *Builder[T]) Set(i int, x T) error {
	b.checkValid()
	if i < 0 || i >= len(b.data) {
		return errs.ErrOutOfRange
	}
	b.data[i] = x
	return nil
}

// Add appends x.
func (b *Builder[T]) Add(x T) {
	b.checkValid()
	b.data = append(b.data, x)
}

// ToSlice returns a copy of the builder's current contents.
func (b *Builder[T]) ToSlice() []T {
	b.checkValid()
	return append([]T(nil), b.data...)
}

// ToImmutable returns a copy of the builder's current contents as an
// ArrayList. Unlike MoveToImmutable, the builder remains usable.
func (b *Builder[T]) ToImmutable() ArrayList[T] {
	b.checkValid()
	return ArrayList[T]{data: append([]T(nil), b.data...)}
}

// MoveToImmutable hands the builder's backing buffer directly to the
// returned ArrayList without copying, and invalidates the builder:
// every subsequent Builder method panics wrapping
// errs.ErrInvalidOperation. It requires the builder's current capacity
// to equal its current size (cap(data) == len(data)); otherwise it
// returns errs.ErrInvalidOperation and the builder remains valid and
// unchanged.
func (b *Builder[T]) MoveToImmutable() (ArrayList[T], error) {
	b.checkValid()
	if cap(b.data) != len(b.data) {
		return ArrayList[T]{}, errs.ErrInvalidOperation
	}
	b.invalid = true
	return ArrayList[T]{data: b.data}, nil
}
