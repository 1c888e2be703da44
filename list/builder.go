// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package list

import (
	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// Builder is a single-owner, transient mutable view over an AVL list.
// Builders are not safe for concurrent use; see package atomicx for
// the supported cross-thread mutation mechanism.
type Builder[T any] struct {
	owner *owner.ID
	root  *node[T]
	size  int
}

// NewBuilder returns a Builder for an initially empty list.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{owner: owner.New()}
}

// Size returns the number of elements currently in the builder.
func (b *Builder[T]) Size() int {
	return b.size
}

// Get returns the element at index i.
func (b *Builder[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= b.size {
		return zero, errs.ErrOutOfRange
	}
	return get(b.root, int32(i)), nil
}

// Set replaces the element at index i.
func (b *Builder[T]) Set(i int, x T) error {
	if i < 0 || i >= b.size {
		return errs.ErrOutOfRange
	}
	b.root = setAt(b.owner, b.root, int32(i), x)
	return nil
}

// Insert inserts x at index i.
func (b *Builder[T]) Insert(i int, x T) error {
	if i < 0 || i > b.size {
		return errs.ErrOutOfRange
	}
	b.root = insertAt(b.owner, b.root, int32(i), x)
	b.size++
	return nil
}

// Add appends x.
func (b *Builder[T]) Add(x T) {
	_ = b.Insert(b.size, x)
}

// AddAll appends every element of xs, in order.
func (b *Builder[T]) AddAll(xs ...T) {
	for _, x := range xs {
		b.Add(x)
	}
}

// Remove deletes the element at index i.
func (b *Builder[T]) Remove(i int) error {
	if i < 0 || i >= b.size {
		return errs.ErrOutOfRange
	}
	b.root = removeAt(b.owner, b.root, int32(i))
	b.size--
	return nil
}

// ToSlice returns the builder's current contents in order.
func (b *Builder[T]) ToSlice() []T {
	return inorder(b.root, make([]T, 0, b.size))
}

// Iter returns a snapshot iterator over the builder's contents at the
// time Iter is called; later mutations of the builder do not affect
// an iterator already handed out (Open Question in spec.md §9,
// resolved as snapshot semantics).
func (b *Builder[T]) Iter() func() (T, bool) {
	return List[T]{root: b.root}.Iter()
}

// ToImmutable freezes every node owned by this builder and returns the
// resulting List. The builder remains usable; further mutation clones
// the now-frozen nodes it touches.
func (b *Builder[T]) ToImmutable() List[T] {
	freeze(b.root, b.owner)
	return List[T]{root: b.root}
}
