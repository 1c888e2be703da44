// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package queue

import "github.com/tunnelvisionlabs/go-immutable/owner"

// Builder is a single-owner, transient mutable view over a queue.
// Builders are not safe for concurrent use; see package atomicx for
// the supported cross-thread mutation mechanism.
//
// Unlike list.Builder and hashmap/hashset.Builder, a queue.Builder
// does not need an owner-stamped node graph to get its speedup: each
// stack push/pop is already an O(1) persistent operation, so the builder simply re-seats q after every mutation.
// owner is retained for API symmetry with the other builders and so a
// future owner-aware stack representation could adopt the same shape
// without an external API change.
type Builder[T any] struct {
	owner *owner.ID
	q     Queue[T]
}

// NewBuilder returns a Builder for an initially empty queue.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{owner: owner.New()}
}

// Size returns the number of elements currently in the builder.
func (b *Builder[T]) Size() int {
	return b.q.size
}

// Enqueue appends x.
func (b *Builder[T]) Enqueue(x T) {
	b.q = b.q.Enqueue(x)
}

// Peek returns the front element. It returns an error wrapping
// errs.ErrEmptyContainer if the builder is empty.
func (b *Builder[T]) Peek() (T, error) {
	return b.q.Peek()
}

// Poll removes and returns the front element. It returns an error
// wrapping errs.ErrEmptyContainer if the builder is empty.
func (b *Builder[T]) Poll() (T, error) {
	rest, v, err := b.q.Poll()
	if err != nil {
		var zero T
		return zero, err
	}
	b.q = rest
	return v, nil
}

// ToSlice returns the builder's current contents in FIFO order.
func (b *Builder[T]) ToSlice() []T {
	return b.q.ToSlice()
}

// Iter returns a snapshot iterator over the builder's contents at the
// time Iter is called; later mutations of the builder do not affect
// an iterator already handed out (Open Question in spec.md §9,
// resolved as snapshot semantics).
func (b *Builder[T]) Iter() func() (T, bool) {
	return b.q.Iter()
}

// ToImmutable returns the builder's current contents as a Queue. The
// builder remains usable and independent of the returned snapshot: the
// underlying stack nodes are already immutable values, so no freezing
// pass is needed (contrast list.Builder.ToImmutable, which must walk
// and freeze owner-stamped AVL nodes).
func (b *Builder[T]) ToImmutable() Queue[T] {
	return b.q
}
