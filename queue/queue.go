// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package queue implements a persistent FIFO queue as a pair of
// stacks, per spec.md §3.3: a forward stack to pop from and a
// backward stack to push onto, reversed into forward in amortized
// O(1) per element whenever forward runs dry.
package queue

import (
	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
	"github.com/tunnelvisionlabs/go-immutable/owner"
	"github.com/tunnelvisionlabs/go-immutable/stack"
)

// Queue is an immutable, structurally-shared FIFO sequence of T.
// The zero value is the empty queue.
type Queue[T any] struct {
	forward, backward stack.Stack[T]
	size              int
}

// restore re-establishes the invariant "forward empty implies backward
// empty" by reversing backward into forward when forward has run dry.
func restore[T any](forward, backward stack.Stack[T]) (stack.Stack[T], stack.Stack[T]) {
	if forward.IsEmpty() {
		return backward.Reverse(), stack.Empty[T]()
	}
	return forward, backward
}

// Size returns the number of elements.
func (q Queue[T]) Size() int {
	return q.size
}

// IsEmpty reports whether the queue has no elements.
func (q Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Enqueue returns a new Queue with x appended.
func (q Queue[T]) Enqueue(x T) Queue[T] {
	forward, backward := restore(q.forward, q.backward.Push(x))
	return Queue[T]{forward: forward, backward: backward, size: q.size + 1}
}

// Peek returns the front element. It returns an error wrapping
// errs.ErrEmptyContainer if the queue is empty.
func (q Queue[T]) Peek() (T, error) {
	v, ok := q.forward.Peek()
	if !ok {
		var zero T
		return zero, errs.ErrEmptyContainer
	}
	return v, nil
}

// Poll returns a new Queue with the front element removed, and that
// element. It returns an error wrapping errs.ErrEmptyContainer if the
// queue is empty, in which case the returned queue is q itself.
func (q Queue[T]) Poll() (Queue[T], T, error) {
	rest, v, ok := q.forward.Pop()
	if !ok {
		var zero T
		return q, zero, errs.ErrEmptyContainer
	}
	forward, backward := restore(rest, q.backward)
	return Queue[T]{forward: forward, backward: backward, size: q.size - 1}, v, nil
}

// ToSlice returns the elements in FIFO order.
func (q Queue[T]) ToSlice() []T {
	out := q.forward.ToSlice()
	out = append(out, q.backward.Reverse().ToSlice()...)
	return out
}

// Iter returns a lazy, single-use iterator in FIFO order.
func (q Queue[T]) Iter() func() (T, bool) {
	xs := q.ToSlice()
	i := 0
	return func() (T, bool) {
		var zero T
		if i >= len(xs) {
			return zero, false
		}
		v := xs[i]
		i++
		return v, true
	}
}

// Equal reports whether q and other have the same length and
// pairwise-equal elements, in FIFO order, under eq.
func (q Queue[T]) Equal(other Queue[T], eq func(a, b T) bool) bool {
	if q.size != other.size {
		return false
	}
	a, b := q.ToSlice(), other.ToSlice()
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SameRoot reports whether q and other reference the same underlying
// forward/backward stacks — reference equality, used as the
// comparator by atomicx's CAS helpers.
func (q Queue[T]) SameRoot(other Queue[T]) bool {
	return q.forward.SameRoot(other.forward) && q.backward.SameRoot(other.backward)
}

// ToBuilder returns a Builder seeded with q's current contents.
func (q Queue[T]) ToBuilder() *Builder[T] {
	return &Builder[T]{owner: owner.New(), q: q}
}
