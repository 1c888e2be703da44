// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package atomicx implements lock-free compare-and-swap update
// helpers over a cell holding an immutable container value, per
// spec.md §4.5. It is named atomicx, not atomic, to avoid shadowing
// the standard library package it wraps.
//
// atomicx.Cell[T] is built on sync/atomic's generic atomic.Pointer[T]
// (Go 1.19+) rather than a hand-rolled atomic wrapper. This
// supersedes the approach taken by corpus example rogpeppe/generic's
// ctrie.go, which built its own gatomic package on unsafe.Pointer
// because a generic CAS'able pointer did not yet exist in the
// standard library when that code was written; the concern is
// identical, the vehicle has simply moved into the toolchain.
package atomicx

import (
	"sync/atomic"

	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
)

// box is the one-field wrapper a Cell actually stores, so that a
// cell holding no box yet (nil) is unambiguous even when T's zero
// value is a legitimate stored value — the uninitialized sentinel of
// spec.md §4.5's interlockedInitialize.
type box[T any] struct {
	v T
}

// Cell is a lock-free, CAS-updatable holder of an immutable container
// value of type T. The zero value is an uninitialized cell.
type Cell[T any] struct {
	p atomic.Pointer[box[T]]
}

// NewCell returns an uninitialized Cell.
func NewCell[T any]() *Cell[T] {
	return &Cell[T]{}
}

// NewCellWithValue returns a Cell already initialized to v.
func NewCellWithValue[T any](v T) *Cell[T] {
	c := &Cell[T]{}
	c.p.Store(&box[T]{v: v})
	return c
}

// Load returns the cell's current value. ok is false if the cell is
// uninitialized.
func (c *Cell[T]) Load() (_ T, ok bool) {
	b := c.p.Load()
	if b == nil {
		var zero T
		return zero, false
	}
	return b.v, true
}

// Update applies f to the cell's current value in a CAS loop and
// returns the value that was installed. f may run more than once
// under contention and MUST be pure with respect to the cell: it is
// never retried after panicking, and a panic propagates immediately
// without attempting the CAS.
//
// Deviation from spec.md §4.5: the reference-equality short-circuit
// ("if f(v) is v, skip the CAS") is not implemented here, since it
// would require T to satisfy comparable, and the container types this
// cell is built for (hashmap.Map, hashset.Set) are themselves not
// comparable — both carry a func field (their Hasher). Skipping it
// only costs a harmless extra CAS of an unchanged value on the rare
// no-op update; it does not affect correctness.
func (c *Cell[T]) Update(f func(T) T) T {
	for {
		old := c.p.Load()
		var oldV T
		if old != nil {
			oldV = old.v
		}
		newV := f(oldV)
		nb := &box[T]{v: newV}
		if c.p.CompareAndSwap(old, nb) {
			return newV
		}
	}
}

// UpdateWithState is Update with a captured state value passed to
// every invocation of f. It wraps f and state in a closure and
// delegates to Update.
func UpdateWithState[T, S any](c *Cell[T], f func(T, S) T, state S) T {
	return c.Update(func(v T) T { return f(v, state) })
}

// GetAndSet atomically replaces the cell's value with v and returns
// the previous value. ok is false if the cell was uninitialized.
func (c *Cell[T]) GetAndSet(v T) (_ T, ok bool) {
	nb := &box[T]{v: v}
	old := c.p.Swap(nb)
	if old == nil {
		var zero T
		return zero, false
	}
	return old.v, true
}

// CompareAndSet attempts a single CAS from a value equal to expected
// (under eq) to desired, returning true on success. If the cell is
// uninitialized, expected is never matched; use InterlockedInitialize
// to publish the first value.
func (c *Cell[T]) CompareAndSet(expected, desired T, eq func(a, b T) bool) bool {
	old := c.p.Load()
	if old == nil || !eq(old.v, expected) {
		return false
	}
	return c.p.CompareAndSwap(old, &box[T]{v: desired})
}

// InterlockedInitialize attempts to publish v as the cell's first
// value via a single CAS from the uninitialized sentinel. It returns
// errs.ErrAlreadyInitialized if the cell already holds a value.
func InterlockedInitialize[T any](c *Cell[T], v T) error {
	if c.p.CompareAndSwap(nil, &box[T]{v: v}) {
		return nil
	}
	return errs.ErrAlreadyInitialized
}
