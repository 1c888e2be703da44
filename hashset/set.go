// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package hashset implements a persistent hash set over the hamt
// bitmap-trie node algebra, storing members as keys with an elided
// value (struct{}).
package hashset

import (
	"github.com/tunnelvisionlabs/go-immutable/hamt"
	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// Set is an immutable, structurally-shared collection of distinct
// members. The zero value is not directly usable since it has no
// Hasher; construct with New or via package immutable's factory
// functions.
type Set[T comparable] struct {
	root *hamt.Node[T, struct{}]
	hash hamt.Hasher[T]
	size int
}

// New returns an empty Set using hash to hash members. hash is
// optional; pass nil to use hamt.DefaultHash (spec.md §4.2's "default
// uses the host's standard key hash/equality").
func New[T comparable](hash hamt.Hasher[T]) Set[T] {
	return Set[T]{hash: hamt.ResolveHash(hash)}
}

// Size returns the number of members.
func (s Set[T]) Size() int {
	return s.size
}

// IsEmpty reports whether the set has no members.
func (s Set[T]) IsEmpty() bool {
	return s.size == 0
}

// Contains reports whether x is a member.
func (s Set[T]) Contains(x T) bool {
	_, ok := hamt.Get(s.root, s.hash, x)
	return ok
}

// Add returns a new Set with x included.
func (s Set[T]) Add(x T) Set[T] {
	root, inserted := hamt.With(nil, s.root, s.hash, x, struct{}{})
	size := s.size
	if inserted {
		size++
	}
	return Set[T]{root: root, hash: s.hash, size: size}
}

// Remove returns a new Set with x excluded, if present.
func (s Set[T]) Remove(x T) Set[T] {
	root, removed := hamt.Without(nil, s.root, s.hash, x)
	size := s.size
	if removed {
		size--
	}
	return Set[T]{root: root, hash: s.hash, size: size}
}

// ForEach calls fn with every member, in an unspecified order.
func (s Set[T]) ForEach(fn func(T)) {
	hamt.ForEach(s.root, func(k T, _ struct{}) { fn(k) })
}

// Iter returns a lazy, single-use snapshot iterator.
func (s Set[T]) Iter() func() (T, bool) {
	next := hamt.Iter(s.root)
	return func() (T, bool) {
		k, _, ok := next()
		return k, ok
	}
}

// Equal reports whether s and other hold the same member set —
// entry-set equality, not trie-shape equality (spec Open Question
// resolution).
func (s Set[T]) Equal(other Set[T]) bool {
	return hamt.Equal(s.root, other.root, s.hash, func(struct{}, struct{}) bool { return true })
}

// Hash computes an order-independent hash by XOR-folding each
// member's hash, matching spec's "order-independent for maps/sets"
// rule.
func (s Set[T]) Hash() uint32 {
	var h uint32
	s.ForEach(func(x T) {
		h ^= s.hash(x)
	})
	return h
}

// SameRoot reports whether s and other share the same underlying trie
// root — reference equality, as opposed to Equal's entry-set
// equality. This is the comparator atomicx's CAS helpers need.
func (s Set[T]) SameRoot(other Set[T]) bool {
	return s.root == other.root
}

// ToBuilder returns a Builder seeded with s's current members.
func (s Set[T]) ToBuilder() *Builder[T] {
	return &Builder[T]{owner: owner.New(), root: s.root, hash: s.hash, size: s.size}
}
