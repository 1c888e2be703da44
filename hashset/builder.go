// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package hashset

import (
	"github.com/tunnelvisionlabs/go-immutable/hamt"
	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// Builder is a single-owner, transient mutable view over a hash set.
// Builders are not safe for concurrent use; see package atomicx for
// the supported cross-thread mutation mechanism.
type Builder[T comparable] struct {
	owner *owner.ID
	root  *hamt.Node[T, struct{}]
	hash  hamt.Hasher[T]
	size  int
}

// NewBuilder returns a Builder for an initially empty set using hash
// to hash members. hash is optional; pass nil to use hamt.DefaultHash.
func NewBuilder[T comparable](hash hamt.Hasher[T]) *Builder[T] {
	return &Builder[T]{owner: owner.New(), hash: hamt.ResolveHash(hash)}
}

// Size returns the number of members currently in the builder.
func (b *Builder[T]) Size() int {
	return b.size
}

// Contains reports whether x is currently a member.
func (b *Builder[T]) Contains(x T) bool {
	_, ok := hamt.Get(b.root, b.hash, x)
	return ok
}

// Add includes x, in place. It reports whether x was newly added.
func (b *Builder[T]) Add(x T) bool {
	root, inserted := hamt.With(b.owner, b.root, b.hash, x, struct{}{})
	b.root = root
	if inserted {
		b.size++
	}
	return inserted
}

// Remove excludes x, if present, in place. It reports whether x was
// found.
func (b *Builder[T]) Remove(x T) bool {
	root, removed := hamt.Without(b.owner, b.root, b.hash, x)
	b.root = root
	if removed {
		b.size--
	}
	return removed
}

// ForEach calls fn with every member currently in the builder.
func (b *Builder[T]) ForEach(fn func(T)) {
	hamt.ForEach(b.root, func(k T, _ struct{}) { fn(k) })
}

// Iter returns a snapshot iterator over the builder's contents at the
// time Iter is called; later mutations do not affect an iterator
// already handed out (Open Question in spec.md §9, resolved as
// snapshot semantics).
func (b *Builder[T]) Iter() func() (T, bool) {
	next := hamt.Iter(b.root)
	return func() (T, bool) {
		k, _, ok := next()
		return k, ok
	}
}

// ToImmutable freezes every node owned by this builder and returns the
// resulting Set. The builder remains usable; further mutation clones
// the now-frozen nodes it touches.
func (b *Builder[T]) ToImmutable() Set[T] {
	hamt.Freeze(b.root, b.owner)
	return Set[T]{root: b.root, hash: b.hash, size: b.size}
}
