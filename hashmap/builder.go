// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package hashmap

import (
	"github.com/tunnelvisionlabs/go-immutable/hamt"
	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// Builder is a single-owner, transient mutable view over a hash map.
// Builders are not safe for concurrent use; see package atomicx for
// the supported cross-thread mutation mechanism.
type Builder[K comparable, V any] struct {
	owner *owner.ID
	root  *hamt.Node[K, V]
	hash  hamt.Hasher[K]
	size  int
}

// NewBuilder returns a Builder for an initially empty map using hash
// to hash keys. hash is optional; pass nil to use hamt.DefaultHash.
func NewBuilder[K comparable, V any](hash hamt.Hasher[K]) *Builder[K, V] {
	return &Builder[K, V]{owner: owner.New(), hash: hamt.ResolveHash(hash)}
}

// Size returns the number of entries currently in the builder.
func (b *Builder[K, V]) Size() int {
	return b.size
}

// Get returns the value bound to key, if any.
func (b *Builder[K, V]) Get(key K) (V, bool) {
	return hamt.Get(b.root, b.hash, key)
}

// Set binds key to val, in place.
func (b *Builder[K, V]) Set(key K, val V) {
	root, inserted := hamt.With(b.owner, b.root, b.hash, key, val)
	b.root = root
	if inserted {
		b.size++
	}
}

// Remove unbinds key, if present, in place. It reports whether key was
// found.
func (b *Builder[K, V]) Remove(key K) bool {
	root, removed := hamt.Without(b.owner, b.root, b.hash, key)
	b.root = root
	if removed {
		b.size--
	}
	return removed
}

// ForEach calls fn with every key/value pair currently in the builder.
func (b *Builder[K, V]) ForEach(fn func(K, V)) {
	hamt.ForEach(b.root, fn)
}

// Iter returns a snapshot iterator over the builder's contents at the
// time Iter is called; later mutations do not affect an iterator
// already handed out (Open Question in spec.md §9, resolved as
// snapshot semantics).
func (b *Builder[K, V]) Iter() func() (K, V, bool) {
	return hamt.Iter(b.root)
}

// ToImmutable freezes every node owned by this builder and returns the
// resulting Map. The builder remains usable; further mutation clones
// the now-frozen nodes it touches.
func (b *Builder[K, V]) ToImmutable() Map[K, V] {
	hamt.Freeze(b.root, b.owner)
	return Map[K, V]{root: b.root, hash: b.hash, size: b.size}
}
