// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package hashmap implements a persistent hash map over the hamt
// bitmap-trie node algebra.
package hashmap

import (
	"github.com/tunnelvisionlabs/go-immutable/hamt"
	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// Map is an immutable, structurally-shared key/value mapping.
// The zero value is not directly usable since it has no Hasher;
// construct with New or via package immutable's factory functions.
type Map[K comparable, V any] struct {
	root *hamt.Node[K, V]
	hash hamt.Hasher[K]
	size int
}

// New returns an empty Map using hash to hash keys. hash is optional;
// pass nil to use hamt.DefaultHash (spec.md §4.2's "default uses the
// host's standard key hash/equality").
func New[K comparable, V any](hash hamt.Hasher[K]) Map[K, V] {
	return Map[K, V]{hash: hamt.ResolveHash(hash)}
}

// Size returns the number of entries.
func (m Map[K, V]) Size() int {
	return m.size
}

// IsEmpty reports whether the map has no entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Get returns the value bound to key, if any.
func (m Map[K, V]) Get(key K) (V, bool) {
	return hamt.Get(m.root, m.hash, key)
}

// MustGet is like Get but panics wrapping errs.ErrOutOfRange if key is
// absent.
func (m Map[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(errs.ErrOutOfRange)
	}
	return v
}

// ContainsKey reports whether key is bound in m.
func (m Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a new Map with key bound to val.
func (m Map[K, V]) Set(key K, val V) Map[K, V] {
	root, inserted := hamt.With(nil, m.root, m.hash, key, val)
	size := m.size
	if inserted {
		size++
	}
	return Map[K, V]{root: root, hash: m.hash, size: size}
}

// Remove returns a new Map with key unbound, if present.
func (m Map[K, V]) Remove(key K) Map[K, V] {
	root, removed := hamt.Without(nil, m.root, m.hash, key)
	size := m.size
	if removed {
		size--
	}
	return Map[K, V]{root: root, hash: m.hash, size: size}
}

// ForEach calls fn with every key/value pair, in an unspecified order.
func (m Map[K, V]) ForEach(fn func(K, V)) {
	hamt.ForEach(m.root, fn)
}

// Iter returns a lazy, single-use snapshot iterator.
func (m Map[K, V]) Iter() func() (K, V, bool) {
	return hamt.Iter(m.root)
}

// Equal reports whether m and other hold the same key set with
// pairwise-equal values under eq — entry-set equality, not trie-shape
// equality (spec Open Question resolution).
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	return hamt.Equal(m.root, other.root, m.hash, eq)
}

// Hash computes an order-independent hash by XOR-folding a per-entry
// hash, matching spec's "order-independent for maps/sets" rule.
func (m Map[K, V]) Hash(valHash func(V) uint32) uint32 {
	var h uint32
	m.ForEach(func(k K, v V) {
		h ^= m.hash(k)*31 + valHash(v)
	})
	return h
}

// SameRoot reports whether m and other share the same underlying trie
// root — reference equality, as opposed to Equal's entry-set equality.
// This is the comparator atomicx's CAS helpers need: a concurrently
// raced map holding the same entries under a different root must
// still be treated as a distinct value for compare-and-swap purposes.
func (m Map[K, V]) SameRoot(other Map[K, V]) bool {
	return m.root == other.root
}

// ToBuilder returns a Builder seeded with m's current contents.
func (m Map[K, V]) ToBuilder() *Builder[K, V] {
	return &Builder[K, V]{owner: owner.New(), root: m.root, hash: m.hash, size: m.size}
}
