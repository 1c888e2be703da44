// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package hamt implements the bitmap-indexed trie node algebra shared
// by the hashmap and hashset packages. It is a direct generalization
// of the teacher codebase's generation-stamped HAMT (originally
// generated per concrete type by cheekybits/genny) to Go generics and
// the owner.ID ownership token.
package hamt

import (
	"math/bits"

	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// bitsPerLevel and maskLevel follow the teacher's bitsPerItemNode/
// maskItem: 5 bits of hash are consumed per trie level, giving a
// 32-way fan-out per node.
const bitsPerLevel = 5
const maskLevel = 1<<bitsPerLevel - 1

// maxShift is the shift at which a hash is fully consumed; nodes
// reached at this depth are collision buckets searched linearly,
// exactly the teacher's shift >= 32 overflow-node case.
const maxShift = 32

// Hasher computes a 32-bit hash for a key. Implementations should
// spread bits well across the full width since each trie level only
// consumes 5 bits at a time.
type Hasher[K comparable] func(K) uint32

// entry is one key/value pair stored directly in a node.
type entry[K comparable, V any] struct {
	key K
	val V
}

// node is one level of the trie. Like the teacher's nodeItem, a
// single struct plays both the "bitmap node" and "leaf" role from a
// textbook HAMT description: bmVal marks which of the 32 slots at
// this level hold a value directly, bmPtr marks which hold a child
// node, and the two dense slices vals/ptrs store them in bit order. A
// value slot and a child slot for the same bit never coexist, and
// nodes reached past maxShift grow vals by linear append instead of
// ever setting a bit, making them the hash-collision bucket.
type Node[K comparable, V any] struct {
	owner *owner.ID
	bmVal uint32
	bmPtr uint32
	vals  []entry[K, V]
	ptrs  []*Node[K, V]
}

func bit(hash uint32, shift int) uint32 {
	return 1 << ((hash >> shift) & maskLevel)
}

func index(bitmap, b uint32) int {
	return bits.OnesCount32(bitmap & (b - 1))
}

// clone returns a shallow copy of n stamped with own, with vals/ptrs
// given fresh backing arrays so subsequent in-place edits to the copy
// never alias n. Mirrors the teacher's nodeItem.dup.
func (n *Node[K, V]) clone(own *owner.ID) *Node[K, V] {
	c := &Node[K, V]{
		owner: own,
		bmVal: n.bmVal,
		bmPtr: n.bmPtr,
		vals:  append(n.vals[0:0:0], n.vals...),
		ptrs:  append(n.ptrs[0:0:0], n.ptrs...),
	}
	return c
}

// edit returns a node mutable in place by own: n itself if own already
// owns it, otherwise a fresh clone stamped with own. Generalizes the
// teacher's "if nd.generation != gen { nd = nd.dup() }" path-copy
// check to the owner.ID token.
func (n *Node[K, V]) edit(own *owner.ID) *Node[K, V] {
	if own != nil && own.Owns(n.owner) {
		return n
	}
	return n.clone(own)
}

// sameValue reports whether a and b are equal, for a V that is only
// any-constrained rather than comparable. Package hamt is generic over
// arbitrary value types (hashmap/hashset values need not be comparable),
// so the == operator isn't available at compile time; any(a) == any(b)
// recovers it at runtime but panics if V's dynamic type isn't itself
// comparable (e.g. a slice or map value), in which case two values are
// never considered the same and the normal clone-and-replace path runs.
func sameValue[V any](a, b V) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return any(a) == any(b)
}

func clearHighestOneBit(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return n &^ (1 << (31 - bits.LeadingZeros32(n)))
}
