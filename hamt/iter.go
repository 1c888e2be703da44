// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package hamt

// Pair is one key/value pair yielded by Iter.
type Pair[K comparable, V any] struct {
	Key K
	Val V
}

// Collect gathers every key/value pair reachable from n.
func Collect[K comparable, V any](n *Node[K, V]) []Pair[K, V] {
	var out []Pair[K, V]
	ForEach(n, func(k K, v V) {
		out = append(out, Pair[K, V]{k, v})
	})
	return out
}

// Iter returns a lazy, single-use iterator over a snapshot of n's
// entries, in the closure-iterator style used throughout the teacher
// codebase (e.g. db19/btree's tr.Iter(true)).
func Iter[K comparable, V any](n *Node[K, V]) func() (K, V, bool) {
	pairs := Collect(n)
	i := 0
	return func() (K, V, bool) {
		var zk K
		var zv V
		if i >= len(pairs) {
			return zk, zv, false
		}
		p := pairs[i]
		i++
		return p.Key, p.Val, true
	}
}

// Size counts the entries reachable from n in O(n). Callers that need
// this on every operation (hashmap.Map, hashset.Set) instead track a
// running count maintained from With/Without's inserted/removed
// results; Size exists for the rarer case where only a raw *node is at
// hand (snapshotting, tests).
func Size[K comparable, V any](n *Node[K, V]) int {
	count := 0
	ForEach(n, func(K, V) { count++ })
	return count
}

// Equal reports whether two tries hold the same entry set under eq,
// i.e. structural equality by key/value content rather than by node
// shape or identity — two tries built by inserting the same entries in
// different orders are Equal even though their internal trie shape
// generally differs.
func Equal[K comparable, V any](a, b *Node[K, V], hash Hasher[K], eq func(V, V) bool) bool {
	if Size(a) != Size(b) {
		return false
	}
	ok := true
	ForEach(a, func(k K, v V) {
		if !ok {
			return
		}
		bv, found := Get(b, hash, k)
		if !found || !eq(v, bv) {
			ok = false
		}
	})
	return ok
}
