// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package hamt

import "github.com/tunnelvisionlabs/go-immutable/owner"

// Get looks up key in the trie rooted at n, consuming 5 bits of hash
// per level and falling through to a linear scan once the hash is
// exhausted (the collision-bucket case). Mirrors ItemHamt.get.
func Get[K comparable, V any](n *Node[K, V], hash Hasher[K], key K) (V, bool) {
	h := hash(key)
	for shift := 0; n != nil && shift < maxShift; shift += bitsPerLevel {
		b := bit(h, shift)
		iv := index(n.bmVal, b)
		if n.bmVal&b != 0 && n.vals[iv].key == key {
			return n.vals[iv].val, true
		}
		if n.bmPtr&b == 0 {
			var zero V
			return zero, false
		}
		ip := index(n.bmPtr, b)
		n = n.ptrs[ip]
	}
	if n != nil {
		for i := range n.vals {
			if n.vals[i].key == key {
				return n.vals[i].val, true
			}
		}
	}
	var zero V
	return zero, false
}

// With returns a trie with key bound to val, path-copying nodes not
// owned by own and mutating in place those that are. inserted reports
// whether this added a new key, as opposed to overwriting one already
// present (callers use this to maintain a running element count, since
// the trie itself does not track size). If key is already bound to a
// value identical to val (per sameValue), With returns n itself
// unchanged rather than path-copying — spec.md §4.2's "returns this
// when the value is referentially identical" and the put(k,v).put(k,v)
// same-reference property. Mirrors nodeItem.with.
func With[K comparable, V any](own *owner.ID, n *Node[K, V], hash Hasher[K], key K, val V) (_ *Node[K, V], inserted bool) {
	if n == nil {
		n = &Node[K, V]{owner: own}
	}
	result, inserted, _ := with(own, n, hash, hash(key), 0, key, val)
	return result, inserted
}

// with reports changed in addition to inserted: whether it actually
// had to clone or mutate anything, as opposed to finding key already
// bound to val and returning n untouched. changed cannot be recovered
// afterwards by comparing the returned pointer to the old one, because
// when own owns n, edit mutates n in place and returns the same
// pointer whether or not anything changed — so the no-op check must
// happen, and changed must be threaded explicitly, before n is edited.
func with[K comparable, V any](own *owner.ID, n *Node[K, V], hash Hasher[K], h uint32, shift int, key K, val V) (_ *Node[K, V], inserted, changed bool) {
	if shift >= maxShift {
		for i := range n.vals {
			if n.vals[i].key == key {
				if sameValue(n.vals[i].val, val) {
					return n, false, false
				}
				n = n.edit(own)
				n.vals[i].val = val
				return n, false, true
			}
		}
		n = n.edit(own)
		n.vals = append(n.vals, entry[K, V]{key, val})
		return n, true, true
	}
	b := bit(h, shift)
	iv := index(n.bmVal, b)
	ip := index(n.bmPtr, b)
	if n.bmPtr&b != 0 {
		// The slot already holds a child node (and so no direct value):
		// the key, if present, lives below it.
		child, inserted, childChanged := with(own, n.ptrs[ip], hash, h, shift+bitsPerLevel, key, val)
		if !childChanged {
			return n, inserted, false
		}
		n = n.edit(own)
		n.ptrs[ip] = child
		return n, inserted, true
	}
	if n.bmVal&b == 0 {
		n = n.edit(own)
		n.bmVal |= b
		n.vals = append(n.vals, entry[K, V]{})
		copy(n.vals[iv+1:], n.vals[iv:])
		n.vals[iv] = entry[K, V]{key, val}
		return n, true, true
	}
	if n.vals[iv].key == key {
		if sameValue(n.vals[iv].val, val) {
			return n, false, false
		}
		n = n.edit(own)
		n.vals[iv].val = val
		return n, false, true
	}
	// Collision at this slot between the existing direct value and the
	// new key: push both down into a fresh child node one level deeper.
	n = n.edit(own)
	child := &Node[K, V]{owner: own}
	existing := n.vals[iv]
	child, _, _ = with(own, child, hash, hash(existing.key), shift+bitsPerLevel, existing.key, existing.val)
	child, _, _ = with(own, child, hash, h, shift+bitsPerLevel, key, val)

	n.bmVal &^= b
	n.vals = append(n.vals[:iv], n.vals[iv+1:]...)

	n.ptrs = append(n.ptrs, nil)
	copy(n.ptrs[ip+1:], n.ptrs[ip:])
	n.ptrs[ip] = child
	n.bmPtr |= b
	return n, true, true
}

// Without removes key from the trie rooted at n and reports whether it
// was present. A child node left with no entries is unlinked from its
// parent; a child left with a single entry stays in place and is not
// folded back into the parent slot. Mirrors nodeItem.without.
func Without[K comparable, V any](own *owner.ID, n *Node[K, V], hash Hasher[K], key K) (_ *Node[K, V], removed bool) {
	if n == nil {
		return nil, false
	}
	return without(own, n, hash(key), 0, key)
}

func without[K comparable, V any](own *owner.ID, n *Node[K, V], h uint32, shift int, key K) (*Node[K, V], bool) {
	n = n.edit(own)
	if shift >= maxShift {
		for i := range n.vals {
			if n.vals[i].key == key {
				n.vals[i] = n.vals[len(n.vals)-1]
				n.vals = n.vals[:len(n.vals)-1]
				if len(n.vals) == 0 {
					return nil, true
				}
				return n, true
			}
		}
		return n, false
	}
	b := bit(h, shift)
	iv := index(n.bmVal, b)
	if n.bmVal&b != 0 {
		if n.vals[iv].key == key {
			if n.bmPtr&b == 0 {
				n.bmVal &^= b
				n.vals = append(n.vals[:iv], n.vals[iv+1:]...)
				if n.bmVal == 0 && n.bmPtr == 0 {
					return nil, true
				}
				return n, true
			}
			ip := index(n.bmPtr, b)
			child, pulled := pullUp(own, n.ptrs[ip])
			n.vals[iv] = pulled
			if child != nil {
				n.ptrs[ip] = child
			} else {
				n.bmPtr &^= b
				n.ptrs = append(n.ptrs[:ip], n.ptrs[ip+1:]...)
			}
			return n, true
		}
	}
	if n.bmPtr&b == 0 {
		return n, false
	}
	ip := index(n.bmPtr, b)
	child, ok := without(own, n.ptrs[ip], h, shift+bitsPerLevel, key)
	if child != nil {
		n.ptrs[ip] = child
	} else {
		n.bmPtr &^= b
		n.ptrs = append(n.ptrs[:ip], n.ptrs[ip+1:]...)
	}
	return n, ok
}

// pullUp removes and returns the entry with the highest bit position
// in n, for splicing into a parent slot whose child has been reduced
// to make room. Mirrors nodeItem.pullUp.
func pullUp[K comparable, V any](own *owner.ID, n *Node[K, V]) (*Node[K, V], entry[K, V]) {
	n = n.edit(own)
	if n.bmPtr != 0 {
		ip := len(n.ptrs) - 1
		child, e := pullUp(own, n.ptrs[ip])
		if child != nil {
			n.ptrs[ip] = child
		} else {
			n.ptrs = n.ptrs[:ip]
			n.bmPtr = clearHighestOneBit(n.bmPtr)
		}
		return n, e
	}
	iv := len(n.vals) - 1
	e := n.vals[iv]
	if iv == 0 {
		return nil, e
	}
	n.vals = n.vals[:iv]
	n.bmVal = clearHighestOneBit(n.bmVal)
	return n, e
}

// ForEach calls fn with every key/value pair reachable from n, in an
// unspecified order.
func ForEach[K comparable, V any](n *Node[K, V], fn func(K, V)) {
	if n == nil {
		return
	}
	for _, e := range n.vals {
		fn(e.key, e.val)
	}
	for _, p := range n.ptrs {
		ForEach(p, fn)
	}
}

// Freeze clears owner on every node reachable from n that is owned by
// own, with early exit into subtrees already frozen or owned by
// someone else. Mirrors list.freeze.
func Freeze[K comparable, V any](n *Node[K, V], own *owner.ID) {
	if n == nil || n.owner != own {
		return
	}
	n.owner = nil
	for _, p := range n.ptrs {
		Freeze(p, own)
	}
}
