// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package hamt

import (
	"fmt"
	"hash/maphash"
)

var defaultHashSeed = maphash.MakeSeed()

// DefaultHash is the "host's standard key hash/equality" fallback
// spec.md §4.2 calls for when a caller supplies no explicit Hasher. It
// special-cases the common comparable key kinds directly (strings and
// byte slices are fed straight into maphash) and falls back to hashing
// a key's fmt.Sprintf("%#v", key) text form for everything else — the
// same "hash the value's printed form when we don't know its kind"
// escape hatch rogpeppe/generic's ctrie.go reaches for in StringHash/
// BytesHash when its own hashFunc is unset. Keys whose equality is
// meant to be pointer/interface identity rather than printed content
// need an explicit Hasher instead.
func DefaultHash[K comparable](key K) uint32 {
	var h maphash.Hash
	h.SetSeed(defaultHashSeed)
	switch v := any(key).(type) {
	case string:
		h.WriteString(v)
	case []byte:
		h.Write(v)
	default:
		fmt.Fprintf(&h, "%#v", v)
	}
	sum := h.Sum64()
	return uint32(sum) ^ uint32(sum>>32)
}

// ResolveHash returns hash, or DefaultHash[K] if hash is nil. Every
// constructor in hashmap/hashset/immutable that accepts a Hasher routes
// it through here, making the Hasher argument optional per spec.md
// §4.2's "accepts an optional KeyEqualityComparator ... default uses
// the host's standard key hash/equality."
func ResolveHash[K comparable](hash Hasher[K]) Hasher[K] {
	if hash != nil {
		return hash
	}
	return DefaultHash[K]
}
