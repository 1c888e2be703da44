// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package hamt

import (
	"math/rand"
	"testing"

	"github.com/tunnelvisionlabs/go-immutable/owner"
	"github.com/tunnelvisionlabs/go-immutable/util/assert"
)

func fnvHash(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func TestPutGetDelete(t *testing.T) {
	assert := assert.T(t)
	var root *Node[string, int]
	root, inserted := With[string, int](nil, root, fnvHash, "a", 1)
	assert.This(inserted).Is(true)
	root, inserted = With[string, int](nil, root, fnvHash, "b", 2)
	assert.This(inserted).Is(true)
	root, inserted = With[string, int](nil, root, fnvHash, "a", 11)
	assert.This(inserted).Is(false)

	v, ok := Get[string, int](root, fnvHash, "a")
	assert.This(ok).Is(true)
	assert.This(v).Is(11)
	v, ok = Get[string, int](root, fnvHash, "b")
	assert.This(ok).Is(true)
	assert.This(v).Is(2)
	_, ok = Get[string, int](root, fnvHash, "c")
	assert.False(ok)

	root, removed := Without[string, int](nil, root, fnvHash, "a")
	assert.This(removed).Is(true)
	_, ok = Get[string, int](root, fnvHash, "a")
	assert.False(ok)
	v, ok = Get[string, int](root, fnvHash, "b")
	assert.This(ok).Is(true)
	assert.This(v).Is(2)

	root, removed = Without[string, int](nil, root, fnvHash, "zzz")
	assert.False(removed)
}

// TestPathCopy is spec.md's scenario 2: mutating a hash map does not
// disturb an earlier snapshot built from the same root.
func TestPathCopy(t *testing.T) {
	assert := assert.T(t)
	var r0 *Node[string, int]
	for i, k := range []string{"x", "y", "z"} {
		r0, _ = With[string, int](nil, r0, fnvHash, k, i)
	}
	r1, _ := With[string, int](nil, r0, fnvHash, "x", 99)

	v, _ := Get[string, int](r0, fnvHash, "x")
	assert.This(v).Is(0)
	v, _ = Get[string, int](r1, fnvHash, "x")
	assert.This(v).Is(99)
	assert.This(Size(r0)).Is(3)
	assert.This(Size(r1)).Is(3)
}

func TestBuilderIdempotence(t *testing.T) {
	assert := assert.T(t)
	own := owner.New()
	var root *Node[int, int]
	for i := 0; i < 500; i++ {
		root, _ = With[int, int](own, root, identityHash, i, i*i)
	}
	Freeze[int, int](root, own)

	v, ok := Get[int, int](root, identityHash, 250)
	assert.This(ok).Is(true)
	assert.This(v).Is(250 * 250)
	assert.This(Size(root)).Is(500)
}

func identityHash(i int) uint32 { return uint32(i) }

func TestFuzzAgainstMapModel(t *testing.T) {
	assert := assert.T(t)
	model := map[int]int{}
	var root *Node[int, int]
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 5000; i++ {
		k := r.Intn(300)
		if r.Intn(4) == 0 {
			delete(model, k)
			root, _ = Without[int, int](nil, root, identityHash, k)
		} else {
			v := r.Int()
			model[k] = v
			root, _ = With[int, int](nil, root, identityHash, k, v)
		}
	}
	assert.This(Size(root)).Is(len(model))
	for k, v := range model {
		got, ok := Get[int, int](root, identityHash, k)
		assert.This(ok).Is(true)
		assert.This(got).Is(v)
	}
	ForEach(root, func(k, v int) {
		assert.This(model[k]).Is(v)
	})
}

func TestHashCollisionBucket(t *testing.T) {
	assert := assert.T(t)
	// A constant hash forces every key into the maxShift collision
	// bucket, exercising the teacher's linear-scan overflow-node path.
	constHash := func(int) uint32 { return 42 }
	var root *Node[int, string]
	for i := 0; i < 20; i++ {
		root, _ = With[int, string](nil, root, constHash, i, "v")
	}
	assert.This(Size(root)).Is(20)
	root, removed := Without[int, string](nil, root, constHash, 5)
	assert.This(removed).Is(true)
	assert.This(Size(root)).Is(19)
	_, ok := Get[int, string](root, constHash, 5)
	assert.False(ok)
	v, ok := Get[int, string](root, constHash, 6)
	assert.This(ok).Is(true)
	assert.This(v).Is("v")
}

// TestWithSameValueIsNoop is spec.md §8's "m.put(k, v).put(k, v)
// returns the same reference on the second call": repeating an insert
// with an identical value must not path-copy or allocate.
func TestWithSameValueIsNoop(t *testing.T) {
	assert := assert.T(t)
	var root *Node[int, int]
	for i := 0; i < 40; i++ {
		root, _ = With[int, int](nil, root, identityHash, i, i*i)
	}
	same, inserted := With[int, int](nil, root, identityHash, 17, 17*17)
	assert.False(inserted)
	assert.True(same == root)

	changed, inserted := With[int, int](nil, root, identityHash, 17, -1)
	assert.False(inserted)
	assert.True(changed != root)
	v, _ := Get[int, int](changed, identityHash, 17)
	assert.This(v).Is(-1)
	// The original root is untouched by the overwrite above.
	v, _ = Get[int, int](root, identityHash, 17)
	assert.This(v).Is(17 * 17)
}

// TestWithSameValueNoopOnOwnedNode checks the no-op short-circuit also
// holds when the node is owned by a builder (in-place mutation path),
// where a naive pointer-identity check on the recursive call's result
// cannot distinguish "nothing changed" from "mutated in place".
func TestWithSameValueNoopOnOwnedNode(t *testing.T) {
	assert := assert.T(t)
	own := owner.New()
	var root *Node[int, int]
	for i := 0; i < 40; i++ {
		root, _ = With[int, int](own, root, identityHash, i, i*i)
	}
	same, inserted := With[int, int](own, root, identityHash, 17, 17*17)
	assert.False(inserted)
	assert.True(same == root)

	changed, inserted := With[int, int](own, root, identityHash, 5, -5)
	assert.False(inserted)
	v, _ := Get[int, int](changed, identityHash, 5)
	assert.This(v).Is(-5)
	v, _ = Get[int, int](changed, identityHash, 17)
	assert.This(v).Is(17 * 17)
}

func TestDefaultHash(t *testing.T) {
	assert := assert.T(t)
	assert.This(DefaultHash("abc")).Is(DefaultHash("abc"))
	assert.False(DefaultHash("abc") == DefaultHash("abd"))
	assert.This(DefaultHash(42)).Is(DefaultHash(42))
}

func TestResolveHash(t *testing.T) {
	assert := assert.T(t)
	assert.True(ResolveHash[string](nil) != nil)
	resolved := ResolveHash[string](fnvHash)
	assert.This(resolved("x")).Is(fnvHash("x"))
}

func TestEqual(t *testing.T) {
	assert := assert.T(t)
	var a, b *Node[int, int]
	order1 := []int{5, 3, 8, 1, 9, 2}
	order2 := []int{1, 2, 3, 5, 8, 9}
	for _, k := range order1 {
		a, _ = With[int, int](nil, a, identityHash, k, k*10)
	}
	for _, k := range order2 {
		b, _ = With[int, int](nil, b, identityHash, k, k*10)
	}
	assert.This(Equal(a, b, identityHash, func(x, y int) bool { return x == y })).Is(true)

	b, _ = With[int, int](nil, b, identityHash, 1, 0)
	assert.False(Equal(a, b, identityHash, func(x, y int) bool { return x == y }))
}
