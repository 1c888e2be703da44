// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package atomicx

import "github.com/tunnelvisionlabs/go-immutable/hashmap"

// The map specializations below all assume c already holds a
// hashmap.Map value — publish the first one with NewCellWithValue or
// InterlockedInitialize before calling these. An uninitialized cell's
// zero Map has no Hasher, so Get/Set on it would panic; that failure
// mode is the caller's to avoid, the same way the rest of this
// package leaves "call f on an uninitialized cell" to the caller.

// GetOrAdd returns the value bound to key in the map held by c. If key
// is absent, it computes v = factory(key), attempts to publish
// map.Set(key, v), and retries the lookup on CAS failure: another
// thread may have raced in a different value for key, in which case
// that winner is returned without calling factory again. factory may
// run and be discarded; callers must tolerate this (spec.md §4.5).
func GetOrAdd[K comparable, V any](c *Cell[hashmap.Map[K, V]], key K, factory func(K) V) V {
	for {
		m, _ := c.Load()
		if v, found := m.Get(key); found {
			return v
		}
		v := factory(key)
		next := m.Set(key, v)
		if c.CompareAndSet(m, next, hashmap.Map[K, V].SameRoot) {
			return v
		}
		// lost the race; loop to see what the winner published
	}
}

// AddOrUpdate loads the map held by c and applies updateFn(key,
// existing) if key is present, or addFn(key) if absent, retrying the
// whole read-compute-CAS cycle on contention.
func AddOrUpdate[K comparable, V any](c *Cell[hashmap.Map[K, V]], key K, addFn func(K) V, updateFn func(K, V) V) V {
	for {
		m, _ := c.Load()
		var v V
		if existing, found := m.Get(key); found {
			v = updateFn(key, existing)
		} else {
			v = addFn(key)
		}
		next := m.Set(key, v)
		if c.CompareAndSet(m, next, hashmap.Map[K, V].SameRoot) {
			return v
		}
	}
}

// TryAdd succeeds only if key is absent from the map held by c.
func TryAdd[K comparable, V any](c *Cell[hashmap.Map[K, V]], key K, val V) bool {
	for {
		m, _ := c.Load()
		if m.ContainsKey(key) {
			return false
		}
		next := m.Set(key, val)
		if c.CompareAndSet(m, next, hashmap.Map[K, V].SameRoot) {
			return true
		}
	}
}

// TryUpdate succeeds only if key is present in the map held by c and
// its current value equals expectedV under eq.
func TryUpdate[K comparable, V any](c *Cell[hashmap.Map[K, V]], key K, newV, expectedV V, eq func(a, b V) bool) bool {
	for {
		m, _ := c.Load()
		cur, found := m.Get(key)
		if !found || !eq(cur, expectedV) {
			return false
		}
		next := m.Set(key, newV)
		if c.CompareAndSet(m, next, hashmap.Map[K, V].SameRoot) {
			return true
		}
	}
}

// TryRemove succeeds only if key is present in the map held by c,
// returning the removed value.
func TryRemove[K comparable, V any](c *Cell[hashmap.Map[K, V]], key K) (_ V, removed bool) {
	for {
		m, _ := c.Load()
		v, found := m.Get(key)
		if !found {
			var zero V
			return zero, false
		}
		next := m.Remove(key)
		if c.CompareAndSet(m, next, hashmap.Map[K, V].SameRoot) {
			return v, true
		}
	}
}
