// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package atomicx

import (
	"sync"
	"testing"

	"github.com/tunnelvisionlabs/go-immutable/hashmap"
	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
	"github.com/tunnelvisionlabs/go-immutable/queue"
	"github.com/tunnelvisionlabs/go-immutable/stack"
	"github.com/tunnelvisionlabs/go-immutable/util/assert"
)

func identityHash(i int) uint32 { return uint32(i) }

func TestCellLoadUninitialized(t *testing.T) {
	assert := assert.T(t)
	c := NewCell[int]()
	_, ok := c.Load()
	assert.False(ok)
}

func TestUpdate(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(10)
	got := c.Update(func(v int) int { return v + 5 })
	assert.This(got).Is(15)
	v, ok := c.Load()
	assert.True(ok)
	assert.This(v).Is(15)
}

func TestUpdateConcurrent(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(0)
	var wg sync.WaitGroup
	const goroutines, perGoroutine = 20, 50
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				c.Update(func(v int) int { return v + 1 })
			}
		}()
	}
	wg.Wait()
	v, _ := c.Load()
	assert.This(v).Is(goroutines * perGoroutine)
}

func TestGetAndSet(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue("a")
	old, ok := c.GetAndSet("b")
	assert.True(ok)
	assert.This(old).Is("a")
	v, _ := c.Load()
	assert.This(v).Is("b")

	c2 := NewCell[string]()
	_, ok = c2.GetAndSet("x")
	assert.False(ok)
}

func TestCompareAndSet(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(1)
	eq := func(a, b int) bool { return a == b }
	assert.False(c.CompareAndSet(99, 2, eq))
	assert.True(c.CompareAndSet(1, 2, eq))
	v, _ := c.Load()
	assert.This(v).Is(2)
}

func TestInterlockedInitialize(t *testing.T) {
	assert := assert.T(t)
	c := NewCell[int]()
	err := InterlockedInitialize(c, 7)
	assert.Nil(err)
	v, ok := c.Load()
	assert.True(ok)
	assert.This(v).Is(7)

	err = InterlockedInitialize(c, 8)
	assert.This(err).Is(errs.ErrAlreadyInitialized)
	v, _ = c.Load()
	assert.This(v).Is(7)
}

// TestGetOrAddRace is spec.md §8 scenario 5: both callers of a
// racing getOrAdd see the same winning value and the factory runs at
// most twice.
func TestGetOrAddRace(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(hashmap.New[string, *int](func(s string) uint32 { return strHashFor(s) }))

	var calls int
	var mu sync.Mutex
	factory := func(string) *int {
		mu.Lock()
		calls++
		mu.Unlock()
		v := 42
		return &v
	}

	var wg sync.WaitGroup
	results := make([]*int, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = GetOrAdd(c, "k", factory)
		}()
	}
	wg.Wait()

	assert.True(results[0] == results[1]) // same object reference, not just equal value
	assert.True(calls >= 1 && calls <= 2)
	m, _ := c.Load()
	assert.This(m.Size()).Is(1)
}

func strHashFor(s string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func TestMapSpecializations(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(hashmap.New[int, int](identityHash))

	assert.True(TryAdd(c, 1, 100))
	assert.False(TryAdd(c, 1, 200)) // already present

	assert.True(TryUpdate(c, 1, 150, 100, func(a, b int) bool { return a == b }))
	assert.False(TryUpdate(c, 1, 999, 100, func(a, b int) bool { return a == b })) // stale expected

	v, ok := TryRemove(c, 1)
	assert.True(ok)
	assert.This(v).Is(150)
	_, ok = TryRemove(c, 1)
	assert.False(ok)

	got := AddOrUpdate(c, 2, func(int) int { return 1 }, func(_, existing int) int { return existing + 1 })
	assert.This(got).Is(1)
	got = AddOrUpdate(c, 2, func(int) int { return 1 }, func(_, existing int) int { return existing + 1 })
	assert.This(got).Is(2)
}

func TestStackSpecializations(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(stack.Empty[int]())
	Push(c, 1)
	Push(c, 2)
	v, ok := TryPop(c)
	assert.True(ok)
	assert.This(v).Is(2)
	v, ok = TryPop(c)
	assert.True(ok)
	assert.This(v).Is(1)
	_, ok = TryPop(c)
	assert.False(ok)
}

func TestQueueSpecializations(t *testing.T) {
	assert := assert.T(t)
	c := NewCellWithValue(queue.Queue[int]{})
	Enqueue(c, 1)
	Enqueue(c, 2)
	v, ok := TryPoll(c)
	assert.True(ok)
	assert.This(v).Is(1)
	v, ok = TryPoll(c)
	assert.True(ok)
	assert.This(v).Is(2)
	_, ok = TryPoll(c)
	assert.False(ok)
}
