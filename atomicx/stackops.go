// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package atomicx

import "github.com/tunnelvisionlabs/go-immutable/stack"

// Push atomically pushes x onto the stack held by c, retrying the CAS
// on contention.
func Push[T any](c *Cell[stack.Stack[T]], x T) {
	for {
		s, ok := c.Load()
		if !ok {
			if InterlockedInitialize(c, stack.Empty[T]().Push(x)) == nil {
				return
			}
			continue
		}
		next := s.Push(x)
		if c.CompareAndSet(s, next, stack.Stack[T].SameRoot) {
			return
		}
	}
}

// TryPop atomically pops the top element off the stack held by c.
// ok is false if the stack was empty.
func TryPop[T any](c *Cell[stack.Stack[T]]) (_ T, ok bool) {
	for {
		s, loaded := c.Load()
		if !loaded {
			s = stack.Empty[T]()
		}
		next, v, popped := s.Pop()
		if !popped {
			var zero T
			return zero, false
		}
		if c.CompareAndSet(s, next, stack.Stack[T].SameRoot) {
			return v, true
		}
	}
}
