// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package atomicx

import "github.com/tunnelvisionlabs/go-immutable/queue"

// Enqueue atomically appends x to the queue held by c, retrying the
// CAS on contention.
func Enqueue[T any](c *Cell[queue.Queue[T]], x T) {
	for {
		q, ok := c.Load()
		if !ok {
			if InterlockedInitialize(c, queue.Queue[T]{}.Enqueue(x)) == nil {
				return
			}
			continue
		}
		next := q.Enqueue(x)
		if c.CompareAndSet(q, next, queue.Queue[T].SameRoot) {
			return
		}
	}
}

// TryPoll atomically removes and returns the front element of the
// queue held by c. ok is false if the queue was empty.
func TryPoll[T any](c *Cell[queue.Queue[T]]) (_ T, ok bool) {
	for {
		q, loaded := c.Load()
		if !loaded {
			var zero queue.Queue[T]
			q = zero
		}
		next, v, err := q.Poll()
		if err != nil {
			var zero T
			return zero, false
		}
		if c.CompareAndSet(q, next, queue.Queue[T].SameRoot) {
			return v, true
		}
	}
}
