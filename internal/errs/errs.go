// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package errs holds the closed set of error conditions reported by
// the persistent collections and their builders.
package errs

import "errors"

var (
	// ErrOutOfRange is returned when an index violates a container's
	// bounds. Sub-range operations, FromRange constructors and the
	// MustGet accessors panic with it instead.
	ErrOutOfRange = errors.New("index out of range")

	// ErrEmptyContainer is returned by Peek/Poll on an empty queue.
	// The stack package reports emptiness with an ok result instead.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrAlreadyInitialized is returned by InterlockedInitialize on a
	// cell that already holds a value.
	ErrAlreadyInitialized = errors.New("cell already initialized")

	// ErrInvalidOperation is returned by MoveToImmutable when capacity
	// does not equal size, and is the panic value of any builder method
	// called after MoveToImmutable has invalidated it.
	ErrInvalidOperation = errors.New("invalid operation for current state")

	// ErrNullElement is returned at ingestion points for container
	// kinds that choose to forbid a nil element or key.
	ErrNullElement = errors.New("nil element not permitted")
)
