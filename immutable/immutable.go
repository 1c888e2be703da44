// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package immutable is the root factory package: the external
// interface surface of spec.md §6, gathering Of/From/FromRange/New
// constructors for the list, map, set, queue and array-list kinds in
// one place so callers need not import list/hashmap/hashset/queue/
// arraylist directly just to build a value. There are no stack
// constructors here, and MapFrom takes hamt.Pair values.
package immutable

import (
	"github.com/tunnelvisionlabs/go-immutable/arraylist"
	"github.com/tunnelvisionlabs/go-immutable/hamt"
	"github.com/tunnelvisionlabs/go-immutable/hashmap"
	"github.com/tunnelvisionlabs/go-immutable/hashset"
	"github.com/tunnelvisionlabs/go-immutable/list"
	"github.com/tunnelvisionlabs/go-immutable/queue"
)

// ListOf builds a List from its arguments, in order.
func ListOf[T any](xs ...T) list.List[T] {
	return list.Of(xs...)
}

// ListFrom builds a List from a slice's full contents.
func ListFrom[T any](src []T) list.List[T] {
	return list.FromRange(src, 0, len(src))
}

// ListFromRange builds a List from the half-open range [from, to) of
// src.
func ListFromRange[T any](src []T, from, to int) list.List[T] {
	return list.FromRange(src, from, to)
}

// NewListBuilder returns a Builder for an initially empty List.
func NewListBuilder[T any]() *list.Builder[T] {
	return list.NewBuilder[T]()
}

// MapOf builds a Map from key/value pairs supplied as alternating
// arguments is error-prone in Go without variadic structs, so MapOf
// instead takes a ready-made map literal. hash is optional — pass nil
// to use hamt.DefaultHash, spec.md §4.2's "default uses the host's
// standard key hash/equality" — or a Hasher tailored to K.
func MapOf[K comparable, V any](hash hamt.Hasher[K], entries map[K]V) hashmap.Map[K, V] {
	m := hashmap.New[K, V](hash)
	for k, v := range entries {
		m = m.Set(k, v)
	}
	return m
}

// MapFrom builds a Map from a slice of key/value pairs, in order (a
// later duplicate key overwrites an earlier one). hash is optional;
// see MapOf.
func MapFrom[K comparable, V any](hash hamt.Hasher[K], pairs []hamt.Pair[K, V]) hashmap.Map[K, V] {
	m := hashmap.New[K, V](hash)
	for _, p := range pairs {
		m = m.Set(p.Key, p.Val)
	}
	return m
}

// NewMapBuilder returns a Builder for an initially empty Map. hash is
// optional; see MapOf.
func NewMapBuilder[K comparable, V any](hash hamt.Hasher[K]) *hashmap.Builder[K, V] {
	return hashmap.NewBuilder[K, V](hash)
}

// SetOf builds a Set from its arguments. hash is optional — pass nil
// to use hamt.DefaultHash, spec.md §4.2's "default uses the host's
// standard key hash/equality" — or a Hasher tailored to T.
func SetOf[T comparable](hash hamt.Hasher[T], xs ...T) hashset.Set[T] {
	s := hashset.New[T](hash)
	for _, x := range xs {
		s = s.Add(x)
	}
	return s
}

// SetFrom builds a Set from a slice's full contents. hash is optional;
// see SetOf.
func SetFrom[T comparable](hash hamt.Hasher[T], src []T) hashset.Set[T] {
	return SetOf(hash, src...)
}

// NewSetBuilder returns a Builder for an initially empty Set. hash is
// optional; see SetOf.
func NewSetBuilder[T comparable](hash hamt.Hasher[T]) *hashset.Builder[T] {
	return hashset.NewBuilder[T](hash)
}

// QueueOf builds a Queue from its arguments, enqueued in order.
func QueueOf[T any](xs ...T) queue.Queue[T] {
	var q queue.Queue[T]
	for _, x := range xs {
		q = q.Enqueue(x)
	}
	return q
}

// NewQueueBuilder returns a Builder for an initially empty Queue.
func NewQueueBuilder[T any]() *queue.Builder[T] {
	return queue.NewBuilder[T]()
}

// ArrayListOf builds an ArrayList from its arguments, in order.
func ArrayListOf[T any](xs ...T) arraylist.ArrayList[T] {
	return arraylist.Of(xs...)
}

// NewArrayListBuilder returns a Builder for an initially empty
// ArrayList, preallocated to the given capacity.
func NewArrayListBuilder[T any](capacity int) *arraylist.Builder[T] {
	return arraylist.NewBuilder[T](capacity)
}
