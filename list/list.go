// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

// Package list implements a persistent indexed list backed by a
// self-balancing AVL tree keyed implicitly by in-order position.
package list

import (
	"github.com/tunnelvisionlabs/go-immutable/internal/errs"
	"github.com/tunnelvisionlabs/go-immutable/owner"
)

// List is an immutable, structurally-shared sequence of T.
// The zero value is the empty list.
type List[T any] struct {
	root *node[T]
}

// Of builds a List from its arguments, in order.
func Of[T any](xs ...T) List[T] {
	cp := append([]T(nil), xs...)
	return List[T]{root: buildBalanced[T](nil, cp)}
}

// FromRange builds a List from the half-open range [from, to) of src.
func FromRange[T any](src []T, from, to int) List[T] {
	if from < 0 || to < from || to > len(src) {
		panic(errs.ErrOutOfRange)
	}
	cp := append([]T(nil), src[from:to]...)
	return List[T]{root: buildBalanced[T](nil, cp)}
}

// Size returns the number of elements.
func (l List[T]) Size() int {
	return int(sizeOf(l.root))
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.root == nil
}

func get[T any](n *node[T], i int32) T {
	leftSize := sizeOf(n.left)
	switch {
	case i < leftSize:
		return get(n.left, i)
	case i == leftSize:
		return n.elem
	default:
		return get(n.right, i-leftSize-1)
	}
}

// Get returns the element at index i, or an error wrapping
// errs.ErrOutOfRange if i is not in [0, Size()).
func (l List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.Size() {
		return zero, errs.ErrOutOfRange
	}
	return get(l.root, int32(i)), nil
}

// MustGet is like Get but panics on an out-of-range index.
func (l List[T]) MustGet(i int) T {
	v, err := l.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

func setAt[T any](own *owner.ID, n *node[T], i int32, x T) *node[T] {
	leftSize := sizeOf(n.left)
	switch {
	case i < leftSize:
		return withLeft(own, n, setAt(own, n.left, i, x))
	case i == leftSize:
		return withElem(own, n, x)
	default:
		return withRight(own, n, setAt(own, n.right, i-leftSize-1, x))
	}
}

// Set returns a new List with the element at index i replaced by x.
func (l List[T]) Set(i int, x T) (List[T], error) {
	if i < 0 || i >= l.Size() {
		return l, errs.ErrOutOfRange
	}
	return List[T]{root: setAt[T](nil, l.root, int32(i), x)}, nil
}

func insertAt[T any](own *owner.ID, n *node[T], i int32, x T) *node[T] {
	if n == nil {
		return newLeaf(x, own)
	}
	leftSize := sizeOf(n.left)
	if i <= leftSize {
		n2 := withLeft(own, n, insertAt(own, n.left, i, x))
		return rebalance(own, n2)
	}
	n2 := withRight(own, n, insertAt(own, n.right, i-leftSize-1, x))
	return rebalance(own, n2)
}

// Insert returns a new List with x inserted at index i, shifting
// elements at or after i one position to the right. i == Size() is
// valid and appends.
func (l List[T]) Insert(i int, x T) (List[T], error) {
	if i < 0 || i > l.Size() {
		return l, errs.ErrOutOfRange
	}
	return List[T]{root: insertAt[T](nil, l.root, int32(i), x)}, nil
}

// Add appends x to the end of the list.
func (l List[T]) Add(x T) List[T] {
	out, _ := l.Insert(l.Size(), x)
	return out
}

func removeAt[T any](own *owner.ID, n *node[T], i int32) *node[T] {
	leftSize := sizeOf(n.left)
	switch {
	case i < leftSize:
		n2 := withLeft(own, n, removeAt(own, n.left, i))
		return rebalance(own, n2)
	case i > leftSize:
		n2 := withRight(own, n, removeAt(own, n.right, i-leftSize-1))
		return rebalance(own, n2)
	default:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		succ := leftmost(n.right)
		newRight := removeAt(own, n.right, 0)
		n2 := withElem(own, n, succ.elem)
		n2 = withRight(own, n2, newRight)
		return rebalance(own, n2)
	}
}

// Remove returns a new List with the element at index i removed.
func (l List[T]) Remove(i int) (List[T], error) {
	if i < 0 || i >= l.Size() {
		return l, errs.ErrOutOfRange
	}
	return List[T]{root: removeAt[T](nil, l.root, int32(i))}, nil
}

// RemoveLast returns a new List with its last element removed.
// It panics if the list is empty.
func (l List[T]) RemoveLast() List[T] {
	out, err := l.Remove(l.Size() - 1)
	if err != nil {
		panic(err)
	}
	return out
}

func (l List[T]) checkRange(from, to int) {
	if from < 0 || to < from || to > l.Size() {
		panic(errs.ErrOutOfRange)
	}
}

// SubList returns the half-open range [from, to) as a new List,
// sharing structure with l.
func (l List[T]) SubList(from, to int) List[T] {
	l.checkRange(from, to)
	_, r := splitAt[T](nil, l.root, int32(from))
	mid, _ := splitAt[T](nil, r, int32(to-from))
	return List[T]{root: mid}
}

// RemoveRange returns a new List with [from, to) deleted.
func (l List[T]) RemoveRange(from, to int) List[T] {
	l.checkRange(from, to)
	left, r := splitAt[T](nil, l.root, int32(from))
	_, right := splitAt[T](nil, r, int32(to-from))
	return List[T]{root: join[T](nil, left, right)}
}

// Reverse returns a new List with [from, to) reversed in place.
func (l List[T]) Reverse(from, to int) List[T] {
	l.checkRange(from, to)
	left, r := splitAt[T](nil, l.root, int32(from))
	mid, right := splitAt[T](nil, r, int32(to-from))
	xs := inorder(mid, make([]T, 0, to-from))
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
	return List[T]{root: join[T](nil, left, join[T](nil, buildBalanced[T](nil, xs), right))}
}

// Sort returns a new List with [from, to) sorted according to less.
func (l List[T]) Sort(from, to int, less func(a, b T) bool) List[T] {
	l.checkRange(from, to)
	left, r := splitAt[T](nil, l.root, int32(from))
	mid, right := splitAt[T](nil, r, int32(to-from))
	xs := inorder(mid, make([]T, 0, to-from))
	insertionSort(xs, less)
	return List[T]{root: join[T](nil, left, join[T](nil, buildBalanced[T](nil, xs), right))}
}

// insertionSort keeps Sort dependency-free and stable; callers needing
// the standard library's sort.Slice can do so on the ToSlice result.
func insertionSort[T any](xs []T, less func(a, b T) bool) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && less(xs[j], xs[j-1]); j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

// ToSlice returns the elements in order.
func (l List[T]) ToSlice() []T {
	return inorder(l.root, make([]T, 0, l.Size()))
}

// Iter returns a lazy, single-use iterator. Calling the returned
// function repeatedly yields successive elements; ok is false once
// exhausted. Matches the closure-iterator style used throughout the
// teacher codebase (e.g. db19/btree's tree.Iter).
func (l List[T]) Iter() func() (T, bool) {
	xs := l.ToSlice()
	i := 0
	return func() (T, bool) {
		var zero T
		if i >= len(xs) {
			return zero, false
		}
		v := xs[i]
		i++
		return v, true
	}
}

// Equal reports whether l and other have the same length and
// pairwise-equal elements under eq.
func (l List[T]) Equal(other List[T], eq func(a, b T) bool) bool {
	if l.Size() != other.Size() {
		return false
	}
	a, b := l.ToSlice(), other.ToSlice()
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Hash computes an order-dependent hash by folding elemHash over the
// sequence, matching spec's "order-dependent for lists" rule.
func (l List[T]) Hash(elemHash func(T) uint32) uint32 {
	h := uint32(17)
	for _, x := range l.ToSlice() {
		h = h*31 + elemHash(x)
	}
	return h
}

// SameRoot reports whether l and other share the same underlying AVL
// root — reference equality, as opposed to Equal's elementwise
// equality. This is the comparator atomicx's CAS helpers need.
func (l List[T]) SameRoot(other List[T]) bool {
	return l.root == other.root
}

// ToBuilder returns a Builder seeded with l's current contents.
func (l List[T]) ToBuilder() *Builder[T] {
	id := owner.New()
	return &Builder[T]{owner: id, root: l.root, size: l.Size()}
}
