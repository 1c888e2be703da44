// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package list

import "github.com/tunnelvisionlabs/go-immutable/owner"

// joinPivot reassembles left, pivot and right into one balanced tree.
// left and right are each already balanced; their heights may differ
// by an arbitrary amount. This is the standard height-balanced (AVL)
// join used to splice sub-ranges back into the spine in O(log N).
func joinPivot[T any](own *owner.ID, left *node[T], pivot T, right *node[T]) *node[T] {
	switch {
	case heightOf(left) > heightOf(right)+1:
		newRight := joinPivot(own, left.right, pivot, right)
		n := withRight(own, left, newRight)
		return rebalance(own, n)
	case heightOf(right) > heightOf(left)+1:
		newLeft := joinPivot(own, left, pivot, right.left)
		n := withLeft(own, right, newLeft)
		return rebalance(own, n)
	default:
		n := newLeaf(pivot, own)
		n.left = left
		n.right = right
		n.recompute()
		return n
	}
}

// join concatenates two balanced trees in order, in O(log N).
func join[T any](own *owner.ID, left, right *node[T]) *node[T] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	l2, pivot := popRightmost(own, left)
	return joinPivot(own, l2, pivot, right)
}

// popRightmost removes and returns the right-most element of n,
// returning the remaining (rebalanced) subtree alongside it.
func popRightmost[T any](own *owner.ID, n *node[T]) (*node[T], T) {
	if n.right == nil {
		return n.left, n.elem
	}
	newRight, elem := popRightmost(own, n.right)
	n2 := withRight(own, n, newRight)
	return rebalance(own, n2), elem
}

// splitAt splits n into the elements of rank < i and the elements of
// rank >= i, in O(log N).
func splitAt[T any](own *owner.ID, n *node[T], i int32) (*node[T], *node[T]) {
	if n == nil {
		return nil, nil
	}
	leftSize := sizeOf(n.left)
	if i <= leftSize {
		l, r := splitAt(own, n.left, i)
		newRight := joinPivot(own, r, n.elem, n.right)
		return l, newRight
	}
	l, r := splitAt(own, n.right, i-leftSize-1)
	newLeft := joinPivot(own, n.left, n.elem, l)
	return newLeft, r
}
