// Copyright Suneido Software Corp. All rights reserved.
// Governed by the MIT license found in the LICENSE file.

package list

import "github.com/tunnelvisionlabs/go-immutable/owner"

// node is an AVL tree node keyed implicitly by in-order rank. A nil
// *node represents the empty subtree: height 0, size 0.
type node[T any] struct {
	owner  *owner.ID
	elem   T
	left   *node[T]
	right  *node[T]
	height int8
	size   int32
}

func sizeOf[T any](n *node[T]) int32 {
	if n == nil {
		return 0
	}
	return n.size
}

func heightOf[T any](n *node[T]) int8 {
	if n == nil {
		return 0
	}
	return n.height
}

func maxInt8(a, b int8) int8 {
	if a > b {
		return a
	}
	return b
}

func newLeaf[T any](elem T, own *owner.ID) *node[T] {
	return &node[T]{owner: own, elem: elem, height: 1, size: 1}
}

// recompute refreshes size and height from the current children; the
// node's own identity (owner, elem) is left untouched.
func (n *node[T]) recompute() {
	n.size = 1 + sizeOf(n.left) + sizeOf(n.right)
	n.height = 1 + maxInt8(heightOf(n.left), heightOf(n.right))
}

func (n *node[T]) balanceFactor() int {
	return int(heightOf(n.left)) - int(heightOf(n.right))
}

// clone returns a shallow copy of n stamped with own. Used whenever a
// frozen node, or a node owned by a different builder, must be
// mutated.
func (n *node[T]) clone(own *owner.ID) *node[T] {
	c := *n
	c.owner = own
	return &c
}

// withLeft and withRight return a node whose left (respectively right)
// child is replaced by the given subtree, mutating n in place when own
// already owns it and cloning otherwise.
func withLeft[T any](own *owner.ID, n *node[T], left *node[T]) *node[T] {
	if own != nil && own.Owns(n.owner) {
		n.left = left
		n.recompute()
		return n
	}
	c := n.clone(own)
	c.left = left
	c.recompute()
	return c
}

func withRight[T any](own *owner.ID, n *node[T], right *node[T]) *node[T] {
	if own != nil && own.Owns(n.owner) {
		n.right = right
		n.recompute()
		return n
	}
	c := n.clone(own)
	c.right = right
	c.recompute()
	return c
}

func withElem[T any](own *owner.ID, n *node[T], elem T) *node[T] {
	if own != nil && own.Owns(n.owner) {
		n.elem = elem
		return n
	}
	c := n.clone(own)
	c.elem = elem
	return c
}

// rebalance restores the AVL invariant at n, whose children are
// already balanced but whose own balance factor may be +-2 after a
// structural change directly below it. Returns the (possibly new)
// subtree root.
func rebalance[T any](own *owner.ID, n *node[T]) *node[T] {
	n.recompute()
	switch bf := n.balanceFactor(); {
	case bf > 1:
		if n.left.balanceFactor() < 0 {
			n = withLeft(own, n, rotateLeft(own, n.left))
		}
		return rotateRight(own, n)
	case bf < -1:
		if n.right.balanceFactor() > 0 {
			n = withRight(own, n, rotateRight(own, n.right))
		}
		return rotateLeft(own, n)
	default:
		return n
	}
}

// rotateRight performs the classic AVL right rotation, pivoting on
// n.left. n and n.left are mutated in place when owned, cloned
// otherwise.
func rotateRight[T any](own *owner.ID, n *node[T]) *node[T] {
	p := n.left
	n = withLeft(own, n, p.right)
	p = withRight(own, p, n)
	return p
}

// rotateLeft performs the classic AVL left rotation, pivoting on
// n.right.
func rotateLeft[T any](own *owner.ID, n *node[T]) *node[T] {
	p := n.right
	n = withRight(own, n, p.left)
	p = withLeft(own, p, n)
	return p
}

// leftmost returns the left-most (smallest-rank) node of the subtree.
func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// buildBalanced builds a perfectly height-balanced subtree from xs in
// O(len(xs)), all nodes freshly stamped with own.
func buildBalanced[T any](own *owner.ID, xs []T) *node[T] {
	if len(xs) == 0 {
		return nil
	}
	mid := len(xs) / 2
	n := newLeaf(xs[mid], own)
	n.left = buildBalanced(own, xs[:mid])
	n.right = buildBalanced(own, xs[mid+1:])
	n.recompute()
	return n
}

// inorder appends the subtree's elements, in order, to dst.
func inorder[T any](n *node[T], dst []T) []T {
	if n == nil {
		return dst
	}
	dst = inorder(n.left, dst)
	dst = append(dst, n.elem)
	dst = inorder(n.right, dst)
	return dst
}

// freeze clears owner on every node reachable from n that is owned by
// own, with an early exit into subtrees that are already frozen or
// owned by someone else.
func freeze[T any](n *node[T], own *owner.ID) {
	if n == nil || n.owner != own {
		return
	}
	n.owner = nil
	freeze(n.left, own)
	freeze(n.right, own)
}
