// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avltree/fault"
)

// Element - the types that can be stored in a tree
type Element interface {
	constraints.Integer | constraints.Float
}

// Tree - type to hold the root node of a tree
//
// the zero value is an empty tree ready to use
type Tree[T Element] struct {
	root  *Node[T]
	count int

	// allocator
	pool       *Node[T] // linked list of reclaimed nodes
	freeNodes  int      // number of nodes in the pool
	totalNodes int      // total nodes created
}

// New - create a tree holding a single initial value
func New[T Element](value T) (*Tree[T], error) {
	if isNaN(value) {
		return nil, fault.ErrInvalidValue
	}
	tree := &Tree[T]{}
	tree.root = tree.newNode(value)
	tree.count = 1
	return tree, nil
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// ChildrenAtDepth - returns all nodes at a specific depth below p
func (p *Node[T]) ChildrenAtDepth(depth uint) []*Node[T] {
	nodes := []*Node[T]{}
	if nil == p {
		return nodes
	}

	if depth == 0 {
		nodes = []*Node[T]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.ChildrenAtDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.ChildrenAtDepth(depth-1)...)
		}
	}
	return nodes
}

// Value - read the value from a node
func (p *Node[T]) Value() T {
	return p.value
}

// Height - cached height of the sub-tree rooted at this node, a nil
// node has height -1
func (p *Node[T]) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Left - the left sub-tree
func (p *Node[T]) Left() *Node[T] {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - the right sub-tree
func (p *Node[T]) Right() *Node[T] {
	if nil == p {
		return nil
	}
	return p.right
}

// Balance - height of left sub-tree minus height of right sub-tree
func (p *Node[T]) Balance() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// ordering of values, like a Compare method: +1 if a > b
func compare[T Element](a T, b T) int {
	switch {
	case a > b:
		return +1
	case a < b:
		return -1
	default:
		return 0
	}
}

// NaN is the only value not equal to itself and has no place in the
// ordering
func isNaN[T Element](value T) bool {
	return value != value
}
