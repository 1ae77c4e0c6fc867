// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Node - a node in the tree
type Node[T Element] struct {
	left   *Node[T] // left sub-tree, also the free list link
	right  *Node[T] // right sub-tree
	value  T        // the value, which is also the key
	height int      // leaf = 0
}

// allocate a new node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(value T) *Node[T] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			fault.Panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[T]{
			value:  value,
			height: 0,
		}
	}
	p := tree.pool
	tree.pool = p.left
	p.value = value
	p.height = 0
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(node *Node[T]) {
	var zero T

	node.left = tree.pool // use as free list pointer
	node.right = nil
	node.value = zero
	node.height = 0
	tree.freeNodes += 1

	tree.pool = node
}

// FreeNodes - number of detached nodes waiting for reuse
func (tree *Tree[T]) FreeNodes() int {
	return tree.freeNodes
}

// Clear - remove every value, all nodes are returned to the pool
func (tree *Tree[T]) Clear() {
	tree.clear(tree.root)
	tree.root = nil
	tree.count = 0
}

func (tree *Tree[T]) clear(p *Node[T]) {
	if nil == p {
		return
	}
	tree.clear(p.left)
	tree.clear(p.right)
	tree.freeNode(p)
}
