// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Delete - removes a specific value from the tree
//
// the value is located before anything is changed so that a missing
// value leaves every height and link as it was
//
// errors:
//   fault.ErrValueNotFound  value is not in the tree
func (tree *Tree[T]) Delete(value T) error {
	if !tree.Search(value) {
		return fault.ErrValueNotFound
	}
	tree.root = tree.delete(value, tree.root)
	tree.count -= 1
	return nil
}

// internal delete routine, value must be present in the sub-tree
// returns the possibly new root of the sub-tree
func (tree *Tree[T]) delete(value T, p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	switch compare(p.value, value) {
	case +1: // p.value > value
		p.left = tree.delete(value, p.left)

	case -1: // p.value < value
		p.right = tree.delete(value, p.right)

	default: // found: delete p
		if nil == p.left || nil == p.right {
			child := p.left
			if nil == child {
				child = p.right
			}
			tree.freeNode(p) // return deleted node to pool

			// the child sub-tree is already balanced
			return child
		}

		// two children: promote the in-order successor and remove
		// it from the right sub-tree, where it has no left child
		successor := p.right.first()
		p.value = successor.value
		p.right = tree.delete(successor.value, p.right)
	}

	return rebalance(p)
}
