// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - true if the value is in the tree
func (tree *Tree[T]) Search(value T) bool {
	return nil != search(value, tree.root)
}

func search[T Element](value T, tree *Node[T]) *Node[T] {
	if nil == tree {
		return nil
	}

	switch compare(tree.value, value) {
	case +1: // tree.value > value
		return search(value, tree.left)
	case -1: // tree.value < value
		return search(value, tree.right)
	default:
		if isNaN(value) {
			return nil
		}
		return tree
	}
}
