// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the lowest value, false if the tree is empty
func (tree *Tree[T]) First() (T, bool) {
	p := tree.root.first()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: lowest node in a sub-tree
func (tree *Node[T]) first() *Node[T] {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the highest value, false if the tree is empty
func (tree *Tree[T]) Last() (T, bool) {
	p := tree.root.last()
	if nil == p {
		var zero T
		return zero, false
	}
	return p.value, true
}

// internal: highest node in a sub-tree
func (tree *Node[T]) last() *Node[T] {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}
