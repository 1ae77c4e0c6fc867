// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Insert - insert a new value into the tree
//
// errors:
//   fault.ErrDuplicateValue  value is already in the tree
//   fault.ErrInvalidValue    value is NaN
func (tree *Tree[T]) Insert(value T) error {
	if isNaN(value) {
		return fault.ErrInvalidValue
	}
	root, err := tree.insert(value, tree.root)
	if nil != err {
		return err
	}
	tree.root = root
	tree.count += 1
	return nil
}

// internal routine for insert
// returns the possibly new root of the sub-tree
//
// nothing is modified on the way down, so a duplicate leaves the
// tree untouched
func (tree *Tree[T]) insert(value T, p *Node[T]) (*Node[T], error) {
	if nil == p { // insert new node
		return tree.newNode(value), nil
	}

	switch compare(p.value, value) {
	case +1: // p.value > value
		left, err := tree.insert(value, p.left)
		if nil != err {
			return p, err
		}
		p.left = left

	case -1: // p.value < value
		right, err := tree.insert(value, p.right)
		if nil != err {
			return p, err
		}
		p.right = right

	default:
		return p, fault.ErrDuplicateValue
	}

	p.update()

	switch b := p.Balance(); {
	case b > 1: // left branch has grown too tall
		if value < p.left.value {
			// single LL rotation
			return rotateRight(p), nil
		}
		// double LR rotation
		p.left = rotateLeft(p.left)
		return rotateRight(p), nil

	case b < -1: // right branch has grown too tall
		if value > p.right.value {
			// single RR rotation
			return rotateLeft(p), nil
		}
		// double RL rotation
		p.right = rotateRight(p.right)
		return rotateLeft(p), nil
	}
	return p, nil
}
