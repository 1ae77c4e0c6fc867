// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// recompute the cached height from the children
func (p *Node[T]) update() {
	lh := p.left.Height()
	rh := p.right.Height()
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// single right rotation, p.left becomes the root of the sub-tree
//
//	    p            p1
//	   / \          /  \
//	  p1  c   →    a    p
//	 / \               / \
//	a   b             b   c
func rotateRight[T Element](p *Node[T]) *Node[T] {
	p1 := p.left
	p.left = p1.right
	p1.right = p

	// p is now below p1
	p.update()
	p1.update()

	return p1
}

// single left rotation, mirror of rotateRight
func rotateLeft[T Element](p *Node[T]) *Node[T] {
	p1 := p.right
	p.right = p1.left
	p1.left = p

	p.update()
	p1.update()

	return p1
}

// restore the balance of p after one of its sub-trees has shrunk,
// the single or double rotation is chosen from the balance of the
// taller child
func rebalance[T Element](p *Node[T]) *Node[T] {
	p.update()

	switch b := p.Balance(); {
	case b > 1: // left heavy
		if p.left.Balance() < 0 {
			// double LR rotation
			p.left = rotateLeft(p.left)
		}
		return rotateRight(p)

	case b < -1: // right heavy
		if p.right.Balance() > 0 {
			// double RL rotation
			p.right = rotateRight(p.right)
		}
		return rotateLeft(p)
	}
	return p
}
