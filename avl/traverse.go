// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Order - the sequence in which Walk visits the nodes
type Order int

// the visiting orders
const (
	PreOrderWalk  Order = iota // node, left, right
	InOrderWalk   Order = iota // left, node, right
	PostOrderWalk Order = iota // left, right, node
)

// Walk - call visit for every value in the given order, stopping
// early if visit returns false
func (tree *Tree[T]) Walk(order Order, visit func(T) bool) {
	walk(tree.root, order, visit)
}

// internal: returns false if the walk was stopped
func walk[T Element](p *Node[T], order Order, visit func(T) bool) bool {
	if nil == p {
		return true
	}
	if PreOrderWalk == order && !visit(p.value) {
		return false
	}
	if !walk(p.left, order, visit) {
		return false
	}
	if InOrderWalk == order && !visit(p.value) {
		return false
	}
	if !walk(p.right, order, visit) {
		return false
	}
	if PostOrderWalk == order && !visit(p.value) {
		return false
	}
	return true
}

// PreOrder - all values, each node before its sub-trees
func (tree *Tree[T]) PreOrder() []T {
	return tree.collect(PreOrderWalk)
}

// InOrder - all values in ascending order
func (tree *Tree[T]) InOrder() []T {
	return tree.collect(InOrderWalk)
}

// PostOrder - all values, each node after its sub-trees
func (tree *Tree[T]) PostOrder() []T {
	return tree.collect(PostOrderWalk)
}

func (tree *Tree[T]) collect(order Order) []T {
	values := make([]T, 0, tree.count)
	tree.Walk(order, func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
