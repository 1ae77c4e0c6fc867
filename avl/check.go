// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights, balance and the node count
// by walking the whole tree; returns the first violation found
func (tree *Tree[T]) Check() error {
	_, n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.InvalidError(fmt.Sprintf("count: %d  actual nodes: %d", tree.count, n))
	}
	return nil
}

// internal: consistency checker, every value in p must lie strictly
// between low and high when these are set
// returns the recomputed height and the number of nodes
func check[T Element](p *Node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return -1, 0, nil
	}
	if nil != low && p.value <= *low {
		return 0, 0, fault.InvalidError(fmt.Sprintf("order: node: %v  not above: %v", p.value, *low))
	}
	if nil != high && p.value >= *high {
		return 0, 0, fault.InvalidError(fmt.Sprintf("order: node: %v  not below: %v", p.value, *high))
	}

	lh, ln, err := check(p.left, low, &p.value)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := check(p.right, &p.value, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + rh
	if lh > rh {
		h = 1 + lh
	}
	if h != p.height {
		return 0, 0, fault.InvalidError(fmt.Sprintf("height: node: %v  cached: %d  actual: %d", p.value, p.height, h))
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fault.InvalidError(fmt.Sprintf("balance: node: %v  factor: %+d", p.value, b))
	}
	return h, 1 + ln + rn, nil
}
