// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced binary search tree of numeric
// values
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of the sub-tree below it (a leaf has
// height 0 and an absent sub-tree height -1) and after every insert
// or delete the difference between the heights of the left and right
// sub-trees of any node is at most one.
//
// The value stored in a node is also its key, so the tree holds a set
// of unique values.  Insert rejects a value already present and
// Delete rejects a value that is absent; in both cases the tree is
// not modified.
//
// Detached nodes are kept on a per-tree free list and reused by later
// inserts, so a *Node obtained from Root is only valid until the next
// mutation of the tree.
package avl
