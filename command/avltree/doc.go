// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Balanced tree program
//
// This program builds an AVL tree from the values listed in its
// configuration file and then runs the commands given on the command
// line against it, e.g.
//
//	avltree --config-file=avltree.conf insert 5 7 9 delete 7 inorder print
//
// Negative values must follow a "--" so they are not taken as options:
//
//	avltree --config-file=avltree.conf -- insert -5 -7
//
// Each command reports its result on standard output and every
// operation is written to the log.
package main
