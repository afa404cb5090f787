// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tst implements a ternary search tree that maps strings to sets of
// opaque keys.
//
// Every node on an inserted path records the insertion key, so a lookup of
// any prefix returns the keys of all strings below it. Termination points are
// marked with a per-path end sentinel stored among the next-children of the
// last character node; that is how Tree.InTree tells a complete string from
// a mere prefix.
//
// Nodes live in an arena and reference each other by index. Index 0 is the
// root, which also doubles as the "no child" marker since the root is never a
// child of anything. Sibling chains are unbalanced binary search trees, so
// strictly increasing insertion orders degrade them to linked lists.
//
// A Tree has no internal synchronization. Callers sharing one across
// goroutines must hold a single exclusive lock around every call.
package tst
