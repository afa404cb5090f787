// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package book

// Words lists every indexed term in tree order.
func (b *Book) Words() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.index.Tree().Words()
}

// Traverse returns the flattened traversal of the index tree.
func (b *Book) Traverse() []rune {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.index.Tree().Traverse()
}

// InTree reports whether s was indexed as a whole term. s is used as given,
// without normalization.
func (b *Book) InTree(s string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.index.Tree().InTree(s)
}

// NodeCount is the number of nodes in the index tree.
func (b *Book) NodeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.index.Tree().NodeCount()
}
