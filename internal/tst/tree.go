// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

// Tree is a ternary search tree mapping strings to sets of keys of type K.
// The zero value is not usable; create trees with New.
type Tree[K comparable] struct {
	nodes []node[K]
	size  int
}

// New returns an empty tree holding only its root.
func New[K comparable]() *Tree[K] {
	return &Tree[K]{nodes: []node[K]{{keys: KeySet[K]{}}}}
}

// Insert adds s to the tree and records key on every node along its path.
// Re-inserting the same pair leaves the tree unchanged.
func (t *Tree[K]) Insert(s string, key K) {
	t.insert(s, &key)
}

// InsertString adds s without associating any key with its path.
func (t *Tree[K]) InsertString(s string) {
	t.insert(s, nil)
}

func (t *Tree[K]) insert(s string, key *K) {
	cur := rootIdx
	for _, r := range s {
		sym := runeSymbol(r)
		child := t.findSibling(t.nodes[cur].next, sym)
		if child == nilIdx {
			child = t.newNode(sym, key)
			head, _ := t.insertSibling(t.nodes[cur].next, child)
			t.nodes[cur].next = head
		}
		cur = child
		if key != nil {
			t.nodes[cur].keys.Add(*key)
		}
	}
	if t.findSibling(t.nodes[cur].next, endSymbol) != nilIdx {
		return
	}
	end := t.newNode(endSymbol, nil)
	head, _ := t.insertSibling(t.nodes[cur].next, end)
	t.nodes[cur].next = head
	t.size++
}

// match follows s from the root and returns the node of its last rune, the
// root for the empty string, or nilIdx with false when some rune is missing.
func (t *Tree[K]) match(s string) (int, bool) {
	cur := rootIdx
	for _, r := range s {
		cur = t.findSibling(t.nodes[cur].next, runeSymbol(r))
		if cur == nilIdx {
			return nilIdx, false
		}
	}
	return cur, true
}

// InTree reports whether s was inserted as a complete string, as opposed to
// only being a prefix of something longer.
func (t *Tree[K]) InTree(s string) bool {
	cur, ok := t.match(s)
	if !ok {
		return false
	}
	return t.findSibling(t.nodes[cur].next, endSymbol) != nilIdx
}

// Get returns the keys recorded on the node reached by s. Those include keys
// of s itself and of every longer string having s as prefix. The second
// result is false when no indexed string starts with s. The returned set is a
// copy.
func (t *Tree[K]) Get(s string) (KeySet[K], bool) {
	cur, ok := t.match(s)
	if !ok {
		return nil, false
	}
	return t.nodes[cur].keys.Clone(), true
}

// Len returns the number of distinct complete strings in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// NodeCount returns the number of nodes including the root and sentinels.
func (t *Tree[K]) NodeCount() int {
	return len(t.nodes)
}

// Words returns every complete string in traversal order: lower siblings
// first, then the strings continuing through a node, then higher siblings.
// Since the sentinel sorts before real characters a string is listed before
// its extensions.
func (t *Tree[K]) Words() []string {
	var words []string
	it := t.Iterator()
	for it.HasNext() {
		w, _ := it.Next()
		words = append(words, w)
	}
	return words
}

// Traverse returns the characters of every complete string concatenated in
// traversal order, with no boundaries between strings. Use Words when the
// boundaries matter.
func (t *Tree[K]) Traverse() []rune {
	var out []rune
	it := t.Iterator()
	for it.HasNext() {
		w, _ := it.Next()
		out = append(out, []rune(w)...)
	}
	return out
}
