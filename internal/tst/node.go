// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

const (
	rootIdx = 0
	// nilIdx in a child slot means "no child". It equals rootIdx because the
	// root is never linked as anybody's child.
	nilIdx = 0
)

type node[K comparable] struct {
	sym  symbol
	keys KeySet[K]

	lower  int
	higher int
	next   int
}

func (t *Tree[K]) newNode(sym symbol, key *K) int {
	n := node[K]{sym: sym, keys: KeySet[K]{}}
	if key != nil {
		n.keys.Add(*key)
	}
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// findSibling walks the lower/higher chain starting at start looking for sym.
// It returns nilIdx when the chain holds no such node.
func (t *Tree[K]) findSibling(start int, sym symbol) int {
	cur := start
	for cur != nilIdx {
		n := &t.nodes[cur]
		if n.sym == sym {
			return cur
		}
		if sym.after(n.sym) {
			cur = n.higher
		} else {
			cur = n.lower
		}
	}
	return nilIdx
}

// insertSibling places child into the chain headed by head and returns the
// (possibly new) head along with the node now holding child's symbol. When a
// node with the same symbol is already linked, that node is returned and
// child stays detached.
func (t *Tree[K]) insertSibling(head, child int) (int, int) {
	if head == nilIdx {
		return child, child
	}
	sym := t.nodes[child].sym
	cur := head
	for {
		n := &t.nodes[cur]
		switch {
		case n.sym == sym:
			return head, cur
		case sym.after(n.sym):
			if n.higher == nilIdx {
				n.higher = child
				return head, child
			}
			cur = n.higher
		default:
			if n.lower == nilIdx {
				n.lower = child
				return head, child
			}
			cur = n.lower
		}
	}
}
