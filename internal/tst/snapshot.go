// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrCorruptSnapshot is returned by Restore when the node records do not form
// a valid tree.
var ErrCorruptSnapshot = errors.New("corrupt tree snapshot")

// NodeRecord is the flat form of one node. Child links are arena indices;
// zero means no child.
type NodeRecord[K comparable] struct {
	Index  int  `json:"index"`
	Kind   Kind `json:"kind"`
	Rune   rune `json:"rune,omitempty"`
	Keys   []K  `json:"keys,omitempty"`
	Lower  int  `json:"lower,omitempty"`
	Higher int  `json:"higher,omitempty"`
	Next   int  `json:"next,omitempty"`
}

// Snapshot is the exact node graph of a tree, root first.
type Snapshot[K comparable] struct {
	Nodes []NodeRecord[K] `json:"nodes"`
}

// Snapshot captures the tree so that Restore rebuilds an identical one.
func (t *Tree[K]) Snapshot() Snapshot[K] {
	recs := make([]NodeRecord[K], len(t.nodes))
	for i := range t.nodes {
		n := &t.nodes[i]
		recs[i] = NodeRecord[K]{
			Index:  i,
			Kind:   n.sym.kind,
			Rune:   n.sym.r,
			Keys:   n.keys.Slice(),
			Lower:  n.lower,
			Higher: n.higher,
			Next:   n.next,
		}
	}
	return Snapshot[K]{Nodes: recs}
}

// Restore rebuilds a tree from a snapshot. Records may come in any order but
// their indices must be exactly 0..len-1.
func Restore[K comparable](snap Snapshot[K]) (*Tree[K], error) {
	if len(snap.Nodes) == 0 {
		return nil, fmt.Errorf("%w: no root node", ErrCorruptSnapshot)
	}
	t := &Tree[K]{nodes: make([]node[K], len(snap.Nodes))}
	seen := make([]bool, len(snap.Nodes))
	for _, rec := range snap.Nodes {
		if rec.Index < 0 || rec.Index >= len(snap.Nodes) {
			return nil, fmt.Errorf("%w: node index %d out of range", ErrCorruptSnapshot, rec.Index)
		}
		if seen[rec.Index] {
			return nil, fmt.Errorf("%w: duplicate node index %d", ErrCorruptSnapshot, rec.Index)
		}
		seen[rec.Index] = true
		if err := checkRecord(rec, len(snap.Nodes)); err != nil {
			return nil, err
		}
		sym := symbol{kind: rec.Kind}
		if rec.Kind == KindRune {
			sym.r = rec.Rune
		}
		t.nodes[rec.Index] = node[K]{
			sym:    sym,
			keys:   NewKeySet(rec.Keys...),
			lower:  rec.Lower,
			higher: rec.Higher,
			next:   rec.Next,
		}
		if rec.Kind == KindEnd {
			t.size++
		}
	}
	if err := t.checkShape(); err != nil {
		return nil, err
	}
	return t, nil
}

// bound limits the symbols allowed at one position of a sibling chain.
type bound struct {
	sym symbol
	set bool
}

// checkShape makes sure every node hangs off exactly one parent link and is
// reachable from the root, which rules out cycles and orphans. It also checks
// that every sibling chain is ordered the way findSibling walks it, which
// leaves room for at most one sentinel per chain.
func (t *Tree[K]) checkShape() error {
	type visit struct {
		idx    int
		lo, hi bound
	}
	parents := make([]int, len(t.nodes))
	stack := []visit{{idx: rootIdx}}
	reached := 0
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		n := &t.nodes[v.idx]
		if v.idx != rootIdx {
			if (v.lo.set && !n.sym.after(v.lo.sym)) || (v.hi.set && !v.hi.sym.after(n.sym)) {
				return fmt.Errorf("%w: node %d (%s) is out of order among its siblings", ErrCorruptSnapshot, v.idx, n.sym)
			}
		}
		here := bound{sym: n.sym, set: true}
		for _, child := range []visit{
			{idx: n.lower, lo: v.lo, hi: here},
			{idx: n.higher, lo: here, hi: v.hi},
			{idx: n.next},
		} {
			if child.idx == nilIdx {
				continue
			}
			parents[child.idx]++
			if parents[child.idx] > 1 {
				return fmt.Errorf("%w: node %d has more than one parent", ErrCorruptSnapshot, child.idx)
			}
			stack = append(stack, child)
		}
	}
	if reached != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d nodes unreachable from root", ErrCorruptSnapshot, len(t.nodes)-reached, len(t.nodes))
	}
	return nil
}

func checkRecord[K comparable](rec NodeRecord[K], count int) error {
	switch {
	case rec.Index == rootIdx && rec.Kind != KindUnset:
		return fmt.Errorf("%w: root has kind %s", ErrCorruptSnapshot, rec.Kind)
	case rec.Index == rootIdx && (rec.Lower != nilIdx || rec.Higher != nilIdx):
		return fmt.Errorf("%w: root has siblings", ErrCorruptSnapshot)
	case rec.Index != rootIdx && rec.Kind != KindEnd && rec.Kind != KindRune:
		return fmt.Errorf("%w: node %d has kind %s", ErrCorruptSnapshot, rec.Index, rec.Kind)
	case rec.Kind == KindRune && !utf8.ValidRune(rec.Rune):
		return fmt.Errorf("%w: node %d holds invalid rune %d", ErrCorruptSnapshot, rec.Index, rec.Rune)
	case rec.Kind == KindEnd && rec.Next != nilIdx:
		return fmt.Errorf("%w: sentinel %d has a next child", ErrCorruptSnapshot, rec.Index)
	}
	for _, link := range []int{rec.Lower, rec.Higher, rec.Next} {
		if link < 0 || link >= count {
			return fmt.Errorf("%w: node %d links to %d", ErrCorruptSnapshot, rec.Index, link)
		}
		if link != nilIdx && link == rec.Index {
			return fmt.Errorf("%w: node %d links to itself", ErrCorruptSnapshot, rec.Index)
		}
	}
	return nil
}
