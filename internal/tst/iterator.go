// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

import "errors"

// ErrNoMoreWords is returned by Iterator.Next once the walk is exhausted.
var ErrNoMoreWords = errors.New("there are no more words in the tree")

type frameAction uint8

const (
	visitNode frameAction = iota
	emitWord
)

type frame struct {
	action frameAction
	idx    int
	depth  int
	// r is written at depth-1 of the path when the frame was reached through
	// a next link.
	r       rune
	viaNext bool
}

// Iterator walks the complete strings of a tree in order using an explicit
// stack, so neither long strings nor deep sibling chains grow the goroutine
// stack. An Iterator is invalidated by any insertion into its tree.
type Iterator[K comparable] struct {
	tree    *Tree[K]
	stack   []frame
	path    []rune
	pending string
	ready   bool
}

// Iterator returns a fresh iterator positioned before the first word.
func (t *Tree[K]) Iterator() *Iterator[K] {
	it := &Iterator[K]{tree: t}
	if head := t.nodes[rootIdx].next; head != nilIdx {
		it.stack = append(it.stack, frame{action: visitNode, idx: head})
	}
	return it
}

// HasNext reports whether Next will return another word.
func (it *Iterator[K]) HasNext() bool {
	if it == nil {
		return false
	}
	if !it.ready {
		it.advance()
	}
	return it.ready
}

// Next returns the next word or ErrNoMoreWords.
func (it *Iterator[K]) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoMoreWords
	}
	it.ready = false
	return it.pending, nil
}

// advance pops frames until a word is complete. Every frame only writes path
// positions at or beyond its own depth, so path[:depth] is still intact when
// a frame pushed earlier is popped.
func (it *Iterator[K]) advance() {
	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if top.action == emitWord {
			it.pending = string(it.path[:top.depth])
			it.ready = true
			return
		}
		if top.viaNext {
			it.path = append(it.path[:top.depth-1], top.r)
		}

		// Push in reverse so that lower pops first, then this node, then higher.
		n := &it.tree.nodes[top.idx]
		if n.higher != nilIdx {
			it.stack = append(it.stack, frame{action: visitNode, idx: n.higher, depth: top.depth})
		}
		if n.sym.kind == KindEnd {
			it.stack = append(it.stack, frame{action: emitWord, depth: top.depth})
		} else if n.next != nilIdx {
			it.stack = append(it.stack, frame{action: visitNode, idx: n.next, depth: top.depth + 1, r: n.sym.r, viaNext: true})
		}
		if n.lower != nilIdx {
			it.stack = append(it.stack, frame{action: visitNode, idx: n.lower, depth: top.depth})
		}
	}
}
