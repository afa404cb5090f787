// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

import "fmt"

// Kind tells what a node's symbol holds.
type Kind uint8

const (
	// KindUnset is only ever carried by the root.
	KindUnset Kind = iota
	// KindEnd marks the end-of-string sentinel.
	KindEnd
	// KindRune is a real character.
	KindRune
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindEnd:
		return "end"
	case KindRune:
		return "rune"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// symbol is the tri-state character slot of a node. Keeping the sentinel as
// its own kind means no real character can ever collide with it.
type symbol struct {
	kind Kind
	r    rune
}

var endSymbol = symbol{kind: KindEnd}

func runeSymbol(r rune) symbol {
	return symbol{kind: KindRune, r: r}
}

// after reports whether s belongs on the higher side of other. The sentinel
// orders before every real character.
func (s symbol) after(other symbol) bool {
	switch {
	case other.kind == KindUnset:
		return true
	case s.kind == KindRune && other.kind == KindEnd:
		return true
	case s.kind == KindRune && other.kind == KindRune:
		return s.r > other.r
	}
	return false
}

func (s symbol) String() string {
	switch s.kind {
	case KindRune:
		return string(s.r)
	case KindEnd:
		return "<end>"
	}
	return "<root>"
}
