// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

import (
	"cmp"
	"maps"
	"slices"
)

// KeySet is an unordered set of record keys. Equality never depends on the
// order keys were added in.
type KeySet[K comparable] map[K]struct{}

// NewKeySet returns a set holding keys.
func NewKeySet[K comparable](keys ...K) KeySet[K] {
	s := make(KeySet[K], len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts k and reports whether it was absent before.
func (s KeySet[K]) Add(k K) bool {
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Has reports whether k is in the set.
func (s KeySet[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of keys.
func (s KeySet[K]) Len() int {
	return len(s)
}

// Equal reports whether both sets hold the same keys.
func (s KeySet[K]) Equal(other KeySet[K]) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// Clone returns an independent copy. A nil set clones to an empty set.
func (s KeySet[K]) Clone() KeySet[K] {
	out := make(KeySet[K], len(s))
	maps.Copy(out, s)
	return out
}

// Slice returns the keys in no particular order.
func (s KeySet[K]) Slice() []K {
	return slices.Collect(maps.Keys(s))
}

// Sorted returns the keys of s in ascending order.
func Sorted[K cmp.Ordered](s KeySet[K]) []K {
	return slices.Sorted(maps.Keys(s))
}
