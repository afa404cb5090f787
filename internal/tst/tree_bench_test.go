// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tst

import (
	"testing"

	"github.com/openacid/testkeys"
)

var keyCache = map[string][]string{}

func getKeys(fn string) []string {
	if ks, ok := keyCache[fn]; ok {
		return ks
	}
	ks := testkeys.Load(fn)
	keyCache[fn] = ks
	return ks
}

func benchBigKeySet(b *testing.B, f func(b *testing.B, keys []string)) {
	for _, fn := range testkeys.AssetNames() {
		keys := getKeys(fn)
		if len(keys) < 1000 {
			continue
		}
		b.Run(fn, func(b *testing.B) {
			f(b, keys)
		})
	}
}

func BenchmarkTreeInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree := New[int]()
			for j, k := range keys {
				tree.Insert(k, j)
			}
		}
	})
}

func BenchmarkTreePrefixGet(b *testing.B) {
	prefixes := "abcdefghijklmnopqrstuvwxyz0123456789"

	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tree := New[int]()
		for j, k := range keys {
			tree.Insert(k, j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for _, p := range prefixes {
				tree.Get(string(p))
			}
		}
	})
}

func BenchmarkTreeWords(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, keys []string) {
		tree := New[int]()
		for j, k := range keys {
			tree.Insert(k, j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tree.Words()
		}
	})
}
