// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package index decides which strings derived from a person go into the
// search tree and how queries are normalized before lookup.
package index

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/toeirei/addressbook/internal/logging"
	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/internal/tst"
)

// DefaultCacheSize is the number of normalized queries whose key lists are
// memoized between writes.
const DefaultCacheSize = 256

// Resolver maps a composite key back to its person.
type Resolver interface {
	Resolve(key string) (*model.Person, bool)
}

// ResolverFunc adapts a plain function to Resolver.
type ResolverFunc func(key string) (*model.Person, bool)

// Resolve calls f.
func (f ResolverFunc) Resolve(key string) (*model.Person, bool) {
	return f(key)
}

// Index is the prefix index over persons. It is not safe for concurrent use;
// the book serializes access to it.
type Index struct {
	tree     *tst.Tree[string]
	resolver Resolver
	cache    *lru.Cache[string, []string]
}

// Option customizes New.
type Option func(*options)

type options struct {
	tree      *tst.Tree[string]
	cacheSize int
}

// WithTree makes the index start from an existing tree, e.g. one restored
// from storage.
func WithTree(t *tst.Tree[string]) Option {
	return func(o *options) { o.tree = t }
}

// WithCacheSize overrides DefaultCacheSize. Sizes below one disable caching.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// New creates an index that resolves keys through r.
func New(r Resolver, opts ...Option) (*Index, error) {
	o := options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tree == nil {
		o.tree = tst.New[string]()
	}
	idx := &Index{tree: o.tree, resolver: r}
	if o.cacheSize > 0 {
		c, err := lru.New[string, []string](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create query cache: %w", err)
		}
		idx.cache = c
	}
	return idx, nil
}

// Normalize lower-cases s and strips "@" and spaces. Indexed strings and
// queries go through the same function so a full-name query such as
// "Test Person" meets the composite key "testperson".
func Normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("@", "", " ", "").Replace(s)
}

// Terms returns the normalized strings IndexPerson inserts for p: first name,
// last name, composite key and every email.
func Terms(p *model.Person) []string {
	terms := make([]string, 0, 3+len(p.Emails))
	terms = append(terms, Normalize(p.FirstName), Normalize(p.LastName), Normalize(p.Key()))
	for _, e := range p.Emails {
		terms = append(terms, Normalize(e))
	}
	return terms
}

// IndexPerson inserts every term of p with p's composite key.
func (idx *Index) IndexPerson(p *model.Person) {
	key := p.Key()
	for _, term := range Terms(p) {
		idx.tree.Insert(term, key)
	}
	if idx.cache != nil {
		idx.cache.Purge()
	}
	logging.Debugf("index: indexed %q (%d nodes)", key, idx.tree.NodeCount())
}

// Keys returns the composite keys reachable from the normalized query. The
// second result is false when nothing indexed starts with it.
func (idx *Index) Keys(query string) (tst.KeySet[string], bool) {
	return idx.tree.Get(Normalize(query))
}

// Search resolves every key reachable from query, ordered by key. It never
// returns nil.
func (idx *Index) Search(query string) []*model.Person {
	keys := idx.sortedKeys(Normalize(query))
	out := make([]*model.Person, 0, len(keys))
	for _, k := range keys {
		p, ok := idx.resolver.Resolve(k)
		if !ok {
			logging.Warnf("index: key %q has no record", k)
			continue
		}
		out = append(out, p)
	}
	return out
}

func (idx *Index) sortedKeys(norm string) []string {
	if idx.cache != nil {
		if keys, ok := idx.cache.Get(norm); ok {
			return keys
		}
	}
	var keys []string
	if set, ok := idx.tree.Get(norm); ok {
		keys = tst.Sorted(set)
	}
	if idx.cache != nil {
		idx.cache.Add(norm, keys)
	}
	return keys
}

// Tree exposes the underlying tree for traversal and snapshots. Callers must
// not insert into it directly or the query cache goes stale.
func (idx *Index) Tree() *tst.Tree[string] {
	return idx.tree
}
