// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package book is the address book: the record table, the groups and the
// prefix index, kept in sync with an optional store.
package book

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/toeirei/addressbook/internal/db"
	"github.com/toeirei/addressbook/internal/index"
	"github.com/toeirei/addressbook/internal/logging"
	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/internal/tst"
)

var (
	// ErrNotFound is returned when a named group or person does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a group name is already taken.
	ErrDuplicate = db.ErrDuplicate
)

// Store is the persistence the book needs. *db.BunStore satisfies it.
type Store interface {
	SaveChanges(ctx context.Context, persons []*model.Person, groups []model.GroupRecord, snap *tst.Snapshot[string]) error
	GetAllPersons(ctx context.Context) ([]*model.Person, error)
	SaveGroup(ctx context.Context, rec model.GroupRecord) error
	GetAllGroups(ctx context.Context) ([]model.GroupRecord, error)
	SaveTree(ctx context.Context, snap tst.Snapshot[string]) error
	LoadTree(ctx context.Context) (tst.Snapshot[string], error)
	ReplaceAll(ctx context.Context, persons []*model.Person, groups []model.GroupRecord, snap tst.Snapshot[string]) error
}

var _ Store = (*db.BunStore)(nil)

// Option configures a Book.
type Option func(*Book)

// WithCacheSize sets the size of the index query cache.
func WithCacheSize(n int) Option {
	return func(b *Book) { b.cacheSize = n }
}

// Book is safe for concurrent use. Every operation takes the same mutex, so
// the tree underneath never sees concurrent access.
type Book struct {
	mu        sync.Mutex
	c         *contents
	store     Store
	cacheSize int
}

// contents is everything a restore swaps out at once.
type contents struct {
	persons map[string]*model.Person
	order   []string
	groups  []*model.Group
	index   *index.Index
}

// New returns an empty book that is not backed by a store.
func New(opts ...Option) (*Book, error) {
	b := newBook(opts)
	c, _, err := buildContents(nil, nil, nil, b.cacheSize)
	if err != nil {
		return nil, err
	}
	b.c = c
	return b, nil
}

// Open loads a book from store. When no tree was saved, the saved tree fails
// validation or it lacks a term of some stored person, the index is rebuilt
// from the persons and written back.
func Open(ctx context.Context, store Store, opts ...Option) (*Book, error) {
	b := newBook(opts)
	b.store = store

	persons, err := store.GetAllPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}
	groups, err := store.GetAllGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	var tree *tst.Tree[string]
	snap, err := store.LoadTree(ctx)
	switch {
	case errors.Is(err, db.ErrNoTree):
	case err != nil:
		return nil, fmt.Errorf("failed to load search tree: %w", err)
	default:
		if tree, err = tst.Restore(snap); err != nil {
			logging.Warnf("stored search tree is unusable, rebuilding: %v", err)
			tree = nil
		} else if missing := uncovered(tree, persons); missing != "" {
			logging.Warnf("stored search tree lacks person %q, rebuilding", missing)
			tree = nil
		}
	}

	c, rebuilt, err := buildContents(persons, groups, tree, b.cacheSize)
	if err != nil {
		return nil, err
	}
	b.c = c
	if rebuilt && len(persons) > 0 {
		if err := store.SaveTree(ctx, c.index.Tree().Snapshot()); err != nil {
			return nil, fmt.Errorf("failed to save rebuilt search tree: %w", err)
		}
	}
	logging.Debugf("opened book with %d persons and %d groups", len(c.order), len(c.groups))
	return b, nil
}

func newBook(opts []Option) *Book {
	b := &Book{cacheSize: index.DefaultCacheSize}
	for _, o := range opts {
		o(b)
	}
	return b
}

// buildContents assembles a book's contents. A nil tree means the index is
// built from persons, which is reported through rebuilt.
func buildContents(persons []*model.Person, groups []model.GroupRecord, tree *tst.Tree[string], cacheSize int) (*contents, bool, error) {
	c := &contents{persons: make(map[string]*model.Person, len(persons))}

	idxOpts := []index.Option{index.WithCacheSize(cacheSize)}
	if tree != nil {
		idxOpts = append(idxOpts, index.WithTree(tree))
	}
	idx, err := index.New(index.ResolverFunc(c.resolve), idxOpts...)
	if err != nil {
		return nil, false, err
	}
	c.index = idx

	for _, p := range persons {
		p.Groups = nil
		c.put(p)
		if tree == nil {
			idx.IndexPerson(p)
		}
	}
	for _, rec := range groups {
		g := model.NewGroup(rec.Name)
		for _, key := range rec.Members {
			p, ok := c.persons[key]
			if !ok {
				logging.Warnf("group %q references unknown person %q", rec.Name, key)
				continue
			}
			g.AddPerson(p)
		}
		c.groups = append(c.groups, g)
	}
	return c, tree == nil, nil
}

// uncovered returns the key of the first person that some term of theirs does
// not lead to in tree, or "" when every person is reachable.
func uncovered(tree *tst.Tree[string], persons []*model.Person) string {
	for _, p := range persons {
		key := p.Key()
		for _, term := range index.Terms(p) {
			// The root never records keys.
			if term == "" {
				continue
			}
			if !tree.InTree(term) {
				return key
			}
			if keys, _ := tree.Get(term); !keys.Has(key) {
				return key
			}
		}
	}
	return ""
}

func (c *contents) resolve(key string) (*model.Person, bool) {
	p, ok := c.persons[key]
	return p, ok
}

// put stores p in the table. A person with the same composite key replaces
// the earlier one and inherits its group memberships.
func (c *contents) put(p *model.Person) {
	key := p.Key()
	old, ok := c.persons[key]
	if !ok {
		c.order = append(c.order, key)
		c.persons[key] = p
		return
	}
	c.persons[key] = p
	for _, g := range c.groups {
		if slices.Contains(g.Members(), old) {
			g.RemovePerson(old)
			g.AddPerson(p)
		}
	}
}

func (c *contents) group(name string) *model.Group {
	for _, g := range c.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// Add indexes p and stores it. With a store attached the person and the
// updated tree are persisted in one transaction; on a store error the
// in-memory book keeps the person and the store keeps neither.
func (b *Book) Add(ctx context.Context, p *model.Person) error {
	if p == nil {
		return errors.New("person is nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.c.put(p)
	b.c.index.IndexPerson(p)
	if b.store == nil {
		return nil
	}
	snap := b.c.index.Tree().Snapshot()
	if err := b.store.SaveChanges(ctx, []*model.Person{p}, nil, &snap); err != nil {
		return fmt.Errorf("failed to save person %q: %w", p.Key(), err)
	}
	return nil
}

// AddGroup appends g. Group names are unique.
func (b *Book) AddGroup(ctx context.Context, g *model.Group) error {
	if g == nil {
		return errors.New("group is nil")
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.c.group(g.Name) != nil {
		return fmt.Errorf("group %q: %w", g.Name, ErrDuplicate)
	}
	b.c.groups = append(b.c.groups, g)
	if b.store == nil {
		return nil
	}
	if err := b.store.SaveGroup(ctx, g.Record()); err != nil {
		return fmt.Errorf("failed to save group %q: %w", g.Name, err)
	}
	return nil
}

// Search returns the persons matching the prefix query, sorted by key.
func (b *Book) Search(query string) []*model.Person {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.index.Search(query)
}

// GetGroup returns the groups called name: none or exactly one.
func (b *Book) GetGroup(name string) []*model.Group {
	b.mu.Lock()
	defer b.mu.Unlock()
	if g := b.c.group(name); g != nil {
		return []*model.Group{g}
	}
	return []*model.Group{}
}

// Person looks a person up by composite key.
func (b *Book) Person(key string) (*model.Person, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.c.resolve(key)
}

// Persons returns all persons in insertion order.
func (b *Book) Persons() []*model.Person {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*model.Person, 0, len(b.c.order))
	for _, key := range b.c.order {
		out = append(out, b.c.persons[key])
	}
	return out
}

// Groups returns all groups in creation order.
func (b *Book) Groups() []*model.Group {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.c.groups)
}

// Len is the number of persons in the table.
func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.c.persons)
}

// Join adds the person with personKey to the named group.
func (b *Book) Join(ctx context.Context, groupName, personKey string) error {
	return b.membership(ctx, groupName, personKey, (*model.Group).AddPerson)
}

// Leave removes the person with personKey from the named group.
func (b *Book) Leave(ctx context.Context, groupName, personKey string) error {
	return b.membership(ctx, groupName, personKey, (*model.Group).RemovePerson)
}

func (b *Book) membership(ctx context.Context, groupName, personKey string, edit func(*model.Group, *model.Person)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	g := b.c.group(groupName)
	if g == nil {
		return fmt.Errorf("group %q: %w", groupName, ErrNotFound)
	}
	p, ok := b.c.persons[personKey]
	if !ok {
		return fmt.Errorf("person %q: %w", personKey, ErrNotFound)
	}
	edit(g, p)
	if b.store == nil {
		return nil
	}
	if err := b.store.SaveGroup(ctx, g.Record()); err != nil {
		return fmt.Errorf("failed to save group %q: %w", g.Name, err)
	}
	return nil
}
