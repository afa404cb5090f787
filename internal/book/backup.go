// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package book

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/toeirei/addressbook/internal/logging"
	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/internal/tst"
)

// ErrUnsupportedBackup is returned for backups written by a newer schema.
var ErrUnsupportedBackup = errors.New("unsupported backup schema version")

// Export captures the whole book, including the exact search tree.
func (b *Book) Export() *model.BackupData {
	b.mu.Lock()
	defer b.mu.Unlock()

	data := &model.BackupData{
		SchemaVersion: model.BackupSchemaVersion,
		CreatedAt:     time.Now().UTC(),
		Persons:       make([]model.Person, 0, len(b.c.order)),
		Groups:        make([]model.GroupRecord, 0, len(b.c.groups)),
	}
	for _, key := range b.c.order {
		data.Persons = append(data.Persons, clonePerson(b.c.persons[key]))
	}
	for _, g := range b.c.groups {
		data.Groups = append(data.Groups, g.Record())
	}
	snap := b.c.index.Tree().Snapshot()
	data.Tree = &snap
	return data
}

// Import loads a backup. A full import replaces the book (and the store)
// with the backup's contents, using its tree when it is valid. A merge
// import only adds persons and groups whose keys or names are absent, and
// adds missing members to groups that already exist.
func (b *Book) Import(ctx context.Context, data *model.BackupData, full bool) error {
	if data == nil {
		return errors.New("backup is nil")
	}
	if data.SchemaVersion > model.BackupSchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedBackup, data.SchemaVersion)
	}
	persons := make([]*model.Person, 0, len(data.Persons))
	for i := range data.Persons {
		p := clonePerson(&data.Persons[i])
		persons = append(persons, &p)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if full {
		return b.replace(ctx, persons, data)
	}
	return b.merge(ctx, persons, data.Groups)
}

func (b *Book) replace(ctx context.Context, persons []*model.Person, data *model.BackupData) error {
	var tree *tst.Tree[string]
	if data.Tree != nil {
		t, err := tst.Restore(*data.Tree)
		if err != nil {
			logging.Warnf("backup search tree is unusable, rebuilding: %v", err)
		} else if missing := uncovered(t, persons); missing != "" {
			logging.Warnf("backup search tree lacks person %q, rebuilding", missing)
		} else {
			tree = t
		}
	}
	c, _, err := buildContents(persons, data.Groups, tree, b.cacheSize)
	if err != nil {
		return err
	}
	if b.store != nil {
		records := make([]model.GroupRecord, 0, len(c.groups))
		for _, g := range c.groups {
			records = append(records, g.Record())
		}
		if err := b.store.ReplaceAll(ctx, persons, records, c.index.Tree().Snapshot()); err != nil {
			return fmt.Errorf("failed to replace stored book: %w", err)
		}
	}
	b.c = c
	logging.Infof("restored %d persons and %d groups", len(c.order), len(c.groups))
	return nil
}

func (b *Book) merge(ctx context.Context, persons []*model.Person, groups []model.GroupRecord) error {
	var added []*model.Person
	for _, p := range persons {
		if _, ok := b.c.persons[p.Key()]; ok {
			continue
		}
		p.Groups = nil
		b.c.put(p)
		b.c.index.IndexPerson(p)
		added = append(added, p)
	}

	var changed []*model.Group
	for _, rec := range groups {
		g := b.c.group(rec.Name)
		isNew := g == nil
		if isNew {
			g = model.NewGroup(rec.Name)
			b.c.groups = append(b.c.groups, g)
		}
		dirty := isNew
		for _, key := range rec.Members {
			p, ok := b.c.persons[key]
			if !ok {
				logging.Warnf("group %q references unknown person %q", rec.Name, key)
				continue
			}
			if !slices.Contains(g.Members(), p) {
				g.AddPerson(p)
				dirty = true
			}
		}
		if dirty {
			changed = append(changed, g)
		}
	}
	logging.Infof("merged %d new persons and %d changed groups", len(added), len(changed))

	if b.store == nil {
		return nil
	}
	records := make([]model.GroupRecord, 0, len(changed))
	for _, g := range changed {
		records = append(records, g.Record())
	}
	var snap *tst.Snapshot[string]
	if len(added) > 0 {
		s := b.c.index.Tree().Snapshot()
		snap = &s
	}
	if err := b.store.SaveChanges(ctx, added, records, snap); err != nil {
		return fmt.Errorf("failed to save merged backup: %w", err)
	}
	return nil
}

func clonePerson(p *model.Person) model.Person {
	return model.Person{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Addresses: slices.Clone(p.Addresses),
		Phones:    slices.Clone(p.Phones),
		Emails:    slices.Clone(p.Emails),
		Groups:    slices.Clone(p.Groups),
	}
}
