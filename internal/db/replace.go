// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/internal/tst"
	"github.com/uptrace/bun"
)

// SaveChanges stores persons (replacing earlier ones with the same key),
// groups (replacing earlier ones with the same name) and, when snap is not
// nil, the search tree in a single transaction. Either all of it is written
// or nothing is, so a stored person is never left without its tree entries.
func (s *BunStore) SaveChanges(ctx context.Context, persons []*model.Person, groups []model.GroupRecord, snap *tst.Snapshot[string]) error {
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveAllTx(ctx, tx, persons, groups); err != nil {
		return err
	}
	if snap != nil {
		if err := saveTreeTx(ctx, tx, *snap); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	dbLogf("db: saved %d persons, %d groups (tree: %t)", len(persons), len(groups), snap != nil)
	return nil
}

// ReplaceAll swaps the whole stored book for the given persons, groups and
// tree in a single transaction. Nothing changes if any write fails.
func (s *BunStore) ReplaceAll(ctx context.Context, persons []*model.Person, groups []model.GroupRecord, snap tst.Snapshot[string]) error {
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range dataTables {
		if _, err := ExecRaw(ctx, tx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if err := saveAllTx(ctx, tx, persons, groups); err != nil {
		return err
	}
	if err := saveTreeTx(ctx, tx, snap); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	dbLogf("db: replaced book with %d persons, %d groups, %d tree nodes", len(persons), len(groups), len(snap.Nodes))
	return nil
}

func saveAllTx(ctx context.Context, tx bun.Tx, persons []*model.Person, groups []model.GroupRecord) error {
	for _, p := range persons {
		if err := savePersonTx(ctx, tx, p); err != nil {
			return fmt.Errorf("failed to save person %q: %w", p.Key(), err)
		}
	}
	for _, g := range groups {
		if err := saveGroupTx(ctx, tx, g); err != nil {
			return fmt.Errorf("failed to save group %q: %w", g.Name, err)
		}
	}
	return nil
}
