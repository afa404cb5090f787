// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/addressbook/internal/model"
	"github.com/uptrace/bun"
)

// SaveGroup stores a group and its member list, replacing any earlier record
// of the same name. Member order is preserved.
func (s *BunStore) SaveGroup(ctx context.Context, rec model.GroupRecord) error {
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveGroupTx(ctx, tx, rec); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	dbLogf("db: saved group %q with %d members", rec.Name, len(rec.Members))
	return nil
}

func saveGroupTx(ctx context.Context, tx bun.Tx, rec model.GroupRecord) error {
	if _, err := ExecRaw(ctx, tx, "DELETE FROM group_members WHERE group_name = ?", rec.Name); err != nil {
		return err
	}
	if _, err := ExecRaw(ctx, tx, "DELETE FROM contact_groups WHERE name = ?", rec.Name); err != nil {
		return err
	}
	if _, err := tx.NewInsert().Model(&groupRow{Name: rec.Name}).Exec(ctx); err != nil {
		return MapDBError(err)
	}
	if len(rec.Members) == 0 {
		return nil
	}
	members := make([]groupMemberRow, 0, len(rec.Members))
	for i, key := range rec.Members {
		members = append(members, groupMemberRow{GroupName: rec.Name, PersonKey: key, Position: i})
	}
	if _, err := tx.NewInsert().Model(&members).Exec(ctx); err != nil {
		return MapDBError(err)
	}
	return nil
}

// GetAllGroups loads every group in creation order with its members.
func (s *BunStore) GetAllGroups(ctx context.Context) ([]model.GroupRecord, error) {
	var rows []groupRow
	if err := s.bun.NewSelect().Model(&rows).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}
	var members []groupMemberRow
	if err := s.bun.NewSelect().Model(&members).OrderExpr("group_name ASC, position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load group members: %w", err)
	}

	byName := make(map[string][]string, len(rows))
	for _, m := range members {
		byName[m.GroupName] = append(byName[m.GroupName], m.PersonKey)
	}
	out := make([]model.GroupRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.GroupRecord{Name: r.Name, Members: byName[r.Name]})
	}
	return out, nil
}
