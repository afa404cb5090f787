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

// savePersonTx stores p under its composite key, replacing any earlier
// person with the same key together with all of its details.
func savePersonTx(ctx context.Context, tx bun.Tx, p *model.Person) error {
	key := p.Key()
	if _, err := ExecRaw(ctx, tx, "DELETE FROM person_details WHERE person_key = ?", key); err != nil {
		return err
	}
	if _, err := ExecRaw(ctx, tx, "DELETE FROM persons WHERE person_key = ?", key); err != nil {
		return err
	}

	row := &personRow{Key: key, FirstName: p.FirstName, LastName: p.LastName}
	if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
		return MapDBError(err)
	}

	var details []personDetailRow
	add := func(kind string, values []string) {
		for i, v := range values {
			details = append(details, personDetailRow{PersonKey: key, Kind: kind, Position: i, Value: v})
		}
	}
	add(detailAddress, p.Addresses)
	add(detailPhone, p.Phones)
	add(detailEmail, p.Emails)
	if len(details) == 0 {
		return nil
	}
	if _, err := tx.NewInsert().Model(&details).Exec(ctx); err != nil {
		return MapDBError(err)
	}
	return nil
}

// GetAllPersons loads every person in insertion order. Group membership is
// not filled in; it lives on the group records.
func (s *BunStore) GetAllPersons(ctx context.Context) ([]*model.Person, error) {
	var rows []personRow
	if err := s.bun.NewSelect().Model(&rows).OrderExpr("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}
	var details []personDetailRow
	if err := s.bun.NewSelect().Model(&details).OrderExpr("person_key ASC, kind ASC, position ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load person details: %w", err)
	}

	byKey := make(map[string]*model.Person, len(rows))
	out := make([]*model.Person, 0, len(rows))
	for _, r := range rows {
		p := &model.Person{FirstName: r.FirstName, LastName: r.LastName}
		byKey[r.Key] = p
		out = append(out, p)
	}
	for _, d := range details {
		p, ok := byKey[d.PersonKey]
		if !ok {
			dbLogf("db: dropping orphaned %s detail for %q", d.Kind, d.PersonKey)
			continue
		}
		switch d.Kind {
		case detailAddress:
			p.Addresses = append(p.Addresses, d.Value)
		case detailPhone:
			p.Phones = append(p.Phones, d.Value)
		case detailEmail:
			p.Emails = append(p.Emails, d.Value)
		}
	}
	return out, nil
}
