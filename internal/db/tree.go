// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/addressbook/internal/tst"
	"github.com/uptrace/bun"
)

// insertBatch bounds rows per INSERT. Six columns per node keeps this well
// under SQLite's bind-variable limit.
const insertBatch = 500

// SaveTree replaces the stored search tree with snap.
func (s *BunStore) SaveTree(ctx context.Context, snap tst.Snapshot[string]) error {
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveTreeTx(ctx, tx, snap); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	dbLogf("db: saved tree with %d nodes", len(snap.Nodes))
	return nil
}

func saveTreeTx(ctx context.Context, tx bun.Tx, snap tst.Snapshot[string]) error {
	if _, err := ExecRaw(ctx, tx, "DELETE FROM tst_node_keys"); err != nil {
		return err
	}
	if _, err := ExecRaw(ctx, tx, "DELETE FROM tst_nodes"); err != nil {
		return err
	}

	nodes := make([]treeNodeRow, 0, len(snap.Nodes))
	var keys []treeNodeKeyRow
	for _, rec := range snap.Nodes {
		nodes = append(nodes, treeNodeRow{
			Idx:    rec.Index,
			Kind:   int(rec.Kind),
			Ch:     rec.Rune,
			Lower:  rec.Lower,
			Higher: rec.Higher,
			Next:   rec.Next,
		})
		for _, k := range rec.Keys {
			keys = append(keys, treeNodeKeyRow{NodeIdx: rec.Index, RecordKey: k})
		}
	}
	if err := insertChunked(ctx, tx, nodes, insertBatch); err != nil {
		return fmt.Errorf("failed to save tree nodes: %w", err)
	}
	if err := insertChunked(ctx, tx, keys, insertBatch); err != nil {
		return fmt.Errorf("failed to save tree keys: %w", err)
	}
	return nil
}

// LoadTree reads the stored search tree. It returns ErrNoTree when nothing
// has been saved. The snapshot is not validated here; tst.Restore does that.
func (s *BunStore) LoadTree(ctx context.Context) (tst.Snapshot[string], error) {
	var nodes []treeNodeRow
	if err := s.bun.NewSelect().Model(&nodes).OrderExpr("idx ASC").Scan(ctx); err != nil {
		return tst.Snapshot[string]{}, fmt.Errorf("failed to load tree nodes: %w", err)
	}
	if len(nodes) == 0 {
		return tst.Snapshot[string]{}, ErrNoTree
	}
	var keys []treeNodeKeyRow
	if err := s.bun.NewSelect().Model(&keys).OrderExpr("node_idx ASC, record_key ASC").Scan(ctx); err != nil {
		return tst.Snapshot[string]{}, fmt.Errorf("failed to load tree keys: %w", err)
	}

	byNode := make(map[int][]string)
	for _, k := range keys {
		byNode[k.NodeIdx] = append(byNode[k.NodeIdx], k.RecordKey)
	}
	recs := make([]tst.NodeRecord[string], 0, len(nodes))
	for _, n := range nodes {
		recs = append(recs, tst.NodeRecord[string]{
			Index:  n.Idx,
			Kind:   tst.Kind(n.Kind),
			Rune:   n.Ch,
			Keys:   byNode[n.Idx],
			Lower:  n.Lower,
			Higher: n.Higher,
			Next:   n.Next,
		})
	}
	return tst.Snapshot[string]{Nodes: recs}, nil
}
