// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists the address book through Bun.
//
// One BunStore serves SQLite, PostgreSQL and MySQL. The schema is applied
// from embedded per-engine migrations when the store is opened. Persons and
// groups are stored relationally; the search tree is stored as its flat node
// graph (tst_nodes and tst_node_keys) so that reopening a book reproduces the
// exact same tree without re-indexing.
//
// Testing notes
//   - Prefer db.New("sqlite", ":memory:") in tests that need real DB
//     semantics and migrations.
package db
