// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"github.com/uptrace/bun"
)

// BunStore is the Bun-backed store shared by all supported engines.
type BunStore struct {
	bun    *bun.DB
	dbType string
}

// BunDB exposes the underlying *bun.DB.
func (s *BunStore) BunDB() *bun.DB { return s.bun }

// Type returns the engine name the store was opened with.
func (s *BunStore) Type() string { return s.dbType }

// Close releases the connection pool.
func (s *BunStore) Close() error {
	return s.bun.Close()
}

// Row models. Table names avoid reserved words on all three engines.

type personRow struct {
	bun.BaseModel `bun:"table:persons"`

	ID        int64  `bun:"id,pk,autoincrement"`
	Key       string `bun:"person_key"`
	FirstName string `bun:"first_name"`
	LastName  string `bun:"last_name"`
}

// Detail kinds stored in person_details.kind.
const (
	detailAddress = "address"
	detailPhone   = "phone"
	detailEmail   = "email"
)

type personDetailRow struct {
	bun.BaseModel `bun:"table:person_details"`

	ID        int64  `bun:"id,pk,autoincrement"`
	PersonKey string `bun:"person_key"`
	Kind      string `bun:"kind"`
	Position  int    `bun:"position"`
	Value     string `bun:"value"`
}

type groupRow struct {
	bun.BaseModel `bun:"table:contact_groups"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Name string `bun:"name"`
}

type groupMemberRow struct {
	bun.BaseModel `bun:"table:group_members"`

	GroupName string `bun:"group_name,pk"`
	PersonKey string `bun:"person_key,pk"`
	Position  int    `bun:"position"`
}

type treeNodeRow struct {
	bun.BaseModel `bun:"table:tst_nodes"`

	Idx    int   `bun:"idx,pk"`
	Kind   int   `bun:"kind"`
	Ch     int32 `bun:"ch"`
	Lower  int   `bun:"lower_idx"`
	Higher int   `bun:"higher_idx"`
	Next   int   `bun:"next_idx"`
}

type treeNodeKeyRow struct {
	bun.BaseModel `bun:"table:tst_node_keys"`

	NodeIdx   int    `bun:"node_idx,pk"`
	RecordKey string `bun:"record_key,pk"`
}

// dataTables lists every table holding book data, children first.
var dataTables = []string{
	"tst_node_keys",
	"tst_nodes",
	"group_members",
	"contact_groups",
	"person_details",
	"persons",
}
