// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"time"

	"github.com/toeirei/addressbook/internal/tst"
)

// BackupSchemaVersion is bumped whenever BackupData changes shape.
const BackupSchemaVersion = 1

// BackupData is a container for everything exported in a backup.
type BackupData struct {
	// SchemaVersion helps in handling migrations during restore.
	SchemaVersion int       `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`

	Persons []Person      `json:"persons"`
	Groups  []GroupRecord `json:"groups"`

	// Tree is the exact search index. When absent the index is rebuilt from
	// Persons on restore.
	Tree *tst.Snapshot[string] `json:"tree,omitempty"`
}
