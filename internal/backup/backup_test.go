// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package backup

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/internal/tst"
)

func sample(t *testing.T) *model.BackupData {
	t.Helper()
	p, err := model.NewPerson("Test", "Person", "Test address", "+18005555555", "test@example.com")
	require.NoError(t, err)
	tree := tst.New[string]()
	tree.Insert("test", p.Key())
	tree.Insert("jürgen", p.Key())
	snap := tree.Snapshot()
	return &model.BackupData{
		SchemaVersion: model.BackupSchemaVersion,
		CreatedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Persons:       []model.Person{*p},
		Groups:        []model.GroupRecord{{Name: "Test group", Members: []string{p.Key()}}},
		Tree:          &snap,
	}
}

func TestWriteRead(t *testing.T) {
	in := sample(t)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	// zstd frame magic
	require.GreaterOrEqual(t, buf.Len(), 4)
	assert.Equal(t, []byte{0x28, 0xb5, 0x2f, 0xfd}, buf.Bytes()[:4])

	out, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.SchemaVersion, out.SchemaVersion)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.Equal(t, in.Persons, out.Persons)
	assert.Equal(t, in.Groups, out.Groups)

	require.NotNil(t, out.Tree)
	restored, err := tst.Restore(*out.Tree)
	require.NoError(t, err)
	assert.Equal(t, []string{"jürgen", "test"}, restored.Words())
}

func TestReadRejectsGarbage(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("not a backup")))
	assert.Error(t, err)
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName(time.Now()))
	in := sample(t)
	require.NoError(t, WriteFile(path, in))

	out, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, in.Persons, out.Persons)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.json.zst"))
	assert.Error(t, err)
}

func TestDefaultFileName(t *testing.T) {
	got := DefaultFileName(time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC))
	assert.Equal(t, "addressbook-backup-2026-10-15.json.zst", got)
}
