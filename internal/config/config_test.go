// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	cfg "github.com/toeirei/addressbook/internal/config"
)

// isolate points the user config dir at a temp dir and runs from another,
// so no real config file can leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(t.TempDir())
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "sqlite" || got.Database.Dsn != "./addressbook.db" {
		t.Fatalf("unexpected database defaults: %+v", got.Database)
	}
	if got.Language != "en" || got.Log.Level != "info" || got.Index.CacheSize != 256 {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	yaml := "database:\n  type: postgres\n  dsn: postgresql://user@/db\nlanguage: de\nindex:\n  cache_size: 16\n"
	file := filepath.Join(tmp, "cfg.yaml")
	if err := os.WriteFile(file, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Type != "postgres" {
		t.Fatalf("expected postgres, got %q", got.Database.Type)
	}
	if got.Language != "de" {
		t.Fatalf("expected de, got %q", got.Language)
	}
	if got.Index.CacheSize != 16 {
		t.Fatalf("expected cache size 16, got %d", got.Index.CacheSize)
	}
	if got.Log.Level != "info" {
		t.Fatalf("expected default log level to survive, got %q", got.Log.Level)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "nope.yaml")
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadConfig_UserFileEnvAndFlags(t *testing.T) {
	tmp := isolate(t)
	dir := filepath.Join(tmp, "addressbook")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	yaml := "database:\n  dsn: /from/file.db\nlanguage: de\nlog:\n  level: warn\n"
	if err := os.WriteFile(filepath.Join(dir, "addressbook.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("ADDRESSBOOK_DATABASE_DSN", "/from/env.db")

	cmd := &cobra.Command{}
	cmd.Flags().String("language", "", "")
	if err := cmd.Flags().Set("language", "en"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Dsn != "/from/env.db" {
		t.Fatalf("expected env to beat file, got %q", got.Database.Dsn)
	}
	if got.Language != "en" {
		t.Fatalf("expected flag to beat file, got %q", got.Language)
	}
	if got.Log.Level != "warn" {
		t.Fatalf("expected file value, got %q", got.Log.Level)
	}
}

func TestWriteConfigFile_CreatesFile(t *testing.T) {
	isolate(t)

	c := cfg.Config{}
	c.Database.Type = "sqlite"
	c.Database.Dsn = "./addressbook.db"
	c.Language = "en"

	written, err := cfg.WriteConfigFile(&c, false)
	if err != nil {
		t.Fatalf("WriteConfigFile failed: %v", err)
	}
	path, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if written != path {
		t.Fatalf("expected %s, got %s", path, written)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected config file at %s, stat error: %v", path, err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}

	// What was written loads back.
	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Database.Dsn != "./addressbook.db" || got.Language != "en" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
