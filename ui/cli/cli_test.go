// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/addressbook/internal/i18n"
)

// env isolates config discovery and returns a database path.
func env(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Setenv("ADDRESSBOOK_LANGUAGE", "")
	t.Chdir(tmp)
	i18n.Init("en")
	return filepath.Join(tmp, "book.db")
}

// run executes one command line against dbPath and returns stdout.
func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--database.dsn", dbPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	out, err := run(t, dbPath, args...)
	if err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
	return out
}

func addTestPersons(t *testing.T, dbPath string) {
	t.Helper()
	mustRun(t, dbPath, "add", "--first", "Test", "--last", "Person", "--address", "Test address", "--phone", "+18005555555", "--email", "test@example.com")
	mustRun(t, dbPath, "add", "--first", "Test", "--last", "Second", "--address", "Test address", "--phone", "+18005555555", "--email", "noway@example.com")
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestAddAndSearch(t *testing.T) {
	dbPath := env(t)
	out := mustRun(t, dbPath, "add", "--first", "Test", "--last", "Person", "--address", "Test address", "--phone", "+18005555555", "--email", "test@example.com", "--email", "alt@example.com")
	if !strings.Contains(out, "Added Test Person (+18005555555) Test address test@example.com") {
		t.Fatalf("unexpected add output: %q", out)
	}
	mustRun(t, dbPath, "add", "--first", "Test", "--last", "Second", "--address", "Test address", "--phone", "+18005555555", "--email", "noway@example.com")

	if got := lines(mustRun(t, dbPath, "search", "test")); len(got) != 2 {
		t.Fatalf("expected 2 results for 'test', got %v", got)
	}
	for _, q := range [][]string{{"noway"}, {"noway@example.com"}, {"alt"}, {"Test", "Person"}} {
		if got := lines(mustRun(t, dbPath, append([]string{"search"}, q...)...)); len(got) != 1 {
			t.Fatalf("expected 1 result for %v, got %v", q, got)
		}
	}
	if out := mustRun(t, dbPath, "search", "nothing"); !strings.Contains(out, `No matches for "nothing"`) {
		t.Fatalf("unexpected empty search output: %q", out)
	}
}

func TestAddRejectsInvalidPhone(t *testing.T) {
	dbPath := env(t)
	_, err := run(t, dbPath, "add", "--first", "Test", "--last", "Person", "--phone", "+180055555", "--email", "test@example.com")
	if err == nil || err.Error() != "Phone +180055555 is not valid" {
		t.Fatalf("expected phone validation error, got %v", err)
	}
	if out := mustRun(t, dbPath, "search", "test"); !strings.Contains(out, "No matches") {
		t.Fatalf("invalid person must not be stored: %q", out)
	}
}

func TestAddRequiresFlags(t *testing.T) {
	dbPath := env(t)
	if _, err := run(t, dbPath, "add", "--first", "Test"); err == nil {
		t.Fatalf("expected missing required flags error")
	}
}

func TestGroups(t *testing.T) {
	dbPath := env(t)
	addTestPersons(t, dbPath)

	if out := mustRun(t, dbPath, "group", "list"); !strings.Contains(out, "No groups yet") {
		t.Fatalf("unexpected list output: %q", out)
	}
	mustRun(t, dbPath, "group", "add", "Test group")
	if _, err := run(t, dbPath, "group", "add", "Test group"); err == nil {
		t.Fatalf("expected duplicate group error")
	}
	if out := mustRun(t, dbPath, "group", "show", "Test group"); !strings.Contains(out, "Group Test group has no members") {
		t.Fatalf("unexpected show output: %q", out)
	}

	mustRun(t, dbPath, "group", "join", "Test group", "Test Person")
	mustRun(t, dbPath, "group", "join", "Test group", "testsecond")
	if out := mustRun(t, dbPath, "group", "list"); !strings.Contains(out, "Test group (2 members)") {
		t.Fatalf("unexpected list output: %q", out)
	}
	mustRun(t, dbPath, "group", "leave", "Test group", "testsecond")
	out := mustRun(t, dbPath, "group", "show", "Test group")
	if got := lines(out); len(got) != 1 || !strings.HasPrefix(got[0], "Test Person") {
		t.Fatalf("unexpected members: %q", out)
	}

	if _, err := run(t, dbPath, "group", "show", "missing"); err == nil {
		t.Fatalf("expected error for unknown group")
	}
	if _, err := run(t, dbPath, "group", "join", "Test group", "nobody"); err == nil {
		t.Fatalf("expected error for unknown person")
	}
}

func TestTreeCommands(t *testing.T) {
	dbPath := env(t)
	mustRun(t, dbPath, "add", "--first", "Test", "--last", "Person", "--address", "Test address", "--phone", "+18005555555", "--email", "test@example.com")

	if out := strings.TrimSpace(mustRun(t, dbPath, "tree", "dump")); out != "persontesttestexample.comtestperson" {
		t.Fatalf("unexpected dump: %q", out)
	}
	want := []string{"person", "test", "testexample.com", "testperson"}
	if got := lines(mustRun(t, dbPath, "tree", "words")); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected words: %v", got)
	}
	if out := strings.TrimSpace(mustRun(t, dbPath, "tree", "has", "Test")); out != "yes" {
		t.Fatalf("expected yes, got %q", out)
	}
	if out := strings.TrimSpace(mustRun(t, dbPath, "tree", "has", "tes")); out != "no" {
		t.Fatalf("expected no for a bare prefix, got %q", out)
	}
}

func TestBackupAndRestore(t *testing.T) {
	dbPath := env(t)
	addTestPersons(t, dbPath)
	mustRun(t, dbPath, "group", "add", "Test group")
	mustRun(t, dbPath, "group", "join", "Test group", "testperson")

	file := filepath.Join(filepath.Dir(dbPath), "backup.json.zst")
	if out := mustRun(t, dbPath, "backup", file); !strings.Contains(out, file) {
		t.Fatalf("unexpected backup output: %q", out)
	}

	other := filepath.Join(t.TempDir(), "other.db")
	mustRun(t, other, "add", "--first", "Other", "--last", "Person", "--address", "x", "--phone", "+18005555555", "--email", "other@example.com")

	// Merge keeps the existing person.
	mustRun(t, other, "restore", file)
	if got := lines(mustRun(t, other, "search", "person")); len(got) != 2 {
		t.Fatalf("expected Other Person and Test Person after merge, got %v", got)
	}

	// A full restore replaces everything.
	out := mustRun(t, other, "restore", "--full", file)
	if !strings.Contains(out, "2 persons, 1 groups") {
		t.Fatalf("unexpected restore output: %q", out)
	}
	if out := mustRun(t, other, "search", "other"); !strings.Contains(out, "No matches") {
		t.Fatalf("full restore must drop Other Person: %q", out)
	}
	if out := mustRun(t, other, "group", "list"); !strings.Contains(out, "Test group (1 members)") {
		t.Fatalf("unexpected groups after restore: %q", out)
	}
}

func TestBackupDefaultFileName(t *testing.T) {
	dbPath := env(t)
	addTestPersons(t, dbPath)
	mustRun(t, dbPath, "backup")
	matches, err := filepath.Glob(filepath.Join(filepath.Dir(dbPath), "addressbook-backup-*.json.zst"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one default backup file, got %v (%v)", matches, err)
	}
}

func TestDBCommands(t *testing.T) {
	dbPath := env(t)
	addTestPersons(t, dbPath)

	if out := mustRun(t, dbPath, "db", "maintain"); !strings.Contains(out, "Database maintenance finished") {
		t.Fatalf("unexpected maintain output: %q", out)
	}

	target := filepath.Join(t.TempDir(), "target.db")
	if out := mustRun(t, dbPath, "db", "migrate", "--to-dsn", target); !strings.Contains(out, "Copied 2 persons and 0 groups") {
		t.Fatalf("unexpected migrate output: %q", out)
	}
	if got := lines(mustRun(t, target, "search", "test")); len(got) != 2 {
		t.Fatalf("expected migrated persons, got %v", got)
	}
	if _, err := run(t, dbPath, "db", "migrate", "--to-dsn", dbPath); err == nil {
		t.Fatalf("expected error when migrating onto the same database")
	}
}

func TestConfigInitAndLanguage(t *testing.T) {
	dbPath := env(t)
	out := mustRun(t, dbPath, "--language", "de", "config", "init")
	if !strings.Contains(out, "Konfiguration nach") {
		t.Fatalf("expected German output, got %q", out)
	}
	path := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "addressbook", "addressbook.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "language: de") || !strings.Contains(string(data), dbPath) {
		t.Fatalf("unexpected config file: %s", data)
	}

	// The written file now drives the language without the flag.
	if out := mustRun(t, dbPath, "search", "nobody"); !strings.Contains(out, "Keine Treffer") {
		t.Fatalf("expected German from config file, got %q", out)
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	dbPath := env(t)
	if _, err := run(t, dbPath, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version"); err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestVersionAndHelp(t *testing.T) {
	dbPath := env(t)
	if out := mustRun(t, dbPath, "version"); !strings.HasPrefix(out, "addressbook ") {
		t.Fatalf("unexpected version output: %q", out)
	}
	// Without a terminal the root command prints help.
	if out := mustRun(t, dbPath); !strings.Contains(out, "Usage:") {
		t.Fatalf("expected help output, got %q", out)
	}
}
