// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui holds the user-facing entry points of the address book. The
// command line lives in ui/cli; it starts the interactive search screen from
// internal/tui when run without a subcommand on a terminal.
package ui
