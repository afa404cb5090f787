// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui is the interactive search screen.
package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the search screen on the alternate screen and blocks until the
// user quits.
func Run(book Searcher) error {
	_, err := tea.NewProgram(
		newSearchModel(book, clipboard.WriteAll),
		tea.WithAltScreen(),
	).Run()
	return err
}
