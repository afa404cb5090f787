// Copyright (c) 2026 ToeiRei
// Addressbook - prefix-searchable contact book
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/toeirei/addressbook/internal/i18n"
	"github.com/toeirei/addressbook/internal/model"
)

// Searcher is what the search view needs from the book.
type Searcher interface {
	Search(query string) []*model.Person
	Len() int
}

const (
	defaultWidth = 72
	maxResults   = 20
)

// searchModel is an incremental search box: every keystroke re-runs the
// query and the selected result can be copied to the clipboard.
type searchModel struct {
	book    Searcher
	input   textinput.Model
	results []*model.Person
	cursor  int
	status  string
	err     error
	width   int
	copy    func(string) error
}

func newSearchModel(book Searcher, copyFn func(string) error) searchModel {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.placeholder")
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = defaultWidth - 4
	ti.Focus()

	return searchModel{
		book:  book,
		input: ti,
		width: defaultWidth,
		copy:  copyFn,
	}
}

func (m searchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m searchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			m.copySelected()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *searchModel) refresh() {
	m.status, m.err = "", nil
	q := strings.TrimSpace(m.input.Value())
	if q == "" {
		m.results = nil
	} else {
		m.results = m.book.Search(q)
	}
	if m.cursor >= len(m.results) {
		m.cursor = max(len(m.results)-1, 0)
	}
}

func (m *searchModel) copySelected() {
	if m.cursor >= len(m.results) {
		return
	}
	p := m.results[m.cursor]
	if err := m.copy(p.String()); err != nil {
		m.status, m.err = "", err
		return
	}
	m.status, m.err = i18n.T("tui.copied", p.FullName()), nil
}

func (m searchModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case strings.TrimSpace(m.input.Value()) == "":
	case len(m.results) == 0:
		b.WriteString(detailStyle.Render(i18n.T("tui.no_results")))
		b.WriteString("\n")
	default:
		for i, p := range m.results {
			if i == maxResults {
				b.WriteString(detailStyle.Render(fmt.Sprintf("  ... +%d", len(m.results)-maxResults)))
				b.WriteString("\n")
				break
			}
			b.WriteString(renderPerson(p, i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(i18n.T("tui.copy_failed", m.err)))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(successStyle.Render(m.status))
		b.WriteString("\n")
	}

	count := i18n.T("tui.count", len(m.results), m.book.Len())
	b.WriteString(footerStyle.Render(AlignFooter(i18n.T("tui.help"), count, m.width-6)))
	return docStyle.Render(b.String())
}

func renderPerson(p *model.Person, selected bool) string {
	details := strings.Join(nonEmpty(first(p.Phones), first(p.Emails), first(p.Addresses)), "  ")
	if selected {
		return lipgloss.JoinHorizontal(lipgloss.Top, selectedItemStyle.Render("> "+p.FullName()), "  ", detailStyle.Render(details))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, itemStyle.Render(p.FullName()), "  ", detailStyle.Render(details))
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
