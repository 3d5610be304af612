// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tfctl/apigwctl/internal/history"
)

// SelectEntries runs an interactive picker and returns the two chosen
// entries, or nil if the user quit.
func SelectEntries(items []history.Entry) ([]history.Entry, error) {
	p := tea.NewProgram(model{items: items})
	m, err := p.Run()
	if err != nil {
		return nil, err
	}
	return m.(model).selected, nil
}

type model struct {
	items    []history.Entry
	cursor   int
	selected []history.Entry
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.selected = nil
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if len(m.items) == 0 {
				break
			}
			cur := m.items[m.cursor]
			if i := indexOf(m.selected, cur); i >= 0 {
				m.selected = append(m.selected[:i], m.selected[i+1:]...)
			} else if len(m.selected) < 2 {
				m.selected = append(m.selected, cur)
			}
		case "enter":
			if len(m.selected) == 2 {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	s := "Select two history entries:\n\n"
	for i, e := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		mark := " "
		if indexOf(m.selected, e) >= 0 {
			mark = "x"
		}

		s += fmt.Sprintf("%s [%s] %2d %s %-28s %s\n", cursor, mark, i+1, e.Time.Format("2006-01-02T15:04:05Z"), e.Operation, e.Command)
	}
	return s + "\nSPACE: toggle, ENTER: go, Q/ESCAPE: quit\n"
}

func indexOf(entries []history.Entry, e history.Entry) int {
	for i, v := range entries {
		if v.ID == e.ID {
			return i
		}
	}
	return -1
}
