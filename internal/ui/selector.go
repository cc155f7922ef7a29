// Package ui provides the built-in interactive worktree selector, used when
// no external fuzzy-finder binary is installed.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/phantom-sh/phantom/internal/worktree"
)

// maxVisible caps how many candidates are rendered at once.
const maxVisible = 10

// selectorModel is the bubbletea model for worktree selection.
type selectorModel struct {
	worktrees []worktree.Worktree
	lines     []string
	filtered  []int // indexes into worktrees
	textInput textinput.Model
	cursor    int
	selected  int // index into worktrees, -1 = none
	cancelled bool
}

func newSelectorModel(worktrees []worktree.Worktree) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	filtered := make([]int, len(worktrees))
	for i := range worktrees {
		filtered[i] = i
	}

	return selectorModel{
		worktrees: worktrees,
		lines:     worktree.DisplayLines(worktrees),
		filtered:  filtered,
		textInput: ti,
		selected:  -1,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *selectorModel) applyFilter() {
	query := strings.TrimSpace(m.textInput.Value())
	if query == "" {
		m.filtered = m.filtered[:0]
		for i := range m.worktrees {
			m.filtered = append(m.filtered, i)
		}
	} else {
		matches := fuzzy.Find(query, m.lines)
		m.filtered = m.filtered[:0]
		for _, match := range matches {
			m.filtered = append(m.filtered, match.Index)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m selectorModel) View() string {
	var b strings.Builder

	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	visible := m.filtered
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}

	for pos, idx := range visible {
		line := m.lines[idx]
		if pos == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(unselectedStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString(dimStyle.Render("  no matches"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: select • esc: cancel"))
	b.WriteString("\n")

	return b.String()
}

// SelectWorktree runs the built-in selector over the given worktrees.
// ok is false when the user cancelled.
func SelectWorktree(worktrees []worktree.Worktree) (worktree.Worktree, bool, error) {
	m, err := tea.NewProgram(newSelectorModel(worktrees)).Run()
	if err != nil {
		return worktree.Worktree{}, false, fmt.Errorf("selector failed: %w", err)
	}

	final := m.(selectorModel)
	if final.cancelled || final.selected < 0 {
		return worktree.Worktree{}, false, nil
	}
	return final.worktrees[final.selected], true, nil
}
