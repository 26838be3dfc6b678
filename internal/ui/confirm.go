package ui

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/mirrormenu/internal/keymap"
)

// ConfirmModel is a yes/no prompt. 'y' or Enter accepts; 'n' or Escape
// declines.
type ConfirmModel struct {
	question string
	done     bool
	accepted bool
}

// NewConfirm builds a confirm prompt.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{question: question}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.done = true
		return m, tea.Quit
	}

	switch ev := keymap.Decode(key); ev.Kind {
	case keymap.Enter:
		m.accepted = true
		m.done = true
		return m, tea.Quit
	case keymap.Escape:
		m.done = true
		return m, tea.Quit
	case keymap.Letter:
		switch unicode.ToLower(ev.Rune) {
		case 'y':
			m.accepted = true
			m.done = true
			return m, tea.Quit
		case 'n':
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(PromptLabelStyle.Render(m.question))
	b.WriteString(" ")
	b.WriteString(FooterStyle.Render("[y/n]"))
	b.WriteString("\n")
	return b.String()
}

// Result reports the choice once the prompt is done.
func (m ConfirmModel) Result() (accepted bool, done bool) {
	return m.accepted, m.done
}
