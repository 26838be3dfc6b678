package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/mirrormenu/internal/keymap"
)

// InputModel is a single-line editor pre-filled with a default value. Enter
// commits the buffer — an empty string is a valid committed value — while
// Escape cancels, which is a distinct outcome, never an empty commit.
//
// Cursor movement, insertion, deletion, and wrapping of long values are
// delegated to bubbles/textinput; the model only decides commit vs cancel.
type InputModel struct {
	title string
	label string
	input textinput.Model

	done      bool
	committed bool
	value     string
}

// NewInput builds an editor for one prompt.
func NewInput(title, label, def string) InputModel {
	ti := textinput.New()
	ti.SetValue(def)
	ti.CursorEnd()
	ti.Focus()
	ti.Prompt = ""
	return InputModel{title: title, label: label, input: ti}
}

// Init implements tea.Model.
func (m InputModel) Init() tea.Cmd { return textinput.Blink }

// Update implements tea.Model.
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch keymap.Decode(key).Kind {
		case keymap.Enter:
			m.value = m.input.Value()
			m.committed = true
			m.done = true
			return m, tea.Quit
		case keymap.Escape:
			m.committed = false
			m.done = true
			return m, tea.Quit
		}
		if key.String() == "ctrl+c" {
			m.committed = false
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model. Only the prompt area is drawn; the runner keeps
// it in place between keystrokes rather than clearing the whole screen.
func (m InputModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(PromptLabelStyle.Render(m.label + ": "))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(FooterStyle.Render("enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}

// Result returns the committed value. ok is false when the prompt was
// cancelled.
func (m InputModel) Result() (value string, ok bool, done bool) {
	return m.value, m.committed, m.done
}
