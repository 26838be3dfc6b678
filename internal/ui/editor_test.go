package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeString(m InputModel, s string) InputModel {
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(InputModel)
	}
	return m
}

func inputPress(m InputModel, t tea.KeyType) InputModel {
	next, _ := m.Update(tea.KeyMsg{Type: t})
	return next.(InputModel)
}

func TestInputCommitsEditedValue(t *testing.T) {
	m := NewInput("t", "Name", "old")
	m = typeString(m, "er") // cursor starts at end: "old" -> "older"
	m = inputPress(m, tea.KeyEnter)

	value, ok, done := m.Result()
	if !done || !ok {
		t.Fatalf("Result() ok=%v done=%v", ok, done)
	}
	if value != "older" {
		t.Errorf("value = %q, want %q", value, "older")
	}
}

func TestInputEmptyCommitIsNotCancel(t *testing.T) {
	m := NewInput("t", "Name", "x")
	m = inputPress(m, tea.KeyBackspace)
	m = inputPress(m, tea.KeyEnter)

	value, ok, done := m.Result()
	if !done || !ok {
		t.Fatalf("empty commit reported as cancel: ok=%v done=%v", ok, done)
	}
	if value != "" {
		t.Errorf("value = %q, want empty string", value)
	}
}

func TestInputEscapeCancels(t *testing.T) {
	m := NewInput("t", "Name", "keep")
	m = inputPress(m, tea.KeyEsc)

	_, ok, done := m.Result()
	if !done {
		t.Fatal("escape should terminate the prompt")
	}
	if ok {
		t.Error("escape must be reported as cancellation, not a commit")
	}
}

func TestInputCursorEditing(t *testing.T) {
	m := NewInput("t", "Name", "ac")
	m = inputPress(m, tea.KeyLeft) // cursor between a and c
	m = typeString(m, "b")
	m = inputPress(m, tea.KeyEnter)

	value, _, _ := m.Result()
	if value != "abc" {
		t.Errorf("value = %q, want %q", value, "abc")
	}
}

func TestConfirmAccept(t *testing.T) {
	for _, r := range []rune{'y', 'Y'} {
		m := NewConfirm("sure?")
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		accepted, done := next.(ConfirmModel).Result()
		if !done || !accepted {
			t.Errorf("confirm %q: accepted=%v done=%v", r, accepted, done)
		}
	}

	m := NewConfirm("sure?")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if accepted, done := next.(ConfirmModel).Result(); !done || !accepted {
		t.Errorf("enter: accepted=%v done=%v", accepted, done)
	}
}

func TestConfirmDecline(t *testing.T) {
	m := NewConfirm("sure?")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	if accepted, done := next.(ConfirmModel).Result(); !done || accepted {
		t.Errorf("'n': accepted=%v done=%v", accepted, done)
	}

	m = NewConfirm("sure?")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if accepted, done := next.(ConfirmModel).Result(); !done || accepted {
		t.Errorf("escape: accepted=%v done=%v", accepted, done)
	}
}
