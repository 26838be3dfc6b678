package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// UI runs the interactive components as short-lived Bubble Tea programs.
type UI struct {
	// NoClear keeps menus inline instead of using the alternate screen,
	// leaving previous output visible.
	NoClear bool
}

// CheckTerminal verifies stdin is an interactive terminal. Failure here is a
// fatal startup condition: nothing in the application can run without one.
func CheckTerminal() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}
	return nil
}

func (u *UI) options() []tea.ProgramOption {
	if u.NoClear {
		return nil
	}
	return []tea.ProgramOption{tea.WithAltScreen()}
}

// Menu runs one menu to completion and returns its terminal event.
func (u *UI) Menu(cfg MenuConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenu(cfg), u.options()...)
	final, err := p.Run()
	if err != nil {
		return MenuResult{}, fmt.Errorf("menu failed: %w", err)
	}
	res, done := final.(MenuModel).Result()
	if !done {
		// The program ended without a terminal event (e.g. killed); treat
		// it as a cancel so callers unwind cleanly.
		return MenuResult{Index: -1, Key: "escape"}, nil
	}
	return res, nil
}

// Input runs a single-line prompt. ok is false when the user cancelled.
func (u *UI) Input(title, label, def string) (string, bool, error) {
	p := tea.NewProgram(NewInput(title, label, def), u.options()...)
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("prompt failed: %w", err)
	}
	value, ok, done := final.(InputModel).Result()
	if !done {
		return "", false, nil
	}
	return value, ok, nil
}

// Confirm runs a yes/no prompt.
func (u *UI) Confirm(question string) (bool, error) {
	p := tea.NewProgram(NewConfirm(question), u.options()...)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirm failed: %w", err)
	}
	accepted, _ := final.(ConfirmModel).Result()
	return accepted, nil
}

// Message shows a transient status line between menus, with a short pause so
// it is readable before the next screen repaints.
func (u *UI) Message(text string) {
	fmt.Println(MessageStyle.Render(text))
	time.Sleep(1200 * time.Millisecond)
}
