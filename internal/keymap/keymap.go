// Package keymap normalizes terminal key presses into a closed set of
// semantic events. Menus and prompts consume these events instead of raw
// key codes, which keeps input decoding and state transitions independently
// testable.
package keymap

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind identifies a semantic input event.
type Kind int

const (
	Other Kind = iota
	ArrowUp
	ArrowDown
	ArrowLeft
	ArrowRight
	Enter
	Escape
	Backspace
	Delete
	PageUp
	PageDown
	// Character is any printable rune, including letters when typed into a
	// text field.
	Character
	// Letter is a printable ASCII letter outside of a text field, used for
	// contextual menu actions.
	Letter
)

// Event is one decoded key press.
type Event struct {
	Kind Kind
	// Rune is set for Character and Letter events.
	Rune rune
}

// Decode maps a Bubble Tea key message to a semantic event. Letters are
// reported as Letter so menus can bind contextual actions to them; everything
// else printable is Character.
func Decode(msg tea.KeyMsg) Event {
	switch msg.Type {
	case tea.KeyUp:
		return Event{Kind: ArrowUp}
	case tea.KeyDown:
		return Event{Kind: ArrowDown}
	case tea.KeyLeft:
		return Event{Kind: ArrowLeft}
	case tea.KeyRight:
		return Event{Kind: ArrowRight}
	case tea.KeyEnter:
		return Event{Kind: Enter}
	case tea.KeyEsc:
		return Event{Kind: Escape}
	case tea.KeyBackspace:
		return Event{Kind: Backspace}
	case tea.KeyDelete:
		return Event{Kind: Delete}
	case tea.KeyPgUp:
		return Event{Kind: PageUp}
	case tea.KeyPgDown:
		return Event{Kind: PageDown}
	case tea.KeySpace:
		return Event{Kind: Character, Rune: ' '}
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return Event{Kind: Other}
		}
		r := msg.Runes[0]
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return Event{Kind: Letter, Rune: r}
		}
		if unicode.IsPrint(r) {
			return Event{Kind: Character, Rune: r}
		}
		return Event{Kind: Other}
	default:
		return Event{Kind: Other}
	}
}
