package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func plainOptions(n int) []Option {
	opts := make([]Option, n)
	for i := range opts {
		opts[i] = Option{Label: fmt.Sprintf("item %d", i)}
	}
	return opts
}

func press(m MenuModel, t tea.KeyType) MenuModel {
	next, _ := m.Update(tea.KeyMsg{Type: t})
	return next.(MenuModel)
}

func pressRune(m MenuModel, r rune) MenuModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(MenuModel)
}

func TestMenuWindowContainsSelection(t *testing.T) {
	const n, v = 50, 19
	for sel := 0; sel < n; sel++ {
		m := NewMenu(MenuConfig{Title: "t", Options: plainOptions(n), Selected: sel, Viewport: v})
		start := m.window()
		if start < 0 || start > n-v {
			t.Fatalf("sel=%d: start=%d outside [0,%d]", sel, start, n-v)
		}
		if sel < start || sel >= start+v {
			t.Fatalf("sel=%d: window [%d,%d) does not contain selection", sel, start, start+v)
		}
	}
}

func TestMenuScrollIndicators(t *testing.T) {
	m := NewMenu(MenuConfig{Title: "t", Options: plainOptions(40), Selected: 20, Viewport: 19})
	view := m.View()
	if !strings.Contains(view, "more") {
		t.Errorf("scrolled menu should show scroll indicators:\n%s", view)
	}

	top := NewMenu(MenuConfig{Title: "t", Options: plainOptions(40), Selected: 0, Viewport: 19})
	if strings.Contains(top.View(), "↑") {
		t.Error("menu at the top should not show an above indicator")
	}
}

func TestMenuConstantFrameHeight(t *testing.T) {
	cfg := MenuConfig{Title: "t", Options: plainOptions(40), Viewport: 19}

	heights := map[int]bool{}
	for _, sel := range []int{0, 5, 20, 39} {
		cfg.Selected = sel
		h := strings.Count(NewMenu(cfg).View(), "\n")
		heights[h] = true
	}
	if len(heights) != 1 {
		t.Errorf("frame height changed with scroll position: %v", heights)
	}

	// Short lists are padded to the same frame height.
	short := MenuConfig{Title: "t", Options: plainOptions(3), Viewport: 19}
	long := strings.Count(NewMenu(cfg).View(), "\n")
	if got := strings.Count(NewMenu(short).View(), "\n"); got != long {
		t.Errorf("short list height = %d, long list height = %d", got, long)
	}
}

func TestMenuEmptyList(t *testing.T) {
	m := NewMenu(MenuConfig{Title: "empty", Footer: []string{"esc back"}})
	view := m.View()
	if !strings.Contains(view, "empty") || !strings.Contains(view, "esc back") {
		t.Errorf("empty menu should render title and footer:\n%s", view)
	}

	// Enter on an empty list is ignored; Escape still cancels.
	m = press(m, tea.KeyEnter)
	if _, done := m.Result(); done {
		t.Error("enter on empty list should not terminate the menu")
	}
	m = press(m, tea.KeyEsc)
	res, done := m.Result()
	if !done || res.Key != "escape" || res.Index != -1 {
		t.Errorf("escape result = %+v done=%v", res, done)
	}
}

func TestMenuNavigationClamps(t *testing.T) {
	m := NewMenu(MenuConfig{Options: plainOptions(3)})

	m = press(m, tea.KeyUp)
	if m.Selected() != 0 {
		t.Errorf("up at top moved to %d", m.Selected())
	}
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	m = press(m, tea.KeyDown)
	if m.Selected() != 2 {
		t.Errorf("down past bottom moved to %d", m.Selected())
	}
}

func TestMenuCategorySkip(t *testing.T) {
	opts := []Option{
		{Label: "a"},
		{Label: "grp", Category: true},
		{Label: "grp2", Category: true},
		{Label: "b"},
	}
	m := NewMenu(MenuConfig{Options: opts, SkipCategories: true})

	m = press(m, tea.KeyDown)
	if m.Selected() != 3 {
		t.Errorf("down should skip both categories, landed on %d", m.Selected())
	}
	m = press(m, tea.KeyUp)
	if m.Selected() != 0 {
		t.Errorf("up should skip back over categories, landed on %d", m.Selected())
	}
}

func TestMenuCategorySkipDeadEnd(t *testing.T) {
	opts := []Option{
		{Label: "a"},
		{Label: "grp", Category: true},
		{Label: "grp2", Category: true},
	}
	m := NewMenu(MenuConfig{Options: opts, SkipCategories: true})

	// Only categories remain below: the cursor must not move.
	m = press(m, tea.KeyDown)
	if m.Selected() != 0 {
		t.Errorf("selection moved to %d with only categories below", m.Selected())
	}
}

func TestMenuRepeatedDownNeverLandsOnCategory(t *testing.T) {
	opts := []Option{
		{Label: "a"},
		{Label: "g1", Category: true},
		{Label: "b"},
		{Label: "g2", Category: true},
		{Label: "g3", Category: true},
		{Label: "c"},
	}
	m := NewMenu(MenuConfig{Options: opts, SkipCategories: true})
	for i := 0; i < 10; i++ {
		m = press(m, tea.KeyDown)
		if opts[m.Selected()].Category {
			t.Fatalf("cursor landed on category index %d", m.Selected())
		}
	}
}

func TestMenuEnterReturnsSelection(t *testing.T) {
	m := NewMenu(MenuConfig{Options: plainOptions(5), Selected: 2})
	m = press(m, tea.KeyEnter)
	res, done := m.Result()
	if !done || res.Index != 2 || res.Key != "enter" {
		t.Errorf("Result() = %+v done=%v", res, done)
	}
}

func TestMenuExtraKeyPassthrough(t *testing.T) {
	m := NewMenu(MenuConfig{Options: plainOptions(5), Selected: 3, ExtraKeys: "ed"})

	m = pressRune(m, 'E')
	res, done := m.Result()
	if !done || res.Index != 3 || res.Key != "e" {
		t.Errorf("extra key result = %+v done=%v", res, done)
	}

	// Undeclared letters are ignored.
	m2 := NewMenu(MenuConfig{Options: plainOptions(5), ExtraKeys: "ed"})
	m2 = pressRune(m2, 'z')
	if _, done := m2.Result(); done {
		t.Error("undeclared letter should not terminate the menu")
	}
}

func TestMenuExitKey(t *testing.T) {
	m := NewMenu(MenuConfig{Options: plainOptions(2), ExitKey: 'x'})
	m = pressRune(m, 'x')
	res, done := m.Result()
	if !done || res.Key != "exit" || res.Index != -1 {
		t.Errorf("exit result = %+v done=%v", res, done)
	}
}

func TestMenuPageMovement(t *testing.T) {
	m := NewMenu(MenuConfig{Options: plainOptions(50), Viewport: 10})
	m = press(m, tea.KeyPgDown)
	if m.Selected() != 10 {
		t.Errorf("page down moved to %d, want 10", m.Selected())
	}
	m = press(m, tea.KeyPgUp)
	if m.Selected() != 0 {
		t.Errorf("page up moved to %d, want 0", m.Selected())
	}
}

func TestMenuInitialSelectionClamped(t *testing.T) {
	m := NewMenu(MenuConfig{Options: plainOptions(3), Selected: 99})
	if m.Selected() != 2 {
		t.Errorf("initial selection = %d, want clamped to 2", m.Selected())
	}
}
