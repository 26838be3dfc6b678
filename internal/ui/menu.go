package ui

import (
	"fmt"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halvard/mirrormenu/internal/keymap"
)

// DefaultViewport is the number of rows shown before the list scrolls.
const DefaultViewport = 19

// Highlight selects a style for a menu row.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightFavorite
	HighlightQuickLaunch
)

// Option is one menu row. Category rows are rendered distinctly and, when
// skip mode is on, passed over by the cursor.
type Option struct {
	Label     string
	Category  bool
	Highlight Highlight
}

// MenuConfig describes one menu invocation.
type MenuConfig struct {
	Title string
	// Status is an optional line under the title (current device, counts).
	Status  string
	Options []Option
	// Selected is the initial cursor position.
	Selected int
	// SkipCategories makes cursor movement pass over category rows.
	SkipCategories bool
	// Footer lines are rendered below the list as key hints.
	Footer []string
	// ExtraKeys are letters returned to the caller as contextual actions,
	// without altering the selection.
	ExtraKeys string
	// ExitKey is the designated quit letter; zero means none.
	ExitKey rune
	// Viewport caps the visible rows; zero means DefaultViewport.
	Viewport int
}

// MenuResult is the terminal event of a menu run. Key is "enter", "escape",
// "exit", or the lowercase extra key that was pressed. Index is -1 for
// escape and exit.
type MenuResult struct {
	Index int
	Key   string
}

// MenuModel is the Bubble Tea model behind a menu. All transitions happen in
// Update, so behavior is testable without a terminal.
type MenuModel struct {
	cfg      MenuConfig
	viewport int
	selected int
	done     bool
	result   MenuResult
}

// NewMenu builds the model for one menu run.
func NewMenu(cfg MenuConfig) MenuModel {
	v := cfg.Viewport
	if v <= 0 {
		v = DefaultViewport
	}
	sel := cfg.Selected
	if sel < 0 {
		sel = 0
	}
	if n := len(cfg.Options); n > 0 && sel >= n {
		sel = n - 1
	}
	m := MenuModel{cfg: cfg, viewport: v, selected: sel}
	if cfg.SkipCategories && sel < len(cfg.Options) && cfg.Options[sel].Category {
		m.move(1)
	}
	return m
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		m.done = true
		m.result = MenuResult{Index: -1, Key: "exit"}
		return m, tea.Quit
	}

	switch ev := keymap.Decode(key); ev.Kind {
	case keymap.ArrowUp:
		m.move(-1)
	case keymap.ArrowDown:
		m.move(1)
	case keymap.PageUp:
		for i := 0; i < m.viewport; i++ {
			m.move(-1)
		}
	case keymap.PageDown:
		for i := 0; i < m.viewport; i++ {
			m.move(1)
		}
	case keymap.Enter:
		if len(m.cfg.Options) == 0 {
			break
		}
		m.done = true
		m.result = MenuResult{Index: m.selected, Key: "enter"}
		return m, tea.Quit
	case keymap.Escape:
		m.done = true
		m.result = MenuResult{Index: -1, Key: "escape"}
		return m, tea.Quit
	case keymap.Letter:
		r := unicode.ToLower(ev.Rune)
		if m.cfg.ExitKey != 0 && r == unicode.ToLower(m.cfg.ExitKey) {
			m.done = true
			m.result = MenuResult{Index: -1, Key: "exit"}
			return m, tea.Quit
		}
		if strings.ContainsRune(m.cfg.ExtraKeys, r) {
			m.done = true
			m.result = MenuResult{Index: m.selected, Key: string(r)}
			return m, tea.Quit
		}
	}
	return m, nil
}

// move shifts the cursor by dir, clamped at the ends. In skip mode the
// cursor keeps going past category rows; when only categories remain in that
// direction it stays put.
func (m *MenuModel) move(dir int) {
	next := m.selected + dir
	for next >= 0 && next < len(m.cfg.Options) {
		if !m.cfg.SkipCategories || !m.cfg.Options[next].Category {
			m.selected = next
			return
		}
		next += dir
	}
}

// Result returns the terminal event once the menu is done.
func (m MenuModel) Result() (MenuResult, bool) {
	return m.result, m.done
}

// Selected returns the current cursor index.
func (m MenuModel) Selected() int { return m.selected }

// window computes the visible slice [start, start+viewport). The selection
// is always inside the window and start stays within [0, N-viewport].
func (m MenuModel) window() (start int) {
	n := len(m.cfg.Options)
	if n <= m.viewport {
		return 0
	}
	start = m.selected - m.viewport/2
	if start < 0 {
		start = 0
	}
	if start > n-m.viewport {
		start = n - m.viewport
	}
	return start
}

// View implements tea.Model. The frame height is constant for a given menu:
// short lists are padded to the viewport, long lists always render both
// scroll-indicator lines (blank when unused), so scrolling never jitters.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.cfg.Title))
	b.WriteString("\n")
	if m.cfg.Status != "" {
		b.WriteString(FooterStyle.Render(m.cfg.Status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	n := len(m.cfg.Options)
	if n > 0 {
		start := m.window()
		end := start + m.viewport
		if end > n {
			end = n
		}

		if start > 0 {
			b.WriteString(IndicatorStyle.Render(fmt.Sprintf("↑ %d more", start)))
		}
		b.WriteString("\n")

		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(i))
			b.WriteString("\n")
		}
		for i := end - start; i < m.viewport; i++ {
			b.WriteString("\n")
		}

		if end < n {
			b.WriteString(IndicatorStyle.Render(fmt.Sprintf("↓ %d more", n-end)))
		}
		b.WriteString("\n")
	}

	if len(m.cfg.Footer) > 0 {
		b.WriteString("\n")
		for _, line := range m.cfg.Footer {
			b.WriteString(FooterStyle.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m MenuModel) renderRow(i int) string {
	opt := m.cfg.Options[i]

	if opt.Category {
		return CategoryStyle.Render("── " + opt.Label + " ──")
	}

	label := opt.Label
	switch opt.Highlight {
	case HighlightFavorite:
		label = FavoriteStyle.Render(FavoriteMarker + " " + label)
	case HighlightQuickLaunch:
		label = QuickLaunchStyle.Render(QuickLaunchMarker + " " + label)
	}

	if i == m.selected {
		return SelectedItemStyle.Render(SelectionMarker + " " + label)
	}
	return ItemStyle.Render(label)
}
