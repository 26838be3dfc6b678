package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - titles, borders
	SecondaryColor = lipgloss.Color("#43BF6D") // Green - selection, ready devices
	AccentColor    = lipgloss.Color("#FFD866") // Yellow - favorites
	WarningColor   = lipgloss.Color("#FFA500") // Orange - warnings
	ErrorColor     = lipgloss.Color("#FF5555") // Red - errors
	MutedColor     = lipgloss.Color("#626262") // Gray - secondary info
	TextColor      = lipgloss.Color("#FFFFFF") // White - main content
)

// Row markers
const (
	SelectionMarker   = "→"
	FavoriteMarker    = "★"
	QuickLaunchMarker = "⚡"
)

// Common styles
var (
	// TitleStyle renders menu and prompt titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// ItemStyle is an unselected, selectable row
	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(4)

	// SelectedItemStyle is the row under the cursor
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true).
				PaddingLeft(2)

	// CategoryStyle renders grouping rows, which are not selectable targets
	CategoryStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			PaddingLeft(2)

	// FavoriteStyle tints favorited rows
	FavoriteStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	// QuickLaunchStyle tints the quick-launch row
	QuickLaunchStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor)

	// IndicatorStyle renders the "k more above/below" scroll hints
	IndicatorStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true).
			PaddingLeft(2)

	// FooterStyle renders key hints under a menu
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// MessageStyle renders transient status lines
	MessageStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// ErrorStyle renders error lines
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// PromptLabelStyle renders the label in front of a text input
	PromptLabelStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)
)
