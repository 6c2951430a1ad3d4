package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Frame         *lipgloss.Style
	Title         *lipgloss.Style
	MenuItem      *lipgloss.Style
	MenuSelected  *lipgloss.Style
	MenuHint      *lipgloss.Style
	Item          *lipgloss.Style
	SelectedItem  *lipgloss.Style
	Staged        *lipgloss.Style
	Unstaged      *lipgloss.Style
	DiffAdd       *lipgloss.Style
	DiffDel       *lipgloss.Style
	Error         *lipgloss.Style
	Info          *lipgloss.Style
	Header        *lipgloss.Style
	Footer        *lipgloss.Style
	Status        *lipgloss.Style
	Progress      *lipgloss.Style
	Search        *lipgloss.Style
	SearchPrompt  *lipgloss.Style
	Cursor        *lipgloss.Style
	ColumnTitle   *lipgloss.Style
	ColumnFocused *lipgloss.Style
	BoardDone     *lipgloss.Style
	BoardCurrent  *lipgloss.Style
	BoardPending  *lipgloss.Style
}

var defaultStyles = Styles{
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	MenuItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	MenuSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MenuHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Staged: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Unstaged: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
	DiffAdd: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	DiffDel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Progress: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Search: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
	),
	ColumnTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	ColumnFocused: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	BoardDone: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	BoardCurrent: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	BoardPending: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
