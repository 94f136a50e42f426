package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading           *lipgloss.Style
	Spinner           *lipgloss.Style
	Title             *lipgloss.Style
	Link              *lipgloss.Style
	Description       *lipgloss.Style
	Item              *lipgloss.Style
	ItemIndicator     *lipgloss.Style
	SelectedItem      *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	RawCommand        *lipgloss.Style
	SearchPrompt      *lipgloss.Style
	CommentAuthor     *lipgloss.Style
	CommentText       *lipgloss.Style
	Overlay           *lipgloss.Style
	HelpKey           *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Spinner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("38")),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	SelectedIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("208")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	RawCommand: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	SearchPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	CommentAuthor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	),
	CommentText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Overlay: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	HelpKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
