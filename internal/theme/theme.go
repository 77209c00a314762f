package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Action         *lipgloss.Style
	Collection     *lipgloss.Style
	Navigation     *lipgloss.Style
	SelectedButton *lipgloss.Style
	Checkmark      *lipgloss.Style
	Ring           *lipgloss.Style
	Center         *lipgloss.Style
	Sector         *lipgloss.Style
	SelectedSector *lipgloss.Style

	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Header            *lipgloss.Style
	Footer            *lipgloss.Style
	Hint              *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	Action: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Collection: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true),
	),
	Navigation: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	SelectedButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("33")).Bold(true),
	),
	Checkmark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Ring: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Center: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Sector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	SelectedSector: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
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
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Hint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Italic(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
