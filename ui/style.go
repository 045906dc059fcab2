package ui

import "github.com/charmbracelet/lipgloss"

// Style controls the classic UI's rendering.
type Style struct {
	Toolbar     lipgloss.Style
	Item        lipgloss.Style
	ItemActive  lipgloss.Style
	Text        lipgloss.Style
	Heading     lipgloss.Style
	CodeBlock   lipgloss.Style
	InlineCode  lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Toolbar:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		Item:        lipgloss.NewStyle().Padding(0, 1),
		ItemActive:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("215")),
		Text:        lipgloss.NewStyle(),
		Heading:     lipgloss.NewStyle().Bold(true).Underline(true),
		CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		InlineCode:  lipgloss.NewStyle().Foreground(lipgloss.Color("150")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
