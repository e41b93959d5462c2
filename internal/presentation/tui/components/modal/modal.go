// Package modal provides the overlay box used for the key help.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Width   int
	Height  int
	Title   string
	Body    string
	Color   string
}

// Render renders the modal centered in a Width x Height area.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)
	titleStyle := lipgloss.NewStyle().Bold(true).PaddingBottom(1)
	if p.Color != "" {
		boxStyle = boxStyle.BorderForeground(lipgloss.Color(p.Color))
		titleStyle = titleStyle.Foreground(lipgloss.Color(p.Color))
	}

	content := p.Body
	if p.Title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(p.Title), p.Body)
	}
	box := boxStyle.Render(content)
	if p.Width <= 0 || p.Height <= 0 {
		return box
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box)
}
