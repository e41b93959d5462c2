// Package placeholder provides the notice shown when the terminal is too
// small for the current page.
package placeholder

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the placeholder component.
type Props struct {
	Visible   bool
	Width     int
	Height    int
	MinWidth  int
	MinHeight int
}

// Render renders the placeholder, centered in the terminal.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	text := fmt.Sprintf("Terminal too small\nneed %dx%d, have %dx%d", p.MinWidth, p.MinHeight, p.Width, p.Height)
	notice := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Align(lipgloss.Center).
		Render(text)
	if p.Width <= 0 || p.Height <= 0 {
		return notice
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, notice)
}
