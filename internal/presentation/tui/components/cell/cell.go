// Package cell provides the bordered frame every grid cell is drawn in.
package cell

import (
	"github.com/charmbracelet/lipgloss"
)

// State is the visual state of a cell frame.
type State int

const (
	Idle State = iota
	Hovered
	Selected
)

// Props defines the properties for the cell component.
type Props struct {
	View   string
	Width  int
	Height int
	Framed bool
	State  State

	IdleColor     string
	HoverColor    string
	SelectedColor string
}

// Render draws the cell's view in exactly Width x Height terminal cells.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	if !p.Framed {
		return lipgloss.NewStyle().
			Width(p.Width).
			Height(p.Height).
			MaxWidth(p.Width).
			MaxHeight(p.Height).
			Render(p.View)
	}

	border := lipgloss.NormalBorder()
	color := p.IdleColor
	switch p.State {
	case Hovered:
		border = lipgloss.RoundedBorder()
		color = p.HoverColor
	case Selected:
		border = lipgloss.ThickBorder()
		color = p.SelectedColor
	}

	style := lipgloss.NewStyle().
		Border(border).
		Width(max(p.Width-2, 0)).
		Height(max(p.Height-2, 0)).
		MaxWidth(p.Width).
		MaxHeight(p.Height)
	if color != "" {
		style = style.BorderForeground(lipgloss.Color(color))
	}
	return style.Render(p.View)
}
