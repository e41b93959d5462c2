// Package layout composes painted grid cells and the footer into a frame.
package layout

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block is a painted cell at its place on the grid area.
type Block struct {
	X, Y          int
	Width, Height int
	Content       string
}

// Props defines the properties for the layout component.
type Props struct {
	Width  int
	Height int
	Blocks []Block
	Footer string
}

// Render places the blocks row by row and appends the footer line. Blocks
// sharing a Y form one row; gaps are filled with spaces.
func Render(p Props) string {
	rows := map[int][]Block{}
	var ys []int
	for _, b := range p.Blocks {
		if b.Width <= 0 || b.Height <= 0 {
			continue
		}
		if _, ok := rows[b.Y]; !ok {
			ys = append(ys, b.Y)
		}
		rows[b.Y] = append(rows[b.Y], b)
	}
	sort.Ints(ys)

	var parts []string
	used := 0
	for _, y := range ys {
		if gap := y - used; gap > 0 {
			parts = append(parts, blank(p.Width, gap))
		}
		row := rows[y]
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })
		parts = append(parts, renderRow(row))
		used = y + row[0].Height
	}
	if gap := p.Height - used; gap > 0 {
		parts = append(parts, blank(p.Width, gap))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	footer := lipgloss.NewStyle().MaxWidth(max(p.Width, 0)).Render(p.Footer)
	if body == "" {
		return footer
	}
	return body + "\n" + footer
}

func renderRow(row []Block) string {
	var cells []string
	left := 0
	for _, b := range row {
		if gap := b.X - left; gap > 0 {
			cells = append(cells, blank(gap, b.Height))
		}
		cells = append(cells, b.Content)
		left = b.X + b.Width
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func blank(width, height int) string {
	line := strings.Repeat(" ", max(width, 0))
	lines := make([]string, max(height, 0))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
