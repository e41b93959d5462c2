package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/metrics"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// HandleWindowSize records the terminal size and lays the page out again.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Help.Width = msg.Width

	UpdateLayout(s)
}

// TooSmall reports whether the terminal is below the page's minimum size.
func TooSmall(s *state.ModelState) bool {
	return s.Width < s.MinWidth || s.Height < s.MinHeight
}

// GridArea is the part of the terminal the grid is drawn in.
func GridArea(s *state.ModelState) grid.Rect {
	return grid.Rect{
		Width:  max(s.Width, 0),
		Height: clampMin(s.Height-metrics.FooterLines, 0),
	}
}

// UpdateLayout recomputes the cell placements and resizes the widgets that
// keep size-dependent state. Nothing is placed while the terminal is too
// small for the page.
func UpdateLayout(s *state.ModelState) {
	s.Placements = nil
	if s.Width <= 0 || s.Height <= 0 || TooSmall(s) {
		return
	}

	s.Placements = grid.Layout(s.Grid, GridArea(s))
	for _, p := range s.Placements {
		w, ok := s.Grid.At(p.Coord)
		if !ok || w == nil {
			continue
		}
		sizer, ok := w.(widget.Sizer)
		if !ok {
			continue
		}
		width, height := ContentSize(w, p.Rect)
		sizer.SetSize(width, height)
	}
}

// ContentSize is the space inside the cell's border.
func ContentSize(w widget.Widget, r grid.Rect) (int, int) {
	if !widget.Framed(w) {
		return r.Width, r.Height
	}
	return clampMin(r.Width-metrics.CellFrame, 0), clampMin(r.Height-metrics.CellFrame, 0)
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
