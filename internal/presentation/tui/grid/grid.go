// Package grid models a page as rows of widget cells and lays them out
// into terminal rectangles.
package grid

import "github.com/ytgrid/ytgrid/internal/presentation/tui/widget"

// ConstraintKind selects how a Constraint resolves against free space.
type ConstraintKind int

const (
	KindLength ConstraintKind = iota
	KindMin
	KindMax
	KindPercentage
)

// Constraint sizes a cell width or a row height.
type Constraint struct {
	Kind  ConstraintKind
	Value int
}

// Length is exactly n.
func Length(n int) Constraint { return Constraint{Kind: KindLength, Value: n} }

// Min is at least n and grows into free space.
func Min(n int) Constraint { return Constraint{Kind: KindMin, Value: n} }

// Max grows into free space up to n.
func Max(n int) Constraint { return Constraint{Kind: KindMax, Value: n} }

// Percentage is p percent of the available space.
func Percentage(p int) Constraint { return Constraint{Kind: KindPercentage, Value: p} }

// Cell is one widget with its width constraint.
type Cell struct {
	Widget widget.Widget
	Width  Constraint
}

// Row is a horizontal run of cells sharing one height.
type Row struct {
	Cells    []Cell
	Height   Constraint
	Centered bool
}

// Grid is the widget layout of a page. A coordinate (x, y) addresses cell x
// of row y.
type Grid struct {
	Rows []Row
}

// Coord addresses a cell in grid space.
type Coord struct {
	X, Y int
}

// At returns the widget at c.
func (g Grid) At(c Coord) (widget.Widget, bool) {
	if c.Y < 0 || c.Y >= len(g.Rows) {
		return nil, false
	}
	row := g.Rows[c.Y]
	if c.X < 0 || c.X >= len(row.Cells) {
		return nil, false
	}
	return row.Cells[c.X].Widget, true
}

// Set replaces the widget at c. It reports false when c is out of range.
func (g Grid) Set(c Coord, w widget.Widget) bool {
	if _, ok := g.At(c); !ok {
		return false
	}
	g.Rows[c.Y].Cells[c.X].Widget = w
	return true
}

// Each calls fn for every cell in row order.
func (g Grid) Each(fn func(c Coord, w widget.Widget)) {
	for y, row := range g.Rows {
		for x, cell := range row.Cells {
			fn(Coord{X: x, Y: y}, cell.Widget)
		}
	}
}

// Shape returns the number of cells in each row.
func (g Grid) Shape() []int {
	shape := make([]int, len(g.Rows))
	for y, row := range g.Rows {
		shape[y] = len(row.Cells)
	}
	return shape
}

// Clone deep-copies the grid including every widget.
func (g Grid) Clone() Grid {
	rows := make([]Row, len(g.Rows))
	for y, row := range g.Rows {
		cells := make([]Cell, len(row.Cells))
		for x, cell := range row.Cells {
			cells[x] = cell
			if cell.Widget != nil {
				cells[x].Widget = cell.Widget.Clone()
			}
		}
		rows[y] = Row{Cells: cells, Height: row.Height, Centered: row.Centered}
	}
	return Grid{Rows: rows}
}
