// Package cursor moves the hover and selection over a grid's focusable
// cells.
package cursor

import (
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// Direction is a movement key.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Cursor is the hover position in index space and the selected cell in
// grid space. Both are optional.
type Cursor struct {
	Hover     grid.Position
	Hovering  bool
	Selected  grid.Coord
	Selecting bool
}

// HoveredCell returns the grid coordinate under the hover.
func (c Cursor) HoveredCell(ix grid.Index) (grid.Coord, bool) {
	if !c.Hovering {
		return grid.Coord{}, false
	}
	return ix.Translate(c.Hover)
}

// Clamp pulls the hover back inside ix after the grid changed.
func Clamp(c Cursor, ix grid.Index) Cursor {
	if !c.Hovering {
		return c
	}
	if ix.Empty() {
		c.Hovering = false
		c.Hover = grid.Position{}
		return c
	}
	c.Hover.Y = min(max(c.Hover.Y, 0), ix.Rows()-1)
	c.Hover.X = min(max(c.Hover.X, 0), ix.RowLen(c.Hover.Y)-1)
	return c
}

// Move applies a movement key. It does nothing while a cell is selected or
// when nothing is focusable.
func Move(c Cursor, dir Direction, ix grid.Index) Cursor {
	if c.Selecting || ix.Empty() {
		return c
	}
	if !c.Hovering {
		c.Hovering = true
		switch dir {
		case Up, Left:
			c.Hover = grid.Position{X: 0, Y: 0}
		default:
			c.Hover = grid.Position{X: 0, Y: ix.Rows() - 1}
		}
		return c
	}

	c = Clamp(c, ix)
	switch dir {
	case Up:
		c.Hover.Y = max(c.Hover.Y-1, 0)
		c.Hover.X = min(c.Hover.X, ix.RowLen(c.Hover.Y)-1)
	case Down:
		c.Hover.Y = min(c.Hover.Y+1, ix.Rows()-1)
		c.Hover.X = min(c.Hover.X, ix.RowLen(c.Hover.Y)-1)
	case Left:
		c.Hover.X = max(c.Hover.X-1, 0)
	case Right:
		c.Hover.X = min(c.Hover.X+1, ix.RowLen(c.Hover.Y)-1)
	}
	return c
}

// Activate calls Select on the hovered widget and selects its cell when the
// widget accepts focus. ok is false when nothing is hovered.
func Activate(c Cursor, g grid.Grid, ix grid.Index, env *widget.Env) (Cursor, bool) {
	if c.Selecting {
		return c, true
	}
	coord, ok := c.HoveredCell(ix)
	if !ok {
		return c, false
	}
	w, ok := g.At(coord)
	if !ok || w == nil {
		return c, false
	}
	if w.Select(env) {
		c.Selected = coord
		c.Selecting = true
	}
	return c, true
}

// Focus hovers and selects coord directly. The widget's Select is still
// called and decides whether the selection sticks.
func Focus(c Cursor, coord grid.Coord, g grid.Grid, ix grid.Index, env *widget.Env) Cursor {
	pos, ok := ix.Locate(coord)
	if !ok {
		return c
	}
	c.Hover = pos
	c.Hovering = true
	c.Selecting = false
	next, _ := Activate(c, g, ix, env)
	return next
}

// Deselect releases the selected cell.
func Deselect(c Cursor) Cursor {
	c.Selecting = false
	c.Selected = grid.Coord{}
	return c
}
