package cursor

import (
	"testing"

	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

func tabs() widget.Widget { return widget.NewMainMenuTabs(page.Trending) }

func makeGrid(widths ...int) grid.Grid {
	var g grid.Grid
	for _, n := range widths {
		var r grid.Row
		for range n {
			r.Cells = append(r.Cells, grid.Cell{Widget: tabs(), Width: grid.Min(1)})
		}
		if n == 0 {
			r.Cells = append(r.Cells, grid.Cell{Widget: widget.NewMessageBar(), Width: grid.Min(1)})
		}
		g.Rows = append(g.Rows, r)
	}
	return g
}

func TestMove_FirstPress(t *testing.T) {
	ix := grid.ComputeSelectability(makeGrid(2, 3, 1))

	tests := []struct {
		dir  Direction
		want grid.Position
	}{
		{Up, grid.Position{X: 0, Y: 0}},
		{Left, grid.Position{X: 0, Y: 0}},
		{Down, grid.Position{X: 0, Y: 2}},
		{Right, grid.Position{X: 0, Y: 2}},
	}
	for _, tt := range tests {
		c := Move(Cursor{}, tt.dir, ix)
		if !c.Hovering || c.Hover != tt.want {
			t.Errorf("first %v = %+v, want %+v", tt.dir, c.Hover, tt.want)
		}
	}
}

func TestMove_ClampsColumnOnShorterRow(t *testing.T) {
	ix := grid.ComputeSelectability(makeGrid(5, 2))
	c := Cursor{Hover: grid.Position{X: 4, Y: 0}, Hovering: true}

	c = Move(c, Down, ix)
	if c.Hover != (grid.Position{X: 1, Y: 1}) {
		t.Fatalf("hover = %+v, want {1 1}", c.Hover)
	}

	c = Move(c, Down, ix)
	if c.Hover != (grid.Position{X: 1, Y: 1}) {
		t.Fatalf("down on last row moved to %+v", c.Hover)
	}
	c = Move(c, Right, ix)
	if c.Hover.X != 1 {
		t.Fatalf("right past the row end moved to %+v", c.Hover)
	}
	c = Move(Move(c, Left, ix), Left, ix)
	if c.Hover.X != 0 {
		t.Fatalf("left floors at 0, got %+v", c.Hover)
	}
	c = Move(Move(c, Up, ix), Up, ix)
	if c.Hover != (grid.Position{}) {
		t.Fatalf("up clamps at first row, got %+v", c.Hover)
	}
}

func TestMove_NeverLandsOnEmptyRow(t *testing.T) {
	g := makeGrid(1, 0, 0, 1)
	ix := grid.ComputeSelectability(g)
	c := Move(Cursor{}, Up, ix)
	c = Move(c, Down, ix)

	coord, ok := c.HoveredCell(ix)
	if !ok || coord.Y != 3 {
		t.Fatalf("down from row 0 landed on grid row %d", coord.Y)
	}
}

func TestMove_IgnoredWhileSelected(t *testing.T) {
	ix := grid.ComputeSelectability(makeGrid(2, 2))
	c := Cursor{Hovering: true, Selecting: true}
	if got := Move(c, Down, ix); got != c {
		t.Fatalf("moved while selected: %+v", got)
	}
}

func TestActivateAndDeselect(t *testing.T) {
	g := makeGrid(1, 0, 2)
	ix := grid.ComputeSelectability(g)
	env := &widget.Env{}

	if _, ok := Activate(Cursor{}, g, ix, env); ok {
		t.Fatal("activate without hover should fail")
	}

	c := Cursor{Hover: grid.Position{X: 1, Y: 1}, Hovering: true}
	c, ok := Activate(c, g, ix, env)
	if !ok || !c.Selecting || c.Selected != (grid.Coord{X: 1, Y: 2}) {
		t.Fatalf("activate = %+v, %v", c, ok)
	}

	c = Deselect(c)
	if c.Selecting || !c.Hovering {
		t.Fatalf("deselect = %+v", c)
	}
}

func TestActivate_RefusedFocus(t *testing.T) {
	g := grid.Grid{Rows: []grid.Row{{Cells: []grid.Cell{{Widget: widget.NewItemDetail(0, "x"), Width: grid.Min(1)}}}}}
	// an unloaded detail is not in the index, so pin the cursor by hand
	ix := grid.ComputeSelectability(makeGrid(1))
	c, ok := Activate(Cursor{Hovering: true}, g, ix, &widget.Env{})
	if !ok || c.Selecting {
		t.Fatalf("unloaded detail must refuse focus: %+v", c)
	}
}

func TestClamp(t *testing.T) {
	ix := grid.ComputeSelectability(makeGrid(3))
	c := Clamp(Cursor{Hover: grid.Position{X: 7, Y: 4}, Hovering: true}, ix)
	if c.Hover != (grid.Position{X: 2, Y: 0}) {
		t.Fatalf("clamp = %+v", c.Hover)
	}
	c = Clamp(c, grid.ComputeSelectability(grid.Grid{}))
	if c.Hovering {
		t.Fatal("clamp on empty index should clear hover")
	}
}

func TestFocus(t *testing.T) {
	g := makeGrid(1, 2)
	ix := grid.ComputeSelectability(g)
	c := Focus(Cursor{}, grid.Coord{X: 1, Y: 1}, g, ix, &widget.Env{})
	if !c.Selecting || c.Hover != (grid.Position{X: 1, Y: 1}) {
		t.Fatalf("focus = %+v", c)
	}
}
