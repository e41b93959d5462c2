package grid

// Position addresses a focusable cell in index space: X is the position
// among the focusable cells of index row Y.
type Position struct {
	X, Y int
}

// Index lists the focusable cells of a grid row by row. Rows without a
// focusable cell are left out, so index rows and grid rows may differ.
type Index struct {
	rows [][]Coord
}

// ComputeSelectability builds the index of g.
func ComputeSelectability(g Grid) Index {
	var rows [][]Coord
	for y, row := range g.Rows {
		var focusable []Coord
		for x, cell := range row.Cells {
			if cell.Widget != nil && cell.Widget.Focusable() {
				focusable = append(focusable, Coord{X: x, Y: y})
			}
		}
		if len(focusable) > 0 {
			rows = append(rows, focusable)
		}
	}
	return Index{rows: rows}
}

// Rows returns the number of index rows.
func (ix Index) Rows() int { return len(ix.rows) }

// RowLen returns the number of focusable cells in index row y.
func (ix Index) RowLen(y int) int {
	if y < 0 || y >= len(ix.rows) {
		return 0
	}
	return len(ix.rows[y])
}

// Empty reports whether nothing is focusable.
func (ix Index) Empty() bool { return len(ix.rows) == 0 }

// Translate maps an index position to its grid coordinate.
func (ix Index) Translate(p Position) (Coord, bool) {
	if p.Y < 0 || p.Y >= len(ix.rows) {
		return Coord{}, false
	}
	row := ix.rows[p.Y]
	if p.X < 0 || p.X >= len(row) {
		return Coord{}, false
	}
	return row[p.X], true
}

// Locate maps a grid coordinate to its index position. It fails for cells
// that are not focusable.
func (ix Index) Locate(c Coord) (Position, bool) {
	for y, row := range ix.rows {
		for x, coord := range row {
			if coord == c {
				return Position{X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}

// GridRows returns the grid row of every index row.
func (ix Index) GridRows() []int {
	out := make([]int, len(ix.rows))
	for y, row := range ix.rows {
		out[y] = row[0].Y
	}
	return out
}

// Clone copies the index.
func (ix Index) Clone() Index {
	rows := make([][]Coord, len(ix.rows))
	for y, row := range ix.rows {
		rows[y] = append([]Coord(nil), row...)
	}
	return Index{rows: rows}
}
