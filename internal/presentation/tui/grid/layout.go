package grid

// Rect is a terminal area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Placement is the area assigned to one cell.
type Placement struct {
	Coord Coord
	Rect  Rect
}

// Split resolves constraints against avail. Length and Percentage take
// their size, Min takes its minimum, Max starts at zero; the remaining space
// is then shared equally among Min and Max entries, Max never exceeding its
// value. When the sizes add up to more than avail the trailing entries are
// truncated.
func Split(avail int, cs []Constraint) []int {
	avail = max(avail, 0)
	sizes := make([]int, len(cs))
	used := 0
	for i, c := range cs {
		switch c.Kind {
		case KindLength, KindMin:
			sizes[i] = max(c.Value, 0)
		case KindPercentage:
			sizes[i] = avail * max(c.Value, 0) / 100
		case KindMax:
			sizes[i] = 0
		}
		used += sizes[i]
	}

	leftover := avail - used
	for leftover > 0 {
		var open []int
		for i, c := range cs {
			switch {
			case c.Kind == KindMin:
				open = append(open, i)
			case c.Kind == KindMax && sizes[i] < c.Value:
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			break
		}
		share, extra := leftover/len(open), leftover%len(open)
		given := 0
		for n, i := range open {
			add := share
			if n < extra {
				add++
			}
			if cs[i].Kind == KindMax {
				add = min(add, cs[i].Value-sizes[i])
			}
			sizes[i] += add
			given += add
		}
		if given == 0 {
			break
		}
		leftover -= given
	}

	return truncate(sizes, avail)
}

func truncate(sizes []int, avail int) []int {
	pos := 0
	for i, size := range sizes {
		sizes[i] = max(min(size, avail-pos), 0)
		pos += sizes[i]
	}
	return sizes
}

// natural returns the unstretched width of c.
func natural(avail int, c Constraint) int {
	if c.Kind == KindPercentage {
		return avail * max(c.Value, 0) / 100
	}
	return max(c.Value, 0)
}

// CenterSpacer returns the leading spacer of a centered row whose cells
// need sum columns. It never goes below zero.
func CenterSpacer(avail, sum int) int {
	return max(0, (avail-sum)/2)
}

// Layout assigns a rectangle to every cell of g inside area.
func Layout(g Grid, area Rect) []Placement {
	heights := make([]Constraint, len(g.Rows))
	for y, row := range g.Rows {
		heights[y] = row.Height
	}
	rowHeights := Split(area.Height, heights)

	var out []Placement
	top := area.Y
	for y, row := range g.Rows {
		var widths []int
		left := area.X
		if row.Centered {
			widths = make([]int, len(row.Cells))
			sum := 0
			for x, cell := range row.Cells {
				widths[x] = natural(area.Width, cell.Width)
				sum += widths[x]
			}
			spacer := CenterSpacer(area.Width, sum)
			left += spacer
			widths = truncate(widths, area.Width-spacer)
		} else {
			cs := make([]Constraint, len(row.Cells))
			for x, cell := range row.Cells {
				cs[x] = cell.Width
			}
			widths = Split(area.Width, cs)
		}

		for x, width := range widths {
			out = append(out, Placement{
				Coord: Coord{X: x, Y: y},
				Rect:  Rect{X: left, Y: top, Width: width, Height: rowHeights[y]},
			})
			left += width
		}
		top += rowHeights[y]
	}
	return out
}

// Hit returns the cell whose placement contains (x, y).
func Hit(placements []Placement, x, y int) (Coord, bool) {
	for _, p := range placements {
		if p.Rect.Width > 0 && p.Rect.Height > 0 && p.Rect.Contains(x, y) {
			return p.Coord, true
		}
	}
	return Coord{}, false
}
