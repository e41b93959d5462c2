// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	// FooterLines is the height of the help line under the grid.
	FooterLines = 1
	// CellFrame is the horizontal and vertical space a cell border takes.
	CellFrame = 2
)
