package state

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/cursor"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

func keyDown() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyDown} }

func sampleState() *ModelState {
	list := widget.NewItemListWith(widget.SourceTrending, []video.Item{{ID: "a"}, {ID: "b"}})
	g := grid.Grid{Rows: []grid.Row{
		{Cells: []grid.Cell{{Widget: widget.NewMainMenuTabs(page.Trending), Width: grid.Min(1)}}, Height: grid.Length(3)},
		{Cells: []grid.Cell{{Widget: list, Width: grid.Min(1)}}, Height: grid.Min(3)},
	}}
	return &ModelState{
		Page:           page.NewMainMenu(page.Trending),
		Grid:           g,
		Index:          grid.ComputeSelectability(g),
		Cursor:         cursor.Cursor{Hover: grid.Position{X: 0, Y: 1}, Hovering: true, Selected: grid.Coord{X: 0, Y: 1}, Selecting: true},
		Status:         "loaded 2 items",
		LoadingMessage: "Loading Trending...",
		MinWidth:       40,
		MinHeight:      12,
		Rendered:       true,
		History:        NewHistoryStack(),
	}
}

func TestHistory_PushPopRoundTrip(t *testing.T) {
	st := sampleState()
	before := *st
	shape := st.Grid.Shape()

	st.History.Push(st.Snapshot())

	// Navigate somewhere else and scribble over the live state.
	st.Page = page.NewVideo("v")
	st.Grid = grid.Grid{}
	st.Index = grid.ComputeSelectability(st.Grid)
	st.Cursor = cursor.Cursor{}
	st.Status = "other"
	st.Loading = true

	snap, ok := st.History.Pop()
	require.True(t, ok)
	st.Restore(snap)

	assert.Equal(t, before.Page, st.Page)
	assert.Equal(t, shape, st.Grid.Shape())
	assert.Equal(t, before.Cursor, st.Cursor)
	assert.Equal(t, before.Status, st.Status)
	assert.Equal(t, before.Loading, st.Loading)
	assert.Equal(t, before.LoadingMessage, st.LoadingMessage)
	assert.Equal(t, before.Index.GridRows(), st.Index.GridRows())
	assert.Equal(t, 0, st.History.Len())
}

func TestHistory_SnapshotIsIsolated(t *testing.T) {
	st := sampleState()
	st.History.Push(st.Snapshot())

	w, _ := st.Grid.At(grid.Coord{X: 0, Y: 1})
	w.KeyInput(keyDown(), &widget.Env{})
	require.Equal(t, 1, w.(*widget.ItemList).Cursor())

	snap, ok := st.History.Pop()
	require.True(t, ok)
	restored, _ := snap.Grid.At(grid.Coord{X: 0, Y: 1})
	assert.Equal(t, 0, restored.(*widget.ItemList).Cursor(), "snapshot keeps the pre-push scroll position")
	assert.NotEmpty(t, snap.ID)
}

func TestHistory_PopEmpty(t *testing.T) {
	h := NewHistoryStack()
	_, ok := h.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, h.Len())
}

func TestHistory_Clear(t *testing.T) {
	st := sampleState()
	st.History.Push(st.Snapshot())
	st.History.Push(st.Snapshot())
	require.Equal(t, 2, st.History.Len())

	current := st.Page
	st.History.Clear()
	assert.Equal(t, 0, st.History.Len())
	assert.Equal(t, current, st.Page)
}
