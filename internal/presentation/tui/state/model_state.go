package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/google/uuid"
	"github.com/ytgrid/ytgrid/internal/application/usecase"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/cursor"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
)

// ModelState holds the presentation state for the TUI. It is owned by the
// bubbletea model and only changed inside Update.
type ModelState struct {
	Page     page.Page
	Grid     grid.Grid
	Index    grid.Index
	Cursor   cursor.Cursor
	Status   string
	Provider usecase.ContentProvider

	DefaultSelection grid.Coord
	HasDefault       bool
	LoadingMessage   string
	MinWidth         int
	MinHeight        int
	Loading          bool
	Rendered         bool
	// LoadSeq identifies the pending page load; stale load messages are
	// dropped.
	LoadSeq int

	History *HistoryStack

	Keys    KeyMap
	Help    help.Model
	Spinner spinner.Model
	Width   int
	Height  int

	// Placements is the layout of the last frame, used for mouse hits.
	Placements []grid.Placement
}

// Snapshot is a complete copy of the page-related state.
type Snapshot struct {
	ID               string
	Page             page.Page
	Grid             grid.Grid
	Index            grid.Index
	Cursor           cursor.Cursor
	Status           string
	Provider         usecase.ContentProvider
	DefaultSelection grid.Coord
	HasDefault       bool
	LoadingMessage   string
	MinWidth         int
	MinHeight        int
	Loading          bool
	Rendered         bool
}

// Snapshot copies the current page state, cloning every widget.
func (s *ModelState) Snapshot() Snapshot {
	return Snapshot{
		ID:               uuid.NewString(),
		Page:             s.Page,
		Grid:             s.Grid.Clone(),
		Index:            s.Index.Clone(),
		Cursor:           s.Cursor,
		Status:           s.Status,
		Provider:         s.Provider,
		DefaultSelection: s.DefaultSelection,
		HasDefault:       s.HasDefault,
		LoadingMessage:   s.LoadingMessage,
		MinWidth:         s.MinWidth,
		MinHeight:        s.MinHeight,
		Loading:          s.Loading,
		Rendered:         s.Rendered,
	}
}

// Restore replaces every page-related field with the snapshot's.
func (s *ModelState) Restore(snap Snapshot) {
	s.Page = snap.Page
	s.Grid = snap.Grid
	s.Index = snap.Index
	s.Cursor = snap.Cursor
	s.Status = snap.Status
	s.Provider = snap.Provider
	s.DefaultSelection = snap.DefaultSelection
	s.HasDefault = snap.HasDefault
	s.LoadingMessage = snap.LoadingMessage
	s.MinWidth = snap.MinWidth
	s.MinHeight = snap.MinHeight
	s.Loading = snap.Loading
	s.Rendered = snap.Rendered
	s.Placements = nil
}
