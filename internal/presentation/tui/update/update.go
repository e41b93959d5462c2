// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/application/usecase"
	"github.com/ytgrid/ytgrid/internal/infrastructure/command"
	"github.com/ytgrid/ytgrid/internal/infrastructure/thumbnail"
	"github.com/ytgrid/ytgrid/internal/logger"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/cursor"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/intent"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/templates"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

// CommandExecutor prepares and runs configured external commands.
type CommandExecutor interface {
	Prepare(cfg settings.CommandConfig, vars command.Vars) (command.Prepared, error)
	RunDetached(ctx context.Context, p command.Prepared) error
}

// ThumbnailFetcher downloads thumbnails into the local cache.
type ThumbnailFetcher interface {
	Fetch(ctx context.Context, reqs []thumbnail.Request) ([]string, error)
}

// Deps groups external dependencies for updates.
type Deps struct {
	Provider    usecase.ContentProvider
	Watch       widget.WatchRecorder
	Commands    settings.CommandsConfig
	DownloadDir string
	Executor    CommandExecutor
	Thumbnails  ThumbnailFetcher
	CopyText    func(string) error
	OpenBrowser func(string) error
	Now         func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// LoadPageMsg asks the loop to load the cells of the current page. It is
// sent after the loading frame has been drawn.
type LoadPageMsg struct {
	Seq int
}

// ThumbnailsFetchedMsg is emitted after a thumbnail download batch.
type ThumbnailsFetchedMsg struct {
	IDs []string
	Err error
}

// Start shows p as the first page. Nothing is pushed on the history.
func Start(s *state.ModelState, p page.Page, deps Deps) tea.Cmd {
	s.Provider = deps.Provider
	logger.Info("start on %s", p)
	return startPage(s, p)
}

// Transition saves the current page on the history and moves to next.
func Transition(s *state.ModelState, next page.Page, deps Deps) tea.Cmd {
	s.History.Push(s.Snapshot())
	if s.Provider == nil {
		s.Provider = deps.Provider
	}
	logger.Info("navigate %s -> %s", s.Page, next)
	return startPage(s, next)
}

func startPage(s *state.ModelState, p page.Page) tea.Cmd {
	tpl := templates.Build(p)

	s.Page = p
	s.Grid = tpl.Grid
	s.Index = grid.ComputeSelectability(s.Grid)
	s.Cursor = cursor.Cursor{}
	s.DefaultSelection = tpl.DefaultSelection
	s.HasDefault = tpl.HasDefault
	s.LoadingMessage = tpl.LoadingMessage
	s.MinWidth = tpl.MinWidth
	s.MinHeight = tpl.MinHeight
	s.Status = ""
	s.Loading = true
	s.Rendered = false
	s.LoadSeq++

	UpdateLayout(s)
	return tea.Batch(loadPageCmd(s.LoadSeq), s.Spinner.Tick)
}

func loadPageCmd(seq int) tea.Cmd {
	return func() tea.Msg {
		return LoadPageMsg{Seq: seq}
	}
}

// HandleLoadPageMsg loads every cell of the current page, then applies the
// page's default selection. Messages for a page that was left are ignored.
func HandleLoadPageMsg(s *state.ModelState, msg LoadPageMsg, deps Deps) tea.Cmd {
	if !s.Loading || msg.Seq != s.LoadSeq {
		return nil
	}

	lc := widget.LoadContext{
		Ctx:      context.Background(),
		Page:     s.Page,
		Provider: newMemoProvider(s.Provider),
		Watch:    deps.Watch,
		Commands: deps.Commands,
		Now:      deps.now(),
	}
	errs := RunLoads(s.Grid, lc)

	s.Index = grid.ComputeSelectability(s.Grid)
	s.Cursor = cursor.Clamp(s.Cursor, s.Index)
	s.Loading = false
	s.Rendered = true
	s.Status = loadStatus(errs)
	applyDefaultSelection(s)
	UpdateLayout(s)

	logger.Debug("loaded %s with %d failed cells", s.Page, len(errs))
	return fetchThumbnails(s, deps)
}

func loadStatus(errs []CellError) string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return statusFromError(errs[0].Err)
	default:
		return fmt.Sprintf("%s (and %d more)", statusFromError(errs[0].Err), len(errs)-1)
	}
}

func applyDefaultSelection(s *state.ModelState) {
	if s.HasDefault {
		s.Cursor = cursor.Focus(s.Cursor, s.DefaultSelection, s.Grid, s.Index, widget.NewEnv(s.Keys.Widget))
	}
	if !s.Cursor.Hovering && !s.Index.Empty() {
		s.Cursor.Hover = grid.Position{}
		s.Cursor.Hovering = true
	}
}

func fetchThumbnails(s *state.ModelState, deps Deps) tea.Cmd {
	if deps.Thumbnails == nil {
		return nil
	}
	reqs := thumbnailRequests(s.Grid)
	if len(reqs) == 0 {
		return nil
	}
	fetcher := deps.Thumbnails
	return func() tea.Msg {
		ids, err := fetcher.Fetch(context.Background(), reqs)
		return ThumbnailsFetchedMsg{IDs: ids, Err: err}
	}
}

func thumbnailRequests(g grid.Grid) []thumbnail.Request {
	seen := map[string]bool{}
	var reqs []thumbnail.Request
	g.Each(func(_ grid.Coord, w widget.Widget) {
		src, ok := w.(widget.ThumbnailSource)
		if !ok {
			return
		}
		for _, item := range src.Thumbnails() {
			if item.ID == "" || item.Thumbnail == "" || seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			reqs = append(reqs, thumbnail.Request{ID: item.ID, URL: item.Thumbnail})
		}
	})
	return reqs
}

// HandleThumbnailsFetchedMsg logs the outcome of a thumbnail batch. The
// next frame picks the new files up.
func HandleThumbnailsFetchedMsg(msg ThumbnailsFetchedMsg) {
	if msg.Err != nil {
		logger.Warn("thumbnails: %v", msg.Err)
		return
	}
	logger.Debug("thumbnails: cached %d", len(msg.IDs))
}

// HandleKeyMsg dispatches a key. While a cell is selected every key except
// the deselect key goes to that cell; otherwise the global key table applies.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if key.Matches(msg, s.Keys.ForceQuit) {
		return tea.Quit, true
	}
	if s.Help.ShowAll {
		return handleHelpView(s, msg)
	}
	if s.Loading {
		if key.Matches(msg, s.Keys.Quit) {
			return tea.Quit, true
		}
		return nil, false
	}
	if s.Cursor.Selecting && !key.Matches(msg, s.Keys.Deselect) {
		return forwardKey(s, msg, deps), true
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit, intent.ForceQuit:
		return tea.Quit, true
	case intent.ToggleHelp:
		s.Help.ShowAll = true
		return nil, true
	case intent.MoveUp:
		s.Cursor = cursor.Move(s.Cursor, cursor.Up, s.Index)
		return nil, true
	case intent.MoveDown:
		s.Cursor = cursor.Move(s.Cursor, cursor.Down, s.Index)
		return nil, true
	case intent.MoveLeft:
		s.Cursor = cursor.Move(s.Cursor, cursor.Left, s.Index)
		return nil, true
	case intent.MoveRight:
		s.Cursor = cursor.Move(s.Cursor, cursor.Right, s.Index)
		return nil, true
	case intent.Select:
		return selectHovered(s, deps), true
	case intent.Deselect:
		s.Cursor = cursor.Deselect(s.Cursor)
		return nil, true
	case intent.Back:
		return back(s), true
	case intent.ClearHistory:
		logger.Info("history cleared (%d pages)", s.History.Len())
		s.History.Clear()
		return nil, true
	case intent.Reload:
		logger.Info("reload %s", s.Page)
		return startPage(s, s.Page), true
	default:
		return nil, false
	}
}

func handleHelpView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, s.Keys.Help), key.Matches(msg, s.Keys.Deselect):
		s.Help.ShowAll = false
	case key.Matches(msg, s.Keys.Quit):
		return tea.Quit, true
	}
	return nil, true
}

func forwardKey(s *state.ModelState, msg tea.KeyMsg, deps Deps) tea.Cmd {
	w, ok := s.Grid.At(s.Cursor.Selected)
	if !ok || w == nil {
		s.Cursor = cursor.Deselect(s.Cursor)
		return nil
	}
	env := widget.NewEnv(s.Keys.Widget)
	if !w.KeyInput(msg, env) {
		logger.Debug("key %q ignored by cell (%d, %d)", msg.String(), s.Cursor.Selected.X, s.Cursor.Selected.Y)
	}
	return applyEnv(s, env, deps)
}

func selectHovered(s *state.ModelState, deps Deps) tea.Cmd {
	env := widget.NewEnv(s.Keys.Widget)
	next, ok := cursor.Activate(s.Cursor, s.Grid, s.Index, env)
	if !ok {
		s.Status = "Nothing to select"
		return nil
	}
	s.Cursor = next
	if !s.Cursor.Selecting {
		s.Status = "This cell has nothing to interact with"
	}
	return applyEnv(s, env, deps)
}

// applyEnv applies the effects a widget requested: status first, then
// external actions, then the page transition.
func applyEnv(s *state.ModelState, env *widget.Env, deps Deps) tea.Cmd {
	if msg := env.Status(); msg != "" {
		s.Status = msg
	}
	var cmds []tea.Cmd
	if actions := env.Actions(); len(actions) > 0 {
		cmds = append(cmds, runActions(s, actions, deps))
	}
	if next, ok := env.Next(); ok {
		cmds = append(cmds, Transition(s, next, deps))
	}
	return tea.Batch(cmds...)
}

func back(s *state.ModelState) tea.Cmd {
	snap, ok := s.History.Pop()
	if !ok {
		s.Status = state.BeginningOfHistory
		return nil
	}
	logger.Info("back %s -> %s", s.Page, snap.Page)
	s.Restore(snap)
	UpdateLayout(s)
	if s.Loading {
		s.LoadSeq++
		return tea.Batch(loadPageCmd(s.LoadSeq), s.Spinner.Tick)
	}
	return nil
}

// HandleMouseMsg handles clicks and wheel scrolling. A left click focuses
// the clicked cell the way the select key would; while a cell is selected
// only clicks on that cell count, and they reach it as enter. The wheel
// scrolls the selected cell.
func HandleMouseMsg(s *state.ModelState, msg tea.MouseMsg, deps Deps) tea.Cmd {
	if s.Loading || s.Help.ShowAll || msg.Action != tea.MouseActionPress {
		return nil
	}
	coord, ok := grid.Hit(s.Placements, msg.X, msg.Y)
	if !ok {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !s.Cursor.Selecting || coord != s.Cursor.Selected {
			return nil
		}
		k := tea.KeyMsg{Type: tea.KeyDown}
		if msg.Button == tea.MouseButtonWheelUp {
			k = tea.KeyMsg{Type: tea.KeyUp}
		}
		return forwardKey(s, k, deps)
	case tea.MouseButtonLeft:
		if s.Cursor.Selecting {
			if coord != s.Cursor.Selected {
				return nil
			}
			return forwardKey(s, tea.KeyMsg{Type: tea.KeyEnter}, deps)
		}
		env := widget.NewEnv(s.Keys.Widget)
		s.Cursor = cursor.Focus(s.Cursor, coord, s.Grid, s.Index, env)
		return applyEnv(s, env, deps)
	default:
		return nil
	}
}
