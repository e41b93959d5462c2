package update

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/infrastructure/command"
	"github.com/ytgrid/ytgrid/internal/infrastructure/invidious"
	"github.com/ytgrid/ytgrid/internal/infrastructure/thumbnail"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/cursor"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/grid"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/state"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/widget"
)

type stubProvider struct {
	mock.Mock
	trending    []video.Item
	trendingErr error
	videos      map[string]*video.Video
}

func (s *stubProvider) Trending(context.Context) ([]video.Item, error) {
	return s.trending, s.trendingErr
}

func (s *stubProvider) Popular(context.Context) ([]video.Item, error) {
	return s.trending, nil
}

func (s *stubProvider) Search(context.Context, string, video.SearchFilters) ([]video.Item, error) {
	return nil, nil
}

func (s *stubProvider) Video(_ context.Context, id string) (*video.Video, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(id)
		v, _ := args.Get(0).(*video.Video)
		return v, args.Error(1)
	}
	if v, ok := s.videos[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("video %s: %w", id, invidious.ErrNotFound)
}

func (s *stubProvider) Playlist(_ context.Context, id string) (*video.Playlist, error) {
	return nil, fmt.Errorf("playlist %s: %w", id, invidious.ErrNotFound)
}

func (s *stubProvider) Channel(_ context.Context, id string, _ video.ChannelSection) (*video.Channel, error) {
	return nil, fmt.Errorf("channel %s: %w", id, invidious.ErrNotFound)
}

type stubWatch struct {
	recorded []string
}

func (s *stubWatch) RecordVideo(v *video.Video) error {
	s.recorded = append(s.recorded, v.ID)
	return nil
}

func (s *stubWatch) RecordPlaylist(p *video.Playlist) error {
	s.recorded = append(s.recorded, p.ID)
	return nil
}

func (s *stubWatch) Items() []video.Item { return nil }

type stubFetcher struct {
	reqs []thumbnail.Request
}

func (s *stubFetcher) Fetch(_ context.Context, reqs []thumbnail.Request) ([]string, error) {
	s.reqs = append(s.reqs, reqs...)
	ids := make([]string, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	return ids, nil
}

func keyConfig() settings.KeyMapConfig {
	return settings.KeyMapConfig{
		Up:           "up,k",
		Down:         "down,j",
		Left:         "left,h",
		Right:        "right,l",
		Select:       "enter",
		Deselect:     "esc",
		Back:         "backspace",
		ClearHistory: "X",
		Reload:       "ctrl+r,f5",
		Quit:         "q",
		Help:         "?",
		Filter:       "/",
	}
}

func newTestState() *state.ModelState {
	return &state.ModelState{
		History: state.NewHistoryStack(),
		Keys:    state.NewKeyMap(keyConfig()),
		Help:    help.New(),
		Spinner: spinner.New(),
		Width:   100,
		Height:  40,
	}
}

func sampleItems() []video.Item {
	return []video.Item{
		{ID: "a1", Title: "Learning Go concurrency", Author: "Gopher", AuthorID: "UCgo", Thumbnail: "https://img/a1.jpg"},
		{ID: "b2", Title: "Rust for beginners", Author: "Crab", Thumbnail: "https://img/b2.jpg"},
		{ID: "c3", Kind: video.KindPlaylist, Title: "Go talks", Author: "Gopher"},
	}
}

func newDeps() (Deps, *stubProvider, *stubWatch) {
	items := sampleItems()
	provider := &stubProvider{
		trending: items,
		videos: map[string]*video.Video{
			"a1": {Item: items[0], Description: "goroutines"},
			"b2": {Item: items[1], Description: "ownership"},
		},
	}
	watch := &stubWatch{}
	return Deps{
		Provider: provider,
		Watch:    watch,
		Commands: settings.DefaultCommands(),
		Now:      func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}, provider, watch
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEscape}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	down      = tea.KeyMsg{Type: tea.KeyDown}
	right     = tea.KeyMsg{Type: tea.KeyRight}
)

// startLoaded starts p and completes its load.
func startLoaded(t *testing.T, s *state.ModelState, p page.Page, deps Deps) {
	t.Helper()
	require.NotNil(t, Start(s, p, deps))
	require.True(t, s.Loading)
	HandleLoadPageMsg(s, LoadPageMsg{Seq: s.LoadSeq}, deps)
	require.False(t, s.Loading)
}

func finishLoad(t *testing.T, s *state.ModelState, deps Deps) {
	t.Helper()
	require.True(t, s.Loading)
	HandleLoadPageMsg(s, LoadPageMsg{Seq: s.LoadSeq}, deps)
	require.False(t, s.Loading)
}

func listAt(t *testing.T, s *state.ModelState, c grid.Coord) *widget.ItemList {
	t.Helper()
	w, ok := s.Grid.At(c)
	require.True(t, ok)
	list, ok := w.(*widget.ItemList)
	require.True(t, ok, "cell %v is %T", c, w)
	return list
}

func TestStart_ShowsLoadingFrameThenLoads(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()

	Start(s, page.NewMainMenu(page.Trending), deps)
	assert.True(t, s.Loading)
	assert.Equal(t, "Loading Trending...", s.LoadingMessage)
	assert.Equal(t, 0, s.History.Len())
	assert.False(t, listAt(t, s, grid.Coord{X: 0, Y: 2}).Focusable())

	HandleLoadPageMsg(s, LoadPageMsg{Seq: s.LoadSeq}, deps)

	assert.False(t, s.Loading)
	assert.True(t, s.Rendered)
	assert.Empty(t, s.Status)
	assert.Len(t, listAt(t, s, grid.Coord{X: 0, Y: 2}).Items(), 3)
	assert.True(t, s.Cursor.Selecting)
	assert.Equal(t, grid.Coord{X: 0, Y: 2}, s.Cursor.Selected)
	assert.NotEmpty(t, s.Placements)
}

func TestHandleLoadPageMsg_IgnoresStaleLoads(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()

	Start(s, page.NewMainMenu(page.Trending), deps)
	stale := s.LoadSeq
	Start(s, page.NewMainMenu(page.Popular), deps)

	assert.Nil(t, HandleLoadPageMsg(s, LoadPageMsg{Seq: stale}, deps))
	assert.True(t, s.Loading, "a stale message must not finish the current load")
}

func TestRunLoads_IsolatesFailures(t *testing.T) {
	deps, provider, _ := newDeps()
	provider.trendingErr = errors.New("instance down")

	g := grid.Grid{Rows: []grid.Row{{
		Cells: []grid.Cell{
			{Widget: widget.NewItemList(widget.SourcePopular), Width: grid.Min(1)},
			{Widget: widget.NewItemList(widget.SourceTrending), Width: grid.Min(1)},
			{Widget: widget.NewItemList(widget.SourceHistory), Width: grid.Min(1)},
		},
		Height: grid.Min(1),
	}}}
	failed, _ := g.At(grid.Coord{X: 1, Y: 0})

	errs := RunLoads(g, widget.LoadContext{Page: page.Default(), Provider: provider, Watch: deps.Watch})

	require.Len(t, errs, 1)
	assert.Equal(t, grid.Coord{X: 1, Y: 0}, errs[0].Coord)
	assert.ErrorContains(t, errs[0], "instance down")

	first, _ := g.At(grid.Coord{X: 0, Y: 0})
	assert.Len(t, first.(*widget.ItemList).Items(), 3)
	second, _ := g.At(grid.Coord{X: 1, Y: 0})
	assert.Same(t, failed, second, "failed cell keeps its placeholder")
	third, _ := g.At(grid.Coord{X: 2, Y: 0})
	assert.NotSame(t, failed, third)
}

func TestHandleLoadPageMsg_FailedCellSetsStatus(t *testing.T) {
	s := newTestState()
	deps, provider, _ := newDeps()
	provider.trendingErr = &invidious.APIError{Status: http.StatusServiceUnavailable, Endpoint: "/api/v1/trending"}

	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)

	assert.Contains(t, s.Status, "Request failed (503)")
	assert.False(t, s.Cursor.Selecting, "the failed list cannot take the default selection")
	assert.True(t, s.Cursor.Hovering)
	assert.Equal(t, grid.Position{}, s.Cursor.Hover)
	assert.Equal(t, []int{0, 1}, s.Index.GridRows())
}

func TestLoadStatus_CountsExtraFailures(t *testing.T) {
	errs := []CellError{
		{Coord: grid.Coord{X: 0, Y: 1}, Err: errors.New("first")},
		{Coord: grid.Coord{X: 1, Y: 1}, Err: errors.New("second")},
	}
	assert.Equal(t, "Error: first (and 1 more)", loadStatus(errs))
	assert.Empty(t, loadStatus(nil))
}

func TestTransition_BackRestoresPreviousPage(t *testing.T) {
	s := newTestState()
	deps, _, watch := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)

	HandleKeyMsg(s, down, deps)
	require.Equal(t, 1, listAt(t, s, grid.Coord{X: 0, Y: 2}).Cursor())
	before := s.Cursor

	cmd, handled := HandleKeyMsg(s, enter, deps)
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, page.NewVideo("b2"), s.Page)
	assert.Equal(t, 1, s.History.Len())
	assert.Equal(t, "Loading video...", s.LoadingMessage)

	finishLoad(t, s, deps)
	assert.Equal(t, []string{"b2"}, watch.recorded)
	assert.Equal(t, grid.Coord{X: 1, Y: 1}, s.Cursor.Selected, "actions take the default selection")

	HandleKeyMsg(s, esc, deps)
	assert.False(t, s.Cursor.Selecting)
	HandleKeyMsg(s, backspace, deps)

	assert.Equal(t, page.NewMainMenu(page.Trending), s.Page)
	assert.Equal(t, before, s.Cursor)
	assert.Equal(t, 1, listAt(t, s, grid.Coord{X: 0, Y: 2}).Cursor(), "scroll position is restored")
	assert.False(t, s.Loading)
	assert.Equal(t, 0, s.History.Len())
	assert.NotEmpty(t, s.Placements)
}

func TestBack_EmptyHistoryKeepsState(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	HandleKeyMsg(s, esc, deps)
	shape := s.Grid.Shape()
	cur := s.Cursor

	cmd, handled := HandleKeyMsg(s, backspace, deps)

	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, state.BeginningOfHistory, s.Status)
	assert.Equal(t, page.NewMainMenu(page.Trending), s.Page)
	assert.Equal(t, shape, s.Grid.Shape())
	assert.Equal(t, cur, s.Cursor)
}

func TestForwardedKeys_OnlyReachSelectedCell(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	hover := s.Cursor.Hover

	HandleKeyMsg(s, down, deps)
	assert.Equal(t, 1, listAt(t, s, grid.Coord{X: 0, Y: 2}).Cursor())
	assert.Equal(t, hover, s.Cursor.Hover, "the grid cursor does not move while a cell is selected")

	cmd, handled := HandleKeyMsg(s, runes("q"), deps)
	assert.True(t, handled)
	assert.Nil(t, cmd, "quit is not a global key while a cell is selected")

	HandleKeyMsg(s, right, deps)
	tabs, _ := s.Grid.At(grid.Coord{X: 0, Y: 1})
	env := widget.NewEnv(s.Keys.Widget)
	tabs.KeyInput(enter, env)
	next, ok := env.Next()
	require.True(t, ok)
	assert.Equal(t, page.NewMainMenu(page.Trending), next, "tabs never saw the right key")
}

func TestHandleKeyMsg_ForceQuitWhileSelected(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	require.True(t, s.Cursor.Selecting)

	cmd, handled := HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyCtrlC}, deps)
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHandleKeyMsg_MovementAndSelect(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	HandleKeyMsg(s, esc, deps)

	HandleKeyMsg(s, runes("k"), deps)
	assert.Equal(t, grid.Position{X: 0, Y: 1}, s.Cursor.Hover)

	HandleKeyMsg(s, enter, deps)
	assert.True(t, s.Cursor.Selecting)
	assert.Equal(t, grid.Coord{X: 0, Y: 1}, s.Cursor.Selected)

	HandleKeyMsg(s, right, deps)
	_, _ = HandleKeyMsg(s, enter, deps)
	assert.Equal(t, page.NewMainMenu(page.Popular), s.Page)
	assert.Equal(t, 1, s.History.Len())
}

func TestHandleKeyMsg_SelectWithoutHover(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	s.Cursor = cursor.Cursor{}

	HandleKeyMsg(s, enter, deps)
	assert.Equal(t, "Nothing to select", s.Status)
	assert.False(t, s.Cursor.Selecting)
}

func TestHandleKeyMsg_ClearHistoryKeepsPage(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	HandleKeyMsg(s, enter, deps)
	finishLoad(t, s, deps)
	HandleKeyMsg(s, esc, deps)
	require.Equal(t, 1, s.History.Len())
	current := s.Page

	HandleKeyMsg(s, runes("X"), deps)

	assert.Equal(t, 0, s.History.Len())
	assert.Equal(t, current, s.Page)
	assert.False(t, s.Loading)
}

func TestHandleKeyMsg_ReloadDoesNotPush(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	HandleKeyMsg(s, esc, deps)
	seq := s.LoadSeq

	cmd, handled := HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyCtrlR}, deps)

	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, s.Loading)
	assert.Equal(t, seq+1, s.LoadSeq)
	assert.Equal(t, 0, s.History.Len())
	finishLoad(t, s, deps)
}

func TestHandleKeyMsg_HelpOverlaySwallowsKeys(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	HandleKeyMsg(s, esc, deps)

	HandleKeyMsg(s, runes("?"), deps)
	require.True(t, s.Help.ShowAll)
	hover := s.Cursor.Hover

	HandleKeyMsg(s, runes("k"), deps)
	assert.Equal(t, hover, s.Cursor.Hover)

	HandleKeyMsg(s, esc, deps)
	assert.False(t, s.Help.ShowAll)
}

func TestHandleKeyMsg_IgnoresKeysWhileLoading(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	Start(s, page.NewMainMenu(page.Trending), deps)

	_, handled := HandleKeyMsg(s, runes("k"), deps)
	assert.False(t, handled)

	cmd, handled := HandleKeyMsg(s, runes("q"), deps)
	require.True(t, handled)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHandleMouseMsg_ClickFocusesCell(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)

	var tabs grid.Rect
	for _, p := range s.Placements {
		if p.Coord == (grid.Coord{X: 0, Y: 1}) {
			tabs = p.Rect
		}
	}
	require.Positive(t, tabs.Width)
	click := tea.MouseMsg{X: tabs.X + 1, Y: tabs.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}

	HandleMouseMsg(s, click, deps)
	assert.Equal(t, grid.Coord{X: 0, Y: 2}, s.Cursor.Selected, "clicks elsewhere are ignored while a cell is selected")

	HandleKeyMsg(s, esc, deps)
	HandleMouseMsg(s, click, deps)
	assert.True(t, s.Cursor.Selecting)
	assert.Equal(t, grid.Coord{X: 0, Y: 1}, s.Cursor.Selected)
	assert.Equal(t, grid.Position{X: 0, Y: 1}, s.Cursor.Hover)
}

func TestHandleMouseMsg_ClickOnSelectedCellActivatesIt(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)
	require.True(t, s.Cursor.Selecting)

	var list grid.Rect
	for _, p := range s.Placements {
		if p.Coord == (grid.Coord{X: 0, Y: 2}) {
			list = p.Rect
		}
	}
	require.Positive(t, list.Width)

	cmd := HandleMouseMsg(s, tea.MouseMsg{X: list.X + 1, Y: list.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, deps)
	assert.NotNil(t, cmd)
	assert.Equal(t, page.NewVideo("a1"), s.Page, "the list opens its current item")
	assert.True(t, s.Loading)
	assert.Equal(t, 1, s.History.Len())
}

func TestHandleMouseMsg_WheelScrollsSelectedCell(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)

	var list grid.Rect
	for _, p := range s.Placements {
		if p.Coord == (grid.Coord{X: 0, Y: 2}) {
			list = p.Rect
		}
	}
	HandleMouseMsg(s, tea.MouseMsg{X: list.X + 1, Y: list.Y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, deps)
	assert.Equal(t, 1, listAt(t, s, grid.Coord{X: 0, Y: 2}).Cursor())
}

func TestUpdateLayout_TooSmall(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	startLoaded(t, s, page.NewMainMenu(page.Trending), deps)

	HandleWindowSize(s, tea.WindowSizeMsg{Width: 30, Height: 40})
	assert.True(t, TooSmall(s))
	assert.Empty(t, s.Placements)

	HandleWindowSize(s, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.False(t, TooSmall(s))
	require.NotEmpty(t, s.Placements)
	for _, p := range s.Placements {
		assert.LessOrEqual(t, p.Rect.Y+p.Rect.Height, 24-1, "the footer line stays free")
	}
}

func TestMemoProvider_FetchesOncePerLoad(t *testing.T) {
	s := newTestState()
	deps, provider, _ := newDeps()
	v := &video.Video{Item: video.Item{ID: "a1", Title: "Learning Go concurrency"}}
	provider.On("Video", "a1").Return(v, nil).Once()

	startLoaded(t, s, page.NewVideo("a1"), deps)

	provider.AssertNumberOfCalls(t, "Video", 1)
	assert.Empty(t, s.Status)
	assert.True(t, s.Cursor.Selecting)
}

func TestHandleLoadPageMsg_FetchesThumbnails(t *testing.T) {
	s := newTestState()
	deps, _, _ := newDeps()
	fetcher := &stubFetcher{}
	deps.Thumbnails = fetcher

	Start(s, page.NewMainMenu(page.Trending), deps)
	cmd := HandleLoadPageMsg(s, LoadPageMsg{Seq: s.LoadSeq}, deps)
	require.NotNil(t, cmd)

	msg, ok := cmd().(ThumbnailsFetchedMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"a1", "b2"}, msg.IDs, "items without a thumbnail are skipped")
	HandleThumbnailsFetchedMsg(msg)
}

func TestRunAction_Commands(t *testing.T) {
	var ran []string
	runner := func(_ context.Context, name string, args []string) (string, string, error) {
		ran = append(ran, name+" "+strings.Join(args, " "))
		return "", "", nil
	}
	deps, _, _ := newDeps()
	deps.Executor = command.NewExecutorWithRunner(command.Config{}, runner, nil)
	deps.DownloadDir = "/tmp/videos"
	item := sampleItems()[0]

	t.Run("unknown token", func(t *testing.T) {
		s := newTestState()
		cmd := runAction(s, widget.Action{
			Kind:    widget.RunCommand,
			Command: settings.CommandConfig{Label: "Broken", Template: "mpv ${nope}"},
			Item:    item,
		}, deps)
		assert.Nil(t, cmd)
		assert.Contains(t, s.Status, "${nope}")
		assert.Empty(t, ran)
	})

	t.Run("detached", func(t *testing.T) {
		s := newTestState()
		cmd := runAction(s, widget.Action{
			Kind:    widget.RunCommand,
			Command: settings.CommandConfig{Label: "Download", Template: "yt-dlp -P '${download_dir}' '${url}'", Detached: true},
			Item:    item,
		}, deps)
		require.NotNil(t, cmd)
		assert.Equal(t, "Started Download", s.Status)

		msg, ok := cmd().(CommandFinishedMsg)
		require.True(t, ok)
		require.NoError(t, msg.Err)
		require.Len(t, ran, 1)
		assert.Contains(t, ran[0], "/tmp/videos")

		HandleCommandFinishedMsg(s, msg)
		assert.Equal(t, "Download: done", s.Status)
	})

	t.Run("foreground", func(t *testing.T) {
		s := newTestState()
		cmd := runAction(s, widget.Action{
			Kind:    widget.RunCommand,
			Command: settings.CommandConfig{Label: "Play", Template: "mpv '${url}'"},
			Item:    item,
		}, deps)
		assert.NotNil(t, cmd)
	})
}

func TestRunAction_CopyAndBrowse(t *testing.T) {
	var copied, opened string
	deps, _, _ := newDeps()
	deps.CopyText = func(s string) error { copied = s; return nil }
	deps.OpenBrowser = func(s string) error { opened = s; return errors.New("no display") }
	item := sampleItems()[0]
	s := newTestState()

	runAction(s, widget.Action{Kind: widget.CopyLink, Item: item}, deps)
	assert.Equal(t, item.URL(), copied)
	assert.Equal(t, "Copied "+item.URL(), s.Status)

	runAction(s, widget.Action{Kind: widget.OpenBrowser, Item: item}, deps)
	assert.Equal(t, item.URL(), opened)
	assert.Equal(t, "Error: no display", s.Status)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  fmt.Errorf("load video x: %w", &invidious.APIError{Status: http.StatusNotFound, Endpoint: "/api/v1/videos/x"}),
			want: "Not found: ",
		},
		{
			name: "rate limited",
			err:  &invidious.APIError{Status: http.StatusTooManyRequests, Endpoint: "/api/v1/trending"},
			want: "rate limiting",
		},
		{
			name: "server error",
			err:  &invidious.APIError{Status: http.StatusBadGateway, Endpoint: "/api/v1/trending"},
			want: "Request failed (502)",
		},
		{
			name: "unknown token",
			err:  fmt.Errorf("%w: ${x}", command.ErrUnknownToken),
			want: "Bad command template",
		},
		{
			name: "timeout",
			err:  fmt.Errorf("get: %w", context.DeadlineExceeded),
			want: "Request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, statusFromError(tt.err), tt.want)
		})
	}
}
