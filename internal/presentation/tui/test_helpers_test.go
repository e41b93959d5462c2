package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/application/usecase"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/domain/watch"
	"github.com/ytgrid/ytgrid/internal/infrastructure/invidious"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/update"
)

type stubProvider struct {
	mock.Mock
	trending  []video.Item
	videos    map[string]*video.Video
	playlists map[string]*video.Playlist
}

func (s *stubProvider) Trending(context.Context) ([]video.Item, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called()
		items, _ := args.Get(0).([]video.Item)
		return items, args.Error(1)
	}
	return s.trending, nil
}

func (s *stubProvider) Popular(context.Context) ([]video.Item, error) {
	return s.trending, nil
}

func (s *stubProvider) Search(_ context.Context, query string, _ video.SearchFilters) ([]video.Item, error) {
	var out []video.Item
	for _, item := range s.trending {
		if item.Title == query {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubProvider) Video(_ context.Context, id string) (*video.Video, error) {
	if v, ok := s.videos[id]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("video %s: %w", id, invidious.ErrNotFound)
}

func (s *stubProvider) Playlist(_ context.Context, id string) (*video.Playlist, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(id)
		p, _ := args.Get(0).(*video.Playlist)
		return p, args.Error(1)
	}
	if p, ok := s.playlists[id]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("playlist %s: %w", id, invidious.ErrNotFound)
}

func (s *stubProvider) Channel(_ context.Context, id string, _ video.ChannelSection) (*video.Channel, error) {
	return nil, fmt.Errorf("channel %s: %w", id, invidious.ErrNotFound)
}

type stubHistoryRepo struct {
	mock.Mock
	saved []watch.Entry
}

func (s *stubHistoryRepo) Load() ([]watch.Entry, error) {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called()
		entries, _ := args.Get(0).([]watch.Entry)
		return entries, args.Error(1)
	}
	return nil, nil
}

func (s *stubHistoryRepo) Save(entries []watch.Entry) error {
	if len(s.ExpectedCalls) > 0 {
		args := s.Called(entries)
		return args.Error(0)
	}
	s.saved = append([]watch.Entry(nil), entries...)
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		HistoryLimit: 50,
		KeyMap: settings.KeyMapConfig{
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
		},
		Theme: settings.ThemeConfig{
			Hover:    "63",
			Selected: "205",
			Accent:   "212",
			Muted:    "244",
		},
	}.WithDefaultCommands()
}

func sampleProvider() *stubProvider {
	items := []video.Item{
		{ID: "a1", Title: "Learning Go concurrency", Author: "Gopher", AuthorID: "UCgo"},
		{ID: "b2", Title: "Rust for beginners", Author: "Crab"},
		{ID: "pl1", Kind: video.KindPlaylist, Title: "Go talks", Author: "Gopher", VideoCount: 2},
	}
	return &stubProvider{
		trending: items,
		videos: map[string]*video.Video{
			"a1": {Item: items[0], Description: "Goroutines and channels."},
			"b2": {Item: items[1], Description: "Ownership."},
		},
		playlists: map[string]*video.Playlist{
			"pl1": {Item: items[2], Videos: items[:2]},
		},
	}
}

func newTestModel(provider usecase.ContentProvider, repo usecase.HistoryRepository, initial page.Page) (*Model, *usecase.WatchService) {
	cfg := testSettings()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	now := func() time.Time { return fixed }
	watchSvc := usecase.NewWatchService(repo, cfg.HistoryLimit, now)
	deps := update.Deps{
		Provider: provider,
		Watch:    watchSvc,
		Commands: cfg.Commands,
		Now:      now,
	}
	return NewModel(cfg, initial, deps, nil), watchSvc
}
