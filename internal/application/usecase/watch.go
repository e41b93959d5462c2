package usecase

import (
	"time"

	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/domain/watch"
)

// HistoryRepository abstracts watch history persistence.
type HistoryRepository interface {
	Load() ([]watch.Entry, error)
	Save(entries []watch.Entry) error
}

// WatchService owns the in-memory watch history and persists every change.
type WatchService struct {
	Repo    HistoryRepository
	Now     func() time.Time
	history *watch.History
}

// NewWatchService constructs a WatchService with an empty history.
func NewWatchService(repo HistoryRepository, limit int, now func() time.Time) *WatchService {
	return &WatchService{
		Repo:    repo,
		Now:     now,
		history: watch.NewHistory(nil, limit),
	}
}

// Load replaces the in-memory history with the persisted one.
func (s *WatchService) Load() error {
	if s.Repo == nil {
		return nil
	}
	entries, err := s.Repo.Load()
	if err != nil {
		return err
	}
	s.history = watch.NewHistory(entries, s.history.Limit())
	return nil
}

// RecordVideo records a displayed video.
func (s *WatchService) RecordVideo(v *video.Video) error {
	if v == nil {
		return nil
	}
	detail := *v
	return s.record(watch.Entry{Item: v.Item, Video: &detail})
}

// RecordPlaylist records a displayed playlist.
func (s *WatchService) RecordPlaylist(p *video.Playlist) error {
	if p == nil {
		return nil
	}
	detail := *p
	return s.record(watch.Entry{Item: p.Item, Playlist: &detail})
}

func (s *WatchService) record(e watch.Entry) error {
	e.WatchedAt = s.now()
	s.history.Record(e)
	return s.Save()
}

// Items returns the watched items, most recent first.
func (s *WatchService) Items() []video.Item {
	return s.history.Items()
}

// Save persists the current history.
func (s *WatchService) Save() error {
	if s.Repo == nil {
		return nil
	}
	return s.Repo.Save(s.history.Entries())
}

func (s *WatchService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
