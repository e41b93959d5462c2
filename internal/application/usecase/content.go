// Package usecase contains application-level services.
package usecase

import (
	"context"

	"github.com/ytgrid/ytgrid/internal/domain/video"
)

// ContentProvider fetches video metadata from a YouTube-compatible backend.
type ContentProvider interface {
	Trending(ctx context.Context) ([]video.Item, error)
	Popular(ctx context.Context) ([]video.Item, error)
	Search(ctx context.Context, query string, filters video.SearchFilters) ([]video.Item, error)
	Video(ctx context.Context, id string) (*video.Video, error)
	Playlist(ctx context.Context, id string) (*video.Playlist, error)
	Channel(ctx context.Context, id string, section video.ChannelSection) (*video.Channel, error)
}
