// Package invidious implements the content provider on top of the Invidious
// REST API.
package invidious

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/infrastructure/retry"
	"github.com/ytgrid/ytgrid/internal/logger"
)

const maxErrorBody = 512

// UploadsSource lists channel uploads when the instance cannot.
type UploadsSource interface {
	ChannelUploads(ctx context.Context, channelID string) ([]video.Item, error)
}

// Client talks to one Invidious instance.
type Client struct {
	baseURL string
	http    *http.Client
	retry   retry.Config
	uploads UploadsSource
	region  string
}

// Option configures a Client.
type Option func(*Client)

// WithRetry replaces the retry configuration.
func WithRetry(cfg retry.Config) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithUploadsFallback sets the source used when channel uploads fail.
func WithUploadsFallback(src UploadsSource) Option {
	return func(c *Client) { c.uploads = src }
}

// WithRegion sets the trending region.
func WithRegion(region string) Option {
	return func(c *Client) { c.region = strings.ToUpper(strings.TrimSpace(region)) }
}

// NewClient creates a client for the instance at baseURL.
func NewClient(baseURL string, timeout time.Duration, retries int, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		retry:   retry.DefaultConfig(retries),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Trending returns the trending videos.
func (c *Client) Trending(ctx context.Context) ([]video.Item, error) {
	q := url.Values{}
	if c.region != "" {
		q.Set("region", c.region)
	}
	var out []apiItem
	if err := c.get(ctx, "/api/v1/trending", q, &out); err != nil {
		return nil, err
	}
	return c.toItems(out), nil
}

// Popular returns the instance's popular videos.
func (c *Client) Popular(ctx context.Context) ([]video.Item, error) {
	var out []apiItem
	if err := c.get(ctx, "/api/v1/popular", nil, &out); err != nil {
		return nil, err
	}
	return c.toItems(out), nil
}

// Search runs a query with the given filters.
func (c *Client) Search(ctx context.Context, query string, filters video.SearchFilters) ([]video.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search query is empty")
	}
	var out []apiItem
	if err := c.get(ctx, "/api/v1/search", searchParams(query, filters), &out); err != nil {
		return nil, err
	}
	return c.toItems(out), nil
}

func searchParams(query string, filters video.SearchFilters) url.Values {
	filters = filters.Normalize()
	q := url.Values{}
	q.Set("q", query)
	q.Set("sort_by", filters.Sort)
	q.Set("type", filters.Type)
	if filters.Date != "any" {
		q.Set("date", filters.Date)
	}
	if filters.Duration != "any" {
		q.Set("duration", filters.Duration)
	}
	return q
}

// Video returns the full metadata of a video.
func (c *Client) Video(ctx context.Context, id string) (*video.Video, error) {
	var out apiVideo
	if err := c.get(ctx, "/api/v1/videos/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	out.Type = "video"
	if out.VideoID == "" {
		out.VideoID = id
	}
	return &video.Video{
		Item:        c.toItem(out.apiItem),
		Description: out.Description,
		Likes:       out.LikeCount,
		Genre:       out.Genre,
		Keywords:    out.Keywords,
		Recommended: c.toItems(out.RecommendedVideos),
	}, nil
}

// Playlist returns a playlist with its videos.
func (c *Client) Playlist(ctx context.Context, id string) (*video.Playlist, error) {
	var out apiItem
	if err := c.get(ctx, "/api/v1/playlists/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	out.Type = "playlist"
	if out.PlaylistID == "" {
		out.PlaylistID = id
	}
	for i := range out.Videos {
		out.Videos[i].Type = "video"
	}
	return &video.Playlist{
		Item:        c.toItem(out),
		Description: out.Description,
		Videos:      c.toItems(out.Videos),
	}, nil
}

// Channel returns a channel and the content of the requested section.
// Uploads fall back to the feed source when the instance fails to list them.
func (c *Client) Channel(ctx context.Context, id string, section video.ChannelSection) (*video.Channel, error) {
	var info apiChannel
	infoErr := c.get(ctx, "/api/v1/channels/"+url.PathEscape(id), nil, &info)
	if infoErr != nil && (errors.Is(infoErr, ErrNotFound) || c.uploads == nil || section == video.ChannelPlaylists) {
		return nil, infoErr
	}

	ch := &video.Channel{}
	if infoErr == nil {
		info.Type = "channel"
		if info.AuthorID == "" {
			info.AuthorID = id
		}
		ch.Item = c.toItem(info.apiItem)
		ch.Description = info.Description
		for i := range info.LatestVideos {
			info.LatestVideos[i].Type = "video"
		}
		ch.Uploads = c.toItems(info.LatestVideos)
	} else {
		logger.Warn("channel %s info failed, using feed: %v", id, infoErr)
		ch.Item = video.Item{Kind: video.KindChannel, ID: id, Title: id}
	}

	switch section {
	case video.ChannelVideos:
		uploads, err := c.channelVideos(ctx, id)
		if err != nil {
			uploads, err = c.fallbackUploads(ctx, id, err)
			if err != nil {
				return nil, err
			}
		}
		ch.Uploads = uploads
	case video.ChannelPlaylists:
		var out apiChannelPlaylists
		if err := c.get(ctx, "/api/v1/channels/"+url.PathEscape(id)+"/playlists", nil, &out); err != nil {
			return nil, err
		}
		for i := range out.Playlists {
			out.Playlists[i].Type = "playlist"
		}
		ch.Playlists = c.toItems(out.Playlists)
	default:
		if infoErr != nil {
			uploads, err := c.fallbackUploads(ctx, id, infoErr)
			if err != nil {
				return nil, err
			}
			ch.Uploads = uploads
		}
	}

	if infoErr != nil && len(ch.Uploads) > 0 && ch.Uploads[0].Author != "" {
		ch.Title = ch.Uploads[0].Author
		ch.Author = ch.Uploads[0].Author
	}
	return ch, nil
}

func (c *Client) channelVideos(ctx context.Context, id string) ([]video.Item, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/api/v1/channels/"+url.PathEscape(id)+"/videos", nil, &raw); err != nil {
		return nil, err
	}

	// Older instances return a bare array.
	var list []apiItem
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to decode channel videos: %w", err)
		}
	} else {
		var wrapped apiChannelVideos
		if err := json.Unmarshal(trimmed, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode channel videos: %w", err)
		}
		list = wrapped.Videos
	}
	for i := range list {
		list[i].Type = "video"
	}
	return c.toItems(list), nil
}

func (c *Client) fallbackUploads(ctx context.Context, id string, cause error) ([]video.Item, error) {
	if c.uploads == nil || errors.Is(cause, ErrNotFound) {
		return nil, cause
	}
	items, err := c.uploads.ChannelUploads(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w (feed fallback: %w)", cause, err)
	}
	logger.Info("channel %s uploads served from feed", id)
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	classify := func(err error) bool {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return apiErr.Temporary()
		}
		return retry.IsRetryable(err)
	}

	return retry.Do(ctx, c.retry, classify, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return retry.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "ytgrid/1.0")

		logger.Debug("GET %s", endpoint)
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("request %s: %w", path, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &APIError{
				Status:   resp.StatusCode,
				Endpoint: path,
				Message:  errorMessage(resp.Body),
			}
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return retry.Permanent(fmt.Errorf("decode %s: %w", path, err))
		}
		return nil
	})
}

// errorMessage extracts Invidious' {"error": "..."} body when present.
func errorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	return ""
}
