// Package feed reads YouTube channel upload feeds.
package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/ytgrid/ytgrid/internal/domain/video"
)

// DefaultBaseURL is YouTube's public channel feed endpoint.
const DefaultBaseURL = "https://www.youtube.com/feeds/videos.xml"

const feedAcceptHeader = "application/atom+xml, application/rss+xml, application/xml;q=0.9, text/xml;q=0.8, */*;q=0.5"

type acceptTransport struct {
	base http.RoundTripper
}

func (t acceptTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	clone := req.Clone(req.Context())
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", feedAcceptHeader)
	}
	return base.RoundTrip(clone)
}

// ParserFunc is exposed for testing.
// It allows mocking the feed parsing logic.
var ParserFunc = defaultParser

func defaultParser(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "ytgrid/1.0"
	fp.Client = &http.Client{Transport: acceptTransport{base: http.DefaultTransport}}
	return fp.ParseURLWithContext(feedURL, ctx)
}

// Reader fetches channel uploads from the YouTube feed endpoint.
type Reader struct {
	BaseURL string
	Timeout time.Duration
}

// NewReader constructs a Reader. An empty baseURL selects DefaultBaseURL.
func NewReader(baseURL string, timeout time.Duration) *Reader {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return new(Reader{BaseURL: baseURL, Timeout: timeout})
}

// FeedURL returns the feed address of a channel.
func (r *Reader) FeedURL(channelID string) string {
	return r.BaseURL + "?channel_id=" + url.QueryEscape(channelID)
}

// ChannelUploads returns the newest uploads of a channel, newest first.
func (r *Reader) ChannelUploads(ctx context.Context, channelID string) ([]video.Item, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return nil, errors.New("channel id is empty")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	parsed, err := ParserFunc(ctx, r.FeedURL(channelID))
	if err != nil {
		return nil, fmt.Errorf("failed to read channel feed: %w", err)
	}
	return ItemsFromFeed(parsed), nil
}

// ItemsFromFeed converts a parsed channel feed into video items.
func ItemsFromFeed(parsed *gofeed.Feed) []video.Item {
	if parsed == nil {
		return nil
	}
	items := make([]video.Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		if entry == nil {
			continue
		}
		id := extensionValue(entry.Extensions, "yt", "videoId")
		if id == "" {
			id = videoIDFromLink(entry.Link)
		}
		if id == "" {
			continue
		}

		item := video.Item{
			Kind:     video.KindVideo,
			ID:       id,
			Title:    entry.Title,
			AuthorID: extensionValue(entry.Extensions, "yt", "channelId"),
		}
		if len(entry.Authors) > 0 && entry.Authors[0] != nil {
			item.Author = entry.Authors[0].Name
		} else if parsed.Title != "" {
			item.Author = parsed.Title
		}
		if entry.PublishedParsed != nil {
			item.Published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			item.Published = *entry.UpdatedParsed
		}
		item.Thumbnail, item.Views = mediaGroup(entry.Extensions)
		if item.Thumbnail == "" {
			item.Thumbnail = video.ThumbnailURL(id)
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Published.After(items[j].Published)
	})
	return items
}

func extensionValue(exts ext.Extensions, namespace, name string) string {
	values := exts[namespace][name]
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0].Value)
}

func mediaGroup(exts ext.Extensions) (thumbnail string, views int64) {
	groups := exts["media"]["group"]
	if len(groups) == 0 {
		return "", 0
	}
	group := groups[0]
	if thumbs := group.Children["thumbnail"]; len(thumbs) > 0 {
		thumbnail = thumbs[0].Attrs["url"]
	}
	if community := group.Children["community"]; len(community) > 0 {
		if stats := community[0].Children["statistics"]; len(stats) > 0 {
			views, _ = strconv.ParseInt(stats[0].Attrs["views"], 10, 64)
		}
	}
	return thumbnail, views
}

func videoIDFromLink(link string) string {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return ""
	}
	return u.Query().Get("v")
}
