// Package presenter builds display text for domain records.
package presenter

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

// Duration formats a video length as h:mm:ss or m:ss.
func Duration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	total := int(d.Seconds())
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Views formats a view count.
func Views(n int64) string {
	if n == 1 {
		return "1 view"
	}
	return humanize.Comma(n) + " views"
}

// Subscribers formats a subscriber count.
func Subscribers(n int64) string {
	return humanize.Comma(n) + " subscribers"
}

// Age formats a publication time relative to now.
func Age(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Title returns the list title of item with a kind marker for non-videos.
func Title(item video.Item) string {
	title := textutil.SingleLine(item.Title)
	if title == "" {
		title = item.ID
	}
	switch item.Kind {
	case video.KindPlaylist:
		return "[playlist] " + title
	case video.KindChannel:
		return "[channel] " + title
	default:
		if item.Live {
			return "[live] " + title
		}
		return title
	}
}

// Meta returns the secondary line of item: author, counts, age and length.
func Meta(item video.Item, now time.Time) string {
	parts := make([]string, 0, 4)
	if item.Kind != video.KindChannel && item.Author != "" {
		parts = append(parts, textutil.SingleLine(item.Author))
	}
	switch item.Kind {
	case video.KindPlaylist:
		if item.VideoCount > 0 {
			parts = append(parts, fmt.Sprintf("%d videos", item.VideoCount))
		}
	case video.KindChannel:
		if item.Subscribers > 0 {
			parts = append(parts, Subscribers(item.Subscribers))
		}
		if item.VideoCount > 0 {
			parts = append(parts, fmt.Sprintf("%d videos", item.VideoCount))
		}
	default:
		if item.Views > 0 {
			parts = append(parts, Views(item.Views))
		}
		if age := Age(item.Published, now); age != "" {
			parts = append(parts, age)
		}
		if d := Duration(item.Length); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, " · ")
}

// FilterValue returns the text list filtering matches against.
func FilterValue(item video.Item) string {
	return item.Title + " " + item.Author
}

// VideoDetail returns the body text of a video page.
func VideoDetail(v *video.Video, now time.Time) []string {
	if v == nil {
		return nil
	}
	lines := []string{
		textutil.SingleLine(v.Title),
		Meta(v.Item, now),
	}
	if v.Likes > 0 {
		lines = append(lines, humanize.Comma(v.Likes)+" likes")
	}
	if v.Genre != "" {
		lines = append(lines, "Genre: "+v.Genre)
	}
	if len(v.Keywords) > 0 {
		lines = append(lines, "Tags: "+strings.Join(v.Keywords, ", "))
	}
	lines = append(lines, "")
	lines = append(lines, strings.Split(strings.TrimSpace(v.Description), "\n")...)
	return lines
}

// PlaylistDetail returns the body text of a playlist page.
func PlaylistDetail(p *video.Playlist, now time.Time) []string {
	if p == nil {
		return nil
	}
	item := p.Item
	if item.VideoCount == 0 {
		item.VideoCount = len(p.Videos)
	}
	lines := []string{
		textutil.SingleLine(p.Title),
		Meta(item, now),
		"",
	}
	return append(lines, strings.Split(strings.TrimSpace(p.Description), "\n")...)
}

// ChannelDetail returns the body text of a channel home page.
func ChannelDetail(c *video.Channel, now time.Time) []string {
	if c == nil {
		return nil
	}
	lines := []string{
		textutil.SingleLine(c.Title),
		Meta(c.Item, now),
		"",
	}
	return append(lines, strings.Split(strings.TrimSpace(c.Description), "\n")...)
}
