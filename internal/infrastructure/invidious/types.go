package invidious

import (
	"strings"
	"time"

	"github.com/ytgrid/ytgrid/internal/domain/video"
)

type thumbnail struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

// apiItem covers the video, playlist and channel shapes returned by the
// listing endpoints. Type tells them apart.
type apiItem struct {
	Type              string      `json:"type"`
	Title             string      `json:"title"`
	VideoID           string      `json:"videoId"`
	PlaylistID        string      `json:"playlistId"`
	Author            string      `json:"author"`
	AuthorID          string      `json:"authorId"`
	VideoThumbnails   []thumbnail `json:"videoThumbnails"`
	AuthorThumbnails  []thumbnail `json:"authorThumbnails"`
	PlaylistThumbnail string      `json:"playlistThumbnail"`
	LengthSeconds     int64       `json:"lengthSeconds"`
	ViewCount         int64       `json:"viewCount"`
	Published         int64       `json:"published"`
	VideoCount        int         `json:"videoCount"`
	SubCount          int64       `json:"subCount"`
	LiveNow           bool        `json:"liveNow"`
	Description       string      `json:"description"`
	Videos            []apiItem   `json:"videos"`
}

type apiVideo struct {
	apiItem
	LikeCount         int64     `json:"likeCount"`
	Genre             string    `json:"genre"`
	Keywords          []string  `json:"keywords"`
	RecommendedVideos []apiItem `json:"recommendedVideos"`
}

type apiChannel struct {
	apiItem
	LatestVideos []apiItem `json:"latestVideos"`
}

type apiChannelVideos struct {
	Videos       []apiItem `json:"videos"`
	Continuation string    `json:"continuation"`
}

type apiChannelPlaylists struct {
	Playlists    []apiItem `json:"playlists"`
	Continuation string    `json:"continuation"`
}

func (c *Client) toItem(in apiItem) video.Item {
	out := video.Item{
		Title:     in.Title,
		Author:    in.Author,
		AuthorID:  in.AuthorID,
		Views:     in.ViewCount,
		Length:    time.Duration(in.LengthSeconds) * time.Second,
		Live:      in.LiveNow,
		Published: unixTime(in.Published),
	}

	switch in.Type {
	case "playlist":
		out.Kind = video.KindPlaylist
		out.ID = in.PlaylistID
		out.VideoCount = in.VideoCount
		out.Thumbnail = c.absolute(in.PlaylistThumbnail)
		if out.Thumbnail == "" && len(in.Videos) > 0 {
			out.Thumbnail = c.bestThumbnail(in.Videos[0].VideoThumbnails)
		}
	case "channel":
		out.Kind = video.KindChannel
		out.ID = in.AuthorID
		out.Title = in.Author
		out.VideoCount = in.VideoCount
		out.Subscribers = in.SubCount
		out.Thumbnail = c.bestThumbnail(in.AuthorThumbnails)
	default:
		out.Kind = video.KindVideo
		out.ID = in.VideoID
		out.Thumbnail = c.bestThumbnail(in.VideoThumbnails)
		if out.Thumbnail == "" && out.ID != "" {
			out.Thumbnail = video.ThumbnailURL(out.ID)
		}
	}
	return out
}

func (c *Client) toItems(in []apiItem) []video.Item {
	out := make([]video.Item, 0, len(in))
	for _, item := range in {
		converted := c.toItem(item)
		if converted.ID == "" {
			continue
		}
		out = append(out, converted)
	}
	return out
}

var preferredQualities = []string{"medium", "high", "mqdefault", "hqdefault", "default"}

func (c *Client) bestThumbnail(thumbs []thumbnail) string {
	if len(thumbs) == 0 {
		return ""
	}
	for _, quality := range preferredQualities {
		for _, t := range thumbs {
			if t.Quality == quality {
				return c.absolute(t.URL)
			}
		}
	}
	return c.absolute(thumbs[0].URL)
}

// absolute resolves instance-relative and protocol-relative URLs.
func (c *Client) absolute(raw string) string {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return ""
	case strings.HasPrefix(raw, "//"):
		return "https:" + raw
	case strings.HasPrefix(raw, "/"):
		return c.baseURL + raw
	default:
		return raw
	}
}

func unixTime(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
