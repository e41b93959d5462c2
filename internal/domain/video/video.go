// Package video defines the domain records shown by the browser.
package video

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Kind identifies what an Item points at.
type Kind int

const (
	KindVideo Kind = iota
	KindPlaylist
	KindChannel
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindVideo:
		return "video"
	case KindPlaylist:
		return "playlist"
	case KindChannel:
		return "channel"
	default:
		return "unknown"
	}
}

// ParseKind converts a name into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "video":
		return KindVideo, true
	case "playlist":
		return KindPlaylist, true
	case "channel":
		return KindChannel, true
	default:
		return KindVideo, false
	}
}

// Item is a summary card for a video, playlist or channel.
type Item struct {
	Kind        Kind          `json:"kind"`
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author,omitempty"`
	AuthorID    string        `json:"author_id,omitempty"`
	Views       int64         `json:"views,omitempty"`
	Published   time.Time     `json:"published,omitempty"`
	Length      time.Duration `json:"length,omitempty"`
	Thumbnail   string        `json:"thumbnail,omitempty"`
	VideoCount  int           `json:"video_count,omitempty"`
	Subscribers int64         `json:"subscribers,omitempty"`
	Live        bool          `json:"live,omitempty"`
}

// URL returns the canonical YouTube URL of the item.
func (i Item) URL() string {
	switch i.Kind {
	case KindPlaylist:
		return PlaylistURL(i.ID)
	case KindChannel:
		return ChannelURL(i.ID)
	default:
		return VideoURL(i.ID)
	}
}

// Video is the full metadata of one video.
type Video struct {
	Item
	Description string   `json:"description,omitempty"`
	Likes       int64    `json:"likes,omitempty"`
	Genre       string   `json:"genre,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	Recommended []Item   `json:"recommended,omitempty"`
}

// Playlist is a playlist and the videos it contains.
type Playlist struct {
	Item
	Description string `json:"description,omitempty"`
	Videos      []Item `json:"videos,omitempty"`
}

// Channel is a channel page with its uploads and playlists.
type Channel struct {
	Item
	Description string `json:"description,omitempty"`
	Uploads     []Item `json:"uploads,omitempty"`
	Playlists   []Item `json:"playlists,omitempty"`
}

// ChannelSection selects which part of a channel is shown.
type ChannelSection int

const (
	ChannelHome ChannelSection = iota
	ChannelVideos
	ChannelPlaylists
)

// ChannelSections lists the sections in tab order.
var ChannelSections = []ChannelSection{ChannelHome, ChannelVideos, ChannelPlaylists}

// String returns the tab label of the section.
func (s ChannelSection) String() string {
	switch s {
	case ChannelVideos:
		return "Videos"
	case ChannelPlaylists:
		return "Playlists"
	default:
		return "Home"
	}
}

// ParseChannelSection converts a name into a ChannelSection.
func ParseChannelSection(s string) (ChannelSection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "home":
		return ChannelHome, true
	case "videos":
		return ChannelVideos, true
	case "playlists":
		return ChannelPlaylists, true
	default:
		return ChannelHome, false
	}
}

// VideoURL returns the watch URL of a video id.
func VideoURL(id string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(id)
}

// PlaylistURL returns the URL of a playlist id.
func PlaylistURL(id string) string {
	return "https://www.youtube.com/playlist?list=" + url.QueryEscape(id)
}

// ChannelURL returns the URL of a channel id.
func ChannelURL(id string) string {
	return "https://www.youtube.com/channel/" + url.PathEscape(id)
}

// EmbedURL returns the embeddable player URL of a video id.
func EmbedURL(id string) string {
	return "https://www.youtube.com/embed/" + url.PathEscape(id)
}

// ThumbnailURL returns the default high quality thumbnail of a video id.
func ThumbnailURL(id string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", url.PathEscape(id))
}
