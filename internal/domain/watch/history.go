// Package watch defines the watch history log.
package watch

import (
	"slices"
	"time"

	"github.com/ytgrid/ytgrid/internal/domain/video"
)

// DefaultLimit is used when a non-positive limit is configured.
const DefaultLimit = 50

// Entry is one watched video or playlist.
type Entry struct {
	Item      video.Item
	WatchedAt time.Time

	// Detail holds the full record that was displayed, when known.
	Video    *video.Video
	Playlist *video.Playlist
}

// ID returns the id the entry is keyed by.
func (e Entry) ID() string {
	return e.Item.ID
}

// History is an ordered log of watched items, most recent first.
// Ids are unique and the log never grows past its limit.
type History struct {
	entries []Entry
	limit   int
}

// NewHistory builds a History from persisted entries, applying the same
// dedupe and trim rules as Record.
func NewHistory(entries []Entry, limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	h := new(History{limit: limit})
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.ID() == "" || seen[e.ID()] {
			continue
		}
		seen[e.ID()] = true
		h.entries = append(h.entries, e)
	}
	h.trim()
	return h
}

// Limit returns the maximum number of entries kept.
func (h *History) Limit() int {
	return h.limit
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Record moves id to the front of the log, replacing any earlier entry with
// the same id, and trims the oldest entries past the limit.
func (h *History) Record(e Entry) {
	if e.ID() == "" {
		return
	}
	h.entries = slices.DeleteFunc(h.entries, func(existing Entry) bool {
		return existing.ID() == e.ID()
	})
	h.entries = slices.Insert(h.entries, 0, e)
	h.trim()
}

// Entries returns a copy of the log, most recent first.
func (h *History) Entries() []Entry {
	return slices.Clone(h.entries)
}

// Items returns the summary cards of the log, most recent first.
func (h *History) Items() []video.Item {
	items := make([]video.Item, len(h.entries))
	for i, e := range h.entries {
		items[i] = e.Item
	}
	return items
}

func (h *History) trim() {
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}
