package widget

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/presenter"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

// ListSource tells an ItemList where its items come from.
type ListSource int

const (
	SourceTrending ListSource = iota
	SourcePopular
	SourceHistory
	SourceSearch
	SourcePlaylistVideos
	SourceChannelUploads
	SourceChannelPlaylists
)

// String returns the list title for the source.
func (s ListSource) String() string {
	switch s {
	case SourceTrending:
		return "Trending"
	case SourcePopular:
		return "Popular"
	case SourceHistory:
		return "History"
	case SourceSearch:
		return "Results"
	case SourcePlaylistVideos:
		return "Videos"
	case SourceChannelUploads:
		return "Uploads"
	case SourceChannelPlaylists:
		return "Playlists"
	default:
		return "Items"
	}
}

const (
	linesPerItem = 2
	pageStep     = 10
)

// ItemList is a scrollable, filterable list of item cards.
type ItemList struct {
	source ListSource
	items  []video.Item
	loaded bool

	// visible holds indexes into items; nil shows every item.
	visible   []int
	cursor    int
	filter    textinput.Model
	filtering bool
}

// NewItemList returns an empty list that loads from source.
func NewItemList(source ListSource) *ItemList {
	return &ItemList{source: source, filter: newFilterInput()}
}

// NewItemListWith returns a loaded list holding items.
func NewItemListWith(source ListSource, items []video.Item) *ItemList {
	l := NewItemList(source)
	l.items = slices.Clone(items)
	l.loaded = true
	return l
}

func newFilterInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.CharLimit = 100
	return ti
}

func (*ItemList) widget() {}

// Source returns where the list loads from.
func (l *ItemList) Source() ListSource { return l.source }

// Items returns every item of the list, ignoring the filter.
func (l *ItemList) Items() []video.Item { return slices.Clone(l.items) }

// Visible returns the items that pass the current filter.
func (l *ItemList) Visible() []video.Item {
	if l.visible == nil {
		return l.Items()
	}
	out := make([]video.Item, len(l.visible))
	for i, idx := range l.visible {
		out[i] = l.items[idx]
	}
	return out
}

// Cursor returns the position of the highlighted visible item.
func (l *ItemList) Cursor() int { return l.cursor }

// Current returns the highlighted item.
func (l *ItemList) Current() (video.Item, bool) {
	visible := l.Visible()
	if l.cursor < 0 || l.cursor >= len(visible) {
		return video.Item{}, false
	}
	return visible[l.cursor], true
}

// Focusable implements Widget.
func (l *ItemList) Focusable() bool { return len(l.items) > 0 }

// Select implements Widget.
func (l *ItemList) Select(*Env) bool {
	if len(l.items) == 0 {
		return false
	}
	l.stopFiltering()
	return true
}

// KeyInput implements Widget.
func (l *ItemList) KeyInput(msg tea.KeyMsg, env *Env) bool {
	keys := env.Keys()
	if l.filtering {
		if key.Matches(msg, keys.Submit) {
			l.filtering = false
			l.filter.Blur()
			return true
		}
		l.filter, _ = l.filter.Update(msg)
		l.applyFilter()
		return true
	}

	count := len(l.Visible())
	switch {
	case key.Matches(msg, keys.Up):
		l.cursor = max(l.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		l.cursor = max(min(l.cursor+1, count-1), 0)
	case key.Matches(msg, keys.PageUp):
		l.cursor = max(l.cursor-pageStep, 0)
	case key.Matches(msg, keys.PageDown):
		l.cursor = max(min(l.cursor+pageStep, count-1), 0)
	case key.Matches(msg, keys.Top):
		l.cursor = 0
	case key.Matches(msg, keys.Bottom):
		l.cursor = max(count-1, 0)
	case key.Matches(msg, keys.Filter):
		l.filtering = true
		l.filter.SetValue("")
		l.filter.Focus()
		l.applyFilter()
	case key.Matches(msg, keys.Submit):
		item, ok := l.Current()
		if !ok {
			env.Notify("Nothing to open")
			return true
		}
		env.Navigate(page.ForItem(item))
	default:
		return false
	}
	return true
}

func (l *ItemList) stopFiltering() {
	l.filtering = false
	l.filter.Blur()
	l.filter.SetValue("")
	l.visible = nil
	l.cursor = min(l.cursor, max(len(l.items)-1, 0))
}

func (l *ItemList) applyFilter() {
	l.visible = FilterItems(l.items, l.filter.Value())
	l.cursor = 0
}

// FilterItems returns the indexes of items matching query, best match
// first. An empty query yields nil, meaning no filter.
func FilterItems(items []video.Item, query string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	targets := make([]string, len(items))
	for i, item := range items {
		targets[i] = presenter.FilterValue(item)
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})
	out := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, rank.OriginalIndex)
	}
	return out
}

// Load implements Widget.
func (l *ItemList) Load(lc LoadContext) (Widget, error) {
	ctx := lc.context()
	var (
		items []video.Item
		err   error
	)
	switch l.source {
	case SourceTrending:
		items, err = lc.Provider.Trending(ctx)
	case SourcePopular:
		items, err = lc.Provider.Popular(ctx)
	case SourceHistory:
		if lc.Watch != nil {
			items = lc.Watch.Items()
		}
	case SourceSearch:
		items, err = lc.Provider.Search(ctx, lc.Page.Query, lc.Page.Filters)
	case SourcePlaylistVideos:
		var p *video.Playlist
		if p, err = lc.Provider.Playlist(ctx, lc.Page.ID); err == nil {
			items = p.Videos
		}
	case SourceChannelUploads:
		var c *video.Channel
		if c, err = lc.Provider.Channel(ctx, lc.Page.ID, video.ChannelVideos); err == nil {
			items = c.Uploads
		}
	case SourceChannelPlaylists:
		var c *video.Channel
		if c, err = lc.Provider.Channel(ctx, lc.Page.ID, video.ChannelPlaylists); err == nil {
			items = c.Playlists
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", strings.ToLower(l.source.String()), err)
	}
	return NewItemListWith(l.source, items), nil
}

// Thumbnails implements ThumbnailSource.
func (l *ItemList) Thumbnails() []video.Item { return l.Items() }

// Render implements Widget.
func (l *ItemList) Render(rc RenderContext, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := make([]string, 0, height)

	header := rc.Styles.Title.Render(l.source.String())
	visible := l.Visible()
	if l.loaded {
		if l.visible != nil {
			header += rc.Styles.Muted.Render(fmt.Sprintf(" (%d of %d)", len(visible), len(l.items)))
		} else {
			header += rc.Styles.Muted.Render(fmt.Sprintf(" (%d)", len(l.items)))
		}
	}
	lines = append(lines, header)
	if l.filtering || l.visible != nil {
		filter := l.filter
		filter.Width = max(width-2, 1)
		lines = append(lines, filter.View())
	}

	switch {
	case !l.loaded:
		lines = append(lines, rc.Styles.Muted.Render("Nothing loaded yet"))
	case len(visible) == 0 && l.visible != nil:
		lines = append(lines, rc.Styles.Muted.Render("No matches"))
	case len(visible) == 0:
		lines = append(lines, rc.Styles.Muted.Render("No items"))
	}

	room := (height - len(lines)) / linesPerItem
	if room > 0 && len(visible) > 0 {
		start := 0
		if l.cursor >= room {
			start = l.cursor - room + 1
		}
		end := min(start+room, len(visible))
		now := rc.Now
		for i := start; i < end; i++ {
			title := presenter.Title(visible[i])
			meta := "  " + presenter.Meta(visible[i], now)
			if i == l.cursor && rc.Focus != FocusNone {
				lines = append(lines, rc.Styles.Cursor.Render("> "+textutil.Truncate(title, width-2)))
			} else {
				lines = append(lines, "  "+textutil.Truncate(title, width-2))
			}
			lines = append(lines, rc.Styles.Muted.Render(textutil.Truncate(meta, width)))
		}
	}
	return textutil.Clip(lines, width, height)
}

// Clone implements Widget.
func (l *ItemList) Clone() Widget {
	c := *l
	c.items = slices.Clone(l.items)
	c.visible = slices.Clone(l.visible)
	c.filter = newFilterInput()
	c.filter.SetValue(l.filter.Value())
	if l.filtering {
		c.filter.Focus()
	}
	return &c
}
