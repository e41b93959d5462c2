package widget

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/logger"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/presenter"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

const (
	minThumbnailWidth = 70
	thumbnailGap      = 1
)

// ItemDetail shows the description of a video, playlist or channel.
type ItemDetail struct {
	kind   video.Kind
	id     string
	item   video.Item
	lines  []string
	loaded bool

	view          viewport.Model
	width, height int
}

// NewItemDetail returns an unloaded detail view of the item kind/id.
func NewItemDetail(kind video.Kind, id string) *ItemDetail {
	return &ItemDetail{kind: kind, id: id, view: viewport.New(0, 0)}
}

func (*ItemDetail) widget() {}

// Item returns the displayed item summary.
func (d *ItemDetail) Item() video.Item { return d.item }

// Loaded reports whether the detail text is available.
func (d *ItemDetail) Loaded() bool { return d.loaded }

// Offset returns the scroll position.
func (d *ItemDetail) Offset() int { return d.view.YOffset }

// Focusable implements Widget.
func (d *ItemDetail) Focusable() bool { return d.loaded }

// Select implements Widget.
func (d *ItemDetail) Select(*Env) bool { return d.loaded }

// KeyInput implements Widget.
func (d *ItemDetail) KeyInput(msg tea.KeyMsg, env *Env) bool {
	keys := env.Keys()
	switch {
	case key.Matches(msg, keys.Up):
		d.view.SetYOffset(d.view.YOffset - 1)
	case key.Matches(msg, keys.Down):
		d.view.SetYOffset(d.view.YOffset + 1)
	case key.Matches(msg, keys.PageUp):
		d.view.SetYOffset(d.view.YOffset - max(d.view.Height, 1))
	case key.Matches(msg, keys.PageDown):
		d.view.SetYOffset(d.view.YOffset + max(d.view.Height, 1))
	case key.Matches(msg, keys.Top):
		d.view.GotoTop()
	case key.Matches(msg, keys.Bottom):
		d.view.GotoBottom()
	default:
		return false
	}
	return true
}

// Load implements Widget. Opening a video or playlist records it in the
// watch history; a failure to record is logged and does not fail the load.
func (d *ItemDetail) Load(lc LoadContext) (Widget, error) {
	ctx := lc.context()
	now := lc.now()
	loaded := NewItemDetail(d.kind, d.id)

	switch d.kind {
	case video.KindVideo:
		v, err := lc.Provider.Video(ctx, d.id)
		if err != nil {
			return nil, fmt.Errorf("load video %s: %w", d.id, err)
		}
		if lc.Watch != nil {
			if err := lc.Watch.RecordVideo(v); err != nil {
				logger.Warn("record video %s: %v", v.ID, err)
			}
		}
		loaded.item = v.Item
		loaded.lines = presenter.VideoDetail(v, now)
	case video.KindPlaylist:
		p, err := lc.Provider.Playlist(ctx, d.id)
		if err != nil {
			return nil, fmt.Errorf("load playlist %s: %w", d.id, err)
		}
		if lc.Watch != nil {
			if err := lc.Watch.RecordPlaylist(p); err != nil {
				logger.Warn("record playlist %s: %v", p.ID, err)
			}
		}
		loaded.item = p.Item
		loaded.lines = presenter.PlaylistDetail(p, now)
	case video.KindChannel:
		c, err := lc.Provider.Channel(ctx, d.id, video.ChannelHome)
		if err != nil {
			return nil, fmt.Errorf("load channel %s: %w", d.id, err)
		}
		loaded.item = c.Item
		loaded.lines = presenter.ChannelDetail(c, now)
	default:
		return nil, fmt.Errorf("cannot show %s details", d.kind)
	}
	loaded.loaded = true
	return loaded, nil
}

// Thumbnails implements ThumbnailSource.
func (d *ItemDetail) Thumbnails() []video.Item {
	if !d.loaded || d.item.Thumbnail == "" {
		return nil
	}
	return []video.Item{d.item}
}

func (d *ItemDetail) thumbnailWidth(width int) int {
	if width < minThumbnailWidth || d.item.Thumbnail == "" {
		return 0
	}
	return width / 3
}

// SetSize implements Sizer. It rewraps the text for the new width.
func (d *ItemDetail) SetSize(width, height int) {
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	textWidth := width - d.thumbnailWidth(width)
	if textWidth != width {
		textWidth -= thumbnailGap
	}
	offset := d.view.YOffset
	d.view.Width = max(textWidth, 0)
	d.view.Height = max(height, 0)
	d.view.SetContent(strings.Join(textutil.Wrap(d.lines, max(textWidth, 1)), "\n"))
	d.view.SetYOffset(offset)
}

// Render implements Widget.
func (d *ItemDetail) Render(rc RenderContext, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if !d.loaded {
		return rc.Styles.Muted.Render(textutil.Truncate("Nothing loaded yet", width))
	}
	view := d.view
	if width != d.width || height != d.height {
		sized := *d
		sized.width, sized.height = 0, 0
		sized.SetSize(width, height)
		view = sized.view
	}

	body := view.View()
	thumbWidth := d.thumbnailWidth(width)
	if thumbWidth == 0 || rc.Thumbnails == nil {
		return body
	}
	thumb := rc.Thumbnails.Render(d.item.ID, thumbWidth, height)
	thumb = lipgloss.NewStyle().Width(thumbWidth).MarginRight(thumbnailGap).Render(thumb)
	return lipgloss.JoinHorizontal(lipgloss.Top, thumb, body)
}

// Clone implements Widget.
func (d *ItemDetail) Clone() Widget {
	c := *d
	c.lines = slices.Clone(d.lines)
	return &c
}
