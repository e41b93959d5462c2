package widget

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/application/settings"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

type entryKind int

const (
	entryCommand entryKind = iota
	entryCopyLink
	entryBrowser
	entryChannel
)

type actionEntry struct {
	kind    entryKind
	label   string
	command settings.CommandConfig
}

// ItemActions lists what can be done with the displayed item.
type ItemActions struct {
	kind    video.Kind
	id      string
	item    video.Item
	entries []actionEntry
	cursor  int
	loaded  bool
}

// NewItemActions returns an unloaded action menu for the item kind/id.
func NewItemActions(kind video.Kind, id string) *ItemActions {
	return &ItemActions{kind: kind, id: id}
}

func (*ItemActions) widget() {}

// Labels returns the action labels in order.
func (a *ItemActions) Labels() []string {
	labels := make([]string, len(a.entries))
	for i, entry := range a.entries {
		labels[i] = entry.label
	}
	return labels
}

// Cursor returns the highlighted action.
func (a *ItemActions) Cursor() int { return a.cursor }

// Focusable implements Widget.
func (a *ItemActions) Focusable() bool { return a.loaded && len(a.entries) > 0 }

// Select implements Widget.
func (a *ItemActions) Select(*Env) bool { return a.Focusable() }

// KeyInput implements Widget.
func (a *ItemActions) KeyInput(msg tea.KeyMsg, env *Env) bool {
	keys := env.Keys()
	switch {
	case key.Matches(msg, keys.Up):
		a.cursor = max(a.cursor-1, 0)
	case key.Matches(msg, keys.Down):
		a.cursor = max(min(a.cursor+1, len(a.entries)-1), 0)
	case key.Matches(msg, keys.Top):
		a.cursor = 0
	case key.Matches(msg, keys.Bottom):
		a.cursor = max(len(a.entries)-1, 0)
	case key.Matches(msg, keys.Submit):
		a.activate(env)
	default:
		return false
	}
	return true
}

func (a *ItemActions) activate(env *Env) {
	if a.cursor < 0 || a.cursor >= len(a.entries) {
		return
	}
	entry := a.entries[a.cursor]
	switch entry.kind {
	case entryCommand:
		env.Do(Action{Kind: RunCommand, Command: entry.command, Item: a.item})
	case entryCopyLink:
		env.Do(Action{Kind: CopyLink, Item: a.item})
	case entryBrowser:
		env.Do(Action{Kind: OpenBrowser, Item: a.item})
	case entryChannel:
		env.Navigate(page.NewChannel(a.item.AuthorID, video.ChannelHome))
	}
}

// Load implements Widget.
func (a *ItemActions) Load(lc LoadContext) (Widget, error) {
	ctx := lc.context()
	loaded := NewItemActions(a.kind, a.id)

	var commands []settings.CommandConfig
	switch a.kind {
	case video.KindVideo:
		v, err := lc.Provider.Video(ctx, a.id)
		if err != nil {
			return nil, fmt.Errorf("load video %s: %w", a.id, err)
		}
		loaded.item = v.Item
		commands = lc.Commands.Video
	case video.KindPlaylist:
		p, err := lc.Provider.Playlist(ctx, a.id)
		if err != nil {
			return nil, fmt.Errorf("load playlist %s: %w", a.id, err)
		}
		loaded.item = p.Item
		commands = lc.Commands.Playlist
	default:
		return nil, fmt.Errorf("no actions for %s", a.kind)
	}

	for _, cmd := range commands {
		loaded.entries = append(loaded.entries, actionEntry{kind: entryCommand, label: cmd.Label, command: cmd})
	}
	loaded.entries = append(loaded.entries,
		actionEntry{kind: entryCopyLink, label: "Copy link"},
		actionEntry{kind: entryBrowser, label: "Open in browser"},
	)
	if loaded.item.AuthorID != "" {
		loaded.entries = append(loaded.entries, actionEntry{kind: entryChannel, label: "Open channel"})
	}
	loaded.loaded = true
	return loaded, nil
}

// Render implements Widget.
func (a *ItemActions) Render(rc RenderContext, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if !a.loaded {
		return rc.Styles.Muted.Render(textutil.Truncate("No actions", width))
	}
	lines := make([]string, 0, len(a.entries))
	start := 0
	if a.cursor >= height {
		start = a.cursor - height + 1
	}
	for i := start; i < len(a.entries); i++ {
		label := textutil.Truncate(a.entries[i].label, width-2)
		if i == a.cursor && rc.Focus != FocusNone {
			lines = append(lines, rc.Styles.Cursor.Render("> "+label))
			continue
		}
		lines = append(lines, "  "+label)
	}
	return textutil.Clip(lines, width, height)
}

// Clone implements Widget.
func (a *ItemActions) Clone() Widget {
	c := *a
	c.entries = slices.Clone(a.entries)
	return &c
}
