package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ytgrid/ytgrid/internal/domain/video"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/page"
	"github.com/ytgrid/ytgrid/internal/presentation/tui/textutil"
)

const tabSeparator = " | "

// tabBar is the cursor logic shared by the tab widgets.
type tabBar struct {
	labels []string
	active int
	cursor int
}

func (t *tabBar) move(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.Left):
		t.cursor = max(t.cursor-1, 0)
	case key.Matches(msg, keys.Right):
		t.cursor = min(t.cursor+1, len(t.labels)-1)
	default:
		return false
	}
	return true
}

func (t tabBar) render(rc RenderContext, width int) string {
	parts := make([]string, len(t.labels))
	for i, label := range t.labels {
		switch {
		case rc.Focus == FocusSelected && i == t.cursor:
			parts[i] = rc.Styles.Cursor.Underline(true).Render(label)
		case i == t.active:
			parts[i] = rc.Styles.Accent.Bold(true).Render(label)
		default:
			parts[i] = rc.Styles.Muted.Render(label)
		}
	}
	return textutil.Truncate(strings.Join(parts, tabSeparator), width)
}

func tabsWidth(labels []string) int {
	width := len(tabSeparator) * (len(labels) - 1)
	for _, label := range labels {
		width += len(label)
	}
	return width
}

// MainMenuTabs switches between the main menu feeds.
type MainMenuTabs struct {
	bar tabBar
}

// NewMainMenuTabs returns the tab bar with active highlighted.
func NewMainMenuTabs(active page.Tab) *MainMenuTabs {
	labels := make([]string, len(page.Tabs))
	index := 0
	for i, tab := range page.Tabs {
		labels[i] = tab.String()
		if tab == active {
			index = i
		}
	}
	return &MainMenuTabs{bar: tabBar{labels: labels, active: index, cursor: index}}
}

// MainMenuTabsWidth is the natural width of the main menu tabs.
func MainMenuTabsWidth() int {
	labels := make([]string, len(page.Tabs))
	for i, tab := range page.Tabs {
		labels[i] = tab.String()
	}
	return tabsWidth(labels)
}

func (*MainMenuTabs) widget() {}

// Focusable implements Widget.
func (*MainMenuTabs) Focusable() bool { return true }

// Select implements Widget.
func (t *MainMenuTabs) Select(*Env) bool {
	t.bar.cursor = t.bar.active
	return true
}

// KeyInput implements Widget.
func (t *MainMenuTabs) KeyInput(msg tea.KeyMsg, env *Env) bool {
	if key.Matches(msg, env.Keys().Submit) {
		env.Navigate(page.NewMainMenu(page.Tabs[t.bar.cursor]))
		return true
	}
	return t.bar.move(msg, env.Keys())
}

// Load implements Widget.
func (t *MainMenuTabs) Load(LoadContext) (Widget, error) { return t, nil }

// Render implements Widget.
func (t *MainMenuTabs) Render(rc RenderContext, width, _ int) string {
	return t.bar.render(rc, width)
}

// Clone implements Widget.
func (t *MainMenuTabs) Clone() Widget {
	c := &MainMenuTabs{bar: t.bar}
	c.bar.labels = append([]string(nil), t.bar.labels...)
	return c
}

// ChannelTabs switches between the sections of a channel.
type ChannelTabs struct {
	channelID string
	bar       tabBar
}

// NewChannelTabs returns the section bar of channelID.
func NewChannelTabs(channelID string, active video.ChannelSection) *ChannelTabs {
	labels := make([]string, len(video.ChannelSections))
	index := 0
	for i, section := range video.ChannelSections {
		labels[i] = section.String()
		if section == active {
			index = i
		}
	}
	return &ChannelTabs{channelID: channelID, bar: tabBar{labels: labels, active: index, cursor: index}}
}

// ChannelTabsWidth is the natural width of the channel tabs.
func ChannelTabsWidth() int {
	labels := make([]string, len(video.ChannelSections))
	for i, section := range video.ChannelSections {
		labels[i] = section.String()
	}
	return tabsWidth(labels)
}

func (*ChannelTabs) widget() {}

// Focusable implements Widget.
func (*ChannelTabs) Focusable() bool { return true }

// Select implements Widget.
func (t *ChannelTabs) Select(*Env) bool {
	t.bar.cursor = t.bar.active
	return true
}

// KeyInput implements Widget.
func (t *ChannelTabs) KeyInput(msg tea.KeyMsg, env *Env) bool {
	if key.Matches(msg, env.Keys().Submit) {
		env.Navigate(page.NewChannel(t.channelID, video.ChannelSections[t.bar.cursor]))
		return true
	}
	return t.bar.move(msg, env.Keys())
}

// Load implements Widget.
func (t *ChannelTabs) Load(LoadContext) (Widget, error) { return t, nil }

// Render implements Widget.
func (t *ChannelTabs) Render(rc RenderContext, width, _ int) string {
	return t.bar.render(rc, width)
}

// Clone implements Widget.
func (t *ChannelTabs) Clone() Widget {
	c := &ChannelTabs{channelID: t.channelID, bar: t.bar}
	c.bar.labels = append([]string(nil), t.bar.labels...)
	return c
}
